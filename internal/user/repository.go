package user

import (
	"context"
	"errors"

	"floreria-be/internal/session"
)

const registeredUsersKey = "registeredUsers"

// Repository persists the registration list as a single JSON array document.
type Repository interface {
	List(ctx context.Context) ([]Registration, error)
	FindByEmail(ctx context.Context, email string) (*Registration, error)
	FindByID(ctx context.Context, id string) (*Registration, error)
	Create(ctx context.Context, reg Registration) error
	Update(ctx context.Context, reg Registration) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	store session.Store
}

func NewRepository(store session.Store) Repository {
	return &repository{store: store}
}

func (r *repository) List(ctx context.Context) ([]Registration, error) {
	var regs []Registration
	err := r.store.Get(ctx, registeredUsersKey, &regs)
	if errors.Is(err, session.ErrNoDocument) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Registration, error) {
	regs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range regs {
		if regs[i].Email == email {
			return &regs[i], nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *repository) FindByID(ctx context.Context, id string) (*Registration, error) {
	regs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range regs {
		if regs[i].ID == id {
			return &regs[i], nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *repository) Create(ctx context.Context, reg Registration) error {
	regs, err := r.List(ctx)
	if err != nil {
		return err
	}
	regs = append(regs, reg)
	return r.store.Set(ctx, registeredUsersKey, regs)
}

func (r *repository) Update(ctx context.Context, reg Registration) error {
	regs, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range regs {
		if regs[i].ID == reg.ID {
			regs[i] = reg
			return r.store.Set(ctx, registeredUsersKey, regs)
		}
	}
	return ErrUserNotFound
}

func (r *repository) Delete(ctx context.Context, id string) error {
	regs, err := r.List(ctx)
	if err != nil {
		return err
	}
	out := regs[:0]
	for _, reg := range regs {
		if reg.ID != id {
			out = append(out, reg)
		}
	}
	if len(out) == len(regs) {
		return ErrUserNotFound
	}
	return r.store.Set(ctx, registeredUsersKey, out)
}
