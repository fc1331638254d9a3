package cart

import (
	"context"
	"errors"

	"floreria-be/internal/session"
)

const cartItemsKey = "cartItems"

type Repository interface {
	Items(ctx context.Context, userID string) ([]Item, error)
	Save(ctx context.Context, userID string, items []Item) error
	Clear(ctx context.Context, userID string) error
}

type repository struct {
	store session.Store
}

func NewRepository(store session.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Items(ctx context.Context, userID string) ([]Item, error) {
	var items []Item
	err := session.Scoped(r.store, userID).Get(ctx, cartItemsKey, &items)
	if errors.Is(err, session.ErrNoDocument) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) Save(ctx context.Context, userID string, items []Item) error {
	return session.Scoped(r.store, userID).Set(ctx, cartItemsKey, items)
}

func (r *repository) Clear(ctx context.Context, userID string) error {
	return session.Scoped(r.store, userID).Delete(ctx, cartItemsKey)
}
