package user

import (
	"context"
	"crypto/subtle"
	"errors"

	"floreria-be/internal/logger"
	"floreria-be/internal/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const identityKey = "user"

// The two built-in back-office accounts. They never appear in the
// registration list.
var builtinAccounts = []struct {
	user     User
	password string
}{
	{
		user:     User{ID: "1", Name: "Administrador", Email: "admin@floreria.com", Role: RoleAdmin, Provider: ProviderEmail},
		password: "admin123",
	},
	{
		user:     User{ID: "2", Name: "Supervisor", Email: "supervisor@floreria.com", Role: RoleSupervisor, Provider: ProviderEmail},
		password: "super123",
	},
}

type Service interface {
	Login(ctx context.Context, email, password string) (string, User, error)
	LoginWithGoogle(ctx context.Context, credential string) (string, User, error)
	Register(ctx context.Context, name, email, password, phone string) (string, User, error)
	Logout(ctx context.Context, userID string) error
	List(ctx context.Context) ([]User, error)
	UpdateRole(ctx context.Context, id string, role Role) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo  Repository
	store session.Store
}

func NewService(repo Repository, store session.Store) Service {
	return &service{repo: repo, store: store}
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	for _, acc := range builtinAccounts {
		if acc.user.Email != email {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(acc.password), []byte(password)) != 1 {
			return "", User{}, ErrInvalidCredentials
		}
		return s.openSession(ctx, acc.user)
	}

	reg, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", User{}, ErrInvalidCredentials
	}
	if !CheckPasswordHash(password, reg.Password) {
		return "", User{}, ErrInvalidCredentials
	}

	return s.openSession(ctx, reg.User())
}

func (s *service) LoginWithGoogle(ctx context.Context, credential string) (string, User, error) {
	log := logger.FromCtx(ctx)

	claims, err := DecodeGoogleCredential(credential)
	if err != nil {
		log.Error("failed to decode google credential", zap.Error(err))
		return "", User{}, ErrInvalidCredential
	}

	existing, err := s.repo.FindByEmail(ctx, claims.Email)
	switch {
	case err == nil:
		// Refresh the record with the Google profile; the assigned role
		// and phone survive.
		existing.Name = claims.DisplayName()
		existing.Picture = claims.Picture
		existing.Provider = ProviderGoogle
		if existing.Role == "" {
			existing.Role = RoleCustomer
		}
		if err := s.repo.Update(ctx, *existing); err != nil {
			return "", User{}, err
		}
		return s.openSession(ctx, existing.User())

	case errors.Is(err, ErrUserNotFound):
		id := claims.Sub
		if id == "" {
			id = uuid.New().String()
		}
		reg := Registration{
			ID:       id,
			Name:     claims.DisplayName(),
			Email:    claims.Email,
			Role:     RoleCustomer,
			Picture:  claims.Picture,
			Provider: ProviderGoogle,
		}
		if err := s.repo.Create(ctx, reg); err != nil {
			return "", User{}, err
		}
		return s.openSession(ctx, reg.User())

	default:
		return "", User{}, err
	}
}

func (s *service) Register(ctx context.Context, name, email, password, phone string) (string, User, error) {
	log := logger.FromCtx(ctx)

	for _, acc := range builtinAccounts {
		if acc.user.Email == email {
			return "", User{}, ErrEmailExists
		}
	}
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", User{}, ErrEmailExists
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", User{}, err
	}

	reg := Registration{
		ID:       uuid.New().String(),
		Name:     name,
		Email:    email,
		Password: hashed,
		Phone:    phone,
		Role:     RoleCustomer,
		Provider: ProviderEmail,
	}
	if err := s.repo.Create(ctx, reg); err != nil {
		return "", User{}, err
	}

	log.Info("user registered", zap.String("user_id", reg.ID), zap.String("email", email))

	// Registration logs the user straight in.
	return s.openSession(ctx, reg.User())
}

// openSession issues the API token and persists the identity snapshot under
// the user-scoped "user" document.
func (s *service) openSession(ctx context.Context, u User) (string, User, error) {
	token, err := GenerateJWT(u.ID, u.Role, u.Email)
	if err != nil {
		return "", User{}, err
	}

	if err := session.Scoped(s.store, u.ID).Set(ctx, identityKey, u); err != nil {
		return "", User{}, err
	}

	logger.FromCtx(ctx).Info("session opened",
		zap.String("user_id", u.ID),
		zap.String("role", string(u.Role)),
	)

	return token, u, nil
}

func (s *service) Logout(ctx context.Context, userID string) error {
	return session.Scoped(s.store, userID).Delete(ctx, identityKey)
}

func (s *service) List(ctx context.Context) ([]User, error) {
	regs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]User, 0, len(regs))
	for _, reg := range regs {
		users = append(users, reg.User())
	}
	return users, nil
}

func (s *service) UpdateRole(ctx context.Context, id string, role Role) error {
	if !role.Valid() {
		return errors.New("invalid role: " + string(role))
	}

	reg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	reg.Role = role
	return s.repo.Update(ctx, *reg)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
