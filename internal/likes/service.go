package likes

import (
	"context"
	"errors"

	"floreria-be/internal/session"
)

// Service tracks each user's liked product ids, persisted as a JSON array
// under the "likes_<userId>" document.
type Service interface {
	Toggle(ctx context.Context, userID, productID string) (liked bool, err error)
	Liked(ctx context.Context, userID string) ([]string, error)
	IsLiked(ctx context.Context, userID, productID string) (bool, error)
}

type service struct {
	store session.Store
}

func NewService(store session.Store) Service {
	return &service{store: store}
}

func likesKey(userID string) string {
	return "likes_" + userID
}

// Toggle adds the product to the user's likes, or removes it when already
// present. Returns whether the product is liked after the call.
func (s *service) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	ids, err := s.Liked(ctx, userID)
	if err != nil {
		return false, err
	}

	out := make([]string, 0, len(ids)+1)
	removed := false
	for _, id := range ids {
		if id == productID {
			removed = true
			continue
		}
		out = append(out, id)
	}
	if !removed {
		out = append(out, productID)
	}

	if err := s.store.Set(ctx, likesKey(userID), out); err != nil {
		return false, err
	}
	return !removed, nil
}

func (s *service) Liked(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := s.store.Get(ctx, likesKey(userID), &ids)
	if errors.Is(err, session.ErrNoDocument) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *service) IsLiked(ctx context.Context, userID, productID string) (bool, error) {
	ids, err := s.Liked(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == productID {
			return true, nil
		}
	}
	return false, nil
}
