package session

import (
	"context"
	"errors"
)

// ErrNoDocument is returned when no document exists under the given key.
var ErrNoDocument = errors.New("session: no document")

// Store persists application state as one JSON document per key, mirroring
// the storage layout of the storefront: "user", "registeredUsers",
// "likes_<userId>" and "cartItems".
type Store interface {
	Get(ctx context.Context, key string, into any) error
	Set(ctx context.Context, key string, doc any) error
	Delete(ctx context.Context, key string) error
}

// Scoped returns a view of the store whose keys are prefixed with an owner
// id. Documents that were per-browser in the original layout ("user",
// "cartItems") become per-user server-side without changing their names.
func Scoped(s Store, ownerID string) Store {
	return &scoped{inner: s, prefix: ownerID + ":"}
}

type scoped struct {
	inner  Store
	prefix string
}

func (s *scoped) Get(ctx context.Context, key string, into any) error {
	return s.inner.Get(ctx, s.prefix+key, into)
}

func (s *scoped) Set(ctx context.Context, key string, doc any) error {
	return s.inner.Set(ctx, s.prefix+key, doc)
}

func (s *scoped) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}
