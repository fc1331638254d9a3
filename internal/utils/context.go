package utils

import (
	"context"

	"floreria-be/internal/user"
)

type ctxKey string

const claimsKey ctxKey = "jwt_claims"

func WithClaims(ctx context.Context, claims *user.CustomClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func ClaimsFrom(ctx context.Context) (*user.CustomClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*user.CustomClaims)
	return claims, ok
}

// GetUserIDFromContext returns the authenticated user's id, or "" when the
// request is anonymous.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	claims, ok := ClaimsFrom(ctx)
	if !ok {
		return "", false
	}
	return claims.UserID, true
}
