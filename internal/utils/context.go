// Package utils provides general-purpose helpers used across the portal:
// type-safe context keys, JSON response writing, the HTTP client wrapper,
// session token signing and parsing, password hashing, redirect target
// sanitising and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/mentem-portal/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// SessionClaimsCtxKey is the key under which the session middleware stores
// the parsed *models.SessionClaims of the current request.
var SessionClaimsCtxKey = contextKey("sessionClaims")

// WithSessionClaims returns a copy of ctx carrying claims.
func WithSessionClaims(ctx context.Context, claims *models.SessionClaims) context.Context {
	return context.WithValue(ctx, SessionClaimsCtxKey, claims)
}

// GetSessionClaimsFromContext retrieves the session claims from the context.
// ok is false when no valid session was attached.
func GetSessionClaimsFromContext(ctx context.Context) (*models.SessionClaims, bool) {
	claims, ok := ctx.Value(SessionClaimsCtxKey).(*models.SessionClaims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}

// GetUserIDFromContext returns the subject of the session attached to ctx.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	claims, ok := GetSessionClaimsFromContext(ctx)
	if !ok || claims.UserID() == "" {
		return "", false
	}
	return claims.UserID(), true
}
