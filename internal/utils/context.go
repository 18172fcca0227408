// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and trace id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-identity/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// userCtxKey is the key under which the authenticated user is stored.
// It is unexported so the only way in or out is WithUser / UserFromContext.
var userCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying the authenticated user.
//
// The password hash is cleared before the record is attached, so
// downstream handlers never see it.
func WithUser(ctx context.Context, user models.User) context.Context {
	user.PasswordHash = ""
	return context.WithValue(ctx, userCtxKey, user)
}

// UserFromContext retrieves the authenticated user attached by WithUser.
//
// Returns ok == false when no user is present.
//
// Example usage:
//
//	user, ok := utils.UserFromContext(r.Context())
//	if !ok {
//	    // handle missing user in context
//	}
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userCtxKey).(models.User)
	return user, ok
}
