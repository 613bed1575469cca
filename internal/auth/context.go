// Package auth resolves the acting user for audit fields. There is no
// enforcement yet; the boundary stays pluggable so real authentication
// can slot in without touching the usecases.
package auth

import "context"

type ctxKey string

const userIDKey ctxKey = "user_id"

// SystemUser is recorded as the actor when no caller identity is
// provided.
const SystemUser = "system"

// WithUserID stores the acting user id on the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID returns the acting user id, SystemUser when absent.
func UserID(ctx context.Context) string {
	if val, ok := ctx.Value(userIDKey).(string); ok && val != "" {
		return val
	}
	return SystemUser
}
