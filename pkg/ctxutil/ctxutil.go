// Package ctxutil carries the session user and request ID through a
// request context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	userIDKey    struct{}
	requestIDKey struct{}
)

// WithUserID marks ctx as belonging to a signed-in user.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx reports the signed-in user. A missing value or uuid.Nil
// means the request is anonymous.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, _ := ctx.Value(userIDKey{}).(uuid.UUID)
	return id, id != uuid.Nil
}

// UserIDPtr is UserIDFromCtx for optional owner fields: nil when anonymous.
func UserIDPtr(ctx context.Context) *uuid.UUID {
	if id, ok := UserIDFromCtx(ctx); ok {
		return &id
	}
	return nil
}

// WithRequestID stores the request ID echoed in X-Request-Id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request ID, or "" outside a request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
