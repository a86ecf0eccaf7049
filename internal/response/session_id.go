package response

import (
	"context"

	"github.com/google/uuid"
)

type sessionIDKey struct{}

// NewSessionID generates a unique identifier for an interpreter session.
func NewSessionID() string {
	return uuid.New().String()
}

// WithSessionID stores the session ID on ctx.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionID returns the session ID stored on ctx, or "" if none.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey{}).(string)
	return id
}
