package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/joinrss-backend/internal/domain"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	requestIDKey ctxKey = "request_id"
	sessionKey   ctxKey = "session"
)

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithSession stores the authenticated session in the context, along with
// its user ID.
func WithSession(ctx context.Context, s domain.Session) context.Context {
	ctx = WithUserID(ctx, s.UserID)
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromCtx extracts the authenticated session from the context.
func SessionFromCtx(ctx context.Context) (domain.Session, bool) {
	s, ok := ctx.Value(sessionKey).(domain.Session)
	if !ok || s.ID == uuid.Nil {
		return domain.Session{}, false
	}
	return s, true
}
