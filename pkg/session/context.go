package session

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type sessionContextKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionContextKey{}).(*Session)
	return s, ok && s != nil
}

// CredentialID returns the signed-in credential of the session in ctx.
func CredentialID(ctx context.Context) (uuid.UUID, bool) {
	s, ok := FromContext(ctx)
	if !ok || !s.Authenticated() {
		return uuid.Nil, false
	}
	return *s.CredentialID, true
}

// LoggerExtractor adds the signed-in credential ID to log records.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := CredentialID(ctx); ok {
			return slog.String("credential_id", id.String()), true
		}
		return slog.Attr{}, false
	}
}
