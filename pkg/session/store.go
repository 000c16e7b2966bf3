package session

import "context"

// Store persists sessions keyed by token.
type Store interface {
	// Save creates or replaces the session.
	Save(ctx context.Context, s *Session) error

	// Load returns ErrSessionNotFound for unknown tokens and ErrSessionExpired
	// for sessions past their expiry.
	Load(ctx context.Context, token string) (*Session, error)

	// Delete is a no-op for unknown tokens.
	Delete(ctx context.Context, token string) error
}
