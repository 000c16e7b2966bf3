package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side browser session.
// CredentialID is set once the visitor has signed in.
type Session struct {
	ID           uuid.UUID         `json:"id"`
	Token        string            `json:"token"`
	CredentialID *uuid.UUID        `json:"credential_id,omitempty"`
	Values       map[string]string `json:"values,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	LastSeenAt   time.Time         `json:"last_seen_at"`
	ExpiresAt    time.Time         `json:"expires_at"`
}

func newSession(token string, now, expiresAt time.Time) *Session {
	return &Session{
		ID:         uuid.New(),
		Token:      token,
		Values:     make(map[string]string),
		CreatedAt:  now,
		LastSeenAt: now,
		ExpiresAt:  expiresAt,
	}
}

// Authenticated reports whether the session belongs to a signed-in credential.
func (s *Session) Authenticated() bool {
	return s != nil && s.CredentialID != nil
}

// ExpiredAt reports whether the session is expired at t.
func (s *Session) ExpiredAt(t time.Time) bool {
	return s == nil || !t.Before(s.ExpiresAt)
}

func (s *Session) Get(key string) (string, bool) {
	if s == nil || s.Values == nil {
		return "", false
	}
	v, ok := s.Values[key]
	return v, ok
}

func (s *Session) Set(key, value string) {
	if s.Values == nil {
		s.Values = make(map[string]string)
	}
	s.Values[key] = value
}

func (s *Session) Delete(key string) {
	delete(s.Values, key)
}

func (s *Session) clone() *Session {
	c := *s
	if s.CredentialID != nil {
		id := *s.CredentialID
		c.CredentialID = &id
	}
	if s.Values != nil {
		c.Values = make(map[string]string, len(s.Values))
		for k, v := range s.Values {
			c.Values[k] = v
		}
	}
	return &c
}
