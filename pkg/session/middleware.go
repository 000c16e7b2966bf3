package session

import (
	"errors"
	"net/http"
)

// Middleware attaches the request's session, if any, to the context and keeps it alive.
// Requests without a valid session pass through untouched; stale tokens are cleared.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := m.Load(r.Context(), r)
		if err != nil {
			if errors.Is(err, ErrSessionExpired) || errors.Is(err, ErrInvalidSession) {
				m.transport.ClearToken(w)
			}
			next.ServeHTTP(w, r)
			return
		}

		_ = m.Touch(r.Context(), w, s)
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
	})
}
