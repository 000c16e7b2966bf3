package auth

import (
	"context"
	"net/http"
)

type credentialContextKey struct{}

// WithCredential stores the signed-in credential in ctx.
func WithCredential(ctx context.Context, c *Credential) context.Context {
	return context.WithValue(ctx, credentialContextKey{}, c)
}

// CredentialFromContext returns the credential placed by RequireLogin.
func CredentialFromContext(ctx context.Context) (*Credential, bool) {
	c, ok := ctx.Value(credentialContextKey{}).(*Credential)
	return c, ok && c != nil
}

// RequireLogin redirects anonymous visitors to loginPath and exposes the
// credential to downstream handlers otherwise.
func (s *Service) RequireLogin(loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cred, err := s.Current(r)
			if err != nil {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithCredential(r.Context(), cred)))
		})
	}
}

// RedirectAuthenticated sends signed-in visitors to target, e.g. away from the login page.
func (s *Service) RedirectAuthenticated(target string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s.IsLoggedIn(r) {
				http.Redirect(w, r, target, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
