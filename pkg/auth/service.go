package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/loginkit/pkg/logger"
	"github.com/dmitrymomot/loginkit/pkg/session"
)

// Service checks credentials and owns the login session life-cycle.
type Service struct {
	creds    CredentialStore
	sessions *session.Manager
	logger   *slog.Logger
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewService(creds CredentialStore, sessions *session.Manager, opts ...Option) *Service {
	s := &Service{
		creds:    creds,
		sessions: sessions,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Verify checks identifier and secret without touching the session.
func (s *Service) Verify(ctx context.Context, identifier, secret string) (*Credential, error) {
	cred, err := s.creds.ByIdentifier(ctx, identifier)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !cred.Matches(secret) {
		return nil, ErrInvalidCredentials
	}
	return cred, nil
}

// Login verifies the pair and, on success, starts an authenticated session.
func (s *Service) Login(ctx context.Context, w http.ResponseWriter, r *http.Request, identifier, secret string) (*Credential, error) {
	cred, err := s.Verify(ctx, identifier, secret)
	if err != nil {
		s.logger.InfoContext(ctx, "login rejected",
			logger.Component("auth"),
			logger.Event("login_failed"),
		)
		return nil, err
	}

	if _, err := s.sessions.SignIn(ctx, w, r, cred.ID); err != nil {
		s.logger.ErrorContext(ctx, "failed to start session",
			logger.Component("auth"),
			logger.UserID(cred.ID.String()),
			logger.Error(err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "login succeeded",
		logger.Component("auth"),
		logger.Event("login"),
		logger.UserID(cred.ID.String()),
	)
	return cred, nil
}

// Logout ends the current session. It succeeds when there is no session.
func (s *Service) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if err := s.sessions.SignOut(ctx, w, r); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "logout", logger.Component("auth"), logger.Event("logout"))
	return nil
}

// IsLoggedIn reports whether the request carries an authenticated session.
func (s *Service) IsLoggedIn(r *http.Request) bool {
	_, err := s.Current(r)
	return err == nil
}

// Current returns the credential of the signed-in visitor.
// The session placed in the context by session middleware is preferred over a store lookup.
func (s *Service) Current(r *http.Request) (*Credential, error) {
	ctx := r.Context()

	sess, ok := session.FromContext(ctx)
	if !ok {
		loaded, err := s.sessions.Load(ctx, r)
		if err != nil {
			return nil, ErrNotAuthenticated
		}
		sess = loaded
	}
	if !sess.Authenticated() {
		return nil, ErrNotAuthenticated
	}

	cred, err := s.creds.ByID(ctx, *sess.CredentialID)
	if err != nil {
		if errors.Is(err, ErrCredentialNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}
	return cred, nil
}
