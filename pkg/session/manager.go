package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/loginkit/pkg/cookie"
)

// Manager runs the session life-cycle on top of a Store and a Transport.
type Manager struct {
	store     Store
	transport Transport
	config    Config
	jar       *cookie.Jar
	jarOpts   []cookie.Option
	now       func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

func WithStore(store Store) Option {
	return func(m *Manager) { m.store = store }
}

func WithTransport(t Transport) Option {
	return func(m *Manager) { m.transport = t }
}

func WithConfig(cfg Config) Option {
	return func(m *Manager) { m.config = cfg }
}

// WithCookieJar carries tokens in a sealed cookie named Config.CookieName.
func WithCookieJar(jar *cookie.Jar, opts ...cookie.Option) Option {
	return func(m *Manager) {
		m.jar = jar
		m.jarOpts = opts
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// New creates a Manager. A transport or a cookie jar is required.
func New(opts ...Option) *Manager {
	m := &Manager{
		config: DefaultConfig(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = NewMemoryStore(m.config.CleanupInterval)
	}
	if m.transport == nil {
		if m.jar == nil {
			panic("session: cookie jar is required when no transport is configured")
		}
		m.transport = NewCookieTransport(m.jar, m.config.CookieName, m.jarOpts...)
	}
	return m
}

// NewFromConfig creates a Manager from cfg. Later options override cfg.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	return New(append([]Option{WithConfig(cfg)}, opts...)...)
}

// Load returns the session referenced by the request, if any.
func (m *Manager) Load(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := m.transport.Token(r)
	if err != nil {
		return nil, err
	}
	s, err := m.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	if s.ExpiredAt(m.now()) {
		_ = m.store.Delete(ctx, token)
		return nil, ErrSessionExpired
	}
	return s, nil
}

// Start returns the current session or creates an anonymous one.
func (m *Manager) Start(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Session, error) {
	if s, err := m.Load(ctx, r); err == nil {
		return s, nil
	}
	return m.issue(ctx, w, nil)
}

// SignIn binds credentialID to a fresh session token.
// Any previous session for the request is discarded so a pre-login token can never be reused.
func (m *Manager) SignIn(ctx context.Context, w http.ResponseWriter, r *http.Request, credentialID uuid.UUID) (*Session, error) {
	if old, err := m.transport.Token(r); err == nil {
		_ = m.store.Delete(ctx, old)
	}
	return m.issue(ctx, w, &credentialID)
}

// SignOut deletes the session and clears the token on the client.
func (m *Manager) SignOut(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	defer m.transport.ClearToken(w)

	token, err := m.transport.Token(r)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, token)
}

// Save persists changes made to s.
func (m *Manager) Save(ctx context.Context, s *Session) error {
	return m.store.Save(ctx, s)
}

// Touch slides the idle expiry forward when TouchInterval has passed since the last extension.
func (m *Manager) Touch(ctx context.Context, w http.ResponseWriter, s *Session) error {
	now := m.now()
	if now.Sub(s.LastSeenAt) < m.config.TouchInterval {
		return nil
	}

	s.LastSeenAt = now
	s.ExpiresAt = m.expiry(s.CreatedAt, now)
	if err := m.store.Save(ctx, s); err != nil {
		return err
	}
	return m.transport.SetToken(w, s.Token, s.ExpiresAt.Sub(now))
}

func (m *Manager) issue(ctx context.Context, w http.ResponseWriter, credentialID *uuid.UUID) (*Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := m.now()
	s := newSession(token, now, m.expiry(now, now))
	s.CredentialID = credentialID

	if err := m.store.Save(ctx, s); err != nil {
		return nil, err
	}
	if err := m.transport.SetToken(w, token, s.ExpiresAt.Sub(now)); err != nil {
		_ = m.store.Delete(ctx, token)
		return nil, err
	}
	return s, nil
}

// expiry is the earlier of the idle deadline and the lifetime cap.
func (m *Manager) expiry(createdAt, now time.Time) time.Time {
	idle := now.Add(m.config.IdleTimeout)
	max := createdAt.Add(m.config.MaxLifetime)
	if max.Before(idle) {
		return max
	}
	return idle
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
