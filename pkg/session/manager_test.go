package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/loginkit/pkg/cookie"
	"github.com/dmitrymomot/loginkit/pkg/session"
)

type clock struct{ t time.Time }

func (c *clock) Now() time.Time          { return c.t }
func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newManager(t *testing.T, opts ...session.Option) (*session.Manager, *session.MemoryStore) {
	t.Helper()

	jar, err := cookie.New([]string{strings.Repeat("k", 32)})
	require.NoError(t, err)

	store := session.NewMemoryStore(0)
	t.Cleanup(func() { _ = store.Close() })

	base := []session.Option{session.WithCookieJar(jar), session.WithStore(store)}
	return session.New(append(base, opts...)...), store
}

// follow builds a request carrying the cookies set on rec.
func follow(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge >= 0 {
			req.AddCookie(c)
		}
	}
	return req
}

func TestNew_RequiresTransport(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { session.New() })
}

func TestManager_LoadWithoutCookie(t *testing.T) {
	t.Parallel()

	m, _ := newManager(t)
	_, err := m.Load(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestManager_StartIsIdempotent(t *testing.T) {
	t.Parallel()

	m, store := newManager(t)
	ctx := context.Background()

	rec := httptest.NewRecorder()
	s, err := m.Start(ctx, rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.False(t, s.Authenticated())
	assert.Equal(t, 1, store.Len())

	again, err := m.Start(ctx, httptest.NewRecorder(), follow(rec))
	require.NoError(t, err)
	assert.Equal(t, s.ID, again.ID)
	assert.Equal(t, 1, store.Len())
}

func TestManager_SignInRotatesToken(t *testing.T) {
	t.Parallel()

	m, store := newManager(t)
	ctx := context.Background()

	anonRec := httptest.NewRecorder()
	anon, err := m.Start(ctx, anonRec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	id := uuid.New()
	signRec := httptest.NewRecorder()
	s, err := m.SignIn(ctx, signRec, follow(anonRec), id)
	require.NoError(t, err)
	assert.True(t, s.Authenticated())
	assert.Equal(t, id, *s.CredentialID)
	assert.NotEqual(t, anon.Token, s.Token)
	assert.Equal(t, 1, store.Len(), "pre-login session is discarded")

	_, err = store.Load(ctx, anon.Token)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	loaded, err := m.Load(ctx, follow(signRec))
	require.NoError(t, err)
	assert.Equal(t, s.ID, loaded.ID)
}

func TestManager_SignOut(t *testing.T) {
	t.Parallel()

	m, store := newManager(t)
	ctx := context.Background()

	rec := httptest.NewRecorder()
	_, err := m.SignIn(ctx, rec, httptest.NewRequest(http.MethodGet, "/", nil), uuid.New())
	require.NoError(t, err)

	outRec := httptest.NewRecorder()
	require.NoError(t, m.SignOut(ctx, outRec, follow(rec)))
	assert.Zero(t, store.Len())

	cleared := outRec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, "sid", cleared[0].Name)
	assert.Equal(t, -1, cleared[0].MaxAge)

	_, err = m.Load(ctx, follow(rec))
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	t.Run("without a session", func(t *testing.T) {
		assert.NoError(t, m.SignOut(ctx, httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)))
	})
}

func TestManager_Expiry(t *testing.T) {
	t.Parallel()

	clk := &clock{t: time.Now()}
	cfg := session.DefaultConfig()
	cfg.IdleTimeout = 10 * time.Minute
	cfg.MaxLifetime = time.Hour
	cfg.TouchInterval = time.Minute

	m, _ := newManager(t, session.WithConfig(cfg), session.WithClock(clk.Now))
	ctx := context.Background()

	rec := httptest.NewRecorder()
	s, err := m.SignIn(ctx, rec, httptest.NewRequest(http.MethodGet, "/", nil), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, clk.t.Add(10*time.Minute), s.ExpiresAt)

	t.Run("touch slides the idle deadline", func(t *testing.T) {
		clk.Advance(5 * time.Minute)
		loaded, err := m.Load(ctx, follow(rec))
		require.NoError(t, err)
		require.NoError(t, m.Touch(ctx, httptest.NewRecorder(), loaded))
		assert.Equal(t, clk.t.Add(10*time.Minute), loaded.ExpiresAt)
	})

	t.Run("idle timeout expires", func(t *testing.T) {
		clk.Advance(11 * time.Minute)
		_, err := m.Load(ctx, follow(rec))
		assert.ErrorIs(t, err, session.ErrSessionExpired)
	})
}

func TestManager_ExpiryCappedByLifetime(t *testing.T) {
	t.Parallel()

	clk := &clock{t: time.Now()}
	cfg := session.DefaultConfig()
	cfg.IdleTimeout = time.Hour
	cfg.MaxLifetime = 30 * time.Minute

	m, _ := newManager(t, session.WithConfig(cfg), session.WithClock(clk.Now))

	s, err := m.Start(context.Background(), httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, clk.t.Add(30*time.Minute), s.ExpiresAt)
}

func TestManager_Middleware(t *testing.T) {
	t.Parallel()

	m, _ := newManager(t)
	id := uuid.New()

	rec := httptest.NewRecorder()
	_, err := m.SignIn(context.Background(), rec, httptest.NewRequest(http.MethodGet, "/", nil), id)
	require.NoError(t, err)

	var (
		got   uuid.UUID
		found bool
	)
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = session.CredentialID(r.Context())
	}))

	h.ServeHTTP(httptest.NewRecorder(), follow(rec))
	assert.True(t, found)
	assert.Equal(t, id, got)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, found)
}

func TestSession_Values(t *testing.T) {
	t.Parallel()

	var s session.Session
	_, ok := s.Get("k")
	assert.False(t, ok)

	s.Set("k", "v")
	v, ok := s.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	s.Delete("k")
	_, ok = s.Get("k")
	assert.False(t, ok)

	var nilSession *session.Session
	assert.False(t, nilSession.Authenticated())
	assert.True(t, nilSession.ExpiredAt(time.Now()))
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore(0)
	defer store.Close()
	ctx := context.Background()

	assert.ErrorIs(t, store.Save(ctx, nil), session.ErrInvalidSession)
	assert.ErrorIs(t, store.Save(ctx, &session.Session{}), session.ErrInvalidSession)

	live := &session.Session{Token: "live", ExpiresAt: time.Now().Add(time.Hour), Values: map[string]string{"a": "1"}}
	dead := &session.Session{Token: "dead", ExpiresAt: time.Now().Add(-time.Second)}
	require.NoError(t, store.Save(ctx, live))
	require.NoError(t, store.Save(ctx, dead))

	got, err := store.Load(ctx, "live")
	require.NoError(t, err)
	got.Values["a"] = "changed"
	again, _ := store.Load(ctx, "live")
	assert.Equal(t, "1", again.Values["a"], "loaded sessions are copies")

	assert.Equal(t, 1, store.DeleteExpired())
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete(ctx, "live"))
	_, err = store.Load(ctx, "live")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
