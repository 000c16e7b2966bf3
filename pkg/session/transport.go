package session

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/loginkit/pkg/cookie"
)

// Transport moves the session token between client and server.
type Transport interface {
	Token(r *http.Request) (string, error)
	SetToken(w http.ResponseWriter, token string, ttl time.Duration) error
	ClearToken(w http.ResponseWriter)
}

// CookieTransport carries the token in a sealed cookie.
type CookieTransport struct {
	jar  *cookie.Jar
	name string
	opts []cookie.Option
}

func NewCookieTransport(jar *cookie.Jar, name string, opts ...cookie.Option) *CookieTransport {
	return &CookieTransport{jar: jar, name: name, opts: opts}
}

func (t *CookieTransport) Token(r *http.Request) (string, error) {
	token, err := t.jar.GetSealed(r, t.name)
	if err != nil || token == "" {
		return "", ErrSessionNotFound
	}
	return token, nil
}

func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	opts := append([]cookie.Option{
		cookie.WithMaxAge(int(ttl.Seconds())),
		cookie.WithHTTPOnly(true),
	}, t.opts...)
	return t.jar.SetSealed(w, t.name, token, opts...)
}

func (t *CookieTransport) ClearToken(w http.ResponseWriter) {
	t.jar.Delete(w, t.name)
}
