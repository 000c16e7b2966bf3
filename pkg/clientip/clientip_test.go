package clientip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/loginkit/pkg/clientip"
)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{"remote addr", nil, "10.0.0.1:5000", "10.0.0.1"},
		{"remote addr without port", nil, "10.0.0.2", "10.0.0.2"},
		{"cloudflare wins", map[string]string{"CF-Connecting-IP": "1.1.1.1", "X-Forwarded-For": "2.2.2.2"}, "10.0.0.1:1", "1.1.1.1"},
		{"first valid forwarded entry", map[string]string{"X-Forwarded-For": "garbage, 3.3.3.3, 4.4.4.4"}, "10.0.0.1:1", "3.3.3.3"},
		{"real ip", map[string]string{"X-Real-IP": "5.5.5.5"}, "10.0.0.1:1", "5.5.5.5"},
		{"invalid headers fall back", map[string]string{"X-Real-IP": "nope"}, "10.0.0.1:1", "10.0.0.1"},
		{"ipv6 normalized", map[string]string{"X-Real-IP": "2001:DB8::1"}, "10.0.0.1:1", "2001:db8::1"},
		{"nothing valid", nil, "bogus", ""},
	}

	rv := clientip.NewResolver(clientip.DefaultHeaders...)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, rv.Resolve(req))
		})
	}
}

func TestResolver_UntrustedHeadersIgnored(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.9:80"
	req.Header.Set("X-Forwarded-For", "6.6.6.6")

	assert.Equal(t, "10.0.0.9", clientip.NewResolver().Resolve(req))
}

func TestResolver_Middleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.NewResolver(clientip.DefaultHeaders...).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "7.7.7.7")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "7.7.7.7", got)

	attr, ok := clientip.LoggerExtractor()(clientip.WithContext(context.Background(), "8.8.8.8"))
	assert.True(t, ok)
	assert.Equal(t, "8.8.8.8", attr.Value.String())

	_, ok = clientip.LoggerExtractor()(context.Background())
	assert.False(t, ok)
}
