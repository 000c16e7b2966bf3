package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/loginkit/binder"
)

type credentials struct {
	Email    string   `form:"email" query:"email"`
	Password string   `form:"password" query:"-"`
	Remember bool     `form:"remember"`
	Attempts *int     `form:"attempts"`
	Tags     []string `query:"tags"`
	Internal string   `form:"-"`
}

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")
	return req
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("binds tagged fields", func(t *testing.T) {
		t.Parallel()
		req := formRequest(url.Values{
			"email":    {"admin@test.com"},
			"password": {"123456"},
			"remember": {"on"},
			"attempts": {"2"},
			"internal": {"secret"},
		})

		var got credentials
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, "admin@test.com", got.Email)
		assert.Equal(t, "123456", got.Password)
		assert.True(t, got.Remember)
		require.NotNil(t, got.Attempts)
		assert.Equal(t, 2, *got.Attempts)
		assert.Empty(t, got.Internal)
	})

	t.Run("not applicable", func(t *testing.T) {
		t.Parallel()
		var got credentials

		get := httptest.NewRequest(http.MethodGet, "/login?email=x", nil)
		assert.ErrorIs(t, binder.Form()(get, &got), binder.ErrBinderNotApplicable)

		ds := formRequest(url.Values{"email": {"x"}})
		ds.Header.Set("Datastar-Request", "true")
		assert.ErrorIs(t, binder.Form()(ds, &got), binder.ErrBinderNotApplicable)
	})

	t.Run("content type errors", func(t *testing.T) {
		t.Parallel()
		var got credentials

		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("email=x"))
		err := binder.Form()(req, &got)
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
		assert.True(t, binder.IsBindingError(err))

		req = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrUnsupportedMediaType)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		var got credentials
		err := binder.Form()(formRequest(url.Values{"attempts": {"many"}}), &got)
		assert.ErrorIs(t, err, binder.ErrInvalidForm)
	})

	t.Run("target must be a struct pointer", func(t *testing.T) {
		t.Parallel()
		var s string
		assert.ErrorIs(t, binder.Form()(formRequest(url.Values{}), &s), binder.ErrInvalidForm)
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/login?email=a%40b.co&password=leak&tags=a,b&tags=c", nil)
	var got credentials
	require.NoError(t, binder.Query()(req, &got))
	assert.Equal(t, "a@b.co", got.Email)
	assert.Empty(t, got.Password)
	assert.Equal(t, []string{"a", "b", "c"}, got.Tags)
}

func TestJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Value   any    `json:"value"`
		Rules   string `json:"rules"`
		Touched bool   `json:"touched"`
	}

	tests := []struct {
		name        string
		contentType string
		body        string
		wantErr     error
	}{
		{"valid", "application/json", `{"value":"x","rules":"required","touched":true}`, nil},
		{"charset", "application/json; charset=utf-8", `{"rules":"email"}`, nil},
		{"missing content type", "", `{}`, binder.ErrMissingContentType},
		{"wrong content type", "text/plain", `{}`, binder.ErrUnsupportedMediaType},
		{"empty body", "application/json", ``, binder.ErrInvalidJSON},
		{"unknown field", "application/json", `{"nope":1}`, binder.ErrInvalidJSON},
		{"trailing data", "application/json", `{} {}`, binder.ErrInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/api/validate", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			var got payload
			err := binder.JSON()(req, &got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSignals(t *testing.T) {
	t.Parallel()

	type signals struct {
		Fields  map[string]any  `json:"fields"`
		Touched map[string]bool `json:"touched"`
	}

	t.Run("reads body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/login/validate?field=email",
			strings.NewReader(`{"fields":{"email":"x"},"touched":{"email":true}}`))
		req.Header.Set("Datastar-Request", "true")
		req.Header.Set("Content-Type", "application/json")

		var got signals
		require.NoError(t, binder.Signals()(req, &got))
		assert.Equal(t, "x", got.Fields["email"])
		assert.True(t, got.Touched["email"])
	})

	t.Run("reads query on GET", func(t *testing.T) {
		t.Parallel()
		q := url.Values{"datastar": {`{"fields":{"email":"y"}}`}}
		req := httptest.NewRequest(http.MethodGet, "/login?"+q.Encode(), nil)
		req.Header.Set("Datastar-Request", "true")

		var got signals
		require.NoError(t, binder.Signals()(req, &got))
		assert.Equal(t, "y", got.Fields["email"])
	})

	t.Run("not applicable", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{}`))
		var got signals
		assert.ErrorIs(t, binder.Signals()(req, &got), binder.ErrBinderNotApplicable)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"fields":`))
		req.Header.Set("Datastar-Request", "true")
		var got signals
		err := binder.Signals()(req, &got)
		assert.ErrorIs(t, err, binder.ErrInvalidSignals)
		assert.True(t, binder.IsBindingError(err))
	})
}
