package views_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/loginkit/handler"
	"github.com/dmitrymomot/loginkit/pkg/form"
	"github.com/dmitrymomot/loginkit/views"
)

const loginYAML = `
id: login
title: Sign in
action: /login
submit: Sign in
fields:
  - name: email
    label: Email
    type: email
    rules: required,email
  - name: password
    label: Password
    type: password
    rules: required,noWhitespace
  - name: tenant
    label: Tenant
    readonly: true
    rules: required
`

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func newForm(t *testing.T) *form.Form {
	t.Helper()
	def, err := form.ParseDefinition([]byte(loginYAML))
	require.NoError(t, err)
	return form.New(def)
}

func TestLoginPage(t *testing.T) {
	t.Parallel()

	f := newForm(t)
	_, err := f.Change("email", `a"b<c`)
	require.NoError(t, err)
	_, err = f.Change("password", "secret")
	require.NoError(t, err)

	out := render(t, views.LoginPage(views.LoginPageParams{
		LoginFormParams: views.LoginFormParams{Form: f, ValidateURL: "/login/validate"},
		Flash:           "You have been signed out.",
	}))

	assert.Contains(t, out, "<title>Sign in</title>")
	assert.Contains(t, out, views.DatastarScript)
	assert.Contains(t, out, `id="login-form"`)
	assert.Contains(t, out, `id="login-alert"`)
	assert.Contains(t, out, "You have been signed out.")
	assert.Contains(t, out, `value="a&#34;b&lt;c"`)
	assert.NotContains(t, out, "secret", "passwords are never echoed")
	assert.Contains(t, out, `data-on-blur="$touched.email = true; @post(&#39;/login/validate?field=email&#39;)"`)
	assert.Contains(t, out, `id="email-error"`)
	assert.Contains(t, out, `id="password-error"`)
	assert.Contains(t, out, `id="tenant-error"`)
	assert.Contains(t, out, " readonly")
}

func TestField_GatedHasNoValidateAction(t *testing.T) {
	t.Parallel()

	f := newForm(t)
	tenant, err := f.Field("tenant")
	require.NoError(t, err)

	out := render(t, views.Field(tenant, "/login/validate"))
	assert.NotContains(t, out, "data-on-blur")
	assert.Contains(t, out, "readonly")
}

func TestField_InvalidAfterSubmit(t *testing.T) {
	t.Parallel()

	f := newForm(t)
	require.False(t, f.Submit())
	email, err := f.Field("email")
	require.NoError(t, err)

	out := render(t, views.Field(email, "/login/validate"))
	assert.Contains(t, out, `aria-invalid="true"`)
	assert.Contains(t, out, "This field is required.")
}

func TestAlert(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `<div id="login-alert" class="alert" role="alert">Invalid email or password</div>`,
		render(t, views.Alert("Invalid email or password")))
}

func TestDashboardPage(t *testing.T) {
	t.Parallel()
	out := render(t, views.DashboardPage(views.DashboardParams{Identifier: "admin@test.com", LogoutURL: "/logout"}))
	assert.Contains(t, out, "admin@test.com")
	assert.Contains(t, out, `action="/logout"`)
}

func TestErrorViews(t *testing.T) {
	t.Parallel()

	out := render(t, views.ErrorPage(handler.ErrorPageParams{
		Error:      "not_found",
		StatusCode: http.StatusNotFound,
		RequestID:  "rid-1",
		RetryURL:   "/x",
	}))
	assert.Contains(t, out, "404 Not Found")
	assert.Contains(t, out, "rid-1")
	assert.Contains(t, out, `href="/x"`)

	toast := render(t, views.ErrorToast(handler.ErrorToastParams{Type: "warning", Message: "slow down"}))
	assert.Contains(t, toast, "toast-warning")
	assert.Contains(t, toast, "slow down")
}
