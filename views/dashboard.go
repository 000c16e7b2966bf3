package views

import (
	"context"

	"github.com/a-h/templ"
)

// DashboardParams contains data for rendering the dashboard.
type DashboardParams struct {
	Identifier string
	LogoutURL  string
}

// DashboardPage is the guarded landing page after sign-in.
func DashboardPage(p DashboardParams) templ.Component {
	return Page(PageParams{Title: "Dashboard"}, component(func(_ context.Context, h *html) {
		h.raw(`<h1>Dashboard</h1><p>Signed in as <strong>`)
		h.text(p.Identifier)
		h.raw(`</strong></p><form method="post"`)
		h.attr("action", p.LogoutURL)
		h.raw(`><button type="submit">Sign out</button></form>`)
	}))
}
