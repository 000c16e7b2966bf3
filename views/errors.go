package views

import (
	"context"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/loginkit/handler"
)

// ErrorPage renders the full page used by handler.NewErrorHandler.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	title := http.StatusText(p.StatusCode)
	if title == "" {
		title = "Error"
	}
	return Page(PageParams{Title: title}, component(func(_ context.Context, h *html) {
		h.raw(`<h1>`, strconv.Itoa(p.StatusCode), ` `)
		h.text(title)
		h.raw(`</h1><p>`)
		h.text(p.Error)
		h.raw(`</p>`)
		if p.RequestID != "" {
			h.raw(`<p><small>Request ID: <code>`)
			h.text(p.RequestID)
			h.raw(`</code></small></p>`)
		}
		if p.RetryURL != "" {
			h.raw(`<a`)
			h.attr("href", p.RetryURL)
			h.raw(`>Try again</a>`)
		}
	}))
}

// ErrorToast renders the toast used by handler.NewErrorHandler for Datastar requests.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return Toast(p.Type, p.Message)
}
