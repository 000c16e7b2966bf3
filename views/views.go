// Package views holds the HTML components of the login demo.
//
// Components are plain templ.Component values so handlers can render them
// as full documents or patch them into a live page through Datastar.
package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// DatastarScript is the client bundle loaded by every page.
const DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

// Element ids targeted by server-sent patches.
const (
	ToastContainerID = "toast-container"
	LoginFormID      = "login-form"
	LoginAlertID     = "login-alert"
)

// html is a tiny writer that keeps the first error and escapes on request.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(parts ...string) {
	for _, p := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, p)
	}
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with the value escaped.
func (h *html) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// flag writes a boolean attribute when on.
func (h *html) flag(name string, on bool) {
	if on {
		h.raw(" ", name)
	}
}

func (h *html) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func component(fn func(ctx context.Context, h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		fn(ctx, h)
		return h.err
	})
}

// PageParams contains data for rendering the document shell.
type PageParams struct {
	Title string
	// Flash is a one-time notice shown as a toast.
	Flash string
}

// Page wraps body in the HTML document shared by every screen.
func Page(p PageParams, body ...templ.Component) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`)
		h.text(p.Title)
		h.raw(`</title><script type="module"`)
		h.attr("src", DatastarScript)
		h.raw(`></script><style>`, stylesheet, `</style></head><body>`)
		h.raw(`<div`)
		h.attr("id", ToastContainerID)
		h.raw(` class="toasts">`)
		if p.Flash != "" {
			h.render(ctx, Toast("info", p.Flash))
		}
		h.raw(`</div><main>`)
		for _, c := range body {
			h.render(ctx, c)
		}
		h.raw(`</main></body></html>`)
	})
}

// Toast renders a dismissible notification; kind is "error", "warning" or "info".
func Toast(kind, message string) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<div`)
		h.attr("class", "toast toast-"+kind)
		h.raw(` data-on-click="el.remove()">`)
		h.text(message)
		h.raw(`</div>`)
	})
}

const stylesheet = `body{font-family:system-ui,sans-serif;background:#f5f6f8;margin:0}` +
	`main{max-width:360px;margin:10vh auto;background:#fff;padding:24px;border-radius:8px;box-shadow:0 1px 4px rgba(0,0,0,.1)}` +
	`.field{display:flex;flex-direction:column;margin-bottom:8px}` +
	`.field input{padding:8px;border:1px solid #ccc;border-radius:4px}` +
	`.field input[aria-invalid=true]{border-color:red}` +
	`.alert{color:#b00020;min-height:1.2em;margin-bottom:8px}` +
	`.toasts{position:fixed;top:12px;right:12px}` +
	`.toast{padding:8px 12px;margin-bottom:6px;border-radius:4px;background:#333;color:#fff;cursor:pointer}` +
	`.toast-error{background:#b00020}.toast-warning{background:#b26a00}`
