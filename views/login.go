package views

import (
	"context"
	"encoding/json"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/loginkit/pkg/form"
	"github.com/dmitrymomot/loginkit/pkg/surface"
)

// LoginFormParams contains data for rendering the login form.
type LoginFormParams struct {
	Form        *form.Form
	Alert       string
	ValidateURL string
}

// LoginPageParams contains data for rendering the login page.
type LoginPageParams struct {
	LoginFormParams
	Flash string
}

// LoginPage renders the full sign-in document.
func LoginPage(p LoginPageParams) templ.Component {
	return Page(PageParams{Title: p.Form.Definition().Title, Flash: p.Flash}, LoginForm(p.LoginFormParams))
}

// LoginForm renders the form element. The same markup serves plain posts and
// Datastar actions: inputs carry name attributes and signal bindings.
func LoginForm(p LoginFormParams) templ.Component {
	return component(func(ctx context.Context, h *html) {
		def := p.Form.Definition()
		signals, err := formSignals(p.Form)
		if err != nil {
			h.err = err
			return
		}

		h.raw(`<form`)
		h.attr("id", LoginFormID)
		h.attr("method", "post")
		h.attr("action", def.Action)
		h.attr("data-signals", signals)
		h.attr("data-on-submit", "@post('"+def.Action+"')")
		h.raw(` novalidate><h1>`)
		h.text(def.Title)
		h.raw(`</h1>`)
		h.render(ctx, Alert(p.Alert))
		for _, f := range p.Form.Fields() {
			h.render(ctx, Field(f, p.ValidateURL))
		}
		h.raw(`<button type="submit">`)
		h.text(def.Submit)
		h.raw(`</button></form>`)
	})
}

// Alert renders the form-level message slot. It is always present so it can
// be patched in place, and empty when there is nothing to say.
func Alert(message string) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<div`)
		h.attr("id", LoginAlertID)
		h.raw(` class="alert" role="alert">`)
		h.text(message)
		h.raw(`</div>`)
	})
}

// Field renders label, input and the reserved error surface of one field.
// Gated fields are not wired to the validate action.
func Field(f *form.Field, validateURL string) templ.Component {
	return component(func(ctx context.Context, h *html) {
		def := f.Def()
		h.raw(`<div class="field"><label`)
		h.attr("for", def.Name)
		h.raw(`>`)
		h.text(def.Label)
		h.raw(`</label><input`)
		h.attr("id", def.Name)
		h.attr("name", def.Name)
		h.attr("type", def.InputType())
		if def.Placeholder != "" {
			h.attr("placeholder", def.Placeholder)
		}
		if v := echoValue(f); v != "" {
			h.attr("value", v)
		}
		h.attr("data-bind", "fields."+def.Name)
		if f.Displayed() {
			h.attr("aria-invalid", "true")
		}
		h.flag("readonly", def.ReadOnly)
		h.flag("disabled", def.Disabled)
		if !def.Gated() && validateURL != "" {
			h.attr("data-on-blur", "$touched."+def.Name+" = true; @post('"+validateURL+"?field="+def.Name+"')")
		}
		h.raw(`>`)
		h.render(ctx, surface.Component(f.Surface()))
		h.raw(`</div>`)
	})
}

// echoValue returns the value written back into the input; secrets are never echoed.
func echoValue(f *form.Field) string {
	if f.Def().InputType() == "password" {
		return ""
	}
	return f.String()
}

type signalState struct {
	Fields  map[string]string `json:"fields"`
	Touched map[string]bool   `json:"touched"`
}

func formSignals(f *form.Form) (string, error) {
	state := signalState{
		Fields:  make(map[string]string, len(f.Fields())),
		Touched: make(map[string]bool, len(f.Fields())),
	}
	for _, field := range f.Fields() {
		state.Fields[field.Name()] = echoValue(field)
		state.Touched[field.Name()] = field.Touched()
	}
	b, err := json.Marshal(state)
	return string(b), err
}
