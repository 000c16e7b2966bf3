// Package handler binds HTTP requests to typed Go values and renders typed
// responses.
//
// A HandlerFunc receives a Context and the bound request and returns a
// Response. Wrap turns it into an http.HandlerFunc, running the configured
// binders in order and routing bind and render failures to an ErrorHandler:
//
//	type submitRequest struct {
//		Email string `form:"email"`
//	}
//
//	func submit(ctx handler.Context, req submitRequest) handler.Response {
//		return handler.Redirect("/dashboard")
//	}
//
//	r.Post("/login", handler.Wrap(submit,
//		handler.WithBinders[handler.Context, submitRequest](binder.Form()),
//	))
//
// # Responses
//
// Templ, TemplPartial and TemplMulti render templ components. Requests issued
// by the Datastar client receive server-sent element patches instead of a
// full document, so the same handler serves the first page load and later
// in-place updates. Redirect follows the same split: a 303 for regular
// requests and a script event for Datastar. JSON and JSONError write the
// data and error envelopes used by the API routes.
//
// # Errors
//
// NewErrorHandler classifies errors (HTTPError, binding failures and
// validator.ValidationErrors), logs them at a status-based level and renders
// either an error page or a toast patch.
package handler
