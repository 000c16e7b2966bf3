// Package binder provides request binders for handler.Wrap.
//
// Each binder fills a pointer to struct from one part of the request: Query
// from the URL, Form from urlencoded bodies, JSON from JSON bodies and
// Signals from the Datastar signal payload. A binder that does not apply to
// the request returns ErrBinderNotApplicable and is skipped, so one route can
// serve both plain form posts and Datastar actions:
//
//	handler.WithBinders[handler.Context, submitRequest](
//		binder.Signals(),
//		binder.Form(),
//	)
package binder
