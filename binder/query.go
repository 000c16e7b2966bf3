package binder

import "net/http"

// Query binds URL query parameters using `query` struct tags, with the same
// tag rules and supported types as Form. Comma-separated values fill slices.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
