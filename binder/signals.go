package binder

import (
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// Signals decodes the Datastar signals of a backend action into v using
// `json` struct tags. GET actions carry them in the datastar query parameter,
// other methods in the JSON body.
//
// Requests not issued by the Datastar client are not applicable.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !isDatastar(r.Header.Get("Datastar-Request")) {
			return ErrBinderNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSignals, err)
		}
		return nil
	}
}
