package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidQuery         = errors.New("invalid query parameter")
	ErrInvalidSignals       = errors.New("invalid datastar signals")
	ErrMissingContentType   = errors.New("missing content type")

	// ErrBinderNotApplicable tells handler.Wrap to skip the binder for this request.
	ErrBinderNotApplicable = errors.New("binder not applicable")
)

// IsBindingError reports whether err means the request itself was malformed.
func IsBindingError(err error) bool {
	for _, target := range []error{
		ErrUnsupportedMediaType,
		ErrInvalidJSON,
		ErrInvalidForm,
		ErrInvalidQuery,
		ErrInvalidSignals,
		ErrMissingContentType,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// isDatastar matches the header value the Datastar client sends on every action.
func isDatastar(headerValue string) bool {
	return headerValue == "true"
}
