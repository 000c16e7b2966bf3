package form

import "errors"

var (
	// ErrInvalidDefinition indicates a malformed form definition.
	ErrInvalidDefinition = errors.New("form.invalid_definition")

	// ErrUnknownField indicates an operation on a field the form does not declare.
	ErrUnknownField = errors.New("form.unknown_field")
)
