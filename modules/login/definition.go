package login

import (
	_ "embed"

	"github.com/dmitrymomot/loginkit/pkg/form"
)

//go:embed login.yaml
var definitionYAML []byte

// Field names the handlers read credentials from.
const (
	identifierField = "email"
	secretField     = "password"
)

// Definition returns the built-in login form layout.
func Definition() *form.Definition {
	return form.MustParseDefinition(definitionYAML)
}
