package form

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/loginkit/pkg/validator"
)

// FieldDef declares one input and the rules attached to it.
type FieldDef struct {
	Name        string `yaml:"name"`
	Label       string `yaml:"label"`
	Type        string `yaml:"type"`
	Placeholder string `yaml:"placeholder"`
	// Rules is the comma-separated rule list, e.g. "required,email".
	Rules    string `yaml:"rules"`
	ReadOnly bool   `yaml:"readonly"`
	Disabled bool   `yaml:"disabled"`
}

// Gated reports whether the field is exempt from validation.
func (d FieldDef) Gated() bool {
	return d.ReadOnly || d.Disabled
}

// InputType returns the HTML input type, defaulting to "text".
func (d FieldDef) InputType() string {
	if d.Type == "" {
		return "text"
	}
	return d.Type
}

// Definition is a declarative form layout.
type Definition struct {
	ID     string     `yaml:"id"`
	Title  string     `yaml:"title"`
	Action string     `yaml:"action"`
	Submit string     `yaml:"submit"`
	Fields []FieldDef `yaml:"fields"`
}

// Field returns the definition of the named field.
func (d *Definition) Field(name string) (FieldDef, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDef{}, false
}

// Validate checks the definition for structural mistakes. Every problem is
// reported as a validator.ValidationError joined with ErrInvalidDefinition.
func (d *Definition) Validate() error {
	checks := []validator.Assertion{
		{
			Check: func() bool { return d.ID != "" },
			Error: validator.ValidationError{Field: "id", Message: "form id is required", TranslationKey: "form.id_required"},
		},
		{
			Check: func() bool { return len(d.Fields) > 0 },
			Error: validator.ValidationError{Field: "fields", Message: "form declares no fields", TranslationKey: "form.no_fields"},
		},
	}

	seen := make(map[string]bool, len(d.Fields))
	for i, f := range d.Fields {
		field := fmt.Sprintf("fields[%d].name", i)
		duplicate := seen[f.Name]
		seen[f.Name] = true
		checks = append(checks,
			validator.Assertion{
				Check: func() bool { return f.Name != "" },
				Error: validator.ValidationError{Field: field, Message: "field has no name", TranslationKey: "form.field_unnamed"},
			},
			validator.Assertion{
				Check: func() bool { return f.Name == "" || !duplicate },
				Error: validator.ValidationError{
					Field:             field,
					Message:           fmt.Sprintf("duplicate field %q", f.Name),
					TranslationKey:    "form.field_duplicate",
					TranslationValues: map[string]any{"name": f.Name},
				},
			},
		)
	}

	if err := validator.Apply(checks...); err != nil {
		return errors.Join(ErrInvalidDefinition, err)
	}
	return nil
}

// ParseDefinition decodes and validates a YAML form definition.
func ParseDefinition(data []byte) (*Definition, error) {
	return LoadDefinition(bytes.NewReader(data))
}

// LoadDefinition reads a YAML form definition from r.
// Unknown keys are rejected so that typos such as "rule:" do not silently disable validation.
func LoadDefinition(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		return nil, errors.Join(ErrInvalidDefinition, err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// MustParseDefinition is like ParseDefinition but panics on error.
// Intended for definitions embedded at build time.
func MustParseDefinition(data []byte) *Definition {
	def, err := ParseDefinition(data)
	if err != nil {
		panic(fmt.Sprintf("form: %v", err))
	}
	return def
}
