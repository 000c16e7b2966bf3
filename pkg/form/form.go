package form

import (
	"fmt"

	"github.com/dmitrymomot/loginkit/pkg/surface"
	"github.com/dmitrymomot/loginkit/pkg/validator"
)

// Field is the live state of one declared input.
type Field struct {
	def     FieldDef
	rules   validator.RuleConfig
	state   validator.FieldState
	result  validator.Result
	surface *surface.Surface
}

func (f *Field) Name() string { return f.def.Name }
func (f *Field) Def() FieldDef { return f.def }
func (f *Field) Rules() validator.RuleConfig { return f.rules }
func (f *Field) State() validator.FieldState { return f.state }
func (f *Field) Value() any { return f.state.Value }
func (f *Field) Touched() bool { return f.state.Touched }
func (f *Field) Result() validator.Result { return f.result }
func (f *Field) Surface() *surface.Surface { return f.surface }
func (f *Field) Invalid() bool { return !f.result.Empty() }
func (f *Field) Displayed() bool { return validator.ShouldDisplay(f.state, f.result) }

// String returns the value as it should appear in an input's value attribute.
func (f *Field) String() string {
	switch v := f.state.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Option configures a Form.
type Option func(*Form)

// WithEngine evaluates fields with a custom engine, e.g. one with extra rules.
func WithEngine(e *validator.Engine) Option {
	return func(f *Form) {
		if e != nil {
			f.engine = e
		}
	}
}

// WithController renders error surfaces through c.
func WithController(c *surface.Controller) Option {
	return func(f *Form) {
		if c != nil {
			f.surfaces = c
		}
	}
}

// Form binds a Definition to field state, the validation engine and error surfaces.
// A Form is owned by a single request and is not safe for concurrent use.
type Form struct {
	def      *Definition
	engine   *validator.Engine
	surfaces *surface.Controller
	fields   []*Field
	index    map[string]*Field
}

// New attaches rules and error surfaces to every field of def.
// Rule strings are parsed once here; all fields start pristine and valid-looking
// until they are evaluated.
func New(def *Definition, opts ...Option) *Form {
	f := &Form{
		def:    def,
		engine: validator.NewEngine(nil),
		index:  make(map[string]*Field, len(def.Fields)),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.surfaces == nil {
		f.surfaces = surface.NewController()
	}

	for _, fd := range def.Fields {
		field := &Field{
			def:     fd,
			rules:   validator.ParseRules(fd.Rules),
			state:   validator.FieldState{Gated: fd.Gated()},
			surface: f.surfaces.Ensure(fd.Name),
		}
		f.fields = append(f.fields, field)
		f.index[fd.Name] = field
	}
	return f
}

// Definition returns the layout the form was built from.
func (f *Form) Definition() *Definition {
	return f.def
}

// Fields returns the fields in declaration order.
func (f *Form) Fields() []*Field {
	return f.fields
}

// Field returns the named field.
func (f *Form) Field(name string) (*Field, error) {
	field, ok := f.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return field, nil
}

// Result returns the last evaluation of the named field.
func (f *Form) Result(name string) (validator.Result, error) {
	field, err := f.Field(name)
	if err != nil {
		return validator.Result{}, err
	}
	return field.result, nil
}

// Change records a new value for the field and re-evaluates it.
func (f *Form) Change(name string, value any) (validator.Result, error) {
	field, err := f.Field(name)
	if err != nil {
		return validator.Result{}, err
	}
	field.state.Value = value
	return f.evaluate(field), nil
}

// Blur marks the field as touched and re-evaluates it.
func (f *Form) Blur(name string) (validator.Result, error) {
	field, err := f.Field(name)
	if err != nil {
		return validator.Result{}, err
	}
	field.state.Touched = true
	return f.evaluate(field), nil
}

// Restore loads client-held state and evaluates every field.
// Values and touched flags for undeclared fields are ignored.
func (f *Form) Restore(values map[string]any, touched map[string]bool) {
	for _, field := range f.fields {
		if v, ok := values[field.Name()]; ok {
			field.state.Value = v
		}
		if touched[field.Name()] {
			field.state.Touched = true
		}
		f.evaluate(field)
	}
}

// Submit marks every field as touched, evaluates them all and reports validity.
func (f *Form) Submit() bool {
	for _, field := range f.fields {
		field.state.Touched = true
		f.evaluate(field)
	}
	return f.Valid()
}

// Valid reports whether every field's last evaluation passed.
func (f *Form) Valid() bool {
	for _, field := range f.fields {
		if field.Invalid() {
			return false
		}
	}
	return true
}

// Errors returns the failures of all fields as validator.ValidationErrors, or nil.
func (f *Form) Errors() error {
	var errs validator.ValidationErrors
	for _, field := range f.fields {
		errs = append(errs, field.result.Errors(field.Name())...)
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// Values returns the current value of every field.
func (f *Form) Values() map[string]any {
	out := make(map[string]any, len(f.fields))
	for _, field := range f.fields {
		out[field.Name()] = field.state.Value
	}
	return out
}

func (f *Form) evaluate(field *Field) validator.Result {
	field.result = f.engine.Evaluate(field.state, field.rules)
	f.surfaces.Sync(field.surface, field.result, field.state.Touched)
	return field.result
}
