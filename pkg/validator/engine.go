package validator

// FieldState is the host form's view of one field at evaluation time.
type FieldState struct {
	Value   any
	Touched bool
	// Gated is true for disabled or read-only fields, which are never validated.
	Gated bool
}

// Violation is a single failed rule.
type Violation struct {
	Rule    RuleName `json:"rule"`
	Message string   `json:"message"`
}

// Result maps failed rule names to messages in declaration order.
// The zero value is an empty, valid result.
type Result struct {
	violations []Violation
}

func (r *Result) add(v Violation) {
	if r.Has(v.Rule) {
		return
	}
	r.violations = append(r.violations, v)
}

// Empty reports whether no rule failed.
func (r Result) Empty() bool {
	return len(r.violations) == 0
}

// Valid is the inverse of Empty, phrased for form code.
func (r Result) Valid() bool {
	return r.Empty()
}

func (r Result) Len() int {
	return len(r.violations)
}

func (r Result) Has(name RuleName) bool {
	for _, v := range r.violations {
		if v.Rule == name {
			return true
		}
	}
	return false
}

// Message returns the message recorded for a failed rule.
func (r Result) Message(name RuleName) (string, bool) {
	for _, v := range r.violations {
		if v.Rule == name {
			return v.Message, true
		}
	}
	return "", false
}

// First returns the earliest-declared failed rule.
func (r Result) First() (Violation, bool) {
	if len(r.violations) == 0 {
		return Violation{}, false
	}
	return r.violations[0], true
}

// Violations returns a copy of the failures in declaration order.
func (r Result) Violations() []Violation {
	out := make([]Violation, len(r.violations))
	copy(out, r.violations)
	return out
}

// Map returns the failures keyed by rule name. Order is lost; use Violations when it matters.
func (r Result) Map() map[RuleName]string {
	m := make(map[RuleName]string, len(r.violations))
	for _, v := range r.violations {
		m[v.Rule] = v.Message
	}
	return m
}

// Errors converts the result into field-level validation errors.
func (r Result) Errors(field string) ValidationErrors {
	if r.Empty() {
		return nil
	}
	errs := make(ValidationErrors, 0, len(r.violations))
	for _, v := range r.violations {
		errs = append(errs, ValidationError{
			Field:          field,
			Rule:           v.Rule,
			Message:        v.Message,
			TranslationKey: "validation." + string(v.Rule),
			TranslationValues: map[string]any{
				"field": field,
			},
		})
	}
	return errs
}

// Engine evaluates rule configs against field state using a Library.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	lib *Library
}

// NewEngine creates an engine backed by lib, or by the default library when lib is nil.
func NewEngine(lib *Library) *Engine {
	if lib == nil {
		lib = DefaultLibrary()
	}
	return &Engine{lib: lib}
}

// Library returns the rule table the engine reads from.
func (e *Engine) Library() *Library {
	return e.lib
}

// Evaluate runs every known rule in rules against state.Value.
// Gated fields and unknown rule names never produce violations.
func (e *Engine) Evaluate(state FieldState, rules RuleConfig) Result {
	var res Result
	if state.Gated {
		return res
	}

	for _, name := range rules {
		rule, ok := e.lib.Lookup(name)
		if !ok {
			continue
		}
		if v, failed := rule.Validate(state.Value); failed {
			res.add(v)
		}
	}
	return res
}

var defaultEngine = NewEngine(nil)

// Evaluate runs rules against state with the built-in rule library.
func Evaluate(state FieldState, rules RuleConfig) Result {
	return defaultEngine.Evaluate(state, rules)
}

// ShouldDisplay reports whether a result should be shown to the user:
// only touched fields with at least one failure are displayed.
func ShouldDisplay(state FieldState, res Result) bool {
	return state.Touched && !res.Empty()
}
