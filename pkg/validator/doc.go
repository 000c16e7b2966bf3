// Package validator implements declarative, per-field validation driven by
// comma-separated rule names such as "required,email".
//
// A field declares its rules once as a configuration string. ParseRules turns
// that string into an ordered RuleConfig, and an Engine evaluates the config
// against the field's current FieldState. The outcome is a Result: an
// insertion-ordered mapping from each failed rule name to its message. An
// empty Result means the field is valid.
//
// # Architecture
//
// Rules live in a Library, a lookup table from RuleName to a predicate plus a
// canned message. DefaultLibrary returns the built-in set:
//
//   - required     – value is not empty or falsy
//   - email        – local@domain.tld shape
//   - aadhar       – exactly 12 decimal digits
//   - phone        – exactly 10 decimal digits
//   - number       – non-empty and parses as a finite number
//   - onlyChars    – letters and whitespace only
//   - noWhitespace – no leading or trailing whitespace (non-strings pass)
//
// Adding a rule is a data change: Register it on a Library and reference its
// name from a configuration string. The engine never changes.
//
// Evaluation is pure. Gated fields (disabled or read-only) always produce an
// empty Result, unknown rule names are skipped, and nothing ever returns an
// error. Rendering of the outcome is a separate concern handled by the
// surface package.
//
// # Usage
//
//	rules := validator.ParseRules("required,email")
//	res := validator.Evaluate(validator.FieldState{Value: "abc@de.com", Touched: true}, rules)
//	if !res.Empty() {
//		first, _ := res.First()
//		fmt.Println(first.Message)
//	}
//
// # Error Handling
//
// A Result converts into ValidationErrors, which implements the error
// interface, so form-level failures can bubble up through regular error
// returns:
//
//	if errs := res.Errors("email"); !errs.IsEmpty() {
//		return errs
//	}
package validator
