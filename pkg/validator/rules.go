package validator

import (
	"regexp"
	"slices"
	"strings"
)

// RuleName identifies a rule in a Library.
type RuleName string

// Built-in rule names.
const (
	RuleRequired     RuleName = "required"
	RuleEmail        RuleName = "email"
	RuleAadhar       RuleName = "aadhar"
	RulePhone        RuleName = "phone"
	RuleNumber       RuleName = "number"
	RuleOnlyChars    RuleName = "onlyChars"
	RuleNoWhitespace RuleName = "noWhitespace"
)

// EmailPattern is the email shape as supplied by the form owners, kept verbatim.
// The domain class admits lowercase letters, the capital A, digits, dots and dashes.
const EmailPattern = `^[a-zA-Z0-9._%+-]+@[a-zA0-9.-]+\.[a-zA-Z]{2,4}$`

var (
	emailRegex     = regexp.MustCompile(EmailPattern)
	aadharRegex    = regexp.MustCompile(`^[0-9]{12}$`)
	phoneRegex     = regexp.MustCompile(`^[0-9]{10}$`)
	onlyCharsRegex = regexp.MustCompile(`^[A-Za-z\s]+$`)
)

// Predicate reports whether a raw field value satisfies a rule.
type Predicate func(value any) bool

// Rule couples a predicate with the message shown when it fails.
type Rule struct {
	Name    RuleName
	Message string
	Check   Predicate
}

// Validate runs the predicate and returns the violation when it fails.
func (r Rule) Validate(value any) (Violation, bool) {
	if r.Check(value) {
		return Violation{}, false
	}
	return Violation{Rule: r.Name, Message: r.Message}, true
}

var builtinRules = []Rule{
	{
		Name:    RuleRequired,
		Message: "This field is required.",
		Check:   func(v any) bool { return !isEmpty(v) },
	},
	{
		Name:    RuleEmail,
		Message: "This field must be a valid email address.",
		Check:   func(v any) bool { return emailRegex.MatchString(stringOf(v)) },
	},
	{
		Name:    RuleAadhar,
		Message: "Aadhar number must be a 12-digit number.",
		Check:   func(v any) bool { return aadharRegex.MatchString(stringOf(v)) },
	},
	{
		Name:    RulePhone,
		Message: "Phone number must be valid (10 digits).",
		Check:   func(v any) bool { return phoneRegex.MatchString(stringOf(v)) },
	},
	{
		Name:    RuleNumber,
		Message: "This field must be a valid number.",
		Check:   isFiniteNumber,
	},
	{
		Name:    RuleOnlyChars,
		Message: "This field must only contain alphabetic characters.",
		Check:   func(v any) bool { return onlyCharsRegex.MatchString(stringOf(v)) },
	},
	{
		Name:    RuleNoWhitespace,
		Message: "Whitespace is not allowed.",
		Check: func(v any) bool {
			s, ok := v.(string)
			if !ok {
				return true
			}
			return strings.TrimSpace(s) == s
		},
	},
}

// Library is a lookup table of rules keyed by name. The zero value is an empty library.
// Register rules before sharing a Library between goroutines; lookups are read-only.
type Library struct {
	rules map[RuleName]Rule
}

// NewLibrary creates a library holding the given rules.
func NewLibrary(rules ...Rule) *Library {
	l := &Library{rules: make(map[RuleName]Rule, len(rules))}
	for _, r := range rules {
		l.Register(r)
	}
	return l
}

// DefaultLibrary returns a fresh library with the built-in rules.
func DefaultLibrary() *Library {
	return NewLibrary(builtinRules...)
}

// Register adds or replaces a rule.
// Panics on an empty name or nil predicate: a broken rule table is a programming error.
func (l *Library) Register(rule Rule) *Library {
	if rule.Name == "" {
		panic("validator: rule name cannot be empty")
	}
	if rule.Check == nil {
		panic("validator: rule " + string(rule.Name) + " has nil predicate")
	}
	if l.rules == nil {
		l.rules = make(map[RuleName]Rule)
	}
	l.rules[rule.Name] = rule
	return l
}

// Lookup returns the rule registered under name.
func (l *Library) Lookup(name RuleName) (Rule, bool) {
	if l == nil {
		return Rule{}, false
	}
	r, ok := l.rules[name]
	return r, ok
}

// Names returns the registered rule names sorted alphabetically.
func (l *Library) Names() []RuleName {
	if l == nil {
		return nil
	}
	names := make([]RuleName, 0, len(l.rules))
	for name := range l.rules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
