package validator

// Assertion pairs an ad-hoc condition with the error reported when it does not hold.
type Assertion struct {
	Check func() bool
	Error ValidationError
}

// Apply executes the assertions in order and returns the failures as
// ValidationErrors, or nil when every check holds.
//
//	err := validator.Apply(
//		validator.Assertion{
//			Check: func() bool { return def.ID != "" },
//			Error: validator.ValidationError{Field: "id", Message: "form id is required"},
//		},
//	)
func Apply(assertions ...Assertion) error {
	var errs ValidationErrors

	for _, a := range assertions {
		if !a.Check() {
			errs.Add(a.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}
