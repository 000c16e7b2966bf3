package validator_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/loginkit/pkg/validator"
)

func TestEvaluate_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		state validator.FieldState
		rules string
		want  []validator.Violation
	}{
		{
			name:  "empty required field",
			state: validator.FieldState{Value: "", Touched: true},
			rules: "required",
			want:  []validator.Violation{{Rule: "required", Message: "This field is required."}},
		},
		{
			name:  "valid email",
			state: validator.FieldState{Value: "abc@de.com", Touched: true},
			rules: "required,email",
			want:  []validator.Violation{},
		},
		{
			name:  "eleven digit aadhar",
			state: validator.FieldState{Value: "12345678901"},
			rules: "aadhar",
			want:  []validator.Violation{{Rule: "aadhar", Message: "Aadhar number must be a 12-digit number."}},
		},
		{
			name:  "padded value with noWhitespace",
			state: validator.FieldState{Value: " hi "},
			rules: "noWhitespace",
			want:  []validator.Violation{{Rule: "noWhitespace", Message: "Whitespace is not allowed."}},
		},
		{
			name:  "non-string with noWhitespace",
			state: validator.FieldState{Value: 42},
			rules: "noWhitespace",
			want:  []validator.Violation{},
		},
		{
			name:  "several failures keep declaration order",
			state: validator.FieldState{Value: ""},
			rules: "phone,required,email",
			want: []validator.Violation{
				{Rule: "phone", Message: "Phone number must be valid (10 digits)."},
				{Rule: "required", Message: "This field is required."},
				{Rule: "email", Message: "This field must be a valid email address."},
			},
		},
		{
			name:  "duplicates are reported once",
			state: validator.FieldState{Value: "x"},
			rules: "email,number,email",
			want: []validator.Violation{
				{Rule: "email", Message: "This field must be a valid email address."},
				{Rule: "number", Message: "This field must be a valid number."},
			},
		},
		{
			name:  "empty config",
			state: validator.FieldState{Value: ""},
			rules: "",
			want:  []validator.Violation{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := validator.Evaluate(tt.state, validator.ParseRules(tt.rules))
			if diff := cmp.Diff(tt.want, res.Violations()); diff != "" {
				t.Errorf("violations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvaluate_GatedFieldsAreNeverValidated(t *testing.T) {
	t.Parallel()

	values := []any{nil, "", " hi ", "not-an-email", 0, false}
	configs := []string{"required", "required,email,aadhar,phone,number,onlyChars,noWhitespace", ""}

	for _, v := range values {
		for _, c := range configs {
			res := validator.Evaluate(validator.FieldState{Value: v, Gated: true, Touched: true}, validator.ParseRules(c))
			assert.True(t, res.Empty(), "value %#v rules %q", v, c)
		}
	}
}

func TestEvaluate_UnknownRulesOnly(t *testing.T) {
	t.Parallel()

	for _, c := range []string{"pan", "ifsc,grade,division", " required", "Required", "required "} {
		res := validator.Evaluate(validator.FieldState{Value: ""}, validator.ParseRules(c))
		assert.True(t, res.Empty(), c)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	t.Parallel()

	state := validator.FieldState{Value: "a b", Touched: true}
	rules := validator.ParseRules("number,email,phone,onlyChars,required")

	first := validator.Evaluate(state, rules)
	for range 10 {
		again := validator.Evaluate(state, rules)
		if diff := cmp.Diff(first.Violations(), again.Violations()); diff != "" {
			t.Fatalf("evaluation is not deterministic (-first +again):\n%s", diff)
		}
	}
}

func TestEvaluate_RoundTrip(t *testing.T) {
	t.Parallel()

	rules := validator.ParseRules("required,number,phone")

	res := validator.Evaluate(validator.FieldState{Value: "9876543210"}, rules)
	require.True(t, res.Empty())

	// Still a number and non-empty, but only nine digits.
	res = validator.Evaluate(validator.FieldState{Value: "987654321"}, rules)
	assert.Equal(t, map[validator.RuleName]string{
		validator.RulePhone: "Phone number must be valid (10 digits).",
	}, res.Map())
}

func TestEngine_CustomLibrary(t *testing.T) {
	t.Parallel()

	lib := validator.DefaultLibrary().Register(validator.Rule{
		Name:    "pan",
		Message: "PAN must look like ABCDE1234F.",
		Check:   func(v any) bool { s, _ := v.(string); return len(s) == 10 },
	})
	engine := validator.NewEngine(lib)
	assert.Same(t, lib, engine.Library())

	res := engine.Evaluate(validator.FieldState{Value: "ABC"}, validator.ParseRules("required,pan"))
	assert.Equal(t, 1, res.Len())
	msg, ok := res.Message("pan")
	assert.True(t, ok)
	assert.Equal(t, "PAN must look like ABCDE1234F.", msg)

	assert.True(t, validator.Evaluate(validator.FieldState{Value: "ABC"}, validator.ParseRules("pan")).Empty(),
		"the default engine does not know custom rules")
}

func TestNewEngine_NilLibrary(t *testing.T) {
	t.Parallel()

	engine := validator.NewEngine(nil)
	require.NotNil(t, engine.Library())
	res := engine.Evaluate(validator.FieldState{}, validator.ParseRules("required"))
	assert.True(t, res.Has(validator.RuleRequired))
}

func TestResult(t *testing.T) {
	t.Parallel()

	t.Run("zero value is valid", func(t *testing.T) {
		var res validator.Result
		assert.True(t, res.Empty())
		assert.True(t, res.Valid())
		assert.Equal(t, 0, res.Len())
		_, ok := res.First()
		assert.False(t, ok)
		assert.Nil(t, res.Errors("email"))
		assert.Empty(t, res.Map())
	})

	t.Run("first is the earliest declared failure", func(t *testing.T) {
		res := validator.Evaluate(validator.FieldState{Value: ""}, validator.ParseRules("email,required"))
		first, ok := res.First()
		require.True(t, ok)
		assert.Equal(t, validator.RuleEmail, first.Rule)
	})

	t.Run("violations is a copy", func(t *testing.T) {
		res := validator.Evaluate(validator.FieldState{Value: ""}, validator.ParseRules("required"))
		vs := res.Violations()
		vs[0].Message = "changed"
		msg, _ := res.Message(validator.RuleRequired)
		assert.Equal(t, "This field is required.", msg)
	})

	t.Run("errors carry field and translation key", func(t *testing.T) {
		res := validator.Evaluate(validator.FieldState{Value: ""}, validator.ParseRules("required,email"))
		errs := res.Errors("email")
		require.Len(t, errs, 2)
		assert.Equal(t, "email", errs[0].Field)
		assert.Equal(t, validator.RuleRequired, errs[0].Rule)
		assert.Equal(t, "validation.required", errs[0].TranslationKey)
		assert.Equal(t, "validation.email", errs[1].TranslationKey)
		assert.True(t, errors.Is(errs, validator.ErrValidationFailed))
	})
}

func TestShouldDisplay(t *testing.T) {
	t.Parallel()

	failing := validator.Evaluate(validator.FieldState{Value: ""}, validator.ParseRules("required"))
	passing := validator.Evaluate(validator.FieldState{Value: "x"}, validator.ParseRules("required"))

	assert.True(t, validator.ShouldDisplay(validator.FieldState{Touched: true}, failing))
	assert.False(t, validator.ShouldDisplay(validator.FieldState{Touched: false}, failing))
	assert.False(t, validator.ShouldDisplay(validator.FieldState{Touched: true}, passing))
	assert.False(t, validator.ShouldDisplay(validator.FieldState{Touched: false}, passing))
}
