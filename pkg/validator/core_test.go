package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/loginkit/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when every check holds", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Assertion{Check: func() bool { return true }},
			validator.Assertion{Check: func() bool { return 1 < 2 }},
		)
		assert.NoError(t, err)
	})

	t.Run("returns nil without assertions", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects failures in order", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Assertion{
				Check: func() bool { return false },
				Error: validator.ValidationError{Field: "id", Message: "is required"},
			},
			validator.Assertion{
				Check: func() bool { return true },
				Error: validator.ValidationError{Field: "skipped", Message: "never reported"},
			},
			validator.Assertion{
				Check: func() bool { return false },
				Error: validator.ValidationError{Field: "fields", Message: "is empty"},
			},
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"id", "fields"}, errs.Fields())
		assert.Equal(t, "validation failed: id: is required; fields: is empty", err.Error())
	})
}
