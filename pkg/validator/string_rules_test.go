package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func TestMinLength(t *testing.T) {
	t.Parallel()

	t.Run("passes when string equals minimum length", func(t *testing.T) {
		rule := validator.MinLength(4)
		assert.True(t, rule.Check("John", nil))
		assert.Equal(t, validator.KindMinLength, rule.Kind())
		assert.Equal(t, "Length should be at least 4 characters.", rule.Message())
	})

	t.Run("passes when string exceeds minimum length", func(t *testing.T) {
		assert.True(t, validator.MinLength(4).Check("JohnDoe", nil))
	})

	t.Run("fails when string is shorter than minimum", func(t *testing.T) {
		assert.False(t, validator.MinLength(4).Check("Jo", nil))
	})

	t.Run("counts characters, not bytes", func(t *testing.T) {
		assert.False(t, validator.MinLength(4).Check("ñññ", nil))
		assert.True(t, validator.MinLength(3).Check("ñññ", nil))
	})

	t.Run("handles zero minimum length", func(t *testing.T) {
		assert.True(t, validator.MinLength(0).Check("", nil))
	})

	t.Run("fails closed for non-string values", func(t *testing.T) {
		rule := validator.MinLength(1)
		assert.False(t, rule.Check(12345, nil))
		assert.False(t, rule.Check(nil, nil))
		assert.False(t, rule.Check([]byte("abcd"), nil))
	})

	t.Run("accepts named string types and string pointers", func(t *testing.T) {
		type login string
		s := "JohnDoe"
		var nilStr *string

		rule := validator.MinLength(4)
		assert.True(t, rule.Check(login("JohnDoe"), nil))
		assert.True(t, rule.Check(&s, nil))
		assert.False(t, rule.Check(nilStr, nil))
	})

	t.Run("keeps the fixed message for any length", func(t *testing.T) {
		assert.Equal(t, "Length should be at least 4 characters.", validator.MinLength(10).Message())
	})

	t.Run("parameterized message", func(t *testing.T) {
		rule := validator.MinLength(10, validator.WithParameterizedMessage())
		assert.Equal(t, "Length should be at least 10 characters.", rule.Message())
	})

	t.Run("custom message", func(t *testing.T) {
		rule := validator.MinLength(10, validator.WithMessage("too short"))
		assert.Equal(t, "too short", rule.Message())
	})

	t.Run("panics on negative length", func(t *testing.T) {
		assert.PanicsWithError(t, "malformed rule: min length must not be negative, got -1", func() {
			validator.MinLength(-1)
		})
	})
}

func TestContains(t *testing.T) {
	t.Parallel()

	t.Run("passes when substring is present", func(t *testing.T) {
		rule := validator.Contains("Password")
		assert.True(t, rule.Check("Password123", nil))
		assert.Equal(t, validator.KindContains, rule.Kind())
		assert.Equal(t, "Value should contain upper and lower case characters.", rule.Message())
	})

	t.Run("is case-sensitive", func(t *testing.T) {
		assert.False(t, validator.Contains("Password").Check("password123", nil))
	})

	t.Run("fails when substring is absent", func(t *testing.T) {
		assert.False(t, validator.Contains("Password").Check("abc", nil))
	})

	t.Run("fails closed for non-string values", func(t *testing.T) {
		assert.False(t, validator.Contains("1").Check(1, nil))
	})

	t.Run("parameterized message", func(t *testing.T) {
		rule := validator.Contains("Password", validator.WithParameterizedMessage())
		assert.Equal(t, `Value should contain "Password".`, rule.Message())
	})

	t.Run("panics on empty substring", func(t *testing.T) {
		assert.Panics(t, func() { validator.Contains("") })
	})
}
