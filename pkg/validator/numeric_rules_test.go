package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func TestPositive(t *testing.T) {
	t.Parallel()

	rule := validator.Positive()

	t.Run("metadata", func(t *testing.T) {
		assert.Equal(t, validator.KindPositive, rule.Kind())
		assert.Equal(t, "Value should be positive.", rule.Message())
	})

	t.Run("passes for positive integers", func(t *testing.T) {
		assert.True(t, rule.Check(5, nil))
		assert.True(t, rule.Check(int8(1), nil))
		assert.True(t, rule.Check(int64(1<<40), nil))
		assert.True(t, rule.Check(uint(3), nil))
	})

	t.Run("fails for zero and negative integers", func(t *testing.T) {
		assert.False(t, rule.Check(0, nil))
		assert.False(t, rule.Check(-3, nil))
		assert.False(t, rule.Check(uint16(0), nil))
	})

	t.Run("fails closed for non-integers", func(t *testing.T) {
		assert.False(t, rule.Check("5", nil))
		assert.False(t, rule.Check(5.5, nil))
		assert.False(t, rule.Check(nil, nil))
		assert.False(t, rule.Check(true, nil))
	})

	t.Run("accepts named integer types and pointers", func(t *testing.T) {
		type years int
		n := 7
		var nilInt *int

		assert.True(t, rule.Check(years(30), nil))
		assert.True(t, rule.Check(&n, nil))
		assert.False(t, rule.Check(nilInt, nil))
	})
}

func TestNegative(t *testing.T) {
	t.Parallel()

	t.Run("passes below threshold", func(t *testing.T) {
		rule := validator.Negative(0)
		assert.True(t, rule.Check(-1, nil))
		assert.Equal(t, validator.KindNegative, rule.Kind())
		assert.Equal(t, "Value should be negative.", rule.Message())
	})

	t.Run("fails at and above threshold", func(t *testing.T) {
		rule := validator.Negative(0)
		assert.False(t, rule.Check(0, nil))
		assert.False(t, rule.Check(10, nil))
	})

	t.Run("uses the configured threshold", func(t *testing.T) {
		rule := validator.Negative(10)
		assert.True(t, rule.Check(9, nil))
		assert.False(t, rule.Check(10, nil))
	})

	t.Run("compares unsigned values", func(t *testing.T) {
		assert.True(t, validator.Negative(10).Check(uint32(9), nil))
		assert.False(t, validator.Negative(10).Check(uint64(10), nil))
		assert.False(t, validator.Negative(0).Check(uint(0), nil))
		assert.False(t, validator.Negative(-5).Check(uint(0), nil))
	})

	t.Run("fails closed for non-integers", func(t *testing.T) {
		assert.False(t, validator.Negative(0).Check("-1", nil))
		assert.False(t, validator.Negative(0).Check(-1.5, nil))
	})
}
