package validator_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func TestUUID(t *testing.T) {
	t.Parallel()

	rule := validator.UUID()

	t.Run("metadata", func(t *testing.T) {
		assert.Equal(t, validator.KindUUID, rule.Kind())
		assert.Equal(t, "The value must be a valid UUID.", rule.Message())
	})

	t.Run("passes for canonical strings", func(t *testing.T) {
		assert.True(t, rule.Check(uuid.New().String(), nil))
		assert.True(t, rule.Check("123e4567-e89b-12d3-a456-426614174000", nil))
		assert.True(t, rule.Check("123E4567-E89B-12D3-A456-426614174000", nil))
	})

	t.Run("passes for uuid values", func(t *testing.T) {
		assert.True(t, rule.Check(uuid.New(), nil))
	})

	t.Run("fails for malformed strings", func(t *testing.T) {
		invalid := []string{
			"",
			"not-a-uuid",
			"123e4567e89b12d3a456426614174000",
			"{123e4567-e89b-12d3-a456-426614174000}",
			"urn:uuid:123e4567-e89b-12d3-a456-426614174000",
			"123e4567-e89b-12d3-a456-42661417400g",
		}
		for _, s := range invalid {
			assert.False(t, rule.Check(s, nil), "expected %q to fail", s)
		}
	})

	t.Run("fails closed for other types", func(t *testing.T) {
		assert.False(t, rule.Check(123, nil))
		assert.False(t, rule.Check(nil, nil))
	})
}
