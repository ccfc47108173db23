package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestScalarAttrs(t *testing.T) {
	assert.True(t, slog.String("component", "cli").Equal(logger.Component("cli")))
	assert.True(t, slog.String("field", "Age").Equal(logger.Field("Age")))
	assert.True(t, slog.String("rule", "positive").Equal(logger.RuleKind(validator.KindPositive)))
}

func TestResult(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		attr := logger.Result(validator.Result{Valid: true})
		require.Equal(t, "result", attr.Key)
		g := attr.Value.Group()
		require.Len(t, g, 1)
		assert.True(t, g[0].Value.Bool())
	})

	t.Run("invalid", func(t *testing.T) {
		attr := logger.Result(validator.Result{
			Field:   "Age",
			Kind:    validator.KindPositive,
			Message: "Value should be positive.",
		})
		g := attr.Value.Group()
		require.Len(t, g, 4)
		assert.False(t, g[0].Value.Bool())
		assert.Equal(t, "Age", g[1].Value.String())
		assert.Equal(t, "positive", g[2].Value.String())
		assert.Equal(t, "Value should be positive.", g[3].Value.String())
	})
}

func TestViolations(t *testing.T) {
	vs := validator.Violations{
		{Field: "Username", Kind: validator.KindMinLength, Message: "short"},
		{Field: "Age", Kind: validator.KindPositive, Message: "negative"},
	}

	attr := logger.Violations(vs)
	require.Equal(t, "violations", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "1", g[1].Key)
	assert.Equal(t, "Age", g[1].Value.Group()[0].Value.String())

	assert.True(t, logger.Violations(nil).Equal(slog.Attr{}))
}
