package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func TestURL(t *testing.T) {
	t.Parallel()

	rule := validator.URL()

	t.Run("metadata", func(t *testing.T) {
		assert.Equal(t, validator.KindURL, rule.Kind())
		assert.Equal(t, "The value must be a valid http or https URL.", rule.Message())
	})

	t.Run("valid urls", func(t *testing.T) {
		validURLs := []string{
			"https://example.com",
			"http://example.com",
			"https://example.com:8080/path?query=1#frag",
			"HTTPS://EXAMPLE.COM",
			"http://localhost",
			"http://192.168.1.1/admin",
		}
		for _, u := range validURLs {
			assert.True(t, rule.Check(u, nil), "expected %q to pass", u)
		}
	})

	t.Run("invalid urls", func(t *testing.T) {
		invalidURLs := []string{
			"",
			"not a url",
			"ftp://example.com",
			"mailto:user@example.com",
			"example.com",
			"/relative/path",
			"https://",
			"http:///path-only",
		}
		for _, u := range invalidURLs {
			assert.False(t, rule.Check(u, nil), "expected %q to fail", u)
		}
	})

	t.Run("fails closed for non-string values", func(t *testing.T) {
		assert.False(t, rule.Check(42, nil))
		assert.False(t, rule.Check(nil, nil))
	})
}
