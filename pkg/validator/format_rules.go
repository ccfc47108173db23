package validator

import (
	"net/url"

	"github.com/dmitrymomot/fieldcheck/pkg/record"
)

type urlRule struct {
	message string
}

// URL passes for absolute http or https URLs with a host.
func URL(opts ...Option) Rule {
	return urlRule{message: applyOptions(opts).messageOr("The value must be a valid http or https URL.")}
}

func (r urlRule) Kind() Kind      { return KindURL }
func (r urlRule) Message() string { return r.message }

func (r urlRule) Check(value any, _ record.View) bool {
	s, ok := asString(value)
	if !ok || s == "" {
		return false
	}

	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return false
	}

	// url.Parse lower-cases the scheme.
	return u.Scheme == "http" || u.Scheme == "https"
}
