package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/fieldcheck/pkg/record"
)

const (
	minLengthMessage = "Length should be at least 4 characters."
	containsMessage  = "Value should contain upper and lower case characters."
)

type minLengthRule struct {
	min     int
	message string
}

// MinLength passes for strings of at least min characters (runes).
//
// The default message is the fixed text "Length should be at least 4
// characters." regardless of min; use WithParameterizedMessage to render min.
func MinLength(min int, opts ...Option) Rule {
	if min < 0 {
		malformed("min length must not be negative, got %d", min)
	}
	o := applyOptions(opts)
	def := minLengthMessage
	if o.parameterized {
		def = fmt.Sprintf("Length should be at least %d characters.", min)
	}
	return minLengthRule{min: min, message: o.messageOr(def)}
}

func (r minLengthRule) Kind() Kind      { return KindMinLength }
func (r minLengthRule) Message() string { return r.message }

func (r minLengthRule) Check(value any, _ record.View) bool {
	s, ok := asString(value)
	return ok && utf8.RuneCountInString(s) >= r.min
}

type containsRule struct {
	substr  string
	message string
}

// Contains passes for strings containing substr (case-sensitive).
//
// The default message is the fixed text "Value should contain upper and lower
// case characters."; use WithParameterizedMessage to render substr.
func Contains(substr string, opts ...Option) Rule {
	if substr == "" {
		malformed("contains requires a non-empty substring")
	}
	o := applyOptions(opts)
	def := containsMessage
	if o.parameterized {
		def = fmt.Sprintf("Value should contain %q.", substr)
	}
	return containsRule{substr: substr, message: o.messageOr(def)}
}

func (r containsRule) Kind() Kind      { return KindContains }
func (r containsRule) Message() string { return r.message }

func (r containsRule) Check(value any, _ record.View) bool {
	s, ok := asString(value)
	return ok && strings.Contains(s, r.substr)
}
