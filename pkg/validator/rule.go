package validator

import (
	"fmt"
	"reflect"
	"time"

	"github.com/dmitrymomot/fieldcheck/pkg/record"
)

// Kind identifies a rule variant.
type Kind string

const (
	KindMinLength     Kind = "min_length"
	KindContains      Kind = "contains"
	KindPositive      Kind = "positive"
	KindNegative      Kind = "negative"
	KindRequiredIf    Kind = "required_if"
	KindURL           Kind = "url"
	KindFutureDate    Kind = "future_date"
	KindAllowedValues Kind = "allowed_values"
	KindAllowedEnum   Kind = "allowed_enum"
	KindUUID          Kind = "uuid"

	// KindBinding reports a missing binding rather than a failed rule.
	KindBinding Kind = "binding"
)

// Rule is an immutable validation predicate bundled with its failure message.
//
// Check receives the value of the field under test and a view of the whole
// record for rules that consult sibling fields. A value of the wrong type
// fails the check rather than causing an error.
type Rule interface {
	Kind() Kind
	Check(value any, rec record.View) bool
	Message() string
}

// Resolver is implemented by rules that reference other fields of the record.
// The binding builder calls Resolve once and stores the returned rule.
type Resolver interface {
	Resolve(idx record.Indexer) (Rule, error)
}

// Option customizes a rule at construction time.
type Option func(*options)

type options struct {
	message       string
	parameterized bool
	now           func() time.Time
}

// WithMessage replaces the rule's default failure message.
func WithMessage(msg string) Option {
	return func(o *options) { o.message = msg }
}

// WithParameterizedMessage renders MinLength and Contains messages from their
// actual parameters instead of the fixed default text.
func WithParameterizedMessage() Option {
	return func(o *options) { o.parameterized = true }
}

// WithClock sets the time source of FutureDate. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o options) messageOr(def string) string {
	if o.message != "" {
		return o.message
	}
	return def
}

// CheckFunc is the predicate of a custom rule.
type CheckFunc func(value any, rec record.View) bool

type funcRule struct {
	kind    Kind
	message string
	fn      CheckFunc
}

// Func builds a custom rule from a predicate.
func Func(kind Kind, message string, fn CheckFunc) Rule {
	if kind == "" || message == "" || fn == nil {
		malformed("func rule requires kind, message and predicate")
	}
	return funcRule{kind: kind, message: message, fn: fn}
}

func (r funcRule) Kind() Kind                            { return r.kind }
func (r funcRule) Message() string                       { return r.message }
func (r funcRule) Check(value any, rec record.View) bool { return r.fn(value, rec) }

// malformed panics: a rule built with invalid parameters is a programming
// error in static configuration.
func malformed(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrMalformedRule, fmt.Sprintf(format, args...)))
}

// deref follows a single level of pointer indirection.
// It reports false for nil values and nil pointers.
func deref(value any) (reflect.Value, bool) {
	if value == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, true
}

func asString(value any) (string, bool) {
	if s, ok := value.(string); ok {
		return s, true
	}
	rv, ok := deref(value)
	if !ok || rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

// integer holds any Go integer value without loss.
type integer struct {
	signed   int64
	unsigned uint64
	isSigned bool
}

func (n integer) positive() bool {
	if n.isSigned {
		return n.signed > 0
	}
	return n.unsigned > 0
}

func (n integer) less(t int64) bool {
	if n.isSigned {
		return n.signed < t
	}
	return t > 0 && n.unsigned < uint64(t)
}

func asInteger(value any) (integer, bool) {
	if i, ok := value.(int); ok {
		return integer{signed: int64(i), isSigned: true}, true
	}
	rv, ok := deref(value)
	if !ok {
		return integer{}, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return integer{signed: rv.Int(), isSigned: true}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return integer{unsigned: rv.Uint()}, true
	default:
		return integer{}, false
	}
}

func asTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	default:
		return time.Time{}, false
	}
}
