package validator

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/fieldcheck/pkg/record"
)

type requiredIfRule struct {
	field    string
	expected any
	optional bool
	// index is the resolved position of field, or -1 before resolution.
	index   int
	message string
}

// RequiredIf requires a non-empty value when the sibling field equals
// expected. The sibling is resolved when the binding is built; an undeclared
// sibling makes Build fail.
func RequiredIf(field string, expected any, opts ...Option) Rule {
	return newRequiredIf(field, expected, false, opts)
}

// RequiredIfOptional works like RequiredIf but tolerates an undeclared
// sibling field: the condition is then never met and the rule always passes.
func RequiredIfOptional(field string, expected any, opts ...Option) Rule {
	return newRequiredIf(field, expected, true, opts)
}

func newRequiredIf(field string, expected any, optional bool, opts []Option) Rule {
	if field == "" {
		malformed("required if needs a conditional field name")
	}
	def := fmt.Sprintf("This field is required when %s is %v.", field, expected)
	return requiredIfRule{
		field:    field,
		expected: expected,
		optional: optional,
		index:    -1,
		message:  applyOptions(opts).messageOr(def),
	}
}

func (r requiredIfRule) Kind() Kind      { return KindRequiredIf }
func (r requiredIfRule) Message() string { return r.message }

// Resolve binds the conditional field to its schema position.
func (r requiredIfRule) Resolve(idx record.Indexer) (Rule, error) {
	i, ok := idx.IndexOf(r.field)
	if !ok {
		if r.optional {
			return r, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownConditionalField, r.field)
	}
	r.index = i
	return r, nil
}

func (r requiredIfRule) Check(value any, rec record.View) bool {
	cond, ok := r.condition(rec)
	if !ok || !equal(cond, r.expected) {
		return true
	}
	return !isEmpty(value)
}

func (r requiredIfRule) condition(rec record.View) (any, bool) {
	if rec == nil {
		return nil, false
	}
	// A view of another schema falls back to a lookup by name.
	if r.index >= 0 && r.index < rec.Len() && rec.Name(r.index) == r.field {
		return rec.Value(r.index), true
	}
	return rec.Lookup(r.field)
}

// equal compares with ==, treating values of incomparable dynamic types as
// unequal and nil pointers as equal to nil. Comparable types holding
// incomparable interface values (a struct with a slice in an any field)
// are unequal too.
func equal(a, b any) (eq bool) {
	if a == nil || b == nil {
		return isNil(a) && isNil(b)
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

func isEmpty(value any) bool {
	if isNil(value) {
		return true
	}
	return fmt.Sprint(value) == ""
}
