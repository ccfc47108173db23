package validator

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/dmitrymomot/fieldcheck/pkg/record"
)

type allowedValuesRule struct {
	allowed []string
	folded  []string
	message string
}

// AllowedValues passes for strings equal to one of values, ignoring case.
// Comparison uses Unicode case folding.
func AllowedValues(values []string, opts ...Option) Rule {
	if len(values) == 0 {
		malformed("allowed values require at least one value")
	}
	allowed := slices.Clone(values)
	fold := cases.Fold()
	folded := make([]string, len(allowed))
	for i, v := range allowed {
		fold.Reset()
		folded[i] = fold.String(v)
	}
	def := fmt.Sprintf("Value must be one of: %s.", strings.Join(allowed, ", "))
	return allowedValuesRule{
		allowed: allowed,
		folded:  folded,
		message: applyOptions(opts).messageOr(def),
	}
}

// OneOf is an alias for AllowedValues taking values as variadic arguments.
func OneOf(values ...string) Rule {
	return AllowedValues(values)
}

func (r allowedValuesRule) Kind() Kind      { return KindAllowedValues }
func (r allowedValuesRule) Message() string { return r.message }

func (r allowedValuesRule) Check(value any, _ record.View) bool {
	s, ok := asString(value)
	if !ok {
		return false
	}
	// A Caser must not be shared between goroutines.
	return slices.Contains(r.folded, cases.Fold().String(s))
}

// EnumType describes a closed set of named members that AllowedEnum checks against.
type EnumType interface {
	// Name is the enum's display name used in messages.
	Name() string
	// Defined reports whether value has the enum's Go type and is a declared member.
	Defined(value any) bool
	// Parse reports whether s names a declared member.
	Parse(s string) bool
}

// Enum is an EnumType over members of the Go type E.
type Enum[E comparable] struct {
	name    string
	members []E
	names   map[string]E
}

// NewEnum declares an enum. Member names are rendered with fmt.Sprint, so
// types implementing fmt.Stringer are named by their String method.
// It panics on an empty name, no members or duplicate member names.
func NewEnum[E comparable](name string, members ...E) *Enum[E] {
	if name == "" {
		malformed("enum name is empty")
	}
	if len(members) == 0 {
		malformed("enum %s has no members", name)
	}
	e := &Enum[E]{
		name:    name,
		members: slices.Clone(members),
		names:   make(map[string]E, len(members)),
	}
	for _, m := range members {
		n := fmt.Sprint(m)
		if _, dup := e.names[n]; dup {
			malformed("enum %s declares member %q twice", name, n)
		}
		e.names[n] = m
	}
	return e
}

func (e *Enum[E]) Name() string {
	return e.name
}

// Members returns the declared members in declaration order.
func (e *Enum[E]) Members() []E {
	return slices.Clone(e.members)
}

func (e *Enum[E]) Defined(value any) bool {
	v, ok := value.(E)
	return ok && slices.Contains(e.members, v)
}

func (e *Enum[E]) Parse(s string) bool {
	_, ok := e.names[s]
	return ok
}

// Lookup returns the member named s.
func (e *Enum[E]) Lookup(s string) (E, bool) {
	v, ok := e.names[s]
	return v, ok
}

type allowedEnumRule struct {
	enum    EnumType
	message string
}

// AllowedEnum passes for declared members of enum and for strings naming one.
// It panics when enum is nil.
func AllowedEnum(enum EnumType, opts ...Option) Rule {
	if isNil(enum) {
		malformed("allowed enum requires an enum type")
	}
	def := fmt.Sprintf("Value must be a valid %s enum member.", enum.Name())
	return allowedEnumRule{enum: enum, message: applyOptions(opts).messageOr(def)}
}

func (r allowedEnumRule) Kind() Kind      { return KindAllowedEnum }
func (r allowedEnumRule) Message() string { return r.message }

func (r allowedEnumRule) Check(value any, _ record.View) bool {
	if value == nil {
		return false
	}
	if r.enum.Defined(value) {
		return true
	}
	s, ok := value.(string)
	return ok && r.enum.Parse(s)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
