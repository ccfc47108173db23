package validator

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrymomot/fieldcheck/pkg/record"
)

// Builder collects field-to-rules declarations for a record type.
// It is not safe for concurrent use; the Binding it builds is.
type Builder[R any] struct {
	schema *record.Schema[R]
	order  []string
	rules  map[string][]Rule
}

// NewBinding starts a binding declaration over schema.
func NewBinding[R any](schema *record.Schema[R]) *Builder[R] {
	return &Builder[R]{
		schema: schema,
		rules:  make(map[string][]Rule),
	}
}

// Field appends rules to the named field. Repeated calls for the same field
// append in call order.
func (b *Builder[R]) Field(name string, rules ...Rule) *Builder[R] {
	if _, ok := b.rules[name]; !ok {
		b.order = append(b.order, name)
	}
	b.rules[name] = append(b.rules[name], rules...)
	return b
}

// Build validates the declarations and resolves cross-field references.
// All problems are reported together.
func (b *Builder[R]) Build() (*Binding[R], error) {
	if b.schema == nil {
		return nil, ErrNilSchema
	}

	var errs []error
	bound := make([]fieldRules, 0, len(b.rules))

	for _, name := range b.order {
		if _, ok := b.schema.IndexOf(name); !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownField, name))
		}
	}

	for i := range b.schema.Len() {
		name := b.schema.Field(i).Name
		declared, ok := b.rules[name]
		if !ok || len(declared) == 0 {
			continue
		}

		resolved := make([]Rule, 0, len(declared))
		for j, rule := range declared {
			if isNil(rule) {
				errs = append(errs, fmt.Errorf("%w: %s[%d]", ErrNilRule, name, j))
				continue
			}
			if res, ok := rule.(Resolver); ok {
				r, err := res.Resolve(b.schema)
				if err != nil {
					errs = append(errs, fmt.Errorf("field %s: %w", name, err))
					continue
				}
				rule = r
			}
			resolved = append(resolved, rule)
		}
		bound = append(bound, fieldRules{index: i, name: name, rules: resolved})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Binding[R]{schema: b.schema, fields: bound}, nil
}

// MustBuild works like Build but panics on error.
func (b *Builder[R]) MustBuild() *Binding[R] {
	binding, err := b.Build()
	if err != nil {
		panic(err)
	}
	return binding
}

type fieldRules struct {
	index int
	name  string
	rules []Rule
}

// Binding is the immutable mapping from the fields of R to their ordered rules.
// It is safe for concurrent use.
type Binding[R any] struct {
	schema *record.Schema[R]
	fields []fieldRules
}

// Schema returns the schema the binding was built over.
func (b *Binding[R]) Schema() *record.Schema[R] {
	return b.schema
}

// Fields returns the names of fields with rules, in evaluation order.
func (b *Binding[R]) Fields() []string {
	names := make([]string, len(b.fields))
	for i, f := range b.fields {
		names[i] = f.name
	}
	return names
}

// RulesFor returns the rules bound to the named field, in evaluation order.
func (b *Binding[R]) RulesFor(name string) []Rule {
	for _, f := range b.fields {
		if f.name == name {
			return slices.Clone(f.rules)
		}
	}
	return nil
}

// Validate is a shorthand for the package-level Validate.
func (b *Binding[R]) Validate(rec R) Result {
	return Validate(rec, b)
}

// ValidateAll is a shorthand for the package-level ValidateAll.
func (b *Binding[R]) ValidateAll(rec R) Violations {
	return ValidateAll(rec, b)
}
