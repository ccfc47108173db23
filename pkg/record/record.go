package record

import (
	"fmt"
	"time"
)

// Type describes the semantic type of a field value.
type Type uint8

const (
	TypeAny Type = iota
	TypeString
	TypeInt
	TypeTime
	TypeEnum
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeTime:
		return "time"
	case TypeEnum:
		return "enum"
	default:
		return "any"
	}
}

// Field describes one field of a record type R: its name, semantic type and
// an accessor returning the field's current value.
type Field[R any] struct {
	Name string
	Type Type
	Get  func(R) any
}

// String declares a string field.
func String[R any](name string, get func(R) string) Field[R] {
	return Field[R]{Name: name, Type: TypeString, Get: wrap(get)}
}

// Int declares an integer field.
func Int[R any, I ~int | ~int8 | ~int16 | ~int32 | ~int64 |
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](name string, get func(R) I) Field[R] {
	return Field[R]{Name: name, Type: TypeInt, Get: wrap(get)}
}

// Time declares a date/time field.
func Time[R any](name string, get func(R) time.Time) Field[R] {
	return Field[R]{Name: name, Type: TypeTime, Get: wrap(get)}
}

// Enum declares a field holding a value of an enumerated type.
func Enum[R any, E comparable](name string, get func(R) E) Field[R] {
	return Field[R]{Name: name, Type: TypeEnum, Get: wrap(get)}
}

// Any declares a field of an arbitrary type.
func Any[R any](name string, get func(R) any) Field[R] {
	return Field[R]{Name: name, Type: TypeAny, Get: get}
}

// MapField declares a field of a map-backed record. Missing keys read as nil.
func MapField(name string, typ Type) Field[map[string]any] {
	return Field[map[string]any]{
		Name: name,
		Type: typ,
		Get: func(m map[string]any) any {
			return m[name]
		},
	}
}

func wrap[R, V any](get func(R) V) func(R) any {
	if get == nil {
		return nil
	}
	return func(r R) any { return get(r) }
}

// Schema is the ordered, immutable set of field descriptors of a record type.
// Declaration order is the order in which fields are validated.
type Schema[R any] struct {
	fields []Field[R]
	index  map[string]int
}

// NewSchema builds a schema from field descriptors in declaration order.
func NewSchema[R any](fields ...Field[R]) (*Schema[R], error) {
	s := &Schema[R]{
		fields: make([]Field[R], 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: position %d", ErrEmptyFieldName, i)
		}
		if f.Get == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilAccessor, f.Name)
		}
		if _, ok := s.index[f.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, f.Name)
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s, nil
}

// MustSchema works like NewSchema but panics on error.
func MustSchema[R any](fields ...Field[R]) *Schema[R] {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema[R]) Len() int {
	return len(s.fields)
}

// Fields returns a copy of the field descriptors in declaration order.
func (s *Schema[R]) Fields() []Field[R] {
	out := make([]Field[R], len(s.fields))
	copy(out, s.fields)
	return out
}

// Field returns the descriptor at position i.
func (s *Schema[R]) Field(i int) Field[R] {
	return s.fields[i]
}

// IndexOf returns the position of the named field.
func (s *Schema[R]) IndexOf(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Bind returns a read-only view over rec.
func (s *Schema[R]) Bind(rec R) View {
	return instance[R]{schema: s, rec: rec}
}

// Indexer resolves field names to positions. Rules that reference sibling
// fields receive one at binding construction time.
type Indexer interface {
	IndexOf(name string) (int, bool)
}

// View is the read-only view of a single record instance handed to rules.
type View interface {
	Indexer
	// Value returns the current value of the field at position i.
	Value(i int) any
	// Lookup returns the current value of the named field.
	Lookup(name string) (any, bool)
	// Name returns the name of the field at position i.
	Name(i int) string
	// Len returns the number of fields in the view.
	Len() int
}

type instance[R any] struct {
	schema *Schema[R]
	rec    R
}

func (v instance[R]) IndexOf(name string) (int, bool) {
	return v.schema.IndexOf(name)
}

func (v instance[R]) Value(i int) any {
	return v.schema.fields[i].Get(v.rec)
}

func (v instance[R]) Lookup(name string) (any, bool) {
	i, ok := v.schema.index[name]
	if !ok {
		return nil, false
	}
	return v.Value(i), true
}

func (v instance[R]) Name(i int) string {
	return v.schema.fields[i].Name
}

func (v instance[R]) Len() int {
	return len(v.schema.fields)
}
