package record

import "errors"

var (
	// ErrEmptyFieldName is returned when a field descriptor has no name.
	ErrEmptyFieldName = errors.New("field name is empty")

	// ErrNilAccessor is returned when a field descriptor has no value accessor.
	ErrNilAccessor = errors.New("field accessor is nil")

	// ErrDuplicateField is returned when two descriptors share a name.
	ErrDuplicateField = errors.New("duplicate field")
)
