package validator

import "errors"

// Construction errors. They describe faults in static binding configuration
// and are reported by Build or raised as panics by rule constructors.
var (
	// ErrMalformedRule is raised when a rule is constructed with invalid parameters.
	ErrMalformedRule = errors.New("malformed rule")

	// ErrUnknownField is returned when rules are bound to a field the schema does not declare.
	ErrUnknownField = errors.New("unknown field")

	// ErrUnknownConditionalField is returned when a conditional rule references an undeclared field.
	ErrUnknownConditionalField = errors.New("unknown conditional field")

	// ErrNilRule is returned when a nil rule is bound to a field.
	ErrNilRule = errors.New("nil rule")

	// ErrNilSchema is returned when a binding is built without a schema.
	ErrNilSchema = errors.New("nil schema")
)
