// Package validator checks the fields of a record against declarative,
// per-field rule lists and reports the first rule that fails.
//
// A Rule is an immutable predicate bundled with its failure message. Each
// exported constructor (MinLength, Contains, Positive, Negative, RequiredIf,
// URL, FutureDate, AllowedValues, AllowedEnum, UUID) returns a Rule; Func
// adapts any predicate into one. A Binding maps the fields of a record.Schema
// to ordered rule lists and is built once per record type, then shared.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `numeric_rules.go`, `choice_rules.go`, etc.). binding.go holds the Builder
// and Binding, evaluator.go the Validate and ValidateAll entry points.
//
// Core building blocks:
//   - Rule        – Kind, Check(value, view) and Message
//   - Resolver    – optional capability for rules referencing sibling fields,
//     resolved once when the binding is built
//   - Binding     – immutable field-to-rules mapping in schema order
//   - Result      – outcome of a first-failure pass
//   - Violations  – slice of failures that implements the error interface
//
// # Usage
//
//	schema := record.MustSchema(
//	    record.String("Username", func(u User) string { return u.Username }),
//	    record.Int("Age", func(u User) int { return u.Age }),
//	    record.String("Gender", func(u User) string { return u.Gender }),
//	)
//
//	users := validator.NewBinding(schema).
//	    Field("Username", validator.MinLength(4)).
//	    Field("Age", validator.Positive()).
//	    Field("Gender", validator.OneOf("Male", "Female", "Other")).
//	    MustBuild()
//
//	if res := users.Validate(u); !res.Valid {
//	    fmt.Printf("%s: %s\n", res.Field, res.Message)
//	}
//
// # Evaluation order
//
// Fields are evaluated in schema declaration order and rules in the order
// they were bound. Validate stops at the first failure; ValidateAll keeps
// going and returns every failure in the same order.
//
// # Error Handling
//
// A value whose type does not match what a rule expects fails the rule; it
// never panics. Configuration faults are caught early instead: rule
// constructors panic on invalid parameters (wrapping ErrMalformedRule) and
// Build reports unknown fields, nil rules and unresolvable conditional fields.
//
// Result.Err and ValidateAll return Violations, which works with errors.As.
// ExtractViolations and IsValidationError are shortcuts for that.
//
// # Concurrency
//
// Rules and bindings are immutable and safe for concurrent use. Validation
// performs no I/O and never modifies the record. FutureDate reads the clock at
// check time, so the same record may pass now and fail later.
package validator
