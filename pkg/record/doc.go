// Package record describes the fields of a record type as explicit, statically
// constructed metadata instead of runtime type introspection.
//
// A Field pairs a name and a semantic Type with an accessor function. A Schema
// is the ordered set of fields of one record type; its declaration order is
// the evaluation order used by the validator package. Binding a record
// instance to a schema yields a View, the read-only window through which rules
// read the field under test and its siblings.
//
// # Usage
//
//	type User struct {
//		Username string
//		Age      int
//	}
//
//	schema := record.MustSchema(
//		record.String("Username", func(u User) string { return u.Username }),
//		record.Int("Age", func(u User) int { return u.Age }),
//	)
//
//	view := schema.Bind(User{Username: "jo"})
//	name, _ := view.Lookup("Username")
//
// Map-backed records are described with MapField:
//
//	schema := record.MustSchema(
//		record.MapField("status", record.TypeString),
//	)
//
// Schemas and views never mutate the record. A Schema is immutable after
// construction and safe for concurrent use.
package record
