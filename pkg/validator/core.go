package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Violation describes a single failed rule.
type Violation struct {
	Field   string
	Kind    Kind
	Message string
}

// Violations represents a collection of rule failures in evaluation order.
type Violations []Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (vs *Violations) Add(v Violation) {
	*vs = append(*vs, v)
}

func (vs Violations) Has(field string) bool {
	for _, v := range vs {
		if v.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages reported for field.
func (vs Violations) Get(field string) []string {
	var messages []string
	for _, v := range vs {
		if v.Field == field {
			messages = append(messages, v.Message)
		}
	}
	return messages
}

// Fields returns the distinct failing field names in evaluation order.
func (vs Violations) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, v := range vs {
		if !seen[v.Field] {
			fields = append(fields, v.Field)
			seen[v.Field] = true
		}
	}
	return fields
}

// First returns the first violation, which is the one Validate reports.
func (vs Violations) First() (Violation, bool) {
	if len(vs) == 0 {
		return Violation{}, false
	}
	return vs[0], true
}

func (vs Violations) IsEmpty() bool {
	return len(vs) == 0
}

// Result is the outcome of a first-failure validation pass.
// Field, Kind and Message are set only when Valid is false.
type Result struct {
	Valid   bool
	Field   string
	Kind    Kind
	Message string
}

// Err returns nil for a valid result and a Violations error otherwise.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return Violations{{Field: r.Field, Kind: r.Kind, Message: r.Message}}
}

// ExtractViolations extracts Violations from an error.
func ExtractViolations(err error) Violations {
	if err == nil {
		return nil
	}

	var vs Violations
	if errors.As(err, &vs) {
		return vs
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var vs Violations
	return errors.As(err, &vs)
}
