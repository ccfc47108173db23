package validator

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/fieldcheck/pkg/record"
)

type uuidRule struct {
	message string
}

// UUID passes for uuid.UUID values and strings in the canonical
// 8-4-4-4-12 form.
func UUID(opts ...Option) Rule {
	return uuidRule{message: applyOptions(opts).messageOr("The value must be a valid UUID.")}
}

func (r uuidRule) Kind() Kind      { return KindUUID }
func (r uuidRule) Message() string { return r.message }

func (r uuidRule) Check(value any, _ record.View) bool {
	if _, ok := value.(uuid.UUID); ok {
		return true
	}
	s, ok := asString(value)
	if !ok {
		return false
	}

	// Fast rejection before parsing: uuid.Parse also accepts urn and braced forms.
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}

	_, err := uuid.Parse(s)
	return err == nil
}
