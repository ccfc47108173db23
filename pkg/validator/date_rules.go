package validator

import (
	"time"

	"github.com/dmitrymomot/fieldcheck/pkg/record"
)

type futureDateRule struct {
	now     func() time.Time
	message string
}

// FutureDate passes for times strictly after the current instant, read at
// check time. The same record may pass now and fail later.
func FutureDate(opts ...Option) Rule {
	o := applyOptions(opts)
	now := o.now
	if now == nil {
		now = time.Now
	}
	return futureDateRule{now: now, message: o.messageOr("The date must be in the future.")}
}

func (r futureDateRule) Kind() Kind      { return KindFutureDate }
func (r futureDateRule) Message() string { return r.message }

func (r futureDateRule) Check(value any, _ record.View) bool {
	t, ok := asTime(value)
	return ok && t.After(r.now())
}
