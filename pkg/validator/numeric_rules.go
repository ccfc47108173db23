package validator

import "github.com/dmitrymomot/fieldcheck/pkg/record"

type positiveRule struct {
	message string
}

// Positive passes for integers greater than zero.
func Positive(opts ...Option) Rule {
	return positiveRule{message: applyOptions(opts).messageOr("Value should be positive.")}
}

func (r positiveRule) Kind() Kind      { return KindPositive }
func (r positiveRule) Message() string { return r.message }

func (r positiveRule) Check(value any, _ record.View) bool {
	n, ok := asInteger(value)
	return ok && n.positive()
}

type negativeRule struct {
	threshold int64
	message   string
}

// Negative passes for integers strictly below threshold.
func Negative(threshold int64, opts ...Option) Rule {
	return negativeRule{
		threshold: threshold,
		message:   applyOptions(opts).messageOr("Value should be negative."),
	}
}

func (r negativeRule) Kind() Kind      { return KindNegative }
func (r negativeRule) Message() string { return r.message }

func (r negativeRule) Check(value any, _ record.View) bool {
	n, ok := asInteger(value)
	return ok && n.less(r.threshold)
}
