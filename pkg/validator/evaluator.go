package validator

// Validate checks rec against b, field by field in schema declaration order
// and rule by rule in binding order, and stops at the first failed rule.
// It has no side effects and does not modify rec.
// A nil binding yields an invalid result carrying ErrNilSchema.
func Validate[R any](rec R, b *Binding[R]) Result {
	if b == nil || b.schema == nil {
		return nilBindingResult()
	}
	res := Result{Valid: true}
	walk(rec, b, func(v Violation) bool {
		res = Result{Field: v.Field, Kind: v.Kind, Message: v.Message}
		return false
	})
	return res
}

// ValidateAll checks every rule and returns all failures in the order
// Validate would meet them. It returns nil when rec is valid.
func ValidateAll[R any](rec R, b *Binding[R]) Violations {
	if b == nil || b.schema == nil {
		res := nilBindingResult()
		return Violations{{Kind: res.Kind, Message: res.Message}}
	}
	var vs Violations
	walk(rec, b, func(v Violation) bool {
		vs.Add(v)
		return true
	})
	return vs
}

// walk calls report for each failed rule until report returns false.
func walk[R any](rec R, b *Binding[R], report func(Violation) bool) {
	view := b.schema.Bind(rec)
	for _, f := range b.fields {
		value := view.Value(f.index)
		for _, rule := range f.rules {
			if rule.Check(value, view) {
				continue
			}
			if !report(Violation{Field: f.name, Kind: rule.Kind(), Message: rule.Message()}) {
				return
			}
		}
	}
}

func nilBindingResult() Result {
	return Result{Kind: KindBinding, Message: ErrNilSchema.Error()}
}
