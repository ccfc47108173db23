package logger

import (
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records a record field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// RuleKind records a rule kind under the key "rule".
func RuleKind(kind validator.Kind) slog.Attr {
	return slog.String("rule", string(kind))
}

// Result records a first-failure validation result under the key "result".
func Result(res validator.Result) slog.Attr {
	if res.Valid {
		return slog.Group("result", slog.Bool("valid", true))
	}
	return slog.Group("result",
		slog.Bool("valid", false),
		Field(res.Field),
		RuleKind(res.Kind),
		slog.String("message", res.Message),
	)
}

// Violations groups violations under the key "violations", one entry per
// failure keyed by its position. An empty slice yields an empty Attr.
func Violations(vs validator.Violations) slog.Attr {
	if len(vs) == 0 {
		return slog.Attr{}
	}
	as := make([]slog.Attr, 0, len(vs))
	for i, v := range vs {
		as = append(as, slog.Group(strconv.Itoa(i),
			Field(v.Field),
			RuleKind(v.Kind),
			slog.String("message", v.Message),
		))
	}
	return slog.Attr{Key: "violations", Value: slog.GroupValue(as...)}
}
