package main

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/fieldcheck/pkg/config"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

// run validates u in the configured mode and logs the outcome.
func run(ctx context.Context, l *slog.Logger, mode config.Mode, u User) bool {
	if mode == config.ModeAll {
		vs := userRules.ValidateAll(u)
		if vs.IsEmpty() {
			l.DebugContext(ctx, "user validated")
			return true
		}
		l.WarnContext(ctx, "user validation failed", logger.Violations(vs))
		return false
	}

	res := userRules.Validate(u)
	if res.Valid {
		l.DebugContext(ctx, "user validated")
		return true
	}
	l.WarnContext(ctx, "user validation failed", logger.Result(res))
	return false
}
