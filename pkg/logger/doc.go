// Package logger builds the *slog.Logger used by fieldcheck hosts and provides
// attribute helpers for validation outcomes.
//
// New creates a logger configured by Option functions:
//
//   - WithEnvironment – per-environment defaults (text/debug in development,
//     JSON/info elsewhere) plus service and env attributes
//   - WithFormat / WithLevel / WithOutput – explicit overrides
//   - WithAttr – static attributes on every record
//   - WithContextValue – inject a value stored in context.Context
//
// Options apply in order, so overrides must follow WithEnvironment.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "signup"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//
//	res := users.Validate(u)
//	log.InfoContext(ctx, "user validated", logger.Result(res))
//
// Validation itself never logs; hosts decide what to record. Result and
// Violations render validator outcomes as structured groups, and Error
// returns an empty Attr for nil errors so callers can skip the nil check.
package logger
