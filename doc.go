// Package logging provides process-wide, actor-attributed logging over
// rs/zerolog with multi-sink routing and file rotation.
//
// Key features
//   - Actor attribution: every record carries a user=<actor> field read from
//     the emitting call's context.Context at emission time
//   - Multi-sink routing: console, an aggregate app.log, and an error-only
//     error.log, all rotated by lumberjack (5 MiB, 5 backups)
//   - Per-component loggers: Component(name) lazily attaches one dedicated
//     rotating file per component, idempotently
//   - Idempotent root initialization: Initialize() is a no-op once sinks
//     are attached, safe to call from multiple entry points
//   - Structured-first API: typed LogEvent fields instead of printf helpers
//
// Typical usage
//
//	svc := logging.NewService()
//	if err := svc.Initialize(); err != nil { panic(err) }
//	defer svc.Close()
//
//	billing, _ := svc.Component("billing")
//
//	ctx := logging.WithActor(r.Context(), principal)
//	billing.InfoWith().Ctx(ctx).Str("invoice", id).Msg("invoice issued")
package logging
