package logging

// Logger is the structured logging surface shared by the root Service,
// component loggers and context loggers. Attach the emitting call's context
// with LogEvent.Ctx so the record carries the right actor.
type Logger interface {
	DebugWith() LogEvent
	InfoWith() LogEvent
	WarnWith() LogEvent
	ErrorWith() LogEvent
	// CriticalWith logs at the highest severity without terminating the
	// process.
	CriticalWith() LogEvent

	// With creates a new logger with pre-populated fields that will be
	// included in all subsequent records.
	// Example: reqLogger := logger.With().Str("request_id", id).Logger()
	With() LogContext
}
