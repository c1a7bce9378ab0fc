package logging

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// LogContext provides a fluent interface for building a context logger with
// pre-populated fields.
type LogContext interface {
	Str(key, val string) LogContext
	Strs(key string, vals []string) LogContext
	Int(key string, val int) LogContext
	Int64(key string, val int64) LogContext
	Float64(key string, val float64) LogContext
	Bool(key string, val bool) LogContext
	Time(key string, val time.Time) LogContext
	Err(err error) LogContext
	Interface(key string, val interface{}) LogContext
	// Logger creates and returns the new context logger
	Logger() Logger
}

// LogEvent provides a fluent interface for building one record. Ctx attaches
// the emitting call's context so the record is attributed to its actor; a
// record emitted without Ctx carries the ActorUnknown sentinel.
type LogEvent interface {
	Ctx(ctx context.Context) LogEvent
	Str(key, val string) LogEvent
	Strs(key string, vals []string) LogEvent
	Stringer(key string, val interface{ String() string }) LogEvent
	Int(key string, val int) LogEvent
	Int64(key string, val int64) LogEvent
	Uint64(key string, val uint64) LogEvent
	Float64(key string, val float64) LogEvent
	Bool(key string, val bool) LogEvent
	Time(key string, val time.Time) LogEvent
	Dur(key string, val time.Duration) LogEvent
	Err(err error) LogEvent
	AnErr(key string, err error) LogEvent
	Interface(key string, val interface{}) LogEvent
	Msg(msg string)
	Msgf(format string, v ...interface{})
	Send()
}

// logEvent implements LogEvent by wrapping zerolog.Event. A nil event makes
// every method a no-op, which is how disabled levels and uninitialized
// services are handled.
type logEvent struct {
	event *zerolog.Event
}

func newLogEvent(e *zerolog.Event) LogEvent {
	return &logEvent{event: e}
}

func (e *logEvent) Ctx(ctx context.Context) LogEvent {
	if e.event != nil && ctx != nil {
		e.event.Ctx(ctx)
	}
	return e
}

func (e *logEvent) Str(key, val string) LogEvent {
	if e.event != nil {
		e.event.Str(key, val)
	}
	return e
}

func (e *logEvent) Strs(key string, vals []string) LogEvent {
	if e.event != nil {
		e.event.Strs(key, vals)
	}
	return e
}

func (e *logEvent) Stringer(key string, val interface{ String() string }) LogEvent {
	if e.event != nil {
		e.event.Stringer(key, val)
	}
	return e
}

func (e *logEvent) Int(key string, val int) LogEvent {
	if e.event != nil {
		e.event.Int(key, val)
	}
	return e
}

func (e *logEvent) Int64(key string, val int64) LogEvent {
	if e.event != nil {
		e.event.Int64(key, val)
	}
	return e
}

func (e *logEvent) Uint64(key string, val uint64) LogEvent {
	if e.event != nil {
		e.event.Uint64(key, val)
	}
	return e
}

func (e *logEvent) Float64(key string, val float64) LogEvent {
	if e.event != nil {
		e.event.Float64(key, val)
	}
	return e
}

func (e *logEvent) Bool(key string, val bool) LogEvent {
	if e.event != nil {
		e.event.Bool(key, val)
	}
	return e
}

func (e *logEvent) Time(key string, val time.Time) LogEvent {
	if e.event != nil {
		e.event.Time(key, val)
	}
	return e
}

func (e *logEvent) Dur(key string, val time.Duration) LogEvent {
	if e.event != nil {
		e.event.Dur(key, val)
	}
	return e
}

func (e *logEvent) Err(err error) LogEvent {
	if e.event != nil {
		e.event.Err(err)
		if err != nil {
			if chain, root := errorChain(err); len(chain) > 1 {
				e.event.Strs("error_chain", chain)
				e.event.Str("error_root", root)
				e.event.Str("error_history", joinChain(chain))
			}
		}
	}
	return e
}

func (e *logEvent) AnErr(key string, err error) LogEvent {
	if e.event != nil {
		e.event.AnErr(key, err)
		if err != nil {
			if chain, root := errorChain(err); len(chain) > 1 {
				e.event.Strs(key+"_chain", chain)
				e.event.Str(key+"_root", root)
				e.event.Str(key+"_history", joinChain(chain))
			}
		}
	}
	return e
}

func (e *logEvent) Interface(key string, val interface{}) LogEvent {
	if e.event != nil {
		e.event.Interface(key, val)
	}
	return e
}

func (e *logEvent) Msg(msg string) {
	if e.event != nil {
		e.event.Msg(msg)
	}
}

func (e *logEvent) Msgf(format string, v ...interface{}) {
	if e.event != nil {
		e.event.Msgf(format, v...)
	}
}

func (e *logEvent) Send() {
	if e.event != nil {
		e.event.Send()
	}
}

// childLogger is a logger derived from the Service: either a component
// logger carrying its own rotating sink, or a context logger created via
// With(). It delegates lifecycle state to the parent Service so a Close()
// turns all derived loggers into no-ops together.
type childLogger struct {
	logger *zerolog.Logger
	parent *Service

	// set only for component loggers
	name string
	path string
}

func (cl *childLogger) DebugWith() LogEvent    { return childEventBuilder(cl, zerolog.DebugLevel) }
func (cl *childLogger) InfoWith() LogEvent     { return childEventBuilder(cl, zerolog.InfoLevel) }
func (cl *childLogger) WarnWith() LogEvent     { return childEventBuilder(cl, zerolog.WarnLevel) }
func (cl *childLogger) ErrorWith() LogEvent    { return childEventBuilder(cl, zerolog.ErrorLevel) }
func (cl *childLogger) CriticalWith() LogEvent { return childEventBuilder(cl, zerolog.FatalLevel) }

func (cl *childLogger) With() LogContext {
	if cl == nil || cl.logger == nil || cl.parent == nil || !cl.parent.isInitialized.Load() {
		return &noopLogContext{}
	}
	return &logContext{
		context: cl.logger.With(),
		service: cl.parent,
	}
}

// logContext implements LogContext by wrapping zerolog.Context.
type logContext struct {
	context zerolog.Context
	service *Service
}

func (c *logContext) Str(key, val string) LogContext {
	c.context = c.context.Str(key, val)
	return c
}

func (c *logContext) Strs(key string, vals []string) LogContext {
	c.context = c.context.Strs(key, vals)
	return c
}

func (c *logContext) Int(key string, val int) LogContext {
	c.context = c.context.Int(key, val)
	return c
}

func (c *logContext) Int64(key string, val int64) LogContext {
	c.context = c.context.Int64(key, val)
	return c
}

func (c *logContext) Float64(key string, val float64) LogContext {
	c.context = c.context.Float64(key, val)
	return c
}

func (c *logContext) Bool(key string, val bool) LogContext {
	c.context = c.context.Bool(key, val)
	return c
}

func (c *logContext) Time(key string, val time.Time) LogContext {
	c.context = c.context.Time(key, val)
	return c
}

func (c *logContext) Err(err error) LogContext {
	c.context = c.context.Err(err)
	return c
}

func (c *logContext) Interface(key string, val interface{}) LogContext {
	c.context = c.context.Interface(key, val)
	return c
}

func (c *logContext) Logger() Logger {
	logger := c.context.Logger()
	return &childLogger{
		logger: &logger,
		parent: c.service,
	}
}

// noopLogContext is returned when the service is not usable.
type noopLogContext struct{}

func (n *noopLogContext) Str(key, val string) LogContext              { return n }
func (n *noopLogContext) Strs(key string, vals []string) LogContext   { return n }
func (n *noopLogContext) Int(key string, val int) LogContext          { return n }
func (n *noopLogContext) Int64(key string, val int64) LogContext      { return n }
func (n *noopLogContext) Float64(key string, val float64) LogContext  { return n }
func (n *noopLogContext) Bool(key string, val bool) LogContext        { return n }
func (n *noopLogContext) Time(key string, val time.Time) LogContext   { return n }
func (n *noopLogContext) Err(err error) LogContext                    { return n }
func (n *noopLogContext) Interface(key string, val interface{}) LogContext {
	return n
}
func (n *noopLogContext) Logger() Logger { return &noopLogger{} }

// noopLogger discards everything.
type noopLogger struct{}

func (n *noopLogger) DebugWith() LogEvent    { return newLogEvent(nil) }
func (n *noopLogger) InfoWith() LogEvent     { return newLogEvent(nil) }
func (n *noopLogger) WarnWith() LogEvent     { return newLogEvent(nil) }
func (n *noopLogger) ErrorWith() LogEvent    { return newLogEvent(nil) }
func (n *noopLogger) CriticalWith() LogEvent { return newLogEvent(nil) }
func (n *noopLogger) With() LogContext       { return &noopLogContext{} }
