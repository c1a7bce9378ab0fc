package logging

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"
)

// buildEvent creates the zerolog event for the given level. The fatal level
// backs CRITICAL and is emitted via WithLevel so the process keeps running.
func buildEvent(logger *zerolog.Logger, level zerolog.Level) *zerolog.Event {
	switch level {
	case zerolog.DebugLevel:
		return logger.Debug()
	case zerolog.InfoLevel:
		return logger.Info()
	case zerolog.WarnLevel:
		return logger.Warn()
	case zerolog.ErrorLevel:
		return logger.Error()
	case zerolog.FatalLevel:
		return logger.WithLevel(zerolog.FatalLevel)
	default:
		return nil
	}
}

// logEventBuilder creates a log event on the service's root logger.
// If the service is unusable or the level disabled, it returns a no-op
// LogEvent.
func logEventBuilder(s *Service, level zerolog.Level) LogEvent {
	if s == nil || !s.isInitialized.Load() {
		return newLogEvent(nil)
	}
	logger := s.root.Load()
	if logger == nil {
		return newLogEvent(nil)
	}
	if logger.GetLevel() > level {
		return newLogEvent(nil)
	}
	return newLogEvent(buildEvent(logger, level))
}

// childEventBuilder is logEventBuilder for loggers derived from the service
// (component and context loggers).
func childEventBuilder(cl *childLogger, level zerolog.Level) LogEvent {
	if cl == nil || cl.logger == nil || cl.parent == nil || !cl.parent.isInitialized.Load() {
		return newLogEvent(nil)
	}
	if cl.logger.GetLevel() > level {
		return newLogEvent(nil)
	}
	return newLogEvent(buildEvent(cl.logger, level))
}

// errorChain walks err's unwrap chain and returns the messages outermost ->
// root plus the root message. Depth and repeated messages are bounded to
// guard against cycles.
func errorChain(err error) (chain []string, root string) {
	const maxDepth = 50
	seen := map[string]bool{}

	for err != nil && len(chain) < maxDepth {
		msg := err.Error()
		if seen[msg] {
			break
		}
		seen[msg] = true
		chain = append(chain, msg)
		err = errors.Unwrap(err)
	}

	if len(chain) > 0 {
		root = chain[len(chain)-1]
	}
	return
}

// joinChain returns a single string for the error chain separated by " -> ".
func joinChain(chain []string) string {
	if len(chain) == 0 {
		return emptyString
	}
	return strings.Join(chain, " -> ")
}
