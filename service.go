package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Service owns the root logger, its three sinks (console, app.log,
// error.log) and the registry of component loggers. All methods are safe
// for concurrent use.
type Service struct {
	// Config overrides the environment-derived configuration when set.
	Config *Config
	// ConsoleOut overrides the console sink destination (default
	// os.Stderr).
	ConsoleOut io.Writer

	root          atomic.Pointer[zerolog.Logger]
	isInitialized atomic.Bool

	mu         sync.Mutex
	cfg        Config
	rootWriter zerolog.LevelWriter
	components map[string]*childLogger
	files      []*lumberjack.Logger
}

func NewService() *Service {
	return &Service{}
}

// Initialize wires the root logger: a console sink, a rotating app.log sink
// at the configured minimum severity, and a rotating error.log sink
// restricted to ERROR and above. It is idempotent — once sinks are attached,
// further calls return nil without attaching anything — so it may be called
// from every entry point of the process.
//
// Initialization failures (unusable log directory or files) are returned so
// the process can fail fast instead of running unobserved.
func (s *Service) Initialize() error {
	if s == nil {
		return errors.New(errMsgNilService)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isInitialized.Load() {
		return nil
	}

	cfg := ConfigFromEnv()
	if s.Config != nil {
		cfg = *s.Config
	}
	if err := validateConfig(&cfg); err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Dir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	appFile, err := newRotatingWriter(filepath.Join(cfg.Dir, appLogName), cfg)
	if err != nil {
		return err
	}
	errFile, err := newRotatingWriter(filepath.Join(cfg.Dir, errorLogName), cfg)
	if err != nil {
		return err
	}

	console := s.ConsoleOut
	if console == nil {
		console = os.Stderr
	}

	// One failing sink must not block the others: MultiLevelWriter keeps
	// writing the remaining writers when one returns an error, and zerolog
	// swallows write errors at the emitting call site.
	s.rootWriter = zerolog.MultiLevelWriter(
		newFormatWriter(console),
		newFormatWriter(appFile),
		newLevelFloorWriter(newFormatWriter(errFile), zerolog.ErrorLevel),
	)

	logger := zerolog.New(s.rootWriter).
		Level(cfg.level()).
		With().
		Timestamp().
		Str(loggerFieldName, rootLoggerName).
		Logger().
		Hook(actorHook{})

	s.cfg = cfg
	s.files = []*lumberjack.Logger{appFile, errFile}
	s.components = make(map[string]*childLogger)
	s.root.Store(&logger)
	s.isInitialized.Store(true)
	return nil
}

// Component returns the logger for the named component, creating it — and
// its dedicated rotating file sink at <dir>/<sanitized name>.log — on first
// use. Repeated calls with the same name return the same logger and never
// attach a second sink for the same resolved path. An empty name resolves
// to DefaultComponent.
//
// Component records are also delivered to the root sinks, so they appear in
// app.log (and error.log when severe enough) alongside everything else.
//
// The sanitized file name is lossy: distinct names such as "a/b" and "a.b"
// resolve to the same file and will interleave in it, each through its own
// sink.
func (s *Service) Component(name string) (Logger, error) {
	if s == nil {
		return nil, errors.New(errMsgNilService)
	}
	if name == emptyString {
		name = DefaultComponent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isInitialized.Load() {
		return nil, errors.New(errMsgNotInitialized)
	}

	if cl, ok := s.components[name]; ok {
		return cl, nil
	}

	path := filepath.Join(s.cfg.Dir, sanitizeName(name)+logFileExt)
	file, err := newRotatingWriter(path, s.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create sink for component %q: %w", name, err)
	}

	writer := zerolog.MultiLevelWriter(s.rootWriter, newFormatWriter(file))
	logger := zerolog.New(writer).
		Level(s.cfg.level()).
		With().
		Timestamp().
		Str(loggerFieldName, name).
		Logger().
		Hook(actorHook{})

	cl := &childLogger{
		logger: &logger,
		parent: s,
		name:   name,
		path:   path,
	}
	s.files = append(s.files, file)
	s.components[name] = cl
	return cl, nil
}

// Close releases the rotating file handles and turns the service and every
// derived logger into no-ops. It is safe to call multiple times; a
// subsequent Initialize starts fresh.
func (s *Service) Close() error {
	if s == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isInitialized.Load() {
		return nil
	}

	s.isInitialized.Store(false)
	s.root.Store(nil)

	var errs []error
	for _, f := range s.files {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.files = nil
	s.components = nil
	s.rootWriter = nil
	return errors.Join(errs...)
}

// Structured logging on the root logger.

// InfoWith returns a LogEvent for structured Info-level logging.
// Example: svc.InfoWith().Ctx(ctx).Str("order_id", id).Msg("order placed")
func (s *Service) InfoWith() LogEvent {
	return logEventBuilder(s, zerolog.InfoLevel)
}

// WarnWith returns a LogEvent for structured Warn-level logging.
func (s *Service) WarnWith() LogEvent {
	return logEventBuilder(s, zerolog.WarnLevel)
}

// ErrorWith returns a LogEvent for structured Error-level logging.
// Example: svc.ErrorWith().Ctx(ctx).Err(err).Msg("query failed")
func (s *Service) ErrorWith() LogEvent {
	return logEventBuilder(s, zerolog.ErrorLevel)
}

// DebugWith returns a LogEvent for structured Debug-level logging.
func (s *Service) DebugWith() LogEvent {
	return logEventBuilder(s, zerolog.DebugLevel)
}

// CriticalWith returns a LogEvent for the highest severity. Unlike a fatal
// log it does not exit the process.
func (s *Service) CriticalWith() LogEvent {
	return logEventBuilder(s, zerolog.FatalLevel)
}

// With returns a LogContext for creating a child logger with pre-populated
// fields.
func (s *Service) With() LogContext {
	if s == nil || !s.isInitialized.Load() {
		return &noopLogContext{}
	}
	logger := s.root.Load()
	if logger == nil {
		return &noopLogContext{}
	}
	return &logContext{
		context: logger.With(),
		service: s,
	}
}
