package logging

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Config holds the settings for the root sinks and every component sink.
// The zero value is not usable; start from DefaultConfig or ConfigFromEnv.
type Config struct {
	// Dir is the directory receiving app.log, error.log and the
	// per-component files. Created on Initialize if absent.
	Dir string `validate:"required"`

	// Level is the global minimum severity: one of DEBUG, INFO, WARNING,
	// ERROR, CRITICAL (case-insensitive; WARN and FATAL are accepted
	// aliases). Unrecognized values fall back to INFO.
	Level string

	// MaxSizeMB and MaxBackups define the rotation policy applied to every
	// file sink.
	MaxSizeMB  int `validate:"gte=1"`
	MaxBackups int `validate:"gte=0"`
}

// DefaultConfig returns the built-in defaults: ./logs, INFO, 5 MiB files
// with 5 retained backups.
func DefaultConfig() Config {
	return Config{
		Dir:        DefaultLogDir,
		Level:      "INFO",
		MaxSizeMB:  DefaultMaxSizeMB,
		MaxBackups: DefaultMaxBackups,
	}
}

// ConfigFromEnv builds a Config from LOG_DIR and LOG_LEVEL, falling back to
// the defaults for anything unset.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if dir := os.Getenv(EnvLogDir); dir != emptyString {
		cfg.Dir = dir
	}
	if level := os.Getenv(EnvLogLevel); level != emptyString {
		cfg.Level = level
	}
	return cfg
}

func (c Config) level() zerolog.Level {
	return parseLevel(c.Level)
}

// parseLevel maps a severity name to a zerolog level. Unrecognized names
// fall back to Info rather than failing, so a bad LOG_LEVEL never prevents
// the process from logging. CRITICAL maps to the fatal level, which this
// package emits via WithLevel and therefore never exits the process.
func parseLevel(name string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARNING", "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "CRITICAL", "FATAL":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

var validate *validator.Validate
var once sync.Once

func validateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%s: config is nil", errMsgConfigInvalid)
	}

	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%s: %w", errMsgConfigInvalid, err)
	}

	return nil
}
