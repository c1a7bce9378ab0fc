package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var nameSanitizer = strings.NewReplacer("/", "_", "\\", "_", ".", "_")

// sanitizeName maps a raw component name to a safe log file stem by
// replacing path separators and the extension dot with underscores. The
// transform is deterministic but lossy: distinct names may resolve to the
// same file and then share it.
func sanitizeName(name string) string {
	return nameSanitizer.Replace(name)
}

// newRotatingWriter builds the rotating file sink for path. The destination
// is probed immediately so that an unwritable path fails initialization
// instead of silently dropping records later.
func newRotatingWriter(path string, cfg Config) (*lumberjack.Logger, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close log file probe %s: %w", path, err)
	}

	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}, nil
}

// newFormatWriter wraps out with the fixed line format shared by the console
// and every file sink:
//
//	2006-01-02 15:04:05 LEVEL logger user=actor message extra=fields
func newFormatWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: timestampLayout,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			loggerFieldName,
			actorFieldName,
			zerolog.MessageFieldName,
		},
		FieldsExclude:         []string{loggerFieldName, actorFieldName},
		FormatLevel:           formatSeverity,
		FormatPartValueByName: formatNamedPart,
	}
}

// formatSeverity renders zerolog's level tokens under their conventional
// severity names (warn -> WARNING, fatal -> CRITICAL).
func formatSeverity(i interface{}) string {
	name, ok := i.(string)
	if !ok {
		return "????"
	}
	switch name {
	case zerolog.LevelWarnValue:
		return "WARNING"
	case zerolog.LevelFatalValue:
		return "CRITICAL"
	default:
		return strings.ToUpper(name)
	}
}

func formatNamedPart(i interface{}, part string) string {
	value, _ := i.(string)
	switch part {
	case actorFieldName:
		if value == emptyString {
			value = ActorUnknown
		}
		return actorFieldName + "=" + value
	default:
		return value
	}
}

// newLevelFloorWriter admits only records at or above level into w,
// independently of the owning logger's threshold.
func newLevelFloorWriter(w io.Writer, level zerolog.Level) zerolog.LevelWriter {
	return &zerolog.FilteredLevelWriter{
		Writer: zerolog.LevelWriterAdapter{Writer: w},
		Level:  level,
	}
}
