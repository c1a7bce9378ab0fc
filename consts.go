package logging

const (
	// DefaultComponent is the component name used when Component is called
	// with an empty name.
	DefaultComponent = "app"

	// ActorUnknown is the sentinel actor identifier stamped on records
	// emitted outside any WithActor scope.
	ActorUnknown = "-"

	// EnvLogDir and EnvLogLevel are the environment variables consulted by
	// ConfigFromEnv.
	EnvLogDir   = "LOG_DIR"
	EnvLogLevel = "LOG_LEVEL"

	// DefaultLogDir is used when EnvLogDir is unset.
	DefaultLogDir = "logs"

	// Rotation policy shared by all file sinks.
	DefaultMaxSizeMB  = 5
	DefaultMaxBackups = 5

	emptyString = ""
)

const (
	appLogName   = "app.log"
	errorLogName = "error.log"
	logFileExt   = ".log"

	rootLoggerName  = "root"
	loggerFieldName = "logger"
	actorFieldName  = "user"

	timestampLayout = "2006-01-02 15:04:05"
)

const (
	errMsgNilService     = "logging service is nil"
	errMsgNotInitialized = "logging service has not been initialized"
	errMsgConfigInvalid  = "logging configuration is invalid"
)
