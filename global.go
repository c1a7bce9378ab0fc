package logging

// std is the process-wide service behind the package-level entry points.
var std = NewService()

// Init initializes the process-wide logging service from the environment.
// Call it once at startup; repeated calls are no-ops.
func Init() error {
	return std.Initialize()
}

// Component returns a component logger from the process-wide service.
func Component(name string) (Logger, error) {
	return std.Component(name)
}

// Default returns the process-wide service, e.g. for root-level logging or
// shutdown via Close.
func Default() *Service {
	return std
}
