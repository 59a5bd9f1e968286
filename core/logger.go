package core

// Logger is any service the app can log through.
// Implementations may interpret args as extra context (maps, errors, the
// acting identity.Identity, ...).
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}
