package core

// Logger logs messages at the usual levels. Implementations may inspect args
// for context they know how to report (the Rollbar service attaches the
// acting session's user, for instance).
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
