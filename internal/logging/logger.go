// Package logging decouples the classifier from a concrete logging framework.
// Everything logs through Logger; production code gets a logrus-backed
// implementation and tests get MockLogger.
package logging

// Logger is the structured logger used across the application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// Fatal logs at fatal level and terminates the process.
	Fatal(msg string, fields ...Field)

	WithError(err error) Logger
	WithField(key string, value interface{}) Logger
	WithFields(fields ...Field) Logger
}

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

var defaultLogger Logger = NewLogrusAdapter("info", "text")

// GetLogger returns the process-wide logger. Commands replace it once the
// configuration has been read; library code should prefer an injected Logger.
func GetLogger() Logger {
	return defaultLogger
}

// SetLogger replaces the process-wide logger. A nil logger is ignored.
func SetLogger(logger Logger) {
	if logger != nil {
		defaultLogger = logger
	}
}
