// Package logging defines the narrow logging contract that tested types
// depend on, plus the doubles and adapters the harness needs: a recording
// logger that captures tagged messages in call order, a null logger, and a
// bridge to go.uber.org/zap for production use.
//
// The harness never substitutes a global logger. Tested types receive their
// logger through the Loggable seam (or an exported field of type Logger),
// and the harness injects a Recorder through that same seam.
package logging

// Logger is the logging capability a tested type is expected to consume.
type Logger interface {
	Error(msg string)
	Warn(msg string)
	Info(msg string)
}

// Loggable is the injection seam for types that accept a logger after
// construction. The harness prefers this over direct field injection.
type Loggable interface {
	SetLogger(Logger)
}

// TagError returns msg tagged with the error severity prefix.
func TagError(msg string) string { return "E: " + msg }

// TagWarn returns msg tagged with the warning severity prefix.
func TagWarn(msg string) string { return "W: " + msg }

// TagInfo returns msg tagged with the info severity prefix.
func TagInfo(msg string) string { return "I: " + msg }

type nullLogger struct{}

func (nullLogger) Error(string) {}
func (nullLogger) Warn(string)  {}
func (nullLogger) Info(string)  {}

// NullLogger returns a Logger that discards everything.
func NullLogger() Logger { return nullLogger{} }
