package logging

import (
	"io"
	"log"
	"os"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// Logger filters log messages by level before handing them to the
// standard library logger
type Logger struct {
	level  int
	logger *log.Logger
}

// CreateLogger returns a Logger which discards messages below the given
// level. A nil output writes to stderr.
func CreateLogger(level int, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{level: level, logger: log.New(out, "", log.LstdFlags)}
}

// Logf logs a formatted message at the given level
func (l *Logger) Logf(level int, format string, args ...interface{}) {
	if l == nil || level < l.level {
		return
	}
	l.logger.Printf("%s: "+format, append([]interface{}{LogLevelToString(level)}, args...)...)
}
