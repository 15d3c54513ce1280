// Package siftlog provides a minimalist logging library built from three
// small collaborating pieces: an ordered severity scale, a pluggable
// Formatter, and a pluggable Writer.
//
// Key features:
//   - Five severity levels (Debug, Info, Warn, Error, Fatal) with a strict total order
//   - Threshold gating with short-circuit: rejected calls touch neither collaborator
//   - Substitutable Formatter and Writer capabilities (interfaces plus func adapters)
//   - JSON and text reference formatters, console/multi/null/buffer reference writers
//   - Package-level default logger and a go-logr adapter for interop
package siftlog

import "fmt"

// New creates a Logger from its three configuration values: the minimum
// severity it acts upon, the Formatter that renders accepted calls, and the
// Writer that emits them. The configuration is fixed for the Logger's
// lifetime; there are no setters.
//
// Parameters:
//   - threshold: the minimum Severity to be logged; lower levels are ignored.
//     SeverityDisabled silences the logger entirely.
//   - formatter: renders each accepted (level, message) pair (e.g., NewJSONFormatter()).
//   - writer: receives each rendered entry (e.g., NewConsoleWriter()).
//
// Panics:
//   - if formatter or writer is nil, or threshold is beyond SeverityDisabled.
func New(threshold Severity, formatter Formatter, writer Writer) *Logger {
	if formatter == nil || writer == nil {
		panic("siftlog: nil formatter or writer")
	}
	if threshold > SeverityDisabled {
		panic("siftlog: invalid severity threshold")
	}
	return &Logger{
		threshold: threshold,
		formatter: formatter,
		writer:    writer,
	}
}

// Threshold returns the minimum severity level this Logger acts upon.
func (l *Logger) Threshold() Severity {
	return l.threshold
}

// Enabled reports whether a call at the given level would be dispatched.
func (l *Logger) Enabled(level Severity) bool {
	return level >= l.threshold && level < SeverityDisabled
}

// Log is the core function: it compares the level against the Logger's
// threshold and, only when the call is accepted, formats the message and
// hands the result to the Writer, synchronously on the calling goroutine.
// A rejected call does nothing at all — the Formatter is never invoked.
//
// Errors returned by the Formatter or Writer propagate unmodified; the
// Logger performs no catch, retry, or wrapping of its own.
func (l *Logger) Log(level Severity, message string) error {
	if !l.Enabled(level) {
		return nil
	}
	entry, err := l.formatter.Format(level, message)
	if err != nil {
		return err
	}
	return l.writer.Write(entry)
}

// Debug logs a message at SeverityDebug.
func (l *Logger) Debug(message string) error {
	return l.Log(SeverityDebug, message)
}

// Debugf logs a formatted message at SeverityDebug.
func (l *Logger) Debugf(format string, args ...interface{}) error {
	return l.Log(SeverityDebug, fmt.Sprintf(format, args...))
}

// Info logs a message at SeverityInfo.
func (l *Logger) Info(message string) error {
	return l.Log(SeverityInfo, message)
}

// Infof logs a formatted message at SeverityInfo.
func (l *Logger) Infof(format string, args ...interface{}) error {
	return l.Log(SeverityInfo, fmt.Sprintf(format, args...))
}

// Warn logs a message at SeverityWarn.
func (l *Logger) Warn(message string) error {
	return l.Log(SeverityWarn, message)
}

// Warnf logs a formatted message at SeverityWarn.
func (l *Logger) Warnf(format string, args ...interface{}) error {
	return l.Log(SeverityWarn, fmt.Sprintf(format, args...))
}

// Error logs a message at SeverityError.
func (l *Logger) Error(message string) error {
	return l.Log(SeverityError, message)
}

// Errorf logs a formatted message at SeverityError.
func (l *Logger) Errorf(format string, args ...interface{}) error {
	return l.Log(SeverityError, fmt.Sprintf(format, args...))
}

// Fatal logs a message at SeverityFatal and then panics. The panic message
// carries the fatal label and the original message, plus any error raised
// while logging it.
func (l *Logger) Fatal(message string) {
	err := l.Log(SeverityFatal, message)
	pm := severityNames[SeverityFatal] + ": " + message
	if err != nil {
		pm += ": " + err.Error()
	}
	panic(pm)
}

// Fatalf logs a formatted message at SeverityFatal and then panics.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.Fatal(fmt.Sprintf(format, args...))
}

// Log dispatches a message through the package-level Default logger.
func Log(level Severity, message string) error {
	return Default.Log(level, message)
}

// Debug logs a debug-level message using the package-level Default logger.
func Debug(message string) error {
	return Default.Debug(message)
}

// Debugf logs a formatted debug-level message using the package-level Default logger.
func Debugf(format string, args ...interface{}) error {
	return Default.Debugf(format, args...)
}

// Info logs an informational message using the package-level Default logger.
func Info(message string) error {
	return Default.Info(message)
}

// Infof logs a formatted informational message using the package-level Default logger.
func Infof(format string, args ...interface{}) error {
	return Default.Infof(format, args...)
}

// Warn logs a warning message using the package-level Default logger.
func Warn(message string) error {
	return Default.Warn(message)
}

// Warnf logs a formatted warning message using the package-level Default logger.
func Warnf(format string, args ...interface{}) error {
	return Default.Warnf(format, args...)
}

// Error logs an error message using the package-level Default logger.
func Error(message string) error {
	return Default.Error(message)
}

// Errorf logs a formatted error message using the package-level Default logger.
func Errorf(format string, args ...interface{}) error {
	return Default.Errorf(format, args...)
}

// Fatal logs a fatal message using the package-level Default logger and then panics.
func Fatal(message string) {
	Default.Fatal(message)
}

// Fatalf logs a formatted fatal message using the package-level Default logger and then panics.
func Fatalf(format string, args ...interface{}) {
	Default.Fatalf(format, args...)
}
