package siftlog

// Severity defines the logging severity level as an unsigned 32-bit integer.
// Levels form a fixed total order; comparison is solely by ordinal rank.
type Severity uint32

// Formatter turns a (level, message) pair into the textual entry handed to a
// Writer. Implementations must be pure: deterministic for a given
// configuration, no side effects, no mutation of inputs.
type Formatter interface {
	Format(level Severity, message string) (string, error)
}

// FormatterFunc adapts an ordinary function to the Formatter interface.
type FormatterFunc func(level Severity, message string) (string, error)

// Format calls f(level, message).
func (f FormatterFunc) Format(level Severity, message string) (string, error) {
	return f(level, message)
}

// Writer sends a formatted entry to some destination. It is the sole point
// where an entry leaves the logger; implementations must accept any string,
// including the empty string. A Writer shared between several Loggers is
// responsible for its own synchronization.
type Writer interface {
	Write(entry string) error
}

// WriterFunc adapts an ordinary function to the Writer interface.
type WriterFunc func(entry string) error

// Write calls w(entry).
func (w WriterFunc) Write(entry string) error {
	return w(entry)
}

// Logger gates log calls by severity and dispatches accepted ones through its
// Formatter to its Writer. The configuration triple (threshold, formatter,
// writer) is fixed at construction; the Logger itself holds no mutable state.
type Logger struct {
	threshold Severity  // Minimum severity to act upon; lower levels are ignored.
	formatter Formatter // Turns accepted (level, message) pairs into text.
	writer    Writer    // Destination for formatted entries.
}

// TextOption configures a TextFormatter during creation.
type TextOption func(*TextFormatter)

// ConsoleOption configures a ConsoleWriter during creation.
type ConsoleOption func(*ConsoleWriter)
