package siftlog

import (
	"strings"

	"github.com/goccy/go-json"
)

// JSONFormatter renders each entry as a JSON object with exactly two fields,
// the level and the message, in that order. The level is serialized as its
// lowercase name (e.g., "info"), never as a numeric ordinal; downstream
// parsers can rely on both the field order and that representation.
type JSONFormatter struct {
	LevelField   string // JSON key for the level; defaults to "level".
	MessageField string // JSON key for the message; defaults to "message".
}

// NewJSONFormatter creates a JSONFormatter with the default field names.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		LevelField:   "level",
		MessageField: "message",
	}
}

// Format serializes the level and message into a single JSON object.
func (f *JSONFormatter) Format(level Severity, message string) (string, error) {
	levelKey, err := json.Marshal(f.LevelField)
	if err != nil {
		return "", err
	}
	messageKey, err := json.Marshal(f.MessageField)
	if err != nil {
		return "", err
	}
	levelVal, err := json.Marshal(level.String())
	if err != nil {
		return "", err
	}
	messageVal, err := json.Marshal(message)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(levelKey) + len(messageKey) + len(levelVal) + len(messageVal) + 5)
	b.WriteByte('{')
	b.Write(levelKey)
	b.WriteByte(':')
	b.Write(levelVal)
	b.WriteByte(',')
	b.Write(messageKey)
	b.WriteByte(':')
	b.Write(messageVal)
	b.WriteByte('}')
	return b.String(), nil
}

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
)

// levelColor returns the color code for a given severity level.
func levelColor(level Severity) string {
	switch level {
	case SeverityDebug:
		return colorGray
	case SeverityInfo:
		return colorGreen
	case SeverityWarn:
		return colorYellow
	case SeverityError, SeverityFatal:
		return colorRed
	default:
		return colorReset
	}
}

// TextFormatter renders each entry as "label message", optionally wrapping
// the label in an ANSI color for the level. Output is deterministic for a
// given configuration.
type TextFormatter struct {
	labels []string
	color  bool
}

// NewTextFormatter creates a TextFormatter configured with the provided options.
func NewTextFormatter(opts ...TextOption) *TextFormatter {
	f := &TextFormatter{
		labels: []string{"debug:", "info:", "warn:", "error:", "fatal:"},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithLabels returns a TextOption that sets custom labels for the severity
// levels. The provided slice must contain exactly five labels, one for each
// level (Debug, Info, Warn, Error, Fatal); other lengths are ignored.
//
// Example:
//
//	f := NewTextFormatter(WithLabels([]string{"DBG", "INF", "WRN", "ERR", "FTL"}))
func WithLabels(labels []string) TextOption {
	return func(f *TextFormatter) {
		if len(labels) == 5 {
			f.labels = labels
		}
	}
}

// WithColor returns a TextOption that enables or disables ANSI coloring of
// the level label.
func WithColor(enabled bool) TextOption {
	return func(f *TextFormatter) {
		f.color = enabled
	}
}

// Format renders the entry as the level's label followed by the message.
func (f *TextFormatter) Format(level Severity, message string) (string, error) {
	label := level.String()
	if int(level) < len(f.labels) {
		label = f.labels[level]
	}

	var b strings.Builder
	b.Grow(len(label) + len(message) + 12)
	if f.color {
		b.WriteString(levelColor(level))
		b.WriteString(label)
		b.WriteString(colorReset)
	} else {
		b.WriteString(label)
	}
	b.WriteByte(' ')
	b.WriteString(message)
	return b.String(), nil
}
