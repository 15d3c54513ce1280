package siftlog

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Predefined severity levels, ordered from least to most severe.
const (
	// SeverityDebug represents debug-level messages for development diagnostics
	SeverityDebug Severity = iota

	// SeverityInfo indicates normal operational messages for tracking progress
	SeverityInfo

	// SeverityWarn signifies potential issues that don't disrupt core functionality
	SeverityWarn

	// SeverityError denotes failures in specific operations or components
	SeverityError

	// SeverityFatal represents critical errors leading to application termination
	SeverityFatal

	// SeverityDisabled is a special level that disables all logging when used
	// as a threshold; log calls at or above it are never dispatched.
	SeverityDisabled
)

// severityNames holds the canonical lowercase name for each level.
var severityNames = [...]string{"debug", "info", "warn", "error", "fatal"}

// String returns the canonical lowercase name of the level, or "disabled" for
// SeverityDisabled and anything beyond the closed set.
func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "disabled"
}

// ParseSeverity converts a textual level name into a Severity. Matching is
// case-insensitive and tolerates the common aliases "warning", "off" and
// "none". An unrecognized name yields an error and SeverityDisabled.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return SeverityDebug, nil
	case "info":
		return SeverityInfo, nil
	case "warn", "warning":
		return SeverityWarn, nil
	case "error":
		return SeverityError, nil
	case "fatal":
		return SeverityFatal, nil
	case "disabled", "off", "none":
		return SeverityDisabled, nil
	}
	return SeverityDisabled, fmt.Errorf("siftlog: invalid severity %q", s)
}

// Default is a pre-configured Logger instance intended for general use.
// It logs at SeverityInfo and above to standard output using the text
// formatter, with colored level labels when stdout is a terminal.
var Default = New(
	SeverityInfo,
	NewTextFormatter(WithColor(isatty.IsTerminal(os.Stdout.Fd()))),
	NewConsoleWriter(),
)
