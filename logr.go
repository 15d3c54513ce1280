package siftlog

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
)

// NewLogr wraps a Logger in a logr.Logger so it can be handed to libraries
// that speak the go-logr interface. Verbosity 0 maps to SeverityInfo, any
// higher verbosity to SeverityDebug, and Error calls to SeverityError; the
// Logger's own threshold still decides what gets emitted.
func NewLogr(l *Logger) logr.Logger {
	return logr.New(&logrSink{logger: l})
}

type logrSink struct {
	logger *Logger
	name   string
	values []interface{}
}

var _ logr.LogSink = (*logrSink)(nil)

func severityForV(v int) Severity {
	if v > 0 {
		return SeverityDebug
	}
	return SeverityInfo
}

func (s *logrSink) Init(logr.RuntimeInfo) {}

func (s *logrSink) Enabled(v int) bool {
	return s.logger.Enabled(severityForV(v))
}

func (s *logrSink) Info(v int, msg string, keysAndValues ...interface{}) {
	_ = s.logger.Log(severityForV(v), s.render(msg, keysAndValues))
}

func (s *logrSink) Error(err error, msg string, keysAndValues ...interface{}) {
	if err != nil {
		keysAndValues = append(keysAndValues, "err", err)
	}
	_ = s.logger.Log(SeverityError, s.render(msg, keysAndValues))
}

func (s *logrSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	ns := *s
	ns.values = append(append([]interface{}{}, s.values...), keysAndValues...)
	return &ns
}

func (s *logrSink) WithName(name string) logr.LogSink {
	ns := *s
	if ns.name != "" {
		ns.name += "/"
	}
	ns.name += name
	return &ns
}

// render flattens the sink's name and accumulated key/value pairs into the
// message, keeping pair order stable.
func (s *logrSink) render(msg string, keysAndValues []interface{}) string {
	var b strings.Builder
	if s.name != "" {
		b.WriteString(s.name)
		b.WriteString(": ")
	}
	b.WriteString(msg)
	all := append(append([]interface{}{}, s.values...), keysAndValues...)
	for i := 0; i+1 < len(all); i += 2 {
		b.WriteByte(' ')
		fmt.Fprintf(&b, "%v=%v", all[i], all[i+1])
	}
	return b.String()
}
