package siftlog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrInfo(t *testing.T) {
	w := NewBufferWriter()
	log := NewLogr(New(SeverityDebug, NewTextFormatter(), w))

	log.Info("starting", "port", 8080)
	assert.Equal(t, []string{"info: starting port=8080"}, w.Entries())
}

func TestLogrVerbosityMapsToDebug(t *testing.T) {
	w := NewBufferWriter()
	log := NewLogr(New(SeverityDebug, NewTextFormatter(), w))

	log.V(1).Info("details")
	log.V(3).Info("more details")
	assert.Equal(t, []string{"debug: details", "debug: more details"}, w.Entries())
}

// TestLogrRespectsThreshold verifies that the wrapped Logger's threshold
// still filters verbose logr calls.
func TestLogrRespectsThreshold(t *testing.T) {
	w := NewBufferWriter()
	log := NewLogr(New(SeverityInfo, NewTextFormatter(), w))

	log.V(1).Info("suppressed")
	assert.Equal(t, 0, w.Len())

	log.Info("kept")
	assert.Equal(t, []string{"info: kept"}, w.Entries())
}

func TestLogrError(t *testing.T) {
	w := NewBufferWriter()
	log := NewLogr(New(SeverityInfo, NewTextFormatter(), w))

	log.Error(errors.New("disk full"), "flush failed", "path", "/tmp/x")
	entries := w.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "error: flush failed path=/tmp/x err=disk full", entries[0])
}

func TestLogrWithNameAndValues(t *testing.T) {
	w := NewBufferWriter()
	log := NewLogr(New(SeverityInfo, NewTextFormatter(), w))

	log.WithName("api").WithName("auth").WithValues("user", "alice").Info("login", "attempt", 2)
	entries := w.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "info: api/auth: login user=alice attempt=2", entries[0])
}
