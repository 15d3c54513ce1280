package siftlog

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleWriter(t *testing.T) {
	buf := new(bytes.Buffer)
	w := NewConsoleWriter(WithOutput(buf))

	require.NoError(t, w.Write("first"))
	require.NoError(t, w.Write(""))
	require.NoError(t, w.Write("second"))

	assert.Equal(t, "first\n\nsecond\n", buf.String())
}

func TestConsoleWriterNilOutputIgnored(t *testing.T) {
	w := NewConsoleWriter(WithOutput(nil))
	// Option was ignored, the writer still targets stdout.
	assert.NotNil(t, w.out)
}

// TestConsoleWriterSharedAcrossLoggers checks that one ConsoleWriter used by
// several loggers concurrently emits whole lines.
func TestConsoleWriterSharedAcrossLoggers(t *testing.T) {
	buf := new(bytes.Buffer)
	w := NewConsoleWriter(WithOutput(buf))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		logger := New(SeverityDebug, NewTextFormatter(), w)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				_ = logger.Info("shared sink entry")
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 100)
	for _, line := range lines {
		assert.Equal(t, "info: shared sink entry", line)
	}
}

func TestMultiWriterFanOut(t *testing.T) {
	a := NewBufferWriter()
	b := NewBufferWriter()
	w := MultiWriter(a, b)

	require.NoError(t, w.Write("fan out"))
	assert.Equal(t, []string{"fan out"}, a.Entries())
	assert.Equal(t, []string{"fan out"}, b.Entries())
}

// TestMultiWriterCollectsErrors verifies that every writer is attempted and
// all failures surface in the joined error.
func TestMultiWriterCollectsErrors(t *testing.T) {
	errFirst := errors.New("first sink down")
	errSecond := errors.New("second sink down")
	ok := NewBufferWriter()
	w := MultiWriter(
		WriterFunc(func(string) error { return errFirst }),
		ok,
		WriterFunc(func(string) error { return errSecond }),
	)

	err := w.Write("entry")
	require.Error(t, err)
	assert.ErrorIs(t, err, errFirst)
	assert.ErrorIs(t, err, errSecond)
	assert.Equal(t, []string{"entry"}, ok.Entries(), "healthy writer must still receive the entry")
}

func TestMultiWriterEmpty(t *testing.T) {
	w := MultiWriter()
	require.NoError(t, w.Write("nowhere"))
}

func TestNullWriter(t *testing.T) {
	w := NewNullWriter()
	require.NoError(t, w.Write("dropped"))
	require.NoError(t, w.Write(""))
}

func TestBufferWriter(t *testing.T) {
	w := NewBufferWriter()
	assert.Equal(t, 0, w.Len())

	require.NoError(t, w.Write("one"))
	require.NoError(t, w.Write("two"))
	assert.Equal(t, 2, w.Len())
	assert.Equal(t, []string{"one", "two"}, w.Entries())

	// Entries returns a copy; mutating it must not affect the buffer.
	entries := w.Entries()
	entries[0] = "mutated"
	assert.Equal(t, []string{"one", "two"}, w.Entries())

	w.Reset()
	assert.Equal(t, 0, w.Len())
	assert.Empty(t, w.Entries())
}
