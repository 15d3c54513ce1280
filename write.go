package siftlog

import (
	"errors"
	"io"
	"os"
	"sync"
)

// ConsoleWriter emits each entry followed by a line terminator to an
// io.Writer, standard output by default. Writes are serialized with a mutex
// so a single ConsoleWriter may be shared by several Loggers.
type ConsoleWriter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsoleWriter creates a ConsoleWriter configured with the provided
// options. Without options it writes to os.Stdout.
func NewConsoleWriter(opts ...ConsoleOption) *ConsoleWriter {
	w := &ConsoleWriter{out: os.Stdout}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WithOutput returns a ConsoleOption that redirects the writer to an
// arbitrary destination. A nil destination is ignored.
//
// Example:
//
//	w := NewConsoleWriter(WithOutput(os.Stderr))
func WithOutput(out io.Writer) ConsoleOption {
	return func(w *ConsoleWriter) {
		if out != nil {
			w.out = out
		}
	}
}

// Write emits the entry and a trailing newline as a single write.
func (w *ConsoleWriter) Write(entry string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := io.WriteString(w.out, entry+"\n")
	return err
}

// multiWriter fans one entry out to an ordered sequence of Writers.
type multiWriter struct {
	writers []Writer
}

// MultiWriter returns a Writer that hands each entry to every given writer in
// order. All writers are attempted even when one fails; the failures are
// joined into the returned error rather than aborting at the first.
func MultiWriter(writers ...Writer) Writer {
	ws := make([]Writer, len(writers))
	copy(ws, writers)
	return &multiWriter{writers: ws}
}

func (m *multiWriter) Write(entry string) error {
	var errs []error
	for _, w := range m.writers {
		if err := w.Write(entry); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NullWriter discards every entry. Useful for silencing a logger without
// touching its threshold.
type NullWriter struct{}

// NewNullWriter creates a new null writer.
func NewNullWriter() *NullWriter {
	return &NullWriter{}
}

// Write discards the entry and always succeeds.
func (*NullWriter) Write(string) error {
	return nil
}

// BufferWriter retains entries in memory, in write order. It is safe for
// concurrent use and handy for tests and capture scenarios.
type BufferWriter struct {
	mu      sync.Mutex
	entries []string
}

// NewBufferWriter creates an empty BufferWriter.
func NewBufferWriter() *BufferWriter {
	return &BufferWriter{}
}

// Write appends the entry to the buffer.
func (w *BufferWriter) Write(entry string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.entries = append(w.entries, entry)
	return nil
}

// Entries returns a copy of the buffered entries in write order.
func (w *BufferWriter) Entries() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, len(w.entries))
	copy(out, w.entries)
	return out
}

// Len returns the number of buffered entries.
func (w *BufferWriter) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.entries)
}

// Reset discards all buffered entries.
func (w *BufferWriter) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.entries = nil
}
