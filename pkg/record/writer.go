package record

import (
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// Writer appends records to a CBOR record stream file. It is safe for
// concurrent use from multiple goroutines.
type Writer struct {
	file    *os.File
	encoder *cbor.Encoder
	mu      sync.Mutex
	closed  bool
}

// NewWriter creates a Writer for the given path. An existing file is
// appended to; a new file is created with permissions 0644.
func NewWriter(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &Writer{
		file:    f,
		encoder: NewEncoder(f),
	}, nil
}

// Append writes one record to the stream.
func (w *Writer) Append(rec Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return os.ErrClosed
	}
	return w.encoder.Encode(rec)
}

// Close closes the underlying file. It is safe to call Close multiple
// times; Append calls after Close fail with os.ErrClosed.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}
