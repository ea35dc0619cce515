package record

import (
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// Filter specifies criteria for filtering record streams. Zero-valued
// fields match everything for that criterion.
type Filter struct {
	// Device filters by exact canonical device text.
	Device string

	// Property filters by property keyword (READING, STATUS, ...).
	Property string

	// OnlyErrors keeps only records whose input failed to parse.
	OnlyErrors bool

	// OnlyOK keeps only records whose input parsed.
	OnlyOK bool
}

// matches reports whether rec satisfies every filter criterion.
func (f *Filter) matches(rec Record) bool {
	if f.Device != "" && rec.Device != f.Device {
		return false
	}
	if f.Property != "" && rec.Property != f.Property {
		return false
	}
	if f.OnlyErrors && rec.OK() {
		return false
	}
	if f.OnlyOK && !rec.OK() {
		return false
	}
	return true
}

// Reader streams records from a CBOR record file.
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
	filter  Filter
}

// NewReader creates a Reader over all records in the file at path.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader creates a Reader that yields only records matching
// the filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{
		file:    f,
		decoder: NewDecoder(f),
		filter:  filter,
	}, nil
}

// Next returns the next matching record, or io.EOF when the stream is
// exhausted.
func (r *Reader) Next() (Record, error) {
	for {
		var rec Record
		if err := r.decoder.Decode(&rec); err != nil {
			if err == io.EOF {
				return Record{}, io.EOF
			}
			return Record{}, err
		}
		if r.filter.matches(rec) {
			return rec, nil
		}
	}
}

// Close closes the underlying file.
func (r *Reader) Close() error { return r.file.Close() }
