// Package record turns DRF parse outcomes into durable, exportable
// records. A Record captures one input string together with its parsed
// breakdown (or its parse error) and a unique identifier, suitable for
// JSONL export or for streaming to a CBOR record file that downstream
// tooling can filter and analyze.
package record

import (
	"time"

	"github.com/google/uuid"

	"github.com/fermi-controls/drf-go/pkg/drf"
)

// Record is one parse outcome. CBOR encoding uses integer keys for
// compactness; JSON tags serve the JSONL and CSV export paths.
type Record struct {
	// ID uniquely identifies the record (UUID).
	ID string `json:"id" cbor:"1,keyasint"`

	// Time is when the record was produced.
	Time time.Time `json:"time" cbor:"2,keyasint"`

	// Input is the original request text.
	Input string `json:"input" cbor:"3,keyasint"`

	// Canonical is the normalized rendering. Empty when parsing failed.
	Canonical string `json:"canonical,omitempty" cbor:"4,keyasint,omitempty"`

	// Structured breakdown (populated on success).
	Device   string `json:"device,omitempty" cbor:"5,keyasint,omitempty"`
	Property string `json:"property,omitempty" cbor:"6,keyasint,omitempty"`
	Field    string `json:"field,omitempty" cbor:"7,keyasint,omitempty"`
	Range    string `json:"range,omitempty" cbor:"8,keyasint,omitempty"`
	Event    string `json:"event,omitempty" cbor:"9,keyasint,omitempty"`

	// Error is the parse diagnostic. Empty on success.
	Error string `json:"error,omitempty" cbor:"10,keyasint,omitempty"`
}

// New parses input and builds its record. Parse failures still produce a
// record, with Error set and the breakdown fields empty.
func New(input string, opts drf.ParseOptions) Record {
	rec := Record{
		ID:    uuid.NewString(),
		Time:  time.Now().UTC(),
		Input: input,
	}

	req, err := drf.ParseRequestWith(input, opts)
	if err != nil {
		rec.Error = err.Error()
		return rec
	}

	rec.Canonical = req.Canonical()
	rec.Device = req.Device.String()
	rec.Property = req.Property.Kind.String()
	rec.Field = req.Property.Field.String()
	rec.Range = req.Range.Canonical()
	rec.Event = req.Event.Canonical()
	return rec
}

// OK reports whether the record's input parsed successfully.
func (r Record) OK() bool { return r.Error == "" }
