package record

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// recEncMode is the CBOR encoder mode for record streams: deterministic
// encoding with RFC3339-nano timestamps.
var recEncMode cbor.EncMode

// recDecMode is the CBOR decoder mode for record streams.
var recDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	recEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create record CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	recDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create record CBOR decoder mode: %v", err))
	}
}

// Encode encodes a record to CBOR bytes.
func Encode(rec Record) ([]byte, error) {
	return recEncMode.Marshal(rec)
}

// Decode decodes CBOR bytes into a record.
func Decode(data []byte) (Record, error) {
	var rec Record
	if err := recDecMode.Unmarshal(data, &rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// NewEncoder creates a CBOR encoder for records that writes to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return recEncMode.NewEncoder(w)
}

// NewDecoder creates a CBOR decoder for records that reads from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return recDecMode.NewDecoder(r)
}
