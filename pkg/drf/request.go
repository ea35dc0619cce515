package drf

import "strings"

// ParseOptions selects grammar details that changed between DRF
// revisions.
type ParseOptions struct {
	// PeriodicImmediate is the immediate-flag value assumed when a
	// periodic event omits its ",imm" suffix. Later grammar revisions
	// assume true, earlier ones false. Canonical output always spells
	// the flag out, so it round-trips under either convention.
	PeriodicImmediate bool
}

// DefaultOptions returns the options for the current grammar revision.
func DefaultOptions() ParseOptions {
	return ParseOptions{PeriodicImmediate: true}
}

// Request is a fully decoded DRF request. It is immutable once parsed;
// two requests are structurally equal exactly when they compare ==.
type Request struct {
	Device   Device
	Property Property
	Range    Range
	Event    Event
}

// ParseRequest decodes a complete DRF string using the current grammar
// revision's defaults.
func ParseRequest(text string) (Request, error) {
	return ParseRequestWith(text, DefaultOptions())
}

// ParseRequestWith decodes a complete DRF string. The stages run in
// strict sequence: device and qualifier, an optional property/field
// name, an optional range, an optional field name, and an optional
// event. Each absent stage falls back to its default; any stage failure
// aborts the whole parse, as does unconsumed trailing text.
func ParseRequestWith(text string, opts ParseOptions) (Request, error) {
	sc := scanner{input: text}

	dev, prop, err := sc.parseDevice()
	if err != nil {
		return Request{}, err
	}
	if err := sc.resolveName(&prop); err != nil {
		return Request{}, err
	}
	rng, err := sc.parseRange()
	if err != nil {
		return Request{}, err
	}
	if err := sc.resolveName(&prop); err != nil {
		return Request{}, err
	}
	ev, err := sc.parseEvent(opts)
	if err != nil {
		return Request{}, err
	}
	if !sc.eof() {
		return Request{}, errAt(sc.pos, sc.rest(), ErrTrailingText)
	}

	return Request{Device: dev, Property: prop, Range: rng, Event: ev}, nil
}

// Canonical returns the normalized text of the request:
//
//	<device>.<PROPERTY><range>.<FIELD><event>
//
// The property keyword is always present; the range, field, and event
// fragments render as empty strings in their default cases. Re-parsing
// the canonical text yields a structurally identical request, and
// canonicalization is idempotent.
func (r Request) Canonical() string {
	var sb strings.Builder
	sb.WriteString(string(r.Device))
	sb.WriteByte('.')
	sb.WriteString(r.Property.Kind.String())
	sb.WriteString(r.Range.Canonical())
	if r.Property.Field != FieldNone {
		sb.WriteByte('.')
		sb.WriteString(r.Property.Field.String())
	}
	sb.WriteString(r.Event.Canonical())
	return sb.String()
}
