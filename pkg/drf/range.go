package drf

import (
	"fmt"
	"math"
	"strconv"
)

// RangeKind discriminates the range variants.
type RangeKind uint8

const (
	// RangeArray selects an element index range.
	RangeArray RangeKind = iota

	// RangeFull selects the entire value.
	RangeFull

	// RangeRaw selects a byte offset/length range.
	RangeRaw
)

// Range selects a sub-section of a property's value. The zero Range is
// the collapsed default [0:0], meaning "use the default element".
//
// Array ranges use Start/End (End valid when HasEnd; an open-ended range
// has no end). Raw ranges use Offset/Length (Length valid when
// HasLength).
type Range struct {
	Kind RangeKind

	Start  uint16
	End    uint16
	HasEnd bool

	Offset    uint32
	Length    uint32
	HasLength bool
}

// FullRange selects the entire value.
func FullRange() Range { return Range{Kind: RangeFull} }

// ArrayRange selects elements start through end inclusive.
func ArrayRange(start, end uint16) Range {
	return Range{Kind: RangeArray, Start: start, End: end, HasEnd: true}
}

// OpenArrayRange selects elements from start to the end of the value.
func OpenArrayRange(start uint16) Range {
	return Range{Kind: RangeArray, Start: start}
}

// ByteRange selects length bytes starting at offset.
func ByteRange(offset, length uint32) Range {
	return Range{Kind: RangeRaw, Offset: offset, Length: length, HasLength: true}
}

// OpenByteRange selects bytes from offset to the end of the value.
func OpenByteRange(offset uint32) Range {
	return Range{Kind: RangeRaw, Offset: offset}
}

// defaultRange is the collapsed range used when no bracket suffix is
// present. It parses and renders identically to an absent range.
func defaultRange() Range { return ArrayRange(0, 0) }

// Canonical returns the normalized text of the range. The collapsed
// default renders as the empty string; a single-element range collapses
// to its one-index form.
func (r Range) Canonical() string {
	switch r.Kind {
	case RangeFull:
		return "[]"

	case RangeArray:
		switch {
		case r.HasEnd && r.Start == 0 && r.End == 0:
			return ""
		case r.HasEnd && r.Start == r.End:
			return fmt.Sprintf("[%d]", r.Start)
		case r.HasEnd:
			return fmt.Sprintf("[%d:%d]", r.Start, r.End)
		default:
			return fmt.Sprintf("[%d:]", r.Start)
		}

	default: // RangeRaw
		switch {
		case r.HasLength && r.Length == 1:
			return fmt.Sprintf("{%d}", r.Offset)
		case r.HasLength:
			return fmt.Sprintf("{%d:%d}", r.Offset, r.Length)
		default:
			return fmt.Sprintf("{%d:}", r.Offset)
		}
	}
}

// rangeInt consumes an optional digit run and parses it into bits bits.
// Out-of-range values are range errors here, unlike the saturating time
// values of the event grammar.
func (s *scanner) rangeInt(bits int) (uint64, bool, error) {
	start := s.pos
	digits := s.takeWhile(isDigit)
	if digits == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseUint(digits, 10, bits)
	if err != nil {
		return 0, false, errAt(start, digits, ErrInvalidRange)
	}
	return v, true, nil
}

// parseRange consumes an optional range suffix. Absence yields the
// collapsed default range.
func (s *scanner) parseRange() (Range, error) {
	switch s.peek() {
	case '[':
		return s.parseArrayRange()
	case '{':
		return s.parseByteRange()
	}
	return defaultRange(), nil
}

// parseArrayRange consumes "[...]": empty meaning the full value, a
// single index, or "start?:end?" with start <= end when both are given.
// "[0:]" is another spelling of the full value.
func (s *scanner) parseArrayRange() (Range, error) {
	s.pos++ // '['
	if s.accept(']') {
		return FullRange(), nil
	}

	start, hasStart, err := s.rangeInt(16)
	if err != nil {
		return Range{}, err
	}

	if hasStart && s.accept(']') {
		return ArrayRange(uint16(start), uint16(start)), nil
	}
	if !s.accept(':') {
		return Range{}, errAt(s.pos, "", ErrInvalidRange)
	}

	end, hasEnd, err := s.rangeInt(16)
	if err != nil {
		return Range{}, err
	}
	closePos := s.pos
	if !s.accept(']') {
		return Range{}, errAt(closePos, "", ErrInvalidRange)
	}

	switch {
	case !hasStart && !hasEnd:
		return FullRange(), nil
	case hasStart && !hasEnd && start == 0:
		return FullRange(), nil
	case hasStart && !hasEnd:
		return OpenArrayRange(uint16(start)), nil
	case !hasStart:
		return ArrayRange(0, uint16(end)), nil
	default:
		if start > end {
			return Range{}, errAt(closePos, "", ErrInvalidRange)
		}
		return ArrayRange(uint16(start), uint16(end)), nil
	}
}

// parseByteRange consumes "{...}", the byte-indexed analog of the array
// range. A single offset means one byte. A given length must be at least
// one, and offset+length must stay within 32 bits.
func (s *scanner) parseByteRange() (Range, error) {
	s.pos++ // '{'
	if s.accept('}') {
		return FullRange(), nil
	}

	offset, hasOffset, err := s.rangeInt(32)
	if err != nil {
		return Range{}, err
	}

	if hasOffset && s.accept('}') {
		return ByteRange(uint32(offset), 1), nil
	}
	if !s.accept(':') {
		return Range{}, errAt(s.pos, "", ErrInvalidRange)
	}

	length, hasLength, err := s.rangeInt(32)
	if err != nil {
		return Range{}, err
	}
	closePos := s.pos
	if !s.accept('}') {
		return Range{}, errAt(closePos, "", ErrInvalidRange)
	}

	switch {
	case !hasOffset && !hasLength:
		return FullRange(), nil
	case hasOffset && !hasLength && offset == 0:
		return FullRange(), nil
	case hasOffset && !hasLength:
		return OpenByteRange(uint32(offset)), nil
	case !hasOffset:
		if length == 0 {
			return Range{}, errAt(closePos, "", ErrInvalidRange)
		}
		return ByteRange(0, uint32(length)), nil
	default:
		if length == 0 {
			return Range{}, errAt(closePos, "", ErrInvalidRange)
		}
		if offset > math.MaxUint32-length {
			return Range{}, errAt(closePos, "", ErrInvalidRange)
		}
		return ByteRange(uint32(offset), uint32(length)), nil
	}
}

// ParseRange parses a range fragment at the start of text and returns
// the range plus the unconsumed remainder. An input without a leading
// bracket yields the collapsed default range and consumes nothing.
func ParseRange(text string) (Range, string, error) {
	sc := scanner{input: text}
	r, err := sc.parseRange()
	if err != nil {
		return Range{}, "", err
	}
	return r, sc.rest(), nil
}
