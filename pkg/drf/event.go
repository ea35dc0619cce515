package drf

import (
	"fmt"
	"strconv"
	"strings"
)

// EventKind discriminates the event variants.
type EventKind uint8

const (
	// EventDefault defers to the system-wide default event.
	EventDefault EventKind = iota

	// EventNever requests no sampling.
	EventNever

	// EventImmediate requests a single immediate sample.
	EventImmediate

	// EventPeriodic samples on a fixed period.
	EventPeriodic

	// EventClock samples on a clock event, after an optional delay.
	EventClock

	// EventState samples when a device state comparison fires.
	EventState
)

// ClockType selects which clock source a clock event listens to.
type ClockType uint8

const (
	ClockEither ClockType = iota
	ClockHardware
	ClockSoftware
)

// String returns the canonical clock-type letter.
func (c ClockType) String() string {
	switch c {
	case ClockHardware:
		return "H"
	case ClockSoftware:
		return "S"
	default:
		return "E"
	}
}

// StateOp is the comparison applied by a state event.
type StateOp uint8

const (
	StateEq StateOp = iota
	StateNEq
	StateGT
	StateLT
	StateLEq
	StateGEq
	StateAll
)

// String returns the canonical comparison token.
func (o StateOp) String() string {
	switch o {
	case StateNEq:
		return "!="
	case StateGT:
		return ">"
	case StateLT:
		return "<"
	case StateLEq:
		return "<="
	case StateGEq:
		return ">="
	case StateAll:
		return "*"
	default:
		return "="
	}
}

// stateOps is ordered longest-match-first so "<=", ">=", and "!=" win
// over their single-character prefixes.
var stateOps = []struct {
	text string
	op   StateOp
}{
	{"<=", StateLEq},
	{">=", StateGEq},
	{"!=", StateNEq},
	{">", StateGT},
	{"<", StateLT},
	{"=", StateEq},
	{"*", StateAll},
}

// Event describes when and how often a value should be sampled. Only the
// fields of the active Kind are meaningful; all others stay zero, so
// Event values compare with ==.
type Event struct {
	Kind EventKind

	// Period is the sampling period in microseconds (EventPeriodic).
	Period uint32

	// Immediate requests an extra sample up front (EventPeriodic).
	Immediate bool

	// SkipDups suppresses consecutive duplicate samples (EventPeriodic).
	SkipDups bool

	// ClockEvent is the 16-bit clock event number (EventClock).
	ClockEvent uint16

	// ClockType selects the clock source (EventClock).
	ClockType ClockType

	// Delay is the microseconds to wait after the trigger fires
	// (EventClock and EventState).
	Delay uint32

	// StateDevice, StateValue, and StateOp define the state trigger
	// (EventState).
	StateDevice uint32
	StateValue  uint16
	StateOp     StateOp
}

// Canonical returns the normalized text of the event, including the '@'
// prefix. The default event renders as the empty string. Periodic events
// always spell out their immediate flag, so canonical text is
// independent of the parse-time defaulting convention.
func (e Event) Canonical() string {
	switch e.Kind {
	case EventNever:
		return "@N"
	case EventImmediate:
		return "@I"
	case EventPeriodic:
		kind := "P"
		if e.SkipDups {
			kind = "Q"
		}
		flag := "FALSE"
		if e.Immediate {
			flag = "TRUE"
		}
		return fmt.Sprintf("@%s,%dU,%s", kind, e.Period, flag)
	case EventClock:
		return fmt.Sprintf("@E,%X,%s,%dU", e.ClockEvent, e.ClockType, e.Delay)
	case EventState:
		return fmt.Sprintf("@S,%d,%d,%dU,%s",
			e.StateDevice, e.StateValue, e.Delay, e.StateOp)
	default:
		return ""
	}
}

// parseEvent consumes an optional "@..." event suffix. Absence yields
// the default event; once the '@' is seen the event grammar is committed
// and any malformed component is a hard error.
func (s *scanner) parseEvent(opts ParseOptions) (Event, error) {
	if !s.accept('@') {
		return Event{Kind: EventDefault}, nil
	}
	return s.parseEventBody(opts)
}

func (s *scanner) parseEventBody(opts ParseOptions) (Event, error) {
	start := s.pos
	switch c := s.peek(); c {
	case 'n', 'N':
		s.pos++
		return Event{Kind: EventNever}, nil
	case 'i', 'I':
		s.pos++
		return Event{Kind: EventImmediate}, nil
	case 'p', 'P', 'q', 'Q':
		s.pos++
		return s.parsePeriodic(c == 'q' || c == 'Q', opts)
	case 'e', 'E':
		s.pos++
		return s.parseClock()
	case 's', 'S':
		s.pos++
		return s.parseState()
	default:
		tok := ""
		if !s.eof() {
			tok = string(c)
		}
		return Event{}, errAt(start, tok, ErrInvalidEvent)
	}
}

// parsePeriodic consumes the optional ",rate" and ",imm" suffixes of a
// periodic event. An absent rate means one second; an absent immediate
// flag takes the revision convention from opts.
func (s *scanner) parsePeriodic(skipDups bool, opts ParseOptions) (Event, error) {
	ev := Event{
		Kind:      EventPeriodic,
		Period:    defaultPeriod,
		Immediate: opts.PeriodicImmediate,
		SkipDups:  skipDups,
	}

	if !s.accept(',') {
		return ev, nil
	}
	period, err := s.timeFreq()
	if err != nil {
		return Event{}, err
	}
	ev.Period = period

	if !s.accept(',') {
		return ev, nil
	}
	imm, err := s.immediateFlag()
	if err != nil {
		return Event{}, err
	}
	ev.Immediate = imm
	return ev, nil
}

// immediateFlag consumes TRUE, T, FALSE, or F, case-insensitively.
func (s *scanner) immediateFlag() (bool, error) {
	start := s.pos
	word := s.takeWhile(isLetter)
	switch strings.ToUpper(word) {
	case "TRUE", "T":
		return true, nil
	case "FALSE", "F":
		return false, nil
	}
	return false, errAt(start, word, ErrInvalidEvent)
}

// parseClock consumes ",<hex event id>" plus optional ",<clock type>"
// and ",<delay>" suffixes. The event id is one to four hex digits; the
// clock type defaults to either and the delay to zero.
func (s *scanner) parseClock() (Event, error) {
	ev := Event{Kind: EventClock, ClockType: ClockEither}

	if !s.accept(',') {
		return Event{}, errAt(s.pos, "", ErrInvalidEvent)
	}
	idPos := s.pos
	digits := s.takeWhile(isHexDigit)
	if digits == "" || len(digits) > 4 {
		return Event{}, errAt(idPos, digits, ErrInvalidEvent)
	}
	id, err := strconv.ParseUint(digits, 16, 16)
	if err != nil {
		return Event{}, errAt(idPos, digits, ErrInvalidEvent)
	}
	ev.ClockEvent = uint16(id)

	if !s.accept(',') {
		return ev, nil
	}
	switch s.peek() {
	case 'e', 'E':
		ev.ClockType = ClockEither
		s.pos++
	case 'h', 'H':
		ev.ClockType = ClockHardware
		s.pos++
	case 's', 'S':
		ev.ClockType = ClockSoftware
		s.pos++
	default:
		// No type letter: this field is already the delay.
		delay, err := s.timeFreq()
		if err != nil {
			return Event{}, err
		}
		ev.Delay = delay
		return ev, nil
	}

	if !s.accept(',') {
		return ev, nil
	}
	delay, err := s.timeFreq()
	if err != nil {
		return Event{}, err
	}
	ev.Delay = delay
	return ev, nil
}

// parseState consumes the fixed ",device,value,delay,comparison" tail of
// a state event. Every field is required.
func (s *scanner) parseState() (Event, error) {
	ev := Event{Kind: EventState}

	if !s.accept(',') {
		return Event{}, errAt(s.pos, "", ErrInvalidEvent)
	}
	device, err := s.eventInt(32)
	if err != nil {
		return Event{}, err
	}
	ev.StateDevice = uint32(device)

	if !s.accept(',') {
		return Event{}, errAt(s.pos, "", ErrInvalidEvent)
	}
	value, err := s.eventInt(16)
	if err != nil {
		return Event{}, err
	}
	ev.StateValue = uint16(value)

	if !s.accept(',') {
		return Event{}, errAt(s.pos, "", ErrInvalidEvent)
	}
	delay, err := s.timeFreq()
	if err != nil {
		return Event{}, err
	}
	ev.Delay = delay

	if !s.accept(',') {
		return Event{}, errAt(s.pos, "", ErrInvalidEvent)
	}
	op, err := s.stateOp()
	if err != nil {
		return Event{}, err
	}
	ev.StateOp = op
	return ev, nil
}

// eventInt consumes a required decimal run fitting in bits bits.
func (s *scanner) eventInt(bits int) (uint64, error) {
	start := s.pos
	digits := s.takeWhile(isDigit)
	if digits == "" {
		return 0, errAt(start, "", ErrInvalidEvent)
	}
	v, err := strconv.ParseUint(digits, 10, bits)
	if err != nil {
		return 0, errAt(start, digits, ErrInvalidEvent)
	}
	return v, nil
}

func (s *scanner) stateOp() (StateOp, error) {
	rest := s.rest()
	for _, cand := range stateOps {
		if strings.HasPrefix(rest, cand.text) {
			s.pos += len(cand.text)
			return cand.op, nil
		}
	}
	return 0, errAt(s.pos, "", ErrInvalidEvent)
}

// ParseEvent parses an event fragment at the start of text and returns
// the event plus the unconsumed remainder, using the current grammar
// revision's defaults. The leading '@' is optional, so both "@P,1S" and
// "P,1S" parse; an empty input is an error.
func ParseEvent(text string) (Event, string, error) {
	return ParseEventWith(text, DefaultOptions())
}

// ParseEventWith is ParseEvent with explicit options.
func ParseEventWith(text string, opts ParseOptions) (Event, string, error) {
	sc := scanner{input: text}
	sc.accept('@')
	ev, err := sc.parseEventBody(opts)
	if err != nil {
		return Event{}, "", err
	}
	return ev, sc.rest(), nil
}
