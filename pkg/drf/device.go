package drf

// Device is the canonical identifier of a data point. Its text is always
// "<first-char>:<name>": whichever qualifier symbol appeared in the input
// is normalized to ':' and dropped from the stored name. Two devices are
// equal exactly when their canonical text is equal.
type Device string

// String returns the canonical device text.
func (d Device) String() string { return string(d) }

// qualifierProperty maps a qualifier symbol to the property it implies.
//
//	":"  Reading (also the canonical qualifier)
//	"?"  Reading
//	"_"  Setting
//	"|"  Basic Status
//	"&"  Basic Control
//	"@"  Analog Alarm
//	"$"  Digital Alarm
//	"~"  Description
func qualifierProperty(c byte) (Property, bool) {
	switch c {
	case ':', '?':
		return defaultProperty(Reading), true
	case '_':
		return defaultProperty(Setting), true
	case '|':
		return defaultProperty(Status), true
	case '&':
		return defaultProperty(Control), true
	case '@':
		return defaultProperty(Analog), true
	case '$':
		return defaultProperty(Digital), true
	case '~':
		return defaultProperty(Description), true
	}
	return Property{}, false
}

// parseDevice consumes the leading device token: either "0" qualifier
// digits (a device index) or letter qualifier device-chars (a name). The
// scan is maximal-munch and stops at the first byte outside the class,
// leaving the remainder for later stages.
func (s *scanner) parseDevice() (Device, Property, error) {
	start := s.pos
	first := s.peek()

	var bodyClass func(byte) bool
	switch {
	case first == '0':
		bodyClass = isDigit
	case isLetter(first):
		bodyClass = isDeviceChar
	default:
		return "", Property{}, errAt(start, "", ErrInvalidDevice)
	}
	s.pos++

	qual := s.peek()
	prop, ok := qualifierProperty(qual)
	if !ok {
		if qual == 0 {
			return "", Property{}, errAt(s.pos, "", ErrInvalidDevice)
		}
		return "", Property{}, errAt(s.pos, string(qual), ErrUnknownQualifier)
	}
	s.pos++

	body := s.takeWhile(bodyClass)
	if body == "" {
		return "", Property{}, errAt(s.pos, "", ErrInvalidDevice)
	}

	return Device(string(first) + ":" + body), prop, nil
}

// ParseDevice parses the leading device token of text and returns the
// device, the default property implied by its qualifier, and the
// unconsumed remainder.
func ParseDevice(text string) (Device, Property, string, error) {
	sc := scanner{input: text}
	dev, prop, err := sc.parseDevice()
	if err != nil {
		return "", Property{}, "", err
	}
	return dev, prop, sc.rest(), nil
}
