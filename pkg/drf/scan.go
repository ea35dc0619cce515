package drf

// scanner walks an input string one byte at a time. The grammar is pure
// ASCII, so byte offsets double as character positions. Each parsing
// method either consumes the text it recognizes or fails without
// advancing past the failure point.
type scanner struct {
	input string
	pos   int
}

func (s *scanner) eof() bool { return s.pos >= len(s.input) }

// peek returns the byte at the cursor, or 0 at end of input.
func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.input[s.pos]
}

// accept consumes the byte at the cursor if it equals c.
func (s *scanner) accept(c byte) bool {
	if !s.eof() && s.input[s.pos] == c {
		s.pos++
		return true
	}
	return false
}

// takeWhile consumes the maximal run of bytes satisfying pred and
// returns it. The run may be empty.
func (s *scanner) takeWhile(pred func(byte) bool) string {
	start := s.pos
	for !s.eof() && pred(s.input[s.pos]) {
		s.pos++
	}
	return s.input[start:s.pos]
}

// rest returns the unconsumed remainder of the input.
func (s *scanner) rest() string { return s.input[s.pos:] }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool { return isLetter(c) || isDigit(c) }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isDeviceChar reports whether c may appear in a device name body.
func isDeviceChar(c byte) bool {
	switch c {
	case '_', '-', ':', '<', '>', ';':
		return true
	}
	return isAlnum(c)
}

// isNameChar reports whether c may appear in a property or field name.
func isNameChar(c byte) bool { return isLetter(c) || c == '_' }
