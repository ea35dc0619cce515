package drf

import (
	"math"
	"strconv"
)

// maxPeriod is the largest representable period or delay, in
// microseconds. Time arithmetic saturates here instead of failing, so a
// pathological rate request degrades to the nearest valid rate.
const maxPeriod = math.MaxUint32

// defaultPeriod is one second, used when a periodic event omits its rate.
const defaultPeriod uint32 = 1000000

// scaleRate converts a numeric value plus unit suffix into microseconds.
//
//	s  seconds        v * 1e6
//	m  milliseconds   v * 1e3 (also the no-suffix default)
//	u  microseconds   v
//	k  kilohertz      1e3 / v
//	h  hertz          1e6 / v
//
// Multiplication clips to maxPeriod on overflow. Division by zero clips
// to maxPeriod, and a nonzero frequency whose period would truncate to
// zero clips to one microsecond.
func scaleRate(v uint64, suffix byte) uint32 {
	switch suffix {
	case 's', 'S':
		return satMul(v, 1000000)
	case 'u', 'U':
		if v > maxPeriod {
			return maxPeriod
		}
		return uint32(v)
	case 'k', 'K':
		return satDiv(1000, v)
	case 'h', 'H':
		return satDiv(1000000, v)
	default: // 'm', 'M', or no suffix
		return satMul(v, 1000)
	}
}

func satMul(v, scale uint64) uint32 {
	if v > maxPeriod/scale {
		return maxPeriod
	}
	return uint32(v * scale)
}

func satDiv(num, v uint64) uint32 {
	if v == 0 {
		return maxPeriod
	}
	if r := num / v; r > 0 {
		return uint32(r)
	}
	return 1
}

// isRateSuffix reports whether c is a recognized time/frequency unit.
func isRateSuffix(c byte) bool {
	switch c {
	case 's', 'S', 'm', 'M', 'u', 'U', 'k', 'K', 'h', 'H':
		return true
	}
	return false
}

// timeFreq consumes a digit run plus optional unit suffix and returns
// the microsecond value. A digit run too large for uint64 clamps before
// scaling, since time overflow is never an error.
func (s *scanner) timeFreq() (uint32, error) {
	start := s.pos
	digits := s.takeWhile(isDigit)
	if digits == "" {
		return 0, errAt(start, "", ErrInvalidEvent)
	}
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		v = math.MaxUint64
	}

	var suffix byte
	if c := s.peek(); isRateSuffix(c) {
		suffix = c
		s.pos++
	}
	return scaleRate(v, suffix), nil
}
