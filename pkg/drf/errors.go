package drf

import (
	"errors"
	"fmt"
)

// Parse errors. Every failure is terminal for the current parse attempt;
// nothing is retried internally.
var (
	ErrInvalidDevice    = errors.New("malformed device")
	ErrUnknownQualifier = errors.New("unknown qualifier")
	ErrUnknownName      = errors.New("unknown property or field name")
	ErrPropertyMismatch = errors.New("mismatched properties")
	ErrNoFields         = errors.New("property has no fields")
	ErrInvalidRange     = errors.New("bad range")
	ErrInvalidEvent     = errors.New("bad event")
	ErrTrailingText     = errors.New("unparsed trailing text")
)

// Error reports a parse failure together with the byte offset of the
// offending token in the original input. It wraps one of the package
// sentinel errors, so callers can classify failures with errors.Is.
type Error struct {
	// Pos is the byte offset where the failure was detected. DRF is an
	// ASCII grammar, so this is also the character position.
	Pos int

	// Token is the offending token, when one was recognized.
	Token string

	// Err is the sentinel describing the failure class.
	Err error
}

// Error returns a diagnostic suitable for user-facing messages.
func (e *Error) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%v at offset %d: %q", e.Err, e.Pos, e.Token)
	}
	return fmt.Sprintf("%v at offset %d", e.Err, e.Pos)
}

// Unwrap returns the sentinel error.
func (e *Error) Unwrap() error { return e.Err }

func errAt(pos int, token string, sentinel error) error {
	return &Error{Pos: pos, Token: token, Err: sentinel}
}
