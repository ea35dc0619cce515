// Package drf parses and canonically re-serializes Device Request Format
// (DRF) strings: compact textual addresses naming a data point in a
// real-time control system together with an access qualifier, an optional
// sub-field, an optional array or byte range, and an optional timing
// specification.
//
// A request such as "M:OUTTMP[0:3]@P,1S" decomposes into a Request value
// and re-encodes into a normalized canonical string. Parsing the canonical
// form always yields a structurally identical Request, and
// canonicalization is idempotent.
//
// The package offers:
//   - ParseRequest / ParseRequestWith for the full grammar
//   - ParseDevice, ParseRange, ParseEvent for isolated grammar fragments
//   - Request.Canonical for the normalized rendering
//
// All lookup tables are immutable; every function is safe for concurrent
// use and performs no I/O.
package drf
