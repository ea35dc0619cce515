package drf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	req, err := ParseRequest("M:OUTTMP")
	require.NoError(t, err)
	assert.Equal(t, Request{
		Device:   "M:OUTTMP",
		Property: Property{Kind: Reading, Field: FieldScaled},
		Range:    ArrayRange(0, 0),
		Event:    Event{Kind: EventDefault},
	}, req)

	req, err = ParseRequest("M:OUTTMP[0:3]@P,1S")
	require.NoError(t, err)
	assert.Equal(t, Request{
		Device:   "M:OUTTMP",
		Property: Property{Kind: Reading, Field: FieldScaled},
		Range:    ArrayRange(0, 3),
		Event:    Event{Kind: EventPeriodic, Period: 1000000, Immediate: true},
	}, req)

	req, err = ParseRequest("M|OUTTMP[]@e,02")
	require.NoError(t, err)
	assert.Equal(t, Request{
		Device:   "M:OUTTMP",
		Property: Property{Kind: Status, Field: FieldAll},
		Range:    FullRange(),
		Event:    Event{Kind: EventClock, ClockEvent: 2, ClockType: ClockEither},
	}, req)

	req, err = ParseRequest("M&OUTTMP")
	require.NoError(t, err)
	assert.Equal(t, Property{Kind: Control}, req.Property)

	// A field name may appear before the range, a property name may be
	// overridden, and both suffix positions resolve against the current
	// property state.
	req, err = ParseRequest("M:OUTTMP.RAW[0:3]")
	require.NoError(t, err)
	assert.Equal(t, Property{Kind: Reading, Field: FieldRaw}, req.Property)

	req, err = ParseRequest("M:OUTTMP.SETTING[1].VOLTS")
	require.NoError(t, err)
	assert.Equal(t, Property{Kind: Setting, Field: FieldPrimary}, req.Property)
	assert.Equal(t, ArrayRange(1, 1), req.Range)
}

func TestParseRequestCanonical(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"M:OUTTMP", "M:OUTTMP.READING.SCALED"},
		{"M?OUTTMP", "M:OUTTMP.READING.SCALED"},
		{"M:OUTTMP[0:3]", "M:OUTTMP.READING[0:3].SCALED"},
		{"M|OUTTMP[]", "M:OUTTMP.STATUS[].ALL"},
		{"M|OUTTMP[]@e,02", "M:OUTTMP.STATUS[].ALL@E,2,E,0U"},
		{"M_OUTTMP", "M:OUTTMP.SETTING.SCALED"},
		{"M&OUTTMP", "M:OUTTMP.CONTROL"},
		{"M~OUTTMP", "M:OUTTMP.DESCRIPTION"},
		{"M@OUTTMP.MINIMUM", "M:OUTTMP.ANALOG.MIN"},
		{"M$OUTTMP.MASK{2}", "M:OUTTMP.DIGITAL{2}.MASK"},
		{"M:OUTTMP.INDEX", "M:OUTTMP.INDEX"},
		{"M:OUTTMP.LNGNAM", "M:OUTTMP.LONG_NAME"},
		{"M:OUTTMP.LSTNAM", "M:OUTTMP.ALARM_LIST_NAME"},
		{"M:OUTTMP[1:1]", "M:OUTTMP.READING[1].SCALED"},
		{"M:OUTTMP{1:1}", "M:OUTTMP.READING{1}.SCALED"},
		{"M:OUTTMP[0:0]", "M:OUTTMP.READING.SCALED"},
		{"M:OUTTMP{:}", "M:OUTTMP.READING[].SCALED"},
		{"M:OUTTMP@N", "M:OUTTMP.READING.SCALED@N"},
		{"M:OUTTMP@I", "M:OUTTMP.READING.SCALED@I"},
		{"M:OUTTMP@P,1S", "M:OUTTMP.READING.SCALED@P,1000000U,TRUE"},
		{"M:OUTTMP@Q,2K,F", "M:OUTTMP.READING.SCALED@Q,500U,FALSE"},
		{"M:OUTTMP@S,1234,0,1s,=", "M:OUTTMP.READING.SCALED@S,1234,0,1000000U,="},
		{"0:123456@p,100", "0:123456.READING.SCALED@P,100000U,TRUE"},
	}

	for _, tt := range tests {
		req, err := ParseRequest(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, req.Canonical(), "input %q", tt.input)
	}
}

// TestRoundTripIdempotence checks the global invariant: parsing the
// canonical form yields a structurally identical request, and a second
// canonicalization changes nothing.
func TestRoundTripIdempotence(t *testing.T) {
	inputs := []string{
		"M:OUTTMP",
		"M?OUTTMP",
		"M_OUTTMP",
		"M|OUTTMP",
		"M&OUTTMP",
		"M@OUTTMP",
		"M$OUTTMP",
		"M~OUTTMP",
		"0:123456",
		"M:OUTTMP.RAW",
		"M:OUTTMP.VOLTS",
		"M:OUTTMP.SETTING",
		"M:OUTTMP.SETTING.RAW",
		"M|OUTTMP.ON",
		"M|OUTTMP.EXT_TEXT",
		"M@OUTTMP.RAW_TOL",
		"M@OUTTMP.TRYS_NEEDED",
		"M$OUTTMP.NOMINAL",
		"M:OUTTMP.INDEX",
		"M:OUTTMP.LONG_NAME",
		"M:OUTTMP.ALARM_LIST_NAME",
		"M:OUTTMP[]",
		"M:OUTTMP[5]",
		"M:OUTTMP[0:3]",
		"M:OUTTMP[2:]",
		"M:OUTTMP{}",
		"M:OUTTMP{4}",
		"M:OUTTMP{0:16}",
		"M:OUTTMP{8:}",
		"M:OUTTMP@N",
		"M:OUTTMP@I",
		"M:OUTTMP@P",
		"M:OUTTMP@P,1S",
		"M:OUTTMP@P,2K,FALSE",
		"M:OUTTMP@Q,10H,T",
		"M:OUTTMP@E,1F",
		"M:OUTTMP@E,2,H,10S",
		"M:OUTTMP@S,1234,100,250,<=",
		"M:OUTTMP:outdoor:temp.READING[0:3].RAW@Q,4295S,TRUE",
	}

	for _, opts := range []ParseOptions{DefaultOptions(), {PeriodicImmediate: false}} {
		for _, input := range inputs {
			first, err := ParseRequestWith(input, opts)
			require.NoError(t, err, "input %q", input)

			canon := first.Canonical()
			second, err := ParseRequestWith(canon, opts)
			require.NoError(t, err, "canonical %q of %q", canon, input)

			assert.Equal(t, first, second, "round trip of %q via %q", input, canon)
			assert.Equal(t, canon, second.Canonical(), "idempotence of %q", canon)
		}
	}
}

func TestParseRequestRejections(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"1:123456", ErrInvalidDevice},
		{"M!OUTTMP", ErrUnknownQualifier},
		{"M:OUTTMP.BOGUS", ErrUnknownName},
		{"M:OUTTMP.", ErrUnknownName},
		{"M_OUTTMP.STATUS", ErrPropertyMismatch},
		{"M&OUTTMP.RAW", ErrNoFields},
		{"M:OUTTMP.CONTROL[].RAW", ErrNoFields},
		{"M:OUTTMP[2:1]", ErrInvalidRange},
		{"M:OUTTMP{:0}", ErrInvalidRange},
		{"M:OUTTMP[1:2", ErrInvalidRange},
		{"M:OUTTMP@P,", ErrInvalidEvent},
		{"M:OUTTMP@X", ErrInvalidEvent},
		{"M:OUTTMP@E,12345", ErrInvalidEvent},
		{"M:OUTTMP@S,1,2,3", ErrInvalidEvent},
		{"M:OUTTMP@N extra", ErrTrailingText},
		{"M:OUTTMP@PD", ErrTrailingText},
	}

	for _, tt := range tests {
		_, err := ParseRequest(tt.input)
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseRequest(%q) = %v, want %v", tt.input, err, tt.want)
		}
	}
}

func TestParseRequestErrorPosition(t *testing.T) {
	_, err := ParseRequest("M:OUTTMP[2:1]")
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 12, perr.Pos)

	_, err = ParseRequest("M:OUTTMP.SETTING.BOGUS")
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 17, perr.Pos)
	assert.Equal(t, "BOGUS", perr.Token)
}
