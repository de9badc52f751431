package timespan

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		seconds uint64
		nanos   uint32
	}{
		// nanoseconds
		{"1nsec", 0, 1},
		{"1ns", 0, 1},
		{"1.07 ns", 0, 1},
		// microseconds
		{"1usec", 0, 1_000},
		{"1us", 0, 1_000},
		{"1μs", 0, 1_000},
		{"1µs", 0, 1_000},
		{"1.07 us", 0, 1_070},
		// milliseconds
		{"1msec", 0, 1_000_000},
		{"1ms", 0, 1_000_000},
		{"1.07 ms", 0, 1_070_000},
		// seconds
		{"1seconds", 1, 0},
		{"1second", 1, 0},
		{"1sec", 1, 0},
		{"1s", 1, 0},
		{"1.07 s", 1, 70_000_000},
		// minutes
		{"1minutes", 60, 0},
		{"1minute", 60, 0},
		{"1min", 60, 0},
		{"1MIN", 60, 0},
		{"1m", 60, 0},
		{"1.07 m", 64, 200_000_000},
		// hours
		{"1hours", 3_600, 0},
		{"1hour", 3_600, 0},
		{"1hr", 3_600, 0},
		{"1h", 3_600, 0},
		{"1.07 h", 3_852, 0},
		// days
		{"1days", 86_400, 0},
		{"1day", 86_400, 0},
		{"1d", 86_400, 0},
		{"1.07 d", 92_448, 0},
		{"0.126 days", 10_886, 400_000_000},
		// weeks
		{"1weeks", 604_800, 0},
		{"1week", 604_800, 0},
		{"1w", 604_800, 0},
		{"1.07 w", 647_136, 0},
		// months
		{"1months", 2_629_746, 0},
		{"1month", 2_629_746, 0},
		{"1M", 2_629_746, 0},
		{"1.07 M", 2_813_828, 220_000_000},
		{"1.07 mONTh", 2_813_828, 220_000_000},
		// years
		{"1years", 31_556_952, 0},
		{"1year", 31_556_952, 0},
		{"1y", 31_556_952, 0},
		{"1.07 y", 33_765_938, 640_000_000},
		// multiple tokens
		{"1min    10 seconds", 70, 0},
		{"1min10seconds", 70, 0},
		{"10year1min10seconds5h", 315_587_590, 0},
		{"1min 10 minute", 660, 0},
		{"16 min seconds", 960, 0},
		{"15 days 20 seconds 100 milliseconds", 1_296_020, 100_000_000},
		{"15days20seconds100milliseconds", 1_296_020, 100_000_000},
		{"10 days 1 nanoseconds 15 years", 474_218_280, 1},
		{"10d1n15y", 474_218_280, 1},
		{"10 seconds 20 seconds", 30, 0},
		{"14 days seconds", 1_209_600, 0},
		{"Duration: 1 hour, 15 minutes and 29 seconds", 4_529, 0},
		// negatives
		{"1 day -1 hour", 82_800, 0},
		{"1 day -15 minutes", 85_500, 0},
		{"1 day - 15 minutes", 87_300, 0},
		// bare seconds
		{"15", 15, 0},
		{".:++++]][][[][15[]][][]:}}}}", 15, 0},
		{".:++++]][][[][15[]][seconds][]:}}}}", 15, 0},
		// boundaries
		{"9223372036854775807 s", math.MaxInt64, 0},
		{"1844670000000000000 seconds", 1_844_670_000_000_000_000, 0},
		{"18446700000000000 nanoseconds", 18_446_700, 0},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			span, err := Parse(test.input)
			require.NoError(t, err)
			require.Equal(t, Span{Seconds: test.seconds, Nanoseconds: test.nanos}, span)
		})
	}
}

func TestParseExponentRejected(t *testing.T) {
	units := []string{"ns", "us", "ms", "s", "m", "h", "d", "w", "M", "y"}
	values := []string{"1.07e5", "1.07e+5", "1.07e-5", "1e5", "1e+5", "1e-5"}
	for _, unit := range units {
		for _, value := range values {
			input := fmt.Sprintf("%s %s", value, unit)
			t.Run(input, func(t *testing.T) {
				_, err := Parse(input)
				AssertErrorKind(t, err, ErrorExpNotSupported)
			})
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
		text  string
		value int64
	}{
		{input: "18446744073709551615 s", kind: ErrorParseInt, text: "18446744073709551615"},
		{input: "123456789012345678901234567890 seconds", kind: ErrorParseInt, text: "123456789012345678901234567890"},
		{input: "1e11232345982734592837498234 years", kind: ErrorExpNotSupported},
		{input: "16 sdfwe", kind: ErrorUnknownUnit, text: "sdfwe"},
		// the value is parsed before the unit is resolved
		{input: "99999999999999999999 sdfwe", kind: ErrorParseInt, text: "99999999999999999999"},
		{input: "year", kind: ErrorNoValueFound, text: "year"},
		{input: "", kind: ErrorNoValueFound, text: ""},
		{input: "year15", kind: ErrorNoUnitFound, text: "15"},
		{input: "16 17 seconds", kind: ErrorNoUnitFound, text: "16"},
		{input: "-3 days 71 hours", kind: ErrorOutOfBounds, value: -3_600},
		// totals that overflow the signed 64-bit fold abort instead of
		// wrapping into a garbage value
		{input: "400000000000 years", kind: ErrorOverflow},
		{input: "9223372036854775807 milliseconds 1 milliseconds", kind: ErrorOverflow},
		// A sole bare negative integer narrows through the fast path, which
		// reports Overflow instead of OutOfBounds.
		{input: "-3", kind: ErrorOverflow},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			_, err := Parse(test.input)
			require.Error(t, err)
			var perr *Error
			require.ErrorAs(t, err, &perr)
			require.Equal(t, test.kind, perr.Kind)
			require.Equal(t, test.text, perr.Text)
			require.Equal(t, test.value, perr.Value)
		})
	}
}

// Inputs that must parse to the same value as a simpler spelling.
func TestParseEquivalences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		same  string
	}{
		{name: "repeated units sum", input: "10 seconds 20 seconds", same: "30 seconds"},
		{name: "separators are noise", input: ".:++++]][][[][15[]][seconds][]:}}}}", same: "15 seconds"},
		{name: "order independence", input: "1 day -1 hour", same: "-1 hour 1 day"},
		{name: "dangling unit word ignored", input: "14 days seconds", same: "14 days"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			left, err := Parse(test.input)
			require.NoError(t, err)
			right, err := Parse(test.same)
			require.NoError(t, err)
			require.Equal(t, right, left)
		})
	}
}

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration("1 day -1 hour")
	require.NoError(t, err)
	require.Equal(t, "23h0m0s", d.String())

	_, err = ParseDuration("1844670000000000000 seconds")
	var perr *Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, ErrorOutOfBounds, perr.Kind)
}
