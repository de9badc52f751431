// Package timespan parses free-form human-written duration strings into an
// exact quantity of whole seconds and sub-second nanoseconds. The accepted
// syntax is based on the one set by systemd.time, extended with negative
// values and decimals.
//
// # Syntax
//
// The input is a sequence of value/unit pairs, such as
// "15 days 20 seconds 100 milliseconds". Spaces are not needed, as in
// "15days20seconds100milliseconds", and order doesn't matter at all.
//
// Characters other than letters, digits and underscores are ignored, other
// than acting as word boundaries, so ".:++++]][][[][15[]][seconds][]:}}}}" is
// the same as "15 seconds". Unit words with no corresponding value are
// ignored: in "14 days seconds", "seconds" is dropped.
//
// A value without a unit is an error, unless the whole input is a single
// signed integer (possibly surrounded by punctuation), in which case it is
// read as seconds.
//
// If the same unit is given more than once, the values are summed.
//
// # Units
//
// The recognized units are nanoseconds, microseconds, milliseconds, seconds,
// minutes, hours, days, weeks, months and years. Years use the Gregorian
// 400-year average (365.2425 days) and a month is one twelfth of a year.
//
// Any unambiguous initial segment of a unit name is accepted, case
// insensitively, as are initial segments of the short forms "nsecs", "usecs"
// (or "μsecs"), "msecs", "secs", "mins", "hrs", "wks" and "yrs". The one
// case-sensitive exception: "m" always means minutes and "M" always means
// months.
//
// # Values
//
// Values may be integers or decimals, negatives included, as long as the
// final total is non-negative and below 2^64 seconds. The negative sign must
// be directly adjacent to the value: "-15 seconds", not "- 15 seconds".
// Decimals are truncated toward zero at nanosecond resolution. Exponential
// notation is recognized and rejected with ErrorExpNotSupported.
package timespan

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// Span is an exact, non-negative quantity of time: whole seconds plus
// sub-second nanoseconds. The zero value is a zero-length span.
//
// Unlike [time.Duration], a Span can represent up to 2^64-1 seconds.
type Span struct {
	Seconds     uint64
	Nanoseconds uint32 // always < 1_000_000_000
}

// Duration converts the span into a [time.Duration]. Spans longer than the
// [time.Duration] range (about 292 years) report ErrorOutOfBounds.
func (s Span) Duration() (time.Duration, error) {
	sec := int64(s.Seconds)
	if sec < 0 || sec > math.MaxInt64/int64(time.Second) {
		return 0, newOutOfBoundsError(sec)
	}
	d := time.Duration(sec) * time.Second
	if d > math.MaxInt64-time.Duration(s.Nanoseconds) {
		return 0, newOutOfBoundsError(sec)
	}
	return d + time.Duration(s.Nanoseconds), nil
}

// String returns the span as a decimal amount of seconds, such as "15s" or
// "10886.4s". The output is accepted back by [Parse] as long as Seconds fits
// a signed 64-bit integer; beyond that, re-parsing fails the value parse.
func (s Span) String() string {
	if s.Nanoseconds == 0 {
		return strconv.FormatUint(s.Seconds, 10) + "s"
	}
	frac := strings.TrimRight(fmt.Sprintf("%09d", s.Nanoseconds), "0")
	return fmt.Sprintf("%d.%ss", s.Seconds, frac)
}

// MarshalText implements [encoding.TextMarshaler] using the String form.
func (s Span) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. Any input accepted by
// [Parse] is valid, which also makes Span usable as an encoding/json target.
func (s *Span) UnmarshalText(text []byte) error {
	span, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = span
	return nil
}

// MarshalYAML implements the goccy/go-yaml BytesMarshaler interface.
func (s Span) MarshalYAML() ([]byte, error) {
	return yaml.Marshal(s.String())
}

// UnmarshalYAML implements the goccy/go-yaml BytesUnmarshaler interface.
// Scalar values, quoted or not, go through [Parse], so bare integers are read
// as seconds.
func (s *Span) UnmarshalYAML(data []byte) error {
	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(fmt.Sprintf("%v", value)))
}
