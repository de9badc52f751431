package timespan

import (
	"strconv"
	"time"
)

// Parse converts a free-form duration string into a Span.
//
// See the package documentation for the accepted syntax. The whole input is
// scanned left to right; the first violation aborts the parse with an
// *Error, there is no partial result.
func Parse(input string) (Span, error) {
	if m := bareNumberRE.FindStringSubmatch(input); m != nil {
		// The whole input is a single value with no unit: bare seconds.
		seconds, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return Span{}, newParseIntError(m[1])
		}
		if seconds < 0 {
			return Span{}, newOverflowError()
		}
		return Span{Seconds: uint64(seconds)}, nil
	}

	scanner := newTokenScanner(input)
	tok, ok := scanner.next()
	if !ok {
		// Just a unit word, or nothing at all.
		return Span{}, newNoValueFoundError(input)
	}

	var proto protoSpan
	for {
		if err := proto.add(tok); err != nil {
			return Span{}, err
		}
		tok, ok = scanner.next()
		if !ok {
			break
		}
	}
	return proto.span()
}

// ParseDuration is a convenience over [Parse] for callers that want a
// [time.Duration]. Spans beyond the [time.Duration] range report
// ErrorOutOfBounds.
func ParseDuration(input string) (time.Duration, error) {
	span, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return span.Duration()
}
