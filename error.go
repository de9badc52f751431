package timespan

import "fmt"

// ErrorKind discriminates the failure conditions of Parse.
type ErrorKind int

const (
	// ErrorParseInt: a digit run was too large or malformed for a signed
	// 64-bit integer parse.
	ErrorParseInt ErrorKind = iota
	// ErrorUnknownUnit: a unit word matched no canonical unit.
	ErrorUnknownUnit
	// ErrorOutOfBounds: the final seconds or nanoseconds value was negative
	// or exceeded the output width.
	ErrorOutOfBounds
	// ErrorOverflow: 64-bit arithmetic overflowed, or a sole bare negative
	// integer failed the unsigned narrowing. The latter intentionally
	// differs from the ErrorOutOfBounds a negative multi-token total
	// reports.
	ErrorOverflow
	// ErrorExpNotSupported: a value carried an exponent suffix. Exponential
	// notation is recognized only to be rejected.
	ErrorExpNotSupported
	// ErrorNoUnitFound: a value had no unit word and was not the sole
	// bare-seconds case.
	ErrorNoUnitFound
	// ErrorNoValueFound: no parseable value was found at all.
	ErrorNoValueFound
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorParseInt:
		return "ParseInt"
	case ErrorUnknownUnit:
		return "UnknownUnit"
	case ErrorOutOfBounds:
		return "OutOfBounds"
	case ErrorOverflow:
		return "Overflow"
	case ErrorExpNotSupported:
		return "ExpNotSupported"
	case ErrorNoUnitFound:
		return "NoUnitFound"
	case ErrorNoValueFound:
		return "NoValueFound"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the error type returned by Parse. Kind selects the failure
// condition; Text carries the offending input fragment and Value the
// out-of-range number, when the kind has one.
type Error struct {
	Kind  ErrorKind
	Text  string
	Value int64
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrorParseInt:
		return fmt.Sprintf("failed to parse %q as an integer", e.Text)
	case ErrorUnknownUnit:
		return fmt.Sprintf("%q is not a known unit", e.Text)
	case ErrorOutOfBounds:
		return fmt.Sprintf("%d cannot be converted to an unsigned value", e.Value)
	case ErrorOverflow:
		return "value too high or too low (maximum is around ±9.2e18)"
	case ErrorExpNotSupported:
		return "exponential notation not supported (i.e. not 2.3e4)"
	case ErrorNoUnitFound:
		return fmt.Sprintf("no unit found for the value %q", e.Text)
	case ErrorNoValueFound:
		return fmt.Sprintf("no value found in the string %q", e.Text)
	}
	return fmt.Sprintf("unknown error kind %d", int(e.Kind))
}

func newParseIntError(text string) *Error {
	return &Error{Kind: ErrorParseInt, Text: text}
}

func newUnknownUnitError(word string) *Error {
	return &Error{Kind: ErrorUnknownUnit, Text: word}
}

func newOutOfBoundsError(value int64) *Error {
	return &Error{Kind: ErrorOutOfBounds, Value: value}
}

func newOverflowError() *Error {
	return &Error{Kind: ErrorOverflow}
}

func newExpNotSupportedError() *Error {
	return &Error{Kind: ErrorExpNotSupported}
}

func newNoUnitFoundError(text string) *Error {
	return &Error{Kind: ErrorNoUnitFound, Text: text}
}

func newNoValueFoundError(text string) *Error {
	return &Error{Kind: ErrorNoValueFound, Text: text}
}
