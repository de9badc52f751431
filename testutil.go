package timespan

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"
)

// AssertErrorKind asserts that the error is an *Error of the given kind.
func AssertErrorKind(t *testing.T, err error, kind ErrorKind) {
	var perr *Error
	ok := errors.As(err, &perr)
	assert.Assert(t, ok, "expected *timespan.Error, got %T", err)
	assert.Equal(t, kind, perr.Kind, "expected error kind %s, got %s", kind, perr.Kind)
}
