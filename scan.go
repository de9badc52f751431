package timespan

import "regexp"

// Compiled once and shared read-only across all calls.
var (
	// bareNumberRE matches input that is a single signed integer, possibly
	// surrounded by punctuation noise. Such input is read as bare seconds
	// without going through the token grammar.
	bareNumberRE = regexp.MustCompile(`^[^0-9a-zA-Z_-]*(-?[0-9]+)[^0-9a-zA-Z_-]*$`)

	// tokenRE matches one value token: a signed integer, an optional decimal
	// part, an optional exponent (recognized only to be rejected), and an
	// optional trailing unit word separated by non-word junk. The unit word
	// is a maximal run of word characters containing no digit; μ and µ count
	// as word characters so the microsecond aliases reach the resolver.
	tokenRE = regexp.MustCompile(`(-?[0-9]+)\.?([0-9]+)?(?:[eE]([-+]?[0-9]+))?(?:[^0-9a-zA-Zµμ_]*([a-zA-Zµμ_]+))?`)
)

// rawToken is one scanned value/unit match, fields still in text form.
type rawToken struct {
	text string // the full matched text, for error reporting
	num  string // signed integer part
	frac string // digits after the decimal point, empty if none
	exp  string // exponent digits; any non-empty value is rejected
	unit string // trailing unit word, empty if none
}

// tokenScanner walks the input once, lazily producing raw tokens by repeated
// leftmost matching. A fresh scanner restarts from the beginning.
type tokenScanner struct {
	input string
	pos   int
}

func newTokenScanner(input string) *tokenScanner {
	return &tokenScanner{input: input}
}

// next returns the next raw token, reporting false when no further token
// matches. Unmatched text between tokens is skipped.
func (s *tokenScanner) next() (rawToken, bool) {
	if s.pos >= len(s.input) {
		return rawToken{}, false
	}
	m := tokenRE.FindStringSubmatchIndex(s.input[s.pos:])
	if m == nil {
		s.pos = len(s.input)
		return rawToken{}, false
	}
	tok := rawToken{
		text: s.group(m, 0),
		num:  s.group(m, 1),
		frac: s.group(m, 2),
		exp:  s.group(m, 3),
		unit: s.group(m, 4),
	}
	s.pos += m[1]
	return tok, true
}

func (s *tokenScanner) group(m []int, n int) string {
	if m[2*n] < 0 {
		return ""
	}
	return s.input[s.pos+m[2*n] : s.pos+m[2*n+1]]
}
