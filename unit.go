package timespan

import (
	"strconv"
	"strings"
)

// Unit is one of the ten canonical time units recognized by the parser.
type Unit int

const (
	UnitNanosecond Unit = iota
	UnitMicrosecond
	UnitMillisecond
	UnitSecond
	UnitMinute
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
	UnitYear

	numUnits = int(UnitYear) + 1
)

// unitNanos is the exact amount of nanoseconds in one of each unit. Months
// and years are fixed-ratio averages (year = 365.2425 days, the Gregorian
// 400-year average; month = year/12), not calendar lookups.
var unitNanos = [numUnits]int64{
	UnitNanosecond:  1,
	UnitMicrosecond: 1_000,
	UnitMillisecond: 1_000_000,
	UnitSecond:      1_000_000_000,
	UnitMinute:      60_000_000_000,
	UnitHour:        3_600_000_000_000,
	UnitDay:         86_400_000_000_000,
	UnitWeek:        604_800_000_000_000,
	UnitMonth:       2_629_746_000_000_000,
	UnitYear:        31_556_952_000_000_000,
}

// unitSeconds is the amount of seconds in one of each second-or-larger unit.
// Sub-second entries are zero and are folded through unitNanos instead.
var unitSeconds = [numUnits]int64{
	UnitSecond: 1,
	UnitMinute: 60,
	UnitHour:   3_600,
	UnitDay:    86_400,
	UnitWeek:   604_800,
	UnitMonth:  2_629_746,
	UnitYear:   31_556_952,
}

var unitNames = [numUnits]string{
	UnitNanosecond:  "nanoseconds",
	UnitMicrosecond: "microseconds",
	UnitMillisecond: "milliseconds",
	UnitSecond:      "seconds",
	UnitMinute:      "minutes",
	UnitHour:        "hours",
	UnitDay:         "days",
	UnitWeek:        "weeks",
	UnitMonth:       "months",
	UnitYear:        "years",
}

func (u Unit) String() string {
	if u < 0 || int(u) >= numUnits {
		return "unit(" + strconv.Itoa(int(u)) + ")"
	}
	return unitNames[u]
}

// abbreviates reports whether word is a nonempty initial segment of full.
func abbreviates(word, full string) bool {
	return word != "" && strings.HasPrefix(full, word)
}

// ResolveUnit resolves a unit word to its canonical Unit, reporting false for
// unknown words. Matching is by unambiguous prefix of the full unit name or
// of a short alias ("nsecs", "usecs", "μsecs", "msecs", "secs", "mins",
// "hrs", "wks", "yrs"), case insensitive except that a word starting with a
// literal "m" always resolves to minutes and one starting with a literal "M"
// to months.
func ResolveUnit(word string) (Unit, bool) {
	lower := strings.ToLower(word)
	switch {
	case strings.HasPrefix(lower, "n") &&
		(abbreviates(lower, "nanoseconds") || abbreviates(lower, "nsecs")):
		return UnitNanosecond, true
	case strings.HasPrefix(lower, "mic") && abbreviates(lower, "microseconds") ||
		strings.HasPrefix(lower, "u") && abbreviates(lower, "usecs") ||
		strings.HasPrefix(lower, "μ") && abbreviates(lower, "μsecs") ||
		strings.HasPrefix(lower, "µ") && abbreviates(lower, "µsecs"):
		return UnitMicrosecond, true
	case strings.HasPrefix(lower, "mil") && abbreviates(lower, "milliseconds") ||
		strings.HasPrefix(lower, "ms") && abbreviates(lower, "msecs"):
		return UnitMillisecond, true
	case strings.HasPrefix(lower, "s") &&
		(abbreviates(lower, "seconds") || abbreviates(lower, "secs")):
		return UnitSecond, true
	case (strings.HasPrefix(lower, "min") || strings.HasPrefix(word, "m")) &&
		(abbreviates(lower, "minutes") || abbreviates(lower, "mins")):
		return UnitMinute, true
	case strings.HasPrefix(lower, "h") &&
		(abbreviates(lower, "hours") || abbreviates(lower, "hrs")):
		return UnitHour, true
	case strings.HasPrefix(lower, "d") && abbreviates(lower, "days"):
		return UnitDay, true
	case strings.HasPrefix(lower, "w") &&
		(abbreviates(lower, "weeks") || abbreviates(lower, "wks")):
		return UnitWeek, true
	case (strings.HasPrefix(lower, "mo") || strings.HasPrefix(word, "M")) &&
		abbreviates(lower, "months"):
		return UnitMonth, true
	case strings.HasPrefix(lower, "y") &&
		(abbreviates(lower, "years") || abbreviates(lower, "yrs")):
		return UnitYear, true
	}
	return 0, false
}
