package timespan

import "math"

// pow10 returns 10^exp, reporting false when it does not fit an int64.
func pow10(exp int) (int64, bool) {
	v := int64(1)
	for i := 0; i < exp; i++ {
		if v > math.MaxInt64/10 {
			return 0, false
		}
		v *= 10
	}
	return v, true
}

// mulInt64 multiplies two int64 values, reporting false on overflow.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 && b == -1 || a == -1 && b == math.MinInt64 {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}

// addInt64 adds two int64 values, reporting false on overflow.
func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}
