package timespan

import "strconv"

// protoSpan accumulates one signed running total per canonical unit. Values
// for repeated units sum; no cross-unit normalization happens until the final
// fold into a Span.
type protoSpan struct {
	totals [numUnits]int64
}

// add folds one raw token into the accumulator. The first violation aborts
// the whole parse.
func (p *protoSpan) add(tok rawToken) error {
	if tok.exp != "" {
		return newExpNotSupportedError()
	}
	if tok.unit == "" {
		return newNoUnitFoundError(tok.text)
	}
	if tok.num == "" {
		return newNoValueFoundError(tok.text)
	}
	num, err := strconv.ParseInt(tok.num, 10, 64)
	if err != nil {
		return newParseIntError(tok.num)
	}

	if tok.frac == "" {
		unit, found := ResolveUnit(tok.unit)
		if !found {
			return newUnknownUnitError(tok.unit)
		}
		p.totals[unit] += num
		return nil
	}

	frac, err := strconv.ParseInt(tok.frac, 10, 64)
	if err != nil {
		return newParseIntError(tok.frac)
	}
	// Scale value*10^exp to nanoseconds, then drop the 10^exp factor again,
	// truncating toward zero. Fractional values always land in the
	// nanosecond total, whatever their original unit.
	scale, ok := pow10(len(tok.frac))
	if !ok {
		return newOverflowError()
	}
	scaled, ok := mulInt64(num, scale)
	if !ok {
		return newOverflowError()
	}
	scaled, ok = addInt64(scaled, frac)
	if !ok {
		return newOverflowError()
	}
	unit, found := ResolveUnit(tok.unit)
	if !found {
		return newUnknownUnitError(tok.unit)
	}
	scaled, ok = mulInt64(scaled, unitNanos[unit])
	if !ok {
		return newOverflowError()
	}
	p.totals[UnitNanosecond] += scaled / scale
	return nil
}

// span folds the running totals into a Span: sub-second units into one
// signed nanosecond total, the rest into one signed second total, carrying
// whole seconds over and validating that the result is representable.
func (p *protoSpan) span() (Span, error) {
	var nanos, seconds int64
	for u := UnitNanosecond; u <= UnitMillisecond; u++ {
		v, ok := mulInt64(unitNanos[u], p.totals[u])
		if !ok {
			return Span{}, newOverflowError()
		}
		nanos, ok = addInt64(nanos, v)
		if !ok {
			return Span{}, newOverflowError()
		}
	}
	for u := UnitSecond; u <= UnitYear; u++ {
		v, ok := mulInt64(unitSeconds[u], p.totals[u])
		if !ok {
			return Span{}, newOverflowError()
		}
		seconds, ok = addInt64(seconds, v)
		if !ok {
			return Span{}, newOverflowError()
		}
	}

	carried, ok := addInt64(seconds, nanos/1_000_000_000)
	if !ok {
		return Span{}, newOverflowError()
	}
	seconds = carried
	nanos %= 1_000_000_000

	if seconds < 0 {
		return Span{}, newOutOfBoundsError(seconds)
	}
	if nanos < 0 {
		return Span{}, newOutOfBoundsError(nanos)
	}
	return Span{Seconds: uint64(seconds), Nanoseconds: uint32(nanos)}, nil
}
