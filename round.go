// Package decimal: the rounding family — Floor, Ceil, Round.

package decimal

// Floor returns the largest integer value not greater than d: truncation
// toward negative infinity at the decimal point. Floor(-1.5) = -2,
// Floor(2) = 2. Special values pass through.
func (d Decimal) Floor() (Decimal, error) {
	if d.kind != KindNormal {
		return d, nil
	}
	t := d.Truncate(0)
	if d.sign < 0 && !d.IsInt() {
		return t.Dec()
	}

	return t, nil
}

// Ceil returns the smallest integer value not less than d. An integral
// input is returned as-is — Ceil(2) = 2 — and any other input is
// Floor(d)+1: Ceil(-1.5) = -1, Ceil(1.2) = 2.
func (d Decimal) Ceil() (Decimal, error) {
	if d.kind != KindNormal {
		return d, nil
	}
	if d.IsInt() {
		return d.Truncate(0), nil
	}
	f, err := d.Floor()
	if err != nil {
		return f, err
	}

	return f.Inc()
}

// Round returns d reduced to places fractional digits using the same
// truncate-vs-round-half-away policy as SetPrecision: under the Truncate
// flag digits beyond places are dropped toward zero, otherwise the first
// dropped digit rounds the magnitude half-away-from-zero.
func (d Decimal) Round(places int) Decimal {
	if d.kind != KindNormal || places < 0 || d.frac <= places {
		return d
	}
	if d.iter().Truncate {
		return d.Truncate(places)
	}
	out := d.clone()
	out.mag, out.frac = roundFrac(out.mag, out.frac, places)
	out.mag = leadTrim(out.mag, out.frac)
	out.mag, out.frac = trailTrim(out.mag, out.frac)
	if out.IsZero() {
		out.sign = 1
	}

	return out
}
