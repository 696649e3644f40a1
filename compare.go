// Package decimal: comparisons.

package decimal

// cmpMag compares two magnitudes after conceptually aligning them: integer
// parts padded with leading zeros to equal length, fractional parts padded
// with trailing zeros to equal length, then compared most-significant digit
// first. No padding is materialized.
func cmpMag(amag []byte, afrac int, bmag []byte, bfrac int) int {
	amag = leadTrim(amag, afrac)
	bmag = leadTrim(bmag, bfrac)
	ai, bi := len(amag)-afrac, len(bmag)-bfrac

	// A longer (trimmed) integer part wins outright, unless it is all zeros,
	// which leadTrim already precludes beyond a single digit.
	if ai != bi {
		if ai > bi {
			return 1
		}

		return -1
	}

	n := len(amag)
	if len(bmag) > n {
		n = len(bmag)
	}
	for i := 0; i < n; i++ {
		var da, db byte
		if i < len(amag) {
			da = amag[i]
		}
		if i < len(bmag) {
			db = bmag[i]
		}
		if da != db {
			if da > db {
				return 1
			}

			return -1
		}
	}

	return 0
}

// CmpAbs performs a magnitude-only three-way comparison of two finite
// values, ignoring signs: -1 if |d| < |e|, 0 if equal, +1 if |d| > |e|.
// It is antisymmetric and transitive across arbitrary magnitudes and
// fractional widths. Infinity outweighs every finite magnitude; NaN
// compares as 0 against anything.
func (d Decimal) CmpAbs(e Decimal) int {
	switch {
	case d.IsNaN() || e.IsNaN():
		return 0
	case d.IsInf() && e.IsInf():
		return 0
	case d.IsInf():
		return 1
	case e.IsInf():
		return -1
	}

	return cmpMag(d.mag, d.frac, e.mag, e.frac)
}

// cmp is the signed three-way comparison for non-NaN values.
func (d Decimal) cmp(e Decimal) int {
	ds, es := d.Sign(), e.Sign()
	if ds != es {
		if ds > es {
			return 1
		}

		return -1
	}
	c := d.CmpAbs(e)
	if ds < 0 {
		c = -c
	}

	return c
}

// Equal reports d == e. Any NaN operand yields false, matching
// floating-point semantics.
func (d Decimal) Equal(e Decimal) bool {
	if d.IsNaN() || e.IsNaN() {
		return false
	}
	if d.IsInf() || e.IsInf() {
		return d.kind == e.kind && d.sign == e.sign
	}

	return d.cmp(e) == 0
}

// Less reports d < e. Any NaN operand yields false.
func (d Decimal) Less(e Decimal) bool {
	if d.IsNaN() || e.IsNaN() {
		return false
	}

	return d.cmp(e) < 0
}

// LessEq reports d <= e. Any NaN operand yields false.
func (d Decimal) LessEq(e Decimal) bool {
	if d.IsNaN() || e.IsNaN() {
		return false
	}

	return d.cmp(e) <= 0
}

// Greater reports d > e. Any NaN operand yields false.
func (d Decimal) Greater(e Decimal) bool {
	if d.IsNaN() || e.IsNaN() {
		return false
	}

	return d.cmp(e) > 0
}

// GreaterEq reports d >= e. Any NaN operand yields false.
func (d Decimal) GreaterEq(e Decimal) bool {
	if d.IsNaN() || e.IsNaN() {
		return false
	}

	return d.cmp(e) >= 0
}
