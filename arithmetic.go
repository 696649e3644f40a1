// Package decimal: elementary arithmetic kernel — addition, subtraction
// and multiplication over aligned digit magnitudes.
//
// Sign-aware Add/Sub are built on magnitude-only helpers: matching signs
// add magnitudes and keep the common sign; differing signs subtract the
// smaller magnitude from the larger (borrow propagation) and take the sign
// of the larger-magnitude operand. A zero result is positive by convention.
//
// Multiplication is grade-school digit convolution with carry propagation;
// the result's fractional depth is the sum of the operands' depths and the
// sign is the xor of the operand signs.
//
// Complexity: Add/Sub O(n), Mul O(n·m) for operand digit counts n, m.

package decimal

// alignedDigit reads the digit of mag at aligned position i, where the
// alignment places all magnitudes on a common grid of intLen integer digits
// followed by fracLen fractional digits. Positions outside mag read 0.
func alignedDigit(mag []byte, frac, intLen, i int) byte {
	// Position i counts from the most-significant aligned digit.
	j := i - (intLen - (len(mag) - frac))
	if j < 0 || j >= len(mag) {
		return 0
	}

	return mag[j]
}

// addMag returns |a| + |b| as an unnormalized magnitude.
func addMag(amag []byte, afrac int, bmag []byte, bfrac int) ([]byte, int) {
	intLen := maxInt(len(amag)-afrac, len(bmag)-bfrac)
	fracLen := maxInt(afrac, bfrac)
	n := intLen + fracLen
	out := make([]byte, n+1) // one leading slot for the final carry

	carry := byte(0)
	for i := n - 1; i >= 0; i-- {
		s := alignedDigit(amag, afrac, intLen, i) + alignedDigit(bmag, bfrac, intLen, i) + carry
		out[i+1] = s % 10
		carry = s / 10
	}
	out[0] = carry

	return out, fracLen
}

// subMag returns |a| - |b| as an unnormalized magnitude; |a| >= |b| is the
// caller's responsibility (use cmpMag first).
func subMag(amag []byte, afrac int, bmag []byte, bfrac int) ([]byte, int) {
	intLen := maxInt(len(amag)-afrac, len(bmag)-bfrac)
	fracLen := maxInt(afrac, bfrac)
	n := intLen + fracLen
	out := make([]byte, n)

	borrow := byte(0)
	for i := n - 1; i >= 0; i-- {
		da := alignedDigit(amag, afrac, intLen, i)
		db := alignedDigit(bmag, bfrac, intLen, i) + borrow
		if da < db {
			out[i] = da + 10 - db
			borrow = 1
		} else {
			out[i] = da - db
			borrow = 0
		}
	}

	return out, fracLen
}

// mulMag returns |a| * |b| by digit convolution.
func mulMag(amag []byte, afrac int, bmag []byte, bfrac int) ([]byte, int) {
	acc := make([]int, len(amag)+len(bmag))
	for i := len(amag) - 1; i >= 0; i-- {
		if amag[i] == 0 {
			continue
		}
		for j := len(bmag) - 1; j >= 0; j-- {
			acc[i+j+1] += int(amag[i]) * int(bmag[j])
		}
	}
	out := make([]byte, len(acc))
	carry := 0
	for i := len(acc) - 1; i >= 0; i-- {
		v := acc[i] + carry
		out[i] = byte(v % 10)
		carry = v / 10
	}

	return out, afrac + bfrac
}

// Add returns d + e. The result carries d's configuration. Special operands
// resolve per the NaN/Infinity algebra before any digit arithmetic; a finite
// result whose integer part overflows the configured precision degrades to
// ±Inf or reports ErrOverflow per policy.
func (d Decimal) Add(e Decimal) (Decimal, error) {
	cfg := d.iter()
	if s, ok := specialAdd(d, e, cfg); ok {
		return s, nil
	}

	if d.sign == e.sign {
		mag, frac := addMag(d.mag, d.frac, e.mag, e.frac)

		return norm(d.sign, mag, frac, cfg)
	}

	switch cmpMag(d.mag, d.frac, e.mag, e.frac) {
	case 0:
		return Zero().stamp(cfg), nil
	case 1:
		mag, frac := subMag(d.mag, d.frac, e.mag, e.frac)

		return norm(d.sign, mag, frac, cfg)
	default:
		mag, frac := subMag(e.mag, e.frac, d.mag, d.frac)

		return norm(e.sign, mag, frac, cfg)
	}
}

// Sub returns d - e. Equivalent to d.Add(e.Neg()), including the special
// algebra (Inf - Inf of equal signs is NaN).
func (d Decimal) Sub(e Decimal) (Decimal, error) {
	return d.Add(e.Neg())
}

// Mul returns d * e with sign xor and fractional depth fa+fb, normalized to
// the configured precision.
func (d Decimal) Mul(e Decimal) (Decimal, error) {
	cfg := d.iter()
	if s, ok := specialMul(d, e, cfg); ok {
		return s, nil
	}
	mag, frac := mulMag(d.mag, d.frac, e.mag, e.frac)

	return norm(xorSign(d.sign, e.sign), mag, frac, cfg)
}

// Neg returns d with its sign flipped. Negating NaN is NaN; negating zero
// stays positive zero.
func (d Decimal) Neg() Decimal {
	if d.IsNaN() || d.IsZero() {
		return d
	}
	out := d.clone()
	out.sign = -out.sign

	return out
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	if d.IsNaN() {
		return d
	}
	out := d.clone()
	out.sign = 1

	return out
}

// Inc returns d + 1.
func (d Decimal) Inc() (Decimal, error) { return d.Add(One().stamp(d.iter())) }

// Dec returns d - 1.
func (d Decimal) Dec() (Decimal, error) { return d.Sub(One().stamp(d.iter())) }

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
