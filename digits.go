// Package decimal: digit store & normalizer.
//
// The magnitude is a []byte of digit VALUES (0..9), most-significant first,
// with frac counting the trailing fractional digits. Helpers here keep that
// representation canonical: no redundant leading zeros in the integer part
// (always at least one digit), no trailing fractional zeros beyond what the
// caller asked to keep, and precision adjustment by truncation or
// round-half-away-from-zero.

package decimal

import "fmt"

// digitVal converts an ASCII digit to its value. The error path guards the
// representation invariant; it is not a normal-path condition.
func digitVal(c byte) (byte, error) {
	if c < '0' || c > '9' {
		return 0, fmt.Errorf("%w: %q is not a decimal digit", ErrBadDigit, string(c))
	}

	return c - '0', nil
}

// digitSym converts a digit value to its ASCII symbol, failing on values
// outside [0,9].
func digitSym(v byte) (byte, error) {
	if v > 9 {
		return 0, fmt.Errorf("%w: %d is not a decimal digit value", ErrBadDigit, v)
	}

	return v + '0', nil
}

// leadTrim drops redundant leading zeros from the integer part, always
// leaving at least one integer digit.
func leadTrim(mag []byte, frac int) []byte {
	for len(mag)-frac > 1 && mag[0] == 0 {
		mag = mag[1:]
	}

	return mag
}

// trailTrim drops trailing zeros from the fractional part, never past the
// decimal point.
func trailTrim(mag []byte, frac int) ([]byte, int) {
	for frac > 0 && mag[len(mag)-1] == 0 {
		mag = mag[:len(mag)-1]
		frac--
	}

	return mag, frac
}

// truncFrac drops fractional digits beyond p, toward zero. No rounding.
func truncFrac(mag []byte, frac, p int) ([]byte, int) {
	if frac <= p {
		return mag, frac
	}
	mag = mag[:len(mag)-(frac-p)]
	if len(mag) == 0 {
		mag = []byte{0}
	}

	return mag, p
}

// roundFrac reduces the fractional part to p digits using
// round-half-away-from-zero: the first dropped digit decides (>=5 rounds the
// magnitude away from zero). Carry may extend the integer part by one digit.
func roundFrac(mag []byte, frac, p int) ([]byte, int) {
	if frac <= p {
		return mag, frac
	}
	first := mag[len(mag)-(frac-p)]
	mag, frac = truncFrac(mag, frac, p)
	if first < 5 {
		return mag, frac
	}
	out := append([]byte(nil), mag...)
	carry := byte(1)
	for i := len(out) - 1; i >= 0 && carry > 0; i-- {
		out[i] += carry
		carry = 0
		if out[i] > 9 {
			out[i] -= 10
			carry = 1
		}
	}
	if carry > 0 {
		out = append([]byte{1}, out...)
	}

	return out, frac
}

// SetPrecision returns d adjusted to exactly p stored fractional digits.
//
// When d has fewer than p fractional digits, trailing zeros are appended
// (the represented value is unchanged). When it has more, digits beyond p
// are truncated or rounded half-away-from-zero per the Truncate flag of d's
// configuration. Applying the same p twice is idempotent. The sign is never
// changed. Special values are returned unchanged.
func (d Decimal) SetPrecision(p int) Decimal {
	if d.kind != KindNormal || p < 0 {
		return d
	}
	out := d.clone()
	switch {
	case out.frac < p:
		for out.frac < p {
			out.mag = append(out.mag, 0)
			out.frac++
		}
	case out.frac > p:
		if out.iter().Truncate {
			out.mag, out.frac = truncFrac(out.mag, out.frac, p)
		} else {
			out.mag, out.frac = roundFrac(out.mag, out.frac, p)
		}
		out.mag = leadTrim(out.mag, out.frac)
	}
	if p > out.its.Precision {
		out.its.Precision = p
	}

	return out
}

// norm canonicalizes a freshly built finite value against cfg: trim leading
// zeros, clamp the fractional depth to cfg.Precision (truncate or round per
// policy), trim trailing fractional zeros, normalize the sign of zero, and
// apply the overflow rule. Overflow degrades to ±Inf under the silent
// policy and reports ErrOverflow under ThrowOnError.
func norm(sign int8, mag []byte, frac int, cfg Iterations) (Decimal, error) {
	mag = leadTrim(mag, frac)
	if frac > cfg.Precision {
		if cfg.Truncate {
			mag, frac = truncFrac(mag, frac, cfg.Precision)
		} else {
			mag, frac = roundFrac(mag, frac, cfg.Precision)
		}
		mag = leadTrim(mag, frac)
	}
	mag, frac = trailTrim(mag, frac)

	// Overflow: the integer part outgrew the range implied by Precision.
	if len(mag)-frac > cfg.Precision+1 {
		if cfg.ThrowOnError {
			return NaNWith(cfg), ErrOverflow
		}

		return Inf(int(sign)).stamp(cfg), nil
	}

	d := Decimal{kind: KindNormal, sign: sign, mag: mag, frac: frac, its: cfg}
	if d.IsZero() {
		d.sign = 1
		d.mag, d.frac = []byte{0}, 0
	}

	return d, nil
}
