// Package decimal: division & modulo.
//
// Description:
//
//	Div is NOT long division. It computes a fixed-precision reciprocal of
//	the divisor's magnitude via Newton–Raphson refinement and multiplies it
//	by the dividend:
//
//	  1. Normalize the divisor to D' = 0.d₁d₂... ∈ [0.1, 1) by stripping
//	     leading zeros and tracking the decimal exponent E, |b| = D'·10^E.
//	  2. Seed x₀ ≈ 1/D' from the leading 15 digits (native estimate).
//	  3. Refine x ← x·(2 − D'·x), Div-budget times, truncating to the
//	     working depth W after every multiplication. Each round roughly
//	     doubles the number of correct digits.
//	  4. q = |a| · x · 10^(−E), rescaled for the combined fractional
//	     depths and normalized to the configured precision.
//
//	Repeated multiplication dominates the cost either way, so refining a
//	reciprocal costs no more than per-digit long division while remaining
//	correct for magnitudes far beyond the native 64-bit range. A Div budget
//	of 0 skips refinement and yields a usable but less accurate quotient
//	(~14 digits); Mod and Hex need a positive budget on very large values.
//
// Complexity: O(Div · W²) for working depth W ≈ Precision + operand digits.

package decimal

import "math"

// seedDigits is the significant-digit depth of the native reciprocal seed.
const seedDigits = 15

// stripLead removes ALL leading zero digits (integer and fractional alike),
// returning the stripped magnitude and the count removed.
func stripLead(mag []byte) ([]byte, int) {
	z := 0
	for z < len(mag) && mag[z] == 0 {
		z++
	}

	return mag[z:], z
}

// recipSeed estimates 1/D' for D' = 0.emag ∈ [0.1, 1) from the leading
// digits, returning a magnitude with seedDigits fractional digits.
func recipSeed(emag []byte) ([]byte, int) {
	t := len(emag)
	if t > seedDigits {
		t = seedDigits
	}
	var v uint64
	for i := 0; i < t; i++ {
		v = v*10 + uint64(emag[i])
	}
	f := float64(v) / math.Pow10(t) // ∈ [0.1, 1)
	u := uint64(1 / f * 1e15)       // g = 1/f ∈ (1, 10], scaled to 16 digits

	var digs []byte
	for u > 0 {
		digs = append([]byte{byte(u % 10)}, digs...)
		u /= 10
	}

	return digs, seedDigits
}

// recipMag refines 1/D' to depth frac digits with the given number of
// Newton–Raphson rounds: x ← x·(2 − D'·x).
func recipMag(emag []byte, depth, rounds int) ([]byte, int) {
	x, xf := recipSeed(emag)
	two := []byte{2}
	for r := 0; r < rounds; r++ {
		t, tf := mulMag(emag, len(emag), x, xf) // D'·x, ≈ 1
		t, tf = truncFrac(t, tf, depth)
		u, uf := subMag(two, 0, t, tf) // 2 − D'·x
		x, xf = mulMag(x, xf, u, uf)
		x, xf = truncFrac(x, xf, depth)
		x = leadTrim(x, xf)
	}

	return x, xf
}

// Div returns d / e using reciprocal refinement with d's Div budget. The
// special algebra applies first: x/0 signals ErrDivisionByZero under
// ThrowOnError and degrades to ±Inf (0/0 to NaN) otherwise; finite/Inf is
// zero; Inf/Inf is NaN.
func (d Decimal) Div(e Decimal) (Decimal, error) {
	cfg := d.iter()
	if s, ok, err := specialDiv(d, e, cfg); ok {
		return s, err
	}
	if d.IsZero() {
		return Zero().stamp(cfg), nil
	}

	emag, z := stripLead(e.mag)
	exp := (len(e.mag) - e.frac) - z // |e| = 0.emag · 10^exp

	depth := cfg.Precision + (len(d.mag) - d.frac) + absInt(exp) + 4
	x, xf := recipMag(emag, depth, cfg.Div)

	// q = |d| · x, decimal point shifted left by exp.
	mag, frac := mulMag(d.mag, d.frac, x, xf)
	frac += exp
	for frac > len(mag) {
		mag = append([]byte{0}, mag...)
	}
	for frac < 0 {
		mag = append(mag, 0)
		frac++
	}

	return norm(xorSign(d.sign, e.sign), mag, frac, cfg)
}

// Mod returns d - trunc(d/e)·e, where trunc drops the quotient's fractional
// part toward zero. The result keeps d's sign, matching fmod. Modulo by
// zero follows the division policy (IllegalOperation or NaN); d mod ±Inf
// is d for finite d.
func (d Decimal) Mod(e Decimal) (Decimal, error) {
	if d.kind == KindNormal && e.IsInf() {
		return d.stamp(d.iter()), nil // the identity would collapse via 0·Inf
	}
	q, err := d.Div(e)
	if err != nil {
		return q, err
	}
	p, err := q.Truncate(0).Mul(e)
	if err != nil {
		return p, err
	}

	return d.Sub(p)
}

// Truncate returns d with fractional digits beyond places dropped toward
// zero. Special values pass through unchanged.
func (d Decimal) Truncate(places int) Decimal {
	if d.kind != KindNormal || places < 0 || d.frac <= places {
		return d
	}
	out := d.clone()
	out.mag, out.frac = truncFrac(out.mag, out.frac, places)
	out.mag = leadTrim(out.mag, out.frac)
	out.mag, out.frac = trailTrim(out.mag, out.frac)
	if out.IsZero() {
		out.sign = 1
	}

	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
