// Package decmath: shared series plumbing.
//
// Internal cores here take explicit iteration counts and constants so the
// eager constant generator can call them without re-entering the memo cache.

package decmath

import (
	"math"

	"github.com/katalvlaran/decimal"
)

// fail applies the error policy to a domain violation: the sentinel under
// ThrowOnError, a silent NaN otherwise.
func fail(cfg decimal.Iterations, err error) (decimal.Decimal, error) {
	if cfg.ThrowOnError {
		return decimal.NaNWith(cfg), err
	}

	return decimal.NaNWith(cfg), nil
}

// num builds a small integer constant carrying cfg.
func num(cfg decimal.Iterations, v int64) decimal.Decimal {
	return decimal.OfWith(v, cfg)
}

// half builds 0.5 carrying cfg; multiplying by it halves exactly.
func half(cfg decimal.Iterations) decimal.Decimal {
	d, _ := decimal.ParseWith("0.5", cfg)

	return d
}

// expCore evaluates e^x: halve x until |x| <= 1/2, run iters Maclaurin
// steps, then square the result back up. Special arguments resolve to their
// limits up front — the halving loop would never terminate on an infinity,
// and callers reach here with one under the silent overflow policy.
func expCore(x decimal.Decimal, iters int, cfg decimal.Iterations) (decimal.Decimal, error) {
	if x.IsNaN() {
		return decimal.NaNWith(cfg), nil
	}
	if x.IsInf() {
		if x.Sign() < 0 {
			return decimal.Zero().With(cfg), nil
		}

		return decimal.Inf(1).With(cfg), nil
	}

	h := half(cfg)
	one := num(cfg, 1)

	k := 0
	r := x
	for r.Abs().Greater(h) {
		var err error
		if r, err = r.Mul(h); err != nil {
			return r, err
		}
		k++
	}

	sum, term := one, one
	for n := 1; n <= iters; n++ {
		t, err := term.Mul(r)
		if err != nil {
			return t, err
		}
		if term, err = t.Div(num(cfg, int64(n))); err != nil {
			return term, err
		}
		if sum, err = sum.Add(term); err != nil {
			return sum, err
		}
	}

	for i := 0; i < k; i++ {
		var err error
		if sum, err = sum.Mul(sum); err != nil {
			return sum, err
		}
		if sum.IsInf() {
			break
		}
	}

	return sum, nil
}

// atanhSum evaluates z + z³/3 + z⁵/5 + ... for iters terms; 2·atanhSum is
// the log series.
func atanhSum(z decimal.Decimal, iters int, cfg decimal.Iterations) (decimal.Decimal, error) {
	z2, err := z.Mul(z)
	if err != nil {
		return z2, err
	}
	sum, term := z, z
	for j := 1; j < iters; j++ {
		if term, err = term.Mul(z2); err != nil {
			return term, err
		}
		q, err := term.Div(num(cfg, int64(2*j+1)))
		if err != nil {
			return q, err
		}
		if sum, err = sum.Add(q); err != nil {
			return sum, err
		}
	}

	return sum, nil
}

// lnCore evaluates ln(x) for finite positive x: scale x into [3/4, 3/2] by
// factors of two, run the atanh series, and add back k·ln2.
func lnCore(x, ln2 decimal.Decimal, iters int, cfg decimal.Iterations) (decimal.Decimal, error) {
	h := half(cfg)
	two := num(cfg, 2)
	upper, _ := decimal.ParseWith("1.5", cfg)
	lower, _ := decimal.ParseWith("0.75", cfg)

	k := 0
	var err error
	for x.Greater(upper) {
		if x, err = x.Mul(h); err != nil {
			return x, err
		}
		k++
	}
	for x.Less(lower) {
		if x, err = x.Mul(two); err != nil {
			return x, err
		}
		k--
	}

	nm, err := x.Sub(num(cfg, 1))
	if err != nil {
		return nm, err
	}
	dn, err := x.Add(num(cfg, 1))
	if err != nil {
		return dn, err
	}
	z, err := nm.Div(dn)
	if err != nil {
		return z, err
	}
	sum, err := atanhSum(z, iters, cfg)
	if err != nil {
		return sum, err
	}
	res, err := sum.Mul(two)
	if err != nil {
		return res, err
	}
	scaled, err := ln2.Mul(num(cfg, int64(k)))
	if err != nil {
		return scaled, err
	}

	return res.Add(scaled)
}

// ln2Core evaluates ln(2) = 2·atanh(1/3) directly, without the power-of-two
// reduction (which would be circular).
func ln2Core(iters int, cfg decimal.Iterations) (decimal.Decimal, error) {
	z, err := num(cfg, 1).Div(num(cfg, 3))
	if err != nil {
		return z, err
	}
	sum, err := atanhSum(z, iters, cfg)
	if err != nil {
		return sum, err
	}

	return sum.Mul(num(cfg, 2))
}

// sqrtCore refines √x by Newton's method, y ← (y + x/y)/2, seeded from a
// native estimate.
func sqrtCore(x decimal.Decimal, iters int, cfg decimal.Iterations) (decimal.Decimal, error) {
	if x.IsZero() {
		return decimal.Zero().With(cfg), nil
	}
	f := decimal.To[float64](x)
	seed := math.Sqrt(f)
	if seed == 0 || math.IsInf(seed, 0) {
		seed = 1 // magnitude beyond float range; Newton still converges
	}
	y := decimal.OfWith(seed, cfg)
	h := half(cfg)
	for i := 0; i < iters; i++ {
		q, err := x.Div(y)
		if err != nil {
			return q, err
		}
		s, err := y.Add(q)
		if err != nil {
			return s, err
		}
		if y, err = s.Mul(h); err != nil {
			return y, err
		}
	}

	return y, nil
}

// intFactorial computes n! through the kernel.
func intFactorial(n int64, cfg decimal.Iterations) (decimal.Decimal, error) {
	acc := num(cfg, 1)
	var err error
	for i := int64(2); i <= n; i++ {
		if acc, err = acc.Mul(num(cfg, i)); err != nil {
			return acc, err
		}
		if acc.IsInf() {
			break
		}
	}

	return acc, nil
}

// intPow raises x to a non-negative integer power by repeated squaring.
func intPow(x decimal.Decimal, n uint64, cfg decimal.Iterations) (decimal.Decimal, error) {
	res := num(cfg, 1)
	base := x
	var err error
	for n > 0 {
		if n&1 == 1 {
			if res, err = res.Mul(base); err != nil {
				return res, err
			}
		}
		n >>= 1
		if n > 0 {
			if base, err = base.Mul(base); err != nil {
				return base, err
			}
		}
	}

	return res, nil
}
