// Package decmath: combinatorics over exact integers.

package decmath

import (
	"github.com/katalvlaran/decimal"
)

// checkIndex validates a combinatorial argument: finite, integral and
// non-negative, small enough to iterate. Returns the native count.
func checkIndex(d decimal.Decimal) (int64, error) {
	if d.IsNaN() || d.IsInf() || d.Sign() < 0 || !d.IsInt() {
		return 0, decimal.ErrFactorialDomain
	}
	n, ok := d.Int64()
	if !ok {
		// A product over >2⁶³ factors overflows any finite precision anyway.
		return 0, decimal.ErrOverflow
	}

	return n, nil
}

// Factorial returns x! for finite non-negative integral x; negative or
// fractional finite arguments violate ErrFactorialDomain. Special arguments
// stay sticky and never raise: NaN and -Inf map to NaN, +Inf to the +Inf
// limit. Results beyond the configured precision overflow to +Inf under the
// silent policy.
func Factorial(x decimal.Decimal) (decimal.Decimal, error) {
	cfg := x.Iterations()
	if x.IsNaN() {
		return decimal.NaNWith(cfg), nil
	}
	if x.IsInf() {
		if x.Sign() > 0 {
			return decimal.Inf(1).With(cfg), nil
		}

		return decimal.NaNWith(cfg), nil
	}
	n, err := checkIndex(x)
	if err != nil {
		return fail(cfg, err)
	}

	return intFactorial(n, cfg)
}

// Perm returns the number of k-permutations of n items,
// n·(n−1)···(n−k+1). k > n yields 0; negative or fractional finite
// arguments violate ErrFactorialDomain, while special operands degrade to
// NaN without raising.
func Perm(n, k decimal.Decimal) (decimal.Decimal, error) {
	cfg := n.Iterations()
	if n.IsNaN() || k.IsNaN() || n.IsInf() || k.IsInf() {
		return decimal.NaNWith(cfg), nil
	}
	vn, err := checkIndex(n)
	if err != nil {
		return fail(cfg, err)
	}
	vk, err := checkIndex(k)
	if err != nil {
		return fail(cfg, err)
	}
	if vk > vn {
		return decimal.Zero().With(cfg), nil
	}

	acc := num(cfg, 1)
	for i := vn - vk + 1; i <= vn; i++ {
		if acc, err = acc.Mul(num(cfg, i)); err != nil {
			return acc, err
		}
		if acc.IsInf() {
			break
		}
	}

	return acc, nil
}

// Comb returns the binomial coefficient C(n, k) = P(n, k)/k!. The quotient
// of two exact integers is snapped back to an integer, so reciprocal
// refinement error cannot leak into the count. k > n yields 0.
func Comb(n, k decimal.Decimal) (decimal.Decimal, error) {
	cfg := n.Iterations()
	p, err := Perm(n, k)
	if err != nil || p.Kind() != decimal.KindNormal {
		return p, err
	}
	kf, err := Factorial(k.With(cfg))
	if err != nil {
		return kf, err
	}
	q, err := p.Div(kf)
	if err != nil {
		return q, err
	}

	return q.Round(0), nil
}

// Binomial expands (x + y)ⁿ by the binomial theorem,
//
//	Σ C(n,k) · xᵏ · yⁿ⁻ᵏ  for k = 0..n,
//
// which exercises the same machinery as evaluating Pow(x+y, n) but keeps
// every term exact for integral inputs. n must be a non-negative integer.
func Binomial(x, y, n decimal.Decimal) (decimal.Decimal, error) {
	cfg := x.Iterations()
	if x.IsNaN() || y.IsNaN() || n.IsNaN() || n.IsInf() {
		return decimal.NaNWith(cfg), nil
	}
	vn, err := checkIndex(n)
	if err != nil {
		return fail(cfg, err)
	}

	sum := decimal.Zero().With(cfg)
	for k := int64(0); k <= vn; k++ {
		c, err := Comb(num(cfg, vn), num(cfg, k))
		if err != nil {
			return c, err
		}
		xp, err := intPow(x, uint64(k), cfg)
		if err != nil {
			return xp, err
		}
		yp, err := intPow(y, uint64(vn-k), cfg)
		if err != nil {
			return yp, err
		}
		term, err := c.Mul(xp)
		if err != nil {
			return term, err
		}
		if term, err = term.Mul(yp); err != nil {
			return term, err
		}
		if sum, err = sum.Add(term); err != nil {
			return sum, err
		}
	}

	return sum, nil
}
