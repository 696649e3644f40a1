// Package decmath: the Gauss error function.

package decmath

import (
	"github.com/katalvlaran/decimal"
)

// erfSaturation is the magnitude past which erf(x) is ±1 to well over a
// hundred decimal places, so the series is skipped entirely.
const erfSaturation = 10

// Erf returns the error function
//
//	erf(x) = 2/√π · Σ (−1)ⁿ x^(2n+1) / (n!(2n+1))
//
// summed for the Hyp budget. The series alternates and converges for every
// finite x, but slowly away from zero; |x| ≥ 10 (and ±Inf) short-circuit to
// ±1.
func Erf(x decimal.Decimal) (decimal.Decimal, error) {
	cfg := x.Iterations()
	if x.IsNaN() {
		return decimal.NaNWith(cfg), nil
	}
	if x.IsInf() || !x.Abs().Less(num(cfg, erfSaturation)) {
		return num(cfg, int64(x.Sign())), nil
	}
	if x.IsZero() {
		return decimal.Zero().With(cfg), nil
	}

	x2, err := x.Mul(x)
	if err != nil {
		return x2, err
	}
	x2 = x2.Neg()

	sum, pow := x, x
	for n := 1; n <= cfg.Hyp; n++ {
		if pow, err = pow.Mul(x2); err != nil { // (−1)ⁿ x^(2n+1) / n!
			return pow, err
		}
		if pow, err = pow.Div(num(cfg, int64(n))); err != nil {
			return pow, err
		}
		term, err := pow.Div(num(cfg, int64(2*n+1)))
		if err != nil {
			return term, err
		}
		if sum, err = sum.Add(term); err != nil {
			return sum, err
		}
	}

	c, err := constantsFor(cfg)
	if err != nil {
		return decimal.NaNWith(cfg), err
	}

	return sum.Mul(c.TwoOverSqrtPi)
}
