// Package decmath: natural and based logarithms.

package decmath

import (
	"github.com/katalvlaran/decimal"
)

// Ln returns the natural logarithm of x under the Ln budget.
//
// The argument is scaled into [3/4, 3/2] by powers of two (each shift adds
// or removes one memoized ln2), then ln(x) = 2·atanh((x−1)/(x+1)) is summed
// term by term. Ln(0) is -Inf under the silent policy and ErrLogDomain under
// ThrowOnError; negative x is ErrLogDomain either way. Ln(+Inf) = +Inf.
func Ln(x decimal.Decimal) (decimal.Decimal, error) {
	cfg := x.Iterations()
	if x.IsNaN() {
		return decimal.NaNWith(cfg), nil
	}
	if x.IsInf() {
		if x.Sign() < 0 {
			return decimal.NaNWith(cfg), nil
		}

		return decimal.Inf(1).With(cfg), nil
	}
	if x.Sign() < 0 {
		return fail(cfg, decimal.ErrLogDomain)
	}
	if x.IsZero() {
		if cfg.ThrowOnError {
			return decimal.NaNWith(cfg), decimal.ErrLogDomain
		}

		return decimal.Inf(-1).With(cfg), nil
	}

	c, err := constantsFor(cfg)
	if err != nil {
		return decimal.NaNWith(cfg), err
	}

	return lnCore(x, c.Ln2, cfg.Ln, cfg)
}

// Log returns the base-b logarithm of x, ln(x)/ln(b). The base must be a
// positive value other than 1; otherwise the quotient degenerates through
// the usual division policy.
func Log(x, b decimal.Decimal) (decimal.Decimal, error) {
	nm, err := Ln(x)
	if err != nil {
		return nm, err
	}
	dn, err := Ln(b)
	if err != nil {
		return dn, err
	}

	return nm.Div(dn)
}

// Log10 returns the common logarithm, ln(x) scaled by the memoized log₁₀(e).
func Log10(x decimal.Decimal) (decimal.Decimal, error) {
	l, err := Ln(x)
	if err != nil {
		return l, err
	}
	c, err := constantsFor(x.Iterations())
	if err != nil {
		return l, err
	}

	return l.Mul(c.Log10E)
}

// Log2 returns the binary logarithm, ln(x) scaled by the memoized log₂(e).
func Log2(x decimal.Decimal) (decimal.Decimal, error) {
	l, err := Ln(x)
	if err != nil {
		return l, err
	}
	c, err := constantsFor(x.Iterations())
	if err != nil {
		return l, err
	}

	return l.Mul(c.Log2E)
}
