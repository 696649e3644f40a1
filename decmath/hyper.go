// Package decmath: hyperbolic functions and their inverses.
//
// The direct family shares one exponential pair, e^x and its reciprocal,
// evaluated under the Hyp budget; infinities are resolved up front because
// the quotient identities would otherwise collapse to Inf/Inf. The inverse
// family is logarithmic: asinh/acosh/atanh are ln-identities, so out-of-range
// arguments surface as ErrTrigDomain here and as the division policy at the
// |x| = 1 poles.

package decmath

import (
	"github.com/katalvlaran/decimal"
)

// expPair returns e^x and e^−x under the Hyp budget.
func expPair(x decimal.Decimal, cfg decimal.Iterations) (decimal.Decimal, decimal.Decimal, error) {
	ex, err := expCore(x, cfg.Hyp, cfg)
	if err != nil {
		return ex, ex, err
	}
	em, err := num(cfg, 1).Div(ex)

	return ex, em, err
}

// Sinh returns (e^x − e^−x)/2. Sinh(±Inf) = ±Inf.
func Sinh(x decimal.Decimal) (decimal.Decimal, error) {
	cfg := x.Iterations()
	if x.IsNaN() || x.IsInf() {
		return x.With(cfg), nil
	}
	ex, em, err := expPair(x, cfg)
	if err != nil {
		return ex, err
	}
	d, err := ex.Sub(em)
	if err != nil {
		return d, err
	}

	return d.Mul(half(cfg))
}

// Cosh returns (e^x + e^−x)/2. Cosh(±Inf) = +Inf.
func Cosh(x decimal.Decimal) (decimal.Decimal, error) {
	cfg := x.Iterations()
	if x.IsNaN() {
		return decimal.NaNWith(cfg), nil
	}
	if x.IsInf() {
		return decimal.Inf(1).With(cfg), nil
	}
	ex, em, err := expPair(x, cfg)
	if err != nil {
		return ex, err
	}
	s, err := ex.Add(em)
	if err != nil {
		return s, err
	}

	return s.Mul(half(cfg))
}

// Tanh returns sinh/cosh as (e^x − e^−x)/(e^x + e^−x). The ±Inf limits are
// ±1; left to the identity they would degrade to Inf/Inf = NaN.
func Tanh(x decimal.Decimal) (decimal.Decimal, error) {
	cfg := x.Iterations()
	if x.IsNaN() {
		return decimal.NaNWith(cfg), nil
	}
	if x.IsInf() {
		if x.Sign() < 0 {
			return num(cfg, -1), nil
		}

		return num(cfg, 1), nil
	}
	ex, em, err := expPair(x, cfg)
	if err != nil {
		return ex, err
	}
	nm, err := ex.Sub(em)
	if err != nil {
		return nm, err
	}
	dn, err := ex.Add(em)
	if err != nil {
		return dn, err
	}

	return nm.Div(dn)
}

// Coth returns 1/tanh. Coth(0) follows the division policy; Coth(±Inf) = ±1.
func Coth(x decimal.Decimal) (decimal.Decimal, error) {
	t, err := Tanh(x)
	if err != nil {
		return t, err
	}

	return num(x.Iterations(), 1).Div(t)
}

// Sech returns 1/cosh, with Sech(±Inf) = 0.
func Sech(x decimal.Decimal) (decimal.Decimal, error) {
	c, err := Cosh(x)
	if err != nil {
		return c, err
	}

	return num(x.Iterations(), 1).Div(c)
}

// Csch returns 1/sinh. Csch(0) follows the division policy;
// Csch(±Inf) = 0.
func Csch(x decimal.Decimal) (decimal.Decimal, error) {
	s, err := Sinh(x)
	if err != nil {
		return s, err
	}

	return num(x.Iterations(), 1).Div(s)
}

// Asinh returns ln(x + √(x² + 1)); defined for every finite x, and
// Asinh(±Inf) = ±Inf.
func Asinh(x decimal.Decimal) (decimal.Decimal, error) {
	cfg := x.Iterations()
	if x.IsNaN() || x.IsInf() {
		return x.With(cfg), nil
	}
	xx, err := x.Mul(x)
	if err != nil {
		return xx, err
	}
	s, err := xx.Add(num(cfg, 1))
	if err != nil {
		return s, err
	}
	root, err := sqrtCore(s, cfg.Sqrt, cfg)
	if err != nil {
		return root, err
	}
	arg, err := x.Add(root)
	if err != nil {
		return arg, err
	}

	return Ln(arg)
}

// Acosh returns ln(x + √(x² − 1)); x < 1 violates ErrTrigDomain, and
// Acosh(+Inf) = +Inf.
func Acosh(x decimal.Decimal) (decimal.Decimal, error) {
	cfg := x.Iterations()
	if x.IsNaN() {
		return decimal.NaNWith(cfg), nil
	}
	one := num(cfg, 1)
	if x.IsInf() {
		if x.Sign() < 0 {
			return fail(cfg, decimal.ErrTrigDomain)
		}

		return decimal.Inf(1).With(cfg), nil
	}
	if x.Less(one) {
		return fail(cfg, decimal.ErrTrigDomain)
	}
	xx, err := x.Mul(x)
	if err != nil {
		return xx, err
	}
	s, err := xx.Sub(one)
	if err != nil {
		return s, err
	}
	root, err := sqrtCore(s, cfg.Sqrt, cfg)
	if err != nil {
		return root, err
	}
	arg, err := x.Add(root)
	if err != nil {
		return arg, err
	}

	return Ln(arg)
}

// Atanh returns ½·ln((1+x)/(1−x)) for |x| < 1; |x| > 1 violates
// ErrTrigDomain, and the |x| = 1 poles surface through the division policy
// as ±Inf.
func Atanh(x decimal.Decimal) (decimal.Decimal, error) {
	cfg := x.Iterations()
	if x.IsNaN() {
		return decimal.NaNWith(cfg), nil
	}
	one := num(cfg, 1)
	if x.IsInf() || x.Abs().Greater(one) {
		return fail(cfg, decimal.ErrTrigDomain)
	}
	nm, err := one.Add(x)
	if err != nil {
		return nm, err
	}
	dn, err := one.Sub(x)
	if err != nil {
		return dn, err
	}
	q, err := nm.Div(dn)
	if err != nil {
		return q, err
	}
	l, err := Ln(q)
	if err != nil || l.Kind() != decimal.KindNormal {
		return l, err
	}

	return l.Mul(half(cfg))
}

// Acoth returns ½·ln((x+1)/(x−1)) for |x| > 1; |x| < 1 violates
// ErrTrigDomain, and Acoth(±Inf) = 0.
func Acoth(x decimal.Decimal) (decimal.Decimal, error) {
	cfg := x.Iterations()
	if x.IsNaN() {
		return decimal.NaNWith(cfg), nil
	}
	if x.IsInf() {
		return decimal.Zero().With(cfg), nil
	}
	one := num(cfg, 1)
	if x.Abs().Less(one) {
		return fail(cfg, decimal.ErrTrigDomain)
	}
	nm, err := x.Add(one)
	if err != nil {
		return nm, err
	}
	dn, err := x.Sub(one)
	if err != nil {
		return dn, err
	}
	q, err := nm.Div(dn)
	if err != nil {
		return q, err
	}
	l, err := Ln(q)
	if err != nil || l.Kind() != decimal.KindNormal {
		return l, err
	}

	return l.Mul(half(cfg))
}

// Asech returns acosh(1/x) for 0 < x ≤ 1; anything else violates
// ErrTrigDomain (0 itself follows the division policy toward +Inf).
func Asech(x decimal.Decimal) (decimal.Decimal, error) {
	cfg := x.Iterations()
	if x.IsNaN() {
		return decimal.NaNWith(cfg), nil
	}
	one := num(cfg, 1)
	if x.IsInf() || x.Sign() < 0 || x.Greater(one) {
		return fail(cfg, decimal.ErrTrigDomain)
	}
	r, err := one.Div(x)
	if err != nil {
		return r, err
	}

	return Acosh(r)
}

// Acsch returns asinh(1/x) for x ≠ 0; Acsch(±Inf) = 0 and Acsch(0) follows
// the division policy.
func Acsch(x decimal.Decimal) (decimal.Decimal, error) {
	cfg := x.Iterations()
	if x.IsNaN() {
		return decimal.NaNWith(cfg), nil
	}
	if x.IsInf() {
		return decimal.Zero().With(cfg), nil
	}
	r, err := num(cfg, 1).Div(x)
	if err != nil {
		return r, err
	}

	return Asinh(r)
}
