// Package decmath: exponentials, powers and roots.
//
// Description:
//
//	Exp halves the argument into [−1/2, 1/2], runs the Maclaurin series for
//	the configured Ln budget, and squares the partial sum back up — each
//	halving costs one extra multiplication but keeps the series terms
//	shrinking fast enough for a fixed budget to be meaningful.
//
//	Pow dispatches on the exponent: integer exponents use repeated squaring
//	(exact sign handling, negative bases allowed), anything else goes
//	through exp(y·ln x) and therefore inherits the logarithm's positive-base
//	domain.
//
// Complexity: O(budget · digits²) per call.

package decmath

import (
	"github.com/katalvlaran/decimal"
)

// Exp returns e^x. Exp(+Inf) = +Inf, Exp(-Inf) = 0, Exp(NaN) = NaN.
func Exp(x decimal.Decimal) (decimal.Decimal, error) {
	cfg := x.Iterations()
	if x.IsNaN() {
		return decimal.NaNWith(cfg), nil
	}
	if x.IsInf() {
		if x.Sign() < 0 {
			return decimal.Zero().With(cfg), nil
		}

		return decimal.Inf(1).With(cfg), nil
	}

	return expCore(x, cfg.Ln, cfg)
}

// Pow returns x^y.
//
// Integer y is handled by repeated squaring, so negative bases are exact:
// Pow(-2, 3) = -8. Fractional y routes through exp(y·ln x) and requires
// x > 0; a negative base then violates the logarithm domain. Pow(x, 0) = 1
// for any finite x, including zero. 0^y is 0 for y > 0 and follows the
// division policy for y < 0.
func Pow(x, y decimal.Decimal) (decimal.Decimal, error) {
	cfg := x.Iterations()
	if x.IsNaN() || y.IsNaN() {
		return decimal.NaNWith(cfg), nil
	}
	if y.IsZero() {
		return num(cfg, 1), nil
	}
	if x.IsInf() || y.IsInf() {
		return powSpecial(x, y, cfg), nil
	}

	one := num(cfg, 1)
	if y.IsInt() {
		if n, ok := y.Int64(); ok {
			return powInt(x, n, cfg)
		}
		// Exponent beyond the native range: |x| decides the limit.
		switch x.Abs().CmpAbs(one) {
		case 0:
			return x, nil // ±1 cycles; x itself is as good an answer as any
		case -1:
			if y.Sign() > 0 {
				return decimal.Zero().With(cfg), nil
			}

			return decimal.Inf(1).With(cfg), nil
		default:
			if y.Sign() > 0 {
				return decimal.Inf(1).With(cfg), nil
			}

			return decimal.Zero().With(cfg), nil
		}
	}

	if x.IsZero() {
		if y.Sign() > 0 {
			return decimal.Zero().With(cfg), nil
		}

		return one.Div(decimal.Zero().With(cfg)) // 0^negative → division policy
	}
	if x.Sign() < 0 {
		return fail(cfg, decimal.ErrLogDomain)
	}

	l, err := Ln(x)
	if err != nil {
		return l, err
	}
	p, err := y.Mul(l)
	if err != nil {
		return p, err
	}

	return expCore(p.With(cfg), cfg.Ln, cfg)
}

// powInt evaluates x^n for a native integer exponent.
func powInt(x decimal.Decimal, n int64, cfg decimal.Iterations) (decimal.Decimal, error) {
	if n < 0 {
		p, err := intPow(x, uint64(-n), cfg)
		if err != nil {
			return p, err
		}

		return num(cfg, 1).Div(p)
	}

	return intPow(x, uint64(n), cfg)
}

// powSpecial resolves x^y when either operand is infinite.
func powSpecial(x, y decimal.Decimal, cfg decimal.Iterations) decimal.Decimal {
	one := num(cfg, 1)
	if y.IsInf() {
		switch x.Abs().CmpAbs(one) {
		case 0:
			return decimal.NaNWith(cfg) // 1^±Inf is indeterminate
		case -1:
			if y.Sign() > 0 {
				return decimal.Zero().With(cfg)
			}

			return decimal.Inf(1).With(cfg)
		default:
			if y.Sign() > 0 {
				return decimal.Inf(1).With(cfg)
			}

			return decimal.Zero().With(cfg)
		}
	}

	// x is ±Inf with finite nonzero y.
	if y.Sign() < 0 {
		return decimal.Zero().With(cfg)
	}
	sign := 1
	if x.Sign() < 0 && y.IsInt() {
		if r, err := y.Mod(num(cfg, 2)); err == nil && !r.IsZero() {
			sign = -1
		}
	}

	return decimal.Inf(sign).With(cfg)
}

// PowSelf returns x^x, the self-power. Negative non-integer x is outside the
// logarithm domain; PowSelf(0) = 1.
func PowSelf(x decimal.Decimal) (decimal.Decimal, error) {
	return Pow(x, x)
}

// Sqrt returns √x by Newton refinement under the Sqrt budget. Negative x
// violates ErrSqrtDomain; Sqrt(+Inf) = +Inf.
func Sqrt(x decimal.Decimal) (decimal.Decimal, error) {
	cfg := x.Iterations()
	if x.IsNaN() {
		return decimal.NaNWith(cfg), nil
	}
	if x.Sign() < 0 {
		return fail(cfg, decimal.ErrSqrtDomain)
	}
	if x.IsInf() {
		return decimal.Inf(1).With(cfg), nil
	}

	return sqrtCore(x, cfg.Sqrt, cfg)
}

// Hypot returns √(x² + y²) without intermediate sign surprises; any infinite
// operand dominates and yields +Inf, NaN otherwise propagates.
func Hypot(x, y decimal.Decimal) (decimal.Decimal, error) {
	cfg := x.Iterations()
	if x.IsInf() || y.IsInf() {
		return decimal.Inf(1).With(cfg), nil
	}
	if x.IsNaN() || y.IsNaN() {
		return decimal.NaNWith(cfg), nil
	}

	xx, err := x.Mul(x)
	if err != nil {
		return xx, err
	}
	yy, err := y.Mul(y)
	if err != nil {
		return yy, err
	}
	s, err := xx.Add(yy)
	if err != nil {
		return s, err
	}

	return sqrtCore(s, cfg.Sqrt, cfg)
}
