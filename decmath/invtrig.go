// Package decmath: inverse trigonometric functions.
//
// Asin is the workhorse: a native-precision seed refined by Newton steps
// against the sine series, y ← y + (x − sin y)/cos y, one step per Trig
// budget unit. Every other inverse reduces to it through the usual
// identities, so their accuracy tracks the Asin budget.

package decmath

import (
	"math"

	"github.com/katalvlaran/decimal"
)

// Asin returns the arcsine of x in [−π/2, π/2]. |x| > 1 violates
// ErrTrigDomain; the endpoints return ±π/2 exactly as memoized.
func Asin(x decimal.Decimal) (decimal.Decimal, error) {
	cfg := x.Iterations()
	if x.IsNaN() {
		return decimal.NaNWith(cfg), nil
	}
	one := num(cfg, 1)
	if x.IsInf() || x.Abs().Greater(one) {
		return fail(cfg, decimal.ErrTrigDomain)
	}

	c, err := constantsFor(cfg)
	if err != nil {
		return decimal.NaNWith(cfg), err
	}
	if x.Abs().Equal(one) {
		if x.Sign() < 0 {
			return c.HalfPi.Neg().With(cfg), nil
		}

		return c.HalfPi.With(cfg), nil
	}

	y := decimal.OfWith(math.Asin(decimal.To[float64](x)), cfg)
	for i := 0; i < cfg.Trig; i++ {
		s, co, err := sinCos(y)
		if err != nil {
			return s, err
		}
		diff, err := x.Sub(s)
		if err != nil {
			return diff, err
		}
		step, err := diff.Div(co)
		if err != nil {
			return step, err
		}
		if y, err = y.Add(step); err != nil {
			return y, err
		}
	}

	return y, nil
}

// Acos returns the arccosine of x in [0, π]: π/2 − asin(x).
func Acos(x decimal.Decimal) (decimal.Decimal, error) {
	a, err := Asin(x)
	if err != nil || a.IsNaN() {
		return a, err
	}
	c, err := constantsFor(x.Iterations())
	if err != nil {
		return a, err
	}

	return c.HalfPi.Sub(a)
}

// Atan returns the arctangent of x in (−π/2, π/2), via
// asin(x/√(1+x²)). Atan(±Inf) = ±π/2.
func Atan(x decimal.Decimal) (decimal.Decimal, error) {
	cfg := x.Iterations()
	if x.IsNaN() {
		return decimal.NaNWith(cfg), nil
	}
	if x.IsInf() {
		c, err := constantsFor(cfg)
		if err != nil {
			return decimal.NaNWith(cfg), err
		}
		if x.Sign() < 0 {
			return c.HalfPi.Neg().With(cfg), nil
		}

		return c.HalfPi.With(cfg), nil
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
	z, err := x.Div(root)
	if err != nil {
		return z, err
	}

	return Asin(z)
}

// Atan2 returns the angle of the point (x, y) in (−π, π], following the
// math.Atan2 argument order and quadrant conventions: the sign of y selects
// the half-plane, and x = 0 resolves to ±π/2.
func Atan2(y, x decimal.Decimal) (decimal.Decimal, error) {
	cfg := y.Iterations()
	if y.IsNaN() || x.IsNaN() {
		return decimal.NaNWith(cfg), nil
	}

	c, err := constantsFor(cfg)
	if err != nil {
		return decimal.NaNWith(cfg), err
	}
	if y.IsInf() && x.IsInf() {
		// the diagonals: ±π/4 and ±3π/4
		a := c.QuarterPi
		if x.Sign() < 0 {
			if a, err = c.Pi.Sub(a); err != nil {
				return a, err
			}
		}
		if y.Sign() < 0 {
			a = a.Neg()
		}

		return a.With(cfg), nil
	}

	if x.IsZero() || (y.IsInf() && !x.IsInf()) {
		switch y.Sign() {
		case 0:
			return decimal.Zero().With(cfg), nil
		case -1:
			return c.HalfPi.Neg().With(cfg), nil
		default:
			return c.HalfPi.With(cfg), nil
		}
	}

	q, err := y.Div(x)
	if err != nil {
		return q, err
	}
	a, err := Atan(q.With(cfg))
	if err != nil {
		return a, err
	}
	if x.Sign() > 0 {
		return a, nil
	}
	// Left half-plane: shift by ±π toward y's side (π for y = 0).
	if y.Sign() < 0 {
		return a.Sub(c.Pi)
	}

	return a.Add(c.Pi)
}

// Acot returns the arccotangent of x in (0, π): π/2 − atan(x).
func Acot(x decimal.Decimal) (decimal.Decimal, error) {
	a, err := Atan(x)
	if err != nil || a.IsNaN() {
		return a, err
	}
	c, err := constantsFor(x.Iterations())
	if err != nil {
		return a, err
	}

	return c.HalfPi.Sub(a)
}

// Asec returns the arcsecant of x, acos(1/x); |x| < 1 violates
// ErrTrigDomain.
func Asec(x decimal.Decimal) (decimal.Decimal, error) {
	return invArg(x, Acos)
}

// Acsc returns the arccosecant of x, asin(1/x); |x| < 1 violates
// ErrTrigDomain.
func Acsc(x decimal.Decimal) (decimal.Decimal, error) {
	return invArg(x, Asin)
}

// invArg applies f to 1/x, resolving ±Inf to f(0) and rejecting |x| < 1
// (including zero) before the reciprocal can leave f's domain.
func invArg(x decimal.Decimal, f func(decimal.Decimal) (decimal.Decimal, error)) (decimal.Decimal, error) {
	cfg := x.Iterations()
	if x.IsNaN() {
		return decimal.NaNWith(cfg), nil
	}
	one := num(cfg, 1)
	if x.IsInf() {
		return f(decimal.Zero().With(cfg))
	}
	if x.Abs().Less(one) {
		return fail(cfg, decimal.ErrTrigDomain)
	}
	r, err := one.Div(x)
	if err != nil {
		return r, err
	}

	return f(r)
}
