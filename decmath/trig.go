// Package decmath: the trigonometric family.
//
// Description:
//
//	Sin and Cos share one core: wrap the phase into [0, 2π), fold into a
//	quadrant of width π/2, evaluate both Maclaurin series on the small
//	remainder for Trig-budget terms, and swap/negate per quadrant. The
//	remaining four functions are quotients of that pair, so pole behavior
//	(Tan near π/2, Cot near 0) follows the division policy without any
//	dedicated handling.
//
//	Special operands stay sticky: NaN and ±Inf map to NaN without raising,
//	the phase of an infinity being undefined rather than illegal.
//
// Complexity: O(Trig · digits²) per call, plus one phase-wrapping division.

package decmath

import (
	"github.com/katalvlaran/decimal"
)

// TrigPhaseCorrect wraps x into [0, 2π): x − ⌊x/2π⌋·2π. The wrapped phase
// feeds the series directly; callers rarely need it, but exposing it keeps
// reduction behavior testable on its own.
func TrigPhaseCorrect(x decimal.Decimal) (decimal.Decimal, error) {
	cfg := x.Iterations()
	if x.IsNaN() || x.IsInf() {
		return decimal.NaNWith(cfg), nil
	}

	c, err := constantsFor(cfg)
	if err != nil {
		return decimal.NaNWith(cfg), err
	}
	twoPi, err := c.Pi.Mul(num(cfg, 2))
	if err != nil {
		return twoPi, err
	}
	q, err := x.Div(twoPi)
	if err != nil {
		return q, err
	}
	f, err := q.Floor()
	if err != nil {
		return f, err
	}
	w, err := f.Mul(twoPi)
	if err != nil {
		return w, err
	}

	return x.Sub(w)
}

// sinCos evaluates both series on the quadrant-folded remainder and undoes
// the fold. Quadrant q covers [q·π/2, (q+1)·π/2).
func sinCos(x decimal.Decimal) (sin, cos decimal.Decimal, err error) {
	cfg := x.Iterations()
	r, err := TrigPhaseCorrect(x)
	if err != nil || r.IsNaN() {
		return r, r, err
	}

	c, err := constantsFor(cfg)
	if err != nil {
		return decimal.NaNWith(cfg), decimal.NaNWith(cfg), err
	}
	qd, err := r.Div(c.HalfPi)
	if err != nil {
		return qd, qd, err
	}
	fq, err := qd.Floor()
	if err != nil {
		return fq, fq, err
	}
	q := decimal.To[int](fq) & 3
	w, err := fq.Mul(c.HalfPi)
	if err != nil {
		return w, w, err
	}
	s, err := r.Sub(w)
	if err != nil {
		return s, s, err
	}

	sinS, cosS, err := maclaurinSinCos(s, cfg)
	if err != nil {
		return sinS, cosS, err
	}
	switch q {
	case 0:
		return sinS, cosS, nil
	case 1:
		return cosS, sinS.Neg(), nil
	case 2:
		return sinS.Neg(), cosS.Neg(), nil
	default:
		return cosS.Neg(), sinS, nil
	}
}

// maclaurinSinCos runs both alternating series on s ∈ [0, π/2) for the Trig
// budget. Each extra step extends both sums by one term.
func maclaurinSinCos(s decimal.Decimal, cfg decimal.Iterations) (decimal.Decimal, decimal.Decimal, error) {
	s2, err := s.Mul(s)
	if err != nil {
		return s2, s2, err
	}
	s2 = s2.Neg() // the series alternate; folding the sign into s² is cheaper

	sinSum, sinTerm := s, s
	cosSum, cosTerm := num(cfg, 1), num(cfg, 1)
	for n := 1; n <= cfg.Trig; n++ {
		// cos term: ·(−s²)/((2n−1)(2n)); sin term: ·(−s²)/((2n)(2n+1)).
		if cosTerm, err = cosTerm.Mul(s2); err != nil {
			return sinSum, cosSum, err
		}
		if cosTerm, err = cosTerm.Div(num(cfg, int64(2*n-1)*int64(2*n))); err != nil {
			return sinSum, cosSum, err
		}
		if cosSum, err = cosSum.Add(cosTerm); err != nil {
			return sinSum, cosSum, err
		}

		if sinTerm, err = sinTerm.Mul(s2); err != nil {
			return sinSum, cosSum, err
		}
		if sinTerm, err = sinTerm.Div(num(cfg, int64(2*n)*int64(2*n+1))); err != nil {
			return sinSum, cosSum, err
		}
		if sinSum, err = sinSum.Add(sinTerm); err != nil {
			return sinSum, cosSum, err
		}
	}

	return sinSum, cosSum, nil
}

// Sin returns the sine of x (radians).
func Sin(x decimal.Decimal) (decimal.Decimal, error) {
	s, _, err := sinCos(x)

	return s, err
}

// Cos returns the cosine of x (radians).
func Cos(x decimal.Decimal) (decimal.Decimal, error) {
	_, c, err := sinCos(x)

	return c, err
}

// Tan returns sin(x)/cos(x); near odd multiples of π/2 the quotient grows
// without a dedicated pole check.
func Tan(x decimal.Decimal) (decimal.Decimal, error) {
	s, c, err := sinCos(x)
	if err != nil {
		return s, err
	}

	return s.Div(c)
}

// Cot returns cos(x)/sin(x). Cot(0) follows the division policy.
func Cot(x decimal.Decimal) (decimal.Decimal, error) {
	s, c, err := sinCos(x)
	if err != nil {
		return s, err
	}

	return c.Div(s)
}

// Sec returns 1/cos(x).
func Sec(x decimal.Decimal) (decimal.Decimal, error) {
	_, c, err := sinCos(x)
	if err != nil {
		return c, err
	}

	return num(x.Iterations(), 1).Div(c)
}

// Csc returns 1/sin(x). Csc(0) follows the division policy.
func Csc(x decimal.Decimal) (decimal.Decimal, error) {
	s, _, err := sinCos(x)
	if err != nil {
		return s, err
	}

	return num(x.Iterations(), 1).Div(s)
}
