// Package decmath: the constant generator.
//
// Constants owns one memoized Decimal per named constant. All values are
// recomputed together, in dependency order, whenever the iteration
// configuration is (re)applied through SetIterations; between
// reconfigurations they are stable. There is no implicit recomputation.
//
// Derivations:
//
//	e      — Σ 1/n!                        (E budget)
//	1/π    — Chudnovsky series             (Pi budget, ~14 digits/term)
//	π      — reciprocal of 1/π
//	ln2    — 2·atanh(1/3) series           (Ln budget)
//	ln10   — logarithm function            (Ln budget)
//	√2     — Newton refinement             (Sqrt budget)
//	π/2, π/4, 2/π, 2/√π, log2(e), log10(e), 1/√2 — derived

package decmath

import (
	"sync"

	"github.com/katalvlaran/decimal"
)

// Constants holds one eagerly generated value per named constant.
type Constants struct {
	E             decimal.Decimal // e
	Pi            decimal.Decimal // π
	InvPi         decimal.Decimal // 1/π
	HalfPi        decimal.Decimal // π/2
	QuarterPi     decimal.Decimal // π/4
	Ln2           decimal.Decimal // ln 2
	Ln10          decimal.Decimal // ln 10
	TwoOverPi     decimal.Decimal // 2/π
	TwoOverSqrtPi decimal.Decimal // 2/√π
	Log2E         decimal.Decimal // log₂ e
	Log10E        decimal.Decimal // log₁₀ e
	Sqrt2         decimal.Decimal // √2
	InvSqrt2      decimal.Decimal // 1/√2

	its decimal.Iterations
}

// NewConstants generates all constants under its and returns the bundle.
func NewConstants(its decimal.Iterations) (*Constants, error) {
	c := &Constants{}
	if err := c.SetIterations(its); err != nil {
		return nil, err
	}

	return c, nil
}

// Iterations returns the configuration the constants were generated with.
func (c *Constants) Iterations() decimal.Iterations { return c.its }

// SetIterations rebinds the configuration and regenerates every constant
// in dependency order. Values remain untouched on error.
func (c *Constants) SetIterations(its decimal.Iterations) error {
	g := Constants{its: its}
	var err error

	if g.E, err = genE(its); err != nil {
		return err
	}
	if g.InvPi, err = genInvPi(its); err != nil {
		return err
	}
	one := num(its, 1)
	two := num(its, 2)
	if g.Pi, err = one.Div(g.InvPi); err != nil {
		return err
	}
	if g.HalfPi, err = g.Pi.Mul(half(its)); err != nil {
		return err
	}
	if g.QuarterPi, err = g.Pi.Div(num(its, 4)); err != nil {
		return err
	}
	if g.Ln2, err = ln2Core(its.Ln, its); err != nil {
		return err
	}
	if g.Ln10, err = lnCore(num(its, 10), g.Ln2, its.Ln, its); err != nil {
		return err
	}
	if g.TwoOverPi, err = g.InvPi.Mul(two); err != nil {
		return err
	}
	sqrtPi, err := sqrtCore(g.Pi, its.Sqrt, its)
	if err != nil {
		return err
	}
	if g.TwoOverSqrtPi, err = two.Div(sqrtPi); err != nil {
		return err
	}
	if g.Log2E, err = one.Div(g.Ln2); err != nil {
		return err
	}
	if g.Log10E, err = one.Div(g.Ln10); err != nil {
		return err
	}
	if g.Sqrt2, err = sqrtCore(two, its.Sqrt, its); err != nil {
		return err
	}
	if g.InvSqrt2, err = one.Div(g.Sqrt2); err != nil {
		return err
	}

	*c = g

	return nil
}

// genE sums 1/n! for the configured number of terms.
func genE(its decimal.Iterations) (decimal.Decimal, error) {
	one := num(its, 1)
	sum, term := one, one
	var err error
	for n := 1; n <= its.E; n++ {
		if term, err = term.Div(num(its, int64(n))); err != nil {
			return term, err
		}
		if sum, err = sum.Add(term); err != nil {
			return sum, err
		}
	}

	return sum, nil
}

// genInvPi evaluates the Chudnovsky series
//
//	1/π = 12 · Σ (−1)^k (6k)!(13591409 + 545140134k)
//	           / ((3k)!(k!)³ · 640320^(3k)) / 640320^(3/2)
//
// truncated at the Pi budget. The factorial-over-power core is carried
// incrementally from one term to the next — its rising and falling factors
// cancel step by step, so no intermediate ever materializes the raw
// factorials, whose integer parts would outgrow the precision bound within
// a few terms. 640320^(3/2) = 640320·√640320.
func genInvPi(its decimal.Iterations) (decimal.Decimal, error) {
	sum := decimal.Zero().With(its)
	core := num(its, 1) // (6k)! / ((3k)!(k!)³·640320^(3k)), advanced per term
	for k := 0; k < its.Pi; k++ {
		lin := num(its, 13591409+545140134*int64(k))
		term, err := core.Mul(lin)
		if err != nil {
			return term, err
		}
		if k%2 == 1 {
			term = term.Neg()
		}
		if sum, err = sum.Add(term); err != nil {
			return sum, err
		}
		if core.IsZero() {
			break // the tail fell below the configured precision
		}

		// Advance the core to k+1: six rising numerator factors against
		// (3k+1)(3k+2)(3k+3), (k+1)³ and 640320³. The core shrinks ~14
		// decimal orders per step, so the interleaved products stay small.
		for f := int64(1); f <= 6; f++ {
			if core, err = core.Mul(num(its, 6*int64(k)+f)); err != nil {
				return core, err
			}
		}
		for f := int64(1); f <= 3; f++ {
			if core, err = core.Div(num(its, 3*int64(k)+f)); err != nil {
				return core, err
			}
		}
		next := num(its, int64(k)+1)
		for i := 0; i < 3; i++ {
			if core, err = core.Div(next); err != nil {
				return core, err
			}
		}
		for i := 0; i < 3; i++ {
			if core, err = core.Div(num(its, 640320)); err != nil {
				return core, err
			}
		}
	}

	root, err := sqrtCore(num(its, 640320), its.Sqrt, its)
	if err != nil {
		return root, err
	}
	scale, err := num(its, 640320).Mul(root)
	if err != nil {
		return scale, err
	}
	res, err := sum.Mul(num(its, 12))
	if err != nil {
		return res, err
	}

	return res.Div(scale)
}

// constCache memoizes one Constants bundle per configuration, feeding the
// trig and logarithm functions. Guarded for concurrent read-only callers.
var (
	constMu    sync.Mutex
	constCache = map[decimal.Iterations]*Constants{}
)

// constantsFor returns the memoized bundle for its, generating it on first
// use.
func constantsFor(its decimal.Iterations) (*Constants, error) {
	constMu.Lock()
	defer constMu.Unlock()
	if c, ok := constCache[its]; ok {
		return c, nil
	}
	c, err := NewConstants(its)
	if err != nil {
		return nil, err
	}
	constCache[its] = c

	return c, nil
}
