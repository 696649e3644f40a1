// Package seq: the Bernoulli sequence.
//
// Description:
//
//	Even-index members come out of the even zeta values,
//
//	  B₂ₘ = (−1)^(m+1) · 2·(2m)! / (2π)^2m · ζ(2m),
//
//	with ζ(2m) recovered from a truncated Dirichlet lambda sum,
//
//	  ζ(2m) = 2^2m/(2^2m − 1) · Σ 1/(2j+1)^2m   for j = 0..K−1,
//
//	where K is the generator's Iterations knob. The lambda terms decay like
//	(2j+1)^(−2m), so accuracy improves sharply with the index; the budget
//	mostly matters for B₂ and B₄.
//
//	B₁ follows the −1/2 sign convention (the generating function
//	x/(eˣ−1)).
//
// Complexity: O(K + m) kernel multiplications per even term.

package seq

import (
	"sync"

	"github.com/katalvlaran/decimal"
	"github.com/katalvlaran/decimal/decmath"
)

// DefaultBernoulliIterations is the default lambda-series budget K.
const DefaultBernoulliIterations = 40

// Bernoulli generates Bernoulli numbers B₀, B₁, B₂, ... on demand. The zero
// value is NOT ready; use NewBernoulli.
type Bernoulli struct {
	// Iterations is the Dirichlet lambda summation length for even terms.
	Iterations int

	mu     sync.Mutex
	consts map[decimal.Iterations]*decmath.Constants
}

var _ TermGenerator = (*Bernoulli)(nil)

// NewBernoulli returns a generator with the default series budget.
func NewBernoulli() *Bernoulli {
	return &Bernoulli{
		Iterations: DefaultBernoulliIterations,
		consts:     make(map[decimal.Iterations]*decmath.Constants),
	}
}

// constantsFor memoizes one constant bundle per configuration; π dominates
// the even-term formula and is too costly to regenerate per call.
func (b *Bernoulli) constantsFor(cfg decimal.Iterations) (*decmath.Constants, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.consts == nil {
		b.consts = make(map[decimal.Iterations]*decmath.Constants)
	}
	if c, ok := b.consts[cfg]; ok {
		return c, nil
	}
	c, err := decmath.NewConstants(cfg)
	if err != nil {
		return nil, err
	}
	b.consts[cfg] = c

	return c, nil
}

// Term returns Bₙ for a non-negative integral index n, under n's
// configuration and error policy. Special indexes stay sticky: NaN and ±Inf
// degrade to NaN without raising.
func (b *Bernoulli) Term(n decimal.Decimal) (decimal.Decimal, error) {
	cfg := n.Iterations()
	if n.IsNaN() || n.IsInf() {
		return decimal.NaNWith(cfg), nil
	}
	if n.Sign() < 0 || !n.IsInt() {
		if cfg.ThrowOnError {
			return decimal.NaNWith(cfg), decimal.ErrFactorialDomain
		}

		return decimal.NaNWith(cfg), nil
	}

	idx, ok := n.Int64()
	if !ok {
		if cfg.ThrowOnError {
			return decimal.NaNWith(cfg), decimal.ErrOverflow
		}

		return decimal.NaNWith(cfg), nil
	}

	one := decimal.One().With(cfg)
	switch {
	case idx == 0:
		return one, nil
	case idx == 1:
		return one.Neg().Div(decimal.OfWith(2, cfg))
	case idx%2 == 1:
		return decimal.Zero().With(cfg), nil
	default:
	}

	return b.even(idx, cfg)
}

// even evaluates B₂ₘ for idx = 2m ≥ 2.
func (b *Bernoulli) even(idx int64, cfg decimal.Iterations) (decimal.Decimal, error) {
	c, err := b.constantsFor(cfg)
	if err != nil {
		return decimal.NaNWith(cfg), err
	}

	exp := decimal.OfWith(idx, cfg)
	two := decimal.OfWith(2, cfg)

	fact, err := decmath.Factorial(exp)
	if err != nil {
		return fact, err
	}
	twoPi, err := c.Pi.With(cfg).Mul(two)
	if err != nil {
		return twoPi, err
	}
	scale, err := decmath.Pow(twoPi, exp) // (2π)^2m
	if err != nil {
		return scale, err
	}

	// ζ(2m) = 2^2m/(2^2m−1) · λ(2m)
	p2, err := decmath.Pow(two, exp)
	if err != nil {
		return p2, err
	}
	p2dec, err := p2.Dec()
	if err != nil {
		return p2dec, err
	}
	corr, err := p2.Div(p2dec)
	if err != nil {
		return corr, err
	}
	lam := decimal.One().With(cfg)
	for j := int64(1); j < int64(b.Iterations); j++ {
		base := decimal.OfWith(2*j+1, cfg)
		p, err := decmath.Pow(base, exp)
		if err != nil {
			return p, err
		}
		t, err := decimal.One().With(cfg).Div(p)
		if err != nil {
			return t, err
		}
		if t.IsZero() { // below the configured precision; the tail is too
			break
		}
		if lam, err = lam.Add(t); err != nil {
			return lam, err
		}
	}

	res, err := fact.Mul(two)
	if err != nil {
		return res, err
	}
	if res, err = res.Div(scale); err != nil {
		return res, err
	}
	if res, err = res.Mul(corr); err != nil {
		return res, err
	}
	if res, err = res.Mul(lam); err != nil {
		return res, err
	}
	if (idx/2)%2 == 0 { // sign (−1)^(m+1)
		res = res.Neg()
	}

	return res, nil
}
