// Package decmath provides the transcendental function layer over the
// decimal kernel: powers, logarithms, trigonometric and hyperbolic families
// with their inverses, the error function, combinatorics, and a memoized
// generator for mathematical constants.
//
// 🚀 How does it work?
//
//	Every function follows one pattern: reduce the argument into a
//	convergence-friendly range, then evaluate a fixed number of series or
//	identity steps through the kernel's exact arithmetic:
//	  • Pow     — repeated squaring for integer exponents, exp(y·ln x) else
//	  • Ln      — scale out powers of two, then an atanh series
//	  • Sin/Cos — phase wrap into [0,2π), quadrant fold, Maclaurin series
//	  • Sinh…   — exponential identities over a shared Exp core
//	  • Asin    — Newton refinement against the Sin series
//	  • Erf     — Maclaurin series scaled by 2/√π
//
// ⚙️ Budgets, not bounds:
//
//	Iteration counts come from the argument's own configuration
//	(decimal.Iterations): Ln rounds for log/exp/pow, Hyp for hyperbolics
//	and Erf, Sqrt for roots, Trig for the trigonometric family. Each extra
//	step adds roughly one more correct series term; there is no dynamic
//	convergence check, so the budget is a deterministic cost/precision
//	knob rather than a guaranteed error bound.
//
// Constants (e, π, ln2, √2, ...) are generated eagerly per configuration
// by Constants and memoized; see constants.go.
//
// Performance: a call costs O(iterations · digitCount²), since every series
// step performs at least one grade-school multiplication.
package decmath
