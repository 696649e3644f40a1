// Package seq defines the term-generator contract for mathematical
// sequences over the decimal kernel, together with its first resident: the
// Bernoulli numbers.
//
// 🚀 What is a term generator?
//
//	A TermGenerator produces the n-th member of a sequence on demand — no
//	materialized slices, no shared iteration state. The index arrives as a
//	Decimal so generators inherit the caller's precision configuration and
//	error policy, and the result comes back exact to that configuration.
//
// 🔢 Bernoulli:
//
//	B₀ = 1, B₁ = −1/2, every further odd index is 0, and even indexes are
//	recovered from the even zeta values: ζ(2m) relates to B₂ₘ through
//	(2π)^2m and (2m)!, with ζ(2m) itself summed as a truncated Dirichlet
//	lambda series. The summation length is the generator's Iterations knob;
//	the series gains accuracy rapidly with m, so even short budgets give
//	many exact digits beyond the first few indexes.
//
// Generators are safe for concurrent use.
package seq
