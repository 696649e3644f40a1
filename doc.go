// Package decimal implements an arbitrary-precision, base-10 fixed-point
// numeric type with IEEE-754-style special values (NaN, ±Inf) and
// configurable iteration/precision budgets.
//
// 🚀 What is decimal?
//
//	A pure-Go decimal type that stores numbers as explicit digit sequences,
//	so arithmetic carries no binary-fraction rounding error:
//	  • Exact add/subtract/multiply at any magnitude
//	  • Division via Newton–Raphson reciprocal refinement
//	  • Strict NaN/Infinity algebra matching floating-point semantics
//	  • Per-value configuration — no global precision state
//	  • Rounding family: Floor, Ceil, Round, Truncate, SetPrecision
//	  • Hex export/import and generic native-type conversion
//
// ✨ Why choose decimal?
//
//   - Deterministic – cost is bounded by explicit iteration budgets
//   - Immutable – every operation returns a fresh value, operands are
//     never mutated, so concurrent read-only use is safe
//   - Tunable – precision and refinement depth are knobs, not constants
//   - Extensible – transcendental functions and sequences live in
//     subpackages built entirely on this kernel
//
// Under the hood, everything is organized under two subpackages:
//
//	decmath/ — power, log, trig, hyperbolic, Erf, combinatorics & the
//	           memoized constant generator (e, π, ln2, √2, ...)
//	seq/     — term-generator framework with a Bernoulli-number sequence
//
// Quick example:
//
//	a := decimal.MustParse("123.456")
//	b := decimal.MustParse("0.544")
//	sum, _ := a.Add(b)
//	fmt.Println(sum) // 124
//
// Dive into example_test.go files for full walkthroughs.
//
//	go get github.com/katalvlaran/decimal
package decimal
