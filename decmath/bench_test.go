package decmath_test

import (
	"testing"

	"github.com/katalvlaran/decimal"
	"github.com/katalvlaran/decimal/decmath"
)

// BenchmarkExp measures the halve-series-square pipeline at the default
// 40-term budget.
func BenchmarkExp(b *testing.B) {
	x := decimal.MustParse("2.5")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := decmath.Exp(x); err != nil {
			b.Fatalf("Exp failed: %v", err)
		}
	}
}

// BenchmarkLn measures range reduction plus the atanh series.
func BenchmarkLn(b *testing.B) {
	x := decimal.MustParse("123.456")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := decmath.Ln(x); err != nil {
			b.Fatalf("Ln failed: %v", err)
		}
	}
}

// BenchmarkSin_DefaultBudget measures the cheap five-term configuration.
func BenchmarkSin_DefaultBudget(b *testing.B) {
	x := decimal.MustParse("1.25")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := decmath.Sin(x); err != nil {
			b.Fatalf("Sin failed: %v", err)
		}
	}
}

// BenchmarkSin_DeepBudget measures the full-precision configuration for
// comparison with the default.
func BenchmarkSin_DeepBudget(b *testing.B) {
	its := decimal.DefaultIterations()
	its.Trig = 40
	x := decimal.MustParse("1.25").With(its)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := decmath.Sin(x); err != nil {
			b.Fatalf("Sin failed: %v", err)
		}
	}
}

// BenchmarkNewConstants measures a full eager constant generation, the cost
// the memo cache amortizes away.
func BenchmarkNewConstants(b *testing.B) {
	its := decimal.DefaultIterations()
	for i := 0; i < b.N; i++ {
		if _, err := decmath.NewConstants(its); err != nil {
			b.Fatalf("NewConstants failed: %v", err)
		}
	}
}

// BenchmarkSqrt measures Newton refinement at the default budget.
func BenchmarkSqrt(b *testing.B) {
	x := decimal.MustParse("987654.321")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := decmath.Sqrt(x); err != nil {
			b.Fatalf("Sqrt failed: %v", err)
		}
	}
}
