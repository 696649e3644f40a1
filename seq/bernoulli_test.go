package seq_test

import (
	"testing"

	"github.com/katalvlaran/decimal"
	"github.com/katalvlaran/decimal/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// within asserts |got − want| < tol for decimal literals.
func within(t *testing.T, want string, got decimal.Decimal, tol string, name string) {
	t.Helper()
	diff, err := got.Sub(decimal.MustParse(want))
	require.NoError(t, err, name)
	assert.True(t, diff.Abs().Less(decimal.MustParse(tol)),
		"%s = %s, want %s ± %s", name, got, want, tol)
}

// TestBernoulli_ExactAnchors pins the closed-form members: B₀, B₁ and the
// vanishing odd tail.
func TestBernoulli_ExactAnchors(t *testing.T) {
	gen := seq.NewBernoulli()

	got, err := gen.Term(decimal.Zero())
	require.NoError(t, err)
	assert.Equal(t, "1", got.String(), "B0")

	got, err = gen.Term(decimal.One())
	require.NoError(t, err)
	assert.Equal(t, "-0.5", got.String(), "B1 follows the -1/2 convention")

	for _, n := range []int{3, 5, 7, 99} {
		got, err = gen.Term(decimal.Of(n))
		require.NoError(t, err)
		assert.Equal(t, "0", got.String(), "B%d vanishes", n)
	}
}

// TestBernoulli_EvenTerms checks the zeta-derived members against their
// rational values. The truncated lambda series is coarsest at B₂ and
// tightens rapidly with the index.
func TestBernoulli_EvenTerms(t *testing.T) {
	gen := seq.NewBernoulli()
	term := func(n int) decimal.Decimal {
		d, err := gen.Term(decimal.Of(n))
		require.NoError(t, err)

		return d
	}

	within(t, "0.16666666666666666666666666666666666667", term(2), "0.01", "B2 = 1/6")
	within(t, "-0.03333333333333333333333333333333333333", term(4), "0.000001", "B4 = -1/30")
	within(t, "0.02380952380952380952380952380952380952", term(6), "0.00000001", "B6 = 1/42")
	within(t, "-0.03333333333333333333333333333333333333", term(8), "0.0000000001", "B8 = -1/30")
	within(t, "-0.25311355311355311355311355311355311355", term(12), "0.000000000001", "B12 = -691/2730")
	within(t, "-7.09215686274509803921568627450980392157", term(16), "0.000000000001", "B16 = -3617/510")
}

// TestBernoulli_IndexDomain rejects negative and fractional indexes under
// the index's own policy.
func TestBernoulli_IndexDomain(t *testing.T) {
	gen := seq.NewBernoulli()

	_, err := gen.Term(decimal.Of(-1))
	assert.ErrorIs(t, err, decimal.ErrFactorialDomain)
	_, err = gen.Term(decimal.MustParse("2.5"))
	assert.ErrorIs(t, err, decimal.ErrFactorialDomain)

	got, err := gen.Term(decimal.Inf(1))
	require.NoError(t, err, "an infinite index is sticky, not illegal")
	assert.True(t, got.IsNaN())

	silent := decimal.DefaultIterations()
	silent.ThrowOnError = false
	got, err = gen.Term(decimal.Of(-1).With(silent))
	require.NoError(t, err)
	assert.True(t, got.IsNaN(), "silent policy degrades to NaN")

	got, err = gen.Term(decimal.NaN())
	require.NoError(t, err)
	assert.True(t, got.IsNaN(), "NaN index stays sticky")
}

// TestBernoulli_ImplementsTermGenerator pins the interface contract.
func TestBernoulli_ImplementsTermGenerator(t *testing.T) {
	var gen seq.TermGenerator = seq.NewBernoulli()

	got, err := gen.Term(decimal.Of(2))
	require.NoError(t, err)
	assert.False(t, got.IsNaN())
}
