package decmath_test

import (
	"testing"

	"github.com/katalvlaran/decimal"
	"github.com/katalvlaran/decimal/decmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHyperbolic_Anchors pins zeros, reference values and the Inf limits
// that the raw exponential identities would miss.
func TestHyperbolic_Anchors(t *testing.T) {
	tol := "0.000000000000000000000000000001" // 1e-30

	got, err := decmath.Sinh(decimal.Zero())
	require.NoError(t, err)
	assert.Equal(t, "0", got.String())

	got, err = decmath.Cosh(decimal.Zero())
	require.NoError(t, err)
	assert.Equal(t, "1", got.String())

	got, err = decmath.Sinh(decimal.One())
	require.NoError(t, err)
	within(t, "1.17520119364380145688238185059560081516", got, tol, "sinh 1")

	got, err = decmath.Cosh(decimal.One())
	require.NoError(t, err)
	within(t, "1.54308063481524377847790562075706168260", got, tol, "cosh 1")

	got, err = decmath.Tanh(decimal.One())
	require.NoError(t, err)
	within(t, "0.76159415595576488811945828260479359041", got, tol, "tanh 1")

	got, err = decmath.Sinh(decimal.Of(-1))
	require.NoError(t, err)
	within(t, "-1.17520119364380145688238185059560081516", got, tol, "sinh is odd")
}

// TestHyperbolic_InfLimits drives the function-level saturation rules.
func TestHyperbolic_InfLimits(t *testing.T) {
	cases := []struct {
		name string
		f    func(decimal.Decimal) (decimal.Decimal, error)
		x    decimal.Decimal
		want string
	}{
		{"Sinh(+Inf)", decmath.Sinh, decimal.Inf(1), "Inf"},
		{"Sinh(-Inf)", decmath.Sinh, decimal.Inf(-1), "-Inf"},
		{"Cosh(-Inf)", decmath.Cosh, decimal.Inf(-1), "Inf"},
		{"Tanh(+Inf)", decmath.Tanh, decimal.Inf(1), "1"},
		{"Tanh(-Inf)", decmath.Tanh, decimal.Inf(-1), "-1"},
		{"Coth(+Inf)", decmath.Coth, decimal.Inf(1), "1"},
		{"Sech(+Inf)", decmath.Sech, decimal.Inf(1), "0"},
		{"Csch(-Inf)", decmath.Csch, decimal.Inf(-1), "0"},
	}
	for _, tc := range cases {
		got, err := tc.f(tc.x)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got.String(), tc.name)
	}
}

// TestHyperbolic_Poles covers the reciprocal family at zero.
func TestHyperbolic_Poles(t *testing.T) {
	_, err := decmath.Coth(decimal.Zero())
	assert.ErrorIs(t, err, decimal.ErrDivisionByZero)
	_, err = decmath.Csch(decimal.Zero())
	assert.ErrorIs(t, err, decimal.ErrDivisionByZero)

	got, err := decmath.Sech(decimal.Zero())
	require.NoError(t, err)
	assert.Equal(t, "1", got.String(), "sech 0 = 1/cosh 0")
}

// TestInverseHyperbolic_Anchors checks the logarithmic identities.
func TestInverseHyperbolic_Anchors(t *testing.T) {
	tol := "0.0000000000000000000000001"

	got, err := decmath.Asinh(decimal.Zero())
	require.NoError(t, err)
	assert.Equal(t, "0", got.String())

	got, err = decmath.Asinh(decimal.One())
	require.NoError(t, err)
	within(t, "0.88137358701954302523260932497979230902", got, tol, "asinh 1 = ln(1+√2)")

	got, err = decmath.Acosh(decimal.One())
	require.NoError(t, err)
	assert.Equal(t, "0", got.String(), "acosh 1 is exactly 0")

	got, err = decmath.Acosh(decimal.Of(2))
	require.NoError(t, err)
	within(t, "1.31695789692481670862504634730796844402", got, tol, "acosh 2")

	got, err = decmath.Atanh(decimal.MustParse("0.5"))
	require.NoError(t, err)
	within(t, "0.54930614433405484569762261846126285232", got, tol, "atanh 0.5 = ln(3)/2")

	got, err = decmath.Acoth(decimal.Of(2))
	require.NoError(t, err)
	within(t, "0.54930614433405484569762261846126285232", got, tol, "acoth 2 = atanh 1/2")

	got, err = decmath.Acsch(decimal.One())
	require.NoError(t, err)
	within(t, "0.88137358701954302523260932497979230902", got, tol, "acsch 1 = asinh 1")

	got, err = decmath.Asech(decimal.One())
	require.NoError(t, err)
	assert.Equal(t, "0", got.String(), "asech 1 = acosh 1")
}

// TestInverseHyperbolic_DomainAndPoles drives the excluded ranges and the
// |x| = 1 poles of Atanh.
func TestInverseHyperbolic_DomainAndPoles(t *testing.T) {
	_, err := decmath.Acosh(decimal.MustParse("0.5"))
	assert.ErrorIs(t, err, decimal.ErrTrigDomain)
	_, err = decmath.Atanh(decimal.Of(2))
	assert.ErrorIs(t, err, decimal.ErrTrigDomain)
	_, err = decmath.Acoth(decimal.MustParse("0.5"))
	assert.ErrorIs(t, err, decimal.ErrTrigDomain)
	_, err = decmath.Asech(decimal.Of(2))
	assert.ErrorIs(t, err, decimal.ErrTrigDomain)

	// The pole itself surfaces through the division policy, not the domain
	// check: under the silent policy atanh 1 is the +Inf limit.
	_, err = decmath.Atanh(decimal.One())
	assert.ErrorIs(t, err, decimal.ErrIllegalOperation)

	silent := decimal.DefaultIterations()
	silent.ThrowOnError = false
	got, err := decmath.Atanh(decimal.One().With(silent))
	require.NoError(t, err)
	assert.Equal(t, "Inf", got.String())

	got, err = decmath.Acoth(decimal.Inf(-1))
	require.NoError(t, err)
	assert.Equal(t, "0", got.String(), "acoth flattens at infinity")

	got, err = decmath.Asinh(decimal.Inf(-1))
	require.NoError(t, err)
	assert.Equal(t, "-Inf", got.String())
}
