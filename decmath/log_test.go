package decmath_test

import (
	"testing"

	"github.com/katalvlaran/decimal"
	"github.com/katalvlaran/decimal/decmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLn_ReferenceValues pins the natural log on its anchors.
func TestLn_ReferenceValues(t *testing.T) {
	got, err := decmath.Ln(decimal.One())
	require.NoError(t, err)
	assert.Equal(t, "0", got.String(), "ln 1 is exactly 0")

	got, err = decmath.Ln(decimal.Of(2))
	require.NoError(t, err)
	digitPrefix(t, "0.69314718055994530941", got, "ln2")

	got, err = decmath.Ln(decimal.Of(10))
	require.NoError(t, err)
	digitPrefix(t, "2.30258509299404568401", got, "ln10")

	got, err = decmath.Ln(decimal.MustParse("0.5"))
	require.NoError(t, err)
	within(t, "-0.69314718055994530941723212145817656807", got,
		"0.000000000000000000000000000001", "ln 0.5")

	got, err = decmath.Ln(decimal.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, "Inf", got.String())
}

// TestLn_DomainPolicy drives the non-positive argument handling under both
// policies.
func TestLn_DomainPolicy(t *testing.T) {
	_, err := decmath.Ln(decimal.Zero())
	assert.ErrorIs(t, err, decimal.ErrLogDomain, "ln 0 raises under ThrowOnError")

	_, err = decmath.Ln(decimal.Of(-3))
	assert.ErrorIs(t, err, decimal.ErrLogDomain)

	silent := decimal.DefaultIterations()
	silent.ThrowOnError = false
	got, err := decmath.Ln(decimal.Zero().With(silent))
	require.NoError(t, err)
	assert.Equal(t, "-Inf", got.String(), "silent ln 0 is the pole limit")

	got, err = decmath.Ln(decimal.Of(-3).With(silent))
	require.NoError(t, err)
	assert.True(t, got.IsNaN(), "silent ln of a negative is NaN")

	got, err = decmath.Ln(decimal.NaN())
	require.NoError(t, err)
	assert.True(t, got.IsNaN())
}

// TestLogFamily covers the based logarithms against integer anchors.
func TestLogFamily(t *testing.T) {
	tol := "0.000000000000000000000000000001" // 1e-30

	got, err := decmath.Log(decimal.Of(8), decimal.Of(2))
	require.NoError(t, err)
	within(t, "3", got, tol, "log2 8")

	got, err = decmath.Log10(decimal.Of(1000))
	require.NoError(t, err)
	within(t, "3", got, tol, "log10 1000")

	got, err = decmath.Log10(decimal.MustParse("0.01"))
	require.NoError(t, err)
	within(t, "-2", got, tol, "log10 0.01")

	got, err = decmath.Log2(decimal.Of(1024))
	require.NoError(t, err)
	within(t, "10", got, tol, "log2 1024")

	_, err = decmath.Log10(decimal.Of(-1))
	assert.ErrorIs(t, err, decimal.ErrLogDomain, "based logs inherit the Ln domain")
}
