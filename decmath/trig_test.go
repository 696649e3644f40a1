package decmath_test

import (
	"testing"

	"github.com/katalvlaran/decimal"
	"github.com/katalvlaran/decimal/decmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deepTrig returns the default configuration with the trigonometric series
// budget raised from its cheap default to full precision.
func deepTrig() decimal.Iterations {
	its := decimal.DefaultIterations()
	its.Trig = 40

	return its
}

// TestTrigPhaseCorrect wraps arguments into [0, 2π).
func TestTrigPhaseCorrect(t *testing.T) {
	got, err := decmath.TrigPhaseCorrect(decimal.Zero())
	require.NoError(t, err)
	assert.Equal(t, "0", got.String())

	got, err = decmath.TrigPhaseCorrect(decimal.Of(7)) // 7 − 2π
	require.NoError(t, err)
	within(t, "0.71681469282041352307471323344099423161", got,
		"0.0000000000000000000000001", "wrap(7)")

	got, err = decmath.TrigPhaseCorrect(decimal.Of(-1)) // 2π − 1
	require.NoError(t, err)
	within(t, "5.28318530717958647692528676655900576839", got,
		"0.0000000000000000000000001", "wrap(-1)")

	got, err = decmath.TrigPhaseCorrect(decimal.Inf(1))
	require.NoError(t, err)
	assert.True(t, got.IsNaN(), "an infinite phase is undefined")
}

// TestSinCos_Anchors pins exact zeros and deep-budget reference values.
func TestSinCos_Anchors(t *testing.T) {
	got, err := decmath.Sin(decimal.Zero())
	require.NoError(t, err)
	assert.Equal(t, "0", got.String(), "sin 0 is exactly 0")

	got, err = decmath.Cos(decimal.Zero())
	require.NoError(t, err)
	assert.Equal(t, "1", got.String(), "cos 0 is exactly 1")

	tol := "0.0000000000000000000000001" // 1e-25, below the π budget error
	one := decimal.One().With(deepTrig())

	got, err = decmath.Sin(one)
	require.NoError(t, err)
	within(t, "0.84147098480789650665250232163029899962", got, tol, "sin 1")

	got, err = decmath.Cos(one)
	require.NoError(t, err)
	within(t, "0.54030230586813971740093660744297660373", got, tol, "cos 1")

	got, err = decmath.Sin(decimal.Of(-1).With(deepTrig()))
	require.NoError(t, err)
	within(t, "-0.84147098480789650665250232163029899962", got, tol, "sin is odd")
}

// TestTrig_QuadrantFold checks arguments landing in every quadrant.
func TestTrig_QuadrantFold(t *testing.T) {
	tol := "0.0000000000000000000000001"
	its := deepTrig()

	got, err := decmath.Sin(decimal.Of(2).With(its)) // quadrant 1
	require.NoError(t, err)
	within(t, "0.90929742682568169539601986591174484270", got, tol, "sin 2")

	got, err = decmath.Cos(decimal.Of(4).With(its)) // quadrant 2
	require.NoError(t, err)
	within(t, "-0.65364362086361191463916818309775038142", got, tol, "cos 4")

	got, err = decmath.Sin(decimal.Of(5).With(its)) // quadrant 3
	require.NoError(t, err)
	within(t, "-0.95892427466313846889315440615599397335", got, tol, "sin 5")

	// Three full turns of reduction; the reference here is float-sourced,
	// so the check stops at its trustworthy digits.
	got, err = decmath.Cos(decimal.Of(20).With(its))
	require.NoError(t, err)
	within(t, "0.40808206181339196", got, "0.000000000000001", "cos 20")
}

// TestTrig_DefaultBudgetIsCoarse documents the cheap default: five series
// terms keep ~7 digits near π/2, a deliberate cost/precision trade.
func TestTrig_DefaultBudgetIsCoarse(t *testing.T) {
	got, err := decmath.Sin(decimal.One())
	require.NoError(t, err)
	within(t, "0.8414709848078965", got, "0.000001", "sin 1 at default budget")
}

// TestTrig_Quotients covers Tan/Cot/Sec/Csc including their poles.
func TestTrig_Quotients(t *testing.T) {
	tol := "0.0000000000000000000000001"
	its := deepTrig()

	got, err := decmath.Tan(decimal.One().With(its))
	require.NoError(t, err)
	within(t, "1.55740772465490223050697480745836017308", got, tol, "tan 1")

	got, err = decmath.Cot(decimal.One().With(its))
	require.NoError(t, err)
	within(t, "0.64209261593433070300641998659426562023", got, tol, "cot 1")

	got, err = decmath.Sec(decimal.Zero())
	require.NoError(t, err)
	assert.Equal(t, "1", got.String(), "sec 0 is exactly 1")

	_, err = decmath.Cot(decimal.Zero())
	assert.ErrorIs(t, err, decimal.ErrDivisionByZero, "cot 0 is a pole")
	_, err = decmath.Csc(decimal.Zero())
	assert.ErrorIs(t, err, decimal.ErrDivisionByZero, "csc 0 is a pole")
}

// TestTrig_SpecialOperands pins the sticky NaN behavior.
func TestTrig_SpecialOperands(t *testing.T) {
	for name, f := range map[string]func(decimal.Decimal) (decimal.Decimal, error){
		"Sin": decmath.Sin, "Cos": decmath.Cos, "Tan": decmath.Tan,
	} {
		got, err := f(decimal.NaN())
		assert.NoError(t, err, "%s(NaN)", name)
		assert.True(t, got.IsNaN(), "%s(NaN)", name)

		got, err = f(decimal.Inf(1))
		assert.NoError(t, err, "%s(Inf)", name)
		assert.True(t, got.IsNaN(), "%s(Inf) has no defined phase", name)
	}
}
