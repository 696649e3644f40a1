// Package decimal: value-held configuration.
// Every Decimal carries its own Iterations copy; there is no package-level
// precision state. Mutating one value's configuration never affects another.

package decimal

// Documented defaults (single source of truth).
const (
	// DefaultPrecision is the fractional-digit depth carried by values
	// produced from the default configuration. It also bounds the integer
	// part: results whose integer part exceeds DefaultPrecision+1 digits
	// overflow to ±Inf (or error, under ThrowOnError).
	DefaultPrecision = 40

	// DefaultEIterations is the series budget for generating e.
	DefaultEIterations = 40

	// DefaultPiIterations is the Chudnovsky term budget for generating 1/π.
	// Each term contributes roughly 14 correct digits.
	DefaultPiIterations = 2

	// DefaultDivIterations is the Newton–Raphson refinement budget for
	// division. Zero disables refinement and yields a cruder quotient from
	// the seed estimate alone; Mod and Hex need at least one round to stay
	// correct for magnitudes beyond the native 64-bit range.
	DefaultDivIterations = 5

	// DefaultLnIterations is the series budget for Ln and for the
	// exponential series behind Pow.
	DefaultLnIterations = 40

	// DefaultHypIterations is the series budget for the hyperbolic family
	// and Erf.
	DefaultHypIterations = 40

	// DefaultSqrtIterations is the Newton budget for square roots.
	DefaultSqrtIterations = 40

	// DefaultTrigIterations is the series budget for the trigonometric
	// family. Each extra step adds roughly one more correct series term.
	DefaultTrigIterations = 5
)

// Iterations bundles the iteration/precision budgets and the error policy.
// It is held per value: every operation reads the receiver's copy and stamps
// it onto the result. A zero Iterations behaves as DefaultIterations(),
// which keeps the zero Decimal (NaN) usable.
//
// Fields:
//   - Precision    — fractional-digit depth of produced values.
//   - E, Pi        — series budgets for constant generation.
//   - Div          — Newton–Raphson rounds for reciprocal refinement.
//   - Ln, Hyp, Sqrt, Trig — per-family transcendental series budgets.
//   - Truncate     — drop digits beyond Precision instead of rounding
//     half-away-from-zero.
//   - ThrowOnError — undefined operations on finite operands return an
//     ErrIllegalOperation sentinel; when false they silently degrade to
//     NaN or ±Inf. Arithmetic between already-special values never
//     re-raises either way.
type Iterations struct {
	Precision int
	E         int
	Pi        int
	Div       int
	Ln        int
	Hyp       int
	Sqrt      int
	Trig      int
	Truncate  bool

	ThrowOnError bool
}

// DefaultIterations returns the documented default configuration.
func DefaultIterations() Iterations {
	return Iterations{
		Precision:    DefaultPrecision,
		E:            DefaultEIterations,
		Pi:           DefaultPiIterations,
		Div:          DefaultDivIterations,
		Ln:           DefaultLnIterations,
		Hyp:          DefaultHypIterations,
		Sqrt:         DefaultSqrtIterations,
		Trig:         DefaultTrigIterations,
		Truncate:     false,
		ThrowOnError: true,
	}
}

// iter returns the receiver's configuration, falling back to the defaults
// for zero-value Decimals that never went through a constructor.
func (d Decimal) iter() Iterations {
	if d.its == (Iterations{}) {
		return DefaultIterations()
	}

	return d.its
}

// Iterations returns the configuration carried by d.
func (d Decimal) Iterations() Iterations { return d.iter() }

// With returns a copy of d carrying its. Precision never shrinks below the
// digits d already stores, so rebinding a configuration cannot silently
// drop stored fractional digits.
func (d Decimal) With(its Iterations) Decimal {
	if its.Precision < d.frac {
		its.Precision = d.frac
	}
	d.its = its

	return d
}
