// Package decimal: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations MUST
// return these sentinels and tests MUST check them via errors.Is. No
// operation panics on user-triggered error conditions.

package decimal

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "decimal: ..." for consistency and easy
// grepping. There is exactly one error KIND — an illegal operation on finite
// operands — so every specific sentinel wraps ErrIllegalOperation and
// errors.Is(err, ErrIllegalOperation) holds for all of them. Sentinels are
// only ever returned when the value's configuration has ThrowOnError set;
// under the silent policy the same conditions degrade to NaN or ±Inf.

var (
	// ErrIllegalOperation is the root error kind: an operation that is
	// mathematically undefined for its finite inputs, or an invalid digit.
	ErrIllegalOperation = errors.New("decimal: illegal operation")

	// ErrDivisionByZero is returned by Div/Mod with a zero finite divisor.
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrIllegalOperation)

	// ErrOverflow is returned when a result's integer part exceeds the range
	// implied by the configured precision.
	ErrOverflow = fmt.Errorf("%w: magnitude overflow", ErrIllegalOperation)

	// ErrLogDomain is returned for logarithms of non-positive arguments.
	ErrLogDomain = fmt.Errorf("%w: logarithm of non-positive value", ErrIllegalOperation)

	// ErrTrigDomain is returned for inverse trig/hyperbolic arguments
	// outside their domain (e.g. Asin of 2, Acosh of 0).
	ErrTrigDomain = fmt.Errorf("%w: argument outside function domain", ErrIllegalOperation)

	// ErrFactorialDomain is returned for factorials (and derived
	// combinatorics) of negative or non-integer values.
	ErrFactorialDomain = fmt.Errorf("%w: factorial of negative or non-integer value", ErrIllegalOperation)

	// ErrSqrtDomain is returned for even roots of negative values.
	ErrSqrtDomain = fmt.Errorf("%w: square root of negative value", ErrIllegalOperation)

	// ErrBadDigit is returned when construction encounters a symbol that is
	// not a valid decimal (or hexadecimal, for FromHex) digit.
	ErrBadDigit = fmt.Errorf("%w: invalid digit", ErrIllegalOperation)
)
