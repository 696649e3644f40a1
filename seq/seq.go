// Package seq: the generator contract.

package seq

import (
	"github.com/katalvlaran/decimal"
)

// TermGenerator yields sequence members by index.
//
// Term returns the n-th member. The index must be a non-negative integer;
// out-of-domain indexes follow the error policy carried by n — an
// ErrIllegalOperation sentinel under ThrowOnError, a silent NaN otherwise.
// Results carry n's configuration.
type TermGenerator interface {
	Term(n decimal.Decimal) (decimal.Decimal, error)
}
