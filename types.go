// Package decimal: the Decimal value type and its basic predicates.

package decimal

// Kind classifies a Decimal as a finite number or one of the IEEE-754-style
// special values. Each result computes its kind independently from its
// operands; there are no in-place transitions.
type Kind uint8

const (
	// KindNaN marks not-a-number. NaN carries an empty magnitude and an
	// unset sign. The zero Decimal is NaN.
	KindNaN Kind = iota

	// KindNormal marks an ordinary finite value.
	KindNormal

	// KindInfinity marks signed infinity, produced by the Inf factory or by
	// magnitude overflow under the silent-degrade policy.
	KindInfinity
)

// Decimal is an immutable arbitrary-precision base-10 fixed-point number.
//
// The representation is sign + magnitude: mag holds decimal digit values
// (0–9), most-significant first, and frac counts how many trailing digits
// lie right of the decimal point. There is no implied exponent.
//
// The zero value is NaN with the default configuration, matching the
// convention that an uninitialized number is not silently zero.
//
// All operations are pure: they read their operands, never mutate them, and
// return freshly constructed values. Distinct values may therefore be used
// concurrently without locking.
type Decimal struct {
	kind Kind
	sign int8   // +1, -1; 0 only for NaN
	mag  []byte // digit values 0..9, MSD first; empty for NaN/Inf
	frac int    // trailing digits of mag right of the decimal point
	its  Iterations
}

// NaN returns a not-a-number value with the default configuration.
func NaN() Decimal { return Decimal{kind: KindNaN, its: DefaultIterations()} }

// NaNWith returns a not-a-number value carrying its.
func NaNWith(its Iterations) Decimal { return Decimal{kind: KindNaN, its: its} }

// Inf returns +Inf when sign >= 0 and -Inf otherwise.
func Inf(sign int) Decimal {
	s := int8(1)
	if sign < 0 {
		s = -1
	}

	return Decimal{kind: KindInfinity, sign: s, its: DefaultIterations()}
}

// Zero returns the value 0 with the default configuration.
func Zero() Decimal {
	return Decimal{kind: KindNormal, sign: 1, mag: []byte{0}, its: DefaultIterations()}
}

// One returns the value 1 with the default configuration.
func One() Decimal {
	return Decimal{kind: KindNormal, sign: 1, mag: []byte{1}, its: DefaultIterations()}
}

// IsNaN reports whether d is not-a-number.
func (d Decimal) IsNaN() bool { return d.kind == KindNaN }

// IsInf reports whether d is +Inf or -Inf.
func (d Decimal) IsInf() bool { return d.kind == KindInfinity }

// Kind returns the value classification of d.
func (d Decimal) Kind() Kind { return d.kind }

// IsZero reports whether d is a finite zero.
func (d Decimal) IsZero() bool {
	if d.kind != KindNormal {
		return false
	}
	for _, g := range d.mag {
		if g != 0 {
			return false
		}
	}

	return true
}

// IsInt reports whether d is finite with no stored fractional digits after
// trailing-zero trimming.
func (d Decimal) IsInt() bool {
	if d.kind != KindNormal {
		return false
	}
	for i := len(d.mag) - 1; i >= len(d.mag)-d.frac; i-- {
		if d.mag[i] != 0 {
			return false
		}
	}

	return true
}

// Decimals returns the number of stored fractional digits.
func (d Decimal) Decimals() int { return d.frac }

// Ints returns the number of stored integer-part digits.
func (d Decimal) Ints() int { return len(d.mag) - d.frac }

// Sign returns -1 for negative values (including -Inf), +1 for positive
// values (including +Inf), and 0 for zero or NaN.
func (d Decimal) Sign() int {
	if d.IsNaN() || d.IsZero() {
		return 0
	}

	return int(d.sign)
}

// clone returns a deep copy of d; mag is never shared between values.
func (d Decimal) clone() Decimal {
	d.mag = append([]byte(nil), d.mag...)

	return d
}

// stamp returns d carrying its; used by operations to propagate the left
// operand's configuration onto results.
func (d Decimal) stamp(its Iterations) Decimal {
	d.its = its

	return d
}
