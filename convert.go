// Package decimal: the construction boundary.
//
// One generic constructor replaces per-primitive overloads: any native
// signed/unsigned integer or floating type converts once, at the boundary.
// String construction validates every digit symbol and rejects anything
// that is not a plain decimal literal.

package decimal

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Real is the set of native numeric types accepted by the generic
// construction and conversion boundary.
type Real interface {
	constraints.Integer | constraints.Float
}

// Parse constructs a Decimal from a decimal digit string with the default
// configuration. Accepted forms: an optional +/- sign, an integer part, an
// optional fractional part ("123", "-12.5", ".5", "1."); the special
// spellings "NaN", "Inf", "+Inf" and "-Inf" round-trip the String output.
// Anything else returns ErrBadDigit.
func Parse(s string) (Decimal, error) { return ParseWith(s, DefaultIterations()) }

// ParseWith is Parse with an explicit configuration.
func ParseWith(s string, its Iterations) (Decimal, error) {
	switch s {
	case "NaN":
		return NaNWith(its), nil
	case "Inf", "+Inf":
		return Inf(1).stamp(its), nil
	case "-Inf":
		return Inf(-1).stamp(its), nil
	}

	sign := int8(1)
	rest := s
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		if rest[0] == '-' {
			sign = -1
		}
		rest = rest[1:]
	}

	var mag []byte
	frac, seenDot, seenDigit := 0, false, false
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if c == '.' {
			if seenDot {
				return NaNWith(its), fmt.Errorf("%w: %q has multiple decimal points", ErrBadDigit, s)
			}
			seenDot = true

			continue
		}
		v, err := digitVal(c)
		if err != nil {
			return NaNWith(its), fmt.Errorf("%w: %q is not a valid number", ErrBadDigit, s)
		}
		mag = append(mag, v)
		seenDigit = true
		if seenDot {
			frac++
		}
	}
	if !seenDigit {
		return NaNWith(its), fmt.Errorf("%w: %q has no digits", ErrBadDigit, s)
	}
	if frac == len(mag) {
		mag = append([]byte{0}, mag...) // ".5" -> 0.5
	}
	if its.Precision < frac {
		its.Precision = frac
	}

	return norm(sign, mag, frac, its)
}

// MustParse is Parse that panics on error; intended for constants and
// tests, mirroring the strconv.Must* convention.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return d
}

// Of constructs a Decimal from any native numeric value with the default
// configuration. Floats convert via their shortest exact decimal
// representation; float NaN and ±Inf map to the corresponding special
// values.
func Of[T Real](v T) Decimal { return OfWith(v, DefaultIterations()) }

// OfWith is Of with an explicit configuration.
func OfWith[T Real](v T, its Iterations) Decimal {
	var s string
	switch x := any(v).(type) {
	case float32:
		return ofFloat(float64(x), 32, its)
	case float64:
		return ofFloat(x, 64, its)
	case int:
		s = strconv.FormatInt(int64(x), 10)
	case int8:
		s = strconv.FormatInt(int64(x), 10)
	case int16:
		s = strconv.FormatInt(int64(x), 10)
	case int32:
		s = strconv.FormatInt(int64(x), 10)
	case int64:
		s = strconv.FormatInt(x, 10)
	case uint:
		s = strconv.FormatUint(uint64(x), 10)
	case uint8:
		s = strconv.FormatUint(uint64(x), 10)
	case uint16:
		s = strconv.FormatUint(uint64(x), 10)
	case uint32:
		s = strconv.FormatUint(uint64(x), 10)
	case uint64:
		s = strconv.FormatUint(x, 10)
	case uintptr:
		s = strconv.FormatUint(uint64(x), 10)
	default:
		// Named numeric types: fall back to the widest conversion.
		if f := float64(v); f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			s = strconv.FormatInt(int64(f), 10)
		} else {
			return ofFloat(float64(v), 64, its)
		}
	}
	d, err := ParseWith(s, its)
	if err != nil {
		// Native integer formatting cannot produce invalid digits.
		panic(err)
	}

	return d
}

func ofFloat(f float64, bits int, its Iterations) Decimal {
	switch {
	case math.IsNaN(f):
		return NaNWith(its)
	case math.IsInf(f, 1):
		return Inf(1).stamp(its)
	case math.IsInf(f, -1):
		return Inf(-1).stamp(its)
	}
	d, err := ParseWith(strconv.FormatFloat(f, 'f', -1, bits), its)
	if err != nil {
		panic(err)
	}

	return d
}

// FromHex constructs a Decimal from a base-16 digit string (no 0x prefix,
// optional leading minus, case-insensitive). The value is accumulated
// through the arithmetic kernel, so it stays exact far beyond the native
// 64-bit range.
func FromHex(s string) (Decimal, error) { return FromHexWith(s, DefaultIterations()) }

// FromHexWith is FromHex with an explicit configuration.
func FromHexWith(s string, its Iterations) (Decimal, error) {
	neg := false
	rest := s
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		neg = rest[0] == '-'
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return NaNWith(its), fmt.Errorf("%w: %q has no digits", ErrBadDigit, s)
	}

	sixteen := Of(16).With(its)
	acc := Zero().stamp(its)
	for i := 0; i < len(rest); i++ {
		v, err := hexVal(rest[i])
		if err != nil {
			return NaNWith(its), fmt.Errorf("%w: %q is not a valid hexadecimal number", ErrBadDigit, s)
		}
		acc, err = acc.Mul(sixteen)
		if err != nil {
			return acc, err
		}
		acc, err = acc.Add(Of(int(v)).With(its))
		if err != nil {
			return acc, err
		}
	}
	if neg {
		acc = acc.Neg()
	}

	return acc, nil
}

func hexVal(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	}

	return 0, ErrBadDigit
}
