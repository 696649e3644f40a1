// Package decimal: the conversion boundary back to native types.
//
// One generic predicate/accessor pair replaces per-primitive methods:
//
//	Fits[T](d) — true iff d converts to T without loss: integral and
//	             in-range for fixed-width integer types, exactly
//	             representable for floating types. NaN and ±Inf never fit.
//	To[T](d)   — the clamping accessor. Documented behavior when Fits is
//	             false: the fractional part truncates toward zero and
//	             out-of-range values clamp to the type's limits; NaN
//	             yields 0, +Inf the maximum, -Inf the minimum.

package decimal

import (
	"math"
	"reflect"
	"strconv"
)

// Fits reports whether d is representable as T without precision loss.
func Fits[T Real](d Decimal) bool {
	var z T
	k := reflect.TypeOf(z).Kind()
	switch k {
	case reflect.Float32:
		return fitsFloat(d, 32)
	case reflect.Float64:
		return fitsFloat(d, 64)
	default:
	}

	if d.kind != KindNormal || !d.IsInt() {
		return false
	}
	lo, hi, unsigned := intLimits(k)
	if unsigned {
		u, ok := parseUint(d)

		return ok && u <= hi
	}
	v, ok := parseInt(d)

	return ok && v >= lo && uint64(maxInt64(v, 0)) <= hi
}

// To converts d to T, truncating and clamping as documented above.
func To[T Real](d Decimal) T {
	var z T
	k := reflect.TypeOf(z).Kind()
	switch k {
	case reflect.Float32:
		return T(toFloat(d, 32))
	case reflect.Float64:
		return T(toFloat(d, 64))
	default:
	}

	lo, hi, unsigned := intLimits(k)
	if unsigned {
		return T(toUintClamped(d, hi))
	}

	return T(toIntClamped(d, lo, int64(hi)))
}

// Int64 returns d as an int64 together with a Fits report.
func (d Decimal) Int64() (int64, bool) { return To[int64](d), Fits[int64](d) }

// Uint64 returns d as a uint64 together with a Fits report.
func (d Decimal) Uint64() (uint64, bool) { return To[uint64](d), Fits[uint64](d) }

// Float64 returns d as a float64 together with a Fits report.
func (d Decimal) Float64() (float64, bool) { return To[float64](d), Fits[float64](d) }

// intLimits returns the value range of the integer kind. For signed kinds
// hi holds the positive bound as uint64.
func intLimits(k reflect.Kind) (lo int64, hi uint64, unsigned bool) {
	switch k {
	case reflect.Int8:
		return math.MinInt8, math.MaxInt8, false
	case reflect.Int16:
		return math.MinInt16, math.MaxInt16, false
	case reflect.Int32:
		return math.MinInt32, math.MaxInt32, false
	case reflect.Int64:
		return math.MinInt64, math.MaxInt64, false
	case reflect.Int:
		return math.MinInt, math.MaxInt, false
	case reflect.Uint8:
		return 0, math.MaxUint8, true
	case reflect.Uint16:
		return 0, math.MaxUint16, true
	case reflect.Uint32:
		return 0, math.MaxUint32, true
	case reflect.Uint, reflect.Uintptr:
		return 0, math.MaxUint, true
	default: // reflect.Uint64
		return 0, math.MaxUint64, true
	}
}

func parseInt(d Decimal) (int64, bool) {
	v, err := strconv.ParseInt(d.Truncate(0).String(), 10, 64)

	return v, err == nil
}

func parseUint(d Decimal) (uint64, bool) {
	t := d.Truncate(0)
	if t.Sign() < 0 {
		return 0, false
	}
	v, err := strconv.ParseUint(t.String(), 10, 64)

	return v, err == nil
}

func toIntClamped(d Decimal, lo, hi int64) int64 {
	switch {
	case d.IsNaN():
		return 0
	case d.IsInf():
		if d.sign < 0 {
			return lo
		}

		return hi
	}
	v, ok := parseInt(d)
	if !ok { // beyond int64 range entirely
		if d.Sign() < 0 {
			return lo
		}

		return hi
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

func toUintClamped(d Decimal, hi uint64) uint64 {
	switch {
	case d.IsNaN():
		return 0
	case d.IsInf():
		if d.sign < 0 {
			return 0
		}

		return hi
	case d.Sign() < 0:
		return 0
	}
	v, ok := parseUint(d)
	if !ok {
		return hi
	}
	if v > hi {
		return hi
	}

	return v
}

func toFloat(d Decimal, bits int) float64 {
	if d.IsNaN() {
		return 0
	}
	if d.IsInf() {
		return math.Inf(int(d.sign))
	}
	f, err := strconv.ParseFloat(d.String(), bits)
	if err != nil {
		return math.Inf(int(d.sign)) // out of float range: clamp to ±Inf
	}

	return f
}

func fitsFloat(d Decimal, bits int) bool {
	if d.kind != KindNormal {
		return false
	}
	f, err := strconv.ParseFloat(d.String(), bits)
	if err != nil || math.IsInf(f, 0) {
		return false
	}
	back, err := Parse(strconv.FormatFloat(f, 'f', -1, bits))
	if err != nil {
		return false
	}

	return back.Equal(d)
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}

	return b
}
