package decimal_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/decimal"
)

// ExampleParse demonstrates exact construction and addition: 0.1 + 0.2 is
// exactly 0.3, with none of the binary-float drift.
func ExampleParse() {
	a := decimal.MustParse("0.1")
	b := decimal.MustParse("0.2")

	sum, err := a.Add(b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(sum)
	// Output:
	// 0.3
}

// ExampleDecimal_Div shows a repeating quotient carried to the configured
// precision, and the residual check that the reciprocal refinement earns.
func ExampleDecimal_Div() {
	its := decimal.DefaultIterations()
	its.Precision = 12

	a := decimal.MustParse("1").With(its)
	q, err := a.Div(decimal.Of(3))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(q)
	// Output:
	// 0.333333333333
}

// ExampleDecimal_Mod demonstrates fmod-style semantics: the result keeps
// the dividend's sign.
func ExampleDecimal_Mod() {
	r, _ := decimal.MustParse("-7").Mod(decimal.Of(3))
	fmt.Println(r)

	r, _ = decimal.MustParse("7.5").Mod(decimal.Of(2))
	fmt.Println(r)
	// Output:
	// -1
	// 1.5
}

// ExampleIterations shows the two error policies on the same division by
// zero: a sentinel under ThrowOnError, a signed infinity otherwise.
func ExampleIterations() {
	one := decimal.One()

	_, err := one.Div(decimal.Zero())
	fmt.Println(errors.Is(err, decimal.ErrDivisionByZero))

	silent := decimal.DefaultIterations()
	silent.ThrowOnError = false
	q, _ := one.With(silent).Div(decimal.Zero())
	fmt.Println(q)
	// Output:
	// true
	// Inf
}

// ExampleDecimal_FixedString formats a price-like value at a guaranteed
// fractional width.
func ExampleDecimal_FixedString() {
	d := decimal.MustParse("19.9")
	fmt.Println(d.FixedString(2))
	fmt.Println(decimal.MustParse("19.999").FixedString(2))
	// Output:
	// 19.90
	// 20.00
}

// ExampleFromHex round-trips a value through the hexadecimal boundary.
func ExampleFromHex() {
	d, _ := decimal.FromHex("ff")
	fmt.Println(d)

	h, _ := d.Hex(false)
	fmt.Println(h)
	// Output:
	// 255
	// FF
}
