package decmath_test

import (
	"fmt"

	"github.com/katalvlaran/decimal"
	"github.com/katalvlaran/decimal/decmath"
)

// ExampleNewConstants prints a few memoized constants at a fixed width.
func ExampleNewConstants() {
	c, err := decmath.NewConstants(decimal.DefaultIterations())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("pi   =", c.Pi.FixedString(10))
	fmt.Println("e    =", c.E.FixedString(10))
	fmt.Println("ln2  =", c.Ln2.FixedString(10))
	fmt.Println("sqrt2=", c.Sqrt2.FixedString(10))
	// Output:
	// pi   = 3.1415926536
	// e    = 2.7182818285
	// ln2  = 0.6931471806
	// sqrt2= 1.4142135624
}

// ExamplePow contrasts the exact integer-exponent path with the
// exp(y·ln x) route.
func ExamplePow() {
	exact, _ := decmath.Pow(decimal.Of(2), decimal.Of(10))
	fmt.Println(exact)

	root, _ := decmath.Pow(decimal.Of(2), decimal.MustParse("0.5"))
	fmt.Println(root.FixedString(10))
	// Output:
	// 1024
	// 1.4142135624
}

// ExampleFactorial demonstrates exact combinatorics beyond float precision.
func ExampleFactorial() {
	f, _ := decmath.Factorial(decimal.Of(20))
	fmt.Println(f)

	c, _ := decmath.Comb(decimal.Of(52), decimal.Of(5))
	fmt.Println(c)
	// Output:
	// 2432902008176640000
	// 2598960
}

// ExampleSin evaluates the series with a deepened budget; the default five
// terms trade digits for speed.
func ExampleSin() {
	its := decimal.DefaultIterations()
	its.Trig = 40

	s, _ := decmath.Sin(decimal.One().With(its))
	fmt.Println(s.FixedString(15))
	// Output:
	// 0.841470984807897
}
