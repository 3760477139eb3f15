// Package bignum provides helpers for arbitrary precision arithmetic.
package bignum

import (
	"fmt"
	"math/big"
)

// NewInt allocates a new *big.Int.
// Accepted types are: string, uint, uint64, int64, int, *big.Float or *big.Int.
func NewInt(x interface{}) (y *big.Int) {

	y = new(big.Int)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case string:
		y.SetString(x, 0)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case int64:
		y.SetInt64(x)
	case int:
		y.SetInt64(int64(x))
	case *big.Float:
		x.Int(y)
	case *big.Int:
		y.Set(x)
	default:
		panic(fmt.Sprintf("cannot NewInt: accepted types are string, uint, uint64, int, int64, *big.Float, *big.Int, but is %T", x))
	}

	return
}

// ExtendedGCD returns a, b and g such that n*a + m*b = g = gcd(n, m).
// The sign of g follows the trailing remainder of the Euclidean iteration;
// callers that need a canonical gcd normalize it themselves.
func ExtendedGCD(n, m *big.Int) (a, b, g *big.Int) {

	r0 := new(big.Int).Set(m)
	r1 := new(big.Int).Set(n)

	a, x := big.NewInt(0), big.NewInt(1)
	b, y := big.NewInt(1), big.NewInt(0)

	for r1.Sign() != 0 {
		q, r := new(big.Int).QuoRem(r0, r1, new(big.Int))
		r0, r1 = r1, r
		a, x = x, new(big.Int).Sub(a, new(big.Int).Mul(q, x))
		b, y = y, new(big.Int).Sub(b, new(big.Int).Mul(q, y))
	}

	return a, b, r0
}

// Factorial returns n! by iterative accumulation.
func Factorial(n int) (f *big.Int) {

	f = big.NewInt(1)

	tmp := new(big.Int)
	for i := 2; i <= n; i++ {
		f.Mul(f, tmp.SetInt64(int64(i)))
	}

	return
}
