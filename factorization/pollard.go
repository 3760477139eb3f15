package factorization

import (
	"math/big"
)

// GetFactorPollardRho returns a factor of N found with Pollard's rho cycle
// detection, or N itself when the walk closes without meeting a nontrivial
// gcd (for instance when N is prime). It complements [Factor] as a cheap
// first pass for moduli with small factors.
func GetFactorPollardRho(N *big.Int) *big.Int {

	if new(big.Int).Mod(N, two).Sign() == 0 {
		return new(big.Int).Set(two)
	}

	// x_{i+1} = x_i^2 + 1 mod N, with y walking at twice the speed.
	x := big.NewInt(2)
	y := big.NewInt(2)

	g := new(big.Int).Set(one)
	diff := new(big.Int)

	for g.Cmp(one) == 0 {

		x.Mul(x, x).Add(x, one).Mod(x, N)

		y.Mul(y, y).Add(y, one).Mod(y, N)
		y.Mul(y, y).Add(y, one).Mod(y, N)

		diff.Sub(x, y).Abs(diff)
		g.GCD(nil, nil, diff, N)
	}

	return g
}
