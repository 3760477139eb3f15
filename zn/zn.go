// Package zn implements modular arithmetic over the ring Z/mZ.
//
// When m is composite, Z/mZ is not a field and nonzero elements may fail to
// be invertible. Instead of hiding such failures, [Inverse] reports them as
// an [Obstruction] carrying gcd(n, m), which is a nontrivial divisor of the
// modulus whenever 1 < gcd(n, m) < m. Lenstra's elliptic-curve factorization
// works by provoking exactly these failures.
package zn

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/lenstra/utils/bignum"
)

var one = big.NewInt(1)

// Obstruction is the error returned by [Inverse] when its operand is a zero
// divisor of the ring. Divisor holds gcd(n, m) > 1, the common factor that
// blocked the inversion. Layers composing modular inversions must forward an
// Obstruction unmodified, so that the divisor reaches the caller intact.
type Obstruction struct {
	Divisor *big.Int
}

func (o *Obstruction) Error() string {
	return fmt.Sprintf("zn: zero divisor: operand shares factor %s with the modulus", o.Divisor.String())
}

// Inverse attempts to compute n^-1 mod m. On success the returned value lies
// in [0, m). If n is not invertible, Inverse returns an [Obstruction] whose
// Divisor is gcd(n, m). The operand n may be any integer; it is reduced
// modulo m first.
func Inverse(n, m *big.Int) (*big.Int, error) {

	r := new(big.Int).Mod(n, m)

	inv, _, g := bignum.ExtendedGCD(r, m)

	if g.Cmp(one) != 0 {
		return nil, &Obstruction{Divisor: g}
	}

	return inv.Mod(inv, m), nil
}
