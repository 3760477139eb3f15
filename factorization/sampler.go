package factorization

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/tuneinsight/lenstra/utils/sampling"
)

// ErrSampleEffortExceeded is returned by [NewRandomWeierstrassCurve] when no
// smooth curve was found within the allotted number of draws. It signals
// exhaustion of the effort budget, not a mathematical impossibility.
var ErrSampleEffortExceeded = errors.New("factorization: no smooth curve found within the sampling effort")

var (
	sixtyFour     = big.NewInt(64)
	fourThirtyTwo = big.NewInt(432)
)

// isSmooth reports whether the curve y^2 = x^3 + ax + b has nonzero
// discriminant modulo m, i.e. 64a^3 + 432b^2 != 0 (mod m). Over a composite
// modulus this is only a heuristic filter and not a guarantee of a genuine
// group structure; the zero divisor cases it lets through are exactly what
// the factor search hunts for.
func isSmooth(a, b, m *big.Int) bool {

	disc := new(big.Int).Mul(a, a)
	disc.Mul(disc, a)
	disc.Mul(disc, sixtyFour)

	bSquare := new(big.Int).Mul(b, b)
	bSquare.Mul(bSquare, fourThirtyTwo)

	disc.Add(disc, bSquare)

	return disc.Mod(disc, m).Sign() != 0
}

// NewRandomWeierstrassCurve draws a uniform random point (s, t) of (Z/NZ)^2
// together with a random smooth Weierstrass curve passing through it: a is
// sampled uniformly and b = t^2 - s^3 - as mod N, so that (s, t) lies on
// y^2 = x^3 + ax + b by construction. Up to effort draws are made before
// giving up with [ErrSampleEffortExceeded].
func NewRandomWeierstrassCurve(prng sampling.PRNG, N *big.Int, effort int) (Weierstrass, Point, error) {

	for i := 0; i < effort; i++ {

		s := sampling.RandInt(prng, N)
		t := sampling.RandInt(prng, N)
		a := sampling.RandInt(prng, N)

		// b = t^2 - s^3 - a*s mod N
		b := new(big.Int).Mul(t, t)

		sCube := new(big.Int).Mul(s, s)
		sCube.Mul(sCube, s)
		b.Sub(b, sCube)

		b.Sub(b, new(big.Int).Mul(a, s))
		b.Mod(b, N)

		if isSmooth(a, b, N) {
			return NewWeierstrass(a, b, N), NewPoint(s, t, N), nil
		}
	}

	return Weierstrass{}, Point{}, fmt.Errorf("factorization.NewRandomWeierstrassCurve: %w (%d draws)", ErrSampleEffortExceeded, effort)
}
