package factorization_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lenstra/factorization"
	"github.com/tuneinsight/lenstra/utils/sampling"
	"github.com/tuneinsight/lenstra/zn"
)

var testSeed = []byte{0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

// primeCurvePoint samples a curve and a point on it over the prime modulus
// 1009, on which the group law can never meet an obstruction.
func primeCurvePoint(t *testing.T) (factorization.Weierstrass, factorization.Point) {
	t.Helper()
	prng, err := sampling.NewKeyedPRNG(testSeed)
	require.NoError(t, err)
	w, P, err := factorization.NewRandomWeierstrassCurve(prng, big.NewInt(1009), 1000)
	require.NoError(t, err)
	return w, P
}

func TestGroupLawIdentities(t *testing.T) {

	w, P := primeCurvePoint(t)
	inf := factorization.Infinity()

	t.Run("AddIdentity", func(t *testing.T) {

		sum, err := w.Add(P, inf)
		require.NoError(t, err)
		require.True(t, sum.Equal(P))

		sum, err = w.Add(inf, P)
		require.NoError(t, err)
		require.True(t, sum.Equal(P))

		sum, err = w.Add(inf, inf)
		require.NoError(t, err)
		require.True(t, sum.IsInfinity())
	})

	t.Run("AddInverse", func(t *testing.T) {

		sum, err := w.Add(P, P.Inverse())
		require.NoError(t, err)
		require.True(t, sum.IsInfinity())
	})

	t.Run("DoubleSelfInverse", func(t *testing.T) {

		// A point with y = 0 is 2-torsion on any curve.
		Q := factorization.NewPoint(big.NewInt(4), big.NewInt(0), w.N)
		dbl, err := w.Double(Q)
		require.NoError(t, err)
		require.True(t, dbl.IsInfinity())

		dbl, err = w.Double(inf)
		require.NoError(t, err)
		require.True(t, dbl.IsInfinity())
	})

	t.Run("ScalarTrivial", func(t *testing.T) {

		res, err := w.ScalarMult(P, big.NewInt(0))
		require.NoError(t, err)
		require.True(t, res.IsInfinity())

		res, err = w.ScalarMult(P, big.NewInt(1))
		require.NoError(t, err)
		require.True(t, res.Equal(P))

		res, err = w.ScalarMult(P, big.NewInt(-1))
		require.NoError(t, err)
		require.True(t, res.Equal(P.Inverse()))

		res, err = w.ScalarMult(inf, big.NewInt(17))
		require.NoError(t, err)
		require.True(t, res.IsInfinity())
	})
}

func TestKnownChord(t *testing.T) {

	// Secant through (2, 3) and (3, 1) mod 5 has slope 3; the chord formulas
	// then give (4, 1). The curve coefficients do not enter the secant case.
	w := factorization.NewWeierstrass(big.NewInt(1), big.NewInt(1), big.NewInt(5))
	P := factorization.NewPoint(big.NewInt(2), big.NewInt(3), big.NewInt(5))
	Q := factorization.NewPoint(big.NewInt(3), big.NewInt(1), big.NewInt(5))

	sum, err := w.Add(P, Q)
	require.NoError(t, err)
	require.True(t, sum.Equal(factorization.NewPoint(big.NewInt(4), big.NewInt(1), big.NewInt(5))))
}

func TestScalarMultMatchesRepeatedAdd(t *testing.T) {

	w, P := primeCurvePoint(t)

	acc := factorization.Infinity()
	var err error
	for k := int64(1); k <= 32; k++ {

		acc, err = w.Add(P, acc)
		require.NoError(t, err)

		res, err := w.ScalarMult(P, big.NewInt(k))
		require.NoError(t, err)
		require.True(t, res.Equal(acc), "k=%d", k)
	}
}

func TestScalarMultAdditive(t *testing.T) {

	w, P := primeCurvePoint(t)

	for _, ks := range [][2]int64{{2, 3}, {7, 7}, {1, 12}, {0, 9}, {25, 100}, {64, 63}} {

		k1, k2 := big.NewInt(ks[0]), big.NewInt(ks[1])

		R1, err := w.ScalarMult(P, k1)
		require.NoError(t, err)
		R2, err := w.ScalarMult(P, k2)
		require.NoError(t, err)

		sum, err := w.Add(R1, R2)
		require.NoError(t, err)

		res, err := w.ScalarMult(P, new(big.Int).Add(k1, k2))
		require.NoError(t, err)

		require.True(t, res.Equal(sum), "k1=%d k2=%d", ks[0], ks[1])
	}
}

func TestScalarMultNegation(t *testing.T) {

	w, P := primeCurvePoint(t)

	for k := int64(0); k <= 16; k++ {

		neg, err := w.ScalarMult(P, big.NewInt(-k))
		require.NoError(t, err)

		inv, err := w.ScalarMult(P.Inverse(), big.NewInt(k))
		require.NoError(t, err)

		require.True(t, neg.Equal(inv), "k=%d", k)
	}
}

func TestObstructionPropagation(t *testing.T) {

	N := big.NewInt(35)
	w := factorization.NewWeierstrass(big.NewInt(1), big.NewInt(1), N)

	t.Run("Secant", func(t *testing.T) {

		// x-difference is 5, and gcd(5, 35) = 5.
		P := factorization.NewPoint(big.NewInt(1), big.NewInt(1), N)
		Q := factorization.NewPoint(big.NewInt(6), big.NewInt(2), N)

		_, err := w.Add(P, Q)
		var obs *zn.Obstruction
		require.ErrorAs(t, err, &obs)
		require.Equal(t, int64(5), obs.Divisor.Int64())
	})

	t.Run("Tangent", func(t *testing.T) {

		// 2y = 10, and gcd(10, 35) = 5.
		P := factorization.NewPoint(big.NewInt(2), big.NewInt(5), N)

		_, err := w.Double(P)
		var obs *zn.Obstruction
		require.ErrorAs(t, err, &obs)
		require.Equal(t, int64(5), obs.Divisor.Int64())
	})

	t.Run("ScalarMult", func(t *testing.T) {

		// The first doubling of the running point fails, and the
		// obstruction becomes the result of the whole multiplication.
		P := factorization.NewPoint(big.NewInt(2), big.NewInt(5), N)

		_, err := w.ScalarMult(P, big.NewInt(2))
		var obs *zn.Obstruction
		require.ErrorAs(t, err, &obs)
		require.Equal(t, int64(5), obs.Divisor.Int64())
	})
}
