// Package factorization implements Lenstra's elliptic-curve factorization
// method: elliptic curve group law arithmetic over the ring Z/NZ, driven so
// that a failed modular inversion surfaces gcd(n, N), a candidate factor of
// the modulus.
package factorization

import (
	"math/big"

	"github.com/tuneinsight/lenstra/zn"
)

var (
	one      = big.NewInt(1)
	two      = big.NewInt(2)
	three    = big.NewInt(3)
	minusOne = big.NewInt(-1)
)

// Weierstrass is an elliptic curve y^2 = x^3 + Ax + B over Z/NZ.
// The group law methods do not check that their operands lie on the curve.
// Any of them can fail with a [zn.Obstruction] when an intermediate slope
// requires inverting a zero divisor of Z/NZ; the obstruction is returned
// unmodified, never wrapped, so its divisor survives the composition
// slope -> add -> double -> scalar multiplication intact.
type Weierstrass struct {
	A, B, N *big.Int
}

// NewWeierstrass returns the curve y^2 = x^3 + ax + b over Z/NZ, with both
// coefficients reduced modulo N.
func NewWeierstrass(a, b, N *big.Int) Weierstrass {
	return Weierstrass{
		A: new(big.Int).Mod(a, N),
		B: new(big.Int).Mod(b, N),
		N: new(big.Int).Set(N),
	}
}

// tangentSlope returns the slope (3x^2 + A) / (2y) mod N of the line tangent
// to the curve at p.
func (w Weierstrass) tangentSlope(p Point) (*big.Int, error) {

	dx := new(big.Int).Mul(p.x, p.x)
	dx.Mul(dx, three)
	dx.Add(dx, w.A)
	dx.Mod(dx, w.N)

	dy := new(big.Int).Mul(p.y, two)

	dyInv, err := zn.Inverse(dy, w.N)
	if err != nil {
		return nil, err
	}

	dx.Mul(dx, dyInv)
	return dx.Mod(dx, w.N), nil
}

// secantSlope returns the slope (q.y - p.y) / (q.x - p.x) mod N of the line
// through the distinct points p and q.
func secantSlope(p, q Point) (*big.Int, error) {

	dx := new(big.Int).Sub(q.x, p.x)

	dxInv, err := zn.Inverse(dx, p.modulus)
	if err != nil {
		return nil, err
	}

	dy := new(big.Int).Sub(q.y, p.y)
	dy.Mul(dy, dxInv)
	return dy.Mod(dy, p.modulus), nil
}

// chord returns the group law sum of p and q given the slope of the line
// through them (tangent when p = q).
func (w Weierstrass) chord(p, q Point, slope *big.Int) Point {

	// x = slope^2 - p.x - q.x
	x := new(big.Int).Mul(slope, slope)
	x.Sub(x, p.x)
	x.Sub(x, q.x)

	// y = slope*(p.x - x) - p.y
	y := new(big.Int).Sub(p.x, x)
	y.Mul(y, slope)
	y.Sub(y, p.y)

	return NewPoint(x, y, w.N)
}

// curveIndependent reports whether [k]P + Q is determined by the points
// alone, with no curve coefficients and no modular inversion: P or Q at
// infinity, or P = -Q, combined with |k| <= 1. These identities hold on any
// curve through the points.
func curveIndependent(p, q Point, k *big.Int) bool {
	if !(p.inf || q.inf || p.Equal(q.Inverse())) {
		return false
	}
	return k.CmpAbs(one) <= 0
}

// resolveCurveIndependent returns [k]P + Q for the combinations accepted by
// [curveIndependent]. Call sites only ever reach it with Q at infinity or
// with k = 1, never both arbitrary; that invariant is maintained by the
// structure of Add and ScalarMult rather than checked here.
func resolveCurveIndependent(p, q Point, k *big.Int) (res Point) {

	switch {
	case q.inf && k.Cmp(one) == 0:
		res = p
	case p.Equal(q.Inverse()) || k.Sign() == 0:
		res = Infinity()
	case k.Cmp(minusOne) == 0:
		res = p.Inverse()
	}

	if p.inf {
		res = q
	}

	return
}

// Double attempts to compute [2]P. A self-inverse point (y = 0, or the point
// at infinity) doubles to the point at infinity. Otherwise the result is
// computed from the tangent slope; a tangent obstruction becomes the result
// of the doubling, unchanged.
func (w Weierstrass) Double(p Point) (Point, error) {

	if p.Equal(p.Inverse()) {
		return Infinity(), nil
	}

	slope, err := w.tangentSlope(p)
	if err != nil {
		return Point{}, err
	}

	return w.chord(p, p, slope), nil
}

// Add attempts to compute P + Q. Equal points are doubled; sums that are
// curve-independent (an operand at infinity, or Q = -P) are resolved from
// the points alone; the general case goes through the secant slope, whose
// obstruction is forwarded unchanged.
func (w Weierstrass) Add(p, q Point) (Point, error) {

	if p.Equal(q) {
		return w.Double(p)
	}

	if curveIndependent(p, q, one) {
		return resolveCurveIndependent(p, q, one), nil
	}

	slope, err := secantSlope(p, q)
	if err != nil {
		return Point{}, err
	}

	return w.chord(p, q, slope), nil
}

// ScalarMult attempts to compute [k]P by binary double-and-add, scanning the
// bits of k from least to most significant. A negative k multiplies the
// inverse of P by -k. The first obstruction raised by any intermediate
// addition or doubling aborts the whole multiplication and becomes its
// result; in particular a failed doubling after the last set bit still
// counts, since it reveals a divisor all the same.
func (w Weierstrass) ScalarMult(p Point, k *big.Int) (Point, error) {

	if k.Sign() < 0 {
		p = p.Inverse()
		k = new(big.Int).Neg(k)
	}

	if curveIndependent(p, Infinity(), k) {
		return resolveCurveIndependent(p, Infinity(), k), nil
	}

	acc := Infinity()
	run := p

	var err error
	for i, bits := 0, k.BitLen(); i < bits; i++ {

		if k.Bit(i) == 1 {
			if acc, err = w.Add(run, acc); err != nil {
				return Point{}, err
			}
		}

		if run, err = w.Double(run); err != nil {
			return Point{}, err
		}
	}

	return acc, nil
}
