package factorization

import (
	"fmt"
	"math/big"
)

// Point is an affine point of (Z/mZ)^2, or the point at infinity acting as
// the identity of the elliptic curve group law. Points are immutable: all
// operations allocate fresh coordinates.
type Point struct {
	x, y    *big.Int
	modulus *big.Int
	inf     bool
}

// NewPoint returns the point (x, y) over Z/mZ, with both coordinates
// reduced into [0, modulus).
func NewPoint(x, y, modulus *big.Int) Point {
	return Point{
		x:       new(big.Int).Mod(x, modulus),
		y:       new(big.Int).Mod(y, modulus),
		modulus: new(big.Int).Set(modulus),
	}
}

// Infinity returns the point at infinity. It carries no coordinates and
// compares equal to any other point at infinity, regardless of modulus.
func Infinity() Point {
	return Point{inf: true}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.inf
}

// X returns the x-coordinate of p. The result must not be mutated.
func (p Point) X() *big.Int {
	return p.x
}

// Y returns the y-coordinate of p. The result must not be mutated.
func (p Point) Y() *big.Int {
	return p.y
}

// Inverse returns the additive inverse of p with respect to the elliptic
// curve group law: (x, y) maps to (x, -y mod m). This is a pure ring
// computation, independent of the curve coefficients.
func (p Point) Inverse() Point {

	if p.inf {
		return Infinity()
	}

	y := new(big.Int)
	if p.y.Sign() != 0 {
		y.Sub(p.modulus, p.y)
	}

	return Point{
		x:       new(big.Int).Set(p.x),
		y:       y,
		modulus: new(big.Int).Set(p.modulus),
	}
}

// Equal reports whether p and q are the same point: either both at infinity,
// or with equal coordinates and equal modulus.
func (p Point) Equal(q Point) bool {

	if p.inf || q.inf {
		return p.inf && q.inf
	}

	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0 && p.modulus.Cmp(q.modulus) == 0
}

// String returns a human readable representation of p.
func (p Point) String() string {
	if p.inf {
		return "(inf)"
	}
	return fmt.Sprintf("(%s, %s) mod %s", p.x.String(), p.y.String(), p.modulus.String())
}
