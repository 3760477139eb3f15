/*
Package lenstra provides a pure Go implementation of Lenstra's elliptic-curve
factorization method. Elliptic curve group law arithmetic is carried out over
the ring Z/NZ, where a failed modular inversion is not a fault but the goal:
its gcd with the modulus is a candidate factor of N. See the factorization
package for the search engine and the zn package for the underlying modular
arithmetic.
*/
package lenstra
