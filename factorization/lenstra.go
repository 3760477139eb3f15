package factorization

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"github.com/google/go-cmp/cmp"
	"github.com/zeebo/blake3"

	"github.com/tuneinsight/lenstra/utils/bignum"
	"github.com/tuneinsight/lenstra/utils/sampling"
	"github.com/tuneinsight/lenstra/zn"
)

// Default search parameters, applied by [NewParametersFromLiteral] to the
// zero fields of a [ParametersLiteral].
const (
	// DefaultBound is the default smoothness bound: scalar multiplications
	// use the exponent k = Bound!.
	DefaultBound = 500
	// DefaultAttempts is the default number of curve/point trials.
	DefaultAttempts = 500
	// DefaultSampleEffort is the default number of draws allowed to each
	// individual curve generation.
	DefaultSampleEffort = 100000
)

const seedKeySize = 32

// ParametersLiteral is a literal representation of factor search parameters.
// Zero fields take their default value. A non-nil Seed makes the search
// deterministic: two searches over the same modulus with equal parameters
// return identical results.
type ParametersLiteral struct {
	Bound        int
	Attempts     int
	SampleEffort int
	Seed         []byte
}

// Parameters is a validated set of factor search parameters.
type Parameters struct {
	bound        int
	attempts     int
	sampleEffort int
	seed         []byte
}

// NewParametersFromLiteral instantiates a [Parameters] from a
// [ParametersLiteral], defaulting its zero fields.
func NewParametersFromLiteral(paramDef ParametersLiteral) (Parameters, error) {

	if paramDef.Bound == 0 {
		paramDef.Bound = DefaultBound
	}

	if paramDef.Attempts == 0 {
		paramDef.Attempts = DefaultAttempts
	}

	if paramDef.SampleEffort == 0 {
		paramDef.SampleEffort = DefaultSampleEffort
	}

	switch {
	case paramDef.Bound < 2:
		return Parameters{}, fmt.Errorf("factorization.NewParametersFromLiteral: Bound must be at least 2 but is %d", paramDef.Bound)
	case paramDef.Attempts < 1:
		return Parameters{}, fmt.Errorf("factorization.NewParametersFromLiteral: Attempts must be at least 1 but is %d", paramDef.Attempts)
	case paramDef.SampleEffort < 1:
		return Parameters{}, fmt.Errorf("factorization.NewParametersFromLiteral: SampleEffort must be at least 1 but is %d", paramDef.SampleEffort)
	}

	var seed []byte
	if paramDef.Seed != nil {
		seed = make([]byte, len(paramDef.Seed))
		copy(seed, paramDef.Seed)
	}

	return Parameters{
		bound:        paramDef.Bound,
		attempts:     paramDef.Attempts,
		sampleEffort: paramDef.SampleEffort,
		seed:         seed,
	}, nil
}

// Bound returns the smoothness bound.
func (p Parameters) Bound() int {
	return p.bound
}

// Attempts returns the number of curve/point trials.
func (p Parameters) Attempts() int {
	return p.attempts
}

// SampleEffort returns the number of draws allowed per curve generation.
func (p Parameters) SampleEffort() int {
	return p.sampleEffort
}

// Seed returns a copy of the seed, or nil if the search is not seeded.
func (p Parameters) Seed() (seed []byte) {
	if p.seed != nil {
		seed = make([]byte, len(p.seed))
		copy(seed, p.seed)
	}
	return
}

// Equal reports whether p and other hold the same parameters.
func (p Parameters) Equal(other Parameters) bool {
	res := p.bound == other.bound
	res = res && p.attempts == other.attempts
	res = res && p.sampleEffort == other.sampleEffort
	res = res && cmp.Equal(p.seed, other.seed)
	return res
}

// attemptPRNG returns the randomness source of the i-th attempt. Unseeded
// searches share the crypto/rand backed PRNG. Seeded searches derive one
// blake3 sub-key per attempt, so that each attempt owns an independent
// deterministic stream and the sequence of trials is reproducible
// attempt by attempt.
func (p Parameters) attemptPRNG(attempt uint64) (sampling.PRNG, error) {

	if p.seed == nil {
		return sampling.NewPRNG()
	}

	hasher := blake3.New()
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.BigEndian, attempt)
	buf.Write(p.seed)
	hasher.Write(buf.Bytes())

	sum := hasher.Sum(nil)
	return sampling.NewKeyedPRNG(sum[:seedKeySize])
}

// Factor searches for a nontrivial divisor of N with Lenstra's elliptic
// curve method. Each attempt samples a fresh random curve and point over
// Z/NZ and computes [Bound!]P; the first obstruction met along the way is a
// gcd with N, returned as the divisor. When the attempt budget is exhausted
// without an obstruction, Factor returns N itself: callers distinguish
// success from failure by comparing the result to N.
//
// The returned error is non-nil only for invalid input or when curve
// sampling exhausts its effort budget, which is fatal for the whole search.
func Factor(N *big.Int, params Parameters) (*big.Int, error) {

	if N == nil || N.Cmp(one) <= 0 {
		return nil, fmt.Errorf("factorization.Factor: N must be an integer greater than 1")
	}

	k := bignum.Factorial(params.bound)

	for i := 0; i < params.attempts; i++ {

		prng, err := params.attemptPRNG(uint64(i))
		if err != nil {
			return nil, err
		}

		curve, P, err := NewRandomWeierstrassCurve(prng, N, params.sampleEffort)
		if err != nil {
			return nil, err
		}

		if _, err = curve.ScalarMult(P, k); err != nil {

			var obs *zn.Obstruction
			if errors.As(err, &obs) {
				return new(big.Int).Set(obs.Divisor), nil
			}

			return nil, err
		}
	}

	return new(big.Int).Set(N), nil
}

// GetFactorECM returns a factor of N found with the default search
// parameters and fresh system randomness, or N itself when the attempt
// budget is exhausted. It panics if curve sampling fails, which with the
// default effort only happens for degenerate moduli.
func GetFactorECM(N *big.Int) *big.Int {

	params, err := NewParametersFromLiteral(ParametersLiteral{})
	if err != nil {
		panic(err)
	}

	factor, err := Factor(N, params)
	if err != nil {
		panic(err)
	}

	return factor
}
