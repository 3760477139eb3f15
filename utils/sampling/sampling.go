// Package sampling implements secure and deterministic sampling of bytes and integers.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
)

// RandUint64 returns a random value between 0 and 0xFFFFFFFFFFFFFFFF.
func RandUint64() uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandInt samples a uniform Int in [0, max-1] from the given PRNG.
func RandInt(prng PRNG, max *big.Int) (n *big.Int) {
	var err error
	if n, err = rand.Int(prng, max); err != nil {
		panic(err)
	}
	return
}
