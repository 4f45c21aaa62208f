package randutil

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *mrand.Rand {
	u := uint64(seed)
	return mrand.New(mrand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns an independent stream for worker number stream of a run seeded
// with seed. Streams for distinct indexes do not overlap in practice and the same
// (seed, stream) pair always yields the same sequence.
func Derive(seed int64, stream int) *mrand.Rand {
	return New(DeriveSeed(seed, stream))
}

// DeriveSeed returns the seed Derive would use.
func DeriveSeed(seed int64, stream int) int64 {
	return int64(mix(uint64(seed) ^ mix(uint64(stream)+1)*goldenRatio64))
}

// RandomSeed returns a seed from the operating system's entropy source.
func RandomSeed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("randutil: reading entropy: " + err.Error())
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
