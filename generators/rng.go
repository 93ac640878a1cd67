package generators

import "math/rand"

// NewTaskRNG returns a *rand.Rand private to the caller's (locale, task)
// pair, seeded deterministically as baseOffset + locid*maxTaskPar + tid,
// so that no two concurrent samplers ever share mutable RNG state. Two
// calls with the same arguments always produce the same stream, which
// keeps generator runs reproducible given a fixed baseOffset.
func NewTaskRNG(baseOffset int64, locid, maxTaskPar, tid int) *rand.Rand {
	seed := baseOffset + int64(locid)*int64(maxTaskPar) + int64(tid)

	return rand.New(rand.NewSource(seed))
}
