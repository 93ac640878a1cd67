package bag

// Default work-queue initial/max block sizes, and the tight-spin bounds
// used while spin-waiting on a hinted segment's status word before
// yielding more aggressively.
const (
	DefaultInitialBlockSize = 1024
	DefaultMaxBlockSize     = 1 << 20

	MinTightSpins = 8
	MaxTightSpins = 1024
)
