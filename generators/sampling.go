package generators

import (
	"errors"
	"fmt"
)

// ErrSamplingOutOfRange is returned by GetRandomElement when the supplied
// draw r falls outside the prefix table's covered range.
var ErrSamplingOutOfRange = errors.New("generators: sampling draw out of range")

// GetRandomElement implements an inverse-CDF sampler: given a prefix-sum
// table prefix with prefix[0] == 0 and prefix[len-1] == 1, and a uniform
// draw r in [prefix[0], prefix[len-1]], it returns the index of the
// value-domain element whose bucket [prefix[i], prefix[i+1]) contains r.
//
// The search is exponential (doubling the candidate bound while
// prefix[bound] <= r) followed by a linear forward scan from bound/2
// within the final bracket: O(log i) for the doubling plus O(i) for the
// scan, where i is the returned index.
func GetRandomElement(prefix []float64, r float64) (int, error) {
	n := len(prefix) - 1
	if n < 1 {
		return 0, fmt.Errorf("%w: prefix table must have at least 2 entries", ErrSamplingOutOfRange)
	}
	if r < prefix[0] || r > prefix[n] {
		return 0, fmt.Errorf("%w: r=%v outside [%v,%v]", ErrSamplingOutOfRange, r, prefix[0], prefix[n])
	}

	bound := 1
	for bound <= n && prefix[bound] <= r {
		bound *= 2
	}

	lo := bound / 2
	hi := bound
	if hi > n {
		hi = n
	}

	i := lo
	for i <= hi && prefix[i] <= r {
		i++
	}
	if i > n {
		i = n
	}

	return i - 1, nil
}

// PrefixSum normalizes weights into a cumulative-sum table suitable for
// GetRandomElement: prefix[0] == 0, prefix[len(weights)] == 1, and
// prefix[i+1]-prefix[i] is weights[i]'s share of the total.
func PrefixSum(weights []float64) []float64 {
	prefix := make([]float64, len(weights)+1)
	var total float64
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		// Degenerate all-zero-weight input: fall back to a uniform
		// distribution so callers still get a usable table.
		for i := range weights {
			weights[i] = 1
		}
		total = float64(len(weights))
	}

	var cum float64
	for i, w := range weights {
		cum += w / total
		prefix[i+1] = cum
	}
	prefix[len(weights)] = 1 // guard against floating-point drift

	return prefix
}
