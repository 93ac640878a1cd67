package util

// Ordered is satisfied by any type with a well-defined total order under
// Go's native comparison operators, including the engine's VertexID and
// EdgeID descriptor types (both ~int64).
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Intersection returns the sorted intersection of a and b, both of which
// must already be sorted ascending (the convention every
// NodeData.SortedSnapshot caller relies on). The result is duplicate-free
// when the inputs are; a value repeated in both inputs appears as often
// as its smaller repeat count. A classic two-pointer merge
// scan, mirroring the sorted-output-then-scan idiom used throughout the
// engine's neighbor-list helpers.
//
// Complexity: O(len(a) + len(b)).
func Intersection[T Ordered](a, b []T) []T {
	var out []T
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

// IntersectionSize returns len(Intersection(a, b)) without allocating the
// intermediate slice.
//
// Complexity: O(len(a) + len(b)).
func IntersectionSize[T Ordered](a, b []T) int {
	count := 0
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			count++
			i++
			j++
		}
	}

	return count
}

// IntersectionSizeAtLeast reports whether the intersection of a and b has
// at least threshold elements, short-circuiting the scan as soon as the
// threshold is reached. Used by traverse.SWalk, which only cares whether
// two neighbor lists share "enough" elements.
//
// Complexity: O(len(a) + len(b)) worst case, less on early exit.
func IntersectionSizeAtLeast[T Ordered](a, b []T, threshold int) bool {
	if threshold <= 0 {
		return true
	}

	count := 0
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			count++
			if count >= threshold {
				return true
			}
			i++
			j++
		}
	}

	return false
}
