package core

// VertexID is a strongly typed wrapper over an integer vertex identifier.
// It is interconvertible with int64 (see ToVertexID/Int) but is a distinct
// Go type from EdgeID, so passing an EdgeID where a VertexID is expected
// is caught by the compiler rather than at runtime.
type VertexID int64

// Int returns the underlying integer value of v.
func (v VertexID) Int() int64 { return int64(v) }

// EdgeID is a strongly typed wrapper over an integer edge identifier.
// Distinct from VertexID for the same reason: compile-time separation
// of vertex and edge id spaces.
type EdgeID int64

// Int returns the underlying integer value of e.
func (e EdgeID) Int() int64 { return int64(e) }

// Integral is satisfied by any signed or unsigned Go integer type. It is
// the constraint used by ToVertexID/ToEdgeID so that a caller can never
// construct a descriptor from, say, a float64 or a string — the conversion
// functions in hypergraph (ToVertex/ToEdge) are instantiated over this
// constraint and therefore rejected at compile time for non-integral
// inputs.
type Integral interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ToVertexID converts any Integral value into a VertexID.
// Complexity: O(1).
func ToVertexID[T Integral](i T) VertexID { return VertexID(int64(i)) }

// ToEdgeID converts any Integral value into an EdgeID.
// Complexity: O(1).
func ToEdgeID[T Integral](i T) EdgeID { return EdgeID(int64(i)) }
