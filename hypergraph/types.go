package hypergraph

import (
	"errors"
	"fmt"

	"github.com/mandysack/chgl/core"
	"github.com/mandysack/chgl/destbuffer"
	"github.com/mandysack/chgl/locale"
)

// Sentinel errors for hypergraph operations.
var (
	// ErrOutOfVertices indicates a vertex descriptor outside [0, numVertices).
	ErrOutOfVertices = errors.New("hypergraph: vertex id out of range")

	// ErrOutOfEdges indicates an edge descriptor outside [0, numEdges).
	ErrOutOfEdges = errors.New("hypergraph: edge id out of range")

	// ErrNilRegistry indicates construction was attempted with a nil locale.Registry.
	ErrNilRegistry = errors.New("hypergraph: locale registry must not be nil")
)

// AdjListHyperGraph is the bipartite vertex/edge incidence store.
//
// vertexData[i] holds the EdgeIDs incident to vertex i; edgeData[j] holds
// the VertexIDs incident to edge j. Both are dense arrays sized at
// construction; this engine does not support growing either id space —
// that is left as a future extension.
type AdjListHyperGraph struct {
	numVertices int
	numEdges    int

	vertexData []*core.NodeData[core.EdgeID]
	edgeData   []*core.NodeData[core.VertexID]

	reg *locale.Registry

	// destBufs[loc] is the DestinationBuffer owned by locale loc, used by
	// both vertex-side and edge-side buffered inclusion writes landing on
	// that locale (distinguished per-entry by destbuffer.Kind).
	destBufs []*destbuffer.Buffer

	// privID is the privatization id assigned to this graph's per-locale
	// local handles; it has no behavioral effect in this single-process
	// model beyond identifying the graph in the registry's
	// privatized-object table (see locale.Registry).
	privID uint64
}

// Option configures an AdjListHyperGraph at construction.
type Option func(*AdjListHyperGraph, *[]destbuffer.Option)

// WithBufferCapacity overrides destbuffer.DefaultCapacity for every
// locale's DestinationBuffer.
func WithBufferCapacity(capacity int) Option {
	return func(_ *AdjListHyperGraph, bufOpts *[]destbuffer.Option) {
		*bufOpts = append(*bufOpts, destbuffer.WithCapacity(capacity))
	}
}

// NewGraph constructs an AdjListHyperGraph with numVertices vertices and
// numEdges edges, distributing both id spaces across reg's locales by
// contiguous blocks. Every NodeData starts empty.
//
// Complexity: O(numVertices + numEdges + numLocales).
func NewGraph(numVertices, numEdges int, reg *locale.Registry, opts ...Option) (*AdjListHyperGraph, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if numVertices < 0 {
		return nil, fmt.Errorf("%w: numVertices=%d", ErrOutOfVertices, numVertices)
	}
	if numEdges < 0 {
		return nil, fmt.Errorf("%w: numEdges=%d", ErrOutOfEdges, numEdges)
	}

	g := &AdjListHyperGraph{
		numVertices: numVertices,
		numEdges:    numEdges,
		vertexData:  make([]*core.NodeData[core.EdgeID], numVertices),
		edgeData:    make([]*core.NodeData[core.VertexID], numEdges),
		reg:         reg,
	}
	for i := range g.vertexData {
		g.vertexData[i] = core.NewNodeData[core.EdgeID]()
	}
	for i := range g.edgeData {
		g.edgeData[i] = core.NewNodeData[core.VertexID]()
	}

	var bufOpts []destbuffer.Option
	for _, opt := range opts {
		opt(g, &bufOpts)
	}
	g.destBufs = make([]*destbuffer.Buffer, reg.NumLocales())
	for i := range g.destBufs {
		g.destBufs[i] = destbuffer.New(bufOpts...)
	}

	privID, instances := reg.Privatize()
	g.privID = privID
	for i := range instances {
		instances[i] = g
	}

	return g, nil
}

// NumVertices returns the size of the vertex id space.
// Complexity: O(1).
func (g *AdjListHyperGraph) NumVertices() int { return g.numVertices }

// NumEdges returns the size of the edge id space.
// Complexity: O(1).
func (g *AdjListHyperGraph) NumEdges() int { return g.numEdges }

// PrivatizationID returns the id under which this graph's per-locale
// handle was registered in its locale.Registry.
// Complexity: O(1).
func (g *AdjListHyperGraph) PrivatizationID() uint64 { return g.privID }

// ToVertex converts an Integral value into a VertexID, rejecting
// non-integral inputs at compile time and out-of-range inputs at
// runtime via a panic (precondition violation -> fatal assertion).
//
// Complexity: O(1).
func ToVertex[T core.Integral](g *AdjListHyperGraph, i T) core.VertexID {
	v := core.ToVertexID(i)
	if int64(v) < 0 || int64(v) >= int64(g.numVertices) {
		panic(fmt.Sprintf("hypergraph: ToVertex: %v out of range [0,%d)", v, g.numVertices))
	}

	return v
}

// ToEdge converts an Integral value into an EdgeID, with the same
// compile-time and runtime checks as ToVertex.
//
// Complexity: O(1).
func ToEdge[T core.Integral](g *AdjListHyperGraph, i T) core.EdgeID {
	e := core.ToEdgeID(i)
	if int64(e) < 0 || int64(e) >= int64(g.numEdges) {
		panic(fmt.Sprintf("hypergraph: ToEdge: %v out of range [0,%d)", e, g.numEdges))
	}

	return e
}

// ownerOfVertex computes which locale owns v under the registry's block distribution.
func (g *AdjListHyperGraph) ownerOfVertex(v core.VertexID) locale.ID {
	return g.reg.OwnerOfVertex(int(v), g.numVertices)
}

// ownerOfEdge computes which locale owns e under the registry's block distribution.
func (g *AdjListHyperGraph) ownerOfEdge(e core.EdgeID) locale.ID {
	return g.reg.OwnerOfEdge(int(e), g.numEdges)
}
