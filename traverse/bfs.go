package traverse

import (
	"sync"
	"sync/atomic"

	"github.com/mandysack/chgl/core"
	"github.com/mandysack/chgl/hypergraph"
	"github.com/mandysack/chgl/locale"
	"github.com/mandysack/chgl/termination"
	"github.com/mandysack/chgl/workqueue"
)

type itemKind uint8

const (
	vertexItem itemKind = iota
	edgeItem
)

type bfsItem struct {
	kind itemKind
	id   int64
}

// BFSOption configures BFS.
type BFSOption func(*bfsParams)

type bfsParams struct {
	maxTaskPar       int
	initialBlockSize int
	maxBlockSize     int
	tightSpins       int
}

// WithWorkerCount overrides the per-locale worker count used by the
// underlying WorkQueue (default 2).
func WithWorkerCount(n int) BFSOption {
	return func(p *bfsParams) {
		if n > 0 {
			p.maxTaskPar = n
		}
	}
}

// Result is the outcome of a BFS walk: per-vertex hop distance from the
// nearest seed, and per-edge hop distance (the distance at which that
// edge was first reached while expanding a vertex).
type Result struct {
	VertexDistance map[core.VertexID]int
	EdgeDistance   map[core.EdgeID]int
}

// BFS performs a distributed breadth-first search over g's bipartite
// incidence graph starting from seeds, alternating vertex and edge
// hops: visiting vertex v at distance d marks every unvisited incident
// edge at distance d, and visiting an edge at distance d marks every
// unvisited incident vertex at distance d+1, using the same recursive
// work generation via WorkQueue + TerminationDetector as s-walk.
//
// Complexity: O(numVertices + numEdges + totalInclusions).
func BFS(g *hypergraph.AdjListHyperGraph, reg *locale.Registry, seeds []core.VertexID, opts ...BFSOption) Result {
	params := bfsParams{maxTaskPar: 2, initialBlockSize: 1024, maxBlockSize: 1 << 16, tightSpins: 32}
	for _, opt := range opts {
		opt(&params)
	}

	nv := g.NumVertices()
	ne := g.NumEdges()

	visitedV := make([]atomic.Bool, nv)
	visitedE := make([]atomic.Bool, ne)
	distV := make([]int64, nv)
	distE := make([]int64, ne)

	wq := workqueue.New[bfsItem](reg, params.maxTaskPar, params.initialBlockSize, params.maxBlockSize, params.tightSpins)
	td := termination.New()

	for _, s := range seeds {
		if int(s) < 0 || int(s) >= nv {
			continue
		}
		if !visitedV[s].CompareAndSwap(false, true) {
			continue
		}
		distV[s] = 0
		loc := reg.OwnerOfVertex(int(s), nv)
		td.Started(1)
		_ = wq.AddWork(loc, loc, bfsItem{kind: vertexItem, id: int64(s)})
	}

	var wg sync.WaitGroup
	for loc := 0; loc < reg.NumLocales(); loc++ {
		wg.Add(1)
		go func(loc locale.ID) {
			defer wg.Done()

			handler := func(item bfsItem) {
				defer td.Finished(1)

				switch item.kind {
				case vertexItem:
					v := core.VertexID(item.id)
					d := distV[v]
					for _, e := range g.VertexNeighbors(v) {
						if !visitedE[e].CompareAndSwap(false, true) {
							continue
						}
						distE[e] = d
						eloc := reg.OwnerOfEdge(int(e), ne)
						td.Started(1)
						_ = wq.AddWork(loc, eloc, bfsItem{kind: edgeItem, id: int64(e)})
					}
				case edgeItem:
					e := core.EdgeID(item.id)
					d := distE[e]
					for _, v2 := range g.EdgeNeighbors(e) {
						if !visitedV[v2].CompareAndSwap(false, true) {
							continue
						}
						distV[v2] = d + 1
						vloc := reg.OwnerOfVertex(int(v2), nv)
						td.Started(1)
						_ = wq.AddWork(loc, vloc, bfsItem{kind: vertexItem, id: int64(v2)})
					}
				}
			}

			wq.DoWorkLoop(loc, params.maxTaskPar, td, handler)
		}(locale.ID(loc))
	}
	wg.Wait()

	result := Result{
		VertexDistance: make(map[core.VertexID]int),
		EdgeDistance:   make(map[core.EdgeID]int),
	}
	for v := 0; v < nv; v++ {
		if visitedV[v].Load() {
			result.VertexDistance[core.VertexID(v)] = int(distV[v])
		}
	}
	for e := 0; e < ne; e++ {
		if visitedE[e].Load() {
			result.EdgeDistance[core.EdgeID(e)] = int(distE[e])
		}
	}

	return result
}
