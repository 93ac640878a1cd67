package traverse

import (
	"sync"
	"sync/atomic"

	"github.com/mandysack/chgl/core"
	"github.com/mandysack/chgl/hypergraph"
	"github.com/mandysack/chgl/locale"
	"github.com/mandysack/chgl/termination"
	"github.com/mandysack/chgl/util"
	"github.com/mandysack/chgl/workqueue"
)

// SWalkOption configures SWalk.
type SWalkOption func(*bfsParams)

// WithSWalkWorkerCount overrides the per-locale worker count (default 2).
func WithSWalkWorkerCount(n int) SWalkOption {
	return func(p *bfsParams) {
		if n > 0 {
			p.maxTaskPar = n
		}
	}
}

// SWalk discovers the connected component of hyperedges reachable from
// seeds under the s-line-graph adjacency: two edges e1, e2 are adjacent
// iff they share at least s vertices (util.IntersectionSizeAtLeast).
// Implemented with the same WorkQueue + TerminationDetector
// recursive-work pattern as BFS.
//
// Complexity: O(numEdges * avgVertexDegree * avgEdgeDegree) worst case —
// every visited edge rescans its neighborhood for s-overlap.
func SWalk(g *hypergraph.AdjListHyperGraph, reg *locale.Registry, s int, seeds []core.EdgeID, opts ...SWalkOption) []core.EdgeID {
	params := bfsParams{maxTaskPar: 2, initialBlockSize: 1024, maxBlockSize: 1 << 16, tightSpins: 32}
	for _, opt := range opts {
		opt(&params)
	}
	if s < 1 {
		s = 1
	}

	ne := g.NumEdges()
	visited := make([]atomic.Bool, ne)

	wq := workqueue.New[int64](reg, params.maxTaskPar, params.initialBlockSize, params.maxBlockSize, params.tightSpins)
	td := termination.New()

	for _, e := range seeds {
		if int(e) < 0 || int(e) >= ne {
			continue
		}
		if !visited[e].CompareAndSwap(false, true) {
			continue
		}
		loc := reg.OwnerOfEdge(int(e), ne)
		td.Started(1)
		_ = wq.AddWork(loc, loc, int64(e))
	}

	var wg sync.WaitGroup
	for loc := 0; loc < reg.NumLocales(); loc++ {
		wg.Add(1)
		go func(loc locale.ID) {
			defer wg.Done()

			handler := func(item int64) {
				defer td.Finished(1)

				e := core.EdgeID(item)
				eNeighbors := g.EdgeNeighbors(e)
				candidates := make(map[core.EdgeID]struct{})
				for _, v := range eNeighbors {
					for _, e2 := range g.VertexNeighbors(v) {
						if e2 != e {
							candidates[e2] = struct{}{}
						}
					}
				}

				for e2 := range candidates {
					if !util.IntersectionSizeAtLeast(eNeighbors, g.EdgeNeighbors(e2), s) {
						continue
					}
					if !visited[e2].CompareAndSwap(false, true) {
						continue
					}
					e2loc := reg.OwnerOfEdge(int(e2), ne)
					td.Started(1)
					_ = wq.AddWork(loc, e2loc, int64(e2))
				}
			}

			wq.DoWorkLoop(loc, params.maxTaskPar, td, handler)
		}(locale.ID(loc))
	}
	wg.Wait()

	var out []core.EdgeID
	for e := 0; e < ne; e++ {
		if visited[e].Load() {
			out = append(out, core.EdgeID(e))
		}
	}

	return out
}
