package generators

import (
	"fmt"
	"math"
	"sync"

	"github.com/mandysack/chgl/core"
	"github.com/mandysack/chgl/hypergraph"
	"github.com/mandysack/chgl/locale"
)

// ErdosRenyiOption configures GenerateErdosRenyi.
type ErdosRenyiOption func(*erdosRenyiParams)

type erdosRenyiParams struct {
	couponCollector bool
	baseSeed        int64
}

// WithCouponCollector applies the p' = ln(1/(1-p)) correction. Drawing
// numInclusions = round(|V|*|E|*p') independent random pairs with
// replacement produces duplicates; the expected fraction of *distinct*
// pairs such a draw covers converges to p only once the draw count
// itself is inflated by this correction (1-e^-p' = p).
func WithCouponCollector(enabled bool) ErdosRenyiOption {
	return func(p *erdosRenyiParams) { p.couponCollector = enabled }
}

// WithBaseSeed overrides the default RNG base offset used to derive
// per-task streams.
func WithBaseSeed(seed int64) ErdosRenyiOption {
	return func(p *erdosRenyiParams) { p.baseSeed = seed }
}

// GenerateErdosRenyi populates g with the Erdős–Rényi G(|V|,|E|,p)
// model: it computes numInclusions = round(|V|*|E|*p') (optionally
// coupon-collector-corrected) and draws that many independent (v,e)
// pairs uniformly at random, splitting the draws across reg's locales
// and maxTaskPar per-locale tasks, mirroring GenerateChungLu's shape.
// Each draw is inserted via AddInclusionBuffered and the graph is
// flushed once every task has finished.
//
// Duplicate (v,e) draws are an expected, non-fatal outcome of
// independent sampling; callers wanting an exact count should follow
// up with NodeData.RemoveDuplicates on the affected sides.
//
// p' == 1 (either an uncorrected p == 1, or a corrected p' saturating
// to 1) is handled as a deterministic full-domain sweep instead of
// numInclusions independent draws: |V|*|E| random draws with
// replacement do not reliably cover every pair, while "certainly
// include every pair" is exactly what p == 1 means.
//
// Complexity: O(numInclusions/(numLocales*maxTaskPar)) per task in the
// general case, O(|V|*|E|/numLocales) per locale when p' == 1.
func GenerateErdosRenyi(g *hypergraph.AdjListHyperGraph, reg *locale.Registry, maxTaskPar int, p float64, opts ...ErdosRenyiOption) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("generators: bad probability %v, must be in [0,1]", p)
	}
	if maxTaskPar < 1 {
		maxTaskPar = 1
	}

	params := erdosRenyiParams{baseSeed: 0}
	for _, opt := range opts {
		opt(&params)
	}

	pPrime := p
	if params.couponCollector && p < 1 {
		pPrime = math.Log(1 / (1 - p))
		if pPrime > 1 {
			pPrime = 1
		}
	}

	numVertices := g.NumVertices()
	numEdges := g.NumEdges()
	numLocales := reg.NumLocales()
	if numVertices == 0 || numEdges == 0 {
		g.FlushBuffers()
		return nil
	}

	if pPrime >= 1 {
		generateErdosRenyiFullDomain(g, reg, numLocales, numVertices, numEdges)
		return nil
	}

	numInclusions := int(math.Round(float64(numVertices) * float64(numEdges) * pPrime))
	if numInclusions <= 0 {
		g.FlushBuffers()
		return nil
	}

	totalWorkers := numLocales * maxTaskPar
	if totalWorkers == 0 {
		totalWorkers = 1
	}
	perWorker := numInclusions / totalWorkers
	remainder := numInclusions % totalWorkers

	var wg sync.WaitGroup
	worker := 0
	for loc := 0; loc < numLocales; loc++ {
		for t := 0; t < maxTaskPar; t++ {
			count := perWorker
			if worker < remainder {
				count++
			}
			worker++
			if count == 0 {
				continue
			}

			wg.Add(1)
			go func(loc, t, count int) {
				defer wg.Done()
				rng := NewTaskRNG(params.baseSeed, loc, maxTaskPar, t)
				for i := 0; i < count; i++ {
					v := rng.Intn(numVertices)
					e := rng.Intn(numEdges)
					_ = g.AddInclusionBuffered(core.VertexID(v), core.EdgeID(e))
				}
			}(loc, t, count)
		}
	}
	wg.Wait()
	g.FlushBuffers()

	return nil
}

// generateErdosRenyiFullDomain inserts every (v,e) pair in g's domain,
// partitioned across reg's locales by vertex ownership.
func generateErdosRenyiFullDomain(g *hypergraph.AdjListHyperGraph, reg *locale.Registry, numLocales, numVertices, numEdges int) {
	var wg sync.WaitGroup
	for loc := 0; loc < numLocales; loc++ {
		vLo, vHi := localeVertexRange(loc, numLocales, numVertices)
		if vLo >= vHi {
			continue
		}
		wg.Add(1)
		go func(vLo, vHi int) {
			defer wg.Done()
			for v := vLo; v < vHi; v++ {
				for e := 0; e < numEdges; e++ {
					_ = g.AddInclusionBuffered(core.VertexID(v), core.EdgeID(e))
				}
			}
		}(vLo, vHi)
	}
	wg.Wait()
	g.FlushBuffers()
}

// localeVertexRange returns the contiguous [lo,hi) vertex block owned by
// locale loc under the registry's block distribution, mirroring
// locale.Registry's internal blockOwner formula.
func localeVertexRange(loc, numLocales, numVertices int) (lo, hi int) {
	if numLocales <= 1 {
		return 0, numVertices
	}
	blockSize := (numVertices + numLocales - 1) / numLocales
	lo = loc * blockSize
	hi = lo + blockSize
	if hi > numVertices {
		hi = numVertices
	}
	if lo > numVertices {
		lo = numVertices
	}

	return lo, hi
}
