package generators

import (
	"sync"

	"github.com/mandysack/chgl/core"
	"github.com/mandysack/chgl/hypergraph"
	"github.com/mandysack/chgl/locale"
)

// GenerateChungLu populates g following the Chung–Lu model: given
// desired vertex degrees dV and edge degrees dE (|dV| ==
// g.NumVertices(), |dE| == g.NumEdges()), it normalizes both into
// prefix-sum tables and draws numInclusions independent (v,e) pairs by
// sampling each side's prefix table with a uniform [0,1) real, splitting
// the draws evenly across reg's locales and maxTaskPar per-locale tasks.
// Each accepted pair is inserted via AddInclusionBuffered; the graph is
// flushed once every task has finished.
//
// Duplicate (v,e) draws are an expected, non-fatal outcome of independent
// sampling; callers wanting an exact count should follow up with
// NodeData.RemoveDuplicates on the affected sides.
//
// Complexity: O(numInclusions/(numLocales*maxTaskPar) * log(max(|dV|,|dE|))) per task.
func GenerateChungLu(g *hypergraph.AdjListHyperGraph, reg *locale.Registry, maxTaskPar int, dV, dE []float64, numInclusions int, opts ...ErdosRenyiOption) error {
	if maxTaskPar < 1 {
		maxTaskPar = 1
	}
	if numInclusions < 0 {
		numInclusions = 0
	}

	params := erdosRenyiParams{baseSeed: 0}
	for _, opt := range opts {
		opt(&params)
	}

	pV := PrefixSum(dV)
	pE := PrefixSum(dE)

	numLocales := reg.NumLocales()
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
					vi, err := GetRandomElement(pV, rng.Float64())
					if err != nil {
						continue
					}
					ei, err := GetRandomElement(pE, rng.Float64())
					if err != nil {
						continue
					}
					_ = g.AddInclusionBuffered(core.VertexID(vi), core.EdgeID(ei))
				}
			}(loc, t, count)
		}
	}
	wg.Wait()
	g.FlushBuffers()

	return nil
}
