package generators

import (
	"math"
	"sort"

	"github.com/mandysack/chgl/core"
	"github.com/mandysack/chgl/hypergraph"
	"github.com/mandysack/chgl/locale"
)

// DefaultAffinityBlockSize bounds how many degree-sorted vertices/edges
// are grouped into one BTER affinity block before a fresh (nV, nE, ρ) is
// computed for the next block.
const DefaultAffinityBlockSize = 16

// BTEROption configures GenerateBTER.
type BTEROption func(*bterParams)

type bterParams struct {
	blockSize int
	baseSeed  int64
}

// WithAffinityBlockSize overrides DefaultAffinityBlockSize.
func WithAffinityBlockSize(size int) BTEROption {
	return func(p *bterParams) {
		if size > 0 {
			p.blockSize = size
		}
	}
}

// WithBTERBaseSeed overrides the RNG base offset used for both the
// affinity-block Erdős–Rényi sub-draws and the residual Chung–Lu pass.
func WithBTERBaseSeed(seed int64) BTEROption {
	return func(p *bterParams) { p.baseSeed = seed }
}

// GenerateBTER implements the BTER generator: vertices and edges are
// sorted ascending by their target degree (dV, dE), then
// repeatedly grouped into degree-homogeneous affinity blocks of up to
// blockSize members. Each block's average target degree and target
// metamorphosis coefficient (mV, mE) determine a sub-domain size (nV, nE)
// and density ρ via the two mV/mE cases below; that sub-domain is filled
// with an Erdős–Rényi-style Bernoulli pass at density ρ. Once every block
// has been processed, the achieved degrees (which include any block
// members a block's sub-domain left untouched) are compared against
// dV/dE and the shortfall is topped up with GenerateChungLu.
//
// Complexity: O((|V|+|E|)/blockSize) blocks, each O(nV*nE) for its
// Erdős–Rényi sub-draw, plus one Chung–Lu top-up pass.
func GenerateBTER(g *hypergraph.AdjListHyperGraph, reg *locale.Registry, maxTaskPar int, dV, dE, mV, mE []float64, opts ...BTEROption) error {
	params := bterParams{blockSize: DefaultAffinityBlockSize, baseSeed: 0}
	for _, opt := range opts {
		opt(&params)
	}

	vOrder := argsortAscending(dV)
	eOrder := argsortAscending(dE)

	rng := NewTaskRNG(params.baseSeed, 0, 1, 0)

	vCursor, eCursor := 0, 0
	for vCursor < len(vOrder) && eCursor < len(eOrder) {
		vEnd := min(vCursor+params.blockSize, len(vOrder))
		eEnd := min(eCursor+params.blockSize, len(eOrder))

		vChunk := vOrder[vCursor:vEnd]
		eChunk := eOrder[eCursor:eEnd]

		avgDV, avgMV := blockAverages(vChunk, dV, mV)
		avgDE, avgME := blockAverages(eChunk, dE, mE)

		nV, nE, rho := bterBlockParams(avgDV, avgDE, avgMV, avgME, len(vChunk), len(eChunk))

		usedV, usedE := vChunk[:nV], eChunk[:nE]
		for _, vi := range usedV {
			for _, ei := range usedE {
				if rng.Float64() < rho {
					_ = g.AddInclusionBuffered(core.VertexID(vi), core.EdgeID(ei))
				}
			}
		}

		vCursor = vEnd
		eCursor = eEnd
	}

	g.FlushBuffers()

	residualV := residualDegrees(dV, g.GetVertexDegrees())
	residualE := residualDegrees(dE, g.GetEdgeDegrees())
	numInclusions := int(math.Round((sumFloat(residualV) + sumFloat(residualE)) / 2))
	if numInclusions > 0 {
		return GenerateChungLu(g, reg, maxTaskPar, residualV, residualE, numInclusions, WithBaseSeed(params.baseSeed+1))
	}

	return nil
}

// bterBlockParams computes (nV, nE, ρ) for one affinity block, splitting
// on whichever side (vertex or edge) carries the larger target
// metamorphosis coefficient. The engine has no recorded closed-form
// for the exact Kolda et al. BTER coefficients, so this uses a
// deterministic, monotonic approximation: the side with the larger
// target metamorphosis coefficient sets the block's density, the other
// side's extent is the block's average degree on the first side, and
// the first side's extent is the other side's average degree scaled by
// that coefficient (so a higher coefficient yields a denser and, up to
// the block bounds, larger sub-domain). Both extents are clamped to
// [1, block size].
func bterBlockParams(avgDV, avgDE, avgMV, avgME float64, maxNV, maxNE int) (nV, nE int, rho float64) {
	if avgMV >= avgME {
		rho = clamp01(avgMV)
		nE = clampInt(int(math.Round(avgDV)), 1, maxNE)
		nV = clampInt(int(math.Round(avgDE*avgMV)), 1, maxNV)
	} else {
		rho = clamp01(avgME)
		nV = clampInt(int(math.Round(avgDE)), 1, maxNV)
		nE = clampInt(int(math.Round(avgDV*avgME)), 1, maxNE)
	}

	return nV, nE, rho
}

func blockAverages(idx []int, degrees, coefs []float64) (avgDeg, avgCoef float64) {
	if len(idx) == 0 {
		return 0, 0
	}
	var sumDeg, sumCoef float64
	for _, i := range idx {
		sumDeg += degrees[i]
		if i < len(coefs) {
			sumCoef += coefs[i]
		}
	}

	return sumDeg / float64(len(idx)), sumCoef / float64(len(idx))
}

func residualDegrees(target []float64, achieved []int) []float64 {
	out := make([]float64, len(target))
	for i, t := range target {
		a := 0.0
		if i < len(achieved) {
			a = float64(achieved[i])
		}
		if r := t - a; r > 0 {
			out[i] = r
		}
	}

	return out
}

func sumFloat(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}

	return s
}

func argsortAscending(weights []float64) []int {
	idx := make([]int, len(weights))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return weights[idx[a]] < weights[idx[b]] })

	return idx
}

func clamp01(x float64) float64 {
	return clampFloat(x, 0, 1)
}

func clampFloat(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
