package align

import "math"

// CoarseSearch evaluates, for each integer shift sigma in
// [-CoarseMaxShift/2, CoarseMaxShift), the L1-dissimilarity
//
//	S(sigma) = -sum_{i=0}^{CoarseSize*channels-1} |ref[i] - search[(sigma-lo)*channels+i]|
//
// and returns the shift maximizing S, breaking ties by first occurrence.
// ref must hold at least CoarseSize*channels samples starting at the anchor;
// search must start CoarseMaxShift/2 samples before the anchor and run at
// least (CoarseMaxShift+CoarseSize-1)*channels samples past it, so every tested shift reads
// in bounds without negative indexing (guaranteed by the caller's choice of
// anchor plus buffer padding).
//
// Ports coarse_search() from combine_karaoke.c lines 182-204.
func CoarseSearch(ref, search []float64, channels int, cfg Config) int {
	best := 0
	bestScore := math.Inf(-1)
	haveBest := false

	lo := -cfg.CoarseMaxShift / 2
	hi := cfg.CoarseMaxShift
	window := cfg.CoarseSize * channels

	for shift := lo; shift < hi; shift++ {
		base := (shift - lo) * channels
		acc := 0.0
		for i := 0; i < window; i++ {
			acc -= math.Abs(ref[i] - search[base+i])
		}
		if !haveBest || acc > bestScore {
			best = shift
			bestScore = acc
			haveBest = true
		}
	}
	return best
}
