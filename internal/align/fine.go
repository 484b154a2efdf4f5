package align

import "math"

// FineSearch sweeps a continuous shift delta in [-FineMaxShift, FineMaxShift)
// in steps of FineUnit, evaluating the sinc-interpolated match between ref (a
// FineSize*channels window from A) and a window of B starting at base.
// Returns the shift maximizing score(delta) = acc(delta) / sqrt(rms), and that
// score as the confidence quality.
//
// base must leave enough margin in data for Interpolate's kernel support at
// every tested delta; callers guarantee this via buffer padding and the
// caller-side bounds implied by FineMaxShift and the sinc width.
//
// Ports fine_search() from combine_karaoke.c lines 206-233.
func FineSearch(ref []float64, data []float64, base, channels int, table []float64, cfg Config) (offset, quality float64) {
	rms := 0.0
	for _, v := range ref {
		rms += v * v
	}
	rms = math.Sqrt(rms)
	if rms == 0 {
		rms = 1 // silent reference window; avoids a NaN quality score
	}

	haveBest := false
	var best, bestScore float64

	unit := cfg.FineUnit()
	n := len(ref) / channels
	for step := 0; step < 2*cfg.FineMaxShift*cfg.FineSubdiv; step++ {
		delta := -float64(cfg.FineMaxShift) + float64(step)*unit

		acc := 0.0
		for i := 0; i < n; i++ {
			for c := 0; c < channels; c++ {
				interp := Interpolate(data, channels, c, float64(base+i)+delta, table, cfg)
				acc -= math.Abs(ref[i*channels+c] - interp)
			}
		}
		acc /= rms

		if !haveBest || acc > bestScore {
			best = delta
			bestScore = acc
			haveBest = true
		}
	}
	return best, bestScore
}
