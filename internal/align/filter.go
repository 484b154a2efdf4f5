package align

import "math"

// FilterControlPoints performs the two-pass outlier rejection described in
// §4.7: points are first restricted to those whose quality exceeds
// QFactor*meanQuality, then further restricted to those whose offset lies
// within 2 standard deviations of the mean offset of that quality-valid set.
// Order (by Position, already guaranteed by Sweep) is preserved.
//
// Fewer than two survivors is reported as ErrAlignment — the renderer cannot
// build a piecewise-linear curve from 0 or 1 points.
//
// Ports the filtering logic in combine_karaoke.c lines 381-414, but produces
// the filtered list directly instead of a valid-flag-then-compact pass.
func FilterControlPoints(points []ControlPoint, cfg Config) ([]ControlPoint, error) {
	if len(points) == 0 {
		return nil, ErrAlignment
	}

	sumQ := 0.0
	for _, p := range points {
		sumQ += p.Quality
	}
	meanQ := sumQ / float64(len(points))

	var qualityValid []ControlPoint
	for _, p := range points {
		if p.Quality > cfg.QFactor*meanQ {
			qualityValid = append(qualityValid, p)
		}
	}
	if len(qualityValid) == 0 {
		return nil, ErrAlignment
	}

	sumOff, sumOff2 := 0.0, 0.0
	for _, p := range qualityValid {
		sumOff += p.Offset
		sumOff2 += p.Offset * p.Offset
	}
	n := float64(len(qualityValid))
	meanOff := sumOff / n
	variance := (sumOff2 / n) - meanOff*meanOff
	if variance < 0 {
		variance = 0 // guards against negative rounding residue
	}
	stdevOff := math.Sqrt(variance)

	DebugLog("filter: %d points, mean quality %f, mean offset %f, stdev %f", len(qualityValid), meanQ, meanOff, stdevOff)

	survivors := make([]ControlPoint, 0, len(qualityValid))
	for _, p := range qualityValid {
		if absF(p.Offset-meanOff) <= 2*stdevOff {
			survivors = append(survivors, p)
		}
	}

	if len(survivors) < 2 {
		return nil, ErrAlignment
	}
	return survivors, nil
}
