package align

import "math"

// testSignal generates a deterministic, aperiodic single-channel waveform
// (a sum of three incommensurate sines) long enough to give the coarse and
// fine searches a distinctive, non-repeating shape to lock onto.
func testSignal(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		x := float64(i)
		s[i] = 0.6*math.Sin(x*0.013) + 0.3*math.Sin(x*0.047) + 0.1*math.Sin(x*0.231)
	}
	return s
}
