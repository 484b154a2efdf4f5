package align

import "github.com/linuxmatters/vocalign/internal/audio"

// Render streams the render-domain (raw) buffer A, writing a 2*C-channel
// output of A.Frames frames: channels [0,C) hold the time-warped instrumental
// (from render-domain buffer B), channels [C,2C) hold the original, both
// scaled by cfg.OutputGain. The offset at sample i is linearly interpolated
// between the surrounding control-point pair.
//
// points must already be filtered (at least two entries, strictly position
// ordered) — Render does not validate this itself; callers run
// FilterControlPoints first.
//
// Ports the render loop in combine_karaoke.c lines 419-451.
func Render(a, b *audio.Buffer, points []ControlPoint, table []float64, cfg Config) *audio.Buffer {
	channels := a.Channels
	out := audio.NewBuffer(a.Frames, channels*2, a.SampleRate, 0)

	halfWidth := float64(cfg.SincWidth / 2)
	safeLo := halfWidth
	safeHi := float64(b.Frames) - halfWidth

	pairIdx := 0
	for i := 0; i < a.Frames; i++ {
		for pairIdx+2 < len(points) && i >= points[pairIdx+1].Position {
			pairIdx++
		}
		p0, p1 := points[pairIdx], points[pairIdx+1]

		t := 0.0
		if p1.Position != p0.Position {
			t = float64(i-p0.Position) / float64(p1.Position-p0.Position)
		}
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		offset := t*p1.Offset + (1-t)*p0.Offset

		outBase := i * channels * 2
		pos := float64(i) + offset
		inRange := pos >= safeLo && pos < safeHi
		for c := 0; c < channels; c++ {
			if inRange {
				out.Samples[outBase+c] = Interpolate(b.Samples, channels, c, pos, table, cfg) * cfg.OutputGain
			} else {
				out.Samples[outBase+c] = 0
			}
			out.Samples[outBase+channels+c] = a.At(i, c) * cfg.OutputGain
		}
	}

	return out
}
