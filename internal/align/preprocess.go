package align

import "github.com/linuxmatters/vocalign/internal/audio"

// Prepare produces the search-domain copy of a raw buffer: an optional
// stereo-to-difference mixdown, followed by a one-pole highpass. The
// render-domain buffer (the raw input) is left untouched; callers keep both.
//
// Ports the MIXDOWN/HPF stages from combine_karaoke.c's main() (lines 280-292).
func Prepare(buf *audio.Buffer, cfg Config) *audio.Buffer {
	out := buf
	if cfg.MixdownStereo && buf.Channels == 2 {
		out = mixdown(buf)
	}
	if cfg.HighpassEnable {
		out = highpass(out, cfg.HighpassCoeff)
	}
	return out
}

// mixdown collapses a stereo buffer to mono via out[i] = L[i] - R[i].
//
// Ports mixdown() from combine_karaoke.c lines 235-243.
func mixdown(buf *audio.Buffer) *audio.Buffer {
	out := audio.NewBuffer(buf.Frames, 1, buf.SampleRate, buf.PadFrames)
	for i := 0; i < buf.Frames; i++ {
		out.Samples[i] = buf.Samples[i*2] - buf.Samples[i*2+1]
	}
	return out
}

// highpass applies a one-pole pre-emphasis filter independently per channel:
// y[n] = a*y[n-1] + a*(x[n] - x[n-1]).
//
// Ports hpf() from combine_karaoke.c lines 245-263.
func highpass(buf *audio.Buffer, a float64) *audio.Buffer {
	ch := buf.Channels
	out := audio.NewBuffer(buf.Frames, ch, buf.SampleRate, buf.PadFrames)
	y := make([]float64, ch)
	xPrev := make([]float64, ch)
	for i := 0; i < buf.Frames; i++ {
		for c := 0; c < ch; c++ {
			x := buf.Samples[i*ch+c]
			y[c] = a*y[c] + a*(x-xPrev[c])
			xPrev[c] = x
			out.Samples[i*ch+c] = y[c]
		}
	}
	return out
}
