// Package audio provides audio file I/O and the interleaved sample buffer
// that the alignment pipeline operates on.
package audio

// Buffer is an immutable-after-load interleaved sample array. Sample i of
// channel c lies at index i*Channels + c. Every buffer loaded for the
// pipeline is over-allocated by PadFrames frames of trailing zeros so the
// coarse and fine searches can read past the nominal end without bounds
// checks, matching read_audio()'s
// malloc((info.frames + COARSE_MAX_SHIFT) * sizeof(float) * channels) in
// combine_karaoke.c.
type Buffer struct {
	Samples    []float64 // interleaved, length (Frames+PadFrames)*Channels
	Channels   int
	SampleRate int
	Frames     int // nominal frame count, excluding padding
	PadFrames  int // trailing zero-padding frame count
}

// NewBuffer allocates a zeroed buffer with the given nominal frame count and
// trailing padding.
func NewBuffer(frames, channels, sampleRate, padFrames int) *Buffer {
	return &Buffer{
		Samples:    make([]float64, (frames+padFrames)*channels),
		Channels:   channels,
		SampleRate: sampleRate,
		Frames:     frames,
		PadFrames:  padFrames,
	}
}

// At returns the sample of channel c at frame i.
func (b *Buffer) At(i, c int) float64 {
	return b.Samples[i*b.Channels+c]
}

// Len returns the total frame count including padding.
func (b *Buffer) Len() int {
	return b.Frames + b.PadFrames
}
