package audio

import (
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

// ReadWAV opens a WAV file and decodes it into a float64 interleaved Buffer,
// padded by padFrames frames of trailing zeros. Every sample format the
// go-audio/wav decoder exposes (8/16/24/32-bit integer PCM) is normalized to
// the [-1, 1] range at this boundary, so every later pipeline stage works
// only in terms of this representation.
//
// Open, decode, return a populated value plus a wrapped error on any failure.
func ReadWAV(path string, padFrames int) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%s is not a valid WAV file", path)
	}

	pcm, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	channels := pcm.Format.NumChannels
	sampleRate := pcm.Format.SampleRate
	if channels <= 0 {
		return nil, fmt.Errorf("%s: invalid channel count %d", path, channels)
	}

	frames := len(pcm.Data) / channels
	buf := NewBuffer(frames, channels, sampleRate, padFrames)
	scale := normalizationScale(pcm.SourceBitDepth)
	for i, v := range pcm.Data {
		buf.Samples[i] = float64(v) / scale
	}

	return buf, nil
}

// normalizationScale returns the divisor that maps a decoded integer sample
// of the given source bit depth to the [-1, 1] range.
func normalizationScale(bitDepth int) float64 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default: // 16-bit is by far the common case, and the safe fallback
		return 32768.0
	}
}

// Probe reads only the header of a WAV file to discover its channel count
// and sample rate without decoding the full PCM payload, used to validate
// agreement between the two inputs before committing to a full decode.
func Probe(path string) (channels, sampleRate int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return 0, 0, fmt.Errorf("%s is not a valid WAV file", path)
	}
	format := decoder.Format()
	if format == nil {
		return 0, 0, fmt.Errorf("%s: failed to read WAV format", path)
	}
	return format.NumChannels, format.SampleRate, nil
}
