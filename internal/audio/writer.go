package audio

import (
	"fmt"
	"math"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV quantizes a float64 interleaved Buffer to 16-bit signed PCM and
// writes it as a WAV container, using github.com/go-audio/wav. Only the
// first buf.Frames frames (excluding any trailing padding) are written.
func WriteWAV(path string, buf *Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, buf.SampleRate, 16, buf.Channels, 1)

	data := make([]int, buf.Frames*buf.Channels)
	for i := range data {
		data[i] = quantize16(buf.Samples[i])
	}

	pcm := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: buf.Channels,
			SampleRate:  buf.SampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(pcm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// quantize16 clamps and rounds a [-1, 1]-scaled sample to a 16-bit signed
// integer.
func quantize16(v float64) int {
	v = v * 32768.0
	if v > 32767 {
		v = 32767
	} else if v < -32768 {
		v = -32768
	}
	return int(math.Round(v))
}
