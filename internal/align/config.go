// Package align implements the time-alignment pipeline: a Kaiser-windowed sinc
// resampler, a two-stage (coarse then fine) cross-correlation search, a
// control-point filter, and a piecewise-linear time-warping renderer.
//
// The algorithm is ported from marcan/blitzloop-tools' combine_karaoke.c: the
// constants and formulas below are taken from that tool, not reinvented.
package align

import "errors"

// Config collects every tunable constant of the alignment pipeline. It
// replaces the original tool's file-scope #defines with an explicit value
// threaded through the pipeline, per the "no mutable process-wide state"
// design note.
type Config struct {
	// Sinc kernel.
	SincWidth        int     // W: taps in the truncated sinc kernel
	SincOversampling int     // O: phase-table oversampling factor
	KaiserBeta       float64 // β: Kaiser window shape parameter

	// Pre-processing.
	MixdownStereo  bool    // collapse stereo search-domain buffers to L-R
	HighpassEnable bool    // apply one-pole pre-emphasis to search-domain buffers
	HighpassCoeff  float64 // a: one-pole highpass coefficient

	// Coarse search.
	CoarseSize     int // L: reference window length in samples
	CoarseMaxShift int // M: shifts searched are [-M/2, M)

	// Fine search.
	FineSize     int // L_f: reference window length in samples
	FineMaxShift int // sweep half-width in samples
	FineSubdiv   int // sub-sample steps per sample
	FineInterval int // stride between sweep positions

	// Control-point acceptance and filtering.
	FineDQ  float64 // decision-metric threshold for sweep acceptance
	QFactor float64 // quality-validity multiplier against mean quality

	// Render.
	OutputGain float64 // per-channel gain applied to both rendered halves
}

// DefaultConfig returns the design-value configuration specified by the
// original tool: W=33, O=32, β=7.68, COARSE_SIZE=15000, COARSE_MAX_SHIFT=200000,
// FINE_SIZE=256, FINE_MAX_SHIFT=128, FINE_SUBDIV=32, FINE_INTERVAL=25000,
// Q_FACTOR=2.5, FINE_DQ=-50, highpass a=0.8, output gain 0.8.
func DefaultConfig() Config {
	return Config{
		SincWidth:        33,
		SincOversampling: 32,
		KaiserBeta:       7.68,

		MixdownStereo:  true,
		HighpassEnable: true,
		HighpassCoeff:  0.8,

		CoarseSize:     15000,
		CoarseMaxShift: 200000,

		FineSize:     256,
		FineMaxShift: 128,
		FineSubdiv:   32,
		FineInterval: 25000,

		FineDQ:  -50,
		QFactor: 2.5,

		OutputGain: 0.8,
	}
}

// SincTableSize returns S = ((W-1)*O) + 1, the length of the sinc phase table.
func (c Config) SincTableSize() int {
	return (c.SincWidth-1)*c.SincOversampling + 1
}

// FineUnit returns the fine-search sweep step, 1/FineSubdiv samples.
func (c Config) FineUnit() float64 {
	return 1.0 / float64(c.FineSubdiv)
}

// Sentinel errors for the five fatal error kinds in the system's error
// handling design. Each is wrapped with context via fmt.Errorf("...: %w", ...)
// at the point it is raised.
var (
	// ErrArgument indicates the command line was invoked with the wrong arity.
	ErrArgument = errors.New("argument error")
	// ErrInput indicates a file could not be opened or decoded.
	ErrInput = errors.New("input error")
	// ErrMismatch indicates the two inputs disagree on channel count or sample rate.
	ErrMismatch = errors.New("mismatch error")
	// ErrAlignment indicates the control-point filter produced fewer than two points.
	ErrAlignment = errors.New("alignment error")
	// ErrOutput indicates the rendered output could not be written.
	ErrOutput = errors.New("output error")
)

// DebugLog is an optional low-noise trace sink for pipeline internals (coarse
// shift found, each accepted/rejected control point, filter statistics). It
// defaults to a no-op and is wired to a file-backed logger by cmd/vocalign
// when --debug is passed.
var DebugLog = func(format string, args ...interface{}) {}
