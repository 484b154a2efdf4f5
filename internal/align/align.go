package align

import (
	"fmt"

	"github.com/linuxmatters/vocalign/internal/audio"
)

// Stream carries the channel count and sample rate discovered from the
// original input, checked against the instrumental input, and threaded
// through the rest of the pipeline in place of the original tool's
// file-scope `channels`/`samplerate` globals.
type Stream struct {
	Channels   int
	SampleRate int
}

// Stage names reported through ProgressFunc, in pipeline order.
const (
	StageLoad     = "load"
	StagePrepare  = "prepare"
	StageCoarse   = "coarse"
	StageSweep    = "sweep"
	StageFilter   = "filter"
	StageRender   = "render"
	StageWrite    = "write"
	StageComplete = "complete"
)

// ProgressFunc receives one call per pipeline stage: stage is one of the
// Stage* constants, fraction is that stage's completion in [0,1], and detail
// is a short human-readable note (e.g. the coarse offset found). Callers may
// pass nil to run silently.
type ProgressFunc func(stage string, fraction float64, detail string)

// Result collects everything produced by a Run, for callers that want the
// statistics beyond the written file (the console reporter's summary table).
type Result struct {
	CoarseOffset  int
	ControlPoints []ControlPoint
	Stream        Stream
}

func report(progress ProgressFunc, stage string, fraction float64, detail string) {
	if progress != nil {
		progress(stage, fraction, detail)
	}
}

// Run executes the full pipeline: load both inputs, validate agreement,
// locate the coarse offset, sweep for fine control points, filter outliers,
// render the time-warped output, and write it to outputPath.
//
// A single blocking entry point that drives every stage and reports progress
// through a callback.
func Run(originalPath, instrumentalPath, outputPath string, cfg Config, progress ProgressFunc) (*Result, error) {
	table := BuildSincTable(cfg)

	origChannels, origRate, err := audio.Probe(originalPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInput, err)
	}
	instChannels, instRate, err := audio.Probe(instrumentalPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInput, err)
	}
	if origChannels != instChannels || origRate != instRate {
		return nil, fmt.Errorf("%w: original is %dch/%dHz, instrumental is %dch/%dHz",
			ErrMismatch, origChannels, origRate, instChannels, instRate)
	}
	stream := Stream{Channels: origChannels, SampleRate: origRate}

	report(progress, StageLoad, 0, "reading inputs")
	padFrames := cfg.CoarseMaxShift
	original, err := audio.ReadWAV(originalPath, padFrames)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInput, err)
	}
	instrumental, err := audio.ReadWAV(instrumentalPath, padFrames)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInput, err)
	}
	report(progress, StageLoad, 1, "inputs loaded")

	report(progress, StagePrepare, 0, "mixdown/highpass")
	searchA := Prepare(original, cfg)
	searchB := Prepare(instrumental, cfg)
	searchChannels := searchA.Channels
	report(progress, StagePrepare, 1, "search-domain buffers ready")

	anchor := original.Frames / 3
	if anchor < cfg.CoarseMaxShift {
		anchor = cfg.CoarseMaxShift
	}

	report(progress, StageCoarse, 0, "searching")
	lo := -cfg.CoarseMaxShift / 2
	refBase := anchor * searchChannels
	ref := searchA.Samples[refBase : refBase+cfg.CoarseSize*searchChannels]
	searchBase := (anchor + lo) * searchChannels
	search := searchB.Samples[searchBase:]
	coarseOffset := CoarseSearch(ref, search, searchChannels, cfg)
	DebugLog("coarse: anchor=%d offset=%d", anchor, coarseOffset)
	report(progress, StageCoarse, 1, fmt.Sprintf("coarse offset %d samples", coarseOffset))

	report(progress, StageSweep, 0, "sweeping control points")
	points := Sweep(searchA.Samples, searchB.Samples, searchChannels, anchor, coarseOffset, original.Frames, instrumental.Frames, table, cfg)
	report(progress, StageSweep, 1, fmt.Sprintf("%d candidate points", len(points)))

	report(progress, StageFilter, 0, "rejecting outliers")
	filtered, err := FilterControlPoints(points, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v candidate points, fewer than 2 survived filtering", err, len(points))
	}
	report(progress, StageFilter, 1, fmt.Sprintf("%d control points", len(filtered)))

	report(progress, StageRender, 0, "rendering")
	out := Render(original, instrumental, filtered, table, cfg)
	report(progress, StageRender, 1, "render complete")

	report(progress, StageWrite, 0, "writing output")
	if err := audio.WriteWAV(outputPath, out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutput, err)
	}
	report(progress, StageWrite, 1, outputPath)
	report(progress, StageComplete, 1, outputPath)

	return &Result{
		CoarseOffset:  coarseOffset,
		ControlPoints: filtered,
		Stream:        stream,
	}, nil
}
