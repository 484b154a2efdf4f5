package report

import (
	"github.com/linuxmatters/vocalign/internal/align"
	"github.com/linuxmatters/vocalign/internal/cli"
)

// stageTitles gives each pipeline stage constant a human-readable heading for
// the console reporter.
var stageTitles = map[string]string{
	align.StageLoad:     "Loading inputs",
	align.StagePrepare:  "Preparing search buffers",
	align.StageCoarse:   "Coarse search",
	align.StageSweep:    "Control-point sweep",
	align.StageFilter:   "Filtering control points",
	align.StageRender:   "Rendering output",
	align.StageWrite:    "Writing output",
	align.StageComplete: "Complete",
}

// Console returns a align.ProgressFunc that prints one line per pipeline
// stage transition, with bold stage headers and muted detail. It is not a
// stable interface, only a thin, synchronous, line-oriented writer.
func Console() align.ProgressFunc {
	started := map[string]bool{}
	return func(stage string, fraction float64, detail string) {
		title := stageTitles[stage]
		if title == "" {
			title = stage
		}
		if fraction == 0 && !started[stage] {
			started[stage] = true
			cli.PrintSection(title)
			return
		}
		if fraction >= 1 {
			if detail == "" {
				return
			}
			if stage == align.StageComplete {
				cli.PrintSuccess(detail)
				return
			}
			cli.PrintInfo("detail", detail)
		}
	}
}
