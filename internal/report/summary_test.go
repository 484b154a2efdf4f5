package report

import (
	"strings"
	"testing"

	"github.com/linuxmatters/vocalign/internal/align"
)

func TestSummarizeContainsKeyStats(t *testing.T) {
	result := &align.Result{
		CoarseOffset: 42,
		ControlPoints: []align.ControlPoint{
			{Position: 0, Offset: 42.0, Quality: -1.0},
			{Position: 100, Offset: 42.1, Quality: -1.1},
			{Position: 200, Offset: 41.9, Quality: -0.9},
		},
		Stream: align.Stream{Channels: 2, SampleRate: 48000},
	}

	table := Summarize(result)
	out := table.String()

	for _, want := range []string{"Coarse offset", "42", "Control points", "3", "48000"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary table missing %q:\n%s", want, out)
		}
	}
}

func TestTableStringEmpty(t *testing.T) {
	var table Table
	if got := table.String(); got != "" {
		t.Errorf("String() on empty table = %q, want \"\"", got)
	}
}
