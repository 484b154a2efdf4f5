// Package report renders the end-of-run alignment summary: a console table
// of control-point statistics, using an aligned-column layout.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/linuxmatters/vocalign/internal/align"
)

// Stat is a single labeled row of the summary table: a pre-formatted value
// plus an optional unit suffix.
type Stat struct {
	Label string
	Value string
	Unit  string
}

// Table formats aligned label/value/unit rows.
type Table struct {
	Rows []Stat
}

func (t Table) String() string {
	if len(t.Rows) == 0 {
		return ""
	}

	labelWidth, valueWidth := 0, 0
	for _, r := range t.Rows {
		if len(r.Label) > labelWidth {
			labelWidth = len(r.Label)
		}
		if len(r.Value) > valueWidth {
			valueWidth = len(r.Value)
		}
	}

	var sb strings.Builder
	for _, r := range t.Rows {
		sb.WriteString(fmt.Sprintf("%-*s  %*s", labelWidth, r.Label, valueWidth, r.Value))
		if r.Unit != "" {
			sb.WriteString(" " + r.Unit)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Summarize builds the end-of-run statistics table from a completed
// alignment: coarse offset, surviving point count, the mean/stdev of their
// offsets, their mean quality, and the stream's channels and sample rate.
func Summarize(result *align.Result) Table {
	points := result.ControlPoints

	var sumOff, sumOff2, sumQ float64
	for _, p := range points {
		sumOff += p.Offset
		sumOff2 += p.Offset * p.Offset
		sumQ += p.Quality
	}
	n := float64(len(points))
	meanOff := sumOff / n
	variance := (sumOff2 / n) - meanOff*meanOff
	if variance < 0 {
		variance = 0
	}
	stdevOff := math.Sqrt(variance)
	meanQ := sumQ / n

	return Table{Rows: []Stat{
		{Label: "Coarse offset", Value: fmt.Sprintf("%d", result.CoarseOffset), Unit: "samples"},
		{Label: "Control points", Value: fmt.Sprintf("%d", len(points))},
		{Label: "Mean offset", Value: fmt.Sprintf("%.3f", meanOff), Unit: "samples"},
		{Label: "Offset stdev", Value: fmt.Sprintf("%.3f", stdevOff), Unit: "samples"},
		{Label: "Mean quality", Value: fmt.Sprintf("%.3f", meanQ)},
		{Label: "Channels", Value: fmt.Sprintf("%d", result.Stream.Channels)},
		{Label: "Sample rate", Value: fmt.Sprintf("%d", result.Stream.SampleRate), Unit: "Hz"},
	}}
}
