package align

import (
	"math"
	"testing"
)

func testSweepConfig() Config {
	cfg := testFineConfig()
	cfg.FineInterval = 200
	cfg.FineDQ = -50
	return cfg
}

func TestSweepIdentitySignal(t *testing.T) {
	cfg := testSweepConfig()
	table := BuildSincTable(cfg)

	margin := cfg.SincWidth + cfg.FineMaxShift + 20
	total := margin*2 + cfg.FineInterval*4
	signal := testSignal(total)

	anchor := margin + cfg.FineInterval
	points := Sweep(signal, signal, 1, anchor, 0, total-margin, total-margin, table, cfg)

	if len(points) == 0 {
		t.Fatal("Sweep on identical signal produced no control points")
	}
	for _, p := range points {
		if math.Abs(p.Offset) > 1.0 {
			t.Errorf("control point at %d has offset %v, want near 0 on an identity sweep", p.Position, p.Offset)
		}
	}
	for i := 1; i < len(points); i++ {
		if points[i].Position <= points[i-1].Position {
			t.Errorf("control points not strictly position-ordered: %d then %d", points[i-1].Position, points[i].Position)
		}
	}
}
