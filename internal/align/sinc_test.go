package align

import (
	"math"
	"testing"
)

func TestBesselI0(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		tol  float64
		want float64
	}{
		{"zero", 0, 1e-9, 1.0},
		{"one", 1, 1e-6, 1.2660658777520082},
		{"beta", 7.68, 0.5, 317.12}, // I0(7.68)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := besselI0(tt.x)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("besselI0(%v) = %v, want ~%v", tt.x, got, tt.want)
			}
		})
	}
}

func TestKaiserWindowMidpointZero(t *testing.T) {
	cfg := DefaultConfig()
	w := kaiserWindow(cfg.SincTableSize(), cfg.KaiserBeta)
	mid := len(w) - 1
	if w[mid] != 0 {
		t.Errorf("kaiserWindow midpoint = %v, want 0", w[mid])
	}
	if w[0] <= 0 {
		t.Errorf("kaiserWindow[0] = %v, want > 0", w[0])
	}
}

func TestBuildSincTableSymmetry(t *testing.T) {
	cfg := DefaultConfig()
	table := BuildSincTable(cfg)
	size := len(table)

	for k := 0; k < size; k++ {
		mirror := size - 1 - k
		if math.Abs(table[k]-table[mirror]) > 1e-6 {
			t.Errorf("table[%d] = %v, table[%d] = %v, want symmetric", k, table[k], mirror, table[mirror])
		}
	}
}

func TestBuildSincTableCenterIsOne(t *testing.T) {
	cfg := DefaultConfig()
	table := BuildSincTable(cfg)
	mid := cfg.SincTableSize() / 2
	if math.Abs(table[mid]-1.0) > 1e-9 {
		t.Errorf("table[center] = %v, want 1.0 (sinc(0) before window)", table[mid])
	}
}

func TestInterpolateIdentityAtIntegerPosition(t *testing.T) {
	cfg := DefaultConfig()
	table := BuildSincTable(cfg)

	n := 256
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(float64(i) * 0.1)
	}

	for _, pos := range []int{64, 100, 150} {
		got := Interpolate(data, 1, 0, float64(pos), table, cfg)
		want := data[pos]
		if math.Abs(got-want) > 1e-3 {
			t.Errorf("Interpolate at integer pos %d = %v, want %v", pos, got, want)
		}
	}
}
