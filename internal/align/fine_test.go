package align

import (
	"math"
	"testing"
)

func testFineConfig() Config {
	cfg := DefaultConfig()
	cfg.SincWidth = 9
	cfg.SincOversampling = 16
	cfg.FineSize = 32
	cfg.FineMaxShift = 4
	cfg.FineSubdiv = 8
	return cfg
}

func TestFineSearchIdentity(t *testing.T) {
	cfg := testFineConfig()
	table := BuildSincTable(cfg)

	margin := cfg.SincWidth + cfg.FineMaxShift + 10
	total := margin*2 + cfg.FineSize
	signal := testSignal(total)

	base := margin
	ref := signal[base*1 : base*1+cfg.FineSize]

	offset, quality := FineSearch(ref, signal, base, 1, table, cfg)

	if math.Abs(offset) > 1.0/float64(cfg.FineSubdiv)+1e-9 {
		t.Errorf("FineSearch identity offset = %v, want within 1/%d", offset, cfg.FineSubdiv)
	}
	if quality < -1e-6 {
		t.Errorf("FineSearch identity quality = %v, want a near-zero negative (near-perfect) score", quality)
	}
}

func TestFineSearchSubSampleDelay(t *testing.T) {
	cfg := testFineConfig()
	// The 9-tap test kernel droops enough that a double interpolation
	// settles two fine steps off; the design-width kernel does not.
	cfg.SincWidth = DefaultConfig().SincWidth
	table := BuildSincTable(cfg)

	margin := cfg.SincWidth + cfg.FineMaxShift + 20
	total := margin*2 + cfg.FineSize + 20
	a := testSignal(total)

	// Build b as a resampled at a -0.5 sample shift using the same
	// interpolator, so the fine search's own kernel can recover it to
	// within one fine step.
	b := make([]float64, total)
	delta := -0.5
	for i := cfg.SincWidth; i < total-cfg.SincWidth; i++ {
		b[i] = Interpolate(a, 1, 0, float64(i)-delta, table, cfg)
	}

	base := margin
	ref := a[base : base+cfg.FineSize]

	offset, _ := FineSearch(ref, b, base, 1, table, cfg)

	unit := cfg.FineUnit()
	if math.Abs(offset-delta) > unit+1e-6 {
		t.Errorf("FineSearch sub-sample offset = %v, want ~%v within one fine step", offset, delta)
	}
}
