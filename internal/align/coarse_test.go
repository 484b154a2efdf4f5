package align

import "testing"

func testCoarseConfig() Config {
	cfg := DefaultConfig()
	cfg.CoarseSize = 200
	cfg.CoarseMaxShift = 400
	return cfg
}

func TestCoarseSearchIdentity(t *testing.T) {
	cfg := testCoarseConfig()
	anchor := cfg.CoarseMaxShift
	total := anchor + cfg.CoarseSize + cfg.CoarseMaxShift + 1000
	signal := testSignal(total)

	lo := -cfg.CoarseMaxShift / 2
	ref := signal[anchor : anchor+cfg.CoarseSize]
	search := signal[anchor+lo:]

	got := CoarseSearch(ref, search, 1, cfg)
	if got != 0 {
		t.Errorf("CoarseSearch on identical signal = %d, want 0", got)
	}
}

func TestCoarseSearchPureDelay(t *testing.T) {
	cfg := testCoarseConfig()
	anchor := cfg.CoarseMaxShift
	total := anchor + cfg.CoarseSize + cfg.CoarseMaxShift + 1000
	a := testSignal(total)

	const delay = 37
	b := make([]float64, total)
	copy(b[delay:], a)

	lo := -cfg.CoarseMaxShift / 2
	ref := a[anchor : anchor+cfg.CoarseSize]
	search := b[anchor+lo:]

	// b[k] = a[k-delay]; search's index 0 is absolute position anchor+lo, so
	// comparing ref[i]=a[anchor+i] against search at shift finds its minimum
	// L1 distance exactly when b[anchor+shift+i] == a[anchor+i], i.e. shift == delay.
	got := CoarseSearch(ref, search, 1, cfg)
	if got != delay {
		t.Errorf("CoarseSearch on delayed signal = %d, want %d", got, delay)
	}
}
