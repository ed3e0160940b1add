package rp1

import (
	"errors"
	"testing"
)

func TestPllCoreDivider(t *testing.T) {
	tests := []struct {
		rate       uint64
		parentRate uint64
		calcRate   uint64
		fbdivInt   uint32
		fbdivFrac  uint32
	}{
		{1000000000, 50 * MHz, 1000000000, 20, 0},
		{1025000000, 50 * MHz, 1025000000, 20, 0x800000},
		{811008000, 50 * MHz, 811008000, 16, 3693672},
		{800000000, 50 * MHz, 800000000, 16, 0},
	}

	for _, test := range tests {
		calcRate, fbdivInt, fbdivFrac := pllCoreDivider(test.rate, test.parentRate)
		if calcRate != test.calcRate {
			t.Errorf("Wrong calcRate for %d from %d, want %d, got %d",
				test.rate, test.parentRate, test.calcRate, calcRate)
		}
		if fbdivInt != test.fbdivInt {
			t.Errorf("Wrong fbdivInt for %d, want %d, got %d",
				test.rate, test.fbdivInt, fbdivInt)
		}
		if fbdivFrac != test.fbdivFrac {
			t.Errorf("Wrong fbdivFrac for %d, want %d, got %d",
				test.rate, test.fbdivFrac, fbdivFrac)
		}
	}
}

func TestPllCoreSetRecalc(t *testing.T) {
	tr := testTree(t)
	core := tr.Lookup("pll_sys_core").(*PllCore)

	if err := core.SetRate(1000000000, 50*MHz); err != nil {
		t.Fatalf("Failed SetRate: %v", err)
	}
	if got := tr.bank.Read(PLL_SYS_FBDIV_INT); got != 20 {
		t.Errorf("Wrong FBDIV_INT, want 20, got %d", got)
	}
	if got := tr.bank.Read(PLL_SYS_FBDIV_FRAC); got != 0 {
		t.Errorf("Wrong FBDIV_FRAC, want 0, got %d", got)
	}
	if got := tr.bank.Read(PLL_SYS_PWR); got != PLL_PWR_DSMPD {
		t.Errorf("Wrong PWR, want %#x, got %#x", uint32(PLL_PWR_DSMPD), got)
	}
	if got := core.RecalcRate(50 * MHz); got != 1000000000 {
		t.Errorf("Wrong RecalcRate, want 1000000000, got %d", got)
	}

	// A fractional target powers the delta-sigma modulator up.
	if err := core.SetRate(1025000000, 50*MHz); err != nil {
		t.Fatalf("Failed SetRate: %v", err)
	}
	if got := tr.bank.Read(PLL_SYS_PWR); got != 0 {
		t.Errorf("Wrong PWR, want 0, got %#x", got)
	}
	if got := core.RecalcRate(50 * MHz); got != 1025000000 {
		t.Errorf("Wrong RecalcRate, want 1025000000, got %d", got)
	}
}

func TestPllCoreSetRatePanicsOnFastReference(t *testing.T) {
	tr := testTree(t)
	core := tr.Lookup("pll_sys_core").(*PllCore)

	defer func() {
		if recover() == nil {
			t.Errorf("No panic for reference faster than VCO/16")
		}
	}()
	core.SetRate(500000000, 50*MHz)
}

func TestPllCoreEnable(t *testing.T) {
	tr := testTree(t)
	core := tr.Lookup("pll_audio_core").(*PllCore)

	// Already locked: no reset, just power up.
	tr.bank.Write(PLL_AUDIO_CS, PLL_CS_LOCK)
	if err := core.Enable(); err != nil {
		t.Fatalf("Failed Enable: %v", err)
	}
	if got := tr.bank.Read(PLL_AUDIO_PWR); got != PLL_PWR_DSMPD {
		t.Errorf("Wrong PWR after Enable, want %#x, got %#x", uint32(PLL_PWR_DSMPD), got)
	}

	core.Disable()
	if got := tr.bank.Read(PLL_AUDIO_PWR); got != 0 {
		t.Errorf("Wrong PWR after Disable, want 0, got %#x", got)
	}
}

func TestPllCoreEnableTimeout(t *testing.T) {
	tr := testTree(t)
	core := tr.Lookup("pll_video_core").(*PllCore)

	// Nothing ever sets the lock bit on an in-memory bank.
	err := core.Enable()
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("Wrong error, want ErrTimeout, got %v", err)
	}
	if got := tr.bank.Read(PLL_VIDEO_FBDIV_INT); got != 20 {
		t.Errorf("Wrong reset FBDIV_INT, want 20, got %d", got)
	}
}
