package rp1

import (
	"testing"
)

func TestCalcCorePllRate(t *testing.T) {
	tr := testTree(t) // 50MHz crystal, so the VCO floor is 800MHz

	tests := []struct {
		target   uint64
		coreRate uint64
		divPrim  uint32
		divClk   uint32
	}{
		// 256fs for 48kHz audio.
		{12288000, 811008000, 2, 33},
		{200000000, 800000000, 2, 2},
		{50000000, 800000000, 2, 8},
		// Nothing under the 2.4GHz VCO ceiling can produce this.
		{1300000000, 0, 1, 1},
	}

	for _, test := range tests {
		coreRate, divPrim, divClk := tr.calcCorePllRate(test.target)
		if coreRate != test.coreRate {
			t.Errorf("Wrong core rate for %d, want %d, got %d",
				test.target, test.coreRate, coreRate)
		}
		if divPrim != test.divPrim || divClk != test.divClk {
			t.Errorf("Wrong dividers for %d, want (%d,%d), got (%d,%d)",
				test.target, test.divPrim, test.divClk, divPrim, divClk)
		}
	}
}

func TestClearPlan(t *testing.T) {
	tr := testTree(t)

	tr.plan[0] = rateChange{tr.clkI2S, 12288000}
	tr.plan[1] = rateChange{tr.clkAudio, 405504000}
	tr.clearPlan()
	for i, chg := range tr.plan {
		if chg.node != nil || chg.newRate != 0 {
			t.Errorf("Plan entry %d not cleared: %+v", i, chg)
		}
	}
}
