package rp1

// rateChange is one pending step of a coordinated chain retune: this node
// will be asked for exactly newRate. The tree's plan holds three of them,
// most-downstream first, filled in by chooseDivAndPrate when a clk_i2s
// request needs pll_audio and its core retuned too.
type rateChange struct {
	node    Node
	newRate uint64
}

// Primary post-divider products available from a PLL (div1 * div2 with each
// in 1..7).
var pllPrimDivs = [...]uint32{
	2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 14, 15, 16,
	18, 20, 21, 24, 25, 28, 30, 35, 36, 42, 49,
}

// calcCorePllRate finds the cheapest VCO rate from which targetRate can be
// produced through a primary divider product and a leaf divider up to 256.
// For each product it takes the smallest leaf divider putting the VCO at or
// above 16x the crystal, then keeps the lowest VCO overall. The winning rate
// is re-quantized through the 24-bit feedback divisor so it matches what the
// core will really produce. Returns 0 if nothing fits under the 2.4 GHz VCO
// ceiling.
func (t *Tree) calcCorePllRate(targetRate uint64) (coreRate uint64, divPrim, divClk uint32) {
	xoscRate := t.Rate(t.clkXosc)
	coreMin := xoscRate * 16
	coreMax := uint64(2400000000)

	bestRate := coreMax + 1
	divPrim, divClk = 1, 1

	for _, prim := range pllPrimDivs {
		for clk := uint32(1); clk <= 256; clk++ {
			coreRate = targetRate * uint64(clk) * uint64(prim)
			if coreRate >= coreMin {
				if coreRate < bestRate {
					bestRate = coreRate
					divPrim = prim
					divClk = clk
				}
				break
			}
		}
	}

	if bestRate < coreMax {
		div := (bestRate<<24 + xoscRate/2) / xoscRate
		divInt := div >> 24
		divFrac := div % (1 << 24)
		coreRate = (xoscRate*(divInt<<24+divFrac) + 1<<23) >> 24
	} else {
		coreRate = 0
	}

	return coreRate, divPrim, divClk
}

// clearPlan drops any pending chain retune, leaving the plan inert for the
// short-circuit test in chooseDivAndPrate.
func (t *Tree) clearPlan() {
	for i := range t.plan {
		t.plan[i] = rateChange{}
	}
}
