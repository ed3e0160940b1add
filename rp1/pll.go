package rp1

import (
	"github.com/platinasystems/log"
)

type pllData struct {
	name      string
	sourcePll string
	ctrlReg   uint32
	fcSrc     uint32
	flags     nodeFlags
}

// Pll is the primary output stage of a PLL core: the VCO rate through two
// cascaded integer post-dividers div1 and div2, each 1..7, div2 <= div1.
type Pll struct {
	cm   *Tree
	data *pllData
}

func (p *Pll) Name() string       { return p.data.name }
func (p *Pll) parentName() string { return p.data.sourcePll }

// The primary output has no gate of its own; it follows the core.
func (p *Pll) Enabled() bool { return true }
func (p *Pll) Enable() error { return nil }
func (p *Pll) Disable()      {}

// getPllPrimDividers searches div1 in 1..7, div2 in 1..div1 for the pair
// whose output lands closest to rate. An exact match wins immediately; ties
// keep the first pair found, so smaller dividers are preferred.
func getPllPrimDividers(rate, parentRate uint64) (divider1, divider2 uint32) {
	bestDiv1, bestDiv2 := uint32(7), uint32(7)
	bestRateDiff := absDiff(divNearest(parentRate, 49), rate)

	for div1 := uint32(1); div1 <= 7; div1++ {
		for div2 := uint32(1); div2 <= div1; div2++ {
			calcRate := divNearest(parentRate, uint64(div1*div2))
			rateDiff := absDiff(calcRate, rate)

			if calcRate == rate {
				return div1, div2
			}
			if rateDiff < bestRateDiff {
				bestDiv1 = div1
				bestDiv2 = div2
				bestRateDiff = rateDiff
			}
		}
	}

	return bestDiv1, bestDiv2
}

func (p *Pll) SetRate(rate, parentRate uint64) error {
	bank := p.cm.bank
	d := p.data

	primDiv1, primDiv2 := getPllPrimDividers(rate, parentRate)

	bank.Lock()
	prim := bank.Read(d.ctrlReg)
	prim = setRegisterField(prim, primDiv1, PLL_PRIM_DIV1_MASK, PLL_PRIM_DIV1_SHIFT)
	prim = setRegisterField(prim, primDiv2, PLL_PRIM_DIV2_MASK, PLL_PRIM_DIV2_SHIFT)
	bank.Write(d.ctrlReg, prim)
	bank.Unlock()

	p.cm.measureClock(d.name, d.fcSrc)
	return nil
}

func (p *Pll) RecalcRate(parentRate uint64) uint64 {
	prim := p.cm.bank.Read(p.data.ctrlReg)
	primDiv1 := (prim & PLL_PRIM_DIV1_MASK) >> PLL_PRIM_DIV1_SHIFT
	primDiv2 := (prim & PLL_PRIM_DIV2_MASK) >> PLL_PRIM_DIV2_SHIFT

	if primDiv1 == 0 || primDiv2 == 0 {
		log.Print("err: ", p.data.name, ": zero divider value")
		return 0
	}

	return divNearest(parentRate, uint64(primDiv1*primDiv2))
}

// RoundRate is the pure version of SetRate's search. If a coordinated chain
// retune is pending for this node at this exact rate, the planned parent
// rate is used instead of the live one so the whole chain computes
// consistently before anything is written.
func (p *Pll) RoundRate(rate, parentRate uint64) uint64 {
	if chg := &p.cm.plan[1]; chg.node == Node(p) && chg.newRate == rate {
		parentRate = p.cm.plan[2].newRate
	}

	div1, div2 := getPllPrimDividers(rate, parentRate)
	return divNearest(parentRate, uint64(div1*div2))
}
