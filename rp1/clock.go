package rp1

import (
	"fmt"
	"math/bits"

	"github.com/platinasystems/log"
)

const (
	// Parent slot reserved for the auxiliary-source selector in nodes
	// that have standard parents.
	AUX_SEL = 1

	MAX_CLK_PARENTS = 16
)

type clockData struct {
	name          string
	parents       []string // "" = unselectable slot, "-" = the aux gap
	numStdParents int
	numAuxParents int
	flags         nodeFlags
	oeMask        uint32
	clkSrcMask    uint32
	ctrlReg       uint32
	divIntReg     uint32
	divFracReg    uint32 // 0 if the node has no fractional divider
	selReg        uint32
	divIntMax     uint32
	maxFreq       uint64
	fcSrc         uint32
}

// Clock is a leaf: a parent mux feeding a 16.16 fixed-point divider, with an
// optional output-enable for the clocks routed to GPIO pins.
type Clock struct {
	cm   *Tree
	data *clockData
}

func (c *Clock) Name() string { return c.data.name }

func (c *Clock) parentName() string {
	idx := c.Parent()
	if idx < 0 || idx >= len(c.data.parents) {
		return ""
	}
	return c.data.parents[idx]
}

func (c *Clock) Enabled() bool {
	return c.cm.bank.Read(c.data.ctrlReg)&CLK_CTRL_ENABLE != 0
}

func (c *Clock) Enable() error {
	bank := c.cm.bank
	d := c.data

	bank.Lock()
	bank.Write(d.ctrlReg, bank.Read(d.ctrlReg)|CLK_CTRL_ENABLE)
	// If this clock drives a GPIO pin, turn on the output-enable too.
	if d.oeMask != 0 {
		bank.Write(GPCLK_OE_CTRL, bank.Read(GPCLK_OE_CTRL)|d.oeMask)
	}
	bank.Unlock()

	c.cm.measureClock(d.name, d.fcSrc)
	return nil
}

func (c *Clock) Disable() {
	bank := c.cm.bank
	d := c.data

	bank.Lock()
	bank.Write(d.ctrlReg, bank.Read(d.ctrlReg)&^uint32(CLK_CTRL_ENABLE))
	if d.oeMask != 0 {
		bank.Write(GPCLK_OE_CTRL, bank.Read(GPCLK_OE_CTRL)&^d.oeMask)
	}
	bank.Unlock()
}

func (c *Clock) RecalcRate(parentRate uint64) uint64 {
	d := c.data

	div := uint64(c.cm.bank.Read(d.divIntReg))
	var frac uint64
	if d.divFracReg != 0 {
		frac = uint64(c.cm.bank.Read(d.divFracReg))
	}

	// If the integer portion of the divider is 0, treat it as 2^16.
	if div == 0 {
		div = 1 << 16
	}

	div = div<<CLK_DIV_FRAC_BITS | frac>>(32-CLK_DIV_FRAC_BITS)

	return (parentRate << CLK_DIV_FRAC_BITS) / div
}

// chooseDiv computes the 16.16 fixed-point divider for the requested rate,
// or 0 if no divider can reach it. Nodes without a fractional register get
// an integer divide expressed in the same fixed-point form.
func (c *Clock) chooseDiv(rate, parentRate uint64) uint32 {
	d := c.data

	// Due to earlier rounding, the calculated parent rate may differ
	// from the expected value. Don't fail on a small discrepancy near
	// unity divide.
	if rate == 0 || rate > parentRate+parentRate>>CLK_DIV_FRAC_BITS {
		return 0
	}

	var div uint64
	if d.divFracReg != 0 {
		div = divNearest(parentRate<<CLK_DIV_FRAC_BITS, rate)
	} else {
		div = divNearest(parentRate, rate) << CLK_DIV_FRAC_BITS
	}

	if div < 1<<CLK_DIV_FRAC_BITS {
		div = 1 << CLK_DIV_FRAC_BITS
	} else if div > uint64(d.divIntMax)<<CLK_DIV_FRAC_BITS {
		div = uint64(d.divIntMax) << CLK_DIV_FRAC_BITS
	}

	return uint32(div)
}

// Parent decodes the currently selected parent index. The SEL register is
// one-hot but reads as zero until the selected parent is running, in which
// case the source field of CTRL is used instead. An index landing on the
// auxiliary slot is re-resolved through the AUXSRC field.
func (c *Clock) Parent() int {
	bank := c.cm.bank
	d := c.data

	sel := bank.Read(d.selReg)
	parent := bits.TrailingZeros32(sel)

	// sel == 0 implies the parent clock is not enabled yet.
	if sel == 0 {
		ctrl := bank.Read(d.ctrlReg)
		parent = int((ctrl & d.clkSrcMask) >> CLK_CTRL_SRC_SHIFT)
	}

	if parent >= d.numStdParents {
		parent = AUX_SEL
	}

	if parent == AUX_SEL {
		ctrl := bank.Read(d.ctrlReg)
		parent = int((ctrl & CLK_CTRL_AUXSRC_MASK) >> CLK_CTRL_AUXSRC_SHIFT)
		parent += d.numStdParents
	}

	return parent
}

func (c *Clock) SetParent(index int) error {
	bank := c.cm.bank
	d := c.data

	bank.Lock()
	ctrl := bank.Read(d.ctrlReg)

	if index >= d.numStdParents {
		// This is an aux source request.
		if index >= d.numStdParents+d.numAuxParents {
			bank.Unlock()
			return fmt.Errorf("%s: parent %d of %d: %w", d.name, index,
				d.numStdParents+d.numAuxParents, ErrInvalidParent)
		}

		ctrl = setRegisterField(ctrl, uint32(index-d.numStdParents),
			CLK_CTRL_AUXSRC_MASK, CLK_CTRL_AUXSRC_SHIFT)
		ctrl = setRegisterField(ctrl, AUX_SEL, d.clkSrcMask, CLK_CTRL_SRC_SHIFT)
	} else {
		ctrl = setRegisterField(ctrl, uint32(index), d.clkSrcMask, CLK_CTRL_SRC_SHIFT)
	}

	bank.Write(d.ctrlReg, ctrl)
	bank.Unlock()

	if sel := c.Parent(); sel != index {
		log.Printf("warn: %s: parent index req %d returned back %d", d.name, index, sel)
	}

	return nil
}

// SetRateAndParent programs the divider and, if parent >= 0, the mux. A
// zero divider would leave the register in an undefined state, so it is
// replaced by unity divide and reported as a failure.
func (c *Clock) SetRateAndParent(rate, parentRate uint64, parent int) error {
	bank := c.cm.bank
	d := c.data

	var divErr error
	div := c.chooseDiv(rate, parentRate)
	if div == 0 {
		log.Printf("err: %s: divider calculated as 0 (rate %d, parent rate %d)",
			d.name, rate, parentRate)
		divErr = fmt.Errorf("%s: rate %d from parent %d: %w", d.name, rate,
			parentRate, ErrInvalidDivider)
		div = 1 << CLK_DIV_FRAC_BITS
	}

	bank.Lock()
	bank.Write(d.divIntReg, div>>CLK_DIV_FRAC_BITS)
	if d.divFracReg != 0 {
		bank.Write(d.divFracReg, div<<(32-CLK_DIV_FRAC_BITS))
	}
	bank.Unlock()

	if parent >= 0 {
		if err := c.SetParent(parent); err != nil {
			return err
		}
	}

	if c.Enabled() {
		c.cm.measureClock(d.name, d.fcSrc)
	}
	return divErr
}

func (c *Clock) SetRate(rate, parentRate uint64) error {
	return c.SetRateAndParent(rate, parentRate, -1)
}

// RoundRate reports the rate the divider would actually achieve against the
// given parent rate, without writing anything.
func (c *Clock) RoundRate(rate, parentRate uint64) uint64 {
	div := c.chooseDiv(rate, parentRate)
	if div == 0 {
		return 0
	}
	return (parentRate << CLK_DIV_FRAC_BITS) / uint64(div)
}

// chooseDivAndPrate computes the achievable rate through one parent
// candidate. Three cases, in order: a pending chain-retune entry for this
// exact (node, rate) pair short-circuits with the planned rates; a request
// on clk_i2s through pll_audio retunes the whole PLL chain and records the
// plan; everything else is a straight divider choice against the live
// parent rate, rejected if it would exceed the node's maximum frequency.
func (c *Clock) chooseDivAndPrate(parentIdx int, rate uint64) (prate, calcRate uint64) {
	t := c.cm
	parent := t.parentByIndex(c, parentIdx)

	for i := range t.plan {
		chg := &t.plan[i]
		if chg.node == Node(c) && chg.newRate == rate {
			switch {
			case i == len(t.plan)-1:
				prate = t.Rate(t.clkXosc)
			case parent != nil && parent == t.plan[i+1].node:
				prate = t.plan[i+1].newRate
			default:
				continue
			}
			return prate, chg.newRate
		}
	}

	if Node(c) == t.clkI2S && parent != nil && parent == t.clkAudio {
		coreRate, divPrim, divClk := t.calcCorePllRate(rate)
		audioRate := divNearest(coreRate, uint64(divPrim))
		i2sRate := divNearest(audioRate, uint64(divClk))
		t.plan[2] = rateChange{t.Lookup(t.clkAudio.parentName()), coreRate}
		t.plan[1] = rateChange{t.clkAudio, audioRate}
		t.plan[0] = rateChange{t.clkI2S, i2sRate}
		return audioRate, i2sRate
	}

	if parent == nil {
		return 0, 0
	}

	prate = t.Rate(parent)
	div := c.chooseDiv(rate, prate)
	if div == 0 {
		return prate, 0
	}

	// Recalculate to account for rounding errors, and prevent
	// overclocks: if every parent choice would push this clock past its
	// maximum, the rate request must fail rather than mis-program it.
	calcRate = (prate << CLK_DIV_FRAC_BITS) / uint64(div)
	if calcRate > c.data.maxFreq {
		return prate, 0
	}
	return prate, calcRate
}

// DetermineRate picks the parent and divider landing closest to rate,
// higher or lower. The first candidate at the smallest difference wins; an
// exact match stops the search. It fails only if every candidate yields
// zero.
func (c *Clock) DetermineRate(rate uint64) (calcRate uint64, parentIdx int, parentRate uint64, err error) {
	t := c.cm

	// A no-reparent node tries its currently selected parent first.
	if c.data.flags&flagNoReparent != 0 {
		i := c.Parent()
		if t.parentByIndex(c, i) != nil {
			prate, calc := c.chooseDivAndPrate(i, rate)
			if calc > 0 {
				return calc, i, prate, nil
			}
		}
	}

	bestIdx := -1
	var bestRate, bestPrate uint64
	bestDiff := ^uint64(0)

	for i := 0; i < c.data.numStdParents+c.data.numAuxParents; i++ {
		if t.parentByIndex(c, i) == nil {
			continue
		}

		prate, calc := c.chooseDivAndPrate(i, rate)

		if absDiff(calc, rate) < bestDiff {
			bestIdx = i
			bestPrate = prate
			bestRate = calc
			bestDiff = absDiff(calc, rate)

			if bestDiff == 0 {
				break
			}
		}
	}

	if bestRate == 0 {
		return 0, -1, 0, fmt.Errorf("%s: no parent/divider reaches %d Hz", c.data.name, rate)
	}

	return bestRate, bestIdx, bestPrate, nil
}
