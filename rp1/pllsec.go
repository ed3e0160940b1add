package rp1

import (
	"fmt"
	"time"
)

// PllSec is a secondary output tap on a PLL core, bypassing the primary
// post-dividers. Its divider field decodes to 8..19; every other code means
// 19.
type PllSec struct {
	cm   *Tree
	data *pllData
}

func (p *PllSec) Name() string       { return p.data.name }
func (p *PllSec) parentName() string { return p.data.sourcePll }

// pllSecDivider decodes the raw 5-bit register field. Values outside the
// implemented 8..19 range all read back as 19.
func pllSecDivider(code uint32) uint32 {
	if code >= 8 && code <= 18 {
		return code
	}
	return 19
}

func (p *PllSec) Enabled() bool {
	return p.cm.bank.Read(p.data.ctrlReg)&PLL_SEC_RST == 0
}

func (p *PllSec) Enable() error {
	bank := p.cm.bank
	d := p.data

	bank.Lock()
	ctrl := bank.Read(d.ctrlReg)
	if ctrl&PLL_SEC_IMPL == 0 {
		// Enabling a tap the silicon doesn't implement is a
		// configuration bug, not a runtime condition.
		bank.Unlock()
		panic(fmt.Sprintf("%s: secondary output not implemented in hardware", d.name))
	}
	bank.Write(d.ctrlReg, ctrl&^uint32(PLL_SEC_RST))
	bank.Unlock()

	p.cm.measureClock(d.name, d.fcSrc)
	return nil
}

func (p *PllSec) Disable() {
	p.cm.bank.Lock()
	p.cm.bank.Write(p.data.ctrlReg, PLL_SEC_RST)
	p.cm.bank.Unlock()
}

func (p *PllSec) SetRate(rate, parentRate uint64) error {
	bank := p.cm.bank
	d := p.data

	div := (parentRate + rate - 1) / rate
	if div < 8 {
		div = 8
	} else if div > 19 {
		div = 19
	}

	bank.Lock()
	sec := bank.Read(d.ctrlReg)
	sec = setRegisterField(sec, uint32(div), PLL_SEC_DIV_MASK, PLL_SEC_DIV_SHIFT)

	// The divider must be held in reset while the value changes, and the
	// reset must stay asserted for at least 10 VCO cycles before it is
	// released - at the minimum VCO rate that is well under a
	// microsecond.
	sec |= PLL_SEC_RST
	bank.Write(d.ctrlReg, sec)

	time.Sleep(time.Microsecond)

	sec &^= uint32(PLL_SEC_RST)
	bank.Write(d.ctrlReg, sec)
	bank.Unlock()

	if p.Enabled() {
		p.cm.measureClock(d.name, d.fcSrc)
	}
	return nil
}

func (p *PllSec) RecalcRate(parentRate uint64) uint64 {
	code := (p.cm.bank.Read(p.data.ctrlReg) & PLL_SEC_DIV_MASK) >> PLL_SEC_DIV_SHIFT
	return divNearest(parentRate, uint64(pllSecDivider(code)))
}

// RoundRate picks the implemented divider landing closest to rate, ties to
// the smaller divider.
func (p *PllSec) RoundRate(rate, parentRate uint64) uint64 {
	var best uint64
	bestDiff := ^uint64(0)
	for div := uint64(8); div <= 19; div++ {
		calcRate := divNearest(parentRate, div)
		if absDiff(calcRate, rate) < bestDiff {
			best = calcRate
			bestDiff = absDiff(calcRate, rate)
		}
	}
	return best
}
