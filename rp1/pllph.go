package rp1

import (
	"github.com/platinasystems/log"
)

type pllPhData struct {
	name         string
	sourcePll    string
	phase        uint32
	fixedDivider uint32
	phReg        uint32
	fcSrc        uint32
}

// PllPhase is a phase-shifted tap on a PLL output. It generates no rate of
// its own, only a copy of the parent at a fixed divide of 1 or 2 with a
// selectable 0/90/180/270 degree shift.
type PllPhase struct {
	cm   *Tree
	data *pllPhData
}

func (p *PllPhase) Name() string       { return p.data.name }
func (p *PllPhase) parentName() string { return p.data.sourcePll }

func (p *PllPhase) Enabled() bool {
	return p.cm.bank.Read(p.data.phReg)&PLL_PH_EN != 0
}

func (p *PllPhase) Enable() error {
	bank := p.cm.bank
	d := p.data

	bank.Lock()
	ph := bank.Read(d.phReg)
	ph |= d.phase << PLL_PH_PHASE_SHIFT
	ph |= PLL_PH_EN
	bank.Write(d.phReg, ph)
	bank.Unlock()

	p.cm.measureClock(d.name, d.fcSrc)
	return nil
}

// Disable clears only the enable bit; the phase selection is preserved.
func (p *PllPhase) Disable() {
	bank := p.cm.bank
	bank.Lock()
	bank.Write(p.data.phReg, bank.Read(p.data.phReg)&^uint32(PLL_PH_EN))
	bank.Unlock()
}

// SetRate has nothing to program; it only checks the request is consistent
// with the fixed divider.
func (p *PllPhase) SetRate(rate, parentRate uint64) error {
	d := p.data
	if d.fixedDivider != 1 && d.fixedDivider != 2 {
		log.Printf("warn: %s: bad fixed divider %d", d.name, d.fixedDivider)
	}
	if rate != parentRate/uint64(d.fixedDivider) {
		log.Printf("warn: %s: rate %d is not parent %d / %d", d.name, rate, parentRate, d.fixedDivider)
	}

	if p.Enabled() {
		p.cm.measureClock(d.name, d.fcSrc)
	}
	return nil
}

func (p *PllPhase) RecalcRate(parentRate uint64) uint64 {
	return parentRate / uint64(p.data.fixedDivider)
}

func (p *PllPhase) RoundRate(rate, parentRate uint64) uint64 {
	return parentRate / uint64(p.data.fixedDivider)
}
