package rp1

import (
	"fmt"
	"runtime"
	"time"

	"github.com/platinasystems/log"
)

// refClock is the name of the reference for all PLL cores. The Tree owns a
// fixed-rate node under this name whose rate the host supplies.
const refClock = "xosc"

type pllCoreData struct {
	name         string
	csReg        uint32
	pwrReg       uint32
	fbdivIntReg  uint32
	fbdivFracReg uint32
	fcSrc        uint32
}

// PllCore is the VCO loop of a PLL: reference clock times a 24-bit
// fractional feedback divisor.
type PllCore struct {
	cm         *Tree
	data       *pllCoreData
	cachedRate uint64
}

func (p *PllCore) Name() string       { return p.data.name }
func (p *PllCore) parentName() string { return refClock }

func (p *PllCore) Enabled() bool {
	pwr := p.cm.bank.Read(p.data.pwrReg)
	return pwr&PLL_PWR_PD != 0 || pwr&PLL_PWR_POSTDIVPD != 0
}

func (p *PllCore) Enable() error {
	bank := p.cm.bank
	d := p.data

	bank.Lock()
	if bank.Read(d.csReg)&PLL_CS_LOCK == 0 {
		// Reset to a known state.
		bank.Write(d.pwrReg, PLL_PWR_MASK)
		bank.Write(d.fbdivIntReg, 20)
		bank.Write(d.fbdivFracReg, 0)
		bank.Write(d.csReg, 1<<PLL_CS_REFDIV_SHIFT)
	}

	// Come out of reset. The delta-sigma modulator stays powered down
	// unless a fractional remainder is programmed.
	pwr := uint32(PLL_PWR_DSMPD)
	if bank.Read(d.fbdivFracReg) != 0 {
		pwr = 0
	}
	bank.Write(d.pwrReg, pwr)
	bank.Unlock()

	// Wait for the PLL to lock.
	deadline := time.Now().Add(lockTimeout)
	for bank.Read(d.csReg)&PLL_CS_LOCK == 0 {
		if time.Now().After(deadline) {
			log.Print("err: ", d.name, ": can't lock PLL")
			return fmt.Errorf("%s: PLL lock: %w", d.name, ErrTimeout)
		}
		runtime.Gosched()
	}

	return nil
}

func (p *PllCore) Disable() {
	p.cm.bank.Lock()
	p.cm.bank.Write(p.data.pwrReg, 0)
	p.cm.bank.Unlock()
}

// pllCoreDivider computes the 32.32 fixed-point feedback divisor for a
// target VCO rate, rounded at 24 fractional bits, and the rate the rounded
// divisor actually achieves. SetRate and RoundRate share it so they agree
// exactly.
func pllCoreDivider(rate, parentRate uint64) (calcRate uint64, fbdivInt, fbdivFrac uint32) {
	// Factor of reference clock to VCO frequency.
	div := divNearest(rate<<32, parentRate)

	// Round the fractional component at 24 bits.
	div += 1 << (32 - 24 - 1)

	fbdivInt = uint32(div >> 32)
	fbdivFrac = uint32(div>>(32-24)) & 0xffffff

	calcRate = (parentRate*((uint64(fbdivInt)<<24)+uint64(fbdivFrac)) + 1<<23) >> 24
	return calcRate, fbdivInt, fbdivFrac
}

func (p *PllCore) SetRate(rate, parentRate uint64) error {
	bank := p.cm.bank
	d := p.data

	// Disable dividers to start with.
	bank.Lock()
	bank.Write(d.fbdivIntReg, 0)
	bank.Write(d.fbdivFracReg, 0)
	bank.Unlock()

	calcRate, fbdivInt, fbdivFrac := pllCoreDivider(rate, parentRate)

	pwr := uint32(PLL_PWR_DSMPD)
	if fbdivFrac != 0 {
		pwr = 0
	}

	bank.Lock()
	bank.Write(d.pwrReg, pwr)
	bank.Write(d.fbdivIntReg, fbdivInt)
	bank.Write(d.fbdivFracReg, fbdivFrac)
	bank.Unlock()

	// The reference frequency must be no greater than VCO / 16. A
	// violation is a caller bug; carrying on would program an unstable
	// clock.
	if parentRate > rate/16 {
		panic(fmt.Sprintf("%s: reference %d exceeds VCO %d / 16", d.name, parentRate, rate))
	}

	p.cachedRate = calcRate

	// No need to divide the reference unless parent_rate > rate / 16.
	bank.Lock()
	bank.Write(d.csReg, bank.Read(d.csReg)|1<<PLL_CS_REFDIV_SHIFT)
	bank.Unlock()

	return nil
}

func (p *PllCore) RecalcRate(parentRate uint64) uint64 {
	fbdivInt := uint64(p.cm.bank.Read(p.data.fbdivIntReg))
	fbdivFrac := uint64(p.cm.bank.Read(p.data.fbdivFracReg))
	return (parentRate*((fbdivInt<<24)+fbdivFrac) + 1<<23) >> 24
}

func (p *PllCore) RoundRate(rate, parentRate uint64) uint64 {
	calcRate, _, _ := pllCoreDivider(rate, parentRate)
	return calcRate
}
