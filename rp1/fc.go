package rp1

import (
	"fmt"
	"runtime"
	"time"

	"github.com/platinasystems/log"
)

// fcRefClock supplies the reference rate the counters are programmed with.
const fcRefClock = "clk_slow_sys"

// FreqCounter drives one of the eight hardware frequency counters. Each
// counter measures any of up to 31 taps against a reference clock and
// reports the result in kHz with 5 fractional bits.
type FreqCounter struct {
	bank    *RegBank
	refRate uint64
}

// Measure runs a measurement of the tap identified by src (counter index in
// the high part, tap number in the low, see FCNum). It blocks for up to two
// bounded waits of 100ms each and returns the measured rate in Hz.
func (f *FreqCounter) Measure(src uint32) (uint64, error) {
	fcIdx := src / 32
	fcSrc := src % 32

	// Tap 0 is reserved and reads as nothing.
	if fcSrc == 0 || fcIdx >= FC_COUNT {
		return 0, fmt.Errorf("frequency counter source %d: %w", src, ErrInvalidParent)
	}

	base := fcIdx * FC_SIZE

	// Ensure the counter is idle.
	deadline := time.Now().Add(fcTimeout)
	for f.bank.Read(base+FC0_STATUS)&FC0_STATUS_RUNNING != 0 {
		if time.Now().After(deadline) {
			return 0, fmt.Errorf("frequency counter %d busy: %w", fcIdx, ErrTimeout)
		}
		runtime.Gosched()
	}

	f.bank.Lock()
	f.bank.Write(base+FC0_REF_KHZ, uint32(f.refRate/KHz))
	f.bank.Write(base+FC0_MIN_KHZ, 0)
	f.bank.Write(base+FC0_MAX_KHZ, 0x1ffffff)
	f.bank.Write(base+FC0_INTERVAL, 8)
	f.bank.Write(base+FC0_DELAY, 7)
	f.bank.Write(base+FC0_SRC, fcSrc)
	f.bank.Unlock()

	// Wait for the measurement to complete.
	deadline = time.Now().Add(fcTimeout)
	for f.bank.Read(base+FC0_STATUS)&FC0_STATUS_DONE == 0 {
		if time.Now().After(deadline) {
			return 0, fmt.Errorf("frequency counter %d measurement: %w", fcIdx, ErrTimeout)
		}
		runtime.Gosched()
	}

	result := uint64(f.bank.Read(base + FC0_RESULT))

	// Put the counter back to its idle source.
	f.bank.Lock()
	f.bank.Write(base+FC0_SRC, 0)
	f.bank.Unlock()

	return result * KHz >> FC0_RESULT_FRAC_SHIFT, nil
}

// measureClock measures a node's output after a change, when measurement is
// enabled on the tree. Failures are logged, never propagated: a measurement
// confirms a change, it isn't part of one.
func (t *Tree) measureClock(name string, fcSrc uint32) {
	if t.fc == nil || fcSrc == 0 {
		return
	}
	hz, err := t.fc.Measure(fcSrc)
	if err != nil {
		log.Printf("err: %s: measure: %v", name, err)
		return
	}
	log.Printf("%s: measured %d Hz", name, hz)
}
