// Package rp1 models the clock generator of the RP1 multifunction chip: the
// three PLLs derived from the external crystal oscillator, their output
// stages and secondary dividers, and the muxed/divided leaf clocks that feed
// the on-chip peripherals. The register map is from the RP1 peripherals
// datasheet.
package rp1

import (
	"errors"
	"time"
)

var (
	// ErrTimeout: a bounded hardware wait (PLL lock detect, frequency
	// counter) expired. Recoverable - the caller may simply retry.
	ErrTimeout = errors.New("hardware timeout")
	// ErrInvalidDivider: no divider can produce the requested rate.
	ErrInvalidDivider = errors.New("invalid divider")
	// ErrInvalidParent: parent index outside the declared parent list.
	ErrInvalidParent = errors.New("invalid parent index")
)

const (
	lockTimeout = 100 * time.Millisecond
	fcTimeout   = 100 * time.Millisecond
)

// Node is the contract every clock in the tree implements. Rates are Hz.
// The rate arguments mirror the hardware reality that a node only knows its
// own dividers; whoever calls supplies the parent rate (normally the Tree).
//
// RoundRate and the divider searches are pure computations; only SetRate,
// Enable and Disable touch registers, always under the bank lock.
type Node interface {
	Name() string
	Enabled() bool
	Enable() error
	Disable()
	SetRate(rate, parentRate uint64) error
	RecalcRate(parentRate uint64) uint64
	RoundRate(rate, parentRate uint64) uint64

	// parentName is the name of the currently selected parent, "" for
	// root nodes. For mux nodes this reads the select register.
	parentName() string
}

type nodeFlags uint32

const (
	// flagSetRateParent: a rate request on this node may retune its
	// parent chain (pll_audio, clk_i2s).
	flagSetRateParent nodeFlags = 1 << iota
	// flagNoReparent: prefer the currently selected parent; the owning
	// driver picks parents itself (vec, dpi, mipi dpi).
	flagNoReparent
)

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

// divNearest divides a by b, rounding to nearest.
func divNearest(a, b uint64) uint64 {
	return (a + b>>1) / b
}
