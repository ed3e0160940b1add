package rp1

import (
	"fmt"
)

// Tree owns the whole clock block: the register bank, every node from the
// clock table, and the bookkeeping for coordinated rate changes. All
// cross-node operations (rate walks, parent resolution, chain retunes) go
// through here; nodes only know their own registers.
type Tree struct {
	bank     *RegBank
	nodes    []Node // table order, indexed by ClockID
	byName   map[string]Node
	claimed  map[ClockID]bool
	critical map[string]bool
	plan     [3]rateChange

	clkXosc  Node
	clkAudio Node
	clkI2S   Node

	// fc is nil until EnableMeasurement; with it set, every rate or gate
	// change gets confirmed on a hardware frequency counter.
	fc *FreqCounter
}

// NewTree builds the clock tree over bank. xoscRate is the rate of the
// external crystal in Hz. claimed lists the clocks that downstream
// consumers own, straight from the device tree's claim-clocks property;
// unclaimed secondary PLL taps are treated as critical and kept running.
func NewTree(bank *RegBank, xoscRate uint64, claimed []ClockID) (*Tree, error) {
	if bank == nil {
		return nil, fmt.Errorf("no register bank")
	}
	if xoscRate == 0 {
		return nil, fmt.Errorf("crystal rate must be non-zero")
	}

	t := &Tree{
		bank:     bank,
		nodes:    make([]Node, RP1_NUM_CLOCKS),
		byName:   make(map[string]Node),
		claimed:  make(map[ClockID]bool),
		critical: make(map[string]bool),
	}

	for _, id := range claimed {
		if id >= RP1_NUM_CLOCKS {
			return nil, fmt.Errorf("claimed clock id %d out of range", id)
		}
		t.claimed[id] = true
	}

	xosc := &fixedNode{name: refClock, rate: xoscRate}
	t.byName[refClock] = xosc
	t.clkXosc = xosc

	for id, desc := range clkDescs {
		if desc == nil {
			return nil, fmt.Errorf("clock id %d has no descriptor", id)
		}
		n := desc.register(t)
		t.nodes[id] = n
		t.byName[desc.clkName()] = n
	}

	t.clkAudio = t.byName["pll_audio"]
	t.clkI2S = t.byName["clk_i2s"]

	return t, nil
}

// claimedName reports whether the named clock appears in the claim list.
// Names not in the table are never claimed.
func (t *Tree) claimedName(name string) bool {
	for id := ClockID(0); id < RP1_NUM_CLOCKS; id++ {
		if clkDescs[id] != nil && clkDescs[id].clkName() == name {
			return t.claimed[id]
		}
	}
	return false
}

// NumClocks is the size of the clock table. Every id below it is valid.
func (t *Tree) NumClocks() int { return len(t.nodes) }

// ByID returns the node for a table id, nil if out of range.
func (t *Tree) ByID(id ClockID) Node {
	if id >= ClockID(len(t.nodes)) {
		return nil
	}
	return t.nodes[id]
}

// Lookup returns the node with the given name, nil if unknown. The crystal
// is reachable here under "xosc".
func (t *Tree) Lookup(name string) Node { return t.byName[name] }

// Claimed reports whether a consumer claimed the clock at construction.
func (t *Tree) Claimed(id ClockID) bool { return t.claimed[id] }

// Critical reports whether the named clock must stay running.
func (t *Tree) Critical(name string) bool { return t.critical[name] }

// Rate computes a node's current output rate by walking its parent chain up
// to a root and recalculating downwards from the registers. A nil node or
// an unresolved external source reads as 0.
func (t *Tree) Rate(n Node) uint64 {
	if n == nil {
		return 0
	}
	var parentRate uint64
	if pn := n.parentName(); pn != "" {
		parentRate = t.Rate(t.byName[pn])
	}
	return n.RecalcRate(parentRate)
}

// RateByName is Rate for a named clock, 0 if unknown.
func (t *Tree) RateByName(name string) uint64 {
	return t.Rate(t.byName[name])
}

// parentByIndex resolves one slot of a leaf clock's parent list. Blank
// slots, the aux gap and sources this board doesn't provide all come back
// nil.
func (t *Tree) parentByIndex(c *Clock, idx int) Node {
	if idx < 0 || idx >= len(c.data.parents) {
		return nil
	}
	name := c.data.parents[idx]
	if name == "" || name == "-" {
		return nil
	}
	return t.byName[name]
}

// SetRate changes the output rate of a clock, reprogramming whatever the
// request needs: the node's own divider, its parent mux, and, for a clk_i2s
// request through pll_audio, the PLL primary dividers and core VCO too. The
// chain is applied most-upstream first so every stage divides a rate that
// is already correct.
func (t *Tree) SetRate(id ClockID, rate uint64) error {
	n := t.ByID(id)
	if n == nil {
		return fmt.Errorf("clock id %d out of range", id)
	}
	return t.setNodeRate(n, rate)
}

// SetRateByName is SetRate for a named clock.
func (t *Tree) SetRateByName(name string, rate uint64) error {
	n := t.byName[name]
	if n == nil {
		return fmt.Errorf("unknown clock %q", name)
	}
	return t.setNodeRate(n, rate)
}

func (t *Tree) setNodeRate(n Node, rate uint64) error {
	c, ok := n.(*Clock)
	if !ok {
		// PLL stages take the requested rate directly; their searches
		// quantize it to what the dividers can do.
		parent := t.byName[n.parentName()]
		parentRate := t.Rate(parent)
		return n.SetRate(n.RoundRate(rate, parentRate), parentRate)
	}

	defer t.clearPlan()

	calcRate, parentIdx, parentRate, err := c.DetermineRate(rate)
	if err != nil {
		return err
	}

	if t.plan[0].node == n && t.plan[0].newRate == calcRate {
		core := t.plan[2].node
		pll := t.plan[1].node
		if core == nil || pll == nil {
			return fmt.Errorf("%s: incomplete retune chain", c.Name())
		}
		if err := core.SetRate(t.plan[2].newRate, t.Rate(t.clkXosc)); err != nil {
			return err
		}
		if err := pll.SetRate(t.plan[1].newRate, t.plan[2].newRate); err != nil {
			return err
		}
	}

	return c.SetRateAndParent(calcRate, parentRate, parentIdx)
}

// Enable turns a clock on, first making sure everything above it in the
// tree is running.
func (t *Tree) Enable(id ClockID) error {
	n := t.ByID(id)
	if n == nil {
		return fmt.Errorf("clock id %d out of range", id)
	}
	return t.enableNode(n)
}

func (t *Tree) enableNode(n Node) error {
	if pn := n.parentName(); pn != "" {
		if p := t.byName[pn]; p != nil && !p.Enabled() {
			if err := t.enableNode(p); err != nil {
				return err
			}
		}
	}
	if n.Enabled() {
		return nil
	}
	return n.Enable()
}

// Disable turns a clock off. Critical clocks refuse.
func (t *Tree) Disable(id ClockID) error {
	n := t.ByID(id)
	if n == nil {
		return fmt.Errorf("clock id %d out of range", id)
	}
	if t.critical[n.Name()] {
		return fmt.Errorf("%s: critical, not disabling", n.Name())
	}
	n.Disable()
	return nil
}

// SetParent selects a leaf clock's parent by index into its parent list.
func (t *Tree) SetParent(id ClockID, parentIdx int) error {
	n := t.ByID(id)
	if n == nil {
		return fmt.Errorf("clock id %d out of range", id)
	}
	c, ok := n.(*Clock)
	if !ok {
		return fmt.Errorf("%s: %w", n.Name(), ErrInvalidParent)
	}
	if t.parentByIndex(c, parentIdx) == nil {
		return fmt.Errorf("%s: parent slot %d: %w", n.Name(), parentIdx, ErrInvalidParent)
	}
	return c.SetParent(parentIdx)
}

// EnableMeasurement switches on confirmation of every subsequent change via
// the hardware frequency counters. Each confirmation blocks for up to two
// 100ms waits, so this stays off unless asked for.
func (t *Tree) EnableMeasurement() {
	t.fc = &FreqCounter{bank: t.bank, refRate: t.RateByName(fcRefClock)}
}

// RegisterValue is one named register word, as returned by RegisterDump.
type RegisterValue struct {
	Name   string
	Offset uint32
	Value  uint32
}

// RegisterDump returns the current contents of the registers backing a
// clock. Diagnostics only; the reads are unlocked snapshots.
func (t *Tree) RegisterDump(id ClockID) []RegisterValue {
	n := t.ByID(id)
	if n == nil {
		return nil
	}

	rv := func(name string, off uint32) RegisterValue {
		return RegisterValue{name, off, t.bank.Read(off)}
	}

	switch v := n.(type) {
	case *PllCore:
		return []RegisterValue{
			rv("CS", v.data.csReg),
			rv("PWR", v.data.pwrReg),
			rv("FBDIV_INT", v.data.fbdivIntReg),
			rv("FBDIV_FRAC", v.data.fbdivFracReg),
		}
	case *Pll:
		return []RegisterValue{rv("PRIM", v.data.ctrlReg)}
	case *PllSec:
		return []RegisterValue{rv("SEC", v.data.ctrlReg)}
	case *PllPhase:
		return []RegisterValue{rv("PH", v.data.phReg)}
	case *Clock:
		out := []RegisterValue{
			rv("CTRL", v.data.ctrlReg),
			rv("DIV_INT", v.data.divIntReg),
		}
		if v.data.divFracReg != 0 {
			out = append(out, rv("DIV_FRAC", v.data.divFracReg))
		}
		return append(out, rv("SEL", v.data.selReg))
	}
	return nil
}

// Measure runs a one-off frequency-counter measurement of a clock's output,
// in Hz. Not every clock has a counter tap; those return ErrInvalidParent.
func (t *Tree) Measure(id ClockID) (uint64, error) {
	n := t.ByID(id)
	if n == nil {
		return 0, fmt.Errorf("clock id %d out of range", id)
	}

	var src uint32
	switch v := n.(type) {
	case *PllCore:
		src = v.data.fcSrc
	case *Pll:
		src = v.data.fcSrc
	case *PllSec:
		src = v.data.fcSrc
	case *PllPhase:
		src = v.data.fcSrc
	case *Clock:
		src = v.data.fcSrc
	}
	if src == 0 {
		return 0, fmt.Errorf("%s: no frequency counter tap: %w", n.Name(), ErrInvalidParent)
	}

	fc := t.fc
	if fc == nil {
		fc = &FreqCounter{bank: t.bank, refRate: t.RateByName(fcRefClock)}
	}
	return fc.Measure(src)
}
