package rp1

// fixedNode is a root with a rate supplied at construction. The crystal
// oscillator is one of these.
type fixedNode struct {
	name string
	rate uint64
}

func (f *fixedNode) Name() string       { return f.name }
func (f *fixedNode) parentName() string { return "" }
func (f *fixedNode) Enabled() bool      { return true }
func (f *fixedNode) Enable() error      { return nil }
func (f *fixedNode) Disable()           {}

func (f *fixedNode) SetRate(rate, parentRate uint64) error { return nil }
func (f *fixedNode) RecalcRate(parentRate uint64) uint64   { return f.rate }
func (f *fixedNode) RoundRate(rate, parentRate uint64) uint64 {
	return f.rate
}

// VarSrc is a rate placeholder for a clock generated outside this block,
// like the MIPI DSI byte clocks. It has no registers; whoever owns the real
// source reports its rate here so consumers can do their divider math.
type VarSrc struct {
	name string
	rate uint64
}

func (v *VarSrc) Name() string       { return v.name }
func (v *VarSrc) parentName() string { return "" }
func (v *VarSrc) Enabled() bool      { return true }
func (v *VarSrc) Enable() error      { return nil }
func (v *VarSrc) Disable()           {}

// SetRate records the externally generated rate. There is no hardware to
// program.
func (v *VarSrc) SetRate(rate, parentRate uint64) error {
	v.rate = rate
	return nil
}

func (v *VarSrc) RecalcRate(parentRate uint64) uint64 { return v.rate }

func (v *VarSrc) RoundRate(rate, parentRate uint64) uint64 {
	return rate
}
