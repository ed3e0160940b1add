package rp1

import (
	"testing"
)

func testTree(t *testing.T) *Tree {
	t.Helper()
	tr, err := NewTree(NewRegBank(WINDOW_SIZE), 50*MHz, nil)
	if err != nil {
		t.Fatalf("Failed NewTree: %v", err)
	}
	return tr
}

func TestNewTreeValidation(t *testing.T) {
	if _, err := NewTree(NewRegBank(WINDOW_SIZE), 0, nil); err == nil {
		t.Errorf("No error for zero crystal rate")
	}
	if _, err := NewTree(nil, 50*MHz, nil); err == nil {
		t.Errorf("No error for nil bank")
	}
	if _, err := NewTree(NewRegBank(WINDOW_SIZE), 50*MHz, []ClockID{RP1_NUM_CLOCKS}); err == nil {
		t.Errorf("No error for out-of-range claimed id")
	}
}

func TestTreeLookup(t *testing.T) {
	tr := testTree(t)

	if tr.NumClocks() != int(RP1_NUM_CLOCKS) {
		t.Errorf("Wrong clock count, want %d, got %d", RP1_NUM_CLOCKS, tr.NumClocks())
	}
	for id := ClockID(0); id < RP1_NUM_CLOCKS; id++ {
		n := tr.ByID(id)
		if n == nil {
			t.Fatalf("No node for id %d", id)
		}
		if tr.Lookup(n.Name()) != n {
			t.Errorf("Lookup(%q) doesn't round-trip", n.Name())
		}
	}
	if tr.ByID(RP1_NUM_CLOCKS) != nil {
		t.Errorf("Got a node for an out-of-range id")
	}
	if tr.Lookup("xosc") == nil {
		t.Errorf("No crystal node")
	}
	if got := tr.RateByName("xosc"); got != 50*MHz {
		t.Errorf("Wrong crystal rate, want %d, got %d", uint64(50*MHz), got)
	}
}

func TestTreeRateWalk(t *testing.T) {
	tr := testTree(t)
	programSysChain(t, tr)

	// clk_sys from pll_sys (slot 2) divided by 2.
	tr.bank.Write(CLK_SYS_CTRL, 2<<CLK_CTRL_SRC_SHIFT)
	tr.bank.Write(CLK_SYS_DIV_INT, 2)

	tests := []struct {
		name string
		rate uint64
	}{
		{"pll_sys_core", 1000000000},
		{"pll_sys", 500000000},
		{"pll_sys_pri_ph", 250000000},
		{"clk_sys", 250000000},
	}
	for _, test := range tests {
		if got := tr.RateByName(test.name); got != test.rate {
			t.Errorf("Wrong rate for %s, want %d, got %d", test.name, test.rate, got)
		}
	}

	// Unresolved external sources read as 0.
	if got := tr.RateByName("no_such_clock"); got != 0 {
		t.Errorf("Wrong rate for unknown clock, want 0, got %d", got)
	}
}

func TestTreeCriticality(t *testing.T) {
	tr := testTree(t)

	for _, name := range []string{"pll_sys_core", "pll_sys", "pll_sys_sec"} {
		if !tr.Critical(name) {
			t.Errorf("%s not critical with nothing claimed", name)
		}
	}

	// Claiming both a secondary tap and its core makes the tap stoppable.
	tr2, err := NewTree(NewRegBank(WINDOW_SIZE), 50*MHz,
		[]ClockID{RP1_PLL_SYS_SEC, RP1_PLL_SYS_CORE})
	if err != nil {
		t.Fatalf("Failed NewTree: %v", err)
	}
	if tr2.Critical("pll_sys_sec") {
		t.Errorf("pll_sys_sec critical despite being claimed")
	}
	if !tr2.Claimed(RP1_PLL_SYS_SEC) {
		t.Errorf("Claimed id not reported as claimed")
	}
}

func TestTreeDisable(t *testing.T) {
	tr := testTree(t)

	if err := tr.Disable(RP1_PLL_SYS_CORE); err == nil {
		t.Errorf("No error disabling a critical clock")
	}

	tr.bank.Write(CLK_UART_CTRL, CLK_CTRL_ENABLE)
	if err := tr.Disable(RP1_CLK_UART); err != nil {
		t.Fatalf("Failed Disable: %v", err)
	}
	if tr.bank.Read(CLK_UART_CTRL)&CLK_CTRL_ENABLE != 0 {
		t.Errorf("clk_uart still enabled after Disable")
	}
}

func TestTreeEnableChain(t *testing.T) {
	tr := testTree(t)

	// Let the cores "lock" instantly so the chain enable can proceed.
	tr.bank.Write(PLL_SYS_CS, PLL_CS_LOCK)
	programSysChain(t, tr)

	if err := tr.Enable(RP1_CLK_SYS); err != nil {
		t.Fatalf("Failed Enable: %v", err)
	}
	if tr.bank.Read(CLK_SYS_CTRL)&CLK_CTRL_ENABLE == 0 {
		t.Errorf("clk_sys not enabled")
	}
}

func TestTreeEnableSetsOutputEnable(t *testing.T) {
	tr := testTree(t)

	// clk_gp2 defaults to parent slot 0, clk_sdio_alt_src, whose parent
	// chain terminates at pll_sys. Enable it bottom-up.
	tr.bank.Write(PLL_SYS_CS, PLL_CS_LOCK)
	if err := tr.Enable(RP1_CLK_GP2); err != nil {
		t.Fatalf("Failed Enable: %v", err)
	}
	if tr.bank.Read(GPCLK_OE_CTRL)&(1<<2) == 0 {
		t.Errorf("Output enable not set for clk_gp2")
	}
	if tr.bank.Read(CLK_SDIO_ALT_SRC_CTRL)&CLK_CTRL_ENABLE == 0 {
		t.Errorf("Parent clk_sdio_alt_src not enabled")
	}

	if err := tr.Disable(RP1_CLK_GP2); err != nil {
		t.Fatalf("Failed Disable: %v", err)
	}
	if tr.bank.Read(GPCLK_OE_CTRL)&(1<<2) != 0 {
		t.Errorf("Output enable still set after Disable")
	}
}

func TestTreeSetRateLeaf(t *testing.T) {
	tr := testTree(t)
	programSysChain(t, tr)

	if err := tr.SetRate(RP1_CLK_UART, 25*MHz); err != nil {
		t.Fatalf("Failed SetRate: %v", err)
	}
	if got := tr.bank.Read(CLK_UART_DIV_INT); got != 10 {
		t.Errorf("Wrong divider, want 10, got %d", got)
	}
	// pll_sys_pri_ph is parent slot 0.
	if got := (tr.bank.Read(CLK_UART_CTRL) & CLK_CTRL_AUXSRC_MASK) >> CLK_CTRL_AUXSRC_SHIFT; got != 0 {
		t.Errorf("Wrong AUXSRC, want 0, got %d", got)
	}
	if got := tr.RateByName("clk_uart"); got != 25*MHz {
		t.Errorf("Wrong rate after SetRate, want %d, got %d", uint64(25*MHz), got)
	}
}

func TestTreeSetRatePllStage(t *testing.T) {
	tr := testTree(t)
	tr.bank.Write(PLL_SYS_FBDIV_INT, 20) // 1GHz VCO

	if err := tr.SetRate(RP1_PLL_SYS, 500*MHz); err != nil {
		t.Fatalf("Failed SetRate: %v", err)
	}
	if got := tr.RateByName("pll_sys"); got != 500*MHz {
		t.Errorf("Wrong rate, want %d, got %d", uint64(500*MHz), got)
	}
}

// A clk_i2s request through pll_audio must retune the whole chain: core VCO,
// primary dividers, then the leaf divider and mux, upstream first.
func TestTreeSetRateChainRetune(t *testing.T) {
	tr := testTree(t)

	if err := tr.SetRateByName("clk_i2s", 12288000); err != nil {
		t.Fatalf("Failed SetRateByName: %v", err)
	}

	// 811.008MHz VCO: feedback divisor 16 + 3693672/2^24.
	if got := tr.bank.Read(PLL_AUDIO_FBDIV_INT); got != 16 {
		t.Errorf("Wrong FBDIV_INT, want 16, got %d", got)
	}
	if got := tr.bank.Read(PLL_AUDIO_FBDIV_FRAC); got != 3693672 {
		t.Errorf("Wrong FBDIV_FRAC, want 3693672, got %d", got)
	}

	prim := tr.bank.Read(PLL_AUDIO_PRIM)
	if got := (prim & PLL_PRIM_DIV1_MASK) >> PLL_PRIM_DIV1_SHIFT; got != 2 {
		t.Errorf("Wrong DIV1, want 2, got %d", got)
	}
	if got := (prim & PLL_PRIM_DIV2_MASK) >> PLL_PRIM_DIV2_SHIFT; got != 1 {
		t.Errorf("Wrong DIV2, want 1, got %d", got)
	}

	if got := tr.bank.Read(CLK_I2S_DIV_INT); got != 33 {
		t.Errorf("Wrong leaf divider, want 33, got %d", got)
	}
	// pll_audio is parent slot 1.
	if got := (tr.bank.Read(CLK_I2S_CTRL) & CLK_CTRL_AUXSRC_MASK) >> CLK_CTRL_AUXSRC_SHIFT; got != 1 {
		t.Errorf("Wrong AUXSRC, want 1, got %d", got)
	}

	tests := []struct {
		name string
		rate uint64
	}{
		{"pll_audio_core", 811008000},
		{"pll_audio", 405504000},
		{"clk_i2s", 12288000},
	}
	for _, test := range tests {
		if got := tr.RateByName(test.name); got != test.rate {
			t.Errorf("Wrong rate for %s, want %d, got %d", test.name, test.rate, got)
		}
	}

	// The plan must not leak into later requests.
	for i, chg := range tr.plan {
		if chg.node != nil {
			t.Errorf("Plan entry %d left behind: %+v", i, chg)
		}
	}
}

func TestTreeSetParent(t *testing.T) {
	tr := testTree(t)

	if err := tr.SetParent(RP1_CLK_UART, 2); err != nil {
		t.Fatalf("Failed SetParent: %v", err)
	}
	if got := tr.Lookup("clk_uart").(*Clock).Parent(); got != 2 {
		t.Errorf("Wrong parent, want 2, got %d", got)
	}

	// Blank slots and external pin sources can't be selected.
	if err := tr.SetParent(RP1_CLK_UART, 3); err == nil {
		t.Errorf("No error selecting an unresolved parent")
	}
	if err := tr.SetParent(RP1_PLL_SYS, 0); err == nil {
		t.Errorf("No error reparenting a PLL stage")
	}
}

func TestTreeMeasure(t *testing.T) {
	tr := testTree(t)

	// pll_sys taps counter 0, source 2.
	tr.bank.Write(FC0_STATUS, FC0_STATUS_DONE)
	tr.bank.Write(FC0_RESULT, 500000<<FC0_RESULT_FRAC_SHIFT)

	hz, err := tr.Measure(RP1_PLL_SYS)
	if err != nil {
		t.Fatalf("Failed Measure: %v", err)
	}
	if hz != 500*MHz {
		t.Errorf("Wrong measured rate, want %d, got %d", uint64(500*MHz), hz)
	}

	// The cores have no counter tap.
	if _, err := tr.Measure(RP1_PLL_SYS_CORE); err == nil {
		t.Errorf("No error measuring an untapped clock")
	}
}

func TestTreeRegisterDump(t *testing.T) {
	tr := testTree(t)
	tr.bank.Write(PLL_SYS_PRIM, 0x12345678)

	dump := tr.RegisterDump(RP1_PLL_SYS)
	if len(dump) != 1 {
		t.Fatalf("Wrong dump length, want 1, got %d", len(dump))
	}
	if dump[0].Name != "PRIM" || dump[0].Offset != PLL_SYS_PRIM || dump[0].Value != 0x12345678 {
		t.Errorf("Wrong dump entry: %+v", dump[0])
	}

	if got := len(tr.RegisterDump(RP1_CLK_GP0)); got != 4 {
		t.Errorf("Wrong dump length for clk_gp0, want 4, got %d", got)
	}
}
