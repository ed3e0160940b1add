package rp1

// ClockID identifies a clock in the table below. The values match the
// device-tree binding for the RP1 clock block, so a "claim-clocks" property
// can be fed straight to NewTree.
type ClockID uint32

const (
	RP1_PLL_SYS_CORE ClockID = iota
	RP1_PLL_AUDIO_CORE
	RP1_PLL_VIDEO_CORE
	RP1_PLL_SYS
	RP1_PLL_AUDIO
	RP1_PLL_VIDEO
	RP1_PLL_SYS_PRI_PH
	RP1_PLL_AUDIO_PRI_PH
	RP1_PLL_VIDEO_PRI_PH
	RP1_PLL_SYS_SEC
	RP1_PLL_AUDIO_SEC
	RP1_PLL_VIDEO_SEC
	RP1_PLL_AUDIO_TERN
	RP1_CLK_SYS
	RP1_CLK_SLOW_SYS
	RP1_CLK_UART
	RP1_CLK_ETH
	RP1_CLK_PWM0
	RP1_CLK_PWM1
	RP1_CLK_AUDIO_IN
	RP1_CLK_AUDIO_OUT
	RP1_CLK_I2S
	RP1_CLK_MIPI0_CFG
	RP1_CLK_MIPI1_CFG
	RP1_CLK_ETH_TSU
	RP1_CLK_ADC
	RP1_CLK_SDIO_TIMER
	RP1_CLK_SDIO_ALT_SRC
	RP1_CLK_GP0
	RP1_CLK_GP1
	RP1_CLK_GP2
	RP1_CLK_GP3
	RP1_CLK_GP4
	RP1_CLK_GP5
	RP1_CLK_VEC
	RP1_CLK_DPI
	RP1_CLK_MIPI0_DPI
	RP1_CLK_MIPI1_DPI
	RP1_CLK_MIPI0_DSI_BYTECLOCK
	RP1_CLK_MIPI1_DSI_BYTECLOCK

	RP1_NUM_CLOCKS
)

// clkDesc constructs one node of the tree. One implementation per node kind.
type clkDesc interface {
	clkName() string
	register(t *Tree) Node
}

type pllCoreDesc struct{ data *pllCoreData }

func (d pllCoreDesc) clkName() string { return d.data.name }
func (d pllCoreDesc) register(t *Tree) Node {
	// The cores hold everything downstream; they are never switched off.
	t.critical[d.data.name] = true
	return &PllCore{cm: t, data: d.data}
}

type pllDesc struct{ data *pllData }

func (d pllDesc) clkName() string { return d.data.name }
func (d pllDesc) register(t *Tree) Node {
	t.critical[d.data.name] = true
	return &Pll{cm: t, data: d.data}
}

type pllPhDesc struct{ data *pllPhData }

func (d pllPhDesc) clkName() string { return d.data.name }
func (d pllPhDesc) register(t *Tree) Node {
	return &PllPhase{cm: t, data: d.data}
}

type pllSecDesc struct{ data *pllData }

func (d pllSecDesc) clkName() string { return d.data.name }
func (d pllSecDesc) register(t *Tree) Node {
	// A secondary tap that nobody claimed may still be feeding something
	// the firmware set up, so it must stay running. Same for its source.
	if !t.claimedName(d.data.name) || !t.claimedName(d.data.sourcePll) {
		t.critical[d.data.name] = true
	}
	return &PllSec{cm: t, data: d.data}
}

type clockDesc struct{ data *clockData }

func (d clockDesc) clkName() string { return d.data.name }
func (d clockDesc) register(t *Tree) Node {
	c := d.data
	if c.numStdParents+c.numAuxParents > MAX_CLK_PARENTS {
		panic(c.name + ": too many parents")
	}
	if len(c.parents) != c.numStdParents+c.numAuxParents {
		panic(c.name + ": parent list length mismatch")
	}
	// There must be a gap for the AUX selector.
	if c.numStdParents > AUX_SEL && c.parents[AUX_SEL] != "-" {
		panic(c.name + ": missing aux gap in parent list")
	}
	return &Clock{cm: t, data: c}
}

type varSrcDesc struct{ name string }

func (d varSrcDesc) clkName() string { return d.name }
func (d varSrcDesc) register(t *Tree) Node {
	return &VarSrc{name: d.name}
}

// clkDescs is the clock table of the RP1, indexed by ClockID. Parent slots
// commented out are inputs that exist in the hardware mux but must not be
// selected; empty strings keep the mux index numbering intact. The
// clksrc_gp* pin inputs stay unresolved unless the board wires them up.
var clkDescs = [RP1_NUM_CLOCKS]clkDesc{
	RP1_PLL_SYS_CORE: pllCoreDesc{&pllCoreData{
		name:         "pll_sys_core",
		csReg:        PLL_SYS_CS,
		pwrReg:       PLL_SYS_PWR,
		fbdivIntReg:  PLL_SYS_FBDIV_INT,
		fbdivFracReg: PLL_SYS_FBDIV_FRAC,
	}},

	RP1_PLL_AUDIO_CORE: pllCoreDesc{&pllCoreData{
		name:         "pll_audio_core",
		csReg:        PLL_AUDIO_CS,
		pwrReg:       PLL_AUDIO_PWR,
		fbdivIntReg:  PLL_AUDIO_FBDIV_INT,
		fbdivFracReg: PLL_AUDIO_FBDIV_FRAC,
	}},

	RP1_PLL_VIDEO_CORE: pllCoreDesc{&pllCoreData{
		name:         "pll_video_core",
		csReg:        PLL_VIDEO_CS,
		pwrReg:       PLL_VIDEO_PWR,
		fbdivIntReg:  PLL_VIDEO_FBDIV_INT,
		fbdivFracReg: PLL_VIDEO_FBDIV_FRAC,
	}},

	RP1_PLL_SYS: pllDesc{&pllData{
		name:      "pll_sys",
		sourcePll: "pll_sys_core",
		ctrlReg:   PLL_SYS_PRIM,
		fcSrc:     FCNum(0, 2),
	}},

	RP1_PLL_AUDIO: pllDesc{&pllData{
		name:      "pll_audio",
		sourcePll: "pll_audio_core",
		ctrlReg:   PLL_AUDIO_PRIM,
		fcSrc:     FCNum(4, 2),
		flags:     flagSetRateParent,
	}},

	RP1_PLL_VIDEO: pllDesc{&pllData{
		name:      "pll_video",
		sourcePll: "pll_video_core",
		ctrlReg:   PLL_VIDEO_PRIM,
		fcSrc:     FCNum(3, 2),
	}},

	RP1_PLL_SYS_PRI_PH: pllPhDesc{&pllPhData{
		name:         "pll_sys_pri_ph",
		sourcePll:    "pll_sys",
		phReg:        PLL_SYS_PRIM,
		fixedDivider: 2,
		phase:        PHASE_0,
		fcSrc:        FCNum(1, 2),
	}},

	RP1_PLL_AUDIO_PRI_PH: pllPhDesc{&pllPhData{
		name:         "pll_audio_pri_ph",
		sourcePll:    "pll_audio",
		phReg:        PLL_AUDIO_PRIM,
		fixedDivider: 2,
		phase:        PHASE_0,
		fcSrc:        FCNum(5, 1),
	}},

	RP1_PLL_VIDEO_PRI_PH: pllPhDesc{&pllPhData{
		name:         "pll_video_pri_ph",
		sourcePll:    "pll_video",
		phReg:        PLL_VIDEO_PRIM,
		fixedDivider: 2,
		phase:        PHASE_0,
		fcSrc:        FCNum(4, 3),
	}},

	RP1_PLL_SYS_SEC: pllSecDesc{&pllData{
		name:      "pll_sys_sec",
		sourcePll: "pll_sys_core",
		ctrlReg:   PLL_SYS_SEC,
		fcSrc:     FCNum(2, 2),
	}},

	RP1_PLL_AUDIO_SEC: pllSecDesc{&pllData{
		name:      "pll_audio_sec",
		sourcePll: "pll_audio_core",
		ctrlReg:   PLL_AUDIO_SEC,
		fcSrc:     FCNum(6, 2),
	}},

	RP1_PLL_VIDEO_SEC: pllSecDesc{&pllData{
		name:      "pll_video_sec",
		sourcePll: "pll_video_core",
		ctrlReg:   PLL_VIDEO_SEC,
		fcSrc:     FCNum(5, 3),
	}},

	RP1_PLL_AUDIO_TERN: pllSecDesc{&pllData{
		name:      "pll_audio_tern",
		sourcePll: "pll_audio_core",
		ctrlReg:   PLL_AUDIO_TERN,
		fcSrc:     FCNum(6, 2),
	}},

	RP1_CLK_SYS: clockDesc{&clockData{
		name:          "clk_sys",
		parents:       []string{"xosc", "-", "pll_sys"},
		numStdParents: 3,
		numAuxParents: 0,
		ctrlReg:       CLK_SYS_CTRL,
		divIntReg:     CLK_SYS_DIV_INT,
		selReg:        CLK_SYS_SEL,
		divIntMax:     DIV_INT_24BIT_MAX,
		maxFreq:       200 * MHz,
		fcSrc:         FCNum(0, 4),
		clkSrcMask:    0x3,
	}},

	RP1_CLK_SLOW_SYS: clockDesc{&clockData{
		name:          "clk_slow_sys",
		parents:       []string{"xosc"},
		numStdParents: 1,
		numAuxParents: 0,
		ctrlReg:       CLK_SLOW_SYS_CTRL,
		divIntReg:     CLK_SLOW_SYS_DIV_INT,
		selReg:        CLK_SLOW_SYS_SEL,
		divIntMax:     DIV_INT_8BIT_MAX,
		maxFreq:       50 * MHz,
		fcSrc:         FCNum(1, 4),
		clkSrcMask:    0x1,
	}},

	RP1_CLK_UART: clockDesc{&clockData{
		name: "clk_uart",
		parents: []string{"pll_sys_pri_ph",
			"pll_video",
			"xosc",
			"clksrc_gp0",
			"clksrc_gp1",
			"clksrc_gp2",
			"clksrc_gp3",
			"clksrc_gp4",
			"clksrc_gp5"},
		numStdParents: 0,
		numAuxParents: 9,
		ctrlReg:       CLK_UART_CTRL,
		divIntReg:     CLK_UART_DIV_INT,
		selReg:        CLK_UART_SEL,
		divIntMax:     DIV_INT_8BIT_MAX,
		maxFreq:       100 * MHz,
		fcSrc:         FCNum(6, 7),
	}},

	RP1_CLK_ETH: clockDesc{&clockData{
		name: "clk_eth",
		parents: []string{"pll_sys_sec",
			"pll_sys",
			"pll_video_sec",
			"clksrc_gp0",
			"clksrc_gp1",
			"clksrc_gp2",
			"clksrc_gp3",
			"clksrc_gp4",
			"clksrc_gp5"},
		numStdParents: 0,
		numAuxParents: 9,
		ctrlReg:       CLK_ETH_CTRL,
		divIntReg:     CLK_ETH_DIV_INT,
		selReg:        CLK_ETH_SEL,
		divIntMax:     DIV_INT_8BIT_MAX,
		maxFreq:       125 * MHz,
		fcSrc:         FCNum(4, 6),
	}},

	RP1_CLK_PWM0: clockDesc{&clockData{
		name: "clk_pwm0",
		parents: []string{"", // pll_audio_pri_ph
			"pll_video_sec",
			"xosc",
			"clksrc_gp0",
			"clksrc_gp1",
			"clksrc_gp2",
			"clksrc_gp3",
			"clksrc_gp4",
			"clksrc_gp5"},
		numStdParents: 0,
		numAuxParents: 9,
		ctrlReg:       CLK_PWM0_CTRL,
		divIntReg:     CLK_PWM0_DIV_INT,
		divFracReg:    CLK_PWM0_DIV_FRAC,
		selReg:        CLK_PWM0_SEL,
		divIntMax:     DIV_INT_16BIT_MAX,
		maxFreq:       76800 * KHz,
		fcSrc:         FCNum(0, 5),
	}},

	RP1_CLK_PWM1: clockDesc{&clockData{
		name: "clk_pwm1",
		parents: []string{"", // pll_audio_pri_ph
			"pll_video_sec",
			"xosc",
			"clksrc_gp0",
			"clksrc_gp1",
			"clksrc_gp2",
			"clksrc_gp3",
			"clksrc_gp4",
			"clksrc_gp5"},
		numStdParents: 0,
		numAuxParents: 9,
		ctrlReg:       CLK_PWM1_CTRL,
		divIntReg:     CLK_PWM1_DIV_INT,
		divFracReg:    CLK_PWM1_DIV_FRAC,
		selReg:        CLK_PWM1_SEL,
		divIntMax:     DIV_INT_16BIT_MAX,
		maxFreq:       76800 * KHz,
		fcSrc:         FCNum(1, 5),
	}},

	RP1_CLK_AUDIO_IN: clockDesc{&clockData{
		name: "clk_audio_in",
		parents: []string{"", // pll_audio
			"", // pll_audio_pri_ph
			"", // pll_audio_sec
			"pll_video_sec",
			"xosc",
			"clksrc_gp0",
			"clksrc_gp1",
			"clksrc_gp2",
			"clksrc_gp3",
			"clksrc_gp4",
			"clksrc_gp5"},
		numStdParents: 0,
		numAuxParents: 11,
		ctrlReg:       CLK_AUDIO_IN_CTRL,
		divIntReg:     CLK_AUDIO_IN_DIV_INT,
		selReg:        CLK_AUDIO_IN_SEL,
		divIntMax:     DIV_INT_8BIT_MAX,
		maxFreq:       76800 * KHz,
		fcSrc:         FCNum(2, 5),
	}},

	RP1_CLK_AUDIO_OUT: clockDesc{&clockData{
		name: "clk_audio_out",
		parents: []string{"", // pll_audio
			"", // pll_audio_sec
			"pll_video_sec",
			"xosc",
			"clksrc_gp0",
			"clksrc_gp1",
			"clksrc_gp2",
			"clksrc_gp3",
			"clksrc_gp4",
			"clksrc_gp5"},
		numStdParents: 0,
		numAuxParents: 10,
		ctrlReg:       CLK_AUDIO_OUT_CTRL,
		divIntReg:     CLK_AUDIO_OUT_DIV_INT,
		selReg:        CLK_AUDIO_OUT_SEL,
		divIntMax:     DIV_INT_8BIT_MAX,
		maxFreq:       153600 * KHz,
		fcSrc:         FCNum(3, 5),
	}},

	RP1_CLK_I2S: clockDesc{&clockData{
		name: "clk_i2s",
		parents: []string{"xosc",
			"pll_audio",
			"pll_audio_sec",
			"clksrc_gp0",
			"clksrc_gp1",
			"clksrc_gp2",
			"clksrc_gp3",
			"clksrc_gp4",
			"clksrc_gp5"},
		numStdParents: 0,
		numAuxParents: 9,
		ctrlReg:       CLK_I2S_CTRL,
		divIntReg:     CLK_I2S_DIV_INT,
		selReg:        CLK_I2S_SEL,
		divIntMax:     DIV_INT_8BIT_MAX,
		maxFreq:       50 * MHz,
		fcSrc:         FCNum(4, 4),
		flags:         flagSetRateParent,
	}},

	RP1_CLK_MIPI0_CFG: clockDesc{&clockData{
		name:          "clk_mipi0_cfg",
		parents:       []string{"xosc"},
		numStdParents: 0,
		numAuxParents: 1,
		ctrlReg:       CLK_MIPI0_CFG_CTRL,
		divIntReg:     CLK_MIPI0_CFG_DIV_INT,
		selReg:        CLK_MIPI0_CFG_SEL,
		divIntMax:     DIV_INT_8BIT_MAX,
		maxFreq:       50 * MHz,
		fcSrc:         FCNum(4, 5),
	}},

	RP1_CLK_MIPI1_CFG: clockDesc{&clockData{
		name:          "clk_mipi1_cfg",
		parents:       []string{"xosc"},
		numStdParents: 0,
		numAuxParents: 1,
		ctrlReg:       CLK_MIPI1_CFG_CTRL,
		divIntReg:     CLK_MIPI1_CFG_DIV_INT,
		selReg:        CLK_MIPI1_CFG_SEL,
		clkSrcMask:    0x1,
		divIntMax:     DIV_INT_8BIT_MAX,
		maxFreq:       50 * MHz,
		fcSrc:         FCNum(5, 6),
	}},

	RP1_CLK_ETH_TSU: clockDesc{&clockData{
		name: "clk_eth_tsu",
		parents: []string{"xosc",
			"pll_video_sec",
			"clksrc_gp0",
			"clksrc_gp1",
			"clksrc_gp2",
			"clksrc_gp3",
			"clksrc_gp4",
			"clksrc_gp5"},
		numStdParents: 0,
		numAuxParents: 8,
		ctrlReg:       CLK_ETH_TSU_CTRL,
		divIntReg:     CLK_ETH_TSU_DIV_INT,
		selReg:        CLK_ETH_TSU_SEL,
		divIntMax:     DIV_INT_8BIT_MAX,
		maxFreq:       50 * MHz,
		fcSrc:         FCNum(5, 7),
	}},

	RP1_CLK_ADC: clockDesc{&clockData{
		name: "clk_adc",
		parents: []string{"xosc",
			"", // pll_audio_tern
			"clksrc_gp0",
			"clksrc_gp1",
			"clksrc_gp2",
			"clksrc_gp3",
			"clksrc_gp4",
			"clksrc_gp5"},
		numStdParents: 0,
		numAuxParents: 8,
		ctrlReg:       CLK_ADC_CTRL,
		divIntReg:     CLK_ADC_DIV_INT,
		selReg:        CLK_ADC_SEL,
		divIntMax:     DIV_INT_8BIT_MAX,
		maxFreq:       50 * MHz,
		fcSrc:         FCNum(5, 5),
	}},

	RP1_CLK_SDIO_TIMER: clockDesc{&clockData{
		name:          "clk_sdio_timer",
		parents:       []string{"xosc"},
		numStdParents: 0,
		numAuxParents: 1,
		ctrlReg:       CLK_SDIO_TIMER_CTRL,
		divIntReg:     CLK_SDIO_TIMER_DIV_INT,
		selReg:        CLK_SDIO_TIMER_SEL,
		divIntMax:     DIV_INT_8BIT_MAX,
		maxFreq:       50 * MHz,
		fcSrc:         FCNum(3, 4),
	}},

	RP1_CLK_SDIO_ALT_SRC: clockDesc{&clockData{
		name:          "clk_sdio_alt_src",
		parents:       []string{"pll_sys"},
		numStdParents: 0,
		numAuxParents: 1,
		ctrlReg:       CLK_SDIO_ALT_SRC_CTRL,
		divIntReg:     CLK_SDIO_ALT_SRC_DIV_INT,
		selReg:        CLK_SDIO_ALT_SRC_SEL,
		divIntMax:     DIV_INT_8BIT_MAX,
		maxFreq:       200 * MHz,
		fcSrc:         FCNum(5, 4),
	}},

	RP1_CLK_GP0: clockDesc{&clockData{
		name: "clk_gp0",
		parents: []string{"xosc",
			"clksrc_gp1",
			"clksrc_gp2",
			"clksrc_gp3",
			"clksrc_gp4",
			"clksrc_gp5",
			"pll_sys",
			"", // pll_audio
			"",
			"",
			"clk_i2s",
			"clk_adc",
			"",
			"",
			"",
			"clk_sys"},
		numStdParents: 0,
		numAuxParents: 16,
		oeMask:        1 << 0,
		ctrlReg:       CLK_GP0_CTRL,
		divIntReg:     CLK_GP0_DIV_INT,
		divFracReg:    CLK_GP0_DIV_FRAC,
		selReg:        CLK_GP0_SEL,
		divIntMax:     DIV_INT_16BIT_MAX,
		maxFreq:       100 * MHz,
		fcSrc:         FCNum(0, 1),
	}},

	RP1_CLK_GP1: clockDesc{&clockData{
		name: "clk_gp1",
		parents: []string{"clk_sdio_timer",
			"clksrc_gp0",
			"clksrc_gp2",
			"clksrc_gp3",
			"clksrc_gp4",
			"clksrc_gp5",
			"pll_sys_pri_ph",
			"", // pll_audio_pri_ph
			"",
			"",
			"clk_adc",
			"clk_dpi",
			"clk_pwm0",
			"",
			"",
			""},
		numStdParents: 0,
		numAuxParents: 16,
		oeMask:        1 << 1,
		ctrlReg:       CLK_GP1_CTRL,
		divIntReg:     CLK_GP1_DIV_INT,
		divFracReg:    CLK_GP1_DIV_FRAC,
		selReg:        CLK_GP1_SEL,
		divIntMax:     DIV_INT_16BIT_MAX,
		maxFreq:       100 * MHz,
		fcSrc:         FCNum(1, 1),
	}},

	RP1_CLK_GP2: clockDesc{&clockData{
		name: "clk_gp2",
		parents: []string{"clk_sdio_alt_src",
			"clksrc_gp0",
			"clksrc_gp1",
			"clksrc_gp3",
			"clksrc_gp4",
			"clksrc_gp5",
			"pll_sys_sec",
			"", // pll_audio_sec
			"pll_video",
			"clk_audio_in",
			"clk_dpi",
			"clk_pwm0",
			"clk_pwm1",
			"clk_mipi0_dpi",
			"clk_mipi1_cfg",
			"clk_sys"},
		numStdParents: 0,
		numAuxParents: 16,
		oeMask:        1 << 2,
		ctrlReg:       CLK_GP2_CTRL,
		divIntReg:     CLK_GP2_DIV_INT,
		divFracReg:    CLK_GP2_DIV_FRAC,
		selReg:        CLK_GP2_SEL,
		divIntMax:     DIV_INT_16BIT_MAX,
		maxFreq:       100 * MHz,
		fcSrc:         FCNum(2, 1),
	}},

	RP1_CLK_GP3: clockDesc{&clockData{
		name: "clk_gp3",
		parents: []string{"xosc",
			"clksrc_gp0",
			"clksrc_gp1",
			"clksrc_gp2",
			"clksrc_gp4",
			"clksrc_gp5",
			"",
			"",
			"pll_video_pri_ph",
			"clk_audio_out",
			"",
			"",
			"clk_mipi1_dpi",
			"",
			"",
			""},
		numStdParents: 0,
		numAuxParents: 16,
		oeMask:        1 << 3,
		ctrlReg:       CLK_GP3_CTRL,
		divIntReg:     CLK_GP3_DIV_INT,
		divFracReg:    CLK_GP3_DIV_FRAC,
		selReg:        CLK_GP3_SEL,
		divIntMax:     DIV_INT_16BIT_MAX,
		maxFreq:       100 * MHz,
		fcSrc:         FCNum(3, 1),
	}},

	RP1_CLK_GP4: clockDesc{&clockData{
		name: "clk_gp4",
		parents: []string{"xosc",
			"clksrc_gp0",
			"clksrc_gp1",
			"clksrc_gp2",
			"clksrc_gp3",
			"clksrc_gp5",
			"", // pll_audio_tern
			"pll_video_sec",
			"",
			"",
			"",
			"clk_mipi0_cfg",
			"clk_uart",
			"",
			"",
			"clk_sys"},
		numStdParents: 0,
		numAuxParents: 16,
		oeMask:        1 << 4,
		ctrlReg:       CLK_GP4_CTRL,
		divIntReg:     CLK_GP4_DIV_INT,
		divFracReg:    CLK_GP4_DIV_FRAC,
		selReg:        CLK_GP4_SEL,
		divIntMax:     DIV_INT_16BIT_MAX,
		maxFreq:       100 * MHz,
		fcSrc:         FCNum(4, 1),
	}},

	RP1_CLK_GP5: clockDesc{&clockData{
		name: "clk_gp5",
		parents: []string{"xosc",
			"clksrc_gp0",
			"clksrc_gp1",
			"clksrc_gp2",
			"clksrc_gp3",
			"clksrc_gp4",
			"", // pll_audio_tern
			"pll_video_sec",
			"clk_eth_tsu",
			"",
			"clk_vec",
			"",
			"",
			"",
			"",
			""},
		numStdParents: 0,
		numAuxParents: 16,
		oeMask:        1 << 5,
		ctrlReg:       CLK_GP5_CTRL,
		divIntReg:     CLK_GP5_DIV_INT,
		divFracReg:    CLK_GP5_DIV_FRAC,
		selReg:        CLK_GP5_SEL,
		divIntMax:     DIV_INT_16BIT_MAX,
		maxFreq:       100 * MHz,
		fcSrc:         FCNum(5, 1),
	}},

	RP1_CLK_VEC: clockDesc{&clockData{
		name: "clk_vec",
		parents: []string{"pll_sys_pri_ph",
			"pll_video_sec",
			"pll_video",
			"clksrc_gp0",
			"clksrc_gp1",
			"clksrc_gp2",
			"clksrc_gp3",
			"clksrc_gp4"},
		numStdParents: 0,
		numAuxParents: 8,
		ctrlReg:       VIDEO_CLK_VEC_CTRL,
		divIntReg:     VIDEO_CLK_VEC_DIV_INT,
		selReg:        VIDEO_CLK_VEC_SEL,
		flags:         flagNoReparent, // the VEC driver picks the parent
		divIntMax:     DIV_INT_8BIT_MAX,
		maxFreq:       108 * MHz,
		fcSrc:         FCNum(0, 6),
	}},

	RP1_CLK_DPI: clockDesc{&clockData{
		name: "clk_dpi",
		parents: []string{"pll_sys",
			"pll_video_sec",
			"pll_video",
			"clksrc_gp0",
			"clksrc_gp1",
			"clksrc_gp2",
			"clksrc_gp3",
			"clksrc_gp4"},
		numStdParents: 0,
		numAuxParents: 8,
		ctrlReg:       VIDEO_CLK_DPI_CTRL,
		divIntReg:     VIDEO_CLK_DPI_DIV_INT,
		selReg:        VIDEO_CLK_DPI_SEL,
		flags:         flagNoReparent, // the DPI driver picks the parent
		divIntMax:     DIV_INT_8BIT_MAX,
		maxFreq:       200 * MHz,
		fcSrc:         FCNum(1, 6),
	}},

	RP1_CLK_MIPI0_DPI: clockDesc{&clockData{
		name: "clk_mipi0_dpi",
		parents: []string{"pll_sys",
			"pll_video_sec",
			"pll_video",
			"clksrc_mipi0_dsi_byteclk",
			"clksrc_gp0",
			"clksrc_gp1",
			"clksrc_gp2",
			"clksrc_gp3"},
		numStdParents: 0,
		numAuxParents: 8,
		ctrlReg:       VIDEO_CLK_MIPI0_DPI_CTRL,
		divIntReg:     VIDEO_CLK_MIPI0_DPI_DIV_INT,
		divFracReg:    VIDEO_CLK_MIPI0_DPI_DIV_FRAC,
		selReg:        VIDEO_CLK_MIPI0_DPI_SEL,
		flags:         flagNoReparent, // the DSI driver picks the parent
		divIntMax:     DIV_INT_8BIT_MAX,
		maxFreq:       200 * MHz,
		fcSrc:         FCNum(2, 6),
	}},

	RP1_CLK_MIPI1_DPI: clockDesc{&clockData{
		name: "clk_mipi1_dpi",
		parents: []string{"pll_sys",
			"pll_video_sec",
			"pll_video",
			"clksrc_mipi1_dsi_byteclk",
			"clksrc_gp0",
			"clksrc_gp1",
			"clksrc_gp2",
			"clksrc_gp3"},
		numStdParents: 0,
		numAuxParents: 8,
		ctrlReg:       VIDEO_CLK_MIPI1_DPI_CTRL,
		divIntReg:     VIDEO_CLK_MIPI1_DPI_DIV_INT,
		divFracReg:    VIDEO_CLK_MIPI1_DPI_DIV_FRAC,
		selReg:        VIDEO_CLK_MIPI1_DPI_SEL,
		flags:         flagNoReparent, // the DSI driver picks the parent
		divIntMax:     DIV_INT_8BIT_MAX,
		maxFreq:       200 * MHz,
		fcSrc:         FCNum(3, 6),
	}},

	RP1_CLK_MIPI0_DSI_BYTECLOCK: varSrcDesc{"clksrc_mipi0_dsi_byteclk"},
	RP1_CLK_MIPI1_DSI_BYTECLOCK: varSrcDesc{"clksrc_mipi1_dsi_byteclk"},
}
