package rp1

// Register map for the RP1 clock block. Offsets are relative to the start
// of the clock register window and must match the RP1 peripherals datasheet
// bit-for-bit - they are the wire format of this driver.

const (
	PLL_SYS_CS         = 0x08000
	PLL_SYS_PWR        = 0x08004
	PLL_SYS_FBDIV_INT  = 0x08008
	PLL_SYS_FBDIV_FRAC = 0x0800c
	PLL_SYS_PRIM       = 0x08010
	PLL_SYS_SEC        = 0x08014

	PLL_AUDIO_CS         = 0x0c000
	PLL_AUDIO_PWR        = 0x0c004
	PLL_AUDIO_FBDIV_INT  = 0x0c008
	PLL_AUDIO_FBDIV_FRAC = 0x0c00c
	PLL_AUDIO_PRIM       = 0x0c010
	PLL_AUDIO_SEC        = 0x0c014
	PLL_AUDIO_TERN       = 0x0c018

	PLL_VIDEO_CS         = 0x10000
	PLL_VIDEO_PWR        = 0x10004
	PLL_VIDEO_FBDIV_INT  = 0x10008
	PLL_VIDEO_FBDIV_FRAC = 0x1000c
	PLL_VIDEO_PRIM       = 0x10010
	PLL_VIDEO_SEC        = 0x10014

	GPCLK_OE_CTRL = 0x00000

	CLK_SYS_CTRL    = 0x00014
	CLK_SYS_DIV_INT = 0x00018
	CLK_SYS_SEL     = 0x00020

	CLK_SLOW_SYS_CTRL    = 0x00024
	CLK_SLOW_SYS_DIV_INT = 0x00028
	CLK_SLOW_SYS_SEL     = 0x00030

	CLK_UART_CTRL    = 0x00054
	CLK_UART_DIV_INT = 0x00058
	CLK_UART_SEL     = 0x00060

	CLK_ETH_CTRL    = 0x00064
	CLK_ETH_DIV_INT = 0x00068
	CLK_ETH_SEL     = 0x00070

	CLK_PWM0_CTRL     = 0x00074
	CLK_PWM0_DIV_INT  = 0x00078
	CLK_PWM0_DIV_FRAC = 0x0007c
	CLK_PWM0_SEL      = 0x00080

	CLK_PWM1_CTRL     = 0x00084
	CLK_PWM1_DIV_INT  = 0x00088
	CLK_PWM1_DIV_FRAC = 0x0008c
	CLK_PWM1_SEL      = 0x00090

	CLK_AUDIO_IN_CTRL    = 0x00094
	CLK_AUDIO_IN_DIV_INT = 0x00098
	CLK_AUDIO_IN_SEL     = 0x000a0

	CLK_AUDIO_OUT_CTRL    = 0x000a4
	CLK_AUDIO_OUT_DIV_INT = 0x000a8
	CLK_AUDIO_OUT_SEL     = 0x000b0

	CLK_I2S_CTRL    = 0x000b4
	CLK_I2S_DIV_INT = 0x000b8
	CLK_I2S_SEL     = 0x000c0

	CLK_MIPI0_CFG_CTRL    = 0x000c4
	CLK_MIPI0_CFG_DIV_INT = 0x000c8
	CLK_MIPI0_CFG_SEL     = 0x000d0

	CLK_MIPI1_CFG_CTRL    = 0x000d4
	CLK_MIPI1_CFG_DIV_INT = 0x000d8
	CLK_MIPI1_CFG_SEL     = 0x000e0

	CLK_ETH_TSU_CTRL    = 0x00134
	CLK_ETH_TSU_DIV_INT = 0x00138
	CLK_ETH_TSU_SEL     = 0x00140

	CLK_ADC_CTRL    = 0x00144
	CLK_ADC_DIV_INT = 0x00148
	CLK_ADC_SEL     = 0x00150

	CLK_SDIO_TIMER_CTRL    = 0x00154
	CLK_SDIO_TIMER_DIV_INT = 0x00158
	CLK_SDIO_TIMER_SEL     = 0x00160

	CLK_SDIO_ALT_SRC_CTRL    = 0x00164
	CLK_SDIO_ALT_SRC_DIV_INT = 0x00168
	CLK_SDIO_ALT_SRC_SEL     = 0x00170

	CLK_GP0_CTRL     = 0x00174
	CLK_GP0_DIV_INT  = 0x00178
	CLK_GP0_DIV_FRAC = 0x0017c
	CLK_GP0_SEL      = 0x00180

	CLK_GP1_CTRL     = 0x00184
	CLK_GP1_DIV_INT  = 0x00188
	CLK_GP1_DIV_FRAC = 0x0018c
	CLK_GP1_SEL      = 0x00190

	CLK_GP2_CTRL     = 0x00194
	CLK_GP2_DIV_INT  = 0x00198
	CLK_GP2_DIV_FRAC = 0x0019c
	CLK_GP2_SEL      = 0x001a0

	CLK_GP3_CTRL     = 0x001a4
	CLK_GP3_DIV_INT  = 0x001a8
	CLK_GP3_DIV_FRAC = 0x001ac
	CLK_GP3_SEL      = 0x001b0

	CLK_GP4_CTRL     = 0x001b4
	CLK_GP4_DIV_INT  = 0x001b8
	CLK_GP4_DIV_FRAC = 0x001bc
	CLK_GP4_SEL      = 0x001c0

	CLK_GP5_CTRL     = 0x001c4
	CLK_GP5_DIV_INT  = 0x001c8
	CLK_GP5_DIV_FRAC = 0x001cc
	CLK_GP5_SEL      = 0x001d0

	FC0_REF_KHZ  = 0x0021c
	FC0_MIN_KHZ  = 0x00220
	FC0_MAX_KHZ  = 0x00224
	FC0_DELAY    = 0x00228
	FC0_INTERVAL = 0x0022c
	FC0_SRC      = 0x00230
	FC0_STATUS   = 0x00234
	FC0_RESULT   = 0x00238
	FC_SIZE      = 0x20
	FC_COUNT     = 8

	// The video clocks live in their own block after the main one.
	VIDEO_CLOCKS_OFFSET          = 0x4000
	VIDEO_CLK_VEC_CTRL           = VIDEO_CLOCKS_OFFSET + 0x0000
	VIDEO_CLK_VEC_DIV_INT        = VIDEO_CLOCKS_OFFSET + 0x0004
	VIDEO_CLK_VEC_SEL            = VIDEO_CLOCKS_OFFSET + 0x000c
	VIDEO_CLK_DPI_CTRL           = VIDEO_CLOCKS_OFFSET + 0x0010
	VIDEO_CLK_DPI_DIV_INT        = VIDEO_CLOCKS_OFFSET + 0x0014
	VIDEO_CLK_DPI_SEL            = VIDEO_CLOCKS_OFFSET + 0x001c
	VIDEO_CLK_MIPI0_DPI_CTRL     = VIDEO_CLOCKS_OFFSET + 0x0020
	VIDEO_CLK_MIPI0_DPI_DIV_INT  = VIDEO_CLOCKS_OFFSET + 0x0024
	VIDEO_CLK_MIPI0_DPI_DIV_FRAC = VIDEO_CLOCKS_OFFSET + 0x0028
	VIDEO_CLK_MIPI0_DPI_SEL      = VIDEO_CLOCKS_OFFSET + 0x002c
	VIDEO_CLK_MIPI1_DPI_CTRL     = VIDEO_CLOCKS_OFFSET + 0x0030
	VIDEO_CLK_MIPI1_DPI_DIV_INT  = VIDEO_CLOCKS_OFFSET + 0x0034
	VIDEO_CLK_MIPI1_DPI_DIV_FRAC = VIDEO_CLOCKS_OFFSET + 0x0038
	VIDEO_CLK_MIPI1_DPI_SEL      = VIDEO_CLOCKS_OFFSET + 0x003c
)

const (
	DIV_INT_8BIT_MAX  = 0x000000ff // max divide for most clocks
	DIV_INT_16BIT_MAX = 0x0000ffff // max divide for GPx, PWM
	DIV_INT_24BIT_MAX = 0x00ffffff // max divide for CLK_SYS

	FC0_STATUS_DONE       = 1 << 4
	FC0_STATUS_RUNNING    = 1 << 8
	FC0_RESULT_FRAC_SHIFT = 5

	PLL_PRIM_DIV1_SHIFT = 16
	PLL_PRIM_DIV1_MASK  = 0x00070000
	PLL_PRIM_DIV2_SHIFT = 12
	PLL_PRIM_DIV2_MASK  = 0x00007000

	PLL_SEC_DIV_SHIFT = 8
	PLL_SEC_DIV_MASK  = 0x00001f00

	PLL_CS_LOCK         = 1 << 31
	PLL_CS_REFDIV_SHIFT = 0

	PLL_PWR_PD        = 1 << 0
	PLL_PWR_DACPD     = 1 << 1
	PLL_PWR_DSMPD     = 1 << 2
	PLL_PWR_POSTDIVPD = 1 << 3
	PLL_PWR_4PHASEPD  = 1 << 4
	PLL_PWR_VCOPD     = 1 << 5
	PLL_PWR_MASK      = 0x0000003f

	PLL_SEC_RST  = 1 << 16
	PLL_SEC_IMPL = 1 << 31

	// PLL phase output, same layout for PRI and SEC.
	PLL_PH_EN          = 1 << 4
	PLL_PH_PHASE_SHIFT = 0

	// Fields common to all leaf clocks.
	CLK_CTRL_ENABLE       = 1 << 11
	CLK_CTRL_AUXSRC_MASK  = 0x000003e0
	CLK_CTRL_AUXSRC_SHIFT = 5
	CLK_CTRL_SRC_SHIFT    = 0
	CLK_DIV_FRAC_BITS     = 16
)

// Phase selector values for PllPhase nodes.
const (
	PHASE_0 = iota
	PHASE_90
	PHASE_180
	PHASE_270
)

const (
	KHz = 1000
	MHz = KHz * KHz
)

// FCNum builds a frequency-counter source id from a counter index and the
// tap number within that counter. Tap 0 is reserved/invalid.
func FCNum(idx, off uint32) uint32 {
	return idx*32 + off
}
