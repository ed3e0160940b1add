// clkdump prints the state of the RP1 clock tree: every clock's id, name,
// gate state and computed rate, optionally confirmed against the hardware
// frequency counters and accompanied by a raw register dump.
package main

import (
	"flag"
	"fmt"
	"log"

	rp1 "github.com/Jon-Bright/rp1clk/rp1"
	rp1fdt "github.com/Jon-Bright/rp1clk/rp1fdt"
)

var dtbFile = flag.String("dtb", "", "Device tree blob to read claim-clocks and the crystal rate from")
var xoscHz = flag.Uint64("xosc", 50000000, "Crystal oscillator rate in Hz, overridden by the DTB if it has one")
var measure = flag.Bool("measure", false, "Measure each clock with the hardware frequency counters (slow)")
var dumpRegs = flag.Bool("regs", false, "Dump the raw registers of each clock")

func main() {
	flag.Parse()

	var claimed []rp1.ClockID
	rate := *xoscHz
	if *dtbFile != "" {
		var err error
		claimed, err = rp1fdt.ClaimedClocks(*dtbFile)
		if err != nil {
			log.Fatalf("Couldn't get claimed clocks: %v", err)
		}
		r, err := rp1fdt.XoscRate(*dtbFile)
		if err != nil {
			log.Fatalf("Couldn't get crystal rate: %v", err)
		}
		if r != 0 {
			rate = r
		}
	}

	bank, err := rp1.MapRegBank()
	if err != nil {
		log.Fatalf("Couldn't map clock registers: %v", err)
	}
	defer bank.Close()

	tree, err := rp1.NewTree(bank, rate, claimed)
	if err != nil {
		log.Fatalf("Couldn't build clock tree: %v", err)
	}

	fmt.Printf("%3s  %-26s %-8s %-8s %12s", "id", "name", "state", "claimed", "rate")
	if *measure {
		fmt.Printf(" %12s", "measured")
	}
	fmt.Println()

	for id := rp1.ClockID(0); id < rp1.RP1_NUM_CLOCKS; id++ {
		n := tree.ByID(id)

		state := "off"
		if n.Enabled() {
			state = "on"
		}
		claim := ""
		if tree.Claimed(id) {
			claim = "claimed"
		}

		fmt.Printf("%3d  %-26s %-8s %-8s %12d", id, n.Name(), state, claim, tree.Rate(n))

		if *measure {
			if hz, err := tree.Measure(id); err != nil {
				fmt.Printf(" %12s", "-")
			} else {
				fmt.Printf(" %12d", hz)
			}
		}
		fmt.Println()

		if *dumpRegs {
			for _, r := range tree.RegisterDump(id) {
				fmt.Printf("     %-10s @%05x = %08x\n", r.Name, r.Offset, r.Value)
			}
		}
	}
}
