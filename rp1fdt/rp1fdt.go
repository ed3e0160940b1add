// Package rp1fdt pulls RP1 clock configuration out of a flattened device
// tree: the list of clock ids the firmware says are claimed by drivers, and
// the crystal oscillator rate.
package rp1fdt

import (
	"fmt"
	"io/ioutil"

	"github.com/platinasystems/fdt"

	"github.com/Jon-Bright/rp1clk/rp1"
)

// ClaimedClocks reads the DTB at path and returns every clock id listed in
// a claim-clocks property, in document order.
func ClaimedClocks(path string) ([]rp1.ClockID, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read %s: %v", path, err)
	}
	return claimedClocks(b)
}

func claimedClocks(b []byte) ([]rp1.ClockID, error) {
	t := &fdt.Tree{}
	if err := t.Parse(b); err != nil {
		return nil, fmt.Errorf("couldn't parse device tree: %v", err)
	}

	var ids []rp1.ClockID
	t.EachProperty("claim-clocks", "",
		func(n *fdt.Node, name, value string) {
			for _, v := range t.PropUint32Slice(n.Properties[name]) {
				ids = append(ids, rp1.ClockID(v))
			}
		})
	return ids, nil
}

// XoscRate reads the DTB at path and returns the clock-frequency of the
// crystal feeding the RP1, 0 if the tree doesn't describe one.
func XoscRate(path string) (uint64, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("couldn't read %s: %v", path, err)
	}
	return xoscRate(b)
}

func xoscRate(b []byte) (uint64, error) {
	t := &fdt.Tree{}
	if err := t.Parse(b); err != nil {
		return 0, fmt.Errorf("couldn't parse device tree: %v", err)
	}

	var rate uint64
	t.EachProperty("clock-output-names", "xosc",
		func(n *fdt.Node, name, value string) {
			if freq, ok := n.Properties["clock-frequency"]; ok && len(freq) >= 4 {
				rate = uint64(t.PropUint32(freq))
			}
		})
	return rate, nil
}
