package rp1

import (
	"fmt"
	"os"
	"reflect"
	"sync"
	"unsafe"

	mmap "github.com/edsrzf/mmap-go"
)

const (
	MEM_FILE  = "/dev/mem"
	PAGE_SIZE = 4096

	// The RP1 clock block as seen from the host, behind the PCIe window.
	// See the RP1 peripherals datasheet, "Address map".
	CLOCKS_PHYS_BASE = 0x1f00018000

	// Enough to cover the video clock block and all three PLL register
	// sets (the highest offset in use is PLL_VIDEO_SEC at 0x10014).
	WINDOW_SIZE = 0x10800
)

// RegBank owns the clock register window. All node operations funnel their
// register traffic through it. Multi-step read-modify-write sequences must
// run under Lock/Unlock; single-word polls may read unlocked, the same way
// the hardware allows racing readers.
type RegBank struct {
	mu   sync.Mutex
	buf  mmap.MMap // nil for an in-memory bank
	regs []uint32
}

// NewRegBank returns an in-memory bank of the given byte size. Used by the
// tests and for offline divider computation; reads and writes behave like
// ordinary RAM, nothing ever changes underneath you.
func NewRegBank(size uint32) *RegBank {
	return &RegBank{regs: make([]uint32, size/4)}
}

// MapRegBank maps the RP1 clock register window from /dev/mem.
func MapRegBank() (*RegBank, error) {
	return mapRegBank(CLOCKS_PHYS_BASE, WINDOW_SIZE)
}

// mapRegBank opens /dev/mem and mmaps a given physical address. The mapping
// has to start at a page boundary, so the address is rounded down and the
// offset into the mapping accounted for when building the word view.
func mapRegBank(physAddr uintptr, size int) (*RegBank, error) {
	f, err := os.OpenFile(MEM_FILE, os.O_RDWR|os.O_SYNC, os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("couldn't open %s: %v", MEM_FILE, err)
	}

	pagemask := ^uintptr(PAGE_SIZE - 1)
	mapAddr := physAddr & pagemask
	size += int(physAddr - mapAddr)
	mm, err := mmap.MapRegion(f, size, mmap.RDWR, 0, int64(mapAddr))
	f.Close() // Ignore error
	if err != nil {
		return nil, fmt.Errorf("couldn't map region (%v, %v): %v", physAddr, size, err)
	}

	b := &RegBank{buf: mm}
	b.regs = uint32Slice(mm, physAddr&(PAGE_SIZE-1))
	return b, nil
}

// uint32Slice does terrible things to an MMap (which is itself a []byte) to
// return the register window as a []uint32, skipping offs bytes of
// page-alignment slack at the front.
func uint32Slice(mm mmap.MMap, offs uintptr) []uint32 {
	header := *(*reflect.SliceHeader)(unsafe.Pointer(&mm))
	header.Len -= int(offs)
	header.Len /= 4
	header.Cap -= int(offs)
	header.Cap /= 4
	header.Data += offs
	return *(*[]uint32)(unsafe.Pointer(&header))
}

// Close unmaps the register window, if there is one.
func (b *RegBank) Close() error {
	if b.buf == nil {
		return nil
	}
	err := b.buf.Unmap()
	b.buf = nil
	b.regs = nil
	return err
}

func (b *RegBank) Lock()   { b.mu.Lock() }
func (b *RegBank) Unlock() { b.mu.Unlock() }

// Read returns the register word at the given byte offset.
func (b *RegBank) Read(off uint32) uint32 {
	return b.regs[off/4]
}

// Write stores a register word at the given byte offset.
func (b *RegBank) Write(off, val uint32) {
	b.regs[off/4] = val
}

// setRegisterField replaces the masked field of reg with val.
func setRegisterField(reg, val, mask, shift uint32) uint32 {
	reg &^= mask
	reg |= (val << shift) & mask
	return reg
}
