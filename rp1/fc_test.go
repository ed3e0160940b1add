package rp1

import (
	"errors"
	"testing"
)

func TestFreqCounterMeasure(t *testing.T) {
	bank := NewRegBank(WINDOW_SIZE)
	fc := &FreqCounter{bank: bank, refRate: 50 * MHz}

	// Counter 1, already done: 50000kHz in 27.5 fixed point.
	base := uint32(1 * FC_SIZE)
	bank.Write(base+FC0_STATUS, FC0_STATUS_DONE)
	bank.Write(base+FC0_RESULT, 50000<<FC0_RESULT_FRAC_SHIFT)

	hz, err := fc.Measure(FCNum(1, 4))
	if err != nil {
		t.Fatalf("Failed Measure: %v", err)
	}
	if hz != 50*MHz {
		t.Errorf("Wrong rate, want %d, got %d", uint64(50*MHz), hz)
	}
	if got := bank.Read(base + FC0_REF_KHZ); got != 50000 {
		t.Errorf("Wrong REF_KHZ, want 50000, got %d", got)
	}
	if got := bank.Read(base + FC0_SRC); got != 0 {
		t.Errorf("SRC not cleared after measurement, got %d", got)
	}
}

func TestFreqCounterFractionalResult(t *testing.T) {
	bank := NewRegBank(WINDOW_SIZE)
	fc := &FreqCounter{bank: bank, refRate: 50 * MHz}

	bank.Write(FC0_STATUS, FC0_STATUS_DONE)
	bank.Write(FC0_RESULT, 48000<<FC0_RESULT_FRAC_SHIFT|16) // 48000.5kHz

	hz, err := fc.Measure(FCNum(0, 2))
	if err != nil {
		t.Fatalf("Failed Measure: %v", err)
	}
	if hz != 48000500 {
		t.Errorf("Wrong rate, want 48000500, got %d", hz)
	}
}

func TestFreqCounterBadSource(t *testing.T) {
	bank := NewRegBank(WINDOW_SIZE)
	fc := &FreqCounter{bank: bank, refRate: 50 * MHz}

	tests := []uint32{
		FCNum(0, 0), // tap 0 is reserved
		FCNum(8, 1), // only 8 counters
	}
	for _, src := range tests {
		if _, err := fc.Measure(src); !errors.Is(err, ErrInvalidParent) {
			t.Errorf("Wrong error for source %d, want ErrInvalidParent, got %v", src, err)
		}
	}
}

func TestFreqCounterBusyTimeout(t *testing.T) {
	bank := NewRegBank(WINDOW_SIZE)
	fc := &FreqCounter{bank: bank, refRate: 50 * MHz}

	bank.Write(FC0_STATUS, FC0_STATUS_RUNNING)
	if _, err := fc.Measure(FCNum(0, 1)); !errors.Is(err, ErrTimeout) {
		t.Errorf("Wrong error, want ErrTimeout, got %v", err)
	}
}

func TestFreqCounterDoneTimeout(t *testing.T) {
	bank := NewRegBank(WINDOW_SIZE)
	fc := &FreqCounter{bank: bank, refRate: 50 * MHz}

	// Idle but DONE never comes.
	if _, err := fc.Measure(FCNum(2, 1)); !errors.Is(err, ErrTimeout) {
		t.Errorf("Wrong error, want ErrTimeout, got %v", err)
	}
}
