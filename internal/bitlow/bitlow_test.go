package bitlow

import (
	"strconv"
	"testing"
)

func TestBitAccessors(t *testing.T) {
	line := make([]uint32, 4)

	SetBit(line, 0)
	if line[0] != 0x80000000 {
		t.Errorf("SetBit(0): word = %#x, want 0x80000000", line[0])
	}
	SetBit(line, 31)
	if line[0] != 0x80000001 {
		t.Errorf("SetBit(31): word = %#x, want 0x80000001", line[0])
	}
	SetBit(line, 32)
	if line[1] != 0x80000000 {
		t.Errorf("SetBit(32): word = %#x, want 0x80000000", line[1])
	}
	if got := GetBit(line, 31); got != 1 {
		t.Errorf("GetBit(31) = %d, want 1", got)
	}
	if got := GetBit(line, 30); got != 0 {
		t.Errorf("GetBit(30) = %d, want 0", got)
	}
	ClearBit(line, 31)
	if line[0] != 0x80000000 {
		t.Errorf("ClearBit(31): word = %#x, want 0x80000000", line[0])
	}
}

func TestSubWordAccessors(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		x     int
		val   uint32
		word  int
		want  uint32
	}{
		{"dibit first", 2, 0, 0x3, 0, 0xc0000000},
		{"dibit last of word", 2, 15, 0x2, 0, 0x00000002},
		{"dibit second word", 2, 16, 0x1, 1, 0x40000000},
		{"qbit first", 4, 0, 0xf, 0, 0xf0000000},
		{"qbit masks high bits", 4, 1, 0xff, 0, 0x0f000000},
		{"byte first", 8, 0, 0xab, 0, 0xab000000},
		{"byte last", 8, 3, 0xcd, 0, 0x000000cd},
		{"two bytes high", 16, 0, 0x1234, 0, 0x12340000},
		{"two bytes low", 16, 1, 0x5678, 0, 0x00005678},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := make([]uint32, 2)
			SetPixel(line, tt.x, tt.depth, tt.val)
			if line[tt.word] != tt.want {
				t.Errorf("SetPixel(%d, d=%d, %#x): word[%d] = %#x, want %#x",
					tt.x, tt.depth, tt.val, tt.word, line[tt.word], tt.want)
			}
			mask := uint32(1)<<tt.depth - 1
			if tt.depth == 32 {
				mask = 0xffffffff
			}
			if got := GetPixel(line, tt.x, tt.depth); got != tt.val&mask {
				t.Errorf("GetPixel(%d, d=%d) = %#x, want %#x",
					tt.x, tt.depth, got, tt.val&mask)
			}
		})
	}
}

func TestSetPixelDoesNotDisturbNeighbors(t *testing.T) {
	for _, depth := range []int{2, 4, 8, 16} {
		t.Run(strconv.Itoa(depth), func(t *testing.T) {
			line := []uint32{0xffffffff, 0xffffffff}
			SetPixel(line, 1, depth, 0)
			perWord := 32 / depth
			for x := 0; x < 2*perWord; x++ {
				want := uint32(1)<<depth - 1
				if x == 1 {
					want = 0
				}
				if got := GetPixel(line, x, depth); got != want {
					t.Errorf("depth %d pixel %d = %#x, want %#x", depth, x, got, want)
				}
			}
		})
	}
}

func TestMasks(t *testing.T) {
	if RMask(0) != 0 || RMask(8) != 0xff || RMask(32) != 0xffffffff {
		t.Errorf("RMask: got %#x %#x %#x", RMask(0), RMask(8), RMask(32))
	}
	if LMask(0) != 0 || LMask(4) != 0xf0000000 || LMask(32) != 0xffffffff {
		t.Errorf("LMask: got %#x %#x %#x", LMask(0), LMask(4), LMask(32))
	}
	if got := EndBits(33, 1); got != 1 {
		t.Errorf("EndBits(33, 1) = %d, want 1", got)
	}
	if got := EndBits(64, 1); got != 0 {
		t.Errorf("EndBits(64, 1) = %d, want 0", got)
	}
	if got := EndMask(1); got != 0x80000000 {
		t.Errorf("EndMask(1) = %#x, want 0x80000000", got)
	}
	if got := EndMask(31); got != 0xfffffffe {
		t.Errorf("EndMask(31) = %#x, want 0xfffffffe", got)
	}
}

func TestPopCount8(t *testing.T) {
	tests := []struct {
		b    int
		want int
	}{
		{0x00, 0}, {0x01, 1}, {0x80, 1}, {0xff, 8}, {0xaa, 4}, {0x7f, 7},
	}
	for _, tt := range tests {
		if got := PopCount8[tt.b]; got != tt.want {
			t.Errorf("PopCount8[%#x] = %d, want %d", tt.b, got, tt.want)
		}
	}
}

func TestCentroidWeight8(t *testing.T) {
	// The MSB contributes 0, the LSB contributes 7.
	tests := []struct {
		b    int
		want int
	}{
		{0x00, 0}, {0x80, 0}, {0x01, 7}, {0xc0, 1}, {0xff, 28}, {0x11, 10},
	}
	for _, tt := range tests {
		if got := CentroidWeight8[tt.b]; got != tt.want {
			t.Errorf("CentroidWeight8[%#x] = %d, want %d", tt.b, got, tt.want)
		}
	}
	// Cross-check the recurrence against direct summation.
	for b := 0; b < 256; b++ {
		sum := 0
		for bit := 0; bit < 8; bit++ {
			if b&(0x80>>bit) != 0 {
				sum += bit
			}
		}
		if CentroidWeight8[b] != sum {
			t.Fatalf("CentroidWeight8[%#x] = %d, want %d", b, CentroidWeight8[b], sum)
		}
	}
}

func TestReverseTables(t *testing.T) {
	tests := []struct {
		name string
		tab  *[256]uint8
		in   uint8
		want uint8
	}{
		{"bit reversal", &ReverseByte1, 0x01, 0x80},
		{"bit reversal asym", &ReverseByte1, 0xb4, 0x2d},
		{"dibit reversal", &ReverseByte2, 0x1b, 0xe4},
		{"dibit identity", &ReverseByte2, 0x00, 0x00},
		{"nibble swap", &ReverseByte4, 0xa5, 0x5a},
		{"nibble swap asym", &ReverseByte4, 0xf0, 0x0f},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tab[tt.in]; got != tt.want {
				t.Errorf("tab[%#x] = %#x, want %#x", tt.in, got, tt.want)
			}
		})
	}
	// Reversal tables are involutions.
	for i := 0; i < 256; i++ {
		if ReverseByte1[ReverseByte1[i]] != uint8(i) {
			t.Fatalf("ReverseByte1 not an involution at %#x", i)
		}
		if ReverseByte2[ReverseByte2[i]] != uint8(i) {
			t.Fatalf("ReverseByte2 not an involution at %#x", i)
		}
		if ReverseByte4[ReverseByte4[i]] != uint8(i) {
			t.Fatalf("ReverseByte4 not an involution at %#x", i)
		}
	}
}

func TestSubsample2(t *testing.T) {
	// Even-indexed pixels (bits 7,5,3,1) survive.
	tests := []struct {
		in   int
		want uint8
	}{
		{0x00, 0x0}, {0xff, 0xf}, {0xaa, 0xf}, {0x55, 0x0}, {0x80, 0x8}, {0x02, 0x1},
	}
	for _, tt := range tests {
		if got := Subsample2[tt.in]; got != tt.want {
			t.Errorf("Subsample2[%#x] = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}
