package bitlow

// PopCount8 maps a byte to its number of set bits. It backs every
// pixel-counting scan, 256 entries built once at package init.
var PopCount8 [256]int

// CentroidWeight8 maps a byte to the sum, over its set bits, of the
// MSB-first pixel index (0 for the high bit, 7 for the low bit).
// CentroidWeight8[b]/PopCount8[b] is the mean pixel offset within the
// byte, used for intensity-weighted centroids without per-bit loops.
var CentroidWeight8 [256]int

// ReverseByte1, ReverseByte2 and ReverseByte4 reverse the pixel order
// within a byte at depths 1, 2 and 4: full bit reversal, dibit-pair
// reversal and nibble swap. They drive the left-right flip for
// sub-byte depths.
var (
	ReverseByte1 [256]uint8
	ReverseByte2 [256]uint8
	ReverseByte4 [256]uint8
)

// Subsample2 compresses the four even-indexed pixels of a byte
// (bits 7,5,3,1) into the low nibble, preserving order. Two source
// bytes assemble one destination byte in the 2x binary reduction.
var Subsample2 [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		b := uint8(i)
		PopCount8[i] = int(b&1 + b>>1&1 + b>>2&1 + b>>3&1 +
			b>>4&1 + b>>5&1 + b>>6&1 + b>>7&1)
	}

	CentroidWeight8[0] = 0
	CentroidWeight8[1] = 7
	for i := 2; i < 4; i++ {
		CentroidWeight8[i] = CentroidWeight8[i-2] + 6
	}
	for i := 4; i < 8; i++ {
		CentroidWeight8[i] = CentroidWeight8[i-4] + 5
	}
	for i := 8; i < 16; i++ {
		CentroidWeight8[i] = CentroidWeight8[i-8] + 4
	}
	for i := 16; i < 32; i++ {
		CentroidWeight8[i] = CentroidWeight8[i-16] + 3
	}
	for i := 32; i < 64; i++ {
		CentroidWeight8[i] = CentroidWeight8[i-32] + 2
	}
	for i := 64; i < 128; i++ {
		CentroidWeight8[i] = CentroidWeight8[i-64] + 1
	}
	for i := 128; i < 256; i++ {
		CentroidWeight8[i] = CentroidWeight8[i-128]
	}

	for i := 0; i < 256; i++ {
		var r uint8
		for bit := 0; bit < 8; bit++ {
			if i&(1<<bit) != 0 {
				r |= 0x80 >> bit
			}
		}
		ReverseByte1[i] = r
		ReverseByte2[i] = uint8(i&0x03<<6 | i&0x0c<<2 | i&0x30>>2 | i&0xc0>>6)
		ReverseByte4[i] = uint8(i&0x0f<<4 | i&0xf0>>4)

		Subsample2[i] = uint8(i&0x80>>4 | i&0x20>>3 | i&0x08>>2 | i&0x02>>1)
	}
}
