// Package bitlow provides word-level access to packed pixel rows.
//
// A row is a []uint32 slice holding pixels packed MSB-first: the first
// pixel of a row occupies the most significant bits of word 0. At depth
// d, pixel x lives in word x*d/32, in the d bits ending at bit
// 32 - (x%(32/d))*d. The accessors here take a pre-sliced row (not the
// whole buffer) and perform no bounds checking; callers guarantee
// 0 <= x < width.
package bitlow

// GetBit returns the 1-bit pixel at index x.
func GetBit(line []uint32, x int) uint32 {
	return (line[x>>5] >> (31 - (x & 31))) & 1
}

// SetBit sets the 1-bit pixel at index x.
func SetBit(line []uint32, x int) {
	line[x>>5] |= 0x80000000 >> (x & 31)
}

// ClearBit clears the 1-bit pixel at index x.
func ClearBit(line []uint32, x int) {
	line[x>>5] &^= 0x80000000 >> (x & 31)
}

// GetDibit returns the 2-bit pixel at index x.
func GetDibit(line []uint32, x int) uint32 {
	return (line[x>>4] >> (2 * (15 - (x & 15)))) & 0x3
}

// SetDibit stores the low 2 bits of val as the pixel at index x.
func SetDibit(line []uint32, x int, val uint32) {
	shift := 2 * (15 - (x & 15))
	line[x>>4] = line[x>>4]&^(0x3<<shift) | (val&0x3)<<shift
}

// GetQbit returns the 4-bit pixel at index x.
func GetQbit(line []uint32, x int) uint32 {
	return (line[x>>3] >> (4 * (7 - (x & 7)))) & 0xf
}

// SetQbit stores the low 4 bits of val as the pixel at index x.
func SetQbit(line []uint32, x int, val uint32) {
	shift := 4 * (7 - (x & 7))
	line[x>>3] = line[x>>3]&^(0xf<<shift) | (val&0xf)<<shift
}

// GetByte returns the 8-bit pixel at index x.
func GetByte(line []uint32, x int) uint32 {
	return (line[x>>2] >> (8 * (3 - (x & 3)))) & 0xff
}

// SetByte stores the low 8 bits of val as the pixel at index x.
func SetByte(line []uint32, x int, val uint32) {
	shift := 8 * (3 - (x & 3))
	line[x>>2] = line[x>>2]&^(0xff<<shift) | (val&0xff)<<shift
}

// GetTwoBytes returns the 16-bit pixel at index x.
func GetTwoBytes(line []uint32, x int) uint32 {
	return (line[x>>1] >> (16 * (1 - (x & 1)))) & 0xffff
}

// SetTwoBytes stores the low 16 bits of val as the pixel at index x.
func SetTwoBytes(line []uint32, x int, val uint32) {
	shift := 16 * (1 - (x & 1))
	line[x>>1] = line[x>>1]&^(0xffff<<shift) | (val&0xffff)<<shift
}

// GetPixel returns the pixel at index x for any supported depth.
func GetPixel(line []uint32, x, depth int) uint32 {
	switch depth {
	case 1:
		return GetBit(line, x)
	case 2:
		return GetDibit(line, x)
	case 4:
		return GetQbit(line, x)
	case 8:
		return GetByte(line, x)
	case 16:
		return GetTwoBytes(line, x)
	default:
		return line[x]
	}
}

// SetPixel stores val (masked to depth bits) at index x for any
// supported depth. At depth 1 any nonzero val sets the bit.
func SetPixel(line []uint32, x, depth int, val uint32) {
	switch depth {
	case 1:
		if val != 0 {
			SetBit(line, x)
		} else {
			ClearBit(line, x)
		}
	case 2:
		SetDibit(line, x, val)
	case 4:
		SetQbit(line, x, val)
	case 8:
		SetByte(line, x, val)
	case 16:
		SetTwoBytes(line, x, val)
	default:
		line[x] = val
	}
}

// RMask returns a mask with the n low bits set, for n in [0, 32].
func RMask(n int) uint32 {
	return rmask32[n]
}

// LMask returns a mask with the n high bits set, for n in [0, 32].
func LMask(n int) uint32 {
	return ^rmask32[32-n]
}

// EndBits returns the number of data bits in the last, partially filled
// word of a row, or 0 when rows fill their final word exactly.
func EndBits(width, depth int) int {
	return (width * depth) & 31
}

// EndMask returns the mask that keeps the data bits of a row's last
// partial word. Valid only when EndBits returned nonzero.
func EndMask(endbits int) uint32 {
	return 0xffffffff << (32 - uint(endbits))
}

var rmask32 = [33]uint32{0x0,
	0x00000001, 0x00000003, 0x00000007, 0x0000000f,
	0x0000001f, 0x0000003f, 0x0000007f, 0x000000ff,
	0x000001ff, 0x000003ff, 0x000007ff, 0x00000fff,
	0x00001fff, 0x00003fff, 0x00007fff, 0x0000ffff,
	0x0001ffff, 0x0003ffff, 0x0007ffff, 0x000fffff,
	0x001fffff, 0x003fffff, 0x007fffff, 0x00ffffff,
	0x01ffffff, 0x03ffffff, 0x07ffffff, 0x0fffffff,
	0x1fffffff, 0x3fffffff, 0x7fffffff, 0xffffffff,
}
