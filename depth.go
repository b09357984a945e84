package pix

import "strconv"

// Depth is the number of bits per pixel in a packed image.
//
// Unlike most Go image types, a Pix packs sub-byte pixels: a Depth of 1
// stores 32 pixels per word. Only the listed power-of-two depths exist.
type Depth int

const (
	// D1 is 1-bit binary. By convention 1 is foreground (black) and
	// 0 is background (white).
	D1 Depth = 1

	// D2 is 2-bit grayscale or a 4-entry colormapped image.
	D2 Depth = 2

	// D4 is 4-bit grayscale or a 16-entry colormapped image.
	D4 Depth = 4

	// D8 is 8-bit grayscale or a 256-entry colormapped image.
	D8 Depth = 8

	// D16 is 16-bit grayscale.
	D16 Depth = 16

	// D32 is packed RGB: r<<24 | g<<16 | b<<8 per pixel. The low byte
	// is spare and ignored by comparisons.
	D32 Depth = 32
)

// IsValid returns true if the depth is one of the supported values.
func (d Depth) IsValid() bool {
	switch d {
	case D1, D2, D4, D8, D16, D32:
		return true
	}
	return false
}

// MaxVal returns the maximum pixel value storable at this depth.
// For D32 this is the maximum single 8-bit channel value, since 32-bit
// pixels are composed per channel.
func (d Depth) MaxVal() uint32 {
	if d == D32 {
		return 255
	}
	return uint32(1)<<uint(d) - 1
}

// PixelsPerWord returns the number of pixels packed in one 32-bit word.
func (d Depth) PixelsPerWord() int {
	return 32 / int(d)
}

// WordsPerLine returns the number of 32-bit words needed to hold one row
// of width pixels at this depth.
func (d Depth) WordsPerLine(width int) int {
	return (width*int(d) + 31) / 32
}

// IsGray returns true for the grayscale depths (everything except D32).
func (d Depth) IsGray() bool {
	return d != D32 && d.IsValid()
}

// String returns the conventional "<n> bpp" form.
func (d Depth) String() string {
	if !d.IsValid() {
		return "invalid depth " + strconv.Itoa(int(d))
	}
	return strconv.Itoa(int(d)) + " bpp"
}
