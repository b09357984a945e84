package pix

import "github.com/gopix/pix/internal/bitlow"

// Component selects one 8-bit sample of a 32 bpp pixel.
type Component int

const (
	// CompRed is the most significant byte.
	CompRed Component = iota
	CompGreen
	CompBlue
	// CompSpare is the unused low byte, available for blending.
	CompSpare
)

// IsValid returns true for the four defined components.
func (c Component) IsValid() bool {
	return c >= CompRed && c <= CompSpare
}

// shift returns the left shift that places the component in a pixel.
func (c Component) shift() uint {
	return uint(24 - 8*int(c))
}

// ComposeRGB packs three 8-bit samples into a 32 bpp pixel value.
// The spare low byte is 0.
func ComposeRGB(r, g, b uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8
}

// RGBValues unpacks the three color samples of a 32 bpp pixel value.
func RGBValues(pixel uint32) (r, g, b uint8) {
	return uint8(pixel >> 24), uint8(pixel >> 16), uint8(pixel >> 8)
}

// CreateRGBImage interleaves three 8 bpp component images into a 32 bpp
// image. The components must have identical dimensions. The spare byte
// of every pixel is 0.
func CreateRGBImage(r, g, b *Pix) (*Pix, error) {
	if r == nil || g == nil || b == nil {
		return nil, ErrMissingBuffer
	}
	if r.depth != D8 || g.depth != D8 || b.depth != D8 {
		return nil, ErrBadDepth
	}
	if !r.sameSize(g) || !r.sameSize(b) {
		return nil, ErrSizeMismatch
	}

	d, err := New(r.width, r.height, D32)
	if err != nil {
		return nil, err
	}
	if err := d.SetRGBComponent(r, CompRed); err != nil {
		return nil, err
	}
	if err := d.SetRGBComponent(g, CompGreen); err != nil {
		return nil, err
	}
	if err := d.SetRGBComponent(b, CompBlue); err != nil {
		return nil, err
	}
	return d, nil
}

// RGBComponent extracts one component of a 32 bpp image as a new 8 bpp
// image.
func (p *Pix) RGBComponent(comp Component) (*Pix, error) {
	if p.depth != D32 {
		return nil, ErrBadDepth
	}
	if !comp.IsValid() {
		return nil, ErrInvalidDimensions
	}

	d, err := New(p.width, p.height, D8)
	if err != nil {
		return nil, err
	}
	shift := comp.shift()
	for y := 0; y < p.height; y++ {
		lines := p.row(y)
		lined := d.row(y)
		for x := 0; x < p.width; x++ {
			bitlow.SetByte(lined, x, uint32(uint8(lines[x]>>shift)))
		}
	}
	return d, nil
}

// SetRGBComponent copies an 8 bpp image into one component of a 32 bpp
// image. The images must have identical dimensions.
func (p *Pix) SetRGBComponent(src *Pix, comp Component) error {
	if src == nil {
		return ErrMissingBuffer
	}
	if p.depth != D32 || src.depth != D8 {
		return ErrBadDepth
	}
	if !comp.IsValid() {
		return ErrInvalidDimensions
	}
	if !p.sameSize(src) {
		return ErrSizeMismatch
	}

	shift := comp.shift()
	mask := ^(uint32(0xff) << shift)
	for y := 0; y < p.height; y++ {
		lines := src.row(y)
		lined := p.row(y)
		for x := 0; x < p.width; x++ {
			v := bitlow.GetByte(lines, x)
			lined[x] = lined[x]&mask | v<<shift
		}
	}
	return nil
}

// RGBLine copies row y of a 32 bpp image into three sample buffers,
// each at least width bytes long.
func (p *Pix) RGBLine(y int, bufr, bufg, bufb []uint8) error {
	if p.depth != D32 {
		return ErrBadDepth
	}
	if y < 0 || y >= p.height {
		return ErrOutOfBounds
	}
	if len(bufr) < p.width || len(bufg) < p.width || len(bufb) < p.width {
		return ErrDataTooSmall
	}
	line := p.row(y)
	for x := 0; x < p.width; x++ {
		bufr[x] = uint8(line[x] >> 24)
		bufg[x] = uint8(line[x] >> 16)
		bufb[x] = uint8(line[x] >> 8)
	}
	return nil
}
