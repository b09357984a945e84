package pix

import "github.com/gopix/pix/internal/bitlow"

// Border operations grow, shrink or repaint the frame around an image.
// Widths are given per side and must not be negative.

// AddBorder returns a copy of the image with a uniform border of npix
// pixels holding val.
func (p *Pix) AddBorder(npix int, val uint32) (*Pix, error) {
	return p.AddBorderGeneral(npix, npix, npix, npix, val)
}

// AddBorderGeneral returns a copy of the image with borders of the
// given widths added on each side, all holding val. For colormapped
// images val is a palette index.
func (p *Pix) AddBorderGeneral(left, right, top, bot int, val uint32) (*Pix, error) {
	if left < 0 || right < 0 || top < 0 || bot < 0 {
		return nil, ErrInvalidDimensions
	}

	out, err := New(p.width+left+right, p.height+top+bot, p.depth)
	if err != nil {
		return nil, err
	}
	out.cmap = p.cmap.Clone()
	if val != 0 {
		out.SetAllArbitrary(val)
	}
	copyRegion(out, left, top, p, 0, 0, p.width, p.height)
	return out, nil
}

// RemoveBorder returns a copy of the image with npix pixels stripped
// from every side.
func (p *Pix) RemoveBorder(npix int) (*Pix, error) {
	return p.RemoveBorderGeneral(npix, npix, npix, npix)
}

// RemoveBorderGeneral returns a copy of the image with the given
// widths stripped from each side. The remaining interior must be
// nonempty.
func (p *Pix) RemoveBorderGeneral(left, right, top, bot int) (*Pix, error) {
	if left < 0 || right < 0 || top < 0 || bot < 0 {
		return nil, ErrInvalidDimensions
	}
	wd := p.width - left - right
	hd := p.height - top - bot
	if wd <= 0 || hd <= 0 {
		return nil, ErrInvalidDimensions
	}

	out, err := New(wd, hd, p.depth)
	if err != nil {
		return nil, err
	}
	out.cmap = p.cmap.Clone()
	copyRegion(out, 0, 0, p, left, top, wd, hd)
	return out, nil
}

// SetOrClearBorder sets or clears all bits in a frame of the given
// widths, in place. Useful for removing noise at scan edges or for
// building frames.
func (p *Pix) SetOrClearBorder(left, right, top, bot int, op PixelOp) error {
	if op != PixelSet && op != PixelClear {
		return ErrBadPixelOp
	}
	if left < 0 || right < 0 || top < 0 || bot < 0 {
		return ErrInvalidDimensions
	}

	ones := op == PixelSet
	strips := []Box{
		{X: 0, Y: 0, W: p.width, H: top},
		{X: 0, Y: p.height - bot, W: p.width, H: bot},
		{X: 0, Y: 0, W: left, H: p.height},
		{X: p.width - right, Y: 0, W: right, H: p.height},
	}
	for _, s := range strips {
		if clipped, ok := s.ClipToRaster(p.width, p.height); ok {
			p.fillRegion(clipped, ones)
		}
	}
	return nil
}

// SetBorderVal writes val into a frame of the given widths, in place.
// Only 8 and 32 bpp are supported; use SetOrClearBorder for binary
// images.
func (p *Pix) SetBorderVal(left, right, top, bot int, val uint32) error {
	if p.depth != D8 && p.depth != D32 {
		return ErrBadDepth
	}
	if left < 0 || right < 0 || top < 0 || bot < 0 {
		return ErrInvalidDimensions
	}

	left = min(left, p.width)
	right = min(right, p.width)
	top = min(top, p.height)
	bot = min(bot, p.height)
	d := int(p.depth)
	fillSpan := func(y, x0, x1 int) {
		line := p.row(y)
		for x := x0; x < x1; x++ {
			bitlow.SetPixel(line, x, d, val)
		}
	}
	for y := 0; y < top; y++ {
		fillSpan(y, 0, p.width)
	}
	for y := top; y < p.height-bot; y++ {
		fillSpan(y, 0, left)
		fillSpan(y, max(p.width-right, left), p.width)
	}
	for y := max(p.height-bot, top); y < p.height; y++ {
		fillSpan(y, 0, p.width)
	}
	return nil
}

// fillRegion sets or clears every bit of the pixels in b, which must
// already be clipped to the image.
func (p *Pix) fillRegion(b Box, ones bool) {
	d := int(p.depth)
	bitstart := b.X * d
	bitend := (b.X + b.W) * d
	w0 := bitstart / 32
	w1 := (bitend - 1) / 32
	for y := b.Y; y < b.Y+b.H; y++ {
		line := p.row(y)
		for k := w0; k <= w1; k++ {
			mask := uint32(0xffffffff)
			if k == w0 {
				mask &= bitlow.RMask(32 - bitstart%32)
			}
			if k == w1 {
				mask &= bitlow.LMask(bitend - 32*k)
			}
			if ones {
				line[k] |= mask
			} else {
				line[k] &^= mask
			}
		}
	}
}
