package pix

import "github.com/gopix/pix/internal/bitlow"

// ClipRectangle extracts the part of the image under box. The box is
// clipped to the image first; the returned Box reports the region
// actually extracted. A box with no overlap yields ErrOutOfBounds.
func (p *Pix) ClipRectangle(box Box) (*Pix, Box, error) {
	clipped, ok := box.ClipToRaster(p.width, p.height)
	if !ok {
		return nil, Box{}, ErrOutOfBounds
	}

	out, err := New(clipped.W, clipped.H, p.depth)
	if err != nil {
		return nil, Box{}, err
	}
	out.cmap = p.cmap.Clone()
	copyRegion(out, 0, 0, p, clipped.X, clipped.Y, clipped.W, clipped.H)
	return out, clipped, nil
}

// ClipMasked extracts the rectangle covered by a 1 bpp mask placed at
// (x, y) and paints every pixel outside the mask's foreground with
// outval. The returned Box is the extracted region.
func (p *Pix) ClipMasked(mask *Pix, x, y int, outval uint32) (*Pix, Box, error) {
	if mask == nil {
		return nil, Box{}, ErrMissingBuffer
	}
	if mask.depth != D1 {
		return nil, Box{}, ErrBadDepth
	}

	out, cbox, err := p.ClipRectangle(Box{X: x, Y: y, W: mask.width, H: mask.height})
	if err != nil {
		return nil, Box{}, err
	}
	if err := out.PaintThroughMask(mask.Invert(), 0, 0, outval); err != nil {
		return nil, Box{}, err
	}
	return out, cbox, nil
}

// ClipToForeground trims a 1 bpp image to the bounding box of its ON
// pixels. An image with no foreground yields ErrNoSamples.
func (p *Pix) ClipToForeground() (*Pix, Box, error) {
	if p.depth != D1 {
		return nil, Box{}, ErrBadDepth
	}

	endbits := bitlow.EndBits(p.width, 1)
	endmask := uint32(0xffffffff)
	if endbits > 0 {
		endmask = bitlow.EndMask(endbits)
	}
	rowHasFg := func(y int) bool {
		line := p.row(y)
		for j := 0; j < p.wpl-1; j++ {
			if line[j] != 0 {
				return true
			}
		}
		return line[p.wpl-1]&endmask != 0
	}

	top := -1
	for y := 0; y < p.height; y++ {
		if rowHasFg(y) {
			top = y
			break
		}
	}
	if top < 0 {
		return nil, Box{}, ErrNoSamples
	}
	bot := top
	for y := p.height - 1; y > top; y-- {
		if rowHasFg(y) {
			bot = y
			break
		}
	}

	colHasFg := func(x int) bool {
		for y := top; y <= bot; y++ {
			if bitlow.GetBit(p.row(y), x) != 0 {
				return true
			}
		}
		return false
	}
	left := 0
	for ; left < p.width; left++ {
		if colHasFg(left) {
			break
		}
	}
	right := p.width - 1
	for ; right > left; right-- {
		if colHasFg(right) {
			break
		}
	}

	return p.ClipRectangle(Box{X: left, Y: top, W: right - left + 1, H: bot - top + 1})
}
