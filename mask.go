package pix

import "github.com/gopix/pix/internal/bitlow"

// Masked operations paint values or source pixels through the
// foreground of a 1 bpp mask. They mutate the receiver in place.

// SetMasked sets every pixel of p that co-locates with an ON mask pixel
// to val, with the mask aligned at the upper-left corner. Other pixels
// are unchanged. A nil mask is a logged no-op. For colormapped images
// val is an RGB value whose colormap entry is found or added.
//
// The sizes of p and mask should match; small differences are
// tolerated, larger ones log a warning, and the operation always covers
// the intersection.
func (p *Pix) SetMasked(mask *Pix, val uint32) error {
	if mask == nil {
		Logger().Warn("no mask; nothing to do")
		return nil
	}
	if p.cmap != nil {
		r, g, b := RGBValues(val)
		return p.setMaskedCmap(mask, 0, 0, r, g, b)
	}
	if mask.depth != D1 {
		return ErrBadDepth
	}
	d := p.depth
	if d != D32 {
		val &= d.MaxVal()
	}

	// 1 bpp reduces to word-level boolean ops.
	if d == D1 {
		if val == 0 {
			p.combineWords(mask, opSubtract)
		} else {
			p.combineWords(mask, opOr)
		}
		return nil
	}

	// Painting black or white at d < 32 also runs at word level,
	// against the mask unpacked to depth d.
	if d < D32 && val == 0 {
		md, err := UnpackBinary(mask, d, true)
		if err != nil {
			return err
		}
		p.combineWords(md, opAnd)
		return nil
	}
	if d < D32 && val == d.MaxVal() {
		md, err := UnpackBinary(mask, d, false)
		if err != nil {
			return err
		}
		p.combineWords(md, opOr)
		return nil
	}

	w := min(p.width, mask.width)
	h := min(p.height, mask.height)
	if abs(p.width-mask.width) > 7 || abs(p.height-mask.height) > 7 {
		Logger().Warn("image and mask sizes differ",
			"imgW", p.width, "imgH", p.height,
			"maskW", mask.width, "maskH", mask.height)
	}
	for y := 0; y < h; y++ {
		lined := p.row(y)
		linem := mask.row(y)
		for x := 0; x < w; x++ {
			if bitlow.GetBit(linem, x) != 0 {
				bitlow.SetPixel(lined, x, int(d), val)
			}
		}
	}
	return nil
}

// PaintThroughMask sets every pixel of p under an ON mask pixel to val,
// with the mask origin placed at (x, y) on p; x and y may be negative.
// The operation clips to the intersection of the two rectangles. A nil
// mask is a no-op. For colormapped images val is an RGB value whose
// colormap entry is found or added.
func (p *Pix) PaintThroughMask(mask *Pix, x, y int, val uint32) error {
	if mask == nil {
		return nil
	}
	if p.cmap != nil {
		r, g, b := RGBValues(val)
		return p.setMaskedCmap(mask, x, y, r, g, b)
	}
	if mask.depth != D1 {
		return ErrBadDepth
	}
	d := p.depth
	if d != D32 {
		val &= d.MaxVal()
	}

	for i := 0; i < mask.height; i++ {
		if y+i < 0 || y+i >= p.height {
			continue
		}
		lined := p.row(y + i)
		linem := mask.row(i)
		for j := 0; j < mask.width; j++ {
			if x+j < 0 || x+j >= p.width {
				continue
			}
			if bitlow.GetBit(linem, j) != 0 {
				bitlow.SetPixel(lined, x+j, int(d), val)
			}
		}
	}
	return nil
}

// setMaskedCmap paints through the mask into a colormapped image by
// writing the index of the (r, g, b) entry, adding it if needed.
func (p *Pix) setMaskedCmap(mask *Pix, x, y int, r, g, b uint8) error {
	if mask.depth != D1 {
		return ErrBadDepth
	}
	idx, err := p.cmap.FindOrAdd(r, g, b)
	if err != nil {
		return err
	}
	d := int(p.depth)
	for i := 0; i < mask.height; i++ {
		if y+i < 0 || y+i >= p.height {
			continue
		}
		lined := p.row(y + i)
		linem := mask.row(i)
		for j := 0; j < mask.width; j++ {
			if x+j < 0 || x+j >= p.width {
				continue
			}
			if bitlow.GetBit(linem, j) != 0 {
				bitlow.SetPixel(lined, x+j, d, uint32(idx))
			}
		}
	}
	return nil
}

// CombineMasked copies into p each src pixel that co-locates with an ON
// mask pixel, with all images aligned at the upper-left corner. p and
// src must be 8 or 32 bpp with identical sizes. A nil mask is a no-op.
//
// Checking mask bits and copying only under foreground beats a
// word-level blend when the mask is sparse.
func (p *Pix) CombineMasked(src, mask *Pix) error {
	if mask == nil {
		return nil
	}
	if src == nil {
		return ErrMissingBuffer
	}
	if p.depth != D8 && p.depth != D32 {
		return ErrBadDepth
	}
	if p.depth != src.depth {
		return ErrDepthMismatch
	}
	if mask.depth != D1 {
		return ErrBadDepth
	}
	if !p.sameSize(src) {
		return ErrSizeMismatch
	}

	w := min(p.width, mask.width)
	h := min(p.height, mask.height)

	if p.depth == D8 {
		for y := 0; y < h; y++ {
			lined := p.row(y)
			lines := src.row(y)
			linem := mask.row(y)
			for x := 0; x < w; x++ {
				if bitlow.GetBit(linem, x) != 0 {
					bitlow.SetByte(lined, x, bitlow.GetByte(lines, x))
				}
			}
		}
		return nil
	}
	for y := 0; y < h; y++ {
		lined := p.row(y)
		lines := src.row(y)
		linem := mask.row(y)
		for x := 0; x < w; x++ {
			if bitlow.GetBit(linem, x) != 0 {
				lined[x] = lines[x]
			}
		}
	}
	return nil
}

// CombineThroughMask copies src pixels through the mask into p, with
// the upper-left corners of src and mask both placed at (x, y) on p;
// x and y may be negative. p and src must be 8 or 32 bpp, equal depth,
// and not colormapped. The operation clips to the intersection of all
// three images. A nil mask is a no-op.
func (p *Pix) CombineThroughMask(src, mask *Pix, x, y int) error {
	if mask == nil {
		return nil
	}
	if src == nil {
		return ErrMissingBuffer
	}
	if p.depth != src.depth {
		return ErrDepthMismatch
	}
	if mask.depth != D1 {
		return ErrBadDepth
	}
	if p.depth != D8 && p.depth != D32 {
		return ErrBadDepth
	}
	if p.cmap != nil || src.cmap != nil {
		return ErrColormapped
	}

	wmin := min(src.width, mask.width)
	hmin := min(src.height, mask.height)
	for i := 0; i < hmin; i++ {
		if y+i < 0 || y+i >= p.height {
			continue
		}
		lined := p.row(y + i)
		lines := src.row(i)
		linem := mask.row(i)
		for j := 0; j < wmin; j++ {
			if x+j < 0 || x+j >= p.width {
				continue
			}
			if bitlow.GetBit(linem, j) == 0 {
				continue
			}
			if p.depth == D8 {
				bitlow.SetByte(lined, x+j, bitlow.GetByte(lines, j))
			} else {
				lined[x+j] = lines[j]
			}
		}
	}
	return nil
}

// abs returns the absolute value of an int.
func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
