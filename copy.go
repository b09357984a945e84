package pix

import "github.com/gopix/pix/internal/bitlow"

// Clone returns a deep copy of the image, including its colormap.
func (p *Pix) Clone() *Pix {
	out := &Pix{
		width:  p.width,
		height: p.height,
		depth:  p.depth,
		wpl:    p.wpl,
		data:   make([]uint32, p.wpl*p.height),
		cmap:   p.cmap.Clone(),
	}
	copy(out.data, p.data[:p.wpl*p.height])
	return out
}

// CopyInto copies the image into dst, reallocating dst's data if the
// shapes differ. dst takes p's dimensions, depth and colormap.
// Copying an image into itself is a no-op.
func (p *Pix) CopyInto(dst *Pix) error {
	if dst == nil {
		return ErrMissingBuffer
	}
	if dst == p {
		return nil
	}
	n := p.wpl * p.height
	if len(dst.data) < n || !dst.sameSize(p) || dst.depth != p.depth {
		dst.data = make([]uint32, n)
	}
	dst.width = p.width
	dst.height = p.height
	dst.depth = p.depth
	dst.wpl = p.wpl
	copy(dst.data[:n], p.data[:n])
	dst.cmap = p.cmap.Clone()
	return nil
}

// reshapeTo makes dst the same shape as src, reallocating only when the
// existing data slice cannot hold the new shape. dst's pixel content
// becomes undefined; callers overwrite it. A colormap of the wrong
// depth is dropped.
func (dst *Pix) reshapeTo(src *Pix) {
	n := src.wpl * src.height
	if len(dst.data) < n {
		dst.data = make([]uint32, n)
	}
	if dst.depth != src.depth {
		dst.cmap = nil
	}
	dst.width = src.width
	dst.height = src.height
	dst.depth = src.depth
	dst.wpl = src.wpl
}

// copyRegion copies a w x h block of pixels from src at (sx, sy) to dst
// at (dx, dy). Both images must have the same depth; the block must lie
// inside both images. Callers guarantee the preconditions.
//
// When both x-origins fall on word boundaries the copy moves whole
// words; otherwise pixels move one at a time.
func copyRegion(dst *Pix, dx, dy int, src *Pix, sx, sy, w, h int) {
	d := int(src.depth)
	ppw := 32 / d

	if sx%ppw == 0 && dx%ppw == 0 {
		fullwords := w / ppw
		sw := sx / ppw
		dw := dx / ppw
		for i := 0; i < h; i++ {
			lines := src.row(sy + i)
			lined := dst.row(dy + i)
			copy(lined[dw:dw+fullwords], lines[sw:sw+fullwords])
			for j := fullwords * ppw; j < w; j++ {
				v := bitlow.GetPixel(lines, sx+j, d)
				bitlow.SetPixel(lined, dx+j, d, v)
			}
		}
		return
	}

	for i := 0; i < h; i++ {
		lines := src.row(sy + i)
		lined := dst.row(dy + i)
		for j := 0; j < w; j++ {
			v := bitlow.GetPixel(lines, sx+j, d)
			bitlow.SetPixel(lined, dx+j, d, v)
		}
	}
}
