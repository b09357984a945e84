package pix

import "github.com/gopix/pix/internal/bitlow"

// Zero returns true if no pixel has any bit set. Pad bits are ignored.
func (p *Pix) Zero() bool {
	linebits := int(p.depth) * p.width
	fullwords := linebits / 32
	endbits := linebits & 31
	endmask := bitlow.EndMask(endbits)

	for y := 0; y < p.height; y++ {
		line := p.row(y)
		for j := 0; j < fullwords; j++ {
			if line[j] != 0 {
				return false
			}
		}
		if endbits > 0 && line[fullwords]&endmask != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether two images have identical dimensions, depth and
// pixel content. Pad bits are ignored. For 32 bpp the spare low byte of
// each pixel is a don't-care. Images where both sides carry colormaps
// compare the mapped colors, so differently ordered colormaps can still
// be equal; a colormapped image never equals an uncolormapped one.
func (p *Pix) Equal(q *Pix) bool {
	if q == nil {
		return false
	}
	if !p.sameSize(q) || p.depth != q.depth {
		return false
	}
	if (p.cmap == nil) != (q.cmap == nil) {
		return false
	}
	if p.cmap != nil {
		return p.equalWithCmap(q)
	}

	if p.depth == D32 {
		for y := 0; y < p.height; y++ {
			line1 := p.row(y)
			line2 := q.row(y)
			for j := 0; j < p.wpl; j++ {
				if (line1[j]^line2[j])&0xffffff00 != 0 {
					return false
				}
			}
		}
		return true
	}

	linebits := int(p.depth) * p.width
	fullwords := linebits / 32
	endbits := linebits & 31
	endmask := bitlow.EndMask(endbits)
	for y := 0; y < p.height; y++ {
		line1 := p.row(y)
		line2 := q.row(y)
		for j := 0; j < fullwords; j++ {
			if line1[j] != line2[j] {
				return false
			}
		}
		if endbits > 0 && (line1[fullwords]^line2[fullwords])&endmask != 0 {
			return false
		}
	}
	return true
}

// equalWithCmap compares two colormapped images of equal size and depth
// by the colors their pixels map to.
func (p *Pix) equalWithCmap(q *Pix) bool {
	d := int(p.depth)
	for y := 0; y < p.height; y++ {
		line1 := p.row(y)
		line2 := q.row(y)
		for x := 0; x < p.width; x++ {
			v1 := bitlow.GetPixel(line1, x, d)
			v2 := bitlow.GetPixel(line2, x, d)
			c1, err1 := p.cmap.Color(int(v1))
			c2, err2 := q.cmap.Color(int(v2))
			if err1 != nil || err2 != nil {
				return false
			}
			if c1 != c2 {
				return false
			}
		}
	}
	return true
}
