package pix

import "github.com/gopix/pix/internal/bitlow"

// wordBits sums the set bits of a word through the byte table.
func wordBits(word uint32) int {
	return bitlow.PopCount8[word&0xff] +
		bitlow.PopCount8[word>>8&0xff] +
		bitlow.PopCount8[word>>16&0xff] +
		bitlow.PopCount8[word>>24&0xff]
}

// rowBits sums the set bits of one 1 bpp row of width w.
func rowBits(line []uint32, w int) int {
	fullwords := w >> 5
	endmask := bitlow.EndMask(w & 31)

	sum := 0
	for j := 0; j < fullwords; j++ {
		if word := line[j]; word != 0 {
			sum += wordBits(word)
		}
	}
	if endmask != 0 {
		if word := line[fullwords] & endmask; word != 0 {
			sum += wordBits(word)
		}
	}
	return sum
}

// CountPixels returns the number of ON pixels in a 1 bpp image.
// Pad bits at row ends are excluded.
func (p *Pix) CountPixels() (int, error) {
	if p.depth != D1 {
		return 0, ErrBadDepth
	}
	sum := 0
	for y := 0; y < p.height; y++ {
		sum += rowBits(p.row(y), p.width)
	}
	return sum, nil
}

// CountPixelsInRow returns the number of ON pixels in one row of a
// 1 bpp image.
func (p *Pix) CountPixelsInRow(row int) (int, error) {
	if p.depth != D1 {
		return 0, ErrBadDepth
	}
	if row < 0 || row >= p.height {
		return 0, ErrOutOfBounds
	}
	return rowBits(p.row(row), p.width), nil
}

// CountPixelsByRow returns the ON-pixel count of every row of a 1 bpp
// image, top to bottom.
func (p *Pix) CountPixelsByRow() ([]int, error) {
	if p.depth != D1 {
		return nil, ErrBadDepth
	}
	counts := make([]int, p.height)
	for y := 0; y < p.height; y++ {
		counts[y] = rowBits(p.row(y), p.width)
	}
	return counts, nil
}

// ThresholdPixels reports whether a 1 bpp image has more than thresh ON
// pixels. The scan stops at the first row whose running sum exceeds the
// threshold, which makes it cheap for rejecting mismatched images by
// thresholding their XOR.
func (p *Pix) ThresholdPixels(thresh int) (bool, error) {
	if p.depth != D1 {
		return false, ErrBadDepth
	}
	sum := 0
	for y := 0; y < p.height; y++ {
		sum += rowBits(p.row(y), p.width)
		if sum > thresh {
			return true, nil
		}
	}
	return false, nil
}

// Centroid returns the center of mass of a 1 or 8 bpp image, weighting
// 1 bpp pixels equally and 8 bpp pixels by value. An image with no
// weight (no ON pixels, or all zero) returns ErrNoSamples.
func (p *Pix) Centroid() (Point, error) {
	switch p.depth {
	case D1:
		return p.centroidBinary()
	case D8:
		return p.centroidGray()
	}
	return Point{}, ErrBadDepth
}

// centroidBinary runs a byte at a time: the popcount table gives the
// weight of each byte and the centroid table the sum of pixel offsets
// within it, so no per-bit loop is needed.
func (p *Pix) centroidBinary() (Point, error) {
	fullbytes := p.width >> 3
	endbits := p.width & 7
	endmask := uint32(0xff) << uint(8-endbits) & 0xff

	var xsum, ysum float64
	total := 0
	for y := 0; y < p.height; y++ {
		line := p.row(y)
		rowsum := 0
		for bx := 0; bx < fullbytes; bx++ {
			b := bitlow.GetByte(line, bx)
			if b == 0 {
				continue
			}
			n := bitlow.PopCount8[b]
			rowsum += n
			xsum += float64(8*bx*n + bitlow.CentroidWeight8[b])
		}
		if endbits != 0 {
			b := bitlow.GetByte(line, fullbytes) & endmask
			if b != 0 {
				n := bitlow.PopCount8[b]
				rowsum += n
				xsum += float64(8*fullbytes*n + bitlow.CentroidWeight8[b])
			}
		}
		ysum += float64(y * rowsum)
		total += rowsum
	}
	if total == 0 {
		return Point{}, ErrNoSamples
	}
	return Point{X: xsum / float64(total), Y: ysum / float64(total)}, nil
}

func (p *Pix) centroidGray() (Point, error) {
	var xsum, ysum float64
	total := 0
	for y := 0; y < p.height; y++ {
		line := p.row(y)
		for x := 0; x < p.width; x++ {
			v := int(bitlow.GetByte(line, x))
			xsum += float64(v * x)
			ysum += float64(v * y)
			total += v
		}
	}
	if total == 0 {
		return Point{}, ErrNoSamples
	}
	return Point{X: xsum / float64(total), Y: ysum / float64(total)}, nil
}
