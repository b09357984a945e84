package pix

import "github.com/gopix/pix/internal/bitlow"

// GrayHistogram tallies pixel values at every factor-th row and column.
// The image must not be 32 bpp. The histogram has 2^depth bins, except
// that an image with an all-gray colormap is first resolved to 8 bpp
// gray and tallied into 256 bins; a colormap with color entries is
// tallied by palette index. For 1 bpp the counts follow from the
// popcount alone and factor is ignored.
func (p *Pix) GrayHistogram(factor int) ([]int, error) {
	if p.depth > D16 {
		return nil, ErrBadDepth
	}
	if factor < 1 {
		return nil, ErrBadSamplingFactor
	}

	src := p
	if p.cmap != nil && !p.cmap.HasColor() {
		g, err := ConvertTo8(p)
		if err != nil {
			return nil, err
		}
		src = g
	}

	hist := make([]int, 1<<uint(src.depth))
	if src.depth == D1 {
		count, err := src.CountPixels()
		if err != nil {
			return nil, err
		}
		hist[0] = src.width*src.height - count
		hist[1] = count
		return hist, nil
	}

	d := int(src.depth)
	for y := 0; y < src.height; y += factor {
		line := src.row(y)
		for x := 0; x < src.width; x += factor {
			hist[bitlow.GetPixel(line, x, d)]++
		}
	}
	return hist, nil
}

// GrayHistogramMasked tallies the 8-bit values of pixels under the ON
// pixels of a 1 bpp mask whose origin is placed at (x, y) on p; x and y
// may be negative, and the mask is clipped to p in the inner loop. The
// image must be 8 bpp or colormapped (resolved to gray). A nil mask
// tallies the whole image. The histogram always has 256 bins.
func (p *Pix) GrayHistogramMasked(mask *Pix, x, y, factor int) ([]int, error) {
	if mask == nil {
		return p.GrayHistogram(factor)
	}
	if p.depth != D8 && p.cmap == nil {
		return nil, ErrBadDepth
	}
	if mask.depth != D1 {
		return nil, ErrBadDepth
	}
	if factor < 1 {
		return nil, ErrBadSamplingFactor
	}

	src := p
	if p.cmap != nil {
		g, err := ConvertTo8(p)
		if err != nil {
			return nil, err
		}
		src = g
	}

	hist := make([]int, 256)
	for i := 0; i < mask.height; i += factor {
		if y+i < 0 || y+i >= src.height {
			continue
		}
		lines := src.row(y + i)
		linem := mask.row(i)
		for j := 0; j < mask.width; j += factor {
			if x+j < 0 || x+j >= src.width {
				continue
			}
			if bitlow.GetBit(linem, j) != 0 {
				hist[bitlow.GetByte(lines, x+j)]++
			}
		}
	}
	return hist, nil
}

// ColorHistogram tallies the three color samples of every factor-th
// pixel into separate 256-bin histograms. The image must be 32 bpp or
// colormapped; colormapped pixels tally their palette entry's samples.
func (p *Pix) ColorHistogram(factor int) (rhist, ghist, bhist []int, err error) {
	if p.cmap != nil {
		if p.depth != D2 && p.depth != D4 && p.depth != D8 {
			return nil, nil, nil, ErrBadDepth
		}
	} else if p.depth != D32 {
		return nil, nil, nil, ErrBadDepth
	}
	if factor < 1 {
		return nil, nil, nil, ErrBadSamplingFactor
	}

	rhist = make([]int, 256)
	ghist = make([]int, 256)
	bhist = make([]int, 256)
	d := int(p.depth)
	for y := 0; y < p.height; y += factor {
		line := p.row(y)
		for x := 0; x < p.width; x += factor {
			var e RGB
			if p.cmap != nil {
				e, err = p.cmap.Color(int(bitlow.GetPixel(line, x, d)))
				if err != nil {
					return nil, nil, nil, err
				}
			} else {
				e.R, e.G, e.B = RGBValues(line[x])
			}
			rhist[e.R]++
			ghist[e.G]++
			bhist[e.B]++
		}
	}
	return rhist, ghist, bhist, nil
}

// ColorHistogramMasked is ColorHistogram restricted to pixels under the
// ON pixels of a 1 bpp mask placed at (x, y); the mask is clipped to p
// in the inner loop. A nil mask tallies the whole image.
func (p *Pix) ColorHistogramMasked(mask *Pix, x, y, factor int) (rhist, ghist, bhist []int, err error) {
	if mask == nil {
		return p.ColorHistogram(factor)
	}
	if p.cmap != nil {
		if p.depth != D2 && p.depth != D4 && p.depth != D8 {
			return nil, nil, nil, ErrBadDepth
		}
	} else if p.depth != D32 {
		return nil, nil, nil, ErrBadDepth
	}
	if mask.depth != D1 {
		return nil, nil, nil, ErrBadDepth
	}
	if factor < 1 {
		return nil, nil, nil, ErrBadSamplingFactor
	}

	rhist = make([]int, 256)
	ghist = make([]int, 256)
	bhist = make([]int, 256)
	d := int(p.depth)
	for i := 0; i < mask.height; i += factor {
		if y+i < 0 || y+i >= p.height {
			continue
		}
		lines := p.row(y + i)
		linem := mask.row(i)
		for j := 0; j < mask.width; j += factor {
			if x+j < 0 || x+j >= p.width {
				continue
			}
			if bitlow.GetBit(linem, j) == 0 {
				continue
			}
			var e RGB
			if p.cmap != nil {
				e, err = p.cmap.Color(int(bitlow.GetPixel(lines, x+j, d)))
				if err != nil {
					return nil, nil, nil, err
				}
			} else {
				e.R, e.G, e.B = RGBValues(lines[x+j])
			}
			rhist[e.R]++
			ghist[e.G]++
			bhist[e.B]++
		}
	}
	return rhist, ghist, bhist, nil
}

// RankValueMasked returns the pixel value at the given rank among the
// pixels under the mask, where rank 0 is the darkest pixel and rank 1
// the brightest; 0.5 gives the median. The value interpolates within
// the histogram bin that crosses the rank, so it need not be integral.
// A nil mask ranks the whole image. The image must be 8 bpp or
// colormapped.
func (p *Pix) RankValueMasked(mask *Pix, x, y, factor int, rank float64) (float64, error) {
	if rank < 0 || rank > 1 {
		return 0, ErrBadRank
	}
	hist, err := p.GrayHistogramMasked(mask, x, y, factor)
	if err != nil {
		return 0, err
	}
	return histogramValFromRank(hist, rank), nil
}

// histogramValFromRank returns the value v such that the histogram mass
// below v is the fraction rank of the total, interpolating linearly
// inside the crossing bin. Callers clamp rank to [0, 1].
func histogramValFromRank(hist []int, rank float64) float64 {
	total := 0
	for _, c := range hist {
		total += c
	}
	rankcount := rank * float64(total)

	var i int
	var val, sum float64
	for i = 0; i < len(hist); i++ {
		val = float64(hist[i])
		if sum+val >= rankcount {
			break
		}
		sum += val
	}
	fract := 0.0
	if val > 0 {
		fract = (rankcount - sum) / val
	}
	return float64(i) + fract
}
