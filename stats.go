package pix

import (
	"math"

	"github.com/gopix/pix/internal/bitlow"
)

// Stat selects the statistic computed by the averaging operations.
type Stat int

const (
	// MeanAbsVal is the mean pixel value.
	MeanAbsVal Stat = iota

	// RootMeanSquare is sqrt(E[x^2]).
	RootMeanSquare

	// StandardDeviation is sqrt(E[x^2] - E[x]^2).
	StandardDeviation

	// Variance is E[x^2] - E[x]^2.
	Variance
)

// IsValid returns true for the four defined statistics.
func (s Stat) IsValid() bool {
	return s >= MeanAbsVal && s <= Variance
}

// String returns a short name for the statistic.
func (s Stat) String() string {
	switch s {
	case MeanAbsVal:
		return "mean"
	case RootMeanSquare:
		return "rms"
	case StandardDeviation:
		return "stddev"
	case Variance:
		return "variance"
	}
	return "unknown"
}

// Extremum selects the direction of an extreme-value scan.
type Extremum int

const (
	ChooseMin Extremum = iota
	ChooseMax
)

// IsValid returns true for ChooseMin and ChooseMax.
func (e Extremum) IsValid() bool {
	return e == ChooseMin || e == ChooseMax
}

// AverageMasked computes a statistic over the pixels under the ON
// pixels of a 1 bpp mask whose origin is placed at (x, y) on p; the
// mask is clipped to p in the inner loop. A nil mask samples the whole
// image, in which case x and y are ignored. Sampling strides by factor
// in both directions. The image must be 8 bpp or colormapped (resolved
// to gray first). Zero sampled pixels returns ErrNoSamples.
func (p *Pix) AverageMasked(mask *Pix, x, y, factor int, stat Stat) (float64, error) {
	if p.depth != D8 && p.cmap == nil {
		return 0, ErrBadDepth
	}
	if mask != nil && mask.depth != D1 {
		return 0, ErrBadDepth
	}
	if factor < 1 {
		return 0, ErrBadSamplingFactor
	}
	if !stat.IsValid() {
		return 0, ErrBadStat
	}

	src := p
	if p.cmap != nil {
		g, err := ConvertTo8(p)
		if err != nil {
			return 0, err
		}
		src = g
	}

	var sumave, summs float64
	count := 0
	if mask == nil {
		for i := 0; i < src.height; i += factor {
			line := src.row(i)
			for j := 0; j < src.width; j += factor {
				v := float64(bitlow.GetByte(line, j))
				sumave += v
				summs += v * v
				count++
			}
		}
	} else {
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
					v := float64(bitlow.GetByte(lines, x+j))
					sumave += v
					summs += v * v
					count++
				}
			}
		}
	}
	if count == 0 {
		return 0, ErrNoSamples
	}

	ave := sumave / float64(count)
	meansq := summs / float64(count)
	switch stat {
	case MeanAbsVal:
		return ave, nil
	case RootMeanSquare:
		return math.Sqrt(meansq), nil
	case StandardDeviation:
		return math.Sqrt(meansq - ave*ave), nil
	}
	return meansq - ave*ave, nil
}

// AverageMaskedRGB computes the statistic per color sample of a 32 bpp
// or colormapped image, by extracting the three 8 bpp components and
// averaging each under the mask.
func (p *Pix) AverageMaskedRGB(mask *Pix, x, y, factor int, stat Stat) (rval, gval, bval float64, err error) {
	src := p
	if p.cmap != nil {
		if src, err = RemoveColormap(p); err != nil {
			return 0, 0, 0, err
		}
	}
	if src.depth == D8 {
		// A gray palette resolved to gray; the samples coincide.
		v, err := src.AverageMasked(mask, x, y, factor, stat)
		if err != nil {
			return 0, 0, 0, err
		}
		return v, v, v, nil
	}
	if src.depth != D32 {
		return 0, 0, 0, ErrBadDepth
	}

	cr, err := src.RGBComponent(CompRed)
	if err != nil {
		return 0, 0, 0, err
	}
	if rval, err = cr.AverageMasked(mask, x, y, factor, stat); err != nil {
		return 0, 0, 0, err
	}
	cg, err := src.RGBComponent(CompGreen)
	if err != nil {
		return 0, 0, 0, err
	}
	if gval, err = cg.AverageMasked(mask, x, y, factor, stat); err != nil {
		return 0, 0, 0, err
	}
	cb, err := src.RGBComponent(CompBlue)
	if err != nil {
		return 0, 0, 0, err
	}
	if bval, err = cb.AverageMasked(mask, x, y, factor, stat); err != nil {
		return 0, 0, 0, err
	}
	return rval, gval, bval, nil
}

// AverageTiled divides the image into sx by sy tiles and returns an
// 8 bpp image holding the rounded statistic of each fully contained
// tile. Both tile dimensions must be at least 2. Variance is not
// offered; its values do not fit the 8-bit result.
func (p *Pix) AverageTiled(sx, sy int, stat Stat) (*Pix, error) {
	if p.depth != D8 && p.cmap == nil {
		return nil, ErrBadDepth
	}
	if sx < 2 || sy < 2 {
		return nil, ErrInvalidDimensions
	}
	if stat != MeanAbsVal && stat != RootMeanSquare && stat != StandardDeviation {
		return nil, ErrBadStat
	}
	wd := p.width / sx
	hd := p.height / sy
	if wd < 1 || hd < 1 {
		return nil, ErrInvalidDimensions
	}

	src := p
	if p.cmap != nil {
		g, err := ConvertTo8(p)
		if err != nil {
			return nil, err
		}
		src = g
	}

	out, err := New(wd, hd, D8)
	if err != nil {
		return nil, err
	}
	normfact := 1 / float64(sx*sy)
	for i := 0; i < hd; i++ {
		lined := out.row(i)
		for j := 0; j < wd; j++ {
			var sumave, summs float64
			for k := 0; k < sy; k++ {
				linet := src.row(i*sy + k)
				for m := 0; m < sx; m++ {
					v := float64(bitlow.GetByte(linet, j*sx+m))
					sumave += v
					summs += v * v
				}
			}
			ave := normfact * sumave
			meansq := normfact * summs
			var val float64
			switch stat {
			case MeanAbsVal:
				val = ave
			case RootMeanSquare:
				val = math.Sqrt(meansq)
			default:
				val = math.Sqrt(meansq - ave*ave)
			}
			bitlow.SetByte(lined, j, uint32(val+0.5))
		}
	}
	return out, nil
}

// ExtremeValue returns the minimum or maximum sampled gray value of an
// 8 bpp image, striding by factor.
func (p *Pix) ExtremeValue(factor int, which Extremum) (int, error) {
	if p.depth != D8 || p.cmap != nil {
		return 0, ErrBadDepth
	}
	if factor < 1 {
		return 0, ErrBadSamplingFactor
	}
	if !which.IsValid() {
		return 0, ErrBadStat
	}

	extval := 0
	if which == ChooseMin {
		extval = 100000
	}
	for i := 0; i < p.height; i += factor {
		line := p.row(i)
		for j := 0; j < p.width; j += factor {
			v := int(bitlow.GetByte(line, j))
			if (which == ChooseMin && v < extval) || (which == ChooseMax && v > extval) {
				extval = v
			}
		}
	}
	return extval, nil
}

// ExtremeValueRGB returns the per-sample minimum or maximum of a
// 32 bpp image, striding by factor. For a colormapped image the scan
// runs over the palette entries instead and factor is ignored.
func (p *Pix) ExtremeValueRGB(factor int, which Extremum) (rval, gval, bval int, err error) {
	if !which.IsValid() {
		return 0, 0, 0, ErrBadStat
	}
	if p.cmap != nil {
		if p.cmap.Len() == 0 {
			return 0, 0, 0, ErrNoSamples
		}
		rval, gval, bval = int(p.cmap.entries[0].R), int(p.cmap.entries[0].G), int(p.cmap.entries[0].B)
		for _, e := range p.cmap.entries[1:] {
			if which == ChooseMin {
				rval = min(rval, int(e.R))
				gval = min(gval, int(e.G))
				bval = min(bval, int(e.B))
			} else {
				rval = max(rval, int(e.R))
				gval = max(gval, int(e.G))
				bval = max(bval, int(e.B))
			}
		}
		return rval, gval, bval, nil
	}
	if p.depth != D32 {
		return 0, 0, 0, ErrBadDepth
	}
	if factor < 1 {
		return 0, 0, 0, ErrBadSamplingFactor
	}

	if which == ChooseMin {
		rval, gval, bval = 100000, 100000, 100000
	}
	for i := 0; i < p.height; i += factor {
		line := p.row(i)
		for j := 0; j < p.width; j += factor {
			r, g, b := RGBValues(line[j])
			if which == ChooseMin {
				rval = min(rval, int(r))
				gval = min(gval, int(g))
				bval = min(bval, int(b))
			} else {
				rval = max(rval, int(r))
				gval = max(gval, int(g))
				bval = max(bval, int(b))
			}
		}
	}
	return rval, gval, bval, nil
}

// ThresholdForFgBg estimates the average foreground and background
// values of an image: an 8 bpp sampled rendition is split by thresh
// into a foreground mask (dark pixels below the threshold) and its
// complement, and each side is averaged. An empty side returns
// ErrNoSamples.
func (p *Pix) ThresholdForFgBg(factor, thresh int) (fgval, bgval int, err error) {
	g, err := ConvertTo8BySampling(p, factor)
	if err != nil {
		return 0, 0, err
	}
	m, err := ThresholdToBinary(g, thresh)
	if err != nil {
		return 0, 0, err
	}

	fval, err := g.AverageMasked(m, 0, 0, 1, MeanAbsVal)
	if err != nil {
		return 0, 0, err
	}
	fgval = int(fval + 0.5)

	m.InvertInPlace()
	bval, err := g.AverageMasked(m, 0, 0, 1, MeanAbsVal)
	if err != nil {
		return 0, 0, err
	}
	bgval = int(bval + 0.5)
	return fgval, bgval, nil
}

// SplitDistributionFgBg finds the threshold that best separates the
// gray distribution of the image into dark (foreground) and light
// (background) classes, returning the threshold and the average value
// of each class. estfract is the estimated fraction of foreground
// pixels and must lie in (0, 1); it seeds the search but the returned
// split maximizes the between-class separation over the histogram.
func (p *Pix) SplitDistributionFgBg(estfract float64, factor int) (thresh, fgval, bgval int, err error) {
	if estfract <= 0 || estfract >= 1 {
		return 0, 0, 0, ErrBadFactor
	}
	g, err := ConvertTo8BySampling(p, factor)
	if err != nil {
		return 0, 0, 0, err
	}
	hist, err := g.GrayHistogram(1)
	if err != nil {
		return 0, 0, 0, err
	}
	return splitDistribution(hist, estfract)
}

// splitDistribution scans every split point of a 256-bin histogram and
// keeps the one maximizing num1*num2*(mean1-mean2)^2, the standard
// between-class separation score. The estimated foreground fraction
// supplies the answer when the distribution cannot be split (all mass
// in one bin).
func splitDistribution(hist []int, estfract float64) (thresh, fgval, bgval int, err error) {
	var total, totalsum float64
	for v, c := range hist {
		total += float64(c)
		totalsum += float64(v * c)
	}
	if total == 0 {
		return 0, 0, 0, ErrNoSamples
	}

	bestscore := -1.0
	found := false
	var num1, sum1 float64
	for t := 0; t < len(hist)-1; t++ {
		num1 += float64(hist[t])
		sum1 += float64(t * hist[t])
		num2 := total - num1
		if num1 == 0 || num2 == 0 {
			continue
		}
		mean1 := sum1 / num1
		mean2 := (totalsum - sum1) / num2
		score := num1 * num2 * (mean1 - mean2) * (mean1 - mean2)
		if score > bestscore {
			bestscore = score
			thresh = t + 1
			fgval = int(mean1 + 0.5)
			bgval = int(mean2 + 0.5)
			found = true
		}
	}
	if !found {
		// Single occupied bin; fall back to the estimate.
		mean := totalsum / total
		v := int(mean + 0.5)
		Logger().Warn("distribution cannot be split", "estfract", estfract)
		return v, v, v, nil
	}
	return thresh, fgval, bgval, nil
}
