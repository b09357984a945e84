package pix

import (
	"github.com/gopix/pix/internal/bitlow"
	"github.com/gopix/pix/internal/scratch"
)

// Error-diffusion dithering and simple thresholding from 8 bpp gray to
// low depths. The diffusion ops walk the image top-left to bottom-right
// and push the quantization error of each pixel into its right, lower
// and lower-right neighbors with weights 3/8, 3/8 and 1/4. Two scratch
// rows carry the accumulated error so the source is never written.

// ditherConfig holds the clip distances for error diffusion.
type ditherConfig struct {
	lowerClip int
	upperClip int
}

// DitherOption configures an error-diffusion operation.
type DitherOption func(*ditherConfig)

// WithClipLevels sets the clip distances. Pixels within lower of pure
// black or within upper of pure white quantize without propagating
// their error, which suppresses speckle in large flat regions. Both
// default to 0; values outside [0, 127] are clamped with a warning.
func WithClipLevels(lower, upper int) DitherOption {
	return func(c *ditherConfig) {
		c.lowerClip = lower
		c.upperClip = upper
	}
}

func resolveDitherConfig(opts []DitherOption) ditherConfig {
	var c ditherConfig
	for _, opt := range opts {
		opt(&c)
	}
	if c.lowerClip < 0 || c.lowerClip > 127 || c.upperClip < 0 || c.upperClip > 127 {
		Logger().Warn("clip levels clamped to [0, 127]",
			"lower", c.lowerClip, "upper", c.upperClip)
		c.lowerClip = min(127, max(0, c.lowerClip))
		c.upperClip = min(127, max(0, c.upperClip))
	}
	return c
}

func validateDitherSource(src *Pix) error {
	if src == nil {
		return ErrMissingBuffer
	}
	if src.depth != D8 {
		return ErrBadDepth
	}
	if src.cmap != nil {
		return ErrColormapped
	}
	return nil
}

// DitherToBinary converts an 8 bpp grayscale image to 1 bpp by
// Floyd-Steinberg error diffusion. Gray 0 (black) maps toward ON
// pixels, gray 255 toward OFF, so a flat input of value v produces an
// ON fraction near (255-v)/255.
func DitherToBinary(src *Pix, opts ...DitherOption) (*Pix, error) {
	if err := validateDitherSource(src); err != nil {
		return nil, err
	}
	c := resolveDitherConfig(opts)

	out, err := New(src.width, src.height, D1)
	if err != nil {
		return nil, err
	}
	buf1 := scratch.GetRow(src.wpl)
	buf2 := scratch.GetRow(src.wpl)
	defer scratch.PutRow(buf1)
	defer scratch.PutRow(buf2)

	copy(buf2, src.row(0))
	for y := 0; y < src.height-1; y++ {
		copy(buf1, buf2)
		copy(buf2, src.row(y+1))
		ditherToBinaryLine(out.row(y), src.width, buf1, buf2,
			c.lowerClip, c.upperClip, false)
	}
	copy(buf1, buf2)
	ditherToBinaryLine(out.row(src.height-1), src.width, buf1, buf2,
		c.lowerClip, c.upperClip, true)
	return out, nil
}

// ditherToBinaryLine diffuses one row. buf1 holds the current row with
// its accumulated error and buf2 the row below; lastLine suppresses the
// downward propagation.
func ditherToBinaryLine(lined []uint32, w int, buf1, buf2 []uint32, lower, upper int, lastLine bool) {
	for j := 0; j < w-1; j++ {
		oval := int(bitlow.GetByte(buf1, j))
		if oval > 127 {
			// Binarize to OFF; push the deficit.
			if eval := 255 - oval; eval > upper {
				f38 := 3 * eval / 8
				rval := int(bitlow.GetByte(buf1, j+1))
				bitlow.SetByte(buf1, j+1, uint32(max(0, rval-f38)))
				if !lastLine {
					f14 := eval / 4
					bval := int(bitlow.GetByte(buf2, j))
					bitlow.SetByte(buf2, j, uint32(max(0, bval-f38)))
					dval := int(bitlow.GetByte(buf2, j+1))
					bitlow.SetByte(buf2, j+1, uint32(max(0, dval-f14)))
				}
			}
		} else {
			// Binarize to ON; push the excess.
			bitlow.SetBit(lined, j)
			if oval > lower {
				f38 := 3 * oval / 8
				rval := int(bitlow.GetByte(buf1, j+1))
				bitlow.SetByte(buf1, j+1, uint32(min(255, rval+f38)))
				if !lastLine {
					f14 := oval / 4
					bval := int(bitlow.GetByte(buf2, j))
					bitlow.SetByte(buf2, j, uint32(min(255, bval+f38)))
					dval := int(bitlow.GetByte(buf2, j+1))
					bitlow.SetByte(buf2, j+1, uint32(min(255, dval+f14)))
				}
			}
		}
	}

	// Last column: no right neighbor, only downward flow.
	j := w - 1
	oval := int(bitlow.GetByte(buf1, j))
	if lastLine {
		if oval < 128 {
			bitlow.SetBit(lined, j)
		}
		return
	}
	if oval > 127 {
		if eval := 255 - oval; eval > upper {
			f38 := 3 * eval / 8
			bval := int(bitlow.GetByte(buf2, j))
			bitlow.SetByte(buf2, j, uint32(max(0, bval-f38)))
		}
	} else {
		bitlow.SetBit(lined, j)
		if oval > lower {
			f38 := 3 * oval / 8
			bval := int(bitlow.GetByte(buf2, j))
			bitlow.SetByte(buf2, j, uint32(min(255, bval+f38)))
		}
	}
}

// DitherToBinaryLUT is the table-driven form of DitherToBinary. The
// per-pixel branch arithmetic is folded into three 256-entry tables;
// the output is bit-identical to DitherToBinary for the same clip
// levels.
func DitherToBinaryLUT(src *Pix, opts ...DitherOption) (*Pix, error) {
	if err := validateDitherSource(src); err != nil {
		return nil, err
	}
	c := resolveDitherConfig(opts)
	tabval, tab38, tab14 := binaryDitherTables(c.lowerClip, c.upperClip)

	out, err := New(src.width, src.height, D1)
	if err != nil {
		return nil, err
	}
	buf1 := scratch.GetRow(src.wpl)
	buf2 := scratch.GetRow(src.wpl)
	defer scratch.PutRow(buf1)
	defer scratch.PutRow(buf2)

	copy(buf2, src.row(0))
	for y := 0; y < src.height-1; y++ {
		copy(buf1, buf2)
		copy(buf2, src.row(y+1))
		ditherToBinaryLineLUT(out.row(y), src.width, buf1, buf2,
			tabval, tab38, tab14, false)
	}
	copy(buf1, buf2)
	ditherToBinaryLineLUT(out.row(src.height-1), src.width, buf1, buf2,
		tabval, tab38, tab14, true)
	return out, nil
}

func ditherToBinaryLineLUT(lined []uint32, w int, buf1, buf2 []uint32, tabval []uint32, tab38, tab14 []int, lastLine bool) {
	for j := 0; j < w-1; j++ {
		oval := bitlow.GetByte(buf1, j)
		if tabval[oval] != 0 {
			bitlow.SetBit(lined, j)
		}
		t38 := tab38[oval]
		if t38 == 0 {
			continue
		}
		t14 := tab14[oval]
		rval := int(bitlow.GetByte(buf1, j+1))
		if t38 < 0 {
			bitlow.SetByte(buf1, j+1, uint32(max(0, rval+t38)))
			if !lastLine {
				bval := int(bitlow.GetByte(buf2, j))
				bitlow.SetByte(buf2, j, uint32(max(0, bval+t38)))
				dval := int(bitlow.GetByte(buf2, j+1))
				bitlow.SetByte(buf2, j+1, uint32(max(0, dval+t14)))
			}
		} else {
			bitlow.SetByte(buf1, j+1, uint32(min(255, rval+t38)))
			if !lastLine {
				bval := int(bitlow.GetByte(buf2, j))
				bitlow.SetByte(buf2, j, uint32(min(255, bval+t38)))
				dval := int(bitlow.GetByte(buf2, j+1))
				bitlow.SetByte(buf2, j+1, uint32(min(255, dval+t14)))
			}
		}
	}

	j := w - 1
	oval := bitlow.GetByte(buf1, j)
	if tabval[oval] != 0 {
		bitlow.SetBit(lined, j)
	}
	if lastLine {
		return
	}
	t38 := tab38[oval]
	if t38 < 0 {
		bval := int(bitlow.GetByte(buf2, j))
		bitlow.SetByte(buf2, j, uint32(max(0, bval+t38)))
	} else if t38 > 0 {
		bval := int(bitlow.GetByte(buf2, j))
		bitlow.SetByte(buf2, j, uint32(min(255, bval+t38)))
	}
}

// binaryDitherTables builds the value and propagation tables for 1 bpp
// dithering. The entries use the same truncating arithmetic as
// ditherToBinaryLine, which is what makes the two paths agree bit for
// bit.
func binaryDitherTables(lower, upper int) (tabval []uint32, tab38, tab14 []int) {
	tabval = make([]uint32, 256)
	tab38 = make([]int, 256)
	tab14 = make([]int, 256)
	for i := 0; i < 256; i++ {
		switch {
		case i <= lower:
			tabval[i] = 1
		case i < 128:
			tabval[i] = 1
			tab38[i] = 3 * i / 8
			tab14[i] = i / 4
		case i < 255-upper:
			eval := 255 - i
			tab38[i] = -(3 * eval / 8)
			tab14[i] = -(eval / 4)
		}
	}
	return tabval, tab38, tab14
}

// DitherTo2bpp converts an 8 bpp grayscale image to 4-level 2 bpp by
// error diffusion. The quantization targets are 0, 85, 170 and 255,
// with breakpoints at 43, 128 and 213; each half of a quantization
// band propagates error with the sign that pulls neighbors toward the
// band center.
func DitherTo2bpp(src *Pix, opts ...DitherOption) (*Pix, error) {
	if err := validateDitherSource(src); err != nil {
		return nil, err
	}
	c := resolveDitherConfig(opts)
	tabval, tab38, tab14 := quadDitherTables(c.lowerClip, c.upperClip)

	out, err := New(src.width, src.height, D2)
	if err != nil {
		return nil, err
	}
	buf1 := scratch.GetRow(src.wpl)
	buf2 := scratch.GetRow(src.wpl)
	defer scratch.PutRow(buf1)
	defer scratch.PutRow(buf2)

	copy(buf2, src.row(0))
	for y := 0; y < src.height-1; y++ {
		copy(buf1, buf2)
		copy(buf2, src.row(y+1))
		ditherTo2bppLine(out.row(y), src.width, buf1, buf2,
			tabval, tab38, tab14, false)
	}
	copy(buf1, buf2)
	ditherTo2bppLine(out.row(src.height-1), src.width, buf1, buf2,
		tabval, tab38, tab14, true)
	return out, nil
}

func ditherTo2bppLine(lined []uint32, w int, buf1, buf2 []uint32, tabval []uint32, tab38, tab14 []int, lastLine bool) {
	for j := 0; j < w-1; j++ {
		oval := bitlow.GetByte(buf1, j)
		bitlow.SetDibit(lined, j, tabval[oval])
		t38 := tab38[oval]
		if t38 == 0 {
			continue
		}
		t14 := tab14[oval]
		rval := int(bitlow.GetByte(buf1, j+1))
		if t38 < 0 {
			bitlow.SetByte(buf1, j+1, uint32(max(0, rval+t38)))
			if !lastLine {
				bval := int(bitlow.GetByte(buf2, j))
				bitlow.SetByte(buf2, j, uint32(max(0, bval+t38)))
				dval := int(bitlow.GetByte(buf2, j+1))
				bitlow.SetByte(buf2, j+1, uint32(max(0, dval+t14)))
			}
		} else {
			bitlow.SetByte(buf1, j+1, uint32(min(255, rval+t38)))
			if !lastLine {
				bval := int(bitlow.GetByte(buf2, j))
				bitlow.SetByte(buf2, j, uint32(min(255, bval+t38)))
				dval := int(bitlow.GetByte(buf2, j+1))
				bitlow.SetByte(buf2, j+1, uint32(min(255, dval+t14)))
			}
		}
	}

	j := w - 1
	oval := bitlow.GetByte(buf1, j)
	bitlow.SetDibit(lined, j, tabval[oval])
	if lastLine {
		return
	}
	t38 := tab38[oval]
	if t38 < 0 {
		bval := int(bitlow.GetByte(buf2, j))
		bitlow.SetByte(buf2, j, uint32(max(0, bval+t38)))
	} else if t38 > 0 {
		bval := int(bitlow.GetByte(buf2, j))
		bitlow.SetByte(buf2, j, uint32(min(255, bval+t38)))
	}
}

// quadDitherTables builds the value and propagation tables for 2 bpp
// dithering. Each band between quantization targets splits at its
// center; below center the error is measured against the lower target,
// above center against the upper, so propagation changes sign mid-band.
func quadDitherTables(lower, upper int) (tabval []uint32, tab38, tab14 []int) {
	tabval = make([]uint32, 256)
	tab38 = make([]int, 256)
	tab14 = make([]int, 256)
	for i := 0; i < 256; i++ {
		switch {
		case i <= lower:
			tabval[i] = 0
		case i < 43:
			tabval[i] = 0
			tab38[i] = (3*i + 4) / 8
			tab14[i] = (i + 2) / 4
		case i < 85:
			tabval[i] = 1
			tab38[i] = (3*(i-85) - 4) / 8
			tab14[i] = (i - 85 - 2) / 4
		case i < 128:
			tabval[i] = 1
			tab38[i] = (3*(i-85) + 4) / 8
			tab14[i] = (i - 85 + 2) / 4
		case i < 170:
			tabval[i] = 2
			tab38[i] = (3*(i-170) - 4) / 8
			tab14[i] = (i - 170 - 2) / 4
		case i < 213:
			tabval[i] = 2
			tab38[i] = (3*(i-170) + 4) / 8
			tab14[i] = (i - 170 + 2) / 4
		case i < 255-upper:
			tabval[i] = 3
			tab38[i] = (3*(i-255) - 4) / 8
			tab14[i] = (i - 255 - 2) / 4
		default:
			tabval[i] = 3
		}
	}
	return tabval, tab38, tab14
}

// ThresholdToBinary converts a 4 or 8 bpp grayscale image to 1 bpp.
// Pixels strictly below thresh become ON; no error diffusion.
func ThresholdToBinary(src *Pix, thresh int) (*Pix, error) {
	if src == nil {
		return nil, ErrMissingBuffer
	}
	if src.depth != D4 && src.depth != D8 {
		return nil, ErrBadDepth
	}
	if src.cmap != nil {
		return nil, ErrColormapped
	}

	out, err := New(src.width, src.height, D1)
	if err != nil {
		return nil, err
	}
	d := int(src.depth)
	for y := 0; y < src.height; y++ {
		lines := src.row(y)
		lined := out.row(y)
		for x := 0; x < src.width; x++ {
			if int(bitlow.GetPixel(lines, x, d)) < thresh {
				bitlow.SetBit(lined, x)
			}
		}
	}
	return out, nil
}

// ThresholdTo2bpp quantizes an 8 bpp grayscale image to nlevels gray
// levels (2 to 4) stored in 2 bpp, mapping through a 256-entry level
// table. The result carries a linear gray colormap so the levels keep
// their gray meaning for any nlevels.
func ThresholdTo2bpp(src *Pix, nlevels int) (*Pix, error) {
	return thresholdToLowDepth(src, nlevels, D2)
}

// ThresholdTo4bpp quantizes an 8 bpp grayscale image to nlevels gray
// levels (2 to 16) stored in 4 bpp. See ThresholdTo2bpp.
func ThresholdTo4bpp(src *Pix, nlevels int) (*Pix, error) {
	return thresholdToLowDepth(src, nlevels, D4)
}

func thresholdToLowDepth(src *Pix, nlevels int, d Depth) (*Pix, error) {
	if src == nil {
		return nil, ErrMissingBuffer
	}
	if src.depth != D8 {
		return nil, ErrBadDepth
	}
	if src.cmap != nil {
		return nil, ErrColormapped
	}
	if nlevels < 2 || nlevels > 1<<uint(d) {
		return nil, ErrBadFactor
	}

	out, err := New(src.width, src.height, d)
	if err != nil {
		return nil, err
	}
	cm, err := NewColormap(d)
	if err != nil {
		return nil, err
	}
	for j := 0; j < nlevels; j++ {
		g := uint8(255 * j / (nlevels - 1))
		if _, err := cm.AddColor(g, g, g); err != nil {
			return nil, err
		}
	}
	out.cmap = cm

	tab := grayQuantIndexTable(nlevels)
	for y := 0; y < src.height; y++ {
		lines := src.row(y)
		lined := out.row(y)
		// One source word is four gray pixels; pack them into a
		// single dest byte or halfword.
		for j := 0; j < src.wpl; j++ {
			k := 4 * j
			s1 := tab[bitlow.GetByte(lines, k)]
			s2 := tab[bitlow.GetByte(lines, k+1)]
			s3 := tab[bitlow.GetByte(lines, k+2)]
			s4 := tab[bitlow.GetByte(lines, k+3)]
			if d == D2 {
				bitlow.SetByte(lined, j, s1<<6|s2<<4|s3<<2|s4)
			} else {
				bitlow.SetTwoBytes(lined, j, s1<<12|s2<<8|s3<<4|s4)
			}
		}
	}
	out.SetPadBits(0)
	return out, nil
}

// grayQuantIndexTable maps a gray value to its level index for
// nlevels-way quantization. The thresholds sit halfway between the
// equally spaced level values 255*j/(nlevels-1).
func grayQuantIndexTable(nlevels int) []uint32 {
	tab := make([]uint32, 256)
	for i := 0; i < 256; i++ {
		tab[i] = uint32(nlevels - 1)
		for j := 0; j < nlevels-1; j++ {
			if i <= 255*(2*j+1)/(2*nlevels-2) {
				tab[i] = uint32(j)
				break
			}
		}
	}
	return tab
}
