package pix

import "github.com/gopix/pix/internal/bitlow"

// UnpackBinary expands a 1 bpp image to depth d. With invert false,
// mask foreground (1) becomes the maximum value at depth d and
// background stays 0; with invert true the mapping is reversed, so
// foreground becomes 0 and background becomes the maximum.
func UnpackBinary(src *Pix, d Depth, invert bool) (*Pix, error) {
	if src == nil {
		return nil, ErrMissingBuffer
	}
	if src.depth != D1 {
		return nil, ErrBadDepth
	}
	if !d.IsValid() || d == D1 {
		return nil, ErrBadDepth
	}

	out, err := New(src.width, src.height, d)
	if err != nil {
		return nil, err
	}
	on := d.MaxVal()
	if d == D32 {
		on = 0xffffffff
	}
	var v0, v1 uint32
	if invert {
		v0, v1 = on, 0
	} else {
		v0, v1 = 0, on
	}
	if v0 != 0 {
		out.SetAllArbitrary(v0)
	}
	for y := 0; y < src.height; y++ {
		lines := src.row(y)
		lined := out.row(y)
		for x := 0; x < src.width; x++ {
			if bitlow.GetBit(lines, x) != 0 {
				bitlow.SetPixel(lined, x, int(d), v1)
			}
		}
	}
	return out, nil
}

// ConvertTo8 converts an image of any depth to 8 bpp grayscale.
//
//   - 1 bpp: 0 maps to 255 (white) and 1 to 0 (black).
//   - 2 and 4 bpp: values scale by 85 and 17.
//   - 8 bpp: copied; a colormap is resolved to gray.
//   - 16 bpp: the most significant byte survives.
//   - 32 bpp: 0.3 R + 0.5 G + 0.2 B.
//
// Colormapped images of any depth are resolved through the colormap's
// gray value.
func ConvertTo8(src *Pix) (*Pix, error) {
	if src == nil {
		return nil, ErrMissingBuffer
	}
	out, err := New(src.width, src.height, D8)
	if err != nil {
		return nil, err
	}

	grayFor, err := grayLookup(src)
	if err != nil {
		return nil, err
	}
	d := int(src.depth)
	for y := 0; y < src.height; y++ {
		lines := src.row(y)
		lined := out.row(y)
		for x := 0; x < src.width; x++ {
			v := bitlow.GetPixel(lines, x, d)
			bitlow.SetByte(lined, x, grayFor(v))
		}
	}
	return out, nil
}

// ConvertTo8BySampling subsamples every factor-th pixel in each
// direction and converts the result to 8 bpp grayscale. A factor of 1
// keeps the full resolution.
func ConvertTo8BySampling(src *Pix, factor int) (*Pix, error) {
	if src == nil {
		return nil, ErrMissingBuffer
	}
	if factor < 1 {
		return nil, ErrBadSamplingFactor
	}
	if factor == 1 {
		return ConvertTo8(src)
	}

	wd := max(1, src.width/factor)
	hd := max(1, src.height/factor)
	out, err := New(wd, hd, D8)
	if err != nil {
		return nil, err
	}
	grayFor, err := grayLookup(src)
	if err != nil {
		return nil, err
	}
	d := int(src.depth)
	for y := 0; y < hd; y++ {
		lines := src.row(y * factor)
		lined := out.row(y)
		for x := 0; x < wd; x++ {
			v := bitlow.GetPixel(lines, x*factor, d)
			bitlow.SetByte(lined, x, grayFor(v))
		}
	}
	return out, nil
}

// grayLookup returns a function mapping raw pixel values of src to
// 8-bit gray.
func grayLookup(src *Pix) (func(uint32) uint32, error) {
	if src.cmap != nil {
		cm := src.cmap
		n := cm.Len()
		tab := make([]uint32, max(n, 1))
		for i := 0; i < n; i++ {
			g, err := cm.GrayValue(i)
			if err != nil {
				return nil, err
			}
			tab[i] = uint32(g)
		}
		return func(v uint32) uint32 {
			if int(v) >= len(tab) {
				return 0
			}
			return tab[v]
		}, nil
	}
	switch src.depth {
	case D1:
		return func(v uint32) uint32 { return 255 - 255*v }, nil
	case D2:
		return func(v uint32) uint32 { return v * 85 }, nil
	case D4:
		return func(v uint32) uint32 { return v * 17 }, nil
	case D8:
		return func(v uint32) uint32 { return v }, nil
	case D16:
		return func(v uint32) uint32 { return v >> 8 }, nil
	case D32:
		return func(v uint32) uint32 {
			r, g, b := RGBValues(v)
			return uint32(0.3*float64(r) + 0.5*float64(g) + 0.2*float64(b) + 0.5)
		}, nil
	}
	return nil, ErrBadDepth
}

// HasColor reports whether any colormap entry has unequal channels.
func (c *Colormap) HasColor() bool {
	for _, e := range c.entries {
		if e.R != e.G || e.G != e.B {
			return true
		}
	}
	return false
}

// RemoveColormap returns an uncolormapped copy of src. A colormap with
// only gray entries resolves to 8 bpp grayscale; one with color
// resolves to 32 bpp RGB. An image without a colormap is cloned.
func RemoveColormap(src *Pix) (*Pix, error) {
	if src == nil {
		return nil, ErrMissingBuffer
	}
	if src.cmap == nil {
		return src.Clone(), nil
	}
	cm := src.cmap

	if !cm.HasColor() {
		out, err := New(src.width, src.height, D8)
		if err != nil {
			return nil, err
		}
		d := int(src.depth)
		for y := 0; y < src.height; y++ {
			lines := src.row(y)
			lined := out.row(y)
			for x := 0; x < src.width; x++ {
				v := bitlow.GetPixel(lines, x, d)
				g, err := cm.GrayValue(int(v))
				if err != nil {
					g = 0
				}
				bitlow.SetByte(lined, x, uint32(g))
			}
		}
		return out, nil
	}

	out, err := New(src.width, src.height, D32)
	if err != nil {
		return nil, err
	}
	d := int(src.depth)
	for y := 0; y < src.height; y++ {
		lines := src.row(y)
		lined := out.row(y)
		for x := 0; x < src.width; x++ {
			v := bitlow.GetPixel(lines, x, d)
			e, err := cm.Color(int(v))
			if err != nil {
				e = RGB{}
			}
			lined[x] = ComposeRGB(e.R, e.G, e.B)
		}
	}
	return out, nil
}
