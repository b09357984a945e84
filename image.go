package pix

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/gopix/pix/internal/bitlow"
)

// FromImage converts a decoded image to a packed Pix. The depth follows
// the source model:
//
//   - *image.Gray becomes 8 bpp.
//   - *image.Paletted with exactly two colors becomes 1 bpp, with the
//     darker color as foreground.
//   - anything else becomes 32 bpp RGB; alpha is dropped.
func FromImage(img image.Image) (*Pix, error) {
	if img == nil {
		return nil, ErrMissingBuffer
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch src := img.(type) {
	case *image.Gray:
		out, err := New(w, h, D8)
		if err != nil {
			return nil, err
		}
		for y := 0; y < h; y++ {
			lined := out.row(y)
			for x := 0; x < w; x++ {
				bitlow.SetByte(lined, x, uint32(src.GrayAt(b.Min.X+x, b.Min.Y+y).Y))
			}
		}
		return out, nil

	case *image.Paletted:
		if len(src.Palette) == 2 {
			out, err := New(w, h, D1)
			if err != nil {
				return nil, err
			}
			fg := uint8(0)
			if grayOf(src.Palette[1]) < grayOf(src.Palette[0]) {
				fg = 1
			}
			for y := 0; y < h; y++ {
				lined := out.row(y)
				for x := 0; x < w; x++ {
					if src.ColorIndexAt(b.Min.X+x, b.Min.Y+y) == fg {
						bitlow.SetBit(lined, x)
					}
				}
			}
			return out, nil
		}
	}

	out, err := New(w, h, D32)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		lined := out.row(y)
		for x := 0; x < w; x++ {
			cr, cg, cb, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			lined[x] = ComposeRGB(uint8(cr>>8), uint8(cg>>8), uint8(cb>>8))
		}
	}
	return out, nil
}

// FromImageScaled resamples img to w x h with a bilinear kernel and
// converts the result. Gray sources stay grayscale; everything else
// goes through 32 bpp RGB.
func FromImageScaled(img image.Image, w, h int) (*Pix, error) {
	if img == nil {
		return nil, ErrMissingBuffer
	}
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	r := image.Rect(0, 0, w, h)
	var dst xdraw.Image
	if _, ok := img.(*image.Gray); ok {
		dst = image.NewGray(r)
	} else {
		dst = image.NewRGBA(r)
	}
	xdraw.BiLinear.Scale(dst, r, img, img.Bounds(), xdraw.Src, nil)
	return FromImage(dst)
}

// ToImage converts p to a stdlib image. Images with a color colormap
// and 32 bpp images become *image.RGBA with opaque alpha; everything
// else resolves to 8-bit gray the way ConvertTo8 does.
func (p *Pix) ToImage() image.Image {
	r := image.Rect(0, 0, p.width, p.height)

	if p.cmap != nil && p.cmap.HasColor() {
		out := image.NewRGBA(r)
		d := int(p.depth)
		for y := 0; y < p.height; y++ {
			lines := p.row(y)
			for x := 0; x < p.width; x++ {
				v := bitlow.GetPixel(lines, x, d)
				e, err := p.cmap.Color(int(v))
				if err != nil {
					e = RGB{}
				}
				out.SetRGBA(x, y, color.RGBA{R: e.R, G: e.G, B: e.B, A: 255})
			}
		}
		return out
	}

	if p.depth == D32 {
		out := image.NewRGBA(r)
		for y := 0; y < p.height; y++ {
			lines := p.row(y)
			for x := 0; x < p.width; x++ {
				cr, cg, cb := RGBValues(lines[x])
				out.SetRGBA(x, y, color.RGBA{R: cr, G: cg, B: cb, A: 255})
			}
		}
		return out
	}

	out := image.NewGray(r)
	grayFor, err := grayLookup(p)
	if err != nil {
		return out
	}
	d := int(p.depth)
	for y := 0; y < p.height; y++ {
		lines := p.row(y)
		for x := 0; x < p.width; x++ {
			v := grayFor(bitlow.GetPixel(lines, x, d))
			out.SetGray(x, y, color.Gray{Y: uint8(v)})
		}
	}
	return out
}

// grayOf returns the 8-bit luminance of a color, using the same
// channel weights as the colormap gray resolution.
func grayOf(c color.Color) uint32 {
	cr, cg, cb, _ := c.RGBA()
	return uint32(0.3*float64(cr>>8) + 0.5*float64(cg>>8) + 0.2*float64(cb>>8) + 0.5)
}
