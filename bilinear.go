package pix

import (
	"math"

	"github.com/gopix/pix/internal/bitlow"
)

// Bilinear warping maps a quadrilateral onto another with the transform
//
//	x' = c0*x + c1*y + c2*x*y + c3
//	y' = c4*x + c5*y + c6*x*y + c7
//
// fixed by four point correspondences. Warps run backwards: the
// coefficients are computed from destination points to source points,
// and each destination pixel pulls its value from the mapped source
// location. Destination pixels that map outside the source keep the
// fill color.

// FillColor selects the background for pixels a warp leaves uncovered.
type FillColor int

const (
	FillWhite FillColor = iota
	FillBlack
)

// BilinearCoeffs holds the eight transform coefficients.
type BilinearCoeffs [8]float64

// BilinearXformCoeffs computes the coefficients sending each from[i]
// to to[i]. Four point pairs give eight equations in the eight
// coefficients; a degenerate arrangement (repeated points, collinear
// configurations) makes the system singular.
func BilinearXformCoeffs(from, to [4]Point) (BilinearCoeffs, error) {
	var a [8][8]float64
	var b [8]float64
	for i := 0; i < 4; i++ {
		a[i][0] = from[i].X
		a[i][1] = from[i].Y
		a[i][2] = from[i].X * from[i].Y
		a[i][3] = 1
		b[i] = to[i].X
		a[i+4][4] = from[i].X
		a[i+4][5] = from[i].Y
		a[i+4][6] = a[i][2]
		a[i+4][7] = 1
		b[i+4] = to[i].Y
	}
	if err := solveLinear8(&a, &b); err != nil {
		return BilinearCoeffs{}, err
	}
	return BilinearCoeffs(b), nil
}

// solveLinear8 solves a*x = b by Gauss-Jordan elimination with partial
// pivoting, leaving the solution in b.
func solveLinear8(a *[8][8]float64, b *[8]float64) error {
	for col := 0; col < 8; col++ {
		piv := col
		for r := col + 1; r < 8; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[piv][col]) {
				piv = r
			}
		}
		if a[piv][col] == 0 {
			return ErrDegenerateTransform
		}
		if piv != col {
			a[piv], a[col] = a[col], a[piv]
			b[piv], b[col] = b[col], b[piv]
		}
		inv := 1 / a[col][col]
		for r := 0; r < 8; r++ {
			if r == col || a[r][col] == 0 {
				continue
			}
			f := a[r][col] * inv
			for k := col; k < 8; k++ {
				a[r][k] -= f * a[col][k]
			}
			b[r] -= f * b[col]
		}
		for k := col; k < 8; k++ {
			a[col][k] *= inv
		}
		b[col] *= inv
	}
	return nil
}

// Apply maps the point (x, y) through the transform.
func (c BilinearCoeffs) Apply(x, y float64) (float64, float64) {
	return c[0]*x + c[1]*y + c[2]*x*y + c[3],
		c[4]*x + c[5]*y + c[6]*x*y + c[7]
}

// ApplySampled maps (x, y) and rounds the result to pixel coordinates.
func (c BilinearCoeffs) ApplySampled(x, y int) (int, int) {
	fx, fy := c.Apply(float64(x), float64(y))
	return int(fx + 0.5), int(fy + 0.5)
}

// BilinearSampled warps the image so the quadrilateral over destPts
// shows the content at srcPts, sampling the nearest source pixel.
// Works at 1, 2, 4, 8 and 32 bpp and keeps the colormap.
func (p *Pix) BilinearSampled(destPts, srcPts [4]Point, fill FillColor) (*Pix, error) {
	switch p.depth {
	case D1, D2, D4, D8, D32:
	default:
		return nil, ErrBadDepth
	}
	if fill != FillWhite && fill != FillBlack {
		return nil, ErrBadFill
	}
	coeffs, err := BilinearXformCoeffs(destPts, srcPts)
	if err != nil {
		return nil, err
	}

	out, err := NewTemplate(p)
	if err != nil {
		return nil, err
	}
	white := fill == FillWhite
	if p.cmap != nil {
		idx, err := out.cmap.AddBlackOrWhite(white)
		if err != nil {
			return nil, err
		}
		out.SetAllArbitrary(uint32(idx))
	} else if white != (p.depth == D1) {
		// ON bits mean white above 1 bpp but black at 1 bpp; the
		// other fills are the zero a fresh image already holds.
		out.SetAll()
	}

	d := int(p.depth)
	for y := 0; y < p.height; y++ {
		lined := out.row(y)
		for x := 0; x < p.width; x++ {
			sx, sy := coeffs.ApplySampled(x, y)
			if sx < 0 || sy < 0 || sx >= p.width || sy >= p.height {
				continue
			}
			bitlow.SetPixel(lined, x, d, bitlow.GetPixel(p.row(sy), sx, d))
		}
	}
	return out, nil
}

// Bilinear warps the image with interpolated sampling. 1 bpp images
// use the sampled path; colormaps are removed and 2 and 4 bpp gray are
// promoted to 8 bpp first, so the result is 8 or 32 bpp.
func (p *Pix) Bilinear(destPts, srcPts [4]Point, fill FillColor) (*Pix, error) {
	if fill != FillWhite && fill != FillBlack {
		return nil, ErrBadFill
	}
	if p.depth == D1 {
		return p.BilinearSampled(destPts, srcPts, fill)
	}

	src := p
	if src.cmap != nil {
		var err error
		src, err = RemoveColormap(src)
		if err != nil {
			return nil, err
		}
	}
	if src.depth == D2 || src.depth == D4 {
		var err error
		src, err = ConvertTo8(src)
		if err != nil {
			return nil, err
		}
	}

	switch src.depth {
	case D8:
		var gray uint8
		if fill == FillWhite {
			gray = 255
		}
		return src.BilinearGray(destPts, srcPts, gray)
	case D32:
		var cval uint32
		if fill == FillWhite {
			cval = 0xffffff00
		}
		return src.BilinearColor(destPts, srcPts, cval)
	default:
		return nil, ErrBadDepth
	}
}

// BilinearGray warps an 8 bpp grayscale image with 2x2 interpolation
// in 1/16 pixel steps. Destination pixels whose source neighborhood
// falls outside the image get grayval.
func (p *Pix) BilinearGray(destPts, srcPts [4]Point, grayval uint8) (*Pix, error) {
	if p.depth != D8 {
		return nil, ErrBadDepth
	}
	if p.cmap != nil {
		return nil, ErrColormapped
	}
	coeffs, err := BilinearXformCoeffs(destPts, srcPts)
	if err != nil {
		return nil, err
	}

	out, err := New(p.width, p.height, D8)
	if err != nil {
		return nil, err
	}
	for y := 0; y < p.height; y++ {
		lined := out.row(y)
		for x := 0; x < p.width; x++ {
			fx, fy := coeffs.Apply(float64(x), float64(y))
			bitlow.SetByte(lined, x, p.interpolateGray(fx, fy, grayval))
		}
	}
	return out, nil
}

// interpolateGray samples the 2x2 neighborhood around the fractional
// point (x, y) with 1/16 pixel weights.
func (p *Pix) interpolateGray(x, y float64, fillval uint8) uint32 {
	if x < 0 || y < 0 || x > float64(p.width-2) || y > float64(p.height-2) {
		return uint32(fillval)
	}
	xpm := int(16*x + 0.5)
	ypm := int(16*y + 0.5)
	xp, xf := xpm>>4, xpm&15
	yp, yf := ypm>>4, ypm&15

	l0 := p.row(yp)
	l1 := p.row(yp + 1)
	v00 := (16 - xf) * (16 - yf) * int(bitlow.GetByte(l0, xp))
	v10 := xf * (16 - yf) * int(bitlow.GetByte(l0, xp+1))
	v01 := (16 - xf) * yf * int(bitlow.GetByte(l1, xp))
	v11 := xf * yf * int(bitlow.GetByte(l1, xp+1))
	return uint32((v00 + v10 + v01 + v11 + 128) / 256)
}

// BilinearColor warps a 32 bpp image, interpolating each color sample
// separately. Destination pixels whose source neighborhood falls
// outside the image get colorval.
func (p *Pix) BilinearColor(destPts, srcPts [4]Point, colorval uint32) (*Pix, error) {
	if p.depth != D32 {
		return nil, ErrBadDepth
	}
	coeffs, err := BilinearXformCoeffs(destPts, srcPts)
	if err != nil {
		return nil, err
	}

	out, err := New(p.width, p.height, D32)
	if err != nil {
		return nil, err
	}
	for y := 0; y < p.height; y++ {
		lined := out.row(y)
		for x := 0; x < p.width; x++ {
			fx, fy := coeffs.Apply(float64(x), float64(y))
			lined[x] = p.interpolateColor(fx, fy, colorval)
		}
	}
	return out, nil
}

func (p *Pix) interpolateColor(x, y float64, fillval uint32) uint32 {
	if x < 0 || y < 0 || x > float64(p.width-2) || y > float64(p.height-2) {
		return fillval
	}
	xpm := int(16*x + 0.5)
	ypm := int(16*y + 0.5)
	xp, xf := xpm>>4, xpm&15
	yp, yf := ypm>>4, ypm&15

	l0 := p.row(yp)
	l1 := p.row(yp + 1)
	w00 := (16 - xf) * (16 - yf)
	w10 := xf * (16 - yf)
	w01 := (16 - xf) * yf
	w11 := xf * yf
	r00, g00, b00 := RGBValues(l0[xp])
	r10, g10, b10 := RGBValues(l0[xp+1])
	r01, g01, b01 := RGBValues(l1[xp])
	r11, g11, b11 := RGBValues(l1[xp+1])
	r := (w00*int(r00) + w10*int(r10) + w01*int(r01) + w11*int(r11) + 128) / 256
	g := (w00*int(g00) + w10*int(g10) + w01*int(g01) + w11*int(g11) + 128) / 256
	b := (w00*int(b00) + w10*int(b10) + w01*int(b01) + w11*int(b11) + 128) / 256
	return ComposeRGB(uint8(r), uint8(g), uint8(b))
}
