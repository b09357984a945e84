package pix

// Line, box and polyline rendering. Shapes are built as explicit point
// lists by integer DDA walks and then stamped onto the image; points
// falling outside the image are clipped, so shapes may extend past the
// edges. Rendering is direct pixel writing with no blending or
// anti-aliasing.

// IntPoint is a point on the pixel grid.
type IntPoint struct {
	X, Y int
}

// PixelOp selects how rendering touches a pixel: clearing all its
// bits, setting all its bits, or flipping them. For 1 bpp a set pixel
// is black; above 1 bpp all-ones is white.
type PixelOp int

const (
	PixelClear PixelOp = iota
	PixelSet
	PixelFlip
)

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}

// GenerateLinePts returns the pixels on the line from (x1, y1) to
// (x2, y2), walking the longer axis one pixel at a time and rounding
// the other coordinate.
func GenerateLinePts(x1, y1, x2, y2 int) []IntPoint {
	if x1 == x2 && y1 == y2 {
		return []IntPoint{{x1, y1}}
	}

	var pts []IntPoint
	if abs(x2-x1) >= abs(y2-y1) {
		npts := abs(x2-x1) + 1
		s := sign(x2 - x1)
		slope := float64(s*(y2-y1)) / float64(x2-x1)
		pts = make([]IntPoint, npts)
		for i := 0; i < npts; i++ {
			pts[i] = IntPoint{
				X: x1 + s*i,
				Y: int(float64(y1) + float64(i)*slope + 0.5),
			}
		}
	} else {
		npts := abs(y2-y1) + 1
		s := sign(y2 - y1)
		slope := float64(s*(x2-x1)) / float64(y2-y1)
		pts = make([]IntPoint, npts)
		for i := 0; i < npts; i++ {
			pts[i] = IntPoint{
				X: int(float64(x1) + float64(i)*slope + 0.5),
				Y: y1 + s*i,
			}
		}
	}
	return pts
}

// GenerateWideLinePts returns the pixels of a line of the given
// thickness, built from parallel single-pixel lines placed
// alternately on either side of the center.
func GenerateWideLinePts(x1, y1, x2, y2, width int) []IntPoint {
	if width < 1 {
		Logger().Warn("line width raised to 1", "width", width)
		width = 1
	}

	pts := GenerateLinePts(x1, y1, x2, y2)
	if width == 1 {
		return pts
	}
	horizontal := abs(x1-x2) > abs(y1-y2)
	for i := 1; i < width; i++ {
		off := (i + 1) / 2
		if i&1 == 1 {
			off = -off
		}
		if horizontal {
			pts = append(pts, GenerateLinePts(x1, y1+off, x2, y2+off)...)
		} else {
			pts = append(pts, GenerateLinePts(x1+off, y1, x2+off, y2)...)
		}
	}
	return pts
}

// GenerateBoxPts returns the pixels of a box outline of the given line
// thickness. The sides are laid out so that the wide lines do not
// overlap at the corners.
func GenerateBoxPts(box Box, width int) []IntPoint {
	x, y, w, h := box.X, box.Y, box.W, box.H
	w2 := width / 2

	var pts []IntPoint
	if width&1 == 1 {
		pts = append(pts, GenerateWideLinePts(x-w2, y, x+w-1+w2, y, width)...)
		pts = append(pts, GenerateWideLinePts(x-w2, y+h-1, x+w-1+w2, y+h-1, width)...)
		pts = append(pts, GenerateWideLinePts(x, y+1+w2, x, y+h-2-w2, width)...)
		pts = append(pts, GenerateWideLinePts(x+w-1, y+1+w2, x+w-1, y+h-2-w2, width)...)
	} else {
		pts = append(pts, GenerateWideLinePts(x-w2, y, x+w-2+w2, y, width)...)
		pts = append(pts, GenerateWideLinePts(x-w2, y+h-1, x+w-2+w2, y+h-1, width)...)
		pts = append(pts, GenerateWideLinePts(x, y+w2, x, y+h-2-w2, width)...)
		pts = append(pts, GenerateWideLinePts(x+w-1, y+w2, x+w-1, y+h-2-w2, width)...)
	}
	return pts
}

// GeneratePolylinePts returns the pixels of a closed contour through
// the vertices. With removeDups each pixel appears once, which matters
// when rendering with PixelFlip: a pixel crossed twice would otherwise
// flip back.
func GeneratePolylinePts(vertices []IntPoint, width int, removeDups bool) []IntPoint {
	if len(vertices) < 2 {
		return nil
	}

	var pts []IntPoint
	prev := vertices[0]
	for _, v := range vertices[1:] {
		pts = append(pts, GenerateWideLinePts(prev.X, prev.Y, v.X, v.Y, width)...)
		prev = v
	}
	first := vertices[0]
	pts = append(pts, GenerateWideLinePts(prev.X, prev.Y, first.X, first.Y, width)...)

	if !removeDups {
		return pts
	}
	seen := make(map[IntPoint]struct{}, len(pts))
	uniq := pts[:0]
	for _, pt := range pts {
		if _, ok := seen[pt]; ok {
			continue
		}
		seen[pt] = struct{}{}
		uniq = append(uniq, pt)
	}
	return uniq
}

// RenderPoints applies op to every listed pixel, skipping points
// outside the image.
func (p *Pix) RenderPoints(pts []IntPoint, op PixelOp) error {
	if op != PixelSet && op != PixelClear && op != PixelFlip {
		return ErrBadPixelOp
	}

	var maxval uint32 = 1
	if op == PixelSet {
		switch p.depth {
		case D2:
			maxval = 0x3
		case D4:
			maxval = 0xf
		case D8:
			maxval = 0xff
		case D16:
			maxval = 0xffff
		case D32:
			maxval = 0xffffffff
		}
	}
	for _, pt := range pts {
		if pt.X < 0 || pt.X >= p.width || pt.Y < 0 || pt.Y >= p.height {
			continue
		}
		switch op {
		case PixelSet:
			p.SetPixel(pt.X, pt.Y, maxval)
		case PixelClear:
			p.ClearPixel(pt.X, pt.Y)
		case PixelFlip:
			p.FlipPixel(pt.X, pt.Y)
		}
	}
	return nil
}

// RenderPointsArb writes the color (r, g, b) onto every listed pixel,
// reduced to what the depth can hold: 1 bpp sets the pixels, gray
// depths store the average intensity, colormapped images get a new or
// matching palette entry. Points outside the image are skipped.
func (p *Pix) RenderPointsArb(pts []IntPoint, r, g, b uint8) error {
	switch p.depth {
	case D1, D2, D4, D8, D32:
	default:
		return ErrBadDepth
	}
	if p.depth == D1 {
		return p.RenderPoints(pts, PixelSet)
	}

	var val uint32
	if p.cmap != nil {
		idx, err := p.cmap.FindOrAdd(r, g, b)
		if err != nil {
			return err
		}
		val = uint32(idx)
	} else {
		switch p.depth {
		case D2:
			val = uint32((int(r) + int(g) + int(b)) / (3 * 64))
		case D4:
			val = uint32((int(r) + int(g) + int(b)) / (3 * 16))
		case D8:
			val = uint32((int(r) + int(g) + int(b)) / 3)
		default:
			val = ComposeRGB(r, g, b)
		}
	}

	for _, pt := range pts {
		if pt.X < 0 || pt.X >= p.width || pt.Y < 0 || pt.Y >= p.height {
			continue
		}
		p.SetPixel(pt.X, pt.Y, val)
	}
	return nil
}

// RenderLine draws a line of the given thickness with op.
func (p *Pix) RenderLine(x1, y1, x2, y2, width int, op PixelOp) error {
	return p.RenderPoints(GenerateWideLinePts(x1, y1, x2, y2, width), op)
}

// RenderLineArb draws a line of the given thickness in color (r, g, b).
func (p *Pix) RenderLineArb(x1, y1, x2, y2, width int, r, g, b uint8) error {
	return p.RenderPointsArb(GenerateWideLinePts(x1, y1, x2, y2, width), r, g, b)
}

// RenderBox draws a box outline with op.
func (p *Pix) RenderBox(box Box, width int, op PixelOp) error {
	return p.RenderPoints(GenerateBoxPts(box, width), op)
}

// RenderBoxArb draws a box outline in color (r, g, b).
func (p *Pix) RenderBoxArb(box Box, width int, r, g, b uint8) error {
	return p.RenderPointsArb(GenerateBoxPts(box, width), r, g, b)
}

// RenderPolyline draws a closed contour through the vertices with op.
func (p *Pix) RenderPolyline(vertices []IntPoint, width int, op PixelOp) error {
	return p.RenderPoints(GeneratePolylinePts(vertices, width, false), op)
}

// RenderPolylineArb draws a closed contour in color (r, g, b).
func (p *Pix) RenderPolylineArb(vertices []IntPoint, width int, r, g, b uint8) error {
	return p.RenderPointsArb(GeneratePolylinePts(vertices, width, false), r, g, b)
}
