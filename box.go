package pix

// Box is an integer rectangle with upper-left corner (X, Y).
// A Box is valid when W and H are positive.
type Box struct {
	X, Y, W, H int
}

// Rect is a convenience function to create a Box.
func Rect(x, y, w, h int) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// IsValid returns true if the box has positive area.
func (b Box) IsValid() bool {
	return b.W > 0 && b.H > 0
}

// Intersect returns the intersection of two boxes. The second result is
// false if the boxes do not overlap.
func (b Box) Intersect(c Box) (Box, bool) {
	x := max(b.X, c.X)
	y := max(b.Y, c.Y)
	r := min(b.X+b.W, c.X+c.W)
	bt := min(b.Y+b.H, c.Y+c.H)
	out := Box{X: x, Y: y, W: r - x, H: bt - y}
	return out, out.IsValid()
}

// ClipToRaster clips the box to the raster [0,w) x [0,h). The second
// result is false if nothing remains.
func (b Box) ClipToRaster(w, h int) (Box, bool) {
	return b.Intersect(Box{X: 0, Y: 0, W: w, H: h})
}

// Contains reports whether the point (x, y) lies inside the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}
