package pix

import "errors"

// ErrColormapFull is returned when adding to a colormap with 2^depth entries.
var ErrColormapFull = errors.New("pix: colormap full")

// RGB is one colormap entry.
type RGB struct {
	R, G, B uint8
}

// Colormap maps pixel values of a 2, 4 or 8 bpp image to RGB colors.
// Pixel values index into the entry table.
type Colormap struct {
	depth   Depth
	entries []RGB
}

// NewColormap creates an empty colormap for images of the given depth.
// Only D2, D4 and D8 images carry colormaps.
func NewColormap(d Depth) (*Colormap, error) {
	switch d {
	case D2, D4, D8:
		return &Colormap{depth: d}, nil
	}
	return nil, ErrBadDepth
}

// Depth returns the pixel depth the colormap serves.
func (c *Colormap) Depth() Depth { return c.depth }

// Len returns the number of entries in use.
func (c *Colormap) Len() int { return len(c.entries) }

// Cap returns the maximum number of entries (2^depth).
func (c *Colormap) Cap() int { return 1 << uint(c.depth) }

// AddColor appends an entry and returns its index.
func (c *Colormap) AddColor(r, g, b uint8) (int, error) {
	if len(c.entries) >= c.Cap() {
		return 0, ErrColormapFull
	}
	c.entries = append(c.entries, RGB{R: r, G: g, B: b})
	return len(c.entries) - 1, nil
}

// Color returns the entry at index i.
func (c *Colormap) Color(i int) (RGB, error) {
	if i < 0 || i >= len(c.entries) {
		return RGB{}, ErrInvalidDimensions
	}
	return c.entries[i], nil
}

// GrayValue returns the weighted luminance of entry i, using the
// 0.3 / 0.5 / 0.2 channel weights.
func (c *Colormap) GrayValue(i int) (uint8, error) {
	e, err := c.Color(i)
	if err != nil {
		return 0, err
	}
	v := 0.3*float64(e.R) + 0.5*float64(e.G) + 0.2*float64(e.B) + 0.5
	return uint8(v), nil
}

// FindOrAdd returns the index of an exact-match entry, adding one if
// none exists and the colormap has room.
func (c *Colormap) FindOrAdd(r, g, b uint8) (int, error) {
	want := RGB{R: r, G: g, B: b}
	for i, e := range c.entries {
		if e == want {
			return i, nil
		}
	}
	return c.AddColor(r, g, b)
}

// AddBlackOrWhite returns the index of a black (white=false) or white
// (white=true) entry, adding one if the colormap has room. With a full
// colormap the nearest existing entry is returned.
func (c *Colormap) AddBlackOrWhite(white bool) (int, error) {
	var want RGB
	if white {
		want = RGB{255, 255, 255}
	}
	for i, e := range c.entries {
		if e == want {
			return i, nil
		}
	}
	if len(c.entries) < c.Cap() {
		idx, err := c.AddColor(want.R, want.G, want.B)
		return idx, err
	}
	return c.nearest(want), nil
}

// nearest returns the index of the entry closest to want in RGB space.
func (c *Colormap) nearest(want RGB) int {
	best, bestDist := 0, 1<<30
	for i, e := range c.entries {
		dr := int(e.R) - int(want.R)
		dg := int(e.G) - int(want.G)
		db := int(e.B) - int(want.B)
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Clone returns a deep copy of the colormap. A nil receiver clones to nil.
func (c *Colormap) Clone() *Colormap {
	if c == nil {
		return nil
	}
	out := &Colormap{depth: c.depth}
	out.entries = append(out.entries, c.entries...)
	return out
}
