package pix

import (
	"github.com/gopix/pix/internal/bitlow"
)

// Pix is a packed raster image.
//
// Pixel data lives in a []uint32 with wpl (words per line) words per row
// and pixels packed MSB-first within each word. Each row therefore starts
// on a 32-bit boundary; the bits past the last pixel of a row are pad
// bits with unspecified content.
//
// Thread safety: a Pix is safe for concurrent read access. Operations
// that write require external synchronization.
type Pix struct {
	width  int
	height int
	depth  Depth
	wpl    int
	data   []uint32
	cmap   *Colormap
}

// New creates a zeroed image with the given dimensions and depth.
func New(w, h int, d Depth) (*Pix, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !d.IsValid() {
		return nil, ErrBadDepth
	}
	wpl := d.WordsPerLine(w)
	return &Pix{
		width:  w,
		height: h,
		depth:  d,
		wpl:    wpl,
		data:   make([]uint32, wpl*h),
	}, nil
}

// NewTemplate creates a zeroed image with the same dimensions, depth and
// colormap as src.
func NewTemplate(src *Pix) (*Pix, error) {
	if src == nil {
		return nil, ErrMissingBuffer
	}
	p, err := New(src.width, src.height, src.depth)
	if err != nil {
		return nil, err
	}
	p.cmap = src.cmap.Clone()
	return p, nil
}

// FromRaw wraps an existing word slice as an image without copying.
// The slice must hold at least WordsPerLine(w) * h words. The caller
// keeps ownership of the backing array.
func FromRaw(data []uint32, w, h int, d Depth) (*Pix, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !d.IsValid() {
		return nil, ErrBadDepth
	}
	wpl := d.WordsPerLine(w)
	if len(data) < wpl*h {
		return nil, ErrDataTooSmall
	}
	return &Pix{
		width:  w,
		height: h,
		depth:  d,
		wpl:    wpl,
		data:   data,
	}, nil
}

// Width returns the image width in pixels.
func (p *Pix) Width() int { return p.width }

// Height returns the image height in pixels.
func (p *Pix) Height() int { return p.height }

// Depth returns the image depth in bits per pixel.
func (p *Pix) Depth() Depth { return p.depth }

// Wpl returns the number of 32-bit words per row.
func (p *Pix) Wpl() int { return p.wpl }

// Data returns the backing word slice. Rows are wpl words apart.
func (p *Pix) Data() []uint32 { return p.data }

// Colormap returns the image's colormap, or nil.
func (p *Pix) Colormap() *Colormap { return p.cmap }

// SetColormap attaches a colormap. The colormap depth must match the
// image depth; a nil colormap detaches.
func (p *Pix) SetColormap(cm *Colormap) error {
	if cm != nil && cm.Depth() != p.depth {
		return ErrDepthMismatch
	}
	p.cmap = cm
	return nil
}

// row returns the words of row y. Callers guarantee 0 <= y < height.
func (p *Pix) row(y int) []uint32 {
	return p.data[y*p.wpl : y*p.wpl+p.wpl]
}

// sameSize reports whether two images have equal width and height.
func (p *Pix) sameSize(q *Pix) bool {
	return p.width == q.width && p.height == q.height
}

// GetPixel returns the value of the pixel at (x, y).
func (p *Pix) GetPixel(x, y int) (uint32, error) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, ErrOutOfBounds
	}
	return bitlow.GetPixel(p.row(y), x, int(p.depth)), nil
}

// SetPixel sets the pixel at (x, y). Bits of val above the depth are
// masked off; for 32 bpp the full word is stored.
func (p *Pix) SetPixel(x, y int, val uint32) error {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return ErrOutOfBounds
	}
	bitlow.SetPixel(p.row(y), x, int(p.depth), val)
	return nil
}

// ClearPixel sets the pixel at (x, y) to 0.
func (p *Pix) ClearPixel(x, y int) error {
	return p.SetPixel(x, y, 0)
}

// FlipPixel inverts every bit of the pixel at (x, y).
func (p *Pix) FlipPixel(x, y int) error {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return ErrOutOfBounds
	}
	line := p.row(y)
	val := bitlow.GetPixel(line, x, int(p.depth))
	if p.depth == D32 {
		bitlow.SetPixel(line, x, 32, ^val)
	} else {
		bitlow.SetPixel(line, x, int(p.depth), val^(uint32(1)<<uint(p.depth)-1))
	}
	return nil
}

// ClearAll sets every pixel to 0. Pad bits are untouched.
func (p *Pix) ClearAll() {
	p.fillRows(0)
}

// SetAll sets every pixel to all ones. Pad bits are untouched.
func (p *Pix) SetAll() {
	p.fillRows(0xffffffff)
}

// fillRows writes word to the image bits of every row, masking the
// partial word at the row end so pad bits keep their value.
func (p *Pix) fillRows(word uint32) {
	fullwords := p.width * int(p.depth) / 32
	endbits := bitlow.EndBits(p.width, int(p.depth))
	endmask := bitlow.EndMask(endbits)
	for y := 0; y < p.height; y++ {
		line := p.row(y)
		for j := 0; j < fullwords; j++ {
			line[j] = word
		}
		if endbits > 0 {
			line[fullwords] = line[fullwords]&^endmask | word&endmask
		}
	}
}

// SetAllArbitrary sets every pixel to val. Values above the depth's
// maximum are clamped with a warning. All words are written, including
// pad bits, which receive the tiled pattern.
func (p *Pix) SetAllArbitrary(val uint32) {
	maxval := uint32(0xffffffff)
	if p.depth != D32 {
		maxval = uint32(1)<<uint(p.depth) - 1
	}
	if val > maxval {
		Logger().Warn("pixel value clamped", "val", val, "max", maxval)
		val = maxval
	}

	// Build the word to tile with.
	var wordval uint32
	npix := 32 / int(p.depth)
	for j := 0; j < npix; j++ {
		wordval |= val << uint(j*int(p.depth))
	}

	for y := 0; y < p.height; y++ {
		line := p.row(y)
		for j := range line {
			line[j] = wordval
		}
	}
}

// SetPadBits sets the pad bits at the end of every row to 0 or 1.
// Boundary-sensitive algorithms call this before scanning whole words.
// For 32 bpp there are no pad bits and this is a no-op.
func (p *Pix) SetPadBits(val int) {
	if p.depth == D32 {
		return
	}
	endbits := 32 - (p.width*int(p.depth))%32
	if endbits == 32 {
		return
	}
	fullwords := p.width * int(p.depth) / 32
	mask := bitlow.RMask(endbits)
	for y := 0; y < p.height; y++ {
		line := p.row(y)
		if val == 0 {
			line[fullwords] &= ^mask
		} else {
			line[fullwords] |= mask
		}
	}
}

// SetPadBitsBand sets the pad bits of the rows in [by, by+bh) to 0 or 1.
// The band is clipped to the image. For 32 bpp this is a no-op.
func (p *Pix) SetPadBitsBand(by, bh, val int) {
	if p.depth == D32 {
		return
	}
	if by < 0 {
		bh += by
		by = 0
	}
	if bh <= 0 || by >= p.height {
		return
	}
	if by+bh > p.height {
		bh = p.height - by
	}
	endbits := 32 - (p.width*int(p.depth))%32
	if endbits == 32 {
		return
	}
	fullwords := p.width * int(p.depth) / 32
	mask := bitlow.RMask(endbits)
	for y := by; y < by+bh; y++ {
		line := p.row(y)
		if val == 0 {
			line[fullwords] &= ^mask
		} else {
			line[fullwords] |= mask
		}
	}
}
