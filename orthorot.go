package pix

import (
	"github.com/gopix/pix/internal/bitlow"
	"github.com/gopix/pix/internal/scratch"
)

// Orthogonal rotations and reflections. All work at any depth and
// preserve the colormap. The reflections follow the usual three-form
// scheme; Rotate90 swaps the dimensions and so always allocates.

// Rotation selects the turn direction for Rotate90.
type Rotation int

const (
	RotateCW  Rotation = 1
	RotateCCW Rotation = -1
)

// FlipLR returns a new image mirrored about the vertical axis.
func (p *Pix) FlipLR() *Pix {
	d := p.Clone()
	d.FlipLRInPlace()
	return d
}

// FlipLRInPlace mirrors the image about the vertical axis.
func (p *Pix) FlipLRInPlace() {
	buf := scratch.GetRow(p.wpl)
	defer scratch.PutRow(buf)

	d := int(p.depth)
	switch {
	case d < 8:
		var tab *[256]uint8
		switch p.depth {
		case D1:
			tab = &bitlow.ReverseByte1
		case D2:
			tab = &bitlow.ReverseByte2
		default:
			tab = &bitlow.ReverseByte4
		}
		// Right-justify the row to a byte boundary, then emit the
		// bytes in reverse order with the pixels inside each byte
		// reversed. The shift feeds in zeros, so the pad bits of the
		// result are clean.
		databpl := (p.width*d + 7) / 8
		shift := uint((8 - p.width*d%8) % 8)
		for y := 0; y < p.height; y++ {
			line := p.row(y)
			var carry uint32
			for j := 0; j < p.wpl; j++ {
				v := line[j]
				buf[j] = v>>shift | carry
				carry = v << (32 - shift)
			}
			for j := 0; j < databpl; j++ {
				bitlow.SetByte(line, j, uint32(tab[bitlow.GetByte(buf, databpl-1-j)]))
			}
		}
	case d == 8:
		for y := 0; y < p.height; y++ {
			line := p.row(y)
			copy(buf, line)
			for j := 0; j < p.width; j++ {
				bitlow.SetByte(line, j, bitlow.GetByte(buf, p.width-1-j))
			}
		}
	case d == 16:
		for y := 0; y < p.height; y++ {
			line := p.row(y)
			copy(buf, line)
			for j := 0; j < p.width; j++ {
				bitlow.SetTwoBytes(line, j, bitlow.GetTwoBytes(buf, p.width-1-j))
			}
		}
	default:
		for y := 0; y < p.height; y++ {
			line := p.row(y)
			copy(buf, line)
			for j := 0; j < p.width; j++ {
				line[j] = buf[p.width-1-j]
			}
		}
	}
	if d >= 8 {
		p.SetPadBits(0)
	}
}

// FlipLRInto writes the left-right mirror of p into dst.
func (p *Pix) FlipLRInto(dst *Pix) error {
	if dst == nil {
		return ErrMissingBuffer
	}
	if dst != p {
		if err := p.CopyInto(dst); err != nil {
			return err
		}
	}
	dst.FlipLRInPlace()
	return nil
}

// FlipTB returns a new image mirrored about the horizontal axis.
func (p *Pix) FlipTB() *Pix {
	d := p.Clone()
	d.FlipTBInPlace()
	return d
}

// FlipTBInPlace mirrors the image about the horizontal axis.
func (p *Pix) FlipTBInPlace() {
	buf := scratch.GetRow(p.wpl)
	defer scratch.PutRow(buf)
	for y := 0; y < p.height/2; y++ {
		top := p.row(y)
		bot := p.row(p.height - 1 - y)
		copy(buf, top)
		copy(top, bot)
		copy(bot, buf)
	}
}

// FlipTBInto writes the top-bottom mirror of p into dst.
func (p *Pix) FlipTBInto(dst *Pix) error {
	if dst == nil {
		return ErrMissingBuffer
	}
	if dst != p {
		if err := p.CopyInto(dst); err != nil {
			return err
		}
	}
	dst.FlipTBInPlace()
	return nil
}

// Rotate180 returns a new image turned by a half revolution.
func (p *Pix) Rotate180() *Pix {
	d := p.Clone()
	d.Rotate180InPlace()
	return d
}

// Rotate180InPlace turns the image by a half revolution.
func (p *Pix) Rotate180InPlace() {
	p.FlipLRInPlace()
	p.FlipTBInPlace()
}

// Rotate180Into writes the half-revolution rotation of p into dst.
func (p *Pix) Rotate180Into(dst *Pix) error {
	if dst == nil {
		return ErrMissingBuffer
	}
	if dst != p {
		if err := p.CopyInto(dst); err != nil {
			return err
		}
	}
	dst.Rotate180InPlace()
	return nil
}

// Rotate90 returns a new image turned by a quarter revolution in the
// given direction. The result has the transposed dimensions.
func (p *Pix) Rotate90(dir Rotation) (*Pix, error) {
	if dir != RotateCW && dir != RotateCCW {
		return nil, ErrBadDirection
	}

	out, err := New(p.height, p.width, p.depth)
	if err != nil {
		return nil, err
	}
	out.cmap = p.cmap.Clone()

	d := int(p.depth)
	if dir == RotateCW {
		for y := 0; y < out.height; y++ {
			lined := out.row(y)
			for x := 0; x < out.width; x++ {
				lines := p.row(out.width - 1 - x)
				bitlow.SetPixel(lined, x, d, bitlow.GetPixel(lines, y, d))
			}
		}
	} else {
		for y := 0; y < out.height; y++ {
			lined := out.row(y)
			sx := out.height - 1 - y
			for x := 0; x < out.width; x++ {
				bitlow.SetPixel(lined, x, d, bitlow.GetPixel(p.row(x), sx, d))
			}
		}
	}
	return out, nil
}

// MirroredTiling fills a w x h image by tiling p so that adjacent
// tiles are mirror images of their neighbors. The tiling is seamless:
// every tile boundary joins two reflected copies, so pixel rows and
// columns continue smoothly across it.
func (p *Pix) MirroredTiling(w, h int) (*Pix, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	out, err := New(w, h, p.depth)
	if err != nil {
		return nil, err
	}
	out.cmap = p.cmap.Clone()

	var protos [2][2]*Pix
	protos[0][0] = p
	protos[0][1] = p.FlipLR()
	protos[1][0] = p.FlipTB()
	protos[1][1] = protos[0][1].FlipTB()

	nx := (w + p.width - 1) / p.width
	ny := (h + p.height - 1) / p.height
	for i := 0; i < ny; i++ {
		th := min(p.height, h-i*p.height)
		for j := 0; j < nx; j++ {
			tw := min(p.width, w-j*p.width)
			copyRegion(out, j*p.width, i*p.height, protos[i%2][j%2], 0, 0, tw, th)
		}
	}
	return out, nil
}
