package pix

import (
	"github.com/gopix/pix/internal/bitlow"
	"github.com/gopix/pix/internal/scratch"
)

// Power-of-two scaling for 1 bpp images. Expansion replicates pixels
// through lookup tables that turn one stored unit into a full output
// word; reduction combines 2x2 blocks either by plain subsampling or
// by a rank threshold on the block's ON count.

// expand tables, built once. Each maps a source unit to its replicated
// image: a byte to 16 bits at x2, a byte to 32 bits at x4, a nibble to
// 32 bits at x8 and a dibit to 32 bits at x16.
var (
	expandTab2  [256]uint32
	expandTab4  [256]uint32
	expandTab8  [16]uint32
	expandTab16 [4]uint32
)

func init() {
	for i := 0; i < 256; i++ {
		for k := 0; k < 8; k++ {
			if i>>uint(k)&1 != 0 {
				expandTab2[i] |= 0x3 << uint(2*k)
				expandTab4[i] |= 0xf << uint(4*k)
			}
		}
	}
	for i := 0; i < 16; i++ {
		for k := 0; k < 4; k++ {
			if i>>uint(k)&1 != 0 {
				expandTab8[i] |= 0xff << uint(8*k)
			}
		}
	}
	for i := 0; i < 4; i++ {
		for k := 0; k < 2; k++ {
			if i>>uint(k)&1 != 0 {
				expandTab16[i] |= 0xffff << uint(16*k)
			}
		}
	}
}

// ExpandBinary replicates each pixel of a 1 bpp image into a factor x
// factor block. The factor must be 1, 2, 4, 8 or 16.
func (p *Pix) ExpandBinary(factor int) (*Pix, error) {
	if p.depth != D1 {
		return nil, ErrBadDepth
	}
	if factor == 1 {
		return p.Clone(), nil
	}
	if factor != 2 && factor != 4 && factor != 8 && factor != 16 {
		return nil, ErrBadFactor
	}

	out, err := New(factor*p.width, factor*p.height, D1)
	if err != nil {
		return nil, err
	}
	for y := 0; y < p.height; y++ {
		lines := p.row(y)
		lined := out.row(factor * y)
		switch factor {
		case 2:
			n := (p.width + 7) / 8
			for j := 0; j < n; j++ {
				bitlow.SetTwoBytes(lined, j, expandTab2[bitlow.GetByte(lines, j)])
			}
		case 4:
			n := (p.width + 7) / 8
			for j := 0; j < n; j++ {
				lined[j] = expandTab4[bitlow.GetByte(lines, j)]
			}
		case 8:
			n := (p.width + 3) / 4
			for j := 0; j < n; j++ {
				lined[j] = expandTab8[bitlow.GetQbit(lines, j)]
			}
		default:
			n := (p.width + 1) / 2
			for j := 0; j < n; j++ {
				lined[j] = expandTab16[bitlow.GetDibit(lines, j)]
			}
		}
		for k := 1; k < factor; k++ {
			copy(out.row(factor*y+k), lined)
		}
	}
	out.SetPadBits(0)
	return out, nil
}

// ReduceBinary2 halves a 1 bpp image by subsampling: output pixel
// (x, y) is input pixel (2x, 2y). Both dimensions must be at least 2.
func (p *Pix) ReduceBinary2() (*Pix, error) {
	return p.reduce2(0)
}

// ReduceRankBinary2 halves a 1 bpp image with a rank filter: an output
// pixel is ON when its 2x2 input block contains at least level ON
// pixels. Level 1 is a union, level 4 an intersection.
func (p *Pix) ReduceRankBinary2(level int) (*Pix, error) {
	if level < 1 || level > 4 {
		return nil, ErrBadFactor
	}
	return p.reduce2(level)
}

// reduce2 does the shared work. level 0 subsamples; levels 1..4 apply
// the rank filter. The two source rows are first combined column-wise,
// then each odd column is folded into its even neighbor, leaving the
// result on the even pixels that the subsampling table extracts.
func (p *Pix) reduce2(level int) (*Pix, error) {
	if p.depth != D1 {
		return nil, ErrBadDepth
	}
	if p.width < 2 || p.height < 2 {
		return nil, ErrInvalidDimensions
	}

	out, err := New(p.width/2, p.height/2, D1)
	if err != nil {
		return nil, err
	}
	combined := scratch.GetRow(p.wpl)
	defer scratch.PutRow(combined)
	for yd := 0; yd < out.height; yd++ {
		r1 := p.row(2 * yd)
		switch level {
		case 0:
			copy(combined, r1)
		case 1:
			r2 := p.row(2*yd + 1)
			for j := range combined {
				s := r1[j] | r2[j]
				combined[j] = s | s<<1
			}
		case 2:
			r2 := p.row(2*yd + 1)
			for j := range combined {
				and := r1[j] & r2[j]
				or := r1[j] | r2[j]
				combined[j] = and | and<<1 | or&(or<<1)
			}
		case 3:
			r2 := p.row(2*yd + 1)
			for j := range combined {
				and := r1[j] & r2[j]
				or := r1[j] | r2[j]
				combined[j] = and&(or<<1) | or&(and<<1)
			}
		case 4:
			r2 := p.row(2*yd + 1)
			for j := range combined {
				s := r1[j] & r2[j]
				combined[j] = s & s<<1
			}
		}

		lined := out.row(yd)
		for jd := 0; jd < out.wpl; jd++ {
			hi := reduceHalf(combined[2*jd])
			var lo uint32
			if 2*jd+1 < p.wpl {
				lo = reduceHalf(combined[2*jd+1])
			}
			lined[jd] = hi<<16 | lo
		}
	}
	out.SetPadBits(0)
	return out, nil
}

// reduceHalf gathers the sixteen even pixels of a source word into the
// low half of the result, preserving order.
func reduceHalf(w uint32) uint32 {
	return uint32(bitlow.Subsample2[w>>24])<<12 |
		uint32(bitlow.Subsample2[w>>16&0xff])<<8 |
		uint32(bitlow.Subsample2[w>>8&0xff])<<4 |
		uint32(bitlow.Subsample2[w&0xff])
}

// ReduceRankBinaryCascade applies up to four successive 2x rank
// reductions with the given levels. A level of 0 ends the cascade, so
// ReduceRankBinaryCascade(4, 1, 0, 0) reduces 4x. A first level of 0
// returns a clone with a warning; levels outside [0, 4] beyond the
// first are truncated to 0 with a warning.
func (p *Pix) ReduceRankBinaryCascade(level1, level2, level3, level4 int) (*Pix, error) {
	if p.depth != D1 {
		return nil, ErrBadDepth
	}
	if level1 > 4 {
		return nil, ErrBadFactor
	}
	if level1 <= 0 {
		Logger().Warn("cascade with no levels; returning a copy")
		return p.Clone(), nil
	}

	levels := []int{level1, level2, level3, level4}
	for i := 1; i < len(levels); i++ {
		if levels[i] < 0 || levels[i] > 4 {
			Logger().Warn("cascade level out of range; stopping there",
				"position", i+1, "level", levels[i])
			levels[i] = 0
		}
	}

	cur := p
	for _, lev := range levels {
		if lev == 0 {
			break
		}
		next, err := cur.ReduceRankBinary2(lev)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
