package pix

import "github.com/gopix/pix/internal/bitlow"

// Boolean raster operations combine two images of equal depth, aligned
// at the upper-left corner. When the sizes differ the operation covers
// the intersection, logs a warning, and leaves the rest of the
// destination untouched; the result always has the first operand's
// dimensions. Operands may alias each other: op(p, p) is well defined.
//
// Each operation comes in three forms: Op returns a new image,
// OpInPlace mutates the receiver, and OpInto writes into an existing
// destination, reshaping it to the receiver's geometry.

// boolOp selects the word combination rule in combine.
type boolOp int

const (
	opOr boolOp = iota
	opAnd
	opXor
	opSubtract    // dst & ^src
	opSubtractRev // ^dst & src, for subtracting into the subtrahend
)

// Invert returns a new image with every bit of every pixel flipped.
// For 1 bpp this exchanges foreground and background.
func (p *Pix) Invert() *Pix {
	d := p.Clone()
	d.InvertInPlace()
	return d
}

// InvertInPlace flips every bit of every pixel. Pad bits are untouched.
func (p *Pix) InvertInPlace() {
	linebits := p.width * int(p.depth)
	fullwords := linebits / 32
	endbits := linebits & 31
	endmask := bitlow.EndMask(endbits)
	for y := 0; y < p.height; y++ {
		line := p.row(y)
		for j := 0; j < fullwords; j++ {
			line[j] = ^line[j]
		}
		if endbits > 0 {
			line[fullwords] ^= endmask
		}
	}
}

// InvertInto writes the inversion of p into dst.
func (p *Pix) InvertInto(dst *Pix) error {
	if dst == nil {
		return ErrMissingBuffer
	}
	if dst != p {
		if err := p.CopyInto(dst); err != nil {
			return err
		}
	}
	dst.InvertInPlace()
	return nil
}

// Or returns a new image holding the union p | s.
func (p *Pix) Or(s *Pix) (*Pix, error) {
	return p.binaryNew(s, opOr)
}

// OrInPlace computes p |= s.
func (p *Pix) OrInPlace(s *Pix) error {
	return p.binaryInPlace(s, opOr)
}

// OrInto writes p | s into dst.
func (p *Pix) OrInto(dst, s *Pix) error {
	return p.binaryInto(dst, s, opOr)
}

// And returns a new image holding the intersection p & s.
func (p *Pix) And(s *Pix) (*Pix, error) {
	return p.binaryNew(s, opAnd)
}

// AndInPlace computes p &= s.
func (p *Pix) AndInPlace(s *Pix) error {
	return p.binaryInPlace(s, opAnd)
}

// AndInto writes p & s into dst.
func (p *Pix) AndInto(dst, s *Pix) error {
	return p.binaryInto(dst, s, opAnd)
}

// Xor returns a new image holding p ^ s.
func (p *Pix) Xor(s *Pix) (*Pix, error) {
	return p.binaryNew(s, opXor)
}

// XorInPlace computes p ^= s.
func (p *Pix) XorInPlace(s *Pix) error {
	return p.binaryInPlace(s, opXor)
}

// XorInto writes p ^ s into dst.
func (p *Pix) XorInto(dst, s *Pix) error {
	return p.binaryInto(dst, s, opXor)
}

// Subtract returns a new image holding the set difference p & ^s.
func (p *Pix) Subtract(s *Pix) (*Pix, error) {
	return p.binaryNew(s, opSubtract)
}

// SubtractInPlace computes p &= ^s.
func (p *Pix) SubtractInPlace(s *Pix) error {
	return p.binaryInPlace(s, opSubtract)
}

// SubtractInto writes p & ^s into dst. dst may be the subtrahend s; in
// that case the reversed-operand form ^dst & p is used so the
// subtrahend is not corrupted mid-scan.
func (p *Pix) SubtractInto(dst, s *Pix) error {
	return p.binaryInto(dst, s, opSubtract)
}

// validateOperand checks the shared preconditions of the boolean ops.
func (p *Pix) validateOperand(s *Pix) error {
	if s == nil {
		return ErrMissingBuffer
	}
	if p.depth != s.depth {
		return ErrDepthMismatch
	}
	return nil
}

func (p *Pix) binaryNew(s *Pix, op boolOp) (*Pix, error) {
	if err := p.validateOperand(s); err != nil {
		return nil, err
	}
	d := p.Clone()
	d.combine(s, op)
	return d, nil
}

func (p *Pix) binaryInPlace(s *Pix, op boolOp) error {
	if err := p.validateOperand(s); err != nil {
		return err
	}
	p.combine(s, op)
	return nil
}

func (p *Pix) binaryInto(dst, s *Pix, op boolOp) error {
	if dst == nil {
		return ErrMissingBuffer
	}
	if err := p.validateOperand(s); err != nil {
		return err
	}

	switch {
	case dst == p:
		p.combine(s, op)
	case dst == s && p.sameSize(s):
		// Combining into the second operand without a copy. Or, and
		// and xor commute; subtract uses the reversed-operand form.
		if op == opSubtract {
			dst.combine(p, opSubtractRev)
		} else {
			dst.combine(p, op)
		}
	case dst == s:
		// Different sizes: the copy below would clobber s first.
		tmp := s.Clone()
		if err := p.CopyInto(dst); err != nil {
			return err
		}
		dst.combine(tmp, op)
	default:
		if err := p.CopyInto(dst); err != nil {
			return err
		}
		dst.combine(s, op)
	}
	return nil
}

// combine applies op word-wise over the intersection of dst and src,
// warning when the operand sizes differ.
func (dst *Pix) combine(src *Pix, op boolOp) {
	if !dst.sameSize(src) {
		Logger().Warn("size mismatch; combining over intersection",
			"dstW", dst.width, "dstH", dst.height,
			"srcW", src.width, "srcH", src.height)
	}
	dst.combineWords(src, op)
}

// combineWords applies op word-wise over the intersection of dst and
// src. Depths are already known to match. The partial word at the row
// end is masked so pixels past the intersection keep dst's content.
func (dst *Pix) combineWords(src *Pix, op boolOp) {
	w := min(dst.width, src.width)
	h := min(dst.height, src.height)

	var f func(d, s uint32) uint32
	switch op {
	case opOr:
		f = func(d, s uint32) uint32 { return d | s }
	case opAnd:
		f = func(d, s uint32) uint32 { return d & s }
	case opXor:
		f = func(d, s uint32) uint32 { return d ^ s }
	case opSubtract:
		f = func(d, s uint32) uint32 { return d & ^s }
	case opSubtractRev:
		f = func(d, s uint32) uint32 { return ^d & s }
	}

	linebits := w * int(dst.depth)
	fullwords := linebits / 32
	endbits := linebits & 31
	endmask := bitlow.EndMask(endbits)
	for y := 0; y < h; y++ {
		ld := dst.row(y)
		ls := src.row(y)
		for j := 0; j < fullwords; j++ {
			ld[j] = f(ld[j], ls[j])
		}
		if endbits > 0 {
			ld[fullwords] = ld[fullwords]&^endmask | f(ld[fullwords], ls[fullwords])&endmask
		}
	}
}
