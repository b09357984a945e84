package pix

import (
	"testing"
)

func TestAddBorderGeneral(t *testing.T) {
	src := mustNew(t, 4, 3, D8)
	fillSeq(t, src)

	out, err := src.AddBorderGeneral(1, 2, 3, 4, 9)
	if err != nil {
		t.Fatal(err)
	}
	if out.Width() != 7 || out.Height() != 10 {
		t.Fatalf("dims = %dx%d, want 7x10", out.Width(), out.Height())
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 7; x++ {
			got, _ := out.GetPixel(x, y)
			inX := x >= 1 && x < 5
			inY := y >= 3 && y < 6
			if inX && inY {
				want, _ := src.GetPixel(x-1, y-3)
				if got != want {
					t.Fatalf("interior pixel (%d, %d) = %d, want %d", x, y, got, want)
				}
			} else if got != 9 {
				t.Fatalf("border pixel (%d, %d) = %d, want 9", x, y, got)
			}
		}
	}

	if _, err := src.AddBorderGeneral(-1, 0, 0, 0, 0); err != ErrInvalidDimensions {
		t.Errorf("negative width error = %v, want ErrInvalidDimensions", err)
	}
}

func TestAddRemoveBorderRoundTrip(t *testing.T) {
	for _, d := range allDepths {
		t.Run(d.String(), func(t *testing.T) {
			src := mustNew(t, 11, 6, d)
			fillSeq(t, src)

			grown, err := src.AddBorder(2, 0)
			if err != nil {
				t.Fatal(err)
			}
			back, err := grown.RemoveBorder(2)
			if err != nil {
				t.Fatal(err)
			}
			if !back.Equal(src) {
				t.Error("round trip differs from source")
			}
		})
	}
}

func TestRemoveBorderGeneral(t *testing.T) {
	src := mustNew(t, 10, 10, D1)
	if _, err := src.RemoveBorderGeneral(5, 5, 0, 0); err != ErrInvalidDimensions {
		t.Errorf("empty interior error = %v, want ErrInvalidDimensions", err)
	}
	if _, err := src.RemoveBorderGeneral(0, -2, 0, 0); err != ErrInvalidDimensions {
		t.Errorf("negative width error = %v, want ErrInvalidDimensions", err)
	}

	out, err := src.RemoveBorderGeneral(1, 2, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	if out.Width() != 7 || out.Height() != 3 {
		t.Errorf("dims = %dx%d, want 7x3", out.Width(), out.Height())
	}
}

func TestSetOrClearBorder(t *testing.T) {
	t.Run("clear", func(t *testing.T) {
		p := mustNew(t, 8, 8, D1)
		p.SetAll()
		if err := p.SetOrClearBorder(2, 2, 2, 2, PixelClear); err != nil {
			t.Fatal(err)
		}
		n, err := p.CountPixels()
		if err != nil {
			t.Fatal(err)
		}
		if n != 16 {
			t.Errorf("ON count = %d, want 16", n)
		}
		if v, _ := p.GetPixel(2, 2); v != 1 {
			t.Error("interior pixel should stay ON")
		}
		if v, _ := p.GetPixel(1, 4); v != 0 {
			t.Error("border pixel should be OFF")
		}
	})

	t.Run("set at 4 bpp", func(t *testing.T) {
		p := mustNew(t, 9, 5, D4)
		if err := p.SetOrClearBorder(1, 1, 1, 1, PixelSet); err != nil {
			t.Fatal(err)
		}
		if v, _ := p.GetPixel(0, 0); v != 0xf {
			t.Errorf("border pixel = %x, want f", v)
		}
		if v, _ := p.GetPixel(4, 2); v != 0 {
			t.Errorf("interior pixel = %x, want 0", v)
		}
	})

	t.Run("oversized widths clip", func(t *testing.T) {
		p := mustNew(t, 4, 4, D1)
		if err := p.SetOrClearBorder(10, 10, 0, 0, PixelSet); err != nil {
			t.Fatal(err)
		}
		n, _ := p.CountPixels()
		if n != 16 {
			t.Errorf("ON count = %d, want 16", n)
		}
	})

	t.Run("bad op", func(t *testing.T) {
		p := mustNew(t, 4, 4, D1)
		if err := p.SetOrClearBorder(1, 1, 1, 1, PixelFlip); err != ErrBadPixelOp {
			t.Errorf("error = %v, want ErrBadPixelOp", err)
		}
	})
}

func TestSetBorderVal(t *testing.T) {
	t.Run("8 bpp", func(t *testing.T) {
		p := mustNew(t, 6, 5, D8)
		fillSeq(t, p)
		orig := p.Clone()

		if err := p.SetBorderVal(1, 1, 1, 1, 200); err != nil {
			t.Fatal(err)
		}
		for y := 0; y < 5; y++ {
			for x := 0; x < 6; x++ {
				got, _ := p.GetPixel(x, y)
				if x == 0 || x == 5 || y == 0 || y == 4 {
					if got != 200 {
						t.Fatalf("border pixel (%d, %d) = %d, want 200", x, y, got)
					}
				} else {
					want, _ := orig.GetPixel(x, y)
					if got != want {
						t.Fatalf("interior pixel (%d, %d) = %d, want %d", x, y, got, want)
					}
				}
			}
		}
	})

	t.Run("32 bpp", func(t *testing.T) {
		p := mustNew(t, 4, 4, D32)
		val := ComposeRGB(10, 20, 30)
		if err := p.SetBorderVal(1, 1, 1, 1, val); err != nil {
			t.Fatal(err)
		}
		if v, _ := p.GetPixel(0, 3); v != val {
			t.Errorf("border pixel = %x, want %x", v, val)
		}
		if v, _ := p.GetPixel(1, 1); v != 0 {
			t.Errorf("interior pixel = %x, want 0", v)
		}
	})

	t.Run("bad depth", func(t *testing.T) {
		p := mustNew(t, 4, 4, D1)
		if err := p.SetBorderVal(1, 1, 1, 1, 1); err != ErrBadDepth {
			t.Errorf("error = %v, want ErrBadDepth", err)
		}
	})
}
