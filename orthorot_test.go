package pix

import (
	"testing"
)

var allDepths = []Depth{D1, D2, D4, D8, D16, D32}

// fillSeq writes a depth-appropriate asymmetric pattern.
func fillSeq(t *testing.T, p *Pix) {
	t.Helper()
	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			v := uint32(x + 31*y)
			if p.Depth() == D32 {
				v = v<<16 | v
			} else {
				v %= uint32(1) << uint(p.Depth())
			}
			if err := p.SetPixel(x, y, v); err != nil {
				t.Fatal(err)
			}
		}
	}
}

func TestFlipLR(t *testing.T) {
	for _, d := range allDepths {
		t.Run(d.String(), func(t *testing.T) {
			src := mustNew(t, 37, 11, d)
			fillSeq(t, src)

			out := src.FlipLR()
			for y := 0; y < 11; y++ {
				for x := 0; x < 37; x++ {
					got, _ := out.GetPixel(x, y)
					want, _ := src.GetPixel(36-x, y)
					if got != want {
						t.Fatalf("pixel (%d, %d) = %d, want %d", x, y, got, want)
					}
				}
			}

			// Mirroring twice restores the original.
			if !out.FlipLR().Equal(src) {
				t.Error("double flip differs from source")
			}
		})
	}
}

func TestFlipLRInPlace(t *testing.T) {
	src := mustNew(t, 13, 5, D1)
	fillSeq(t, src)
	want := src.FlipLR()

	src2 := src.Clone()
	src2.FlipLRInPlace()
	if !src2.Equal(want) {
		t.Error("in-place flip differs from copying flip")
	}

	if err := src.FlipLRInto(src2); err != nil {
		t.Fatal(err)
	}
	if !src2.Equal(want) {
		t.Error("FlipLRInto differs from FlipLR")
	}
}

func TestFlipTB(t *testing.T) {
	for _, d := range allDepths {
		t.Run(d.String(), func(t *testing.T) {
			src := mustNew(t, 9, 14, d)
			fillSeq(t, src)

			out := src.FlipTB()
			for y := 0; y < 14; y++ {
				for x := 0; x < 9; x++ {
					got, _ := out.GetPixel(x, y)
					want, _ := src.GetPixel(x, 13-y)
					if got != want {
						t.Fatalf("pixel (%d, %d) = %d, want %d", x, y, got, want)
					}
				}
			}

			if !out.FlipTB().Equal(src) {
				t.Error("double flip differs from source")
			}
		})
	}
}

func TestRotate180(t *testing.T) {
	src := mustNew(t, 21, 7, D2)
	fillSeq(t, src)

	out := src.Rotate180()
	for y := 0; y < 7; y++ {
		for x := 0; x < 21; x++ {
			got, _ := out.GetPixel(x, y)
			want, _ := src.GetPixel(20-x, 6-y)
			if got != want {
				t.Fatalf("pixel (%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}

	if !out.Rotate180().Equal(src) {
		t.Error("double rotation differs from source")
	}
}

func TestRotate90(t *testing.T) {
	t.Run("mapping", func(t *testing.T) {
		src := mustNew(t, 3, 2, D8)
		for y := 0; y < 2; y++ {
			for x := 0; x < 3; x++ {
				src.SetPixel(x, y, uint32(x+10*y))
			}
		}

		cw, err := src.Rotate90(RotateCW)
		if err != nil {
			t.Fatal(err)
		}
		if cw.Width() != 2 || cw.Height() != 3 {
			t.Fatalf("cw dims = %dx%d, want 2x3", cw.Width(), cw.Height())
		}
		// Clockwise sends the left column to the top row.
		for y := 0; y < 3; y++ {
			for x := 0; x < 2; x++ {
				got, _ := cw.GetPixel(x, y)
				want, _ := src.GetPixel(y, 1-x)
				if got != want {
					t.Fatalf("cw pixel (%d, %d) = %d, want %d", x, y, got, want)
				}
			}
		}

		ccw, err := src.Rotate90(RotateCCW)
		if err != nil {
			t.Fatal(err)
		}
		for y := 0; y < 3; y++ {
			for x := 0; x < 2; x++ {
				got, _ := ccw.GetPixel(x, y)
				want, _ := src.GetPixel(2-y, x)
				if got != want {
					t.Fatalf("ccw pixel (%d, %d) = %d, want %d", x, y, got, want)
				}
			}
		}
	})

	t.Run("round trip", func(t *testing.T) {
		for _, d := range allDepths {
			src := mustNew(t, 19, 8, d)
			fillSeq(t, src)
			cw, err := src.Rotate90(RotateCW)
			if err != nil {
				t.Fatal(err)
			}
			back, err := cw.Rotate90(RotateCCW)
			if err != nil {
				t.Fatal(err)
			}
			if !back.Equal(src) {
				t.Errorf("%v: cw then ccw differs from source", d)
			}
		}
	})

	t.Run("bad direction", func(t *testing.T) {
		src := mustNew(t, 4, 4, D1)
		if _, err := src.Rotate90(Rotation(0)); err != ErrBadDirection {
			t.Errorf("error = %v, want ErrBadDirection", err)
		}
	})

	t.Run("colormap", func(t *testing.T) {
		src := mustNew(t, 4, 4, D8)
		cm, _ := NewColormap(D8)
		cm.AddColor(10, 20, 30)
		src.SetColormap(cm)
		out, err := src.Rotate90(RotateCW)
		if err != nil {
			t.Fatal(err)
		}
		if out.Colormap() == nil || out.Colormap().Len() != 1 {
			t.Error("rotation dropped the colormap")
		}
	})
}

func TestMirroredTiling(t *testing.T) {
	src := mustNew(t, 4, 4, D8)
	fillSeq(t, src)

	out, err := src.MirroredTiling(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			sx := x % 4
			if (x/4)%2 == 1 {
				sx = 3 - sx
			}
			sy := y % 4
			if (y/4)%2 == 1 {
				sy = 3 - sy
			}
			got, _ := out.GetPixel(x, y)
			want, _ := src.GetPixel(sx, sy)
			if got != want {
				t.Fatalf("pixel (%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}

	if _, err := src.MirroredTiling(0, 10); err != ErrInvalidDimensions {
		t.Errorf("error = %v, want ErrInvalidDimensions", err)
	}
}

func BenchmarkFlipLR(b *testing.B) {
	p, _ := New(1024, 768, D1)
	for x := 0; x < 1024; x += 3 {
		p.SetPixel(x, x%768, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.FlipLRInPlace()
	}
}
