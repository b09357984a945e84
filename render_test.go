package pix

import (
	"testing"
)

func TestGenerateLinePts(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		want           []IntPoint
	}{
		{"single point", 3, 4, 3, 4, []IntPoint{{3, 4}}},
		{"horizontal", 0, 2, 4, 2, []IntPoint{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}}},
		{"vertical", 1, 0, 1, 3, []IntPoint{{1, 0}, {1, 1}, {1, 2}, {1, 3}}},
		{"diagonal", 0, 0, 3, 3, []IntPoint{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"reversed", 4, 0, 0, 0, []IntPoint{{4, 0}, {3, 0}, {2, 0}, {1, 0}, {0, 0}}},
		{"shallow", 0, 0, 4, 2, []IntPoint{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}}},
		{"steep", 0, 0, 2, 4, []IntPoint{{0, 0}, {1, 1}, {1, 2}, {2, 3}, {2, 4}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateLinePts(tt.x1, tt.y1, tt.x2, tt.y2)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d points %v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("point %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGenerateWideLinePts(t *testing.T) {
	pts := GenerateWideLinePts(0, 2, 4, 2, 3)
	if len(pts) != 15 {
		t.Fatalf("got %d points, want 15", len(pts))
	}
	rows := map[int]int{}
	for _, pt := range pts {
		rows[pt.Y]++
	}
	for _, y := range []int{1, 2, 3} {
		if rows[y] != 5 {
			t.Errorf("row %d has %d points, want 5", y, rows[y])
		}
	}

	// Degenerate width is raised to 1.
	if got := GenerateWideLinePts(0, 0, 3, 0, 0); len(got) != 4 {
		t.Errorf("width 0 line has %d points, want 4", len(got))
	}
}

func TestGenerateBoxPts(t *testing.T) {
	pts := GenerateBoxPts(Box{X: 2, Y: 2, W: 4, H: 3}, 1)
	seen := map[IntPoint]bool{}
	for _, pt := range pts {
		if seen[pt] {
			t.Fatalf("duplicate point %v", pt)
		}
		seen[pt] = true
	}
	if len(pts) != 10 {
		t.Fatalf("got %d points, want 10", len(pts))
	}
	for _, pt := range []IntPoint{{2, 2}, {5, 2}, {2, 4}, {5, 4}, {3, 2}, {2, 3}} {
		if !seen[pt] {
			t.Errorf("missing outline point %v", pt)
		}
	}
	if seen[IntPoint{3, 3}] {
		t.Error("interior point should not be in the outline")
	}
}

func TestRenderLine(t *testing.T) {
	p := mustNew(t, 10, 10, D1)
	if err := p.RenderLine(0, 0, 9, 9, 1, PixelSet); err != nil {
		t.Fatal(err)
	}
	n, err := p.CountPixels()
	if err != nil {
		t.Fatal(err)
	}
	if n != 10 {
		t.Errorf("ON count = %d, want 10", n)
	}
	for i := 0; i < 10; i++ {
		if v, _ := p.GetPixel(i, i); v != 1 {
			t.Errorf("diagonal pixel (%d, %d) not set", i, i)
		}
	}

	// Lines may extend off the image; out-of-range points are dropped.
	if err := p.RenderLine(-5, 5, 14, 5, 1, PixelSet); err != nil {
		t.Fatal(err)
	}
	if v, _ := p.GetPixel(0, 5); v != 1 {
		t.Error("clipped line should reach the left edge")
	}

	if err := p.RenderLine(0, 0, 3, 0, 1, PixelOp(9)); err != ErrBadPixelOp {
		t.Errorf("bad op error = %v, want ErrBadPixelOp", err)
	}
}

func TestRenderPointsOps(t *testing.T) {
	p := mustNew(t, 6, 6, D4)
	pts := []IntPoint{{1, 1}, {4, 2}, {7, 7}}

	if err := p.RenderPoints(pts, PixelSet); err != nil {
		t.Fatal(err)
	}
	if v, _ := p.GetPixel(1, 1); v != 0xf {
		t.Errorf("set pixel = %x, want f", v)
	}

	if err := p.RenderPoints(pts, PixelFlip); err != nil {
		t.Fatal(err)
	}
	if v, _ := p.GetPixel(4, 2); v != 0 {
		t.Errorf("flipped pixel = %x, want 0", v)
	}

	if err := p.RenderPoints(pts, PixelFlip); err != nil {
		t.Fatal(err)
	}
	if v, _ := p.GetPixel(4, 2); v != 0xf {
		t.Errorf("double flipped pixel = %x, want f", v)
	}

	if err := p.RenderPoints(pts, PixelClear); err != nil {
		t.Fatal(err)
	}
	if v, _ := p.GetPixel(1, 1); v != 0 {
		t.Errorf("cleared pixel = %x, want 0", v)
	}
}

func TestRenderBox(t *testing.T) {
	p := mustNew(t, 10, 10, D1)
	if err := p.RenderBox(Box{X: 1, Y: 1, W: 5, H: 4}, 1, PixelSet); err != nil {
		t.Fatal(err)
	}
	n, err := p.CountPixels()
	if err != nil {
		t.Fatal(err)
	}
	if n != 14 {
		t.Errorf("ON count = %d, want 14", n)
	}
	if v, _ := p.GetPixel(1, 1); v != 1 {
		t.Error("corner should be ON")
	}
	if v, _ := p.GetPixel(3, 2); v != 0 {
		t.Error("interior should be OFF")
	}
}

func TestRenderPolylineFlip(t *testing.T) {
	vertices := []IntPoint{{1, 1}, {6, 1}, {1, 5}}

	// Closed contours visit each vertex twice. Without deduplication a
	// flip undoes itself there.
	p := mustNew(t, 8, 8, D1)
	if err := p.RenderPolyline(vertices, 1, PixelFlip); err != nil {
		t.Fatal(err)
	}
	if v, _ := p.GetPixel(1, 1); v != 0 {
		t.Error("vertex should have flipped twice")
	}
	if v, _ := p.GetPixel(3, 1); v != 1 {
		t.Error("edge pixel should have flipped once")
	}

	q := mustNew(t, 8, 8, D1)
	if err := q.RenderPoints(GeneratePolylinePts(vertices, 1, true), PixelFlip); err != nil {
		t.Fatal(err)
	}
	if v, _ := q.GetPixel(1, 1); v != 1 {
		t.Error("deduplicated vertex should flip once")
	}
}

func TestRenderPointsArb(t *testing.T) {
	pts := []IntPoint{{0, 0}, {2, 2}}

	t.Run("gray", func(t *testing.T) {
		p := mustNew(t, 4, 4, D8)
		if err := p.RenderPointsArb(pts, 90, 60, 30); err != nil {
			t.Fatal(err)
		}
		if v, _ := p.GetPixel(0, 0); v != 60 {
			t.Errorf("pixel = %d, want 60", v)
		}
	})

	t.Run("2 bpp", func(t *testing.T) {
		p := mustNew(t, 4, 4, D2)
		if err := p.RenderPointsArb(pts, 255, 255, 255); err != nil {
			t.Fatal(err)
		}
		if v, _ := p.GetPixel(2, 2); v != 3 {
			t.Errorf("pixel = %d, want 3", v)
		}
	})

	t.Run("color", func(t *testing.T) {
		p := mustNew(t, 4, 4, D32)
		if err := p.RenderPointsArb(pts, 10, 20, 30); err != nil {
			t.Fatal(err)
		}
		if v, _ := p.GetPixel(0, 0); v != ComposeRGB(10, 20, 30) {
			t.Errorf("pixel = %x", v)
		}
	})

	t.Run("binary sets", func(t *testing.T) {
		p := mustNew(t, 4, 4, D1)
		if err := p.RenderPointsArb(pts, 10, 20, 30); err != nil {
			t.Fatal(err)
		}
		if v, _ := p.GetPixel(0, 0); v != 1 {
			t.Error("1 bpp render should set the pixel")
		}
	})

	t.Run("colormapped", func(t *testing.T) {
		p := mustNew(t, 4, 4, D4)
		cm, _ := NewColormap(D4)
		cm.AddColor(5, 5, 5)
		p.SetColormap(cm)
		if err := p.RenderPointsArb(pts, 40, 50, 60); err != nil {
			t.Fatal(err)
		}
		v, _ := p.GetPixel(0, 0)
		c, err := cm.Color(int(v))
		if err != nil {
			t.Fatal(err)
		}
		if c != (RGB{40, 50, 60}) {
			t.Errorf("rendered entry = %v", c)
		}
	})

	t.Run("full colormap", func(t *testing.T) {
		p := mustNew(t, 4, 4, D2)
		cm, _ := NewColormap(D2)
		for i := 0; i < 4; i++ {
			cm.AddColor(uint8(i), 0, 0)
		}
		p.SetColormap(cm)
		if err := p.RenderPointsArb(pts, 40, 50, 60); err != ErrColormapFull {
			t.Errorf("error = %v, want ErrColormapFull", err)
		}
	})

	t.Run("bad depth", func(t *testing.T) {
		p := mustNew(t, 4, 4, D16)
		if err := p.RenderPointsArb(pts, 1, 2, 3); err != ErrBadDepth {
			t.Errorf("error = %v, want ErrBadDepth", err)
		}
	})
}
