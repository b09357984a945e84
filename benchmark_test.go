package pix

import "testing"

func benchGray(b *testing.B, w, h int) *Pix {
	b.Helper()
	p, err := New(w, h, D8)
	if err != nil {
		b.Fatal(err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.SetPixel(x, y, uint32((x*7+y*13)%256))
		}
	}
	return p
}

// BenchmarkClearAll measures full-buffer clears at various sizes.
func BenchmarkClearAll(b *testing.B) {
	sizes := []struct {
		name   string
		width  int
		height int
	}{
		{"100x100", 100, 100},
		{"512x512", 512, 512},
		{"1000x1000", 1000, 1000},
		{"1920x1080", 1920, 1080},
		{"2048x2048", 2048, 2048},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			p, err := New(size.width, size.height, D8)
			if err != nil {
				b.Fatal(err)
			}
			b.SetBytes(int64(4 * len(p.Data())))
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				p.ClearAll()
			}
		})
	}
}

// BenchmarkInvert measures the word-parallel boolean path on packed
// binary images.
func BenchmarkInvert(b *testing.B) {
	sizes := []struct {
		name   string
		width  int
		height int
	}{
		{"512x512", 512, 512},
		{"2048x2048", 2048, 2048},
		{"5000x5000", 5000, 5000},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			p, err := New(size.width, size.height, D1)
			if err != nil {
				b.Fatal(err)
			}
			b.SetBytes(int64(4 * len(p.Data())))
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				p.InvertInPlace()
			}
		})
	}
}

// BenchmarkExpandBinary measures power-of-2 replication at each factor.
func BenchmarkExpandBinary(b *testing.B) {
	src, err := New(256, 256, D1)
	if err != nil {
		b.Fatal(err)
	}
	for y := 0; y < 256; y += 3 {
		for x := 0; x < 256; x += 5 {
			src.SetPixel(x, y, 1)
		}
	}

	factors := []struct {
		name   string
		factor int
	}{
		{"x2", 2},
		{"x4", 4},
		{"x8", 8},
		{"x16", 16},
	}

	for _, f := range factors {
		b.Run(f.name, func(b *testing.B) {
			b.SetBytes(int64(4 * len(src.Data())))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := src.ExpandBinary(f.factor); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkBinaryPipeline runs a realistic scan-processing chain:
// dither a grayscale page, reduce, rotate and count.
func BenchmarkBinaryPipeline(b *testing.B) {
	src := benchGray(b, 512, 512)
	b.SetBytes(int64(4 * len(src.Data())))
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		bin, err := DitherToBinaryLUT(src)
		if err != nil {
			b.Fatal(err)
		}
		small, err := bin.ReduceRankBinary2(2)
		if err != nil {
			b.Fatal(err)
		}
		rot, err := small.Rotate90(RotateCW)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := rot.CountPixels(); err != nil {
			b.Fatal(err)
		}
	}
}
