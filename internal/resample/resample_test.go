package resample

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnyUserName/tgadown/internal/pixel"
)

// patterned fills a w×h image with a deterministic byte pattern that
// exercises every bit of every record.
func patterned(w, h int, f pixel.Format) Image {
	m := NewImage(w, h, f)
	for i := range m.Pix {
		m.Pix[i] = byte(i*37 + i/7)
	}
	return m
}

// solid fills every pixel of a w×h image with v.
func solid(w, h int, f pixel.Format, v pixel.IntVec) Image {
	m := NewImage(w, h, f)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f.PackInt(m.At(x, y), v)
		}
	}
	return m
}

func halve(src Image, fn Func, workers int) Image {
	dst := NewImage(src.Width/2, src.Height/2, src.Format)
	fn(dst, src, workers)
	return dst
}

func TestKernel(t *testing.T) {
	assert.Equal(t, float32(1), Kernel(0, Radius))
	assert.Equal(t, float32(1), Kernel(1e-8, Radius))
	assert.InDelta(t, 0, Kernel(1, Radius), 1e-6)
	assert.InDelta(t, 0, Kernel(2, Radius), 1e-6)
	assert.InDelta(t, 0.6079271, Kernel(0.5, Radius), 1e-6)

	for _, x := range []float32{3, -3, 3.0001, -7, 100} {
		assert.Equal(t, float32(0), Kernel(x, Radius), "K(%v)", x)
	}

	for x := float32(0); x < 3.5; x += 0.125 {
		assert.Equal(t, Kernel(x, Radius), Kernel(-x, Radius), "symmetry at %v", x)
	}
}

func TestNearestExact(t *testing.T) {
	for _, f := range pixel.Formats() {
		t.Run(pixel.Name(f), func(t *testing.T) {
			src := patterned(9, 7, f)
			dst := halve(src, Nearest, 1)
			require.Equal(t, 4, dst.Width)
			require.Equal(t, 3, dst.Height)

			for y := 0; y < dst.Height; y++ {
				for x := 0; x < dst.Width; x++ {
					assert.Equal(t, src.At(2*x, 2*y), dst.At(x, y), "pixel (%d,%d)", x, y)
				}
			}
		})
	}
}

func TestAverageSolid(t *testing.T) {
	for _, f := range pixel.Formats() {
		t.Run(pixel.Name(f), func(t *testing.T) {
			c := pixel.IntVec{17, 3, 29, 1}
			if f.Channels() == 3 {
				c[3] = 0
			}
			src := solid(6, 6, f, c)
			dst := halve(src, Average, 1)
			for y := 0; y < dst.Height; y++ {
				for x := 0; x < dst.Width; x++ {
					assert.Equal(t, c, f.UnpackInt(dst.At(x, y)))
				}
			}
		})
	}
}

func TestAverageTruncates(t *testing.T) {
	f := pixel.R8G8B8A8
	src := NewImage(2, 2, f)
	f.PackInt(src.At(0, 0), pixel.IntVec{0, 3, 255, 10})
	f.PackInt(src.At(1, 0), pixel.IntVec{0, 3, 255, 10})
	f.PackInt(src.At(0, 1), pixel.IntVec{0, 3, 254, 10})
	f.PackInt(src.At(1, 1), pixel.IntVec{1, 2, 254, 11})

	dst := halve(src, Average, 1)
	assert.Equal(t, pixel.IntVec{0, 2, 254, 10}, f.UnpackInt(dst.At(0, 0)))
}

func TestAverageBlock(t *testing.T) {
	for _, f := range pixel.Formats() {
		src := patterned(8, 6, f)
		dst := halve(src, Average, 1)
		for y := 0; y < dst.Height; y++ {
			for x := 0; x < dst.Width; x++ {
				var want pixel.IntVec
				for _, p := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
					v := f.UnpackInt(src.At(2*x+p[0], 2*y+p[1]))
					for i := range want {
						want[i] += v[i]
					}
				}
				for i := range want {
					want[i] /= 4
				}
				assert.Equal(t, want, f.UnpackInt(dst.At(x, y)), "%s (%d,%d)", pixel.Name(f), x, y)
			}
		}
	}
}

// The Lanczos-3 taps at half-pixel phase sum to about 0.9943 per axis, so
// an unrenormalized constant comes back roughly 1.1% darker.
const interiorGain = 0.98863

func TestLanczosConstantInterior(t *testing.T) {
	for _, tt := range []struct {
		f     pixel.Format
		value uint32
	}{
		{pixel.R5G5B5, 20},
		{pixel.R5G5B5A1, 20},
		{pixel.R8G8B8, 200},
		{pixel.R8G8B8A8, 200},
	} {
		t.Run(pixel.Name(tt.f), func(t *testing.T) {
			c := pixel.IntVec{tt.value, tt.value, tt.value}
			src := solid(32, 32, tt.f, c)
			dst := halve(src, Lanczos, 1)

			want := uint32(math.Round(float64(tt.value) * interiorGain))
			for y := 2; y < dst.Height-2; y++ {
				for x := 2; x < dst.Width-2; x++ {
					got := tt.f.UnpackInt(dst.At(x, y))
					for i := 0; i < 3; i++ {
						assert.InDelta(t, want, got[i], 1, "(%d,%d) lane %d", x, y, i)
						assert.InDelta(t, tt.value, got[i], float64(tt.value)*0.015+1)
					}
				}
			}
		})
	}
}

func TestLanczosEdgesNotRenormalized(t *testing.T) {
	f := pixel.R8G8B8
	src := solid(8, 8, f, pixel.IntVec{100, 100, 100})
	dst := halve(src, Lanczos, 1)

	// The corner keeps only taps at offsets ±0.5, -1.5, -2.5 on each axis,
	// whose weights sum to about 1.105; 100 × 1.105² ≈ 122.
	assert.Equal(t, pixel.IntVec{122, 122, 122}, f.UnpackInt(dst.At(0, 0)))
}

// lanczosReference is a direct 2D float64 evaluation of the same filter.
func lanczosReference(src Image, x, y float64) [4]float64 {
	k := func(t float64) float64 {
		if math.Abs(t) >= Radius {
			return 0
		}
		if math.Abs(t) < 1e-9 {
			return 1
		}
		a := math.Pi * t
		b := a / Radius
		return math.Sin(a) / a * math.Sin(b) / b
	}
	var out [4]float64
	fx, fy := int(math.Floor(x)), int(math.Floor(y))
	for row := fy - Radius + 1; row <= fy+Radius; row++ {
		for col := fx - Radius + 1; col <= fx+Radius; col++ {
			if row < 0 || row >= src.Height || col < 0 || col >= src.Width {
				continue
			}
			w := k(x-float64(col)) * k(y-float64(row))
			v := src.Format.UnpackInt(src.At(col, row))
			for i := range out {
				out[i] += float64(v[i]) * w
			}
		}
	}
	return out
}

func TestLanczosMatchesDirectEvaluation(t *testing.T) {
	f := pixel.R8G8B8A8
	src := NewImage(24, 18, f)
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			f.PackInt(src.At(x, y), pixel.IntVec{
				uint32(x * 10), uint32(y * 12), uint32((x + y) * 5), 128,
			})
		}
	}
	dst := halve(src, Lanczos, 1)

	for y := 0; y < dst.Height; y++ {
		for x := 0; x < dst.Width; x++ {
			sx := float64(x)/float64(dst.Width)*float64(src.Width) + 0.5
			sy := float64(y)/float64(dst.Height)*float64(src.Height) + 0.5
			ref := lanczosReference(src, sx, sy)
			got := f.UnpackInt(dst.At(x, y))
			for i := range ref {
				want := math.Round(math.Min(math.Max(ref[i], 0), 255))
				assert.InDelta(t, want, got[i], 1, "(%d,%d) lane %d", x, y, i)
			}
		}
	}
}

func TestWorkersDoNotChangeOutput(t *testing.T) {
	algos := map[string]Func{"nearest": Nearest, "average": Average, "lanczos": Lanczos}
	for name, fn := range algos {
		for _, f := range pixel.Formats() {
			t.Run(fmt.Sprintf("%s/%s", name, pixel.Name(f)), func(t *testing.T) {
				src := patterned(37, 23, f)
				want := halve(src, fn, 1)
				for _, workers := range []int{2, 3, 8, 64} {
					got := halve(src, fn, workers)
					require.Equal(t, want.Pix, got.Pix, "workers=%d", workers)
				}
			})
		}
	}
}

func TestOddAndDegenerateSizes(t *testing.T) {
	for _, fn := range []Func{Nearest, Average, Lanczos} {
		for _, size := range [][2]int{{1, 1}, {1, 9}, {3, 3}, {5, 2}} {
			src := patterned(size[0], size[1], pixel.R8G8B8)
			dst := halve(src, fn, 4)
			assert.Len(t, dst.Pix, (size[0]/2)*(size[1]/2)*3)
		}
	}
}

func TestSourceUntouched(t *testing.T) {
	for _, fn := range []Func{Nearest, Average, Lanczos} {
		src := patterned(10, 10, pixel.R5G5B5A1)
		before := append([]byte(nil), src.Pix...)
		halve(src, fn, 3)
		assert.Equal(t, before, src.Pix)
	}
}
