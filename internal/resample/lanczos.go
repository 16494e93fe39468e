package resample

import (
	"math"

	"github.com/AnyUserName/tgadown/internal/pixel"
)

// Radius is the Lanczos window parameter a. Each output pixel reads a
// 2a×2a block of source pixels.
const Radius = 3

// epsilon is FLT_EPSILON; |t| at or below it takes the kernel's limit of 1.
const epsilon = 0x1p-23

func sinc(x float32) float32 {
	px := math.Pi * float64(x)
	return float32(math.Sin(px) / px)
}

// Kernel evaluates the Lanczos window sinc(t)·sinc(t/a) for |t| < a and
// returns 0 outside it.
func Kernel(t, a float32) float32 {
	if t <= -a || t >= a {
		return 0
	}
	if float32(math.Abs(float64(t))) <= epsilon {
		return 1
	}
	return sinc(t) * sinc(t/a)
}

// Lanczos resamples with a separable Lanczos-3 filter. Output pixel (x, y)
// is centered on source coordinate (x/dw·w + ½, y/dh·h + ½). Taps that fall
// outside the source are dropped and the remaining weights are not
// renormalized, so border pixels come out slightly biased.
func Lanczos(dst, src Image, workers int) {
	dw, dh := float32(dst.Width), float32(dst.Height)
	sw, sh := float32(src.Width), float32(src.Height)

	forEachRow(dst.Height, workers, func(y int) {
		sy := float32(float32(y)/dh*sh) + 0.5
		for x := 0; x < dst.Width; x++ {
			sx := float32(float32(x)/dw*sw) + 0.5
			v := lanczosAt(src, sx, sy)
			dst.Format.PackNorm(dst.At(x, y), pixel.Clamp(v))
		}
	})
}

// lanczosAt filters src around the continuous coordinate (x, y): a
// horizontal pass per source row, each row weighted by its vertical tap.
func lanczosAt(src Image, x, y float32) pixel.FloatVec {
	f := src.Format
	x0 := int(math.Floor(float64(x))) - Radius + 1
	y0 := int(math.Floor(float64(y))) - Radius + 1

	var rows [2 * Radius]pixel.FloatVec
	for r := range rows {
		row := y0 + r
		if row < 0 || row >= src.Height {
			continue
		}

		acc := &rows[r]
		for c := 0; c < 2*Radius; c++ {
			col := x0 + c
			if col < 0 || col >= src.Width {
				continue
			}
			w := Kernel(x-float32(col), Radius)
			p := f.UnpackNorm(src.At(col, row))
			for i := range acc {
				acc[i] += float32(p[i] * w)
			}
		}

		w := Kernel(y-float32(row), Radius)
		for i := range acc {
			acc[i] *= w
		}
	}

	var sum pixel.FloatVec
	for _, row := range rows {
		for i := range sum {
			sum[i] += row[i]
		}
	}
	return sum
}
