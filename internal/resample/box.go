package resample

import "github.com/AnyUserName/tgadown/internal/pixel"

// Nearest copies source pixel (2x, 2y) to output pixel (x, y) byte for byte.
func Nearest(dst, src Image, workers int) {
	size := src.Format.Size()
	forEachRow(dst.Height, workers, func(y int) {
		for x := 0; x < dst.Width; x++ {
			d := dst.Offset(x, y)
			s := src.Offset(2*x, 2*y)
			copy(dst.Pix[d:d+size], src.Pix[s:s+size])
		}
	})
}

// Average sets output pixel (x, y) to the per-lane floor of the mean of
// the 2×2 source block whose top-left corner is (2x, 2y).
func Average(dst, src Image, workers int) {
	f := src.Format
	forEachRow(dst.Height, workers, func(y int) {
		sy := 2 * y
		for x := 0; x < dst.Width; x++ {
			sx := 2 * x

			var sum pixel.IntVec
			for _, p := range [...]pixel.IntVec{
				f.UnpackInt(src.At(sx, sy)),
				f.UnpackInt(src.At(sx, sy+1)),
				f.UnpackInt(src.At(sx+1, sy)),
				f.UnpackInt(src.At(sx+1, sy+1)),
			} {
				for i := range sum {
					sum[i] += p[i]
				}
			}
			for i := range sum {
				sum[i] /= 4
			}

			f.PackInt(dst.At(x, y), sum)
		}
	})
}
