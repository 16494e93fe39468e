// Package resample halves TGA pixel buffers with nearest-neighbor, box
// average or Lanczos-3 filtering.
//
// All resamplers read src only and write every pixel of dst exactly once.
// dst must be src.Width/2 by src.Height/2 in the same format; an odd
// source dimension drops its last column or row.
package resample

import (
	"github.com/AnyUserName/tgadown/internal/pixel"
)

// Image is a row-major buffer of packed pixel records.
type Image struct {
	Pix    []byte
	Width  int
	Height int
	Format pixel.Format
}

// NewImage allocates a zeroed w×h image.
func NewImage(w, h int, f pixel.Format) Image {
	return Image{
		Pix:    make([]byte, w*h*f.Size()),
		Width:  w,
		Height: h,
		Format: f,
	}
}

// Offset returns the index of pixel (x, y) in Pix.
func (m Image) Offset(x, y int) int {
	return (y*m.Width + x) * m.Format.Size()
}

// At returns the packed record of pixel (x, y).
func (m Image) At(x, y int) []byte {
	i := m.Offset(x, y)
	return m.Pix[i : i+m.Format.Size()]
}

// Func halves src into dst using up to workers goroutines.
type Func func(dst, src Image, workers int)
