// Package preview turns TGA files into formats an ordinary image viewer
// can open, so the result of a downscale can be eyeballed.
package preview

import (
	"image"
)

// Encoder encodes an image to a specific format.
type Encoder interface {
	// Format returns the output format name (e.g. "png", "webp").
	Format() string

	// Encode converts the image to bytes. Quality (1-100) is used by lossy
	// formats only.
	Encode(img image.Image, quality int) ([]byte, error)

	// Extensions returns the file extensions, without dot, that select
	// this encoder.
	Extensions() []string
}
