package preview

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	truevision "github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"

	"github.com/AnyUserName/tgadown/internal/pixel"
	"github.com/AnyUserName/tgadown/internal/tga"
)

// MaxZoom bounds Zoom so a typo cannot allocate gigabytes.
const MaxZoom = 32

// Decode decodes a whole TGA file. Files produced by the downscaler that
// declare an identification field without carrying one are decoded as if
// id_length were 0. 15-bit records are decoded as opaque 16-bit ones.
func Decode(file []byte) (image.Image, error) {
	h, err := tga.ParseHeader(file)
	if err != nil {
		return nil, err
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	f, err := pixel.ForDepth(h.Spec.PixelDepth)
	if err != nil {
		return nil, err
	}

	fixed := h
	need := tga.HeaderSize + int(h.Spec.Width)*int(h.Spec.Height)*f.Size()
	if h.IDLength > 0 && len(file) == need {
		fixed.IDLength = 0
	}
	if h.Spec.PixelDepth == 15 {
		fixed.Spec.PixelDepth = 16
		fixed.Spec.AlphaDepth = 0
	}
	if fixed != h {
		b := make([]byte, len(file))
		copy(b, file)
		fixed.Put(b)
		file = b
	}

	img, err := truevision.Decode(bytes.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("decode tga: %w", err)
	}
	return img, nil
}

// Zoom enlarges img by an integer factor with nearest-neighbor sampling so
// individual pixels stay sharp.
func Zoom(img image.Image, factor int) (image.Image, error) {
	if factor < 1 || factor > MaxZoom {
		return nil, fmt.Errorf("zoom factor %d outside 1-%d", factor, MaxZoom)
	}
	if factor == 1 {
		return img, nil
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst, nil
}

// Fit scales img down with a Lanczos filter to fit within w×h, keeping
// the aspect ratio. Images already inside the box keep their size. A zero
// box returns img itself.
func Fit(img image.Image, w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return img
	}
	return imaging.Fit(img, w, h, imaging.Lanczos)
}
