package preview

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

// DefaultQuality is used when the caller passes a quality outside 1-100.
const DefaultQuality = 90

// JPEGEncoder writes baseline JPEG. Alpha is dropped.
type JPEGEncoder struct{}

func (e *JPEGEncoder) Format() string       { return "jpeg" }
func (e *JPEGEncoder) Extensions() []string { return []string{"jpg", "jpeg"} }

func (e *JPEGEncoder) Encode(img image.Image, quality int) ([]byte, error) {
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}

	var buf bytes.Buffer
	err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
