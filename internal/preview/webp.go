package preview

import (
	"bytes"
	"fmt"
	"image"

	"github.com/HugoSmits86/nativewebp"
)

// WebPEncoder writes lossless WebP in pure Go.
type WebPEncoder struct{}

func (e *WebPEncoder) Format() string       { return "webp" }
func (e *WebPEncoder) Extensions() []string { return []string{"webp"} }

func (e *WebPEncoder) Encode(img image.Image, _ int) ([]byte, error) {
	var buf bytes.Buffer
	if err := nativewebp.Encode(&buf, img, nil); err != nil {
		return nil, fmt.Errorf("webp encode: %w", err)
	}
	return buf.Bytes(), nil
}
