package report

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/AnyUserName/tgadown/internal/pixel"
	"github.com/AnyUserName/tgadown/internal/tga"
)

// MeanColor averages the color lanes of pixels. Lanes are read in TGA
// order (blue, green, red) and scaled by their true bit width.
func MeanColor(pixels []byte, f pixel.Format) colorful.Color {
	n := len(pixels) / f.Size()
	if n == 0 {
		return colorful.Color{}
	}

	var sum [3]uint64
	for i := 0; i < n; i++ {
		v := f.UnpackInt(pixels[i*f.Size():])
		for c := range sum {
			sum[c] += uint64(v[c])
		}
	}

	top := float64(uint64(1)<<f.Bits()-1) * float64(n)
	return colorful.Color{
		R: float64(sum[2]) / top,
		G: float64(sum[1]) / top,
		B: float64(sum[0]) / top,
	}
}

// Inspect describes a whole TGA file held in memory.
func Inspect(path string, file []byte) (ImageInfo, error) {
	h, err := tga.ParseHeader(file)
	if err != nil {
		return ImageInfo{}, err
	}
	f, err := pixel.ForDepth(h.Spec.PixelDepth)
	if err != nil {
		return ImageInfo{}, err
	}
	_, pixels, err := tga.PixelData(file, f.Size())
	if err != nil {
		return ImageInfo{}, fmt.Errorf("%s: %w", path, err)
	}

	return ImageInfo{
		Path:      path,
		Width:     int(h.Spec.Width),
		Height:    int(h.Spec.Height),
		Depth:     f.Depth(),
		Format:    pixel.Name(f),
		Size:      int64(len(file)),
		Hash:      ContentHash(file, 16),
		MeanColor: MeanColor(pixels, f).Clamped().Hex(),
	}, nil
}

// Drift is the CIEDE2000 distance (ΔE00, where 1 is about one just
// noticeable difference) between the mean colors of a and b, or 0 when
// either is missing.
func Drift(a, b ImageInfo) float64 {
	ca, err := colorful.Hex(a.MeanColor)
	if err != nil {
		return 0
	}
	cb, err := colorful.Hex(b.MeanColor)
	if err != nil {
		return 0
	}
	// go-colorful works with L in [0,1]; ΔE00 is defined on L in [0,100].
	return ca.DistanceCIEDE2000(cb) * 100
}
