//go:build ignore

// gen_fixtures creates small TGA images for the E2E smoke test, one per
// supported pixel depth plus a few awkward shapes.
// Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AnyUserName/tgadown/internal/pixel"
	"github.com/AnyUserName/tgadown/internal/tga"
)

type fixture struct {
	name  string
	w, h  int
	depth uint8
	idLen uint8
	fill  func(x, y, w, h int) pixel.IntVec
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fixtures := []fixture{
		{"gradient-24.tga", 400, 226, 24, 0, gradient},
		{"alpha-32.tga", 128, 128, 32, 0, alphaGradient},
		{"bordered-16.tga", 200, 150, 16, 0, bordered},
		{"bordered-15.tga", 200, 150, 15, 0, bordered},
		{"odd-24.tga", 7, 5, 24, 0, gradient},
		{"with-id-32.tga", 64, 32, 32, 12, alphaGradient},
		{"line-24.tga", 1, 9, 24, 0, gradient},
	}
	for _, fx := range fixtures {
		if err := write(filepath.Join(dir, fx.name), fx); err != nil {
			fmt.Fprintf(os.Stderr, "[gen_fixtures] %s: %v\n", fx.name, err)
			os.Exit(1)
		}
	}

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created %d fixtures in %s\n", len(fixtures), dir)
}

func write(path string, fx fixture) error {
	f, err := pixel.ForDepth(fx.depth)
	if err != nil {
		return err
	}
	hdr := tga.Header{
		IDLength:  fx.idLen,
		ImageType: tga.TrueColor,
		Spec: tga.ImageSpec{
			Width:       uint16(fx.w),
			Height:      uint16(fx.h),
			PixelDepth:  fx.depth,
			TopToBottom: true,
		},
	}
	hdr.Spec.AlphaDepth = uint8(alphaBits(f))

	data, err := hdr.MarshalBinary()
	if err != nil {
		return err
	}
	for i := 0; i < int(fx.idLen); i++ {
		data = append(data, 'a'+byte(i%26))
	}

	px := make([]byte, fx.w*fx.h*f.Size())
	top := uint32(1)<<f.Bits() - 1
	for y := 0; y < fx.h; y++ {
		for x := 0; x < fx.w; x++ {
			v := fx.fill(x, y, fx.w, fx.h)
			// fill works in 8-bit lanes; narrow them for 5-bit formats.
			for c := 0; c < 3; c++ {
				v[c] = v[c] * top / 255
			}
			v[3] = v[3] * (uint32(1)<<alphaBits(f) - 1) / 255
			f.PackInt(px[(y*fx.w+x)*f.Size():], v)
		}
	}
	return os.WriteFile(path, append(data, px...), 0o644)
}

func alphaBits(f pixel.Format) uint {
	switch {
	case f.Channels() < 4:
		return 0
	case f.Bits() == 5:
		return 1
	default:
		return 8
	}
}

// Lanes are in TGA order: blue, green, red, alpha.

func gradient(x, y, w, h int) pixel.IntVec {
	return pixel.IntVec{128, uint32(y * 255 / h), uint32(x * 255 / w), 255}
}

func alphaGradient(x, _, w, _ int) pixel.IntVec {
	return pixel.IntVec{30, 60, 220, uint32(x * 255 / w)}
}

func bordered(x, y, w, h int) pixel.IntVec {
	if x < 4 || x >= w-4 || y < 4 || y >= h-4 {
		return pixel.IntVec{255, 255, 255, 255}
	}
	return pixel.IntVec{140, 100, 60, 255}
}
