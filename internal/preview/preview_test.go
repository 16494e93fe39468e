package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/AnyUserName/tgadown/internal/downscale"
	"github.com/AnyUserName/tgadown/internal/pixel"
	"github.com/AnyUserName/tgadown/internal/tga"
)

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			if (x+y)%2 == 0 {
				c = color.NRGBA{R: 200, G: 20, B: 40, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// tgaFile builds a w×h TGA in format f whose pixels are all stored as v.
func tgaFile(f pixel.Format, w, h int, idLen uint8, v pixel.IntVec) []byte {
	hdr := tga.Header{
		IDLength:  idLen,
		ImageType: tga.TrueColor,
		Spec: tga.ImageSpec{
			Width:       uint16(w),
			Height:      uint16(h),
			PixelDepth:  uint8(f.Depth()),
			TopToBottom: true,
		},
	}
	switch f {
	case pixel.R8G8B8A8:
		hdr.Spec.AlphaDepth = 8
	case pixel.R5G5B5A1:
		hdr.Spec.AlphaDepth = 1
	}
	b, _ := hdr.MarshalBinary()
	b = append(b, make([]byte, int(idLen))...)
	px := make([]byte, w*h*f.Size())
	for i := 0; i < len(px); i += f.Size() {
		f.PackInt(px[i:], v)
	}
	return append(b, px...)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	for ext, want := range map[string]string{
		"png": "png", ".PNG": "png", "jpg": "jpeg", "jpeg": "jpeg",
		"webp": "webp", "bmp": "bmp", "tif": "tiff", "tiff": "tiff",
	} {
		enc := r.Get(ext)
		if enc == nil {
			t.Errorf("%s: no encoder", ext)
			continue
		}
		if enc.Format() != want {
			t.Errorf("%s: got %s, want %s", ext, enc.Format(), want)
		}
	}

	if _, err := r.ForPath("out.gif"); err == nil {
		t.Error("expected error for .gif")
	}
	enc, err := r.ForPath("dir/out.webp")
	if err != nil || enc.Format() != "webp" {
		t.Errorf("ForPath webp: got %v, %v", enc, err)
	}
}

func TestEncodersProduceDecodableImages(t *testing.T) {
	// Decoders are picked explicitly: the tga package registers itself
	// with an empty magic string and would claim any input.
	decoders := map[string]func(io.Reader) (image.Image, error){
		"png":  png.Decode,
		"jpg":  jpeg.Decode,
		"webp": webp.Decode,
		"bmp":  bmp.Decode,
		"tiff": tiff.Decode,
	}

	src := checker(6, 4)
	r := NewRegistry()
	for ext, decode := range decoders {
		t.Run(ext, func(t *testing.T) {
			data, err := r.Get(ext).Encode(src, 0)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			img, err := decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 4 {
				t.Errorf("bounds: got %v", img.Bounds())
			}
		})
	}
}

func TestDecodeEveryDepth(t *testing.T) {
	// Stored B,G,R(,A): opaque red at full lane width.
	tests := []struct {
		f   pixel.Format
		red pixel.IntVec
	}{
		{pixel.R5G5B5, pixel.IntVec{0, 0, 31}},
		{pixel.R5G5B5A1, pixel.IntVec{0, 0, 31, 1}},
		{pixel.R8G8B8, pixel.IntVec{0, 0, 255}},
		{pixel.R8G8B8A8, pixel.IntVec{0, 0, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(pixel.Name(tt.f), func(t *testing.T) {
			src := tgaFile(tt.f, 8, 8, 0, tt.red)
			h, pixels, err := tga.Split(src)
			if err != nil {
				t.Fatal(err)
			}
			out, err := downscale.Downscale(h, pixels, downscale.Nearest, downscale.Options{})
			if err != nil {
				t.Fatal(err)
			}

			img, err := Decode(out)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
				t.Errorf("bounds: got %v", img.Bounds())
			}
			c := color.NRGBAModel.Convert(img.At(3, 2)).(color.NRGBA)
			if c != (color.NRGBA{R: 255, A: 255}) {
				t.Errorf("pixel: got %+v, want opaque red", c)
			}
		})
	}
}

func TestDecodeDownscalerOutput(t *testing.T) {
	// Source declares a 5-byte id field; the downscaled file repeats
	// id_length but carries no field.
	src := tgaFile(pixel.R8G8B8A8, 4, 4, 5, pixel.IntVec{0, 0, 255, 255})
	h, pixels, err := tga.Split(src)
	if err != nil {
		t.Fatal(err)
	}
	out, err := downscale.Downscale(h, pixels, downscale.Nearest, downscale.Options{})
	if err != nil {
		t.Fatal(err)
	}

	img, err := Decode(out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Errorf("bounds: got %v", img.Bounds())
	}
	c := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
	if c != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("pixel: got %+v, want opaque red", c)
	}
	if out[0] != 5 {
		t.Error("Decode modified its input")
	}
}

func TestDecodeRejectsColorMapped(t *testing.T) {
	file := tgaFile(pixel.R8G8B8A8, 2, 2, 0, pixel.IntVec{})
	file[1] = 1
	if _, err := Decode(file); err == nil {
		t.Error("expected error for color-mapped image")
	}
}

func TestZoom(t *testing.T) {
	src := checker(3, 2)
	img, err := Zoom(src, 4)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 8 {
		t.Fatalf("bounds: got %v", img.Bounds())
	}
	for _, p := range []image.Point{{0, 0}, {3, 3}, {4, 0}, {11, 7}} {
		want := src.At(p.X/4, p.Y/4)
		if got := img.At(p.X, p.Y); color.NRGBAModel.Convert(got) != want {
			t.Errorf("pixel %v: got %v, want %v", p, got, want)
		}
	}

	if same, _ := Zoom(src, 1); same != image.Image(src) {
		t.Error("zoom 1 should return the input")
	}
	if _, err := Zoom(src, 0); err == nil {
		t.Error("expected error for zoom 0")
	}
	if _, err := Zoom(src, MaxZoom+1); err == nil {
		t.Error("expected error above MaxZoom")
	}
}

func TestFit(t *testing.T) {
	img := Fit(checker(100, 50), 40, 40)
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 20 {
		t.Errorf("bounds: got %v, want 40x20", img.Bounds())
	}
	src := checker(10, 10)
	if Fit(src, 0, 0) != image.Image(src) {
		t.Error("zero box should return the input")
	}
}
