// Package downscale halves an in-memory TGA image. It picks the resampler
// for the header's pixel depth and the requested algorithm, and assembles
// the output file: the halved header followed by the halved pixels.
package downscale

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/AnyUserName/tgadown/internal/pixel"
	"github.com/AnyUserName/tgadown/internal/resample"
	"github.com/AnyUserName/tgadown/internal/tga"
)

// ErrShortPixels means the pixel buffer holds fewer bytes than the header
// dimensions require.
var ErrShortPixels = errors.New("pixel data shorter than header dimensions")

// Options tunes a Downscale call.
type Options struct {
	// Workers bounds the goroutines used per resample; <= 1 runs inline.
	Workers int
	// Verbose prints progress lines to stderr.
	Verbose bool
}

type key struct {
	depth     uint8
	algorithm Algorithm
}

type entry struct {
	format pixel.Format
	run    resample.Func
}

// table holds one resampler per (depth, algorithm) pair.
var table = buildTable()

func buildTable() map[key]entry {
	funcs := map[Algorithm]resample.Func{
		Nearest: resample.Nearest,
		Average: resample.Average,
		Lanczos: resample.Lanczos,
	}

	t := make(map[key]entry, len(funcs)*len(pixel.Formats()))
	for _, f := range pixel.Formats() {
		for alg, fn := range funcs {
			t[key{uint8(f.Depth()), alg}] = entry{format: f, run: fn}
		}
	}
	return t
}

func lookup(depth uint8, alg Algorithm) (entry, error) {
	e, ok := table[key{depth, alg}]
	if ok {
		return e, nil
	}
	if _, err := pixel.ForDepth(depth); err != nil {
		return entry{}, err
	}
	return entry{}, fmt.Errorf("%s %w", alg, ErrUnknownAlgorithm)
}

// OutputSize is the length of the buffer Downscale returns for h.
func OutputSize(h tga.Header) (int, error) {
	f, err := pixel.ForDepth(h.Spec.PixelDepth)
	if err != nil {
		return 0, err
	}
	half := h.Halved()
	return tga.HeaderSize + int(half.Spec.Width)*int(half.Spec.Height)*f.Size(), nil
}

// Downscale halves the image described by h whose pixel records start at
// pixels[0]. Neither argument is modified. The returned buffer is a new
// TGA file: h.Halved() followed by the resampled pixels. No identification
// field is written, although the header still declares h.IDLength.
func Downscale(h tga.Header, pixels []byte, alg Algorithm, opts Options) ([]byte, error) {
	e, err := lookup(h.Spec.PixelDepth, alg)
	if err != nil {
		return nil, err
	}

	w, ht := int(h.Spec.Width), int(h.Spec.Height)
	need := w * ht * e.format.Size()
	if len(pixels) < need {
		return nil, fmt.Errorf("%w: need %d bytes for %dx%d, have %d",
			ErrShortPixels, need, w, ht, len(pixels))
	}

	half := h.Halved()
	out := make([]byte, tga.HeaderSize+int(half.Spec.Width)*int(half.Spec.Height)*e.format.Size())
	half.Put(out)

	src := resample.Image{Pix: pixels[:need], Width: w, Height: ht, Format: e.format}
	dst := resample.Image{
		Pix:    out[tga.HeaderSize:],
		Width:  int(half.Spec.Width),
		Height: int(half.Spec.Height),
		Format: e.format,
	}

	start := time.Now()
	e.run(dst, src, opts.Workers)

	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "[tgadown] %s %s %dx%d -> %dx%d in %s\n",
			alg, pixel.Name(e.format), w, ht, dst.Width, dst.Height,
			time.Since(start).Round(time.Microsecond))
	}

	return out, nil
}
