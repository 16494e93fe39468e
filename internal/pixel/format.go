// Package pixel converts packed TGA pixel records to and from wider
// vectors that the resamplers can do arithmetic on.
//
// Four record layouts are supported, keyed by the header's pixel depth:
//
//	15  2 bytes  three 5-bit lanes, bit 15 unused
//	16  2 bytes  three 5-bit lanes, 1-bit alpha
//	24  3 bytes  three 8-bit lanes
//	32  4 bytes  four 8-bit lanes
//
// Lanes are positional: lane 0 is the lowest bits (5-bit formats) or the
// first byte (8-bit formats). TGA stores blue there, but nothing in this
// package depends on which color a lane carries.
package pixel

import (
	"errors"
	"fmt"
)

// ErrUnsupportedDepth is returned for pixel depths other than 15, 16, 24, 32.
var ErrUnsupportedDepth = errors.New("unsupported pixel depth")

// IntVec holds one unsigned integer per lane. Unused lanes are zero.
type IntVec [4]uint32

// FloatVec holds one normalized value per lane. Unused lanes are zero.
type FloatVec [4]float32

// Format packs and unpacks one pixel record layout. The byte slices passed
// to its methods must be at least Size() long.
type Format interface {
	// Depth is the TGA pixel_depth value for this layout.
	Depth() int
	// Size is the record size in bytes.
	Size() int
	// Channels is the number of lanes in use (3 or 4).
	Channels() int
	// Bits is the width of the color lanes.
	Bits() int

	UnpackInt(p []byte) IntVec
	PackInt(p []byte, v IntVec)

	// UnpackNorm divides every lane by 255, whatever its bit width.
	UnpackNorm(p []byte) FloatVec
	// PackNorm rounds v*255 half away from zero and keeps the bits that
	// fit each lane. v is expected to be clamped to [0,1] already.
	PackNorm(p []byte, v FloatVec)
}

// Supported formats.
var (
	R5G5B5   Format = fiveBit{channels: 3}
	R5G5B5A1 Format = fiveBit{channels: 4}
	R8G8B8   Format = eightBit{channels: 3}
	R8G8B8A8 Format = eightBit{channels: 4}
)

// Formats lists every supported format in ascending depth order.
func Formats() []Format {
	return []Format{R5G5B5, R5G5B5A1, R8G8B8, R8G8B8A8}
}

// ForDepth returns the format for a header pixel_depth value.
func ForDepth(depth uint8) (Format, error) {
	switch depth {
	case 15:
		return R5G5B5, nil
	case 16:
		return R5G5B5A1, nil
	case 24:
		return R8G8B8, nil
	case 32:
		return R8G8B8A8, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedDepth, depth)
}

// Name returns a short layout name such as "R5G5B5A1".
func Name(f Format) string {
	switch f.Depth() {
	case 15:
		return "R5G5B5"
	case 16:
		return "R5G5B5A1"
	case 24:
		return "R8G8B8"
	case 32:
		return "R8G8B8A8"
	}
	return fmt.Sprintf("depth%d", f.Depth())
}

// Clamp limits every lane of v to [0,1].
func Clamp(v FloatVec) FloatVec {
	for i, x := range v {
		switch {
		case x < 0:
			v[i] = 0
		case x > 1:
			v[i] = 1
		}
	}
	return v
}
