package pixel

import (
	"encoding/binary"
	"math"
)

const maxByte = 255

// quantize scales a normalized lane to the 8-bit range.
func quantize(x float32) uint32 {
	return uint32(math.Round(float64(x * maxByte)))
}

// fiveBit is a 16-bit little-endian record with 5-bit lanes at bits 0, 5
// and 10 and, for four channels, a 1-bit lane at bit 15.
type fiveBit struct {
	channels int
}

func (f fiveBit) Depth() int {
	if f.channels == 4 {
		return 16
	}
	return 15
}

func (fiveBit) Size() int       { return 2 }
func (f fiveBit) Channels() int { return f.channels }
func (fiveBit) Bits() int       { return 5 }

func (f fiveBit) UnpackInt(p []byte) IntVec {
	w := binary.LittleEndian.Uint16(p)
	v := IntVec{
		uint32(w & 0x1f),
		uint32((w >> 5) & 0x1f),
		uint32((w >> 10) & 0x1f),
	}
	if f.channels == 4 {
		v[3] = uint32(w >> 15)
	}
	return v
}

func (f fiveBit) PackInt(p []byte, v IntVec) {
	w := uint16(v[0]&0x1f) | uint16(v[1]&0x1f)<<5 | uint16(v[2]&0x1f)<<10
	if f.channels == 4 {
		w |= uint16(v[3]&1) << 15
	}
	binary.LittleEndian.PutUint16(p, w)
}

func (f fiveBit) UnpackNorm(p []byte) FloatVec {
	iv := f.UnpackInt(p)
	var v FloatVec
	for i := 0; i < f.channels; i++ {
		v[i] = float32(iv[i]) / maxByte
	}
	return v
}

func (f fiveBit) PackNorm(p []byte, v FloatVec) {
	var iv IntVec
	for i := 0; i < f.channels; i++ {
		iv[i] = quantize(v[i])
	}
	f.PackInt(p, iv)
}

// eightBit stores one byte per lane in file order.
type eightBit struct {
	channels int
}

func (f eightBit) Depth() int    { return f.channels * 8 }
func (f eightBit) Size() int     { return f.channels }
func (f eightBit) Channels() int { return f.channels }
func (eightBit) Bits() int       { return 8 }

func (f eightBit) UnpackInt(p []byte) IntVec {
	var v IntVec
	for i := 0; i < f.channels; i++ {
		v[i] = uint32(p[i])
	}
	return v
}

func (f eightBit) PackInt(p []byte, v IntVec) {
	for i := 0; i < f.channels; i++ {
		p[i] = uint8(v[i])
	}
}

func (f eightBit) UnpackNorm(p []byte) FloatVec {
	var v FloatVec
	for i := 0; i < f.channels; i++ {
		v[i] = float32(p[i]) / maxByte
	}
	return v
}

func (f eightBit) PackNorm(p []byte, v FloatVec) {
	for i := 0; i < f.channels; i++ {
		p[i] = uint8(quantize(v[i]))
	}
}
