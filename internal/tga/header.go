// Package tga implements the fixed 18-byte Truevision TGA header and the
// container checks needed before pixel data can be resampled.
//
// Layout (little-endian, no padding):
//
//	0  id_length        u8
//	1  color_map_type   u8
//	2  image_type       u8
//	3  color_map_spec   [5]u8
//	8  x_origin         u16
//	10 y_origin         u16
//	12 width            u16
//	14 height           u16
//	16 pixel_depth      u8
//	17 descriptor       u8  (alpha:4, right-to-left:1, top-to-bottom:1, reserved:2)
package tga

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// HeaderSize is the encoded size of Header in bytes.
const HeaderSize = 18

// TrueColor is the image_type code for uncompressed true-color images.
const TrueColor = 2

var (
	ErrShortHeader  = errors.New("header shorter than 18 bytes")
	ErrTruncated    = errors.New("file truncated")
	ErrColorMapped  = errors.New("color map is not supported")
	ErrNotTrueColor = errors.New("only uncompressed true-color image is supported")
)

const (
	alphaMask      = 0x0f
	rightToLeftBit = 1 << 4
	topToBottomBit = 1 << 5
	reservedMask   = 0xc0
)

// ImageSpec is the embedded image specification of a Header.
type ImageSpec struct {
	XOrigin     uint16
	YOrigin     uint16
	Width       uint16
	Height      uint16
	PixelDepth  uint8
	AlphaDepth  uint8 // 4 bits
	RightToLeft bool
	TopToBottom bool

	// Reserved holds descriptor bits 6-7 exactly as read so that a
	// re-encoded header is byte-identical to its source.
	Reserved uint8
}

// Header is the TGA file header.
type Header struct {
	IDLength     uint8
	ColorMapType uint8
	ImageType    uint8
	ColorMapSpec [5]byte
	Spec         ImageSpec
}

// ParseHeader decodes the first HeaderSize bytes of b.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, ErrShortHeader
	}

	var h Header
	h.IDLength = b[0]
	h.ColorMapType = b[1]
	h.ImageType = b[2]
	copy(h.ColorMapSpec[:], b[3:8])

	le := binary.LittleEndian
	h.Spec.XOrigin = le.Uint16(b[8:10])
	h.Spec.YOrigin = le.Uint16(b[10:12])
	h.Spec.Width = le.Uint16(b[12:14])
	h.Spec.Height = le.Uint16(b[14:16])
	h.Spec.PixelDepth = b[16]

	d := b[17]
	h.Spec.AlphaDepth = d & alphaMask
	h.Spec.RightToLeft = d&rightToLeftBit != 0
	h.Spec.TopToBottom = d&topToBottomBit != 0
	h.Spec.Reserved = (d & reservedMask) >> 6

	return h, nil
}

// Put encodes h into the first HeaderSize bytes of b. It panics if b is
// too short, like binary.LittleEndian.PutUint16.
func (h Header) Put(b []byte) {
	_ = b[HeaderSize-1]

	b[0] = h.IDLength
	b[1] = h.ColorMapType
	b[2] = h.ImageType
	copy(b[3:8], h.ColorMapSpec[:])

	le := binary.LittleEndian
	le.PutUint16(b[8:10], h.Spec.XOrigin)
	le.PutUint16(b[10:12], h.Spec.YOrigin)
	le.PutUint16(b[12:14], h.Spec.Width)
	le.PutUint16(b[14:16], h.Spec.Height)
	b[16] = h.Spec.PixelDepth
	b[17] = h.Spec.descriptor()
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (h Header) MarshalBinary() ([]byte, error) {
	b := make([]byte, HeaderSize)
	h.Put(b)
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (h *Header) UnmarshalBinary(b []byte) error {
	parsed, err := ParseHeader(b)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

func (s ImageSpec) descriptor() byte {
	d := s.AlphaDepth & alphaMask
	if s.RightToLeft {
		d |= rightToLeftBit
	}
	if s.TopToBottom {
		d |= topToBottomBit
	}
	d |= (s.Reserved << 6) & reservedMask
	return d
}

// Validate reports whether the header describes an image the resamplers
// can work on: no color map and uncompressed true-color data.
func (h Header) Validate() error {
	if h.ColorMapType != 0 {
		return ErrColorMapped
	}
	if h.ImageType != TrueColor {
		return ErrNotTrueColor
	}
	return nil
}

// Halved returns a copy of h with width and height divided by two.
// Odd dimensions lose their last column or row.
func (h Header) Halved() Header {
	out := h
	out.Spec.Width = h.Spec.Width / 2
	out.Spec.Height = h.Spec.Height / 2
	return out
}

// PixelOffset is the file offset of the first pixel record.
func (h Header) PixelOffset() int {
	return HeaderSize + int(h.IDLength)
}

// Split parses the header of a whole TGA file and returns the bytes that
// follow the identification field.
func Split(file []byte) (Header, []byte, error) {
	h, err := ParseHeader(file)
	if err != nil {
		return Header{}, nil, err
	}
	off := h.PixelOffset()
	if off > len(file) {
		return Header{}, nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, off, len(file))
	}
	return h, file[off:], nil
}

// PixelData returns the header of file and its first width×height records
// of recordSize bytes. Files written by the downscaler repeat the source
// id_length without carrying the field; when the file is exactly header
// plus pixels the id field is taken to be absent.
func PixelData(file []byte, recordSize int) (Header, []byte, error) {
	h, err := ParseHeader(file)
	if err != nil {
		return Header{}, nil, err
	}
	need := int(h.Spec.Width) * int(h.Spec.Height) * recordSize

	var rest []byte
	switch off := h.PixelOffset(); {
	case h.IDLength > 0 && len(file) == HeaderSize+need:
		rest = file[HeaderSize:]
	case off <= len(file):
		rest = file[off:]
	}
	if len(rest) < need {
		return Header{}, nil, fmt.Errorf("%w: pixel data needs %d bytes, have %d", ErrTruncated, need, len(rest))
	}
	return h, rest[:need], nil
}

// String returns a compact one-line description for diagnostics.
func (h Header) String() string {
	return fmt.Sprintf("%dx%d %d-bit type=%d cmap=%d id=%d",
		h.Spec.Width, h.Spec.Height, h.Spec.PixelDepth, h.ImageType, h.ColorMapType, h.IDLength)
}
