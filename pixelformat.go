package appicon

import "fmt"

// PixelFormat identifies the pixel layout of a Surface, named by byte
// order in memory. It is the vocabulary a windowing layer consumes;
// FrameFormat is the wider vocabulary the decoders produce.
type PixelFormat int

const (
	// PixelFormatUnknown is the zero value; no valid Surface carries it.
	PixelFormatUnknown PixelFormat = iota
	// PixelFormatRGB24 is 24-bit packed RGB, 3 bytes per pixel.
	PixelFormatRGB24
	// PixelFormatBGR24 is 24-bit packed BGR, 3 bytes per pixel.
	PixelFormatBGR24
	// PixelFormatARGB8888 is 32-bit packed ARGB, 4 bytes per pixel.
	PixelFormatARGB8888
	// PixelFormatRGBA8888 is 32-bit packed RGBA, 4 bytes per pixel.
	PixelFormatRGBA8888
	// PixelFormatABGR8888 is 32-bit packed ABGR, 4 bytes per pixel.
	PixelFormatABGR8888
	// PixelFormatBGRA8888 is 32-bit packed BGRA, 4 bytes per pixel.
	PixelFormatBGRA8888
	// PixelFormatRGB565 is 16-bit packed RGB, 5-6-5 bits per channel.
	PixelFormatRGB565
	// PixelFormatRGB555 is 15-bit packed RGB in 16-bit words, 5-5-5 bits.
	PixelFormatRGB555
	// PixelFormatBGR565 is 16-bit packed BGR, 5-6-5 bits per channel.
	PixelFormatBGR565
	// PixelFormatBGR555 is 15-bit packed BGR in 16-bit words, 5-5-5 bits.
	PixelFormatBGR555
	// PixelFormatRGB444 is 12-bit packed RGB in 16-bit words, 4-4-4 bits.
	PixelFormatRGB444
	// PixelFormatBGR444 is 12-bit packed BGR in 16-bit words, 4-4-4 bits.
	PixelFormatBGR444
)

// String returns the canonical name of the pixel format.
func (p PixelFormat) String() string {
	switch p {
	case PixelFormatRGB24:
		return "RGB24"
	case PixelFormatBGR24:
		return "BGR24"
	case PixelFormatARGB8888:
		return "ARGB8888"
	case PixelFormatRGBA8888:
		return "RGBA8888"
	case PixelFormatABGR8888:
		return "ABGR8888"
	case PixelFormatBGRA8888:
		return "BGRA8888"
	case PixelFormatRGB565:
		return "RGB565"
	case PixelFormatRGB555:
		return "RGB555"
	case PixelFormatBGR565:
		return "BGR565"
	case PixelFormatBGR555:
		return "BGR555"
	case PixelFormatRGB444:
		return "RGB444"
	case PixelFormatBGR444:
		return "BGR444"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// surfaceFormats maps decoded frame formats to surface pixel formats.
// The table is fixed and explicit rather than derived: both sides
// mirror external enumerations, and only these twelve packed RGB
// layouts have a surface counterpart. A packed RGB frame whose format
// is missing here (the filler-byte 32-bit variants, the deep 48/64-bit
// layouts) is rejected, not approximated.
var surfaceFormats = map[FrameFormat]PixelFormat{
	FormatRGB24:    PixelFormatRGB24,
	FormatBGR24:    PixelFormatBGR24,
	FormatARGB:     PixelFormatARGB8888,
	FormatRGBA:     PixelFormatRGBA8888,
	FormatABGR:     PixelFormatABGR8888,
	FormatBGRA:     PixelFormatBGRA8888,
	FormatRGB565BE: PixelFormatRGB565,
	FormatRGB555BE: PixelFormatRGB555,
	FormatBGR565BE: PixelFormatBGR565,
	FormatBGR555BE: PixelFormatBGR555,
	FormatRGB444BE: PixelFormatRGB444,
	FormatBGR444BE: PixelFormatBGR444,
}
