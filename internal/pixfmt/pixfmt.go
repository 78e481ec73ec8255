// Package pixfmt defines the pixel format vocabulary shared by the
// decode backends: format tags, per-format descriptors, and the frame
// type that carries decoded pixels.
package pixfmt

import "fmt"

// Format identifies the memory layout of decoded pixel data.
type Format int

const (
	// Unknown is the zero value; no descriptor exists for it.
	Unknown Format = iota

	// RGB24 is 24-bit packed RGB, one byte per channel.
	RGB24
	// BGR24 is 24-bit packed BGR.
	BGR24

	// ARGB is 32-bit packed RGB with alpha, bytes in the named order.
	ARGB
	// RGBA is 32-bit packed RGB with trailing alpha.
	RGBA
	// ABGR is 32-bit packed BGR with leading alpha.
	ABGR
	// BGRA is 32-bit packed BGR with trailing alpha.
	BGRA

	// XRGB is 32-bit packed RGB with one undefined byte.
	XRGB
	// RGBX is 32-bit packed RGB with one trailing undefined byte.
	RGBX
	// XBGR is 32-bit packed BGR with one undefined byte.
	XBGR
	// BGRX is 32-bit packed BGR with one trailing undefined byte.
	BGRX

	// RGB565BE is 16-bit packed RGB (5-6-5), big-endian words.
	RGB565BE
	// RGB555BE is 15-bit packed RGB (5-5-5), big-endian words.
	RGB555BE
	// BGR565BE is 16-bit packed BGR (5-6-5), big-endian words.
	BGR565BE
	// BGR555BE is 15-bit packed BGR (5-5-5), big-endian words.
	BGR555BE
	// RGB444BE is 12-bit packed RGB (4-4-4), big-endian words.
	RGB444BE
	// BGR444BE is 12-bit packed BGR (4-4-4), big-endian words.
	BGR444BE

	// RGB48BE is packed RGB with 16 bits per channel, big-endian.
	RGB48BE
	// RGBA64BE is packed RGBA with 16 bits per channel, big-endian.
	RGBA64BE

	// YUV420P is planar YUV with 2x2 chroma subsampling.
	YUV420P
	// YUV422P is planar YUV with 2x1 chroma subsampling.
	YUV422P
	// YUV444P is planar YUV without chroma subsampling.
	YUV444P
	// YUVA420P is planar YUV 4:2:0 with an alpha plane.
	YUVA420P
	// NV12 is biplanar YUV 4:2:0 with interleaved chroma.
	NV12

	// YUYV422 is packed YUV 4:2:2.
	YUYV422

	// GRAY8 is 8-bit grayscale.
	GRAY8
	// GRAY16BE is 16-bit grayscale, big-endian.
	GRAY16BE

	// PAL8 is 8-bit indices into an external palette.
	PAL8
)

// Flags describe layout traits of a format.
type Flags uint8

const (
	// FlagRGB marks RGB-family color models.
	FlagRGB Flags = 1 << iota
	// FlagPlanar marks formats storing channels in separate planes.
	FlagPlanar
	// FlagAlpha marks formats carrying an alpha channel.
	FlagAlpha
	// FlagPalette marks formats whose bytes index a palette.
	FlagPalette
)

// Descriptor carries the per-format metadata the surface gate needs.
type Descriptor struct {
	// Name is the canonical lowercase format name.
	Name string
	// BitsPerPixel counts component bits per pixel, not storage bits:
	// rgb555be is 15 even though each pixel occupies 16 bits.
	BitsPerPixel int
	// Flags describe the layout.
	Flags Flags
}

// descriptors is the format registry. Formats absent here (and
// Unknown) have no descriptor and fail the surface gate outright.
var descriptors = map[Format]Descriptor{
	RGB24:    {"rgb24", 24, FlagRGB},
	BGR24:    {"bgr24", 24, FlagRGB},
	ARGB:     {"argb", 32, FlagRGB | FlagAlpha},
	RGBA:     {"rgba", 32, FlagRGB | FlagAlpha},
	ABGR:     {"abgr", 32, FlagRGB | FlagAlpha},
	BGRA:     {"bgra", 32, FlagRGB | FlagAlpha},
	XRGB:     {"xrgb", 24, FlagRGB},
	RGBX:     {"rgbx", 24, FlagRGB},
	XBGR:     {"xbgr", 24, FlagRGB},
	BGRX:     {"bgrx", 24, FlagRGB},
	RGB565BE: {"rgb565be", 16, FlagRGB},
	RGB555BE: {"rgb555be", 15, FlagRGB},
	BGR565BE: {"bgr565be", 16, FlagRGB},
	BGR555BE: {"bgr555be", 15, FlagRGB},
	RGB444BE: {"rgb444be", 12, FlagRGB},
	BGR444BE: {"bgr444be", 12, FlagRGB},
	RGB48BE:  {"rgb48be", 48, FlagRGB},
	RGBA64BE: {"rgba64be", 64, FlagRGB | FlagAlpha},
	YUV420P:  {"yuv420p", 12, FlagPlanar},
	YUV422P:  {"yuv422p", 16, FlagPlanar},
	YUV444P:  {"yuv444p", 24, FlagPlanar},
	YUVA420P: {"yuva420p", 20, FlagPlanar | FlagAlpha},
	NV12:     {"nv12", 12, FlagPlanar},
	YUYV422:  {"yuyv422", 16, 0},
	GRAY8:    {"gray8", 8, 0},
	GRAY16BE: {"gray16be", 16, 0},
	PAL8:     {"pal8", 8, FlagPalette},
}

// Describe returns the descriptor for f. The second result is false
// for Unknown and unregistered formats.
func Describe(f Format) (Descriptor, bool) {
	desc, ok := descriptors[f]
	return desc, ok
}

// String returns the canonical format name, or "unknown(N)" for
// formats without a descriptor.
func (f Format) String() string {
	if desc, ok := descriptors[f]; ok {
		return desc.Name
	}
	return fmt.Sprintf("unknown(%d)", int(f))
}
