package appicon

import (
	"time"

	"github.com/visiona/castview/modules/appicon/internal/pixfmt"
)

// Frame is one decoded picture: an owned pixel buffer plus the
// geometry and format tag needed to interpret it. Frames come out of a
// decode backend and are consumed by surface adaptation; callers only
// handle them directly when plugging in a custom Decoder.
//
// The alias keeps the internal decode packages and the public API on
// one type (avoids an import cycle and a copy at the boundary).
type Frame = pixfmt.Frame

// FrameFormat identifies the memory layout of a Frame's pixel buffer.
type FrameFormat = pixfmt.Format

// Frame formats a decode backend may produce. Only the packed RGB
// subset can become a Surface; the rest exist so rejections can name
// what was actually decoded.
const (
	FormatUnknown  = pixfmt.Unknown
	FormatRGB24    = pixfmt.RGB24
	FormatBGR24    = pixfmt.BGR24
	FormatARGB     = pixfmt.ARGB
	FormatRGBA     = pixfmt.RGBA
	FormatABGR     = pixfmt.ABGR
	FormatBGRA     = pixfmt.BGRA
	FormatXRGB     = pixfmt.XRGB
	FormatRGBX     = pixfmt.RGBX
	FormatXBGR     = pixfmt.XBGR
	FormatBGRX     = pixfmt.BGRX
	FormatRGB565BE = pixfmt.RGB565BE
	FormatRGB555BE = pixfmt.RGB555BE
	FormatBGR565BE = pixfmt.BGR565BE
	FormatBGR555BE = pixfmt.BGR555BE
	FormatRGB444BE = pixfmt.RGB444BE
	FormatBGR444BE = pixfmt.BGR444BE
	FormatRGB48BE  = pixfmt.RGB48BE
	FormatRGBA64BE = pixfmt.RGBA64BE
	FormatYUV420P  = pixfmt.YUV420P
	FormatYUV422P  = pixfmt.YUV422P
	FormatYUV444P  = pixfmt.YUV444P
	FormatYUVA420P = pixfmt.YUVA420P
	FormatNV12     = pixfmt.NV12
	FormatYUYV422  = pixfmt.YUYV422
	FormatGRAY8    = pixfmt.GRAY8
	FormatGRAY16BE = pixfmt.GRAY16BE
	FormatPAL8     = pixfmt.PAL8
)

// Backend selects the decode engine used by a Loader.
type Backend int

const (
	// BackendAuto uses GStreamer when its decode elements are
	// available and falls back to the native Go codecs otherwise.
	BackendAuto Backend = iota
	// BackendNative forces the pure-Go codecs (PNG, JPEG, GIF, BMP,
	// TIFF, WebP, ICO, SVG). No system dependencies.
	BackendNative
	// BackendGStreamer forces the GStreamer pipeline. Construction
	// fails fast if the required elements are missing.
	BackendGStreamer
)

// String returns a human-readable name for the backend.
func (b Backend) String() string {
	switch b {
	case BackendAuto:
		return "auto"
	case BackendNative:
		return "native"
	case BackendGStreamer:
		return "gstreamer"
	default:
		return "invalid"
	}
}

// Config contains configuration for a Loader.
type Config struct {
	// Path overrides icon path resolution entirely. Empty means
	// resolve via the CASTVIEW_ICON_PATH environment variable and the
	// build-mode defaults.
	Path string
	// Backend selects the decode engine. Default: BackendAuto.
	Backend Backend
	// Decoder plugs in a custom decode engine. When set, Backend is
	// ignored and no backend probing happens.
	Decoder Decoder
	// MaxFileSize caps the icon file size in bytes for the native
	// backend. Zero means 8 MiB.
	MaxFileSize int64
	// DecodeTimeout bounds a single GStreamer decode. Zero means 10s.
	DecodeTimeout time.Duration
}

// LoaderStats contains current loader statistics.
type LoaderStats struct {
	// Loads is the total number of successful icon loads.
	Loads uint64
	// Failures is the total number of failed icon loads.
	Failures uint64
	// LiveFrames is the number of frames currently held alive,
	// module-wide.
	LiveFrames int64
	// LiveSurfaces is the number of surfaces not yet destroyed,
	// module-wide.
	LiveSurfaces int64
	// Backend names the decode engine the loader settled on.
	Backend string
}
