package appicon

import "errors"

// Sentinel errors returned (wrapped, with the offending format
// attached) when a decoded frame cannot become a Surface. Match them
// with errors.Is to distinguish "decoder gave us something strange"
// from "file could not be decoded at all".
var (
	// ErrUnknownFormat means the frame's format tag has no descriptor.
	ErrUnknownFormat = errors.New("appicon: unknown frame format")

	// ErrNotPackedRGB means the frame is planar, YUV, grayscale or
	// palette-indexed rather than a single interleaved RGB buffer.
	ErrNotPackedRGB = errors.New("appicon: frame is not packed RGB")

	// ErrUnsupportedFormat means the frame is packed RGB but its
	// layout has no entry in the surface format table.
	ErrUnsupportedFormat = errors.New("appicon: no surface format for frame layout")
)
