package appicon

import "github.com/visiona/castview/modules/appicon/internal/pixfmt"

// Decoder defines the contract for a decode engine.
//
// Implementations must guarantee:
//   - Decode() is a one-shot call: one path in, at most one frame out
//   - The returned frame is owned by the caller and built with
//     NewFrame so allocation accounting stays balanced
//   - Decode() returns (nil, error) on any failure; never a partial
//     frame
//   - No state is shared between calls; concurrent Decode() calls on
//     the same Decoder are safe
type Decoder interface {
	// Decode reads the image at path and returns its first picture.
	Decode(path string) (*Frame, error)
}

// NewFrame builds a Frame from raw pixel data. Custom Decoder
// implementations must use it instead of a struct literal: it
// registers the frame with the module's allocation accounting, which
// is how leak checks in tests and LoaderStats.LiveFrames stay honest.
func NewFrame(data []byte, width, height, stride int, format FrameFormat) *Frame {
	return pixfmt.NewFrame(data, width, height, stride, format)
}
