package pixfmt

import "github.com/visiona/castview/modules/appicon/internal/alloc"

// Frame is one decoded picture: an owned pixel buffer plus the
// geometry and format needed to interpret it.
//
// Frames are produced by the decode backends and consumed by surface
// adaptation, which either takes ownership or releases them on the
// failure path. Creation and release move the live-frame gauge, so
// ownership transfers stay observable.
type Frame struct {
	// Data holds the pixel bytes. Packed formats use one interleaved
	// buffer; planar formats store their planes consecutively.
	Data []byte
	// Width in pixels
	Width int
	// Height in pixels
	Height int
	// Stride is the number of bytes per row of the first plane.
	Stride int
	// Format tags the layout of Data.
	Format Format

	released bool
}

// NewFrame creates a frame and records it in the live-frame gauge.
func NewFrame(data []byte, width, height, stride int, format Format) *Frame {
	alloc.Frames.Inc()
	return &Frame{
		Data:   data,
		Width:  width,
		Height: height,
		Stride: stride,
		Format: format,
	}
}

// Release drops the frame's buffer and decrements the live-frame
// gauge. Only the first call counts; releasing a nil frame is a
// no-op.
func (f *Frame) Release() {
	if f == nil || f.released {
		return
	}
	f.released = true
	f.Data = nil
	alloc.Frames.Dec()
}
