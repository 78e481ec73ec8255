package appicon

import (
	"fmt"

	"github.com/visiona/castview/modules/appicon/internal/alloc"
	"github.com/visiona/castview/modules/appicon/internal/guard"
	"github.com/visiona/castview/modules/appicon/internal/pixfmt"
)

// Surface is a decoded icon ready to hand to a windowing layer: packed
// RGB pixels plus the geometry a surface constructor needs.
//
// Data aliases the decoded frame's buffer; no pixel copy happens
// between decode and display. The surface owns that frame and keeps it
// alive until Destroy, so the pair can never come apart: there is no
// way to free the frame while a live Surface still points into it.
type Surface struct {
	// Width in pixels.
	Width int
	// Height in pixels.
	Height int
	// BitsPerPixel is the pixel depth (24 for RGB24, 15 for RGB555).
	BitsPerPixel int
	// Stride is the byte distance between the starts of adjacent rows,
	// possibly larger than the packed row width due to padding.
	Stride int
	// Format is the pixel layout of Data.
	Format PixelFormat
	// Data is the pixel buffer, Stride*Height bytes or more.
	Data []byte

	// frame is the decoded frame backing Data. Nil only after Destroy.
	frame *Frame
}

// newSurface validates the frame and wraps it without copying pixels,
// taking ownership. On any rejection the frame is released before
// returning, so a failed adaptation leaks nothing.
//
// The gate runs in fixed order: the format must be known, must be
// packed RGB (single interleaved buffer, no separate planes), and must
// have an entry in the surface format table. Each rejection names the
// decoded format so a misconfigured icon is diagnosable from the log
// alone.
func newSurface(frame *Frame) (*Surface, error) {
	var guards guard.Stack
	defer guards.Unwind()
	frameGuard := guards.Push("decoded frame", frame.Release)

	desc, ok := pixfmt.Describe(frame.Format)
	if !ok {
		return nil, fmt.Errorf("%w: format %s (%d)", ErrUnknownFormat, frame.Format, int(frame.Format))
	}
	if desc.Flags&pixfmt.FlagRGB == 0 || desc.Flags&pixfmt.FlagPlanar != 0 {
		return nil, fmt.Errorf("%w: format %s (%d)", ErrNotPackedRGB, frame.Format, int(frame.Format))
	}
	format, ok := surfaceFormats[frame.Format]
	if !ok {
		return nil, fmt.Errorf("%w: format %s (%d)", ErrUnsupportedFormat, frame.Format, int(frame.Format))
	}
	if frame.Stride <= 0 || len(frame.Data) < frame.Stride*frame.Height {
		return nil, fmt.Errorf("appicon: inconsistent frame: %d data bytes for stride %d, height %d",
			len(frame.Data), frame.Stride, frame.Height)
	}

	frameGuard.Detach()
	alloc.Surfaces.Inc()
	return &Surface{
		Width:        frame.Width,
		Height:       frame.Height,
		BitsPerPixel: desc.BitsPerPixel,
		Stride:       frame.Stride,
		Format:       format,
		Data:         frame.Data,
		frame:        frame,
	}, nil
}

// Destroy releases the surface and the decoded frame behind it. Call
// it exactly once per surface returned by Load.
//
// Destroying a zero, nil or already-destroyed Surface panics: the
// back-reference being gone means the lifecycle contract was already
// broken somewhere, and continuing would hide a double free.
func (s *Surface) Destroy() {
	if s == nil || s.frame == nil {
		panic("appicon: Destroy on nil or already-destroyed Surface")
	}
	s.frame.Release()
	s.frame = nil
	s.Data = nil
	alloc.Surfaces.Dec()
}
