package gstdec

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tinyzimmer/go-gst/gst"

	"github.com/visiona/castview/modules/appicon/internal/guard"
	"github.com/visiona/castview/modules/appicon/internal/pixfmt"
)

// DefaultTimeout bounds a single decode. Icons decode in milliseconds;
// the margin covers cold plugin registry scans on first use.
const DefaultTimeout = 10 * time.Second

// Decoder decodes one picture per call through GStreamer.
type Decoder struct {
	// Timeout bounds the whole decode. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Available reports whether the GStreamer elements this backend needs
// can be created. It is cheap enough to call once at startup to pick a
// backend.
func Available() bool {
	gst.Init(nil)
	for _, name := range []string{"filesrc", "decodebin"} {
		elem, err := gst.NewElement(name)
		if err != nil {
			slog.Debug("gstdec: element unavailable", "element", name, "error", err)
			return false
		}
		elem.SetState(gst.StateNull)
	}
	return true
}

// Decode runs the icon at path through a decode pipeline and returns
// the first video frame. The pixel data is copied out of GStreamer
// before the pipeline is torn down, so the returned frame has no ties
// to the pipeline.
func (d *Decoder) Decode(path string) (*pixfmt.Frame, error) {
	timeout := d.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	// filesrc reports missing files poorly; stat first for a clear
	// error before any pipeline exists.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat icon: %w", err)
	}

	var guards guard.Stack
	defer guards.Unwind()

	elements, err := CreatePipeline(path)
	if err != nil {
		return nil, fmt.Errorf("build pipeline: %w", err)
	}
	guards.Push("gstreamer pipeline", func() { DestroyPipeline(elements) })

	if err := elements.Pipeline.SetState(gst.StatePlaying); err != nil {
		return nil, fmt.Errorf("start pipeline: %w", err)
	}

	// Buffered so the goroutine can deliver and exit even after a
	// timeout has abandoned the select below.
	samples := make(chan *gst.Sample, 1)
	go func() {
		samples <- elements.AppSink.PullSample()
	}()

	var sample *gst.Sample
	select {
	case sample = <-samples:
	case <-time.After(timeout):
		return nil, fmt.Errorf("decode timed out after %s", timeout)
	}

	if sample == nil {
		if gerr := drainBusError(elements.Pipeline); gerr != nil {
			slog.Debug("gstdec: pipeline error detail", "debug", gerr.DebugString())
			return nil, fmt.Errorf("%s error: %s", ClassifyDecodeError(gerr), gerr.Error())
		}
		return nil, fmt.Errorf("no video frame produced (stream ended before a frame)")
	}

	frame, err := frameFromSample(sample)
	if err != nil {
		return nil, fmt.Errorf("extract frame: %w", err)
	}

	slog.Debug("gstdec: icon decoded",
		"path", path,
		"width", frame.Width,
		"height", frame.Height,
		"format", frame.Format.String(),
	)

	return frame, nil
}

// drainBusError scans queued bus messages for the first error. It
// returns nil when the bus drains without one.
func drainBusError(pipeline *gst.Pipeline) *gst.GError {
	bus := pipeline.GetPipelineBus()
	if bus == nil {
		return nil
	}
	for {
		msg := bus.TimedPop(100 * time.Millisecond)
		if msg == nil {
			return nil
		}
		switch msg.Type() {
		case gst.MessageError:
			return msg.ParseError()
		case gst.MessageEOS:
			return nil
		}
	}
}
