// Package gstdec decodes icon files through a GStreamer pipeline.
//
// It is the decode backend used when a GStreamer runtime is available:
// filesrc feeds decodebin, decodebin autoplugs whatever demuxer and
// decoder the installed plugin set offers, and an appsink hands the
// first decoded video frame back to Go. One pipeline per call; the
// pipeline never outlives the decode.
package gstdec

import (
	"fmt"
	"log/slog"

	"github.com/tinyzimmer/go-gst/gst"
	"github.com/tinyzimmer/go-gst/gst/app"
)

// PipelineElements holds the constructed pipeline and the elements
// that need direct access after construction.
type PipelineElements struct {
	Pipeline *gst.Pipeline
	FileSrc  *gst.Element
	Decode   *gst.Element
	AppSink  *app.Sink
}

// CreatePipeline builds filesrc ! decodebin ! appsink for the icon at
// path. decodebin pads appear only once decoding starts, so the
// decodebin-to-appsink link happens in the pad-added callback.
func CreatePipeline(path string) (*PipelineElements, error) {
	gst.Init(nil)

	pipeline, err := gst.NewPipeline("")
	if err != nil {
		return nil, fmt.Errorf("create pipeline: %w", err)
	}

	filesrc, err := gst.NewElement("filesrc")
	if err != nil {
		return nil, fmt.Errorf("create filesrc: %w", err)
	}
	if err := filesrc.SetProperty("location", path); err != nil {
		return nil, fmt.Errorf("set filesrc location: %w", err)
	}

	decode, err := gst.NewElement("decodebin")
	if err != nil {
		return nil, fmt.Errorf("create decodebin: %w", err)
	}

	appsink, err := app.NewAppSink()
	if err != nil {
		return nil, fmt.Errorf("create appsink: %w", err)
	}
	// Raw video only. decodebin would otherwise happily hand over
	// audio pads from formats that carry both.
	caps := gst.NewCapsFromString("video/x-raw")
	if err := appsink.SetProperty("caps", caps); err != nil {
		return nil, fmt.Errorf("set appsink caps: %w", err)
	}
	if err := appsink.SetProperty("sync", false); err != nil {
		return nil, fmt.Errorf("set appsink sync: %w", err)
	}
	if err := appsink.SetProperty("max-buffers", uint(1)); err != nil {
		return nil, fmt.Errorf("set appsink max-buffers: %w", err)
	}

	if err := pipeline.AddMany(filesrc, decode, appsink.Element); err != nil {
		return nil, fmt.Errorf("add elements to pipeline: %w", err)
	}
	if err := gst.ElementLinkMany(filesrc, decode); err != nil {
		return nil, fmt.Errorf("link filesrc to decodebin: %w", err)
	}

	elements := &PipelineElements{
		Pipeline: pipeline,
		FileSrc:  filesrc,
		Decode:   decode,
		AppSink:  appsink,
	}

	if _, err := decode.Connect("pad-added", elements.onPadAdded); err != nil {
		return nil, fmt.Errorf("connect pad-added: %w", err)
	}

	slog.Debug("gstdec: pipeline created", "path", path)
	return elements, nil
}

// onPadAdded links a fresh decodebin source pad to the appsink. Pads
// that do not match the appsink caps fail the link and are skipped.
func (e *PipelineElements) onPadAdded(_ *gst.Element, srcPad *gst.Pad) {
	sinkPad := e.AppSink.Element.GetStaticPad("sink")
	if sinkPad == nil {
		slog.Error("gstdec: appsink has no sink pad")
		return
	}
	if ret := srcPad.Link(sinkPad); ret != gst.PadLinkOK {
		slog.Debug("gstdec: skipping unlinkable decodebin pad",
			"pad", srcPad.GetName(),
			"result", ret,
		)
		return
	}
	slog.Debug("gstdec: decodebin pad linked", "pad", srcPad.GetName())
}

// DestroyPipeline sets the pipeline to NULL, releasing every element
// and unblocking any pending appsink pull.
func DestroyPipeline(e *PipelineElements) {
	if e == nil || e.Pipeline == nil {
		return
	}
	if err := e.Pipeline.SetState(gst.StateNull); err != nil {
		slog.Warn("gstdec: failed to set pipeline to NULL", "error", err)
	}
	slog.Debug("gstdec: pipeline destroyed")
}
