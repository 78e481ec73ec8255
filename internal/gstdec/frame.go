package gstdec

import (
	"fmt"
	"log/slog"

	"github.com/tinyzimmer/go-gst/gst"

	"github.com/visiona/castview/modules/appicon/internal/pixfmt"
)

// capsFormats maps video/x-raw caps format names to frame formats.
// Formats the plugin set can emit but that have no entry here come
// back as Unknown; downstream validation rejects those with a clear
// message instead of guessing at a layout.
var capsFormats = map[string]pixfmt.Format{
	"RGB":  pixfmt.RGB24,
	"BGR":  pixfmt.BGR24,
	"RGBA": pixfmt.RGBA,
	"BGRA": pixfmt.BGRA,
	"ARGB": pixfmt.ARGB,
	"ABGR": pixfmt.ABGR,
	"RGBx": pixfmt.RGBX,
	"BGRx": pixfmt.BGRX,
	"xRGB": pixfmt.XRGB,
	"xBGR": pixfmt.XBGR,
	"I420": pixfmt.YUV420P,
	// YV12 differs from I420 only in chroma plane order.
	"YV12":      pixfmt.YUV420P,
	"Y42B":      pixfmt.YUV422P,
	"Y444":      pixfmt.YUV444P,
	"A420":      pixfmt.YUVA420P,
	"NV12":      pixfmt.NV12,
	"YUY2":      pixfmt.YUYV422,
	"GRAY8":     pixfmt.GRAY8,
	"GRAY16_BE": pixfmt.GRAY16BE,
}

// frameFromSample copies the sample's pixel data into a frame. Caps
// carry the geometry; the buffer carries the pixels. The copy decouples
// the frame from GStreamer's buffer pool before the pipeline dies.
func frameFromSample(sample *gst.Sample) (*pixfmt.Frame, error) {
	buffer := sample.GetBuffer()
	if buffer == nil {
		return nil, fmt.Errorf("sample has no buffer")
	}
	caps := sample.GetCaps()
	if caps == nil {
		return nil, fmt.Errorf("sample has no caps")
	}
	st := caps.GetStructureAt(0)
	if st == nil {
		return nil, fmt.Errorf("sample caps have no structure")
	}

	width, err := intField(st, "width")
	if err != nil {
		return nil, err
	}
	height, err := intField(st, "height")
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame geometry %dx%d", width, height)
	}

	name, err := stringField(st, "format")
	if err != nil {
		return nil, err
	}
	format, ok := capsFormats[name]
	if !ok {
		format = pixfmt.Unknown
		slog.Warn("gstdec: unmapped caps format", "caps_format", name)
	}

	mapInfo := buffer.Map(gst.MapRead)
	if mapInfo == nil {
		return nil, fmt.Errorf("map sample buffer")
	}
	defer buffer.Unmap()

	raw := mapInfo.Bytes()
	if len(raw)%height != 0 {
		return nil, fmt.Errorf("buffer size %d not divisible by height %d", len(raw), height)
	}
	data := make([]byte, len(raw))
	copy(data, raw)

	return pixfmt.NewFrame(data, width, height, len(data)/height, format), nil
}

func intField(st *gst.Structure, name string) (int, error) {
	v, err := st.GetValue(name)
	if err != nil {
		return 0, fmt.Errorf("caps field %q: %w", name, err)
	}
	n, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("caps field %q: unexpected type %T", name, v)
	}
	return n, nil
}

func stringField(st *gst.Structure, name string) (string, error) {
	v, err := st.GetValue(name)
	if err != nil {
		return "", fmt.Errorf("caps field %q: %w", name, err)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("caps field %q: unexpected type %T", name, v)
	}
	return s, nil
}
