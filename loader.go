package appicon

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/visiona/castview/modules/appicon/internal/alloc"
	"github.com/visiona/castview/modules/appicon/internal/gstdec"
	"github.com/visiona/castview/modules/appicon/internal/iconpath"
	"github.com/visiona/castview/modules/appicon/internal/imgdec"
)

// EnvVar is the environment variable that overrides icon path
// resolution. Presence counts, not content: an empty value is an
// override to an empty path, which then fails at open time.
const EnvVar = iconpath.EnvVar

// Loader loads the application icon and adapts it for display.
//
// A Loader is cheap and stateless between calls; each Load resolves,
// decodes and validates from scratch. The counters behind Stats() are
// the only thing that accumulates.
type Loader struct {
	cfg         Config
	decoder     Decoder
	backendName string

	loads    atomic.Uint64
	failures atomic.Uint64
}

// New creates a Loader for the given configuration.
//
// Configuration problems fail here, not at Load time: an out-of-range
// backend, negative limits, or a forced GStreamer backend on a system
// without the needed elements all return an error immediately.
func New(cfg Config) (*Loader, error) {
	if cfg.Backend < BackendAuto || cfg.Backend > BackendGStreamer {
		return nil, fmt.Errorf("appicon: invalid backend %d", int(cfg.Backend))
	}
	if cfg.MaxFileSize < 0 {
		return nil, fmt.Errorf("appicon: negative MaxFileSize %d", cfg.MaxFileSize)
	}
	if cfg.DecodeTimeout < 0 {
		return nil, fmt.Errorf("appicon: negative DecodeTimeout %s", cfg.DecodeTimeout)
	}

	l := &Loader{cfg: cfg}
	switch {
	case cfg.Decoder != nil:
		l.decoder = cfg.Decoder
		l.backendName = "custom"

	case cfg.Backend == BackendNative:
		l.decoder = &imgdec.Decoder{MaxFileSize: cfg.MaxFileSize}
		l.backendName = BackendNative.String()

	case cfg.Backend == BackendGStreamer:
		if !gstdec.Available() {
			return nil, fmt.Errorf("appicon: gstreamer backend unavailable (missing filesrc/decodebin elements)")
		}
		l.decoder = &gstdec.Decoder{Timeout: cfg.DecodeTimeout}
		l.backendName = BackendGStreamer.String()

	default:
		if gstdec.Available() {
			l.decoder = &gstdec.Decoder{Timeout: cfg.DecodeTimeout}
			l.backendName = BackendGStreamer.String()
		} else {
			slog.Debug("appicon: gstreamer unavailable, falling back to native codecs")
			l.decoder = &imgdec.Decoder{MaxFileSize: cfg.MaxFileSize}
			l.backendName = BackendNative.String()
		}
	}

	slog.Debug("appicon: loader created", "backend", l.backendName)
	return l, nil
}

// Load resolves the icon path, decodes the image behind it and wraps
// the result in a display-ready Surface.
//
// The three stages run in sequence and any failure aborts the call:
// the caller gets either a fully valid Surface or an error, never a
// partial result. Nothing is retried and nothing is cached; a failed
// Load leaves no allocations behind. The caller owns the returned
// Surface and must Destroy it exactly once.
func (l *Loader) Load() (*Surface, error) {
	traceID := uuid.New().String()

	path := l.cfg.Path
	source := "config"
	if path == "" {
		var src iconpath.Source
		var err error
		path, src, err = iconpath.Resolve()
		if err != nil {
			l.failures.Add(1)
			slog.Error("appicon: icon path resolution failed",
				"trace_id", traceID,
				"error", err,
			)
			return nil, fmt.Errorf("appicon: resolve icon path: %w", err)
		}
		source = src.String()
	}

	slog.Debug("appicon: loading icon",
		"trace_id", traceID,
		"path", path,
		"source", source,
		"backend", l.backendName,
	)

	frame, err := l.decoder.Decode(path)
	if err != nil {
		l.failures.Add(1)
		slog.Error("appicon: icon decode failed",
			"trace_id", traceID,
			"path", path,
			"backend", l.backendName,
			"error", err,
		)
		return nil, fmt.Errorf("appicon: decode %s: %w", path, err)
	}

	surface, err := newSurface(frame)
	if err != nil {
		l.failures.Add(1)
		slog.Error("appicon: decoded icon not displayable",
			"trace_id", traceID,
			"path", path,
			"error", err,
		)
		return nil, fmt.Errorf("appicon: adapt %s: %w", path, err)
	}

	l.loads.Add(1)
	slog.Info("appicon: icon loaded",
		"trace_id", traceID,
		"path", path,
		"source", source,
		"backend", l.backendName,
		"width", surface.Width,
		"height", surface.Height,
		"format", surface.Format.String(),
		"bpp", surface.BitsPerPixel,
	)
	return surface, nil
}

// Stats returns current loader statistics.
//
// This method is thread-safe and can be called from any goroutine.
// LiveFrames and LiveSurfaces are module-wide gauges; after every
// surface from every loader has been destroyed they read zero.
func (l *Loader) Stats() LoaderStats {
	return LoaderStats{
		Loads:        l.loads.Load(),
		Failures:     l.failures.Load(),
		LiveFrames:   alloc.Frames.Current(),
		LiveSurfaces: alloc.Surfaces.Current(),
		Backend:      l.backendName,
	}
}

// Load loads the application icon with a default-configured Loader.
// One-off convenience for callers that set nothing up; equivalent to
// New(Config{}) followed by Load.
func Load() (*Surface, error) {
	l, err := New(Config{})
	if err != nil {
		return nil, err
	}
	return l.Load()
}
