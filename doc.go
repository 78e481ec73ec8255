// Package appicon loads the CastView application window icon.
//
// This module is part of CastView and covers exactly one concern:
// finding the icon file (environment override, installed default, or
// portable executable-relative lookup), decoding it, checking that the
// decoded pixels are a packed RGB layout a windowing toolkit can
// display directly, and handing back a Surface that aliases the
// decoded buffer without copying it.
//
// # Quick Start
//
// The one-call form for applications that configure nothing:
//
//	surface, err := appicon.Load()
//	if err != nil {
//	    log.Printf("no window icon: %v", err)
//	    return
//	}
//	defer surface.Destroy()
//
//	// surface.Data holds packed RGB pixels
//	// surface.Width x surface.Height, surface.Stride bytes per row
//	window.SetIcon(surface)
//
// Or with explicit configuration:
//
//	loader, err := appicon.New(appicon.Config{
//	    Backend: appicon.BackendNative,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	surface, err := loader.Load()
//
// # Path Resolution
//
// The icon path is resolved from three sources, first match wins:
//
//  1. CASTVIEW_ICON_PATH environment variable. Presence counts, not
//     content: setting it to the empty string overrides to an empty
//     path, which then fails at open time.
//  2. Installed default: <prefix>/share/icons/hicolor/256x256/apps/castview.png,
//     with the prefix baked in at build time (non-portable builds).
//  3. Portable builds: icon.png next to the running executable.
//
// Config.Path skips resolution entirely and uses the given path.
//
// # Decode Backends
//
// Two interchangeable decode engines sit behind one interface:
//
//   - BackendGStreamer runs the file through a filesrc ! decodebin !
//     appsink pipeline. Whatever the installed plugin set can demux
//     and decode, this backend can load.
//   - BackendNative uses pure-Go codecs: PNG, JPEG, GIF, BMP, TIFF,
//     WebP, ICO and SVG (rasterized at its intrinsic viewbox size).
//     No system dependencies.
//   - BackendAuto (default) probes for the GStreamer elements once at
//     construction and falls back to the native codecs.
//
// Custom engines plug in via Config.Decoder; see the Decoder contract.
//
// # The Packed RGB Gate
//
// Display surfaces want one interleaved buffer of RGB pixels. Decoders
// produce much more than that: planar YUV from JPEG, palette indices
// from GIF, grayscale, deep 16-bit-per-channel layouts. Rather than
// silently convert, Load rejects anything that is not already packed
// RGB in one of the twelve supported layouts (24-bit RGB/BGR, the four
// 32-bit alpha orderings, and six big-endian 16/15/12-bit variants).
// The rejection carries the decoded format's name so the fix (ship a
// different icon file) is obvious from the log:
//
//	surface, err := loader.Load()
//	if errors.Is(err, appicon.ErrNotPackedRGB) {
//	    // icon decoded to planar/palette pixels, e.g. a JPEG
//	}
//
// # Ownership
//
// A Surface aliases the decoded frame's pixel buffer; the frame lives
// exactly as long as the surface. Destroy releases both:
//
//	surface, err := loader.Load()
//	if err != nil { ... }
//	defer surface.Destroy()
//
// Destroy must be called exactly once per successful Load and never
// on a failed one. A second Destroy panics instead of corrupting the
// allocation accounting. Failed loads clean up after themselves;
// LoaderStats.LiveFrames and LiveSurfaces expose the module-wide
// gauges tests use to prove it.
//
// # Dependencies
//
// The native backend has none beyond the Go module graph. For the
// GStreamer backend, the runtime must be installed:
//
//	# Ubuntu/Debian
//	sudo apt-get install \
//	    gstreamer1.0-plugins-base \
//	    gstreamer1.0-plugins-good
//
//	# Fedora/RHEL
//	sudo dnf install \
//	    gstreamer1 \
//	    gstreamer1-plugins-base \
//	    gstreamer1-plugins-good
//
// Verify with:
//
//	gst-inspect-1.0 decodebin
//	gst-inspect-1.0 pngdec
//
// # Thread Safety
//
// All public methods are thread-safe:
//
//   - Load() shares no state between calls; concurrent loads are fine
//   - Stats() uses atomic counters for lock-free reads
//   - Destroy() is per-surface; destroying distinct surfaces from
//     distinct goroutines is safe
//
// # Limitations
//
//   - One picture per load: animated GIFs yield their first frame via
//     the native backend, a single frame via GStreamer
//   - No scaling, no pixel format conversion (the icon file must
//     already decode to packed RGB at the size you want)
//   - WebP is decode-only in pure Go, matching the upstream codec
//
// # Testing
//
// A command-line tool exercises the whole path end to end:
//
//	# Load the icon the way the application would
//	./bin/test-icon
//
//	# Force a backend and inspect a specific file
//	./bin/test-icon --path ./icon.png --backend native
//
//	# Render the loaded surface to a PNG for eyeballing
//	./bin/test-icon --path ./icon.png --save out.png
//
// Repository: https://github.com/visiona/castview
package appicon
