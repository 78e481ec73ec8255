// Package imgdec decodes icon files with pure-Go codecs.
//
// It is the decode backend used when no GStreamer runtime is present:
// one decoded picture per call, no external processes. The stdlib
// image registry handles PNG, JPEG and GIF; the x/image codecs add
// BMP, WebP and TIFF; ICO and SVG are sniffed and decoded explicitly
// because neither works reliably through the registry.
package imgdec

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/visiona/castview/modules/appicon/internal/guard"
	"github.com/visiona/castview/modules/appicon/internal/pixfmt"
)

// DefaultMaxFileSize caps the icon file size. Icons are small;
// anything bigger points at a misconfigured path, not an icon.
const DefaultMaxFileSize = 8 << 20

// Decoder decodes one picture per call using pure-Go codecs.
type Decoder struct {
	// MaxFileSize caps the icon file size in bytes. Zero means
	// DefaultMaxFileSize.
	MaxFileSize int64
}

// open is stubbed in tests to inject open and read failures.
var open = func(path string) (fs.File, error) {
	return os.Open(path)
}

// Decode reads and decodes the image at path into a frame.
//
// The stages (open, size check, read, decode, convert) each gate the
// next; a failure releases what the earlier stages acquired, in
// reverse order. The returned frame is owned by the caller.
func (d *Decoder) Decode(path string) (*pixfmt.Frame, error) {
	maxSize := d.MaxFileSize
	if maxSize == 0 {
		maxSize = DefaultMaxFileSize
	}

	var guards guard.Stack
	defer guards.Unwind()

	f, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("open icon: %w", err)
	}
	fileGuard := guards.Push("icon file", func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("imgdec: failed to close icon file", "path", path, "error", cerr)
		}
	})

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat icon: %w", err)
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("icon too big: %d bytes (limit %d)", info.Size(), maxSize)
	}

	// Cap the read as well; the file can grow between stat and read.
	raw, err := io.ReadAll(io.LimitReader(f, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read icon: %w", err)
	}
	if int64(len(raw)) > maxSize {
		return nil, fmt.Errorf("icon too big: more than %d bytes", maxSize)
	}
	fileGuard.Release()

	img, codec, err := decodeImage(raw)
	if err != nil {
		return nil, fmt.Errorf("decode icon: %w", err)
	}

	frame, err := frameFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("convert %s image: %w", codec, err)
	}

	slog.Debug("imgdec: icon decoded",
		"path", path,
		"codec", codec,
		"width", frame.Width,
		"height", frame.Height,
		"format", frame.Format.String(),
	)

	return frame, nil
}
