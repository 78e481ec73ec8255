package imgdec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/visiona/castview/modules/appicon/internal/pixfmt"
)

// writeTemp writes data to a file under t.TempDir and returns its path.
func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", name, err)
	}
	return path
}

// setOpen replaces the file opener for the duration of the test.
func setOpen(t *testing.T, fn func(string) (fs.File, error)) {
	t.Helper()
	orig := open
	open = fn
	t.Cleanup(func() { open = orig })
}

func TestDecode_PNG_RGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Pix = []byte{
		10, 20, 30, 200, 40, 50, 60, 210,
		70, 80, 90, 220, 100, 110, 120, 230,
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("Failed to encode PNG fixture: %v", err)
	}
	path := writeTemp(t, "icon.png", buf.Bytes())

	d := &Decoder{}
	frame, err := d.Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	defer frame.Release()

	if frame.Format != pixfmt.RGBA {
		t.Errorf("Expected format RGBA, got %s", frame.Format)
	}
	if frame.Width != 2 || frame.Height != 2 {
		t.Errorf("Expected 2x2, got %dx%d", frame.Width, frame.Height)
	}
	if frame.Stride != 8 {
		t.Errorf("Expected stride 8, got %d", frame.Stride)
	}
	if !bytes.Equal(frame.Data, src.Pix) {
		t.Errorf("Pixel data mismatch:\n  got  %v\n  want %v", frame.Data, src.Pix)
	}

	t.Logf("✅ PNG decoded to %dx%d %s frame with exact pixel bytes", frame.Width, frame.Height, frame.Format)
}

func TestDecode_JPEG_YUV420P(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i+0] = 128
		src.Pix[i+1] = 128
		src.Pix[i+2] = 128
		src.Pix[i+3] = 255
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, nil); err != nil {
		t.Fatalf("Failed to encode JPEG fixture: %v", err)
	}
	path := writeTemp(t, "icon.jpg", buf.Bytes())

	d := &Decoder{}
	frame, err := d.Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	defer frame.Release()

	if frame.Format != pixfmt.YUV420P {
		t.Errorf("Expected format YUV420P, got %s", frame.Format)
	}
	if frame.Width != 16 || frame.Height != 16 {
		t.Errorf("Expected 16x16, got %dx%d", frame.Width, frame.Height)
	}
	if frame.Stride != 16 {
		t.Errorf("Expected luma stride 16, got %d", frame.Stride)
	}
	// Y plane 16x16, chroma planes 8x8 each.
	if len(frame.Data) != 256+64+64 {
		t.Errorf("Expected 384 plane bytes, got %d", len(frame.Data))
	}
	if y := frame.Data[0]; y < 120 || y > 136 {
		t.Errorf("Expected mid-gray luma around 128, got %d", y)
	}

	t.Logf("✅ JPEG decoded to planar %s frame (%d plane bytes)", frame.Format, len(frame.Data))
}

func TestDecode_GIF_PAL8(t *testing.T) {
	palette := color.Palette{
		color.RGBA{0, 0, 0, 255},
		color.RGBA{255, 0, 0, 255},
		color.RGBA{0, 255, 0, 255},
		color.RGBA{0, 0, 255, 255},
	}
	src := image.NewPaletted(image.Rect(0, 0, 4, 4), palette)
	for i := range src.Pix {
		src.Pix[i] = byte(i % 4)
	}

	var buf bytes.Buffer
	if err := gif.Encode(&buf, src, nil); err != nil {
		t.Fatalf("Failed to encode GIF fixture: %v", err)
	}
	path := writeTemp(t, "icon.gif", buf.Bytes())

	d := &Decoder{}
	frame, err := d.Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	defer frame.Release()

	if frame.Format != pixfmt.PAL8 {
		t.Errorf("Expected format PAL8, got %s", frame.Format)
	}
	if frame.Width != 4 || frame.Height != 4 {
		t.Errorf("Expected 4x4, got %dx%d", frame.Width, frame.Height)
	}
	if !bytes.Equal(frame.Data, src.Pix) {
		t.Errorf("Palette index mismatch:\n  got  %v\n  want %v", frame.Data, src.Pix)
	}

	t.Logf("✅ GIF decoded to %s frame with preserved palette indices", frame.Format)
}

func TestDecode_GrayPNG_GRAY8(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 2))
	src.Pix = []byte{0, 64, 128, 192, 224, 255}

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("Failed to encode grayscale PNG fixture: %v", err)
	}
	path := writeTemp(t, "gray.png", buf.Bytes())

	d := &Decoder{}
	frame, err := d.Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	defer frame.Release()

	if frame.Format != pixfmt.GRAY8 {
		t.Errorf("Expected format GRAY8, got %s", frame.Format)
	}
	if !bytes.Equal(frame.Data, src.Pix) {
		t.Errorf("Gray data mismatch:\n  got  %v\n  want %v", frame.Data, src.Pix)
	}

	t.Logf("✅ Grayscale PNG decoded to %s frame", frame.Format)
}

func TestDecode_BMP(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Pix = []byte{
		1, 2, 3, 100, 4, 5, 6, 150,
		7, 8, 9, 200, 10, 11, 12, 250,
	}

	var buf bytes.Buffer
	if err := bmp.Encode(&buf, src); err != nil {
		t.Fatalf("Failed to encode BMP fixture: %v", err)
	}
	path := writeTemp(t, "icon.bmp", buf.Bytes())

	d := &Decoder{}
	frame, err := d.Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	defer frame.Release()

	if frame.Format != pixfmt.RGBA {
		t.Errorf("Expected format RGBA, got %s", frame.Format)
	}
	if !bytes.Equal(frame.Data, src.Pix) {
		t.Errorf("Pixel data mismatch:\n  got  %v\n  want %v", frame.Data, src.Pix)
	}

	t.Logf("✅ BMP decoded to %s frame with exact pixel bytes", frame.Format)
}

func TestDecode_TIFF(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Pix = []byte{
		11, 22, 33, 44, 55, 66, 77, 88,
		99, 111, 122, 133, 144, 155, 166, 177,
	}

	var buf bytes.Buffer
	if err := tiff.Encode(&buf, src, nil); err != nil {
		t.Fatalf("Failed to encode TIFF fixture: %v", err)
	}
	path := writeTemp(t, "icon.tiff", buf.Bytes())

	d := &Decoder{}
	frame, err := d.Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	defer frame.Release()

	if frame.Format != pixfmt.RGBA {
		t.Errorf("Expected format RGBA, got %s", frame.Format)
	}
	if !bytes.Equal(frame.Data, src.Pix) {
		t.Errorf("Pixel data mismatch:\n  got  %v\n  want %v", frame.Data, src.Pix)
	}

	t.Logf("✅ TIFF decoded to %s frame with exact pixel bytes", frame.Format)
}

func TestDecode_SVG(t *testing.T) {
	svg := []byte(`<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 4 4">
  <rect x="0" y="0" width="4" height="4" fill="#ff0000"/>
</svg>`)
	path := writeTemp(t, "icon.svg", svg)

	d := &Decoder{}
	frame, err := d.Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	defer frame.Release()

	if frame.Format != pixfmt.RGBA {
		t.Errorf("Expected format RGBA, got %s", frame.Format)
	}
	if frame.Width != 4 || frame.Height != 4 {
		t.Errorf("Expected 4x4 from viewbox, got %dx%d", frame.Width, frame.Height)
	}
	// Interior pixel of a full-cover red rect.
	off := frame.Stride + 4
	if r, a := frame.Data[off], frame.Data[off+3]; r < 200 || a < 200 {
		t.Errorf("Expected solid red interior pixel, got r=%d a=%d", r, a)
	}

	t.Logf("✅ SVG rasterized at intrinsic %dx%d viewbox size", frame.Width, frame.Height)
}

func TestDecode_ICO(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Pix = []byte{
		200, 0, 0, 255, 0, 200, 0, 255,
		0, 0, 200, 255, 200, 200, 0, 255,
	}
	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, src); err != nil {
		t.Fatalf("Failed to encode embedded PNG: %v", err)
	}

	// ICONDIR + one ICONDIRENTRY pointing at a PNG-compressed entry.
	var ic bytes.Buffer
	ic.Write([]byte{0x00, 0x00, 0x01, 0x00, 0x01, 0x00})
	ic.Write([]byte{2, 2, 0, 0})
	binary.Write(&ic, binary.LittleEndian, uint16(1))
	binary.Write(&ic, binary.LittleEndian, uint16(32))
	binary.Write(&ic, binary.LittleEndian, uint32(pngBuf.Len()))
	binary.Write(&ic, binary.LittleEndian, uint32(22))
	ic.Write(pngBuf.Bytes())

	path := writeTemp(t, "icon.ico", ic.Bytes())

	d := &Decoder{}
	frame, err := d.Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	defer frame.Release()

	if frame.Format != pixfmt.RGBA {
		t.Errorf("Expected format RGBA, got %s", frame.Format)
	}
	if frame.Width != 2 || frame.Height != 2 {
		t.Errorf("Expected 2x2, got %dx%d", frame.Width, frame.Height)
	}

	t.Logf("✅ ICO container decoded to %dx%d %s frame", frame.Width, frame.Height, frame.Format)
}

func TestDecode_MissingFile(t *testing.T) {
	d := &Decoder{}
	_, err := d.Decode(filepath.Join(t.TempDir(), "no-such-icon.png"))
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected wrapped fs.ErrNotExist, got: %v", err)
	}
	if !bytes.Contains([]byte(err.Error()), []byte("open icon")) {
		t.Errorf("Expected 'open icon' stage in error, got: %v", err)
	}

	t.Logf("✅ Missing file fails at the open stage: %v", err)
}

func TestDecode_Undecodable(t *testing.T) {
	path := writeTemp(t, "garbage.png", []byte("this is not an image at all"))

	d := &Decoder{}
	_, err := d.Decode(path)
	if err == nil {
		t.Fatal("Expected error for undecodable bytes, got nil")
	}
	if !bytes.Contains([]byte(err.Error()), []byte("decode icon")) {
		t.Errorf("Expected 'decode icon' stage in error, got: %v", err)
	}

	t.Logf("✅ Undecodable bytes fail at the decode stage: %v", err)
}

func TestDecode_OpenFailureInjected(t *testing.T) {
	sentinel := errors.New("injected open failure")
	setOpen(t, func(string) (fs.File, error) { return nil, sentinel })

	d := &Decoder{}
	_, err := d.Decode("/any/icon.png")
	if err == nil {
		t.Fatal("Expected error from injected open failure, got nil")
	}
	if !errors.Is(err, sentinel) {
		t.Errorf("Expected wrapped sentinel error, got: %v", err)
	}

	t.Logf("✅ Open failure propagates wrapped: %v", err)
}

func TestDecode_ReadFailureClosesFile(t *testing.T) {
	f := &fakeFile{size: 4, readErr: errors.New("injected read failure")}
	setOpen(t, func(string) (fs.File, error) { return f, nil })

	d := &Decoder{}
	_, err := d.Decode("/any/icon.png")
	if err == nil {
		t.Fatal("Expected error from injected read failure, got nil")
	}
	if !bytes.Contains([]byte(err.Error()), []byte("read icon")) {
		t.Errorf("Expected 'read icon' stage in error, got: %v", err)
	}
	if !f.closed {
		t.Error("Expected the file to be closed after the read failure")
	}

	t.Logf("✅ Read failure released the open file: %v", err)
}

func TestDecode_SizeCap(t *testing.T) {
	t.Run("StatOverLimit", func(t *testing.T) {
		f := &fakeFile{size: 17}
		setOpen(t, func(string) (fs.File, error) { return f, nil })

		d := &Decoder{MaxFileSize: 16}
		_, err := d.Decode("/any/icon.png")
		if err == nil {
			t.Fatal("Expected error for oversized file, got nil")
		}
		if !bytes.Contains([]byte(err.Error()), []byte("icon too big")) {
			t.Errorf("Expected 'icon too big' in error, got: %v", err)
		}
		if !f.closed {
			t.Error("Expected the file to be closed after the size check")
		}
	})

	t.Run("GrowsPastLimitDuringRead", func(t *testing.T) {
		// Stat reports a small size, the reader yields far more.
		f := &fakeFile{size: 4, data: bytes.Repeat([]byte{0xAA}, 32)}
		setOpen(t, func(string) (fs.File, error) { return f, nil })

		d := &Decoder{MaxFileSize: 16}
		_, err := d.Decode("/any/icon.png")
		if err == nil {
			t.Fatal("Expected error for file growing past the limit, got nil")
		}
		if !bytes.Contains([]byte(err.Error()), []byte("more than 16 bytes")) {
			t.Errorf("Expected read-side cap in error, got: %v", err)
		}
	})

	t.Logf("✅ Size cap enforced at both stat and read stages")
}

// fakeFile is an fs.File stub for fault injection.
type fakeFile struct {
	data    []byte
	off     int
	size    int64
	statErr error
	readErr error
	closed  bool
}

func (f *fakeFile) Stat() (fs.FileInfo, error) {
	if f.statErr != nil {
		return nil, f.statErr
	}
	return fakeInfo{size: f.size}, nil
}

func (f *fakeFile) Read(p []byte) (int, error) {
	if f.readErr != nil {
		return 0, f.readErr
	}
	if f.off >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.off:])
	f.off += n
	return n, nil
}

func (f *fakeFile) Close() error {
	f.closed = true
	return nil
}

type fakeInfo struct{ size int64 }

func (fakeInfo) Name() string       { return "icon.png" }
func (i fakeInfo) Size() int64      { return i.size }
func (fakeInfo) Mode() fs.FileMode  { return 0o644 }
func (fakeInfo) ModTime() time.Time { return time.Time{} }
func (fakeInfo) IsDir() bool        { return false }
func (fakeInfo) Sys() any           { return nil }
