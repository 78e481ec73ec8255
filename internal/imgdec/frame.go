package imgdec

import (
	"fmt"
	"image"

	"github.com/visiona/castview/modules/appicon/internal/pixfmt"
)

// frameFromImage wraps a decoded image in a frame without re-encoding
// the pixels. Packed images alias their pixel buffer directly; planar
// YCbCr images get their planes concatenated into one buffer.
//
// The mapping is by concrete type: the stdlib decoders hand back a
// small, known set of image types, and each one has exactly one honest
// frame layout. Anything else is an error, not a silent conversion.
func frameFromImage(img image.Image) (*pixfmt.Frame, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("empty image %dx%d", w, h)
	}

	switch im := img.(type) {
	case *image.RGBA:
		return pixfmt.NewFrame(im.Pix, w, h, im.Stride, pixfmt.RGBA), nil
	case *image.NRGBA:
		return pixfmt.NewFrame(im.Pix, w, h, im.Stride, pixfmt.RGBA), nil
	case *image.RGBA64:
		return pixfmt.NewFrame(im.Pix, w, h, im.Stride, pixfmt.RGBA64BE), nil
	case *image.NRGBA64:
		return pixfmt.NewFrame(im.Pix, w, h, im.Stride, pixfmt.RGBA64BE), nil
	case *image.Gray:
		return pixfmt.NewFrame(im.Pix, w, h, im.Stride, pixfmt.GRAY8), nil
	case *image.Gray16:
		return pixfmt.NewFrame(im.Pix, w, h, im.Stride, pixfmt.GRAY16BE), nil
	case *image.Paletted:
		return pixfmt.NewFrame(im.Pix, w, h, im.Stride, pixfmt.PAL8), nil

	case *image.YCbCr:
		format, ok := ycbcrFormats[im.SubsampleRatio]
		if !ok {
			return nil, fmt.Errorf("no frame layout for chroma subsampling %v", im.SubsampleRatio)
		}
		return planarFrame(w, h, im.YStride, format, im.Y, im.Cb, im.Cr), nil

	case *image.NYCbCrA:
		if im.SubsampleRatio != image.YCbCrSubsampleRatio420 {
			return nil, fmt.Errorf("no frame layout for alpha image with chroma subsampling %v", im.SubsampleRatio)
		}
		return planarFrame(w, h, im.YStride, pixfmt.YUVA420P, im.Y, im.Cb, im.Cr, im.A), nil

	default:
		return nil, fmt.Errorf("no frame layout for decoded image type %T", img)
	}
}

// ycbcrFormats maps chroma subsampling to the matching planar layout.
var ycbcrFormats = map[image.YCbCrSubsampleRatio]pixfmt.Format{
	image.YCbCrSubsampleRatio420: pixfmt.YUV420P,
	image.YCbCrSubsampleRatio422: pixfmt.YUV422P,
	image.YCbCrSubsampleRatio444: pixfmt.YUV444P,
}

// planarFrame concatenates the planes into one buffer. Stride is the
// luma stride; the chroma plane geometry follows from the format.
func planarFrame(w, h, stride int, format pixfmt.Format, planes ...[]byte) *pixfmt.Frame {
	size := 0
	for _, p := range planes {
		size += len(p)
	}
	data := make([]byte, 0, size)
	for _, p := range planes {
		data = append(data, p...)
	}
	return pixfmt.NewFrame(data, w, h, stride, format)
}
