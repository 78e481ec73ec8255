package imgdec

import (
	"bytes"
	"fmt"
	"image"

	// Registered with the image package and picked up by image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	ico "github.com/sergeymakinen/go-ico"
)

// icoMagic is the ICONDIR header of a Windows icon file. ICO has to be
// sniffed by hand: the header is too generic for the registry and the
// ico package does not register itself.
var icoMagic = []byte{0x00, 0x00, 0x01, 0x00}

// looksLikeSVG reports whether raw starts like an SVG document. SVG is
// text, so there is no magic number; look for the svg root element in
// the first bytes, optionally behind an XML declaration.
func looksLikeSVG(raw []byte) bool {
	head := raw
	if len(head) > 512 {
		head = head[:512]
	}
	head = bytes.TrimLeft(head, " \t\r\n")
	if bytes.HasPrefix(head, []byte("<svg")) {
		return true
	}
	return bytes.HasPrefix(head, []byte("<?xml")) && bytes.Contains(head, []byte("<svg"))
}

// decodeImage sniffs the codec and decodes raw into an image. It
// returns the codec name for diagnostics.
func decodeImage(raw []byte) (image.Image, string, error) {
	switch {
	case bytes.HasPrefix(raw, icoMagic):
		img, err := ico.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, "", fmt.Errorf("ico: %w", err)
		}
		return img, "ico", nil

	case looksLikeSVG(raw):
		img, err := rasterizeSVG(raw)
		if err != nil {
			return nil, "", fmt.Errorf("svg: %w", err)
		}
		return img, "svg", nil

	default:
		img, codec, err := image.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, "", err
		}
		return img, codec, nil
	}
}
