// Package encode turns rendered raycast.Tiles into on-disk images: one
// PNG per frame, a single hand-rolled APNG for the whole animation, and
// a contact-sheet grid of every frame for quick visual review.
package encode

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/teaspot-studio/zercalo-go/raycast"
	"github.com/teaspot-studio/zercalo-go/zercaloerr"
)

// ToImage converts a rendered tile into a standard library image, ready
// for image/png or x/image/draw.
func ToImage(t *raycast.Tile) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, int(t.Width), int(t.Height)))
	for y := uint32(0); y < t.Height; y++ {
		for x := uint32(0); x < t.Width; x++ {
			c := t.At(x, y)
			img.SetNRGBA(int(x), int(y), color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return img
}

// WritePNG writes a single tile as a PNG file at path. image/png cannot
// emit a custom tRNS chunk for an RGBA image, so the frame is assembled
// chunk by chunk the same way encodeAPNG builds its frames.
func WritePNG(path string, t *raycast.Tile) error {
	f, err := os.Create(path)
	if err != nil {
		return zercaloerr.Wrap(zercaloerr.KindIO, err)
	}
	defer f.Close()

	if err := encodePNG(f, t); err != nil {
		return zercaloerr.Wrap(zercaloerr.KindEncode, err)
	}
	return nil
}

func encodePNG(w io.Writer, t *raycast.Tile) error {
	if _, err := w.Write(pngSignature); err != nil {
		return err
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], t.Width)
	binary.BigEndian.PutUint32(ihdr[4:8], t.Height)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // color type: truecolor with alpha
	if err := writeChunk(w, "IHDR", ihdr); err != nil {
		return err
	}

	if err := writeChunk(w, "tRNS", []byte{0xFF, 0xFF, 0xFF, 0xFF}); err != nil {
		return err
	}

	compressed, err := deflateScanlines(ToImage(t))
	if err != nil {
		return err
	}
	if err := writeChunk(w, "IDAT", compressed); err != nil {
		return err
	}

	return writeChunk(w, "IEND", nil)
}

// writeImagePNG writes img with the standard library encoder; used for
// auxiliary output (the contact sheet) that carries no tRNS requirement.
func writeImagePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return zercaloerr.Wrap(zercaloerr.KindIO, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return zercaloerr.Wrap(zercaloerr.KindEncode, err)
	}
	return nil
}
