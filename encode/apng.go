package encode

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"image"
	"io"
	"os"

	"github.com/teaspot-studio/zercalo-go/raycast"
	"github.com/teaspot-studio/zercalo-go/zercaloerr"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// WriteAPNG writes every tile as a single animated PNG at path, each
// frame shown for delayNum/delayDen seconds and the animation played
// once (num_plays = 1). image/png has no APNG support, so the container
// is assembled chunk by chunk here: IHDR, tRNS, acTL, then one fcTL +
// (IDAT for the first frame, fdAT for the rest) pair per tile, and a
// final IEND.
func WriteAPNG(path string, tiles []*raycast.Tile, delayNum, delayDen uint16) error {
	if len(tiles) == 0 {
		return zercaloerr.New(zercaloerr.KindEncode, "no frames to encode")
	}

	f, err := os.Create(path)
	if err != nil {
		return zercaloerr.Wrap(zercaloerr.KindIO, err)
	}
	defer f.Close()

	if err := encodeAPNG(f, tiles, delayNum, delayDen); err != nil {
		return zercaloerr.Wrap(zercaloerr.KindEncode, err)
	}
	return nil
}

func encodeAPNG(w io.Writer, tiles []*raycast.Tile, delayNum, delayDen uint16) error {
	width, height := tiles[0].Width, tiles[0].Height

	if _, err := w.Write(pngSignature); err != nil {
		return err
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], width)
	binary.BigEndian.PutUint32(ihdr[4:8], height)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // color type: truecolor with alpha
	if err := writeChunk(w, "IHDR", ihdr); err != nil {
		return err
	}

	if err := writeChunk(w, "tRNS", []byte{0xFF, 0xFF, 0xFF, 0xFF}); err != nil {
		return err
	}

	actl := make([]byte, 8)
	binary.BigEndian.PutUint32(actl[0:4], uint32(len(tiles)))
	binary.BigEndian.PutUint32(actl[4:8], 1) // num_plays: play once, don't loop
	if err := writeChunk(w, "acTL", actl); err != nil {
		return err
	}

	seq := uint32(0)
	for i, t := range tiles {
		if t.Width != width || t.Height != height {
			return zercaloerr.New(zercaloerr.KindEncode, "all frames must share one size")
		}

		fctl := make([]byte, 26)
		binary.BigEndian.PutUint32(fctl[0:4], seq)
		seq++
		binary.BigEndian.PutUint32(fctl[4:8], width)
		binary.BigEndian.PutUint32(fctl[8:12], height)
		binary.BigEndian.PutUint32(fctl[12:16], 0) // x offset
		binary.BigEndian.PutUint32(fctl[16:20], 0) // y offset
		binary.BigEndian.PutUint16(fctl[20:22], delayNum)
		binary.BigEndian.PutUint16(fctl[22:24], delayDen)
		fctl[24] = 0 // dispose: none
		fctl[25] = 0 // blend: source
		if err := writeChunk(w, "fcTL", fctl); err != nil {
			return err
		}

		compressed, err := deflateScanlines(ToImage(t))
		if err != nil {
			return err
		}

		if i == 0 {
			if err := writeChunk(w, "IDAT", compressed); err != nil {
				return err
			}
			continue
		}

		fdat := make([]byte, 4+len(compressed))
		binary.BigEndian.PutUint32(fdat[0:4], seq)
		seq++
		copy(fdat[4:], compressed)
		if err := writeChunk(w, "fdAT", fdat); err != nil {
			return err
		}
	}

	return writeChunk(w, "IEND", nil)
}

func writeChunk(w io.Writer, typ string, data []byte) error {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(data)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}

	body := make([]byte, 0, len(typ)+len(data))
	body = append(body, typ...)
	body = append(body, data...)
	if _, err := w.Write(body); err != nil {
		return err
	}

	var crcBuf [4]byte
	binary.BigEndian.PutUint32(crcBuf[:], crc32.ChecksumIEEE(body))
	_, err := w.Write(crcBuf[:])
	return err
}

// deflateScanlines produces the zlib-compressed, unfiltered scanline
// stream image/png would put in IDAT for an 8-bit RGBA image.
func deflateScanlines(img *image.NRGBA) ([]byte, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	raw := make([]byte, 0, h*(1+w*4))
	for y := 0; y < h; y++ {
		raw = append(raw, 0) // filter type: none
		for x := 0; x < w; x++ {
			c := img.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			raw = append(raw, c.R, c.G, c.B, c.A)
		}
	}

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
