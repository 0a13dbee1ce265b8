package encode

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teaspot-studio/zercalo-go/raycast"
	"github.com/teaspot-studio/zercalo-go/scene"
)

func solidTile(w, h uint32, c scene.ColorRGBA) *raycast.Tile {
	t := raycast.NewTile(w, h)
	for y := uint32(0); y < h; y++ {
		for x := uint32(0); x < w; x++ {
			t.Pixels[y*w+x] = c
		}
	}
	return t
}

func TestToImagePreservesChannels(t *testing.T) {
	tile := solidTile(2, 2, scene.ColorRGBA{R: 10, G: 20, B: 30, A: 255})
	img := ToImage(tile)
	require.Equal(t, uint8(10), img.NRGBAAt(0, 0).R)
	require.Equal(t, uint8(20), img.NRGBAAt(1, 1).G)
}

func TestWritePNGProducesValidSignature(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.png")
	tile := solidTile(4, 4, scene.WhiteOpaque)

	require.NoError(t, WritePNG(path, tile))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, pngSignature))
	require.Contains(t, string(data), "IHDR")
	require.Contains(t, string(data), "tRNS")
	require.Contains(t, string(data), "IDAT")
	require.Contains(t, string(data), "IEND")
}

func TestWriteAPNGRejectsEmptyFrameList(t *testing.T) {
	dir := t.TempDir()
	err := WriteAPNG(filepath.Join(dir, "anim.png"), nil, 1, 10)
	require.Error(t, err)
}

func TestWriteAPNGRejectsMismatchedFrameSizes(t *testing.T) {
	var buf bytes.Buffer
	tiles := []*raycast.Tile{
		solidTile(4, 4, scene.WhiteOpaque),
		solidTile(2, 2, scene.WhiteOpaque),
	}
	err := encodeAPNG(&buf, tiles, 1, 10)
	require.Error(t, err)
}

func TestWriteAPNGEmitsExpectedChunks(t *testing.T) {
	var buf bytes.Buffer
	tiles := []*raycast.Tile{
		solidTile(3, 3, scene.ColorRGBA{R: 1, G: 2, B: 3, A: 255}),
		solidTile(3, 3, scene.ColorRGBA{R: 4, G: 5, B: 6, A: 255}),
	}
	require.NoError(t, encodeAPNG(&buf, tiles, 1, 10))

	data := buf.Bytes()
	require.True(t, bytes.HasPrefix(data, pngSignature))
	require.Contains(t, string(data), "IHDR")
	require.Contains(t, string(data), "tRNS")
	require.Contains(t, string(data), "acTL")
	require.Contains(t, string(data), "fcTL")
	require.Contains(t, string(data), "IDAT")
	require.Contains(t, string(data), "fdAT")
	require.Contains(t, string(data), "IEND")
}

func TestContactSheetGridDimensions(t *testing.T) {
	tiles := []*raycast.Tile{
		solidTile(4, 4, scene.WhiteOpaque),
		solidTile(4, 4, scene.WhiteOpaque),
		solidTile(4, 4, scene.WhiteOpaque),
	}
	sheet := ContactSheet(tiles, 2)
	b := sheet.Bounds()
	require.Equal(t, 8, b.Dx())  // 2 cols * 4px
	require.Equal(t, 8, b.Dy())  // 2 rows (ceil(3/2)) * 4px
}

func TestContactSheetEmptyInput(t *testing.T) {
	sheet := ContactSheet(nil, 2)
	require.Equal(t, 0, sheet.Bounds().Dx())
}
