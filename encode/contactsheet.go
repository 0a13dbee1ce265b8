package encode

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/teaspot-studio/zercalo-go/raycast"
)

// ContactSheet arranges every frame into a cols-wide grid, one cell per
// tile at native resolution, for a quick visual sanity check of a whole
// animation without opening the APNG.
func ContactSheet(tiles []*raycast.Tile, cols int) *image.NRGBA {
	if len(tiles) == 0 || cols <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}

	cellW, cellH := int(tiles[0].Width), int(tiles[0].Height)
	rows := (len(tiles) + cols - 1) / cols
	sheet := image.NewNRGBA(image.Rect(0, 0, cellW*cols, cellH*rows))

	for i, t := range tiles {
		col, row := i%cols, i/cols
		dst := image.Rect(col*cellW, row*cellH, (col+1)*cellW, (row+1)*cellH)
		draw.Draw(sheet, dst, ToImage(t), image.Point{}, draw.Src)
	}
	return sheet
}

// WriteContactSheet renders the contact sheet and writes it as a PNG at
// path.
func WriteContactSheet(path string, tiles []*raycast.Tile, cols int) error {
	return writeImagePNG(path, ContactSheet(tiles, cols))
}
