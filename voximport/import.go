package voximport

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/teaspot-studio/zercalo-go/scene"
)

// Import converts one decoded RawModel into a scene.Model, swapping
// the file's z-up axis convention for this renderer's y-up one and
// decoding each palette entry with a 4-bit green-channel shift.
func Import(raw RawModel, palette [256]uint32) *scene.Model {
	size := scene.Size{X: raw.SizeX, Y: raw.SizeZ, Z: raw.SizeY}
	m := scene.NewModel(size)

	for _, v := range raw.Voxels {
		color := decodeColor(palette[v.ColorIndex])
		// src (vx,vy,vz) -> dst (vx,vz,vy): y and z swap, matching the
		// size swap above.
		m.SetVoxel(v.X, v.Z, v.Y, color)
	}

	m.Offset = mgl32.Vec3{}
	m.Rotation = mgl32.QuatIdent()
	return m
}

// ImportAll converts every model in a decoded File.
func ImportAll(f *File) []*scene.Model {
	models := make([]*scene.Model, len(f.Models))
	for i, raw := range f.Models {
		models[i] = Import(raw, f.Palette)
	}
	return models
}

// decodeColor applies the non-standard channel layout this importer
// expects: the green channel is shifted by 4 bits rather than the
// usual 8. Changing this would shift every imported color and is an
// observable regression, not a bugfix.
func decodeColor(c uint32) scene.ColorRGBA {
	return scene.ColorRGBA{
		R: uint8(c & 0xFF),
		G: uint8((c >> 4) & 0xFF),
		B: uint8((c >> 8) & 0xFF),
		A: uint8((c >> 16) & 0xFF),
	}
}
