package voximport

import (
	"testing"

	"github.com/teaspot-studio/zercalo-go/scene"
)

func TestImportSwapsYZAxes(t *testing.T) {
	raw := RawModel{
		SizeX: 2, SizeY: 3, SizeZ: 4,
		Voxels: []RawVoxel{{X: 1, Y: 2, Z: 3, ColorIndex: 1}},
	}
	var palette [256]uint32
	palette[1] = 0xFFFFFFFF // decodeColor yields 0xFF in every channel, so the voxel is non-empty

	m := Import(raw, palette)

	if m.Size != (scene.Size{X: 2, Y: 4, Z: 3}) {
		t.Fatalf("size must swap y/z: got %+v", m.Size)
	}
	// src (1,2,3) -> dst (1,3,2)
	got := m.GetVoxel(1, 3, 2)
	if got.IsEmpty() {
		t.Fatalf("expected a voxel at the swapped coordinate")
	}
}

func TestDecodeColorUsesFourBitGreenShift(t *testing.T) {
	// c = 0x00_00_00_10 -> R=c&0xFF=0x10, G=(c>>4)&0xFF=0x01, B=(c>>8)&0xFF=0x00, A=(c>>16)&0xFF=0x00
	got := decodeColor(0x00000010)
	want := scene.ColorRGBA{R: 0x10, G: 0x01, B: 0x00, A: 0x00}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}
