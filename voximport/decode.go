// Package voximport reads MagicaVoxel .vox files and converts them into
// scene.Model values. Decode walks the chunk tree for model and palette
// data; Import applies the axis swap and palette decode that turn a raw
// chunk-parsed model into a scene.Model.
package voximport

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/teaspot-studio/zercalo-go/zercaloerr"
)

const magicNumber = "VOX "

// RawVoxel is one (x,y,z,paletteIndex) entry as stored in a .vox XYZI
// chunk, in the file's own z-up axis convention.
type RawVoxel struct {
	X, Y, Z    uint32
	ColorIndex byte
}

// RawModel is one decoded .vox model, still in the file's native
// z-up, palette-indexed form.
type RawModel struct {
	SizeX, SizeY, SizeZ uint32
	Voxels              []RawVoxel
}

// File is the full decoded contents of a .vox document: every model it
// defines plus the shared 256-entry color palette (index 0 is always
// unused/transparent, matching the format).
type File struct {
	Models  []RawModel
	Palette [256]uint32
}

// Load reads and decodes the .vox file at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, zercaloerr.Wrap(zercaloerr.KindIO, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a .vox document from r, walking its MAIN chunk tree for
// SIZE/XYZI model pairs and an optional RGBA palette override. Chunk
// types this renderer has no use for (materials, scene graph nodes,
// layers) are skipped by length rather than parsed.
func Decode(r io.Reader) (*File, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, zercaloerr.Wrap(zercaloerr.KindDecode, err)
	}
	if string(magic[:]) != magicNumber {
		return nil, zercaloerr.New(zercaloerr.KindDecode, "voximport: not a .vox file")
	}

	var version int32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, zercaloerr.Wrap(zercaloerr.KindDecode, err)
	}

	file := &File{Palette: defaultPalette()}
	currentModel := -1

	for {
		var chunkID [4]byte
		if _, err := io.ReadFull(r, chunkID[:]); err != nil {
			if err == io.EOF {
				break
			}
			return nil, zercaloerr.Wrap(zercaloerr.KindDecode, err)
		}

		var chunkSize, childrenSize int32
		if err := binary.Read(r, binary.LittleEndian, &chunkSize); err != nil {
			return nil, zercaloerr.Wrap(zercaloerr.KindDecode, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &childrenSize); err != nil {
			return nil, zercaloerr.Wrap(zercaloerr.KindDecode, err)
		}

		data := make([]byte, chunkSize)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, zercaloerr.Wrap(zercaloerr.KindDecode, err)
		}

		switch string(chunkID[:]) {
		case "MAIN":
			continue
		case "SIZE":
			currentModel++
			if currentModel >= len(file.Models) {
				file.Models = append(file.Models, RawModel{})
			}
			if len(data) < 12 {
				return nil, zercaloerr.New(zercaloerr.KindDecode, "voximport: SIZE chunk too small")
			}
			m := &file.Models[currentModel]
			m.SizeX = binary.LittleEndian.Uint32(data[0:4])
			m.SizeY = binary.LittleEndian.Uint32(data[4:8])
			m.SizeZ = binary.LittleEndian.Uint32(data[8:12])
		case "XYZI":
			if currentModel < 0 || currentModel >= len(file.Models) {
				return nil, zercaloerr.New(zercaloerr.KindDecode, "voximport: XYZI without preceding SIZE")
			}
			if len(data) < 4 {
				return nil, zercaloerr.New(zercaloerr.KindDecode, "voximport: XYZI chunk too small")
			}
			m := &file.Models[currentModel]
			count := binary.LittleEndian.Uint32(data[:4])
			m.Voxels = make([]RawVoxel, 0, count)
			for i := uint32(0); i < count; i++ {
				off := 4 + int(i)*4
				if off+3 >= len(data) {
					return nil, zercaloerr.New(zercaloerr.KindDecode, fmt.Sprintf("voximport: XYZI entry %d overflows chunk", i))
				}
				m.Voxels = append(m.Voxels, RawVoxel{
					X:          uint32(data[off]),
					Y:          uint32(data[off+1]),
					Z:          uint32(data[off+2]),
					ColorIndex: data[off+3],
				})
			}
		case "RGBA":
			for i := 0; i < 255 && (i+1)*4+3 < len(data); i++ {
				off := i * 4
				c := uint32(data[off]) | uint32(data[off+1])<<8 | uint32(data[off+2])<<16 | uint32(data[off+3])<<24
				file.Palette[i+1] = c
			}
		case "PACK":
			if len(data) >= 4 {
				n := binary.LittleEndian.Uint32(data[:4])
				file.Models = make([]RawModel, n)
				currentModel = -1
			}
		default:
			// nTRN/nGRP/nSHP/MATL/LAYR and anything future: scene graph
			// and material metadata this renderer never reads.
		}

		_ = childrenSize
	}

	return file, nil
}

// defaultPalette is MagicaVoxel's built-in 256 color ramp, used when a
// file carries no RGBA chunk of its own.
func defaultPalette() [256]uint32 {
	var p [256]uint32
	steps := []uint32{0x00, 0x33, 0x66, 0x99, 0xCC, 0xFF}
	i := 1
	for _, r := range steps {
		for _, g := range steps {
			for _, b := range steps {
				if i >= 256 {
					break
				}
				p[i] = r | g<<8 | b<<16 | 0xFF<<24
				i++
			}
		}
	}
	return p
}
