package scene

import (
	"runtime"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Size is the integer extents of a voxel grid.
type Size struct {
	X, Y, Z uint32
}

// Count returns the total number of voxels in a grid of this size.
func (s Size) Count() int {
	return int(s.X) * int(s.Y) * int(s.Z)
}

// AsVec3 widens the extents to float32, used for bounding-volume math.
func (s Size) AsVec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(s.X), float32(s.Y), float32(s.Z)}
}

// Model is an axis-aligned voxel grid with a world transform. Voxels are
// stored flat, indexed x-fastest then y then z (Index).
type Model struct {
	Size   Size
	Voxels []ColorRGBA

	Offset   mgl32.Vec3
	Rotation mgl32.Quat

	// ReplaceColors lets a single shared model be retinted per scene
	// instance without copying the voxel array: sampling looks the
	// source color up here first.
	ReplaceColors map[ColorRGBA]ColorRGBA
}

// Index returns the flat voxel-array offset for local grid coordinates.
func (m *Model) Index(x, y, z uint32) int {
	return int(x) + int(y)*int(m.Size.X) + int(z)*int(m.Size.X)*int(m.Size.Y)
}

// NewModel allocates an empty (fully transparent) voxel grid of the given
// size with identity rotation and zero offset.
func NewModel(size Size) *Model {
	return &Model{
		Size:     size,
		Voxels:   make([]ColorRGBA, size.Count()),
		Rotation: mgl32.QuatIdent(),
	}
}

// SetVoxel writes a color at local grid coordinates. Callers must keep
// (x,y,z) within Size; there is no bounds check.
func (m *Model) SetVoxel(x, y, z uint32, v ColorRGBA) {
	m.Voxels[m.Index(x, y, z)] = v
}

// GetVoxel reads the color at local grid coordinates.
func (m *Model) GetVoxel(x, y, z uint32) ColorRGBA {
	return m.Voxels[m.Index(x, y, z)]
}

// Resolve looks a sampled voxel color up in ReplaceColors, falling back to
// the voxel's own color when there is no override.
func (m *Model) Resolve(c ColorRGBA) ColorRGBA {
	if m.ReplaceColors == nil {
		return c
	}
	if replacement, ok := m.ReplaceColors[c]; ok {
		return replacement
	}
	return c
}

// Generator computes the color of the voxel at local grid coordinates
// (x,y,z). It must be a pure function: FromFunction invokes it from many
// goroutines concurrently with no ordering guarantee beyond "x outer, y
// inner, z serial within a worker".
type Generator func(x, y, z uint32) ColorRGBA

// FromFunction builds a Model of the given size by evaluating gen at every
// grid cell. The fill is parallelised over the outer x dimension and then
// over y; z is walked serially inside each worker — do not parallelise
// over z, it measurably hurts cache behaviour. The returned Model has zero
// offset and identity rotation; callers that need a transform set it
// afterward.
func FromFunction(size Size, gen Generator) *Model {
	voxels := make([]ColorRGBA, size.Count())

	type col struct {
		x, y uint32
	}
	jobs := make(chan col, int(size.X)*int(size.Y))
	var wg sync.WaitGroup

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}

	worker := func() {
		defer wg.Done()
		for c := range jobs {
			base := int(c.x) + int(c.y)*int(size.X)
			for z := uint32(0); z < size.Z; z++ {
				voxels[base+int(z)*int(size.X)*int(size.Y)] = gen(c.x, c.y, z)
			}
		}
	}

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go worker()
	}
	for x := uint32(0); x < size.X; x++ {
		for y := uint32(0); y < size.Y; y++ {
			jobs <- col{x, y}
		}
	}
	close(jobs)
	wg.Wait()

	return &Model{
		Size:     size,
		Voxels:   voxels,
		Rotation: mgl32.QuatIdent(),
	}
}

// Bounding returns the model's axis-aligned min/max corners in world
// space, using a loose rotated-extent convention: the max corner is
// Offset + Rotation·Size rather than the true rotated AABB. Adequate for
// camera framing, not for culling.
func (m *Model) Bounding() (mgl32.Vec3, mgl32.Vec3) {
	min := m.Offset
	max := m.Offset.Add(m.Rotation.Rotate(m.Size.AsVec3()))
	return min, max
}
