// Package procedural implements the generators that fabricate Models
// from parametric descriptions instead of a .vox import: ballistic
// particle sand and noise-perturbed smoke/fire.
package procedural

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/teaspot-studio/zercalo-go/scene"
)

// Particle is one sand grain: a point mass with velocity, a flat color
// and an integer voxel footprint.
type Particle struct {
	Pos  mgl32.Vec3
	Vel  mgl32.Vec3
	Col  scene.ColorRGBA
	Size uint8
}

// ParticlesModel is a grid of ballistic particles under constant
// gravity, rendered by splatting each particle's AABB footprint of
// voxels at generate() time.
type ParticlesModel struct {
	Size      scene.Size
	Offset    mgl32.Vec3
	Rotation  mgl32.Quat
	Particles []Particle
	Gravity   mgl32.Vec3
}

// NewParticlesModel returns an empty particle model of the given grid
// size with identity rotation and no gravity.
func NewParticlesModel(size scene.Size) *ParticlesModel {
	return &ParticlesModel{Size: size, Rotation: mgl32.QuatIdent()}
}

// Range is an inclusive-low/exclusive-high bound used by the
// randomised constructor.
type Range[T any] struct {
	Min, Max T
}

// NewRandomParticles draws a random particle count in countRange and
// fills each particle's position, velocity and size uniformly from the
// given ranges, picking a color uniformly from colorPool.
func NewRandomParticles(
	rng *rand.Rand,
	size scene.Size,
	countRange Range[int],
	velRange Range[mgl32.Vec3],
	posRange Range[mgl32.Vec3],
	sizeRange Range[uint8],
	colorPool []scene.ColorRGBA,
) *ParticlesModel {
	count := countRange.Min
	if countRange.Max > countRange.Min {
		count += rng.Intn(countRange.Max - countRange.Min)
	}

	particles := make([]Particle, count)
	for i := range particles {
		particles[i] = Particle{
			Pos:  randomVec3(rng, posRange),
			Vel:  randomVec3(rng, velRange),
			Size: randomUint8(rng, sizeRange),
			Col:  colorPool[rng.Intn(len(colorPool))],
		}
	}

	return &ParticlesModel{
		Size:      size,
		Particles: particles,
		Rotation:  mgl32.QuatIdent(),
	}
}

func randomVec3(rng *rand.Rand, r Range[mgl32.Vec3]) mgl32.Vec3 {
	return mgl32.Vec3{
		randomFloat32(rng, r.Min.X(), r.Max.X()),
		randomFloat32(rng, r.Min.Y(), r.Max.Y()),
		randomFloat32(rng, r.Min.Z(), r.Max.Z()),
	}
}

func randomFloat32(rng *rand.Rand, lo, hi float32) float32 {
	return rng.Float32()*(hi-lo) + lo
}

func randomUint8(rng *rand.Rand, r Range[uint8]) uint8 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + uint8(rng.Intn(int(r.Max-r.Min)))
}

// GetBoundingVolume implements scene.HasBounding directly on the
// parametric description, without materialising voxels.
func (p *ParticlesModel) GetBoundingVolume() (mgl32.Vec3, mgl32.Vec3) {
	return p.Offset, p.Offset.Add(p.Rotation.Rotate(p.Size.AsVec3()))
}

// Generate splats every particle's color into the integer AABB
// [floor(max(pos,0)), floor(min(pos+size, grid))) of a fresh Model,
// later particles overwriting earlier ones where footprints overlap.
func (p *ParticlesModel) Generate() *scene.Model {
	m := scene.NewModel(p.Size)

	for _, part := range p.Particles {
		lo := clampToGrid(part.Pos, p.Size)
		hi := clampToGrid(part.Pos.Add(mgl32.Vec3{float32(part.Size), float32(part.Size), float32(part.Size)}), p.Size)

		for x := lo[0]; x < hi[0]; x++ {
			for y := lo[1]; y < hi[1]; y++ {
				for z := lo[2]; z < hi[2]; z++ {
					m.SetVoxel(x, y, z, part.Col)
				}
			}
		}
	}

	m.Rotation = p.Rotation
	m.Offset = p.Offset
	return m
}

func clampToGrid(v mgl32.Vec3, size scene.Size) [3]uint32 {
	clamp := func(f float32, max uint32) uint32 {
		if f < 0 {
			f = 0
		}
		u := uint32(f)
		if u > max {
			u = max
		}
		return u
	}
	return [3]uint32{clamp(v.X(), size.X), clamp(v.Y(), size.Y), clamp(v.Z(), size.Z)}
}

// Animate integrates every particle one Euler step: pos += vel, then
// vel += gravity. Positions are not clamped or collided; only Generate
// clips a particle's footprint to the grid.
func (p *ParticlesModel) Animate(frame uint32) {
	for i := range p.Particles {
		p.Particles[i].Pos = p.Particles[i].Pos.Add(p.Particles[i].Vel)
		p.Particles[i].Vel = p.Particles[i].Vel.Add(p.Gravity)
	}
}
