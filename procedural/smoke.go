package procedural

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/teaspot-studio/zercalo-go/noise3"
	"github.com/teaspot-studio/zercalo-go/scene"
)

// SmokePart is one puff making up a SmokeModel: a noise-perturbed
// sphere that cools as it rises past CeilingHeight.
type SmokePart struct {
	Offset      mgl32.Vec3
	Radius      float32
	Velocity    mgl32.Vec3
	RadiusVel   float32
	Temperature float32
	TempSpeed   float32

	// ScaleNoiseCoords scales world position before sampling noise;
	// ScaleNoiseResult scales the sampled value before it perturbs the
	// squared radius test.
	ScaleNoiseCoords mgl32.Vec3
	ScaleNoiseResult float32
}

// SmokeModel is a voxel-space field of overlapping noisy spheres,
// colored by each part's temperature and clamped by a ceiling past
// which parts shrink and cool.
type SmokeModel struct {
	Size     scene.Size
	Offset   mgl32.Vec3
	Rotation mgl32.Quat
	Parts    []SmokePart
	Noise    *noise3.Simplex

	ColdColor    scene.ColorRGBA
	HotColor     scene.ColorRGBA
	VeryHotColor scene.ColorRGBA

	CeilingHeight float32
	// CeilingSpeed is the (negative) per-frame radius delta applied
	// above CeilingHeight.
	CeilingSpeed float32
}

// NewSmokeModel returns an empty smoke model with a default cold/hot
// palette and a freshly seeded noise field.
func NewSmokeModel(size scene.Size, seed int64) *SmokeModel {
	return &SmokeModel{
		Size:         size,
		Rotation:     mgl32.QuatIdent(),
		Noise:        noise3.New(seed),
		ColdColor:    scene.ColorRGBA{R: 111, G: 123, B: 155, A: 255},
		HotColor:     scene.ColorRGBA{R: 229, G: 88, B: 41, A: 255},
		VeryHotColor: scene.ColorRGBA{R: 255, G: 200, B: 120, A: 255},
	}
}

func (s *SmokeModel) GetBoundingVolume() (mgl32.Vec3, mgl32.Vec3) {
	return s.Offset, s.Offset.Add(s.Rotation.Rotate(s.Size.AsVec3()))
}

// Generate rasterizes every part into a fresh Model via
// scene.FromFunction: each voxel checks every part in order and takes
// the first one whose noise-perturbed squared distance falls strictly
// inside its radius.
func (s *SmokeModel) Generate() *scene.Model {
	gen := func(x, y, z uint32) scene.ColorRGBA {
		p := mgl32.Vec3{float32(x), float32(y), float32(z)}
		for i := range s.Parts {
			part := &s.Parts[i]
			if part.Radius <= 0 {
				continue
			}
			d := part.Offset.Sub(p)
			d2 := d.Dot(d)

			nx := float64(p.X() * part.ScaleNoiseCoords.X())
			ny := float64(p.Y() * part.ScaleNoiseCoords.Y())
			nz := float64(p.Z() * part.ScaleNoiseCoords.Z())
			dr := float32(s.Noise.Eval(nx, ny, nz)) * part.ScaleNoiseResult
			dr2 := d2 + dr

			if !(dr2 > 0 && dr2 < part.Radius*part.Radius) {
				continue
			}

			if part.Offset.Y() > s.CeilingHeight {
				return s.ColdColor
			}
			veryHotBound := 0.7 * part.Temperature * part.Radius
			if dr2 < veryHotBound*veryHotBound {
				return s.VeryHotColor
			}
			hotBound := part.Temperature * part.Radius
			if dr2 < hotBound*hotBound {
				return s.HotColor
			}
			return s.ColdColor
		}
		return scene.Empty
	}

	m := scene.FromFunction(s.Size, gen)
	m.Rotation = s.Rotation
	m.Offset = s.Offset
	return m
}

// Animate advances every part's offset by its velocity, shrinks its
// radius at CeilingSpeed once past CeilingHeight (never below zero),
// otherwise grows it by RadiusVel, and steps its temperature by
// TempSpeed.
func (s *SmokeModel) Animate(frame uint32) {
	for i := range s.Parts {
		part := &s.Parts[i]
		part.Offset = part.Offset.Add(part.Velocity)

		if part.Offset.Y() > s.CeilingHeight {
			part.Radius += s.CeilingSpeed
			if part.Radius < 0 {
				part.Radius = 0
			}
		} else {
			part.Radius += part.RadiusVel
		}

		part.Temperature += part.TempSpeed
	}
}
