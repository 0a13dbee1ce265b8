package scene

import "github.com/go-gl/mathgl/mgl32"

// Scene is an ordered set of models, an ordered set of lights, one camera
// and one ambient color.
type Scene struct {
	Models  []*Model
	Lights  []Light
	Camera  Camera
	Ambient ColorRGB
}

// NewScene builds an empty scene with the default camera and a single
// default light.
func NewScene() *Scene {
	return &Scene{
		Lights:  []Light{NewLight()},
		Camera:  NewCamera(),
		Ambient: ColorRGB{25, 25, 25},
	}
}

// Bounding returns the axis-aligned min/max over every model's
// transformed (Rotation·Size) corner sum, treating Offset as the min
// corner. This is intentionally loose for non-axis-aligned rotations,
// but conservative enough for camera framing.
func (s *Scene) Bounding() (mgl32.Vec3, mgl32.Vec3) {
	const inf = float32(1e30)
	min := mgl32.Vec3{inf, inf, inf}
	max := mgl32.Vec3{-inf, -inf, -inf}

	for _, m := range s.Models {
		mmin, mmax := m.Bounding()
		min = componentMin(min, mmin)
		max = componentMax(max, mmax)
	}
	return min, max
}

// Center is the half-extent of Bounding(), i.e. (max-min)*0.5.
func (s *Scene) Center() mgl32.Vec3 {
	min, max := s.Bounding()
	return max.Sub(min).Mul(0.5)
}

func componentMin(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{min32(a.X(), b.X()), min32(a.Y(), b.Y()), min32(a.Z(), b.Z())}
}

func componentMax(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{max32(a.X(), b.X()), max32(a.Y(), b.Y()), max32(a.Z(), b.Z())}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// HasScene is implemented by anything that wraps, directly or through a
// chain of wrappers, a concrete Scene.
type HasScene interface {
	GetScene() *Scene
}

// HasMutScene is the mutable counterpart of HasScene.
type HasMutScene interface {
	GetMutScene() *Scene
}

// HasCamera exposes read access to the active camera.
type HasCamera interface {
	GetCamera() *Camera
}

// HasMutCamera exposes mutable access to the active camera.
type HasMutCamera interface {
	GetMutCamera() *Camera
}

// HasBounding exposes the axis-aligned bounding volume of whatever is
// wrapped, plus a derived center.
type HasBounding interface {
	GetBoundingVolume() (mgl32.Vec3, mgl32.Vec3)
}

// BoundingCenter derives a center point from any HasBounding.
func BoundingCenter(b HasBounding) mgl32.Vec3 {
	min, max := b.GetBoundingVolume()
	return max.Sub(min).Mul(0.5)
}

// GetScene implements HasScene for a bare Scene (the base case: "we can
// always render a static scene").
func (s *Scene) GetScene() *Scene { return s }

// GetMutScene implements HasMutScene for a bare Scene.
func (s *Scene) GetMutScene() *Scene { return s }

// GetCamera implements HasCamera for a bare Scene.
func (s *Scene) GetCamera() *Camera { return &s.Camera }

// GetMutCamera implements HasMutCamera for a bare Scene.
func (s *Scene) GetMutCamera() *Camera { return &s.Camera }

// GetBoundingVolume implements HasBounding for a bare Scene.
func (s *Scene) GetBoundingVolume() (mgl32.Vec3, mgl32.Vec3) { return s.Bounding() }
