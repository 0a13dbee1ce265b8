package anim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/teaspot-studio/zercalo-go/scene"
)

// RotationView wraps a Renderable and orbits its camera around the
// wrapped value's bounding-volume center by RotationSpeed radians of
// world +Y rotation per frame.
type RotationView[T interface {
	Renderable
	scene.HasCamera
	scene.HasMutCamera
	scene.HasBounding
}] struct {
	Scene T
	// TargetY, when set, overrides the bounding center's Y coordinate
	// for the orbit pivot — useful to keep the camera level with a
	// model's mid-height instead of drifting with its true centroid.
	TargetY *float32
	// RotationSpeed is the per-frame orbit angle, in radians, about
	// world +Y.
	RotationSpeed float32
}

// NewRotationView wraps value to orbit its camera at speed radians per
// frame, pivoting around its bounding-volume center.
func NewRotationView[T interface {
	Renderable
	scene.HasCamera
	scene.HasMutCamera
	scene.HasBounding
}](value T, speed float32) *RotationView[T] {
	return &RotationView[T]{Scene: value, RotationSpeed: speed}
}

// WithTargetY overrides the orbit pivot's Y coordinate.
func (r *RotationView[T]) WithTargetY(y float32) *RotationView[T] {
	r.TargetY = &y
	return r
}

func (r *RotationView[T]) Animate(frame uint32) {
	r.Scene.Animate(frame)

	quat := mgl32.QuatRotate(r.RotationSpeed, mgl32.Vec3{0, 1, 0})

	target := scene.BoundingCenter(r.Scene)
	if r.TargetY != nil {
		target[1] = *r.TargetY
	}

	cam := r.Scene.GetMutCamera()
	cam.Eye = target.Add(quat.Rotate(cam.Eye.Sub(target)))
	cam.Dir = target.Sub(cam.Eye).Normalize()
}

func (r *RotationView[T]) Render() *scene.Scene {
	return r.Scene.Render()
}

func (r *RotationView[T]) GetCamera() *scene.Camera {
	return r.Scene.GetCamera()
}

func (r *RotationView[T]) GetMutCamera() *scene.Camera {
	return r.Scene.GetMutCamera()
}

func (r *RotationView[T]) GetBoundingVolume() (mgl32.Vec3, mgl32.Vec3) {
	return r.Scene.GetBoundingVolume()
}

func (r *RotationView[T]) GetScene() *scene.Scene {
	return any(r.Scene).(scene.HasScene).GetScene()
}

func (r *RotationView[T]) GetMutScene() *scene.Scene {
	return any(r.Scene).(scene.HasMutScene).GetMutScene()
}
