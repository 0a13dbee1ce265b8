package anim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/teaspot-studio/zercalo-go/scene"
)

// Mutator is a per-step hook over a Stepper's inner value. It is owned by
// the Stepper for its whole lifetime and may carry captured state.
type Mutator[T Animatable] func(value *T, frame uint32)

// Stepper pairs an inner Animatable value with an arbitrary per-frame
// mutator, invoked after the inner value's own Animate.
type Stepper[T Animatable] struct {
	Value   T
	mutator Mutator[T]
}

// NewStepper constructs a Stepper wrapping value, invoking mutator once
// per frame after value.Animate.
func NewStepper[T Animatable](value T, mutator Mutator[T]) *Stepper[T] {
	return &Stepper[T]{Value: value, mutator: mutator}
}

func (s *Stepper[T]) Animate(frame uint32) {
	s.Value.Animate(frame)
	s.mutator(&s.Value, frame)
}

func (s *Stepper[T]) GetCamera() *scene.Camera {
	return any(s.Value).(scene.HasCamera).GetCamera()
}

func (s *Stepper[T]) GetMutCamera() *scene.Camera {
	return any(s.Value).(scene.HasMutCamera).GetMutCamera()
}

func (s *Stepper[T]) GetBoundingVolume() (mgl32.Vec3, mgl32.Vec3) {
	return any(s.Value).(scene.HasBounding).GetBoundingVolume()
}

func (s *Stepper[T]) GetScene() *scene.Scene {
	return any(s.Value).(scene.HasScene).GetScene()
}

func (s *Stepper[T]) GetMutScene() *scene.Scene {
	return any(s.Value).(scene.HasMutScene).GetMutScene()
}
