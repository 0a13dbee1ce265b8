package anim

import (
	"math"
	"testing"

	"github.com/teaspot-studio/zercalo-go/scene"
)

func TestRotationViewOrbitPreservesDistanceToTarget(t *testing.T) {
	s := scene.NewScene()
	s.Camera = scene.NewCamera()
	s.Camera.Eye = [3]float32{10, 0, 0}
	s.Models = append(s.Models, scene.NewModel(scene.Size{2, 2, 2}))

	root := NewRoot(s)
	rv := NewRotationView[*Root](root, float32(math.Pi/2))

	before := scene.BoundingCenter(rv)
	distBefore := root.Scene.Camera.Eye.Sub(before).Len()

	rv.Animate(0)

	after := scene.BoundingCenter(rv)
	distAfter := root.Scene.Camera.Eye.Sub(after).Len()

	if math32Abs(distAfter-distBefore) > 1e-3 {
		t.Fatalf("orbit must preserve distance to the pivot: before %v after %v", distBefore, distAfter)
	}
}

func TestRotationViewReaimsDirAtTarget(t *testing.T) {
	s := scene.NewScene()
	s.Camera = scene.NewCamera()
	s.Camera.Eye = [3]float32{5, 0, 0}
	s.Models = append(s.Models, scene.NewModel(scene.Size{1, 1, 1}))

	root := NewRoot(s)
	rv := NewRotationView[*Root](root, 0.3)
	rv.Animate(0)

	target := scene.BoundingCenter(rv)
	wantDir := target.Sub(root.Scene.Camera.Eye).Normalize()
	gotDir := root.Scene.Camera.Dir

	if math32Abs(gotDir.X()-wantDir.X()) > 1e-4 ||
		math32Abs(gotDir.Y()-wantDir.Y()) > 1e-4 ||
		math32Abs(gotDir.Z()-wantDir.Z()) > 1e-4 {
		t.Fatalf("camera dir must point at the pivot: got %v want %v", gotDir, wantDir)
	}
}

func math32Abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
