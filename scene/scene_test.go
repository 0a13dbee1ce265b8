package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSceneBoundingContainsModelOffsets(t *testing.T) {
	s := NewScene()
	m1 := NewModel(Size{2, 2, 2})
	m1.Offset = mgl32.Vec3{1, 1, 1}
	m2 := NewModel(Size{4, 4, 4})
	m2.Offset = mgl32.Vec3{-3, 0, 5}
	s.Models = append(s.Models, m1, m2)

	min, max := s.Bounding()
	for _, m := range s.Models {
		if m.Offset.X() < min.X() || m.Offset.X() > max.X() {
			t.Errorf("model offset %v out of bounding [%v, %v] on X", m.Offset, min, max)
		}
		if m.Offset.Y() < min.Y() || m.Offset.Y() > max.Y() {
			t.Errorf("model offset %v out of bounding [%v, %v] on Y", m.Offset, min, max)
		}
		if m.Offset.Z() < min.Z() || m.Offset.Z() > max.Z() {
			t.Errorf("model offset %v out of bounding [%v, %v] on Z", m.Offset, min, max)
		}
	}
}

func TestSceneCenterIsHalfExtent(t *testing.T) {
	s := NewScene()
	m := NewModel(Size{2, 2, 2})
	s.Models = append(s.Models, m)
	min, max := s.Bounding()
	want := max.Sub(min).Mul(0.5)
	if got := s.Center(); got != want {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestSceneEmptyEmptyModelsBounding(t *testing.T) {
	s := NewScene()
	min, max := s.Bounding()
	// With no models, min stays +inf and max stays -inf; callers with
	// empty scenes should not rely on this.
	if min.X() <= max.X() {
		t.Skip("degenerate bounding of empty scene is not a meaningful assertion")
	}
}
