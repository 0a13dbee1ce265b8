package anim

import (
	"testing"

	"github.com/teaspot-studio/zercalo-go/scene"
)

func TestCompositionAnimatesEveryPart(t *testing.T) {
	a, b, c := newVariant(), newVariant(), newVariant()
	comp := NewComposition([]RelativePart[*sceneVariant]{
		{Value: a},
		{Value: b},
		{Value: c},
	})

	comp.Animate(7)
	comp.Animate(8)

	for i, part := range []*sceneVariant{a, b, c} {
		if len(part.animated) != 2 || part.animated[1] != 8 {
			t.Fatalf("part %d: expected two Animate calls ending in frame 8, got %v", i, part.animated)
		}
	}
}

func TestCompositionWorldTransformComposesWithPart(t *testing.T) {
	a := newVariant()
	comp := NewComposition([]RelativePart[*sceneVariant]{{Value: a}})
	comp.Position = [3]float32{1, 2, 3}
	comp.Parts[0].Position = [3]float32{10, 0, 0}

	pos, _ := comp.WorldTransform(0)
	want := [3]float32{11, 2, 3}
	if pos != want {
		t.Fatalf("got %v want %v", pos, want)
	}
}

func TestBakeReHomesEveryPartModelToWorldSpace(t *testing.T) {
	a, b := newVariant(), newVariant()
	a.Scene.Models = []*scene.Model{scene.NewModel(scene.Size{X: 1, Y: 1, Z: 1})}
	b.Scene.Models = []*scene.Model{scene.NewModel(scene.Size{X: 1, Y: 1, Z: 1})}

	comp := NewComposition([]RelativePart[*sceneVariant]{
		{Value: a, Position: [3]float32{10, 0, 0}},
		{Value: b, Position: [3]float32{-10, 0, 0}},
	})
	comp.Position = [3]float32{1, 1, 1}

	models := Bake(comp)
	if len(models) != 2 {
		t.Fatalf("expected 2 baked models, got %d", len(models))
	}
	if models[0].Offset != ([3]float32{11, 1, 1}) {
		t.Fatalf("part 0 offset = %v", models[0].Offset)
	}
	if models[1].Offset != ([3]float32{-9, 1, 1}) {
		t.Fatalf("part 1 offset = %v", models[1].Offset)
	}
}
