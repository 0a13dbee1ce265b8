package anim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/teaspot-studio/zercalo-go/scene"
)

// RelativePart is one child of a Composition: an inner Animatable plus
// the position/rotation it occupies relative to the composition's own
// origin.
type RelativePart[T Animatable] struct {
	Value    T
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

func (p *RelativePart[T]) Animate(frame uint32) {
	p.Value.Animate(frame)
}

// Composition groups an ordered list of RelativeParts under a shared
// position/rotation. Animating a Composition recurses into every part;
// the composition's own transform is metadata for whichever adapter
// bakes these parts into actual scene.Model offsets — Composition
// itself does not touch scene state.
type Composition[T Animatable] struct {
	Parts    []RelativePart[T]
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// NewComposition builds a Composition at the identity transform with
// the given parts.
func NewComposition[T Animatable](parts []RelativePart[T]) *Composition[T] {
	return &Composition[T]{Parts: parts, Rotation: mgl32.QuatIdent()}
}

func (c *Composition[T]) Animate(frame uint32) {
	for i := range c.Parts {
		c.Parts[i].Animate(frame)
	}
}

// WorldTransform returns the world-space position and rotation of part
// i, composing the composition's own transform with the part's local
// one. It is the helper an adapter uses to bake parts into
// scene.Model.Offset/Rotation before assembling a scene.Scene.
func (c *Composition[T]) WorldTransform(i int) (mgl32.Vec3, mgl32.Quat) {
	part := c.Parts[i]
	pos := c.Position.Add(c.Rotation.Rotate(part.Position))
	rot := c.Rotation.Mul(part.Rotation)
	return pos, rot
}

// Bake renders every part and re-homes its models to world space using
// WorldTransform, flattening a multi-part creature into the slice a
// scene.Scene expects in Models. Each baked model is a shallow copy: the
// voxel array is shared with the part's own model, only Offset and
// Rotation change.
func Bake[T Renderable](c *Composition[T]) []*scene.Model {
	var models []*scene.Model
	for i := range c.Parts {
		pos, rot := c.WorldTransform(i)
		part := c.Parts[i].Value.Render()
		for _, m := range part.Models {
			baked := *m
			baked.Offset = pos.Add(rot.Rotate(m.Offset))
			baked.Rotation = rot.Mul(m.Rotation)
			models = append(models, &baked)
		}
	}
	return models
}
