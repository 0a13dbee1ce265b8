// Package anim implements the compositional animation algebra: wrapping a
// base scene in stackable behaviors (per-frame rotation, time-indexed
// frame switching, arbitrary per-frame mutators, hierarchical
// composition). Every wrapper forwards whichever capability interfaces
// (scene.HasScene, scene.HasMutScene, scene.HasCamera, scene.HasMutCamera,
// scene.HasBounding) its inner value implements, so wrappers stack in any
// order while the renderer consumes only the root's Renderable surface.
package anim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/teaspot-studio/zercalo-go/scene"
)

// Animatable is anything with per-frame state evolution.
type Animatable interface {
	Animate(frame uint32)
}

// Renderable is an Animatable that additionally yields the scene to
// render. One instance is created at scene-construction time, mutated by
// the frame driver once per frame in non-decreasing frame order, and
// discarded when the driver finishes.
type Renderable interface {
	Animatable
	Render() *scene.Scene
}

// Root wraps a bare *scene.Scene as a Renderable: a static scene never
// changes between frames ("we always can render a static scene").
type Root struct {
	Scene *scene.Scene
}

// NewRoot wraps s for direct use as an animation chain root.
func NewRoot(s *scene.Scene) *Root {
	return &Root{Scene: s}
}

func (r *Root) Animate(frame uint32) {}

func (r *Root) Render() *scene.Scene { return r.Scene }

func (r *Root) GetScene() *scene.Scene      { return r.Scene }
func (r *Root) GetMutScene() *scene.Scene   { return r.Scene }
func (r *Root) GetCamera() *scene.Camera    { return &r.Scene.Camera }
func (r *Root) GetMutCamera() *scene.Camera { return &r.Scene.Camera }
func (r *Root) GetBoundingVolume() (mgl32.Vec3, mgl32.Vec3) {
	return r.Scene.Bounding()
}
