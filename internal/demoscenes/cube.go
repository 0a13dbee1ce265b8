package demoscenes

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/teaspot-studio/zercalo-go/anim"
	"github.com/teaspot-studio/zercalo-go/scene"
)

const cubeGridSize = 32

// NewCube builds the simplest built-in demo: a single solid-color cube,
// orbited slowly so every ray-cast edge case (grazing hits, corner
// voxels, a camera that clears the bounding volume) gets exercised
// without needing any external assets.
func NewCube() *anim.RotationView[*anim.Root] {
	size := scene.Size{X: cubeGridSize, Y: cubeGridSize, Z: cubeGridSize}
	model := scene.FromFunction(size, func(x, y, z uint32) scene.ColorRGBA {
		return scene.ColorRGBA{R: 200, G: 120, B: 60, A: 255}
	})

	s := scene.NewScene()
	s.Models = []*scene.Model{model}

	eye := mgl32.Vec3{64, 64, 64}
	s.Camera.Eye = eye
	s.Camera.Dir = eye.Mul(-1).Normalize()
	s.Camera.Viewport = scene.Viewport{X: 128, Y: 128}

	root := anim.NewRoot(s)
	return anim.NewRotationView[*anim.Root](root, mgl32.DegToRad(1.0)).WithTargetY(cubeGridSize / 2)
}
