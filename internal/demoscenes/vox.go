package demoscenes

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/teaspot-studio/zercalo-go/anim"
	"github.com/teaspot-studio/zercalo-go/scene"
	"github.com/teaspot-studio/zercalo-go/voximport"
	"github.com/teaspot-studio/zercalo-go/zercaloerr"
)

// NewVox loads the first model out of a MagicaVoxel file and frames it
// in a default orbiting camera.
func NewVox(path string) (*anim.RotationView[*anim.Root], error) {
	file, err := voximport.Load(path)
	if err != nil {
		return nil, err
	}

	models := voximport.ImportAll(file)
	if len(models) == 0 {
		return nil, zercaloerr.New(zercaloerr.KindDecode, "vox file contains no models")
	}

	s := scene.NewScene()
	s.Models = []*scene.Model{models[0]}

	eye := mgl32.Vec3{128, 128, 128}
	s.Camera.Eye = eye
	s.Camera.Dir = eye.Mul(-1).Normalize()
	s.Camera.PixelSize = 1.0
	s.Camera.Viewport = scene.Viewport{X: 256, Y: 256}
	s.Camera.ViewScale = mgl32.Vec2{2, 2}
	s.Lights = []scene.Light{{Position: mgl32.Vec3{128, 150, 75}, Color: scene.White}}

	root := anim.NewRoot(s)
	view := anim.NewRotationView[*anim.Root](root, mgl32.DegToRad(1.0))
	view.WithTargetY(32)
	return view, nil
}
