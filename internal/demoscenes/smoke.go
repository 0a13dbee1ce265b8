package demoscenes

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/teaspot-studio/zercalo-go/anim"
	"github.com/teaspot-studio/zercalo-go/procedural"
	"github.com/teaspot-studio/zercalo-go/scene"
	"github.com/teaspot-studio/zercalo-go/zlog"
)

// smokeScene owns a SmokeModel plus the Scene it regenerates into every
// frame. The Scene is cached rather than rebuilt from scratch so the
// renderer always sees a stable *scene.Scene pointer between Animate
// and Render calls.
type smokeScene struct {
	id       uuid.UUID
	smoke    *procedural.SmokeModel
	rendered *scene.Scene
}

// NewSmoke builds a rising smoke-plume demo scene. Its RotationView has
// zero speed: the camera does not orbit, it only re-aims at the plume.
func NewSmoke(seed int64) *anim.RotationView[*smokeScene] {
	size := scene.Size{X: 64, Y: 128, Z: 64}
	model := procedural.NewSmokeModel(size, seed)
	model.Parts = []procedural.SmokePart{
		{
			Offset:           mgl32.Vec3{32, 10, 32},
			Radius:           6,
			Velocity:         mgl32.Vec3{0, 0.4, 0},
			RadiusVel:        0.03,
			Temperature:      1.0,
			TempSpeed:        -0.01,
			ScaleNoiseCoords: mgl32.Vec3{0.2, 0.2, 0.2},
			ScaleNoiseResult: 6,
		},
	}
	model.CeilingHeight = 100
	model.CeilingSpeed = -0.5

	s := scene.NewScene()
	eye := mgl32.Vec3{128, 128, 128}
	s.Camera.Eye = eye
	s.Camera.Dir = eye.Mul(-1).Normalize()
	s.Camera.Viewport = scene.Viewport{X: 64, Y: 128}
	s.Lights = []scene.Light{{Position: mgl32.Vec3{128, 150, 75}, Color: scene.White}}

	sc := &smokeScene{id: uuid.New(), smoke: model, rendered: s}
	sc.Animate(0)

	zlog.Default().Debugf("demoscenes: built smoke scene %s", sc.id)
	return anim.NewRotationView[*smokeScene](sc, 0).WithTargetY(32)
}

func (s *smokeScene) Animate(frame uint32) {
	s.smoke.Animate(frame)
	s.rendered.Models = []*scene.Model{s.smoke.Generate()}
}

func (s *smokeScene) Render() *scene.Scene { return s.rendered }

func (s *smokeScene) GetCamera() *scene.Camera    { return &s.rendered.Camera }
func (s *smokeScene) GetMutCamera() *scene.Camera { return &s.rendered.Camera }
func (s *smokeScene) GetBoundingVolume() (mgl32.Vec3, mgl32.Vec3) {
	return s.rendered.Bounding()
}
