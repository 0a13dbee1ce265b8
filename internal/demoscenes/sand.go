package demoscenes

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/teaspot-studio/zercalo-go/anim"
	"github.com/teaspot-studio/zercalo-go/procedural"
	"github.com/teaspot-studio/zercalo-go/scene"
	"github.com/teaspot-studio/zercalo-go/zlog"
)

// sandScene owns a ParticlesModel plus the Scene it regenerates into
// every frame.
type sandScene struct {
	id       uuid.UUID
	sand     *procedural.ParticlesModel
	rendered *scene.Scene
}

// NewSand builds a falling-sand demo scene: a few hundred particles
// under constant downward gravity.
func NewSand(seed int64) *anim.RotationView[*sandScene] {
	rng := rand.New(rand.NewSource(seed))
	colors := []scene.ColorRGBA{
		{R: 242, G: 183, B: 106, A: 100},
		{R: 232, G: 198, B: 150, A: 100},
		{R: 255, G: 145, B: 56, A: 100},
	}
	model := procedural.NewRandomParticles(
		rng,
		scene.Size{X: 128, Y: 128, Z: 128},
		procedural.Range[int]{Min: 500, Max: 700},
		procedural.Range[mgl32.Vec3]{Min: mgl32.Vec3{0, 0.1, 0}, Max: mgl32.Vec3{0.3, 1.0, 0.3}},
		procedural.Range[mgl32.Vec3]{Min: mgl32.Vec3{60, -20, 60}, Max: mgl32.Vec3{70, 1, 70}},
		procedural.Range[uint8]{Min: 1, Max: 3},
		colors,
	)
	model.Gravity = mgl32.Vec3{0, -0.007, 0}

	s := scene.NewScene()
	eye := mgl32.Vec3{256, 256, 256}
	s.Camera.Eye = eye
	s.Camera.Dir = eye.Mul(-1).Normalize()
	s.Camera.PixelSize = 1.0
	s.Camera.Viewport = scene.Viewport{X: 128, Y: 128}
	s.Camera.ViewScale = mgl32.Vec2{4, 4}
	s.Camera.MaxFrames = 420
	s.Lights = []scene.Light{{Position: mgl32.Vec3{128, 150, 75}, Color: scene.White}}

	sc := &sandScene{id: uuid.New(), sand: model, rendered: s}
	sc.Animate(0)

	zlog.Default().Debugf("demoscenes: built sand scene %s", sc.id)
	return anim.NewRotationView[*sandScene](sc, 0).WithTargetY(0)
}

func (s *sandScene) Animate(frame uint32) {
	s.sand.Animate(frame)
	s.rendered.Models = []*scene.Model{s.sand.Generate()}
}

func (s *sandScene) Render() *scene.Scene { return s.rendered }

func (s *sandScene) GetCamera() *scene.Camera    { return &s.rendered.Camera }
func (s *sandScene) GetMutCamera() *scene.Camera { return &s.rendered.Camera }
func (s *sandScene) GetBoundingVolume() (mgl32.Vec3, mgl32.Vec3) {
	return s.rendered.Bounding()
}
