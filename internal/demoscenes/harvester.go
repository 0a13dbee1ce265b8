package demoscenes

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/teaspot-studio/zercalo-go/anim"
	"github.com/teaspot-studio/zercalo-go/scene"
	"github.com/teaspot-studio/zercalo-go/zlog"
)

const (
	harvesterBodySize  = 20
	harvesterLegWidth  = 4
	harvesterLegLength = 16
	harvesterLegSwing  = 0.3
)

// harvesterScene is a boxy four-legged walker: one body part and four
// leg parts held in an anim.Composition, each an independent Renderable
// the way zercalo-viewer builds its multi-part creatures from separate
// pieces instead of one big voxel grid. Every frame the legs pick up a
// swing rotation and anim.Bake flattens the whole rig into one set of
// world-space models.
type harvesterScene struct {
	id       uuid.UUID
	comp     *anim.Composition[*anim.Root]
	rendered *scene.Scene
}

func boxPart(size scene.Size, c scene.ColorRGBA) *anim.Root {
	model := scene.FromFunction(size, func(x, y, z uint32) scene.ColorRGBA { return c })
	s := scene.NewScene()
	s.Models = []*scene.Model{model}
	return anim.NewRoot(s)
}

// NewHarvester builds the four-legged walker demo scene.
func NewHarvester() *anim.RotationView[*harvesterScene] {
	body := boxPart(
		scene.Size{X: harvesterBodySize, Y: harvesterBodySize / 2, Z: harvesterBodySize},
		scene.ColorRGBA{R: 90, G: 90, B: 100, A: 255},
	)
	legSize := scene.Size{X: harvesterLegWidth, Y: harvesterLegLength, Z: harvesterLegWidth}
	legColor := scene.ColorRGBA{R: 40, G: 40, B: 45, A: 255}

	half := float32(harvesterBodySize) / 2
	legOffsets := []mgl32.Vec3{
		{half, -harvesterLegLength, half},
		{half, -harvesterLegLength, -half - harvesterLegWidth},
		{-half - harvesterLegWidth, -harvesterLegLength, half},
		{-half - harvesterLegWidth, -harvesterLegLength, -half - harvesterLegWidth},
	}

	parts := make([]anim.RelativePart[*anim.Root], 0, 1+len(legOffsets))
	parts = append(parts, anim.RelativePart[*anim.Root]{Value: body, Rotation: mgl32.QuatIdent()})
	for _, off := range legOffsets {
		parts = append(parts, anim.RelativePart[*anim.Root]{Value: boxPart(legSize, legColor), Position: off, Rotation: mgl32.QuatIdent()})
	}

	comp := anim.NewComposition(parts)

	s := scene.NewScene()
	eye := mgl32.Vec3{80, 60, 80}
	s.Camera.Eye = eye
	s.Camera.Dir = eye.Mul(-1).Normalize()
	s.Camera.Viewport = scene.Viewport{X: 128, Y: 128}
	s.Lights = []scene.Light{{Position: mgl32.Vec3{80, 100, 40}, Color: scene.White}}

	hs := &harvesterScene{id: uuid.New(), comp: comp, rendered: s}
	hs.Animate(0)

	zlog.Default().Debugf("demoscenes: built harvester scene %s", hs.id)
	return anim.NewRotationView[*harvesterScene](hs, mgl32.DegToRad(0.5)).WithTargetY(harvesterBodySize / 4)
}

func (h *harvesterScene) Animate(frame uint32) {
	h.comp.Animate(frame)

	phase := float64(frame) * 0.2
	for i := 1; i < len(h.comp.Parts); i++ {
		sign := float32(1)
		if i%2 == 0 {
			sign = -1
		}
		angle := harvesterLegSwing * sign * float32(math.Sin(phase))
		h.comp.Parts[i].Rotation = mgl32.QuatRotate(angle, mgl32.Vec3{1, 0, 0})
	}

	h.rendered.Models = anim.Bake(h.comp)
}

func (h *harvesterScene) Render() *scene.Scene { return h.rendered }

func (h *harvesterScene) GetCamera() *scene.Camera    { return &h.rendered.Camera }
func (h *harvesterScene) GetMutCamera() *scene.Camera { return &h.rendered.Camera }
func (h *harvesterScene) GetBoundingVolume() (mgl32.Vec3, mgl32.Vec3) {
	return h.rendered.Bounding()
}
