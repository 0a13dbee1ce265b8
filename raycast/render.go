// Package raycast implements the offline voxel ray-caster: the 3-D DDA
// grid walker, the premultiplied-alpha blend function, and the
// parallel per-pixel frame renderer that turns a Renderable animation
// chain into a sequence of RGBA tiles.
package raycast

import (
	"runtime"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/teaspot-studio/zercalo-go/anim"
	"github.com/teaspot-studio/zercalo-go/scene"
	"github.com/teaspot-studio/zercalo-go/zercaloerr"
)

// Tile is one rendered RGBA frame.
type Tile struct {
	Width, Height uint32
	Pixels        []scene.ColorRGBA
}

// NewTile allocates a tile of the given size, cleared to fully
// transparent black.
func NewTile(w, h uint32) *Tile {
	return &Tile{Width: w, Height: h, Pixels: make([]scene.ColorRGBA, int(w)*int(h))}
}

// At returns the pixel at (x,y).
func (t *Tile) At(x, y uint32) scene.ColorRGBA {
	return t.Pixels[y*t.Width+x]
}

func (t *Tile) set(x, y uint32, c scene.ColorRGBA) {
	t.Pixels[y*t.Width+x] = c
}

// RenderFrame evaluates every pixel of s.Camera.Viewport against every
// model in s, in parallel across a bounded worker pool.
func RenderFrame(s *scene.Scene) *Tile {
	cam := s.Camera
	w, h := cam.Viewport.X, cam.Viewport.Y
	tile := NewTile(w, h)

	type job struct{ row uint32 }
	jobs := make(chan job, h)
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for n := 0; n < workers; n++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				renderRow(s, tile, j.row)
			}
		}()
	}

	for y := uint32(0); y < h; y++ {
		jobs <- job{row: y}
	}
	close(jobs)
	wg.Wait()

	return tile
}

func renderRow(s *scene.Scene, tile *Tile, j uint32) {
	cam := s.Camera
	w, h := cam.Viewport.X, cam.Viewport.Y

	for i := uint32(0); i < w; i++ {
		totalColor := mgl32.Vec4{}
		totalDist := cam.MaxDist

		for _, model := range s.Models {
			modelColor, modelDist := renderPixelForModel(s, model, i, j)

			if modelDist <= totalDist {
				totalColor = Blend(modelColor, totalColor)
				totalDist = modelDist
			} else {
				totalColor = Blend(totalColor, modelColor)
			}
		}

		// Framebuffer y-axis flip: pixel (i,j) writes to row H-j.
		row := h - j
		if row >= h {
			row = h - 1
		}
		tile.set(i, row, colorFromPremultipliedClamped(totalColor))
	}
}

func renderPixelForModel(s *scene.Scene, model *scene.Model, i, j uint32) (mgl32.Vec4, float32) {
	cam := s.Camera
	w, h := cam.Viewport.X, cam.Viewport.Y

	rotInv := model.Rotation.Inverse()
	eye := rotInv.Rotate(cam.Eye)
	up := rotInv.Rotate(cam.Up)
	dir := rotInv.Rotate(cam.Dir)
	right := dir.Cross(up)

	off := up.Mul((float32(j) - 0.5*float32(h)) * cam.PixelSize).
		Add(right.Mul((float32(i) - 0.5*float32(w)) * cam.PixelSize))

	rayOrigin := eye.Sub(model.Offset).Add(off)

	modelColor := mgl32.Vec4{}
	modelDist := cam.MaxDist

	Walk(rayOrigin, dir, cam.MaxDist, model.Size, func(hit Hit) bool {
		voxelPos := mgl32.Vec3{float32(hit.Voxel[0]), float32(hit.Voxel[1]), float32(hit.Voxel[2])}
		raw := model.GetVoxel(uint32(hit.Voxel[0]), uint32(hit.Voxel[1]), uint32(hit.Voxel[2]))
		diffuse := model.Resolve(raw).AsVec4()

		lightComponent := mgl32.Vec3{}
		for _, light := range s.Lights {
			toLight := rotInv.Rotate(light.Position).Sub(voxelPos)
			if toLight.Dot(toLight) > 0 {
				toLight = toLight.Normalize()
			}
			weight := toLight.Dot(hit.Normal)
			contribution := elemMul(vec3(diffuse), light.Color.AsVec3()).Mul(weight)
			lightComponent = lightComponent.Add(maxVec3Zero(contribution))
		}
		ambient := elemMul(vec3(diffuse), s.Ambient.AsVec3())
		shaded := ambient.Add(lightComponent)

		modelColor = Blend(modelColor, mgl32.Vec4{shaded.X(), shaded.Y(), shaded.Z(), diffuse.W()})
		modelDist = rayOrigin.Sub(voxelPos).Len()

		return modelColor.W() < 1.0
	})

	return modelColor, modelDist
}

func vec3(v mgl32.Vec4) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}

func elemMul(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func maxVec3Zero(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		maxF(v.X(), 0),
		maxF(v.Y(), 0),
		maxF(v.Z(), 0),
	}
}

func maxF(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func colorFromPremultipliedClamped(v mgl32.Vec4) scene.ColorRGBA {
	if v[3] <= 0 {
		return scene.Empty
	}
	return scene.ColorFromPremultiplied(v)
}

// RenderFrames drives root through frames calls to Animate, rendering
// one Tile per frame. It stops with a KindRender error, returning the
// tiles rendered so far, when a frame's camera fails Camera.Valid (so
// no tile of that frame can be allocated or cast); per-pixel
// computation cannot itself fail.
func RenderFrames(root anim.Renderable, frames uint32) ([]*Tile, error) {
	tiles := make([]*Tile, 0, frames)
	for f := uint32(0); f < frames; f++ {
		root.Animate(f)
		s := root.Render()
		if !s.Camera.Valid() {
			return tiles, zercaloerr.New(zercaloerr.KindRender, "camera has invalid viewport or direction")
		}
		tiles = append(tiles, RenderFrame(s))
	}
	return tiles, nil
}
