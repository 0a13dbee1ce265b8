package scene

import "github.com/go-gl/mathgl/mgl32"

// Default camera parameters.
const (
	DefaultPixelSize = 0.7
	DefaultMaxDist   = 1024.0
	DefaultTileWidth = 64
	DefaultTileHeight = 64
	DefaultViewScale = 7.0
	DefaultMaxFrames = 128
)

// Viewport is the pixel dimensions of a rendered tile.
type Viewport struct {
	X, Y uint32
}

// Camera is a pinhole, orthographic-style setup: every ray travels along
// Dir, starting from Eye shifted PixelSize world units per pixel along
// Up/Right, so neighbouring rays are parallel.
type Camera struct {
	Eye  mgl32.Vec3
	Dir  mgl32.Vec3
	Up   mgl32.Vec3

	// PixelSize is the world distance between neighbouring pixel rays;
	// it is effectively the camera's zoom.
	PixelSize float32
	// MaxDist is the ray length cutoff.
	MaxDist float32
	// Viewport is the tile size in pixels.
	Viewport Viewport
	// ViewScale is an integer-display upscaling factor used only by a
	// preview UI; the ray-caster never reads it.
	ViewScale mgl32.Vec2
	// MaxFrames is how many frames the driver should render for scenes
	// rooted in this camera.
	MaxFrames uint32
}

// NewCamera builds a default camera: eye at (32,32,32) looking at the
// origin, Y-up.
func NewCamera() Camera {
	eye := mgl32.Vec3{32.0, 32.0, 32.0}
	return Camera{
		Eye:       eye,
		Dir:       eye.Mul(-1).Normalize(),
		Up:        mgl32.Vec3{0, 1, 0},
		PixelSize: DefaultPixelSize,
		MaxDist:   DefaultMaxDist,
		Viewport:  Viewport{DefaultTileWidth, DefaultTileHeight},
		ViewScale: mgl32.Vec2{DefaultViewScale, DefaultViewScale},
		MaxFrames: DefaultMaxFrames,
	}
}

// Valid reports whether the camera has a positive viewport, a positive
// max distance, and non-zero dir/up vectors.
func (c Camera) Valid() bool {
	if c.Viewport.X == 0 || c.Viewport.Y == 0 {
		return false
	}
	if c.MaxDist <= 0 {
		return false
	}
	if c.Dir.Len() == 0 || c.Up.Len() == 0 {
		return false
	}
	return true
}
