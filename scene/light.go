package scene

import "github.com/go-gl/mathgl/mgl32"

// Light is a point light: a world position and a tint.
type Light struct {
	Position mgl32.Vec3
	Color    ColorRGB
}

// NewLight builds a default point light.
func NewLight() Light {
	return Light{
		Position: mgl32.Vec3{23.0, 25.0, 27.0},
		Color:    White,
	}
}
