// Package scene holds the voxel scene data model: colors, models, the
// camera, lights and the scene graph that the animation and ray-casting
// packages operate on.
package scene

import "github.com/go-gl/mathgl/mgl32"

// ColorRGB is an opaque 8-bit-per-channel color, used for lights and the
// scene ambient term.
type ColorRGB struct {
	R, G, B uint8
}

// White is a fully lit ColorRGB.
var White = ColorRGB{255, 255, 255}

// Black is the zero ColorRGB.
var Black = ColorRGB{0, 0, 0}

// AsVec3 maps the color into float32 channels in [0, 1].
func (c ColorRGB) AsVec3() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(c.R) / 255.0,
		float32(c.G) / 255.0,
		float32(c.B) / 255.0,
	}
}

// ColorRGBA is a voxel color. Alpha 0 marks an empty voxel: it renders as
// fully transparent and costs a ray step but contributes nothing visually.
type ColorRGBA struct {
	R, G, B, A uint8
}

// Empty is the zero-alpha "no voxel here" color.
var Empty = ColorRGBA{0, 0, 0, 0}

// WhiteOpaque is a fully lit, fully opaque ColorRGBA.
var WhiteOpaque = ColorRGBA{255, 255, 255, 255}

// BlackOpaque is a fully opaque black ColorRGBA.
var BlackOpaque = ColorRGBA{0, 0, 0, 255}

// IsEmpty reports whether the voxel carries zero alpha.
func (c ColorRGBA) IsEmpty() bool {
	return c.A == 0
}

// WithAlpha returns a copy of c with the alpha channel replaced.
func (c ColorRGBA) WithAlpha(a uint8) ColorRGBA {
	c.A = a
	return c
}

// AsVec4 maps the color into float32 channels in [0, 1], unmultiplied.
func (c ColorRGBA) AsVec4() mgl32.Vec4 {
	return mgl32.Vec4{
		float32(c.R) / 255.0,
		float32(c.G) / 255.0,
		float32(c.B) / 255.0,
		float32(c.A) / 255.0,
	}
}

// AsPremultiplied converts the color into a premultiplied-alpha Vec4: the
// RGB channels are scaled by alpha so the blend compositor needs no extra
// multiplication. In that representation RGB describes how much light of
// each channel is actually captured.
func (c ColorRGBA) AsPremultiplied() mgl32.Vec4 {
	a := float32(c.A) / 255.0
	return mgl32.Vec4{
		float32(c.R) / 255.0 * a,
		float32(c.G) / 255.0 * a,
		float32(c.B) / 255.0 * a,
		a,
	}
}

// ColorFromPremultiplied is the inverse of AsPremultiplied. The result is
// undefined when v.W() (alpha) is zero; callers must never invoke this on
// an empty voxel's accumulated color. Channels are clamped to 255 before
// conversion: summed lighting can push a channel past full white, and
// Go's float-to-uint8 conversion wraps out-of-range values instead of
// saturating them the way Rust's "as u8" does.
func ColorFromPremultiplied(v mgl32.Vec4) ColorRGBA {
	return ColorRGBA{
		R: uint8(min(255, v[0]/v[3]*255.0)),
		G: uint8(min(255, v[1]/v[3]*255.0)),
		B: uint8(min(255, v[2]/v[3]*255.0)),
		A: uint8(min(255, v[3]*255.0)),
	}
}
