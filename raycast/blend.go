package raycast

import "github.com/go-gl/mathgl/mgl32"

// Blend composites src premultiplied-over dst, both in premultiplied
// RGBA with channels in [0,1]:
//
//	out.rgb = src.rgb*src.a + dst.rgb*dst.a*(1-src.a)
//	out.a   = src.a + dst.a*(1-src.a)
func Blend(src, dst mgl32.Vec4) mgl32.Vec4 {
	distFactor := dst[3] * (1 - src[3])
	return mgl32.Vec4{
		src[0]*src[3] + dst[0]*distFactor,
		src[1]*src[3] + dst[1]*distFactor,
		src[2]*src[3] + dst[2]*distFactor,
		src[3] + distFactor,
	}
}
