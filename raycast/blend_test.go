package raycast

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

// A fully opaque src saturates the result: whatever sits behind it is
// discarded entirely.
func TestBlendSaturatesOnOpaqueSrc(t *testing.T) {
	src := mgl32.Vec4{0.2, 0.4, 0.6, 1.0}
	dst := mgl32.Vec4{0.9, 0.9, 0.9, 0.5}

	got := Blend(src, dst)

	require.InDelta(t, src[0], got[0], 1e-6)
	require.InDelta(t, src[1], got[1], 1e-6)
	require.InDelta(t, src[2], got[2], 1e-6)
	require.InDelta(t, float32(1.0), got[3], 1e-6)
}

// A fully transparent src over a fully opaque dst leaves dst unchanged:
// there is nothing in front to show through.
func TestBlendIdentityOnTransparentSrcOverOpaqueDst(t *testing.T) {
	src := mgl32.Vec4{0.8, 0.1, 0.1, 0.0}
	dst := mgl32.Vec4{0.3, 0.5, 0.7, 1.0}

	got := Blend(src, dst)

	require.InDelta(t, dst[0], got[0], 1e-6)
	require.InDelta(t, dst[1], got[1], 1e-6)
	require.InDelta(t, dst[2], got[2], 1e-6)
	require.InDelta(t, dst[3], got[3], 1e-6)
}

// Compositing two fully transparent colors stays fully transparent.
func TestBlendTransparentOverTransparentStaysEmpty(t *testing.T) {
	got := Blend(mgl32.Vec4{}, mgl32.Vec4{})
	require.Equal(t, mgl32.Vec4{}, got)
}

func TestBlendAccumulatesAlphaOverTranslucentLayers(t *testing.T) {
	src := mgl32.Vec4{1, 1, 1, 0.5}
	dst := mgl32.Vec4{0, 0, 0, 0.5}

	got := Blend(src, dst)

	// src contributes its half, dst contributes half of its remaining half.
	require.InDelta(t, float32(0.5), got[0], 1e-6)
	require.InDelta(t, float32(0.75), got[3], 1e-6)
}
