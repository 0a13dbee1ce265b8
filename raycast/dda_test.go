package raycast

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
	"github.com/teaspot-studio/zercalo-go/scene"
)

func TestWalkVisitsOnlyInBoundsVoxelsAlongTheRay(t *testing.T) {
	size := scene.Size{X: 4, Y: 4, Z: 4}
	origin := mgl32.Vec3{0.5, 0.5, 10}
	dir := mgl32.Vec3{0, 0, -1}

	var hits []Hit
	Walk(origin, dir, 20, size, func(h Hit) bool {
		hits = append(hits, h)
		return true
	})

	require.NotEmpty(t, hits)
	for _, h := range hits {
		require.GreaterOrEqual(t, h.Voxel[0], int32(0))
		require.GreaterOrEqual(t, h.Voxel[1], int32(0))
		require.GreaterOrEqual(t, h.Voxel[2], int32(0))
		require.Less(t, h.Voxel[0], int32(size.X))
		require.Less(t, h.Voxel[1], int32(size.Y))
		require.Less(t, h.Voxel[2], int32(size.Z))
	}
	// Travelling straight down -Z, the walk enters the grid at z=3 and
	// exits at z=0 without revisiting an axis.
	require.Equal(t, [3]int32{0, 0, 3}, hits[0].Voxel)
	require.Equal(t, [3]int32{0, 0, 0}, hits[len(hits)-1].Voxel)
}

func TestWalkStopsEarlyWhenVisitReturnsFalse(t *testing.T) {
	size := scene.Size{X: 4, Y: 4, Z: 4}
	origin := mgl32.Vec3{0.5, 0.5, 10}
	dir := mgl32.Vec3{0, 0, -1}

	count := 0
	Walk(origin, dir, 20, size, func(h Hit) bool {
		count++
		return false
	})

	require.Equal(t, 1, count)
}

func TestWalkNeverEntersTheGridWhenFacingAway(t *testing.T) {
	size := scene.Size{X: 4, Y: 4, Z: 4}
	origin := mgl32.Vec3{0.5, 0.5, 10}
	dir := mgl32.Vec3{0, 0, 1}

	var hits []Hit
	Walk(origin, dir, 20, size, func(h Hit) bool {
		hits = append(hits, h)
		return true
	})

	require.Empty(t, hits)
}

func TestWalkIgnoresAZeroDirection(t *testing.T) {
	called := false
	Walk(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{}, 20, scene.Size{X: 4, Y: 4, Z: 4}, func(h Hit) bool {
		called = true
		return true
	})
	require.False(t, called)
}
