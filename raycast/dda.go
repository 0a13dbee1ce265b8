package raycast

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/teaspot-studio/zercalo-go/scene"
)

// Hit is one step of a DDA walk: the integer voxel coordinate it
// entered, the distance traveled from the ray origin to reach it, and
// the integer axis-aligned face normal crossed to enter it.
type Hit struct {
	Voxel  [3]int32
	Dist   float32
	Normal mgl32.Vec3
}

// Walk performs a 3-D digital differential analyser traversal of the
// voxel AABB (0,0,0)..size, starting at origin and travelling along
// dir for at most length world units. visit is called once per
// traversed voxel in ray order; returning false stops the walk early.
//
// The first hit's normal defaults to (1,0,0) rather than the zero
// vector, since a hit with no meaningful entry face (the ray origin
// already inside the volume) must still carry a usable normal for
// lighting.
func Walk(origin, dir mgl32.Vec3, length float32, size scene.Size, visit func(Hit) bool) {
	if dir.Dot(dir) == 0 {
		return
	}
	dir = dir.Normalize()

	voxel := [3]int32{int32(floor32(origin[0])), int32(floor32(origin[1])), int32(floor32(origin[2]))}
	step := [3]int32{sign(dir[0]), sign(dir[1]), sign(dir[2])}
	tDelta := [3]float32{safeDelta(dir[0]), safeDelta(dir[1]), safeDelta(dir[2])}

	var tMax [3]float32
	for a := 0; a < 3; a++ {
		tMax[a] = axisTMax(origin[a], dir[a], voxel[a])
	}

	dist := float32(0)
	normal := mgl32.Vec3{1, 0, 0}
	entered := false

	for dist <= length {
		if inBounds(voxel, size) {
			entered = true
			if !visit(Hit{Voxel: voxel, Dist: dist, Normal: normal}) {
				return
			}
		} else if entered {
			return
		}

		axis := 0
		if tMax[1] < tMax[axis] {
			axis = 1
		}
		if tMax[2] < tMax[axis] {
			axis = 2
		}

		dist = tMax[axis]
		voxel[axis] += step[axis]
		tMax[axis] += tDelta[axis]

		normal = mgl32.Vec3{}
		normal[axis] = -float32(step[axis])
	}
}

func floor32(v float32) float32 {
	i := float32(int32(v))
	if v < i {
		i--
	}
	return i
}

func sign(v float32) int32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// safeDelta returns the world distance traveled along an axis to cross
// one grid cell, given the (normalized) ray direction's component on
// that axis. A zero component never crosses a cell boundary.
func safeDelta(d float32) float32 {
	if d == 0 {
		return 1e30
	}
	if d < 0 {
		d = -d
	}
	return 1 / d
}

func axisTMax(origin, dir float32, voxel int32) float32 {
	if dir == 0 {
		return 1e30
	}
	next := float32(voxel)
	if dir > 0 {
		next++
	}
	return (next - origin) / dir
}

func inBounds(v [3]int32, size scene.Size) bool {
	return v[0] >= 0 && v[1] >= 0 && v[2] >= 0 &&
		uint32(v[0]) < size.X && uint32(v[1]) < size.Y && uint32(v[2]) < size.Z
}
