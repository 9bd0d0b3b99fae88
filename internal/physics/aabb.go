package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewAABBFromCenter creates an AABB from a center point and half extents.
func NewAABBFromCenter(center, half mgl32.Vec3) AABB {
	return AABB{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

// Bounds returns the world AABB enclosing the box.
func (o OBB) Bounds() AABB {
	var half mgl32.Vec3
	for i := 0; i < 3; i++ {
		axis := mgl32.Vec3{}
		axis[i] = 1
		half[i] = o.project(axis)
	}
	return NewAABBFromCenter(o.Center, half)
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X() <= b.Max.X() && a.Max.X() >= b.Min.X() &&
		a.Min.Y() <= b.Max.Y() && a.Max.Y() >= b.Min.Y() &&
		a.Min.Z() <= b.Max.Z() && a.Max.Z() >= b.Min.Z()
}

// Resolve returns the minimum translation vector to push 'a' out of 'b'.
// Returns zero vector if no overlap.
func (a AABB) Resolve(b AABB) mgl32.Vec3 {
	if !a.Intersects(b) {
		return mgl32.Vec3{}
	}

	var result mgl32.Vec3
	min := float32(math32.MaxFloat32)
	for i := 0; i < 3; i++ {
		up := b.Max[i] - a.Min[i]   // push a along +axis
		down := a.Max[i] - b.Min[i] // push a along -axis
		if up < min {
			min = up
			result = mgl32.Vec3{}
			result[i] = up
		}
		if down < min {
			min = down
			result = mgl32.Vec3{}
			result[i] = -down
		}
	}
	return result
}

// IntersectRay runs the slab test against the box.
// Returns the entry distance (or exit distance if the origin is inside) and the
// axis-aligned face normal at that point.
func (a AABB) IntersectRay(origin, dir mgl32.Vec3, maxDistance float32) (float32, mgl32.Vec3, bool) {
	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)
	var enterAxis, exitAxis int
	var enterSign, exitSign float32

	for i := 0; i < 3; i++ {
		if dir[i] == 0 {
			if origin[i] < a.Min[i] || origin[i] > a.Max[i] {
				return 0, mgl32.Vec3{}, false
			}
			continue
		}
		t1 := (a.Min[i] - origin[i]) / dir[i]
		t2 := (a.Max[i] - origin[i]) / dir[i]
		sign := float32(-1) // entering through the min face
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin, enterAxis, enterSign = t1, i, sign
		}
		if t2 < tmax {
			tmax, exitAxis, exitSign = t2, i, -sign
		}
		if tmin > tmax {
			return 0, mgl32.Vec3{}, false
		}
	}

	if tmax < 0 {
		return 0, mgl32.Vec3{}, false
	}

	t, axis, sign := tmin, enterAxis, enterSign
	if t < 0 {
		t, axis, sign = tmax, exitAxis, exitSign
	}
	if t > maxDistance {
		return 0, mgl32.Vec3{}, false
	}

	var normal mgl32.Vec3
	normal[axis] = sign
	return t, normal, true
}
