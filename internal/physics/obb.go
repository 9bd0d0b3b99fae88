package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"rigidedit/internal/engine"
)

const axisEpsilon = 1e-4

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   mgl32.Vec3    // World-space center
	HalfSize mgl32.Vec3    // Half-extents along local axes
	Axes     [3]mgl32.Vec3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates an OBB from center, half size, and orientation
func NewOBB(center, halfSize mgl32.Vec3, rotation mgl32.Quat) OBB {
	q := rotation.Normalize()
	return OBB{
		Center:   center,
		HalfSize: absVec(halfSize),
		Axes: [3]mgl32.Vec3{
			q.Rotate(mgl32.Vec3{1, 0, 0}),
			q.Rotate(mgl32.Vec3{0, 1, 0}),
			q.Rotate(mgl32.Vec3{0, 0, 1}),
		},
	}
}

// OBBOf returns the world-space box around an object's collider.
// Spheres get the box around their (possibly scaled) extents.
func OBBOf(obj *engine.Object) OBB {
	tr := obj.Transform
	half := mulVec(obj.Shape.LocalExtents(), tr.Scale)
	return NewOBB(tr.Position, half, tr.Rotation)
}

// IntersectsOBB tests if two OBBs intersect using the Separating Axis Theorem
func (a OBB) IntersectsOBB(b OBB) bool {
	_, ok := a.ResolveOBB(b)
	return ok
}

func (o OBB) project(axis mgl32.Vec3) float32 {
	return o.HalfSize.X()*math32.Abs(o.Axes[0].Dot(axis)) +
		o.HalfSize.Y()*math32.Abs(o.Axes[1].Dot(axis)) +
		o.HalfSize.Z()*math32.Abs(o.Axes[2].Dot(axis))
}

// ResolveOBB returns the minimum translation vector to push 'a' out of 'b'.
// The bool is false when a separating axis exists.
func (a OBB) ResolveOBB(b OBB) (mgl32.Vec3, bool) {
	t := b.Center.Sub(a.Center)
	minPenetration := float32(math32.MaxFloat32)
	var mtv mgl32.Vec3
	separated := false

	testAxis := func(axis mgl32.Vec3) {
		if separated || axis.Len() < axisEpsilon {
			return
		}
		axis = axis.Normalize()

		dist := t.Dot(axis)
		penetration := a.project(axis) + b.project(axis) - math32.Abs(dist)
		if penetration < 0 {
			separated = true
			return
		}
		if penetration < minPenetration {
			minPenetration = penetration
			// Push in the direction away from B
			if dist < 0 {
				mtv = axis.Mul(penetration)
			} else {
				mtv = axis.Mul(-penetration)
			}
		}
	}

	for i := 0; i < 3; i++ {
		testAxis(a.Axes[i])
	}
	for i := 0; i < 3; i++ {
		testAxis(b.Axes[i])
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			testAxis(a.Axes[i].Cross(b.Axes[j]))
		}
	}

	if separated {
		return mgl32.Vec3{}, false
	}
	return mtv, true
}

// ClosestPoint returns the point of the box closest to p
func (o OBB) ClosestPoint(p mgl32.Vec3) mgl32.Vec3 {
	local := p.Sub(o.Center)
	result := o.Center
	for i := 0; i < 3; i++ {
		d := clamp(local.Dot(o.Axes[i]), -o.HalfSize[i], o.HalfSize[i])
		result = result.Add(o.Axes[i].Mul(d))
	}
	return result
}

// Corners returns the eight world-space corners
func (o OBB) Corners() [8]mgl32.Vec3 {
	var out [8]mgl32.Vec3
	for i := 0; i < 8; i++ {
		c := o.Center
		for axis := 0; axis < 3; axis++ {
			s := float32(1)
			if i&(1<<axis) != 0 {
				s = -1
			}
			c = c.Add(o.Axes[axis].Mul(s * o.HalfSize[axis]))
		}
		out[i] = c
	}
	return out
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func absVec(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Abs(v.X()), math32.Abs(v.Y()), math32.Abs(v.Z())}
}

func mulVec(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}
