package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"rigidedit/internal/engine"
)

type RayHit struct {
	Handle   engine.Handle
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
}

// QueryFilter narrows which colliders a ray query considers.
type QueryFilter struct {
	Exclude   engine.Handle // skipped when non-nil
	SkipFixed bool
}

func (f QueryFilter) accepts(obj *engine.Object) bool {
	if !f.Exclude.IsNil() && obj.Handle == f.Exclude {
		return false
	}
	if f.SkipFixed && obj.Body.Kind == engine.Fixed {
		return false
	}
	return true
}

// Index answers ray queries against every collider in a scene.
type Index struct {
	scene *engine.Scene
}

func NewIndex(scene *engine.Scene) *Index {
	return &Index{scene: scene}
}

// CastRay checks for intersection with all colliders and returns the closest hit
// no further than maxDistance along the normalized direction.
func (x *Index) CastRay(origin, direction mgl32.Vec3, maxDistance float32, filter QueryFilter) (RayHit, bool) {
	if direction.Len() < 1e-8 || maxDistance <= 0 {
		return RayHit{}, false
	}
	direction = direction.Normalize()

	var closest RayHit
	closest.Distance = maxDistance
	hit := false

	x.scene.Each(func(obj *engine.Object) {
		if !filter.accepts(obj) {
			return
		}
		h, ok := raycastObject(origin, direction, obj, closest.Distance)
		if ok && (!hit || h.Distance < closest.Distance) {
			closest = h
			closest.Handle = obj.Handle
			hit = true
		}
	})

	return closest, hit
}

// raycastObject tests the collider in object space. The direction is mapped with
// the inverse transform but not renormalized, so the ray parameter is the same
// world distance on both sides.
func raycastObject(origin, dir mgl32.Vec3, obj *engine.Object, maxDistance float32) (RayHit, bool) {
	m := obj.Transform.Matrix()
	if math32.Abs(m.Det()) < 1e-12 {
		return RayHit{}, false // collapsed scale
	}
	inv := m.Inv()

	lo := mgl32.TransformCoordinate(origin, inv)
	ld := mgl32.TransformNormal(dir, inv)

	var t float32
	var localNormal mgl32.Vec3
	var ok bool
	switch obj.Shape.Kind {
	case engine.Sphere:
		t, localNormal, ok = raycastSphere(lo, ld, obj.Shape.Radius, maxDistance)
	default:
		box := NewAABBFromCenter(mgl32.Vec3{}, absVec(obj.Shape.HalfExtents))
		t, localNormal, ok = box.IntersectRay(lo, ld, maxDistance)
	}
	if !ok {
		return RayHit{}, false
	}

	// Normals go through the inverse transpose
	normal := mgl32.TransformNormal(localNormal, inv.Transpose())
	if normal.Len() > 0 {
		normal = normal.Normalize()
	}
	return RayHit{
		Point:    origin.Add(dir.Mul(t)),
		Normal:   normal,
		Distance: t,
	}, true
}

// raycastSphere intersects a ray with a sphere centered at the origin.
func raycastSphere(origin, dir mgl32.Vec3, radius, maxDistance float32) (float32, mgl32.Vec3, bool) {
	a := dir.Dot(dir)
	b := 2.0 * origin.Dot(dir)
	c := origin.Dot(origin) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 || a == 0 {
		return 0, mgl32.Vec3{}, false
	}

	sq := math32.Sqrt(discriminant)
	t := (-b - sq) / (2 * a)
	if t < 0 {
		t = (-b + sq) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return 0, mgl32.Vec3{}, false
	}

	point := origin.Add(dir.Mul(t))
	return t, point.Normalize(), true
}
