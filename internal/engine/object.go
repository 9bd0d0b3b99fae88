package engine

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func IdentityTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Matrix returns the local-to-world matrix T * R * S.
func (t Transform) Matrix() mgl32.Mat4 {
	p := t.Position
	s := t.Scale
	return mgl32.Translate3D(p.X(), p.Y(), p.Z()).
		Mul4(t.Rotation.Normalize().Mat4()).
		Mul4(mgl32.Scale3D(s.X(), s.Y(), s.Z()))
}

type ShapeKind int

const (
	Cuboid ShapeKind = iota
	Sphere
)

func (k ShapeKind) String() string {
	switch k {
	case Cuboid:
		return "cube"
	case Sphere:
		return "sphere"
	default:
		return "unknown"
	}
}

// Shape is the collider geometry in object space, before the transform's scale.
type Shape struct {
	Kind        ShapeKind
	HalfExtents mgl32.Vec3 // Cuboid
	Radius      float32    // Sphere
}

func BoxShape(halfExtents mgl32.Vec3) Shape {
	return Shape{Kind: Cuboid, HalfExtents: halfExtents}
}

func SphereShape(radius float32) Shape {
	return Shape{Kind: Sphere, Radius: radius}
}

// LocalExtents returns the half size of the shape's bounding box in object space.
func (s Shape) LocalExtents() mgl32.Vec3 {
	if s.Kind == Sphere {
		return mgl32.Vec3{s.Radius, s.Radius, s.Radius}
	}
	return s.HalfExtents
}

type BodyKind int

const (
	Dynamic BodyKind = iota
	Fixed
	Kinematic
)

var bodyKindNames = [...]string{"dynamic", "fixed", "kinematic"}

func (k BodyKind) String() string {
	if k < 0 || int(k) >= len(bodyKindNames) {
		return "unknown"
	}
	return bodyKindNames[k]
}

type Body struct {
	Kind            BodyKind
	Mass            float32
	LinearDamping   float32
	AngularDamping  float32
	Restitution     float32
	Friction        float32
	Velocity        mgl32.Vec3
	AngularVelocity mgl32.Vec3 // axis * radians per second
}

func DefaultBody(kind BodyKind) Body {
	return Body{
		Kind:           kind,
		Mass:           1,
		LinearDamping:  0.05,
		AngularDamping: 0.05,
		Restitution:    0.5,
		Friction:       0.5,
	}
}

// Object is a manipulable rigid body in the scene.
type Object struct {
	Handle    Handle
	Name      string
	Transform Transform
	Shape     Shape
	Body      Body
	Color     color.RGBA
}

func NewObject(name string, shape Shape, body Body) *Object {
	return &Object{
		Name:      name,
		Transform: IdentityTransform(),
		Shape:     shape,
		Body:      body,
		Color:     color.RGBA{R: 200, G: 200, B: 200, A: 255},
	}
}
