package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const quatEpsilon = 1e-6

var (
	AxisX = mgl32.Vec3{1, 0, 0}
	AxisY = mgl32.Vec3{0, 1, 0}
	AxisZ = mgl32.Vec3{0, 0, 1}
)

// Basis holds the unit vectors of an orientation. Forward is local -Z.
type Basis struct {
	Forward mgl32.Vec3
	Right   mgl32.Vec3
	Up      mgl32.Vec3
}

// BasisOf derives forward/right/up from an orientation.
func BasisOf(q mgl32.Quat) (Basis, error) {
	if q.Len() < quatEpsilon {
		return Basis{}, degenerate("basis", "zero orientation")
	}
	q = q.Normalize()
	return Basis{
		Forward: q.Rotate(mgl32.Vec3{0, 0, -1}),
		Right:   q.Rotate(AxisX),
		Up:      q.Rotate(AxisY),
	}, nil
}

// LookRotation returns the orientation whose forward axis points along forward,
// keeping its up axis as close to up as possible.
func LookRotation(forward, up mgl32.Vec3) (mgl32.Quat, error) {
	if forward.Len() < quatEpsilon {
		return mgl32.Quat{}, degenerate("look rotation", "zero forward vector")
	}
	f := forward.Normalize()
	r := f.Cross(up)
	if r.Len() < quatEpsilon {
		// forward is parallel to up; any perpendicular works
		r = f.Cross(AxisZ)
		if r.Len() < quatEpsilon {
			r = f.Cross(AxisX)
		}
	}
	r = r.Normalize()
	u := r.Cross(f)
	b := f.Mul(-1)

	m := mgl32.Mat4{
		r.X(), r.Y(), r.Z(), 0,
		u.X(), u.Y(), u.Z(), 0,
		b.X(), b.Y(), b.Z(), 0,
		0, 0, 0, 1,
	}
	return mgl32.Mat4ToQuat(m).Normalize(), nil
}

// OrbitPosition places a camera radius units behind focus along forward.
func OrbitPosition(focus, forward mgl32.Vec3, radius float32) mgl32.Vec3 {
	return focus.Sub(forward.Mul(radius))
}

// Spherical converts (radius, yaw, pitch) in radians to a Cartesian offset.
// Yaw 0 looks down +Z, positive pitch lifts the point above the XZ plane.
func Spherical(radius, yaw, pitch float32) mgl32.Vec3 {
	cp := math32.Cos(pitch)
	return mgl32.Vec3{
		radius * cp * math32.Sin(yaw),
		radius * math32.Sin(pitch),
		radius * cp * math32.Cos(yaw),
	}
}

// EulerDegrees decomposes q into X, Y, Z angles in degrees such that
// FromEulerDegrees(EulerDegrees(q)) reproduces q.
func EulerDegrees(q mgl32.Quat) mgl32.Vec3 {
	m := q.Normalize().Mat4()
	sy := clamp(m.At(0, 2), -1, 1)
	var x, y, z float32
	y = math32.Asin(sy)
	if math32.Abs(sy) < 0.9999 {
		x = math32.Atan2(-m.At(1, 2), m.At(2, 2))
		z = math32.Atan2(-m.At(0, 1), m.At(0, 0))
	} else {
		x = math32.Atan2(m.At(2, 1), m.At(1, 1))
		z = 0
	}
	return mgl32.Vec3{mgl32.RadToDeg(x), mgl32.RadToDeg(y), mgl32.RadToDeg(z)}
}

// FromEulerDegrees composes Rx * Ry * Rz from angles in degrees.
func FromEulerDegrees(v mgl32.Vec3) mgl32.Quat {
	qx := mgl32.QuatRotate(mgl32.DegToRad(v.X()), AxisX)
	qy := mgl32.QuatRotate(mgl32.DegToRad(v.Y()), AxisY)
	qz := mgl32.QuatRotate(mgl32.DegToRad(v.Z()), AxisZ)
	return qx.Mul(qy).Mul(qz).Normalize()
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
