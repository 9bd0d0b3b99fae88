package geom

import "github.com/go-gl/mathgl/mgl32"

// Ray is a half-line in world space. Direction is unit length.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// CameraRay unprojects a window-space point through the camera into a world-space ray.
// The ray starts on the near plane and points toward the matching far-plane point,
// so it works for both perspective and orthographic cameras.
func CameraRay(cam Camera, screen mgl32.Vec2) (Ray, error) {
	const op = "camera ray"
	if err := cam.validate(op); err != nil {
		return Ray{}, err
	}

	vp := cam.Viewport
	w, h := int(vp.Width), int(vp.Height)
	view := cam.View()
	proj := cam.ProjectionMatrix()

	// UnProject expects viewport-relative coordinates with Y growing upward
	wx := screen.X() - vp.X
	wy := float32(h) - (screen.Y() - vp.Y)

	near, err := mgl32.UnProject(mgl32.Vec3{wx, wy, 0}, view, proj, 0, 0, w, h)
	if err != nil {
		return Ray{}, &GeometryError{Op: op, Reason: "near plane unproject", Err: err}
	}
	far, err := mgl32.UnProject(mgl32.Vec3{wx, wy, 1}, view, proj, 0, 0, w, h)
	if err != nil {
		return Ray{}, &GeometryError{Op: op, Reason: "far plane unproject", Err: err}
	}
	if !finite3(near) || !finite3(far) {
		return Ray{}, degenerate(op, "non-finite unprojected point")
	}

	dir := far.Sub(near)
	if dir.Len() < 1e-6 {
		return Ray{}, degenerate(op, "near and far points coincide")
	}
	return Ray{Origin: near, Direction: dir.Normalize()}, nil
}
