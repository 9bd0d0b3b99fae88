package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type ProjectionKind int

const (
	Perspective ProjectionKind = iota
	Orthographic
)

// Projection describes how the camera maps view space to clip space.
type Projection struct {
	Kind        ProjectionKind
	FovY        float32 // Vertical field of view in degrees (perspective only)
	Near        float32
	Far         float32
	OrthoHeight float32 // Visible height in world units (orthographic only)
}

// Viewport is the window-space rectangle the camera renders into, in pixels
// with the origin at the top-left corner of the window.
type Viewport struct {
	X, Y          float32
	Width, Height float32
}

func (v Viewport) Contains(p mgl32.Vec2) bool {
	return p.X() >= v.X && p.X() < v.X+v.Width &&
		p.Y() >= v.Y && p.Y() < v.Y+v.Height
}

func (v Viewport) Aspect() float32 {
	if v.Height == 0 {
		return 0
	}
	return v.Width / v.Height
}

// Camera is the viewport camera the editor picks and drags through.
type Camera struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
	Projection  Projection
	Viewport    Viewport
}

// View returns the world-to-view matrix (inverse of the camera pose).
func (c Camera) View() mgl32.Mat4 {
	inv := c.Orientation.Normalize().Conjugate().Mat4()
	p := c.Position
	return inv.Mul4(mgl32.Translate3D(-p.X(), -p.Y(), -p.Z()))
}

// ProjectionMatrix returns the view-to-clip matrix for the current viewport aspect.
func (c Camera) ProjectionMatrix() mgl32.Mat4 {
	aspect := c.Viewport.Aspect()
	pr := c.Projection
	if pr.Kind == Orthographic {
		h := pr.OrthoHeight / 2
		w := h * aspect
		return mgl32.Ortho(-w, w, -h, h, pr.Near, pr.Far)
	}
	return mgl32.Perspective(mgl32.DegToRad(pr.FovY), aspect, pr.Near, pr.Far)
}

// Basis returns the camera's forward/right/up unit vectors.
func (c Camera) Basis() (Basis, error) {
	return BasisOf(c.Orientation)
}

func (c Camera) validate(op string) error {
	vp := c.Viewport
	if vp.Width < 1 || vp.Height < 1 {
		return degenerate(op, "viewport has no area")
	}
	if c.Orientation.Len() < quatEpsilon {
		return degenerate(op, "zero orientation")
	}
	pr := c.Projection
	if pr.Far <= pr.Near {
		return degenerate(op, "far plane not beyond near plane")
	}
	switch pr.Kind {
	case Perspective:
		if pr.Near <= 0 {
			return degenerate(op, "perspective near plane must be positive")
		}
		if pr.FovY <= 0 || pr.FovY >= 180 {
			return degenerate(op, "field of view out of range")
		}
	case Orthographic:
		if pr.OrthoHeight <= 0 {
			return degenerate(op, "orthographic height must be positive")
		}
	default:
		return degenerate(op, "unknown projection kind")
	}
	if !finite3(c.Position) {
		return degenerate(op, "non-finite camera position")
	}
	return nil
}

func finite3(v mgl32.Vec3) bool {
	for _, f := range v {
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return false
		}
	}
	return true
}
