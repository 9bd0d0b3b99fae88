package camera

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"rigidedit/internal/geom"
	"rigidedit/internal/input"
)

// Config is the orbit camera's starting pose and tuning.
type Config struct {
	Focus             mgl32.Vec3
	Yaw               float32 // degrees, 0 looks from +Z
	Pitch             float32 // degrees above the focus
	Radius            float32
	MinRadius         float32
	MaxRadius         float32
	RotateSensitivity float32 // radians per pixel
	ZoomSensitivity   float32 // fraction of radius per scroll step
	FlySpeed          float32 // units per second
	FovY              float32
	Near              float32
	Far               float32
}

func DefaultConfig() Config {
	return Config{
		Yaw:               -45,
		Pitch:             35.26439,
		Radius:            8.660254, // places the camera at (-5, 5, 5)
		MinRadius:         2,
		MaxRadius:         20,
		RotateSensitivity: 0.005,
		ZoomSensitivity:   0.1,
		FlySpeed:          8,
		FovY:              45,
		Near:              0.1,
		Far:               1000,
	}
}

// Orbit keeps a camera on a sphere around a focus point.
// After every update Position == Focus - Forward*Radius.
type Orbit struct {
	Focus             mgl32.Vec3
	Radius            float32
	MinRadius         float32
	MaxRadius         float32
	RotateSensitivity float32
	ZoomSensitivity   float32
	FlySpeed          float32

	camera geom.Camera
}

func NewOrbit(cfg Config, viewport geom.Viewport) (*Orbit, error) {
	if cfg.MinRadius <= 0 || cfg.MaxRadius < cfg.MinRadius {
		return nil, fmt.Errorf("orbit: invalid radius bounds [%g, %g]", cfg.MinRadius, cfg.MaxRadius)
	}

	o := &Orbit{
		Focus:             cfg.Focus,
		MinRadius:         cfg.MinRadius,
		MaxRadius:         cfg.MaxRadius,
		RotateSensitivity: cfg.RotateSensitivity,
		ZoomSensitivity:   cfg.ZoomSensitivity,
		FlySpeed:          cfg.FlySpeed,
		camera: geom.Camera{
			Projection: geom.Projection{Kind: geom.Perspective, FovY: cfg.FovY, Near: cfg.Near, Far: cfg.Far},
			Viewport:   viewport,
		},
	}
	o.Radius = o.clampRadius(cfg.Radius)

	offset := geom.Spherical(1, mgl32.DegToRad(cfg.Yaw), mgl32.DegToRad(cfg.Pitch))
	rot, err := geom.LookRotation(offset.Mul(-1), geom.AxisY)
	if err != nil {
		return nil, fmt.Errorf("orbit: start pose: %w", err)
	}
	o.camera.Orientation = rot
	o.reposition()
	return o, nil
}

// Update applies right-drag rotation and wheel zoom from one frame of input.
func (o *Orbit) Update(frame input.Frame) {
	if frame.Secondary.Held && (frame.Motion.X() != 0 || frame.Motion.Y() != 0) {
		o.rotate(frame.Motion)
	}
	if frame.Scroll != 0 {
		o.Radius = o.clampRadius(o.Radius * (1 - frame.Scroll*o.ZoomSensitivity))
		o.reposition()
	}
}

// maxElevation keeps the camera short of the poles so it never flips over.
var maxElevation = mgl32.DegToRad(89)

// rotate yaws about world up and pitches about the camera's current right axis.
// Pitch is limited so the camera stays within maxElevation of the horizon.
func (o *Orbit) rotate(motion mgl32.Vec2) {
	basis, err := o.camera.Basis()
	if err != nil {
		return
	}
	// A pitch of a lowers the elevation above the focus by a.
	elevation := math32.Asin(mgl32.Clamp(-basis.Forward.Y(), -1, 1))
	angle := mgl32.Clamp(-motion.Y()*o.RotateSensitivity, elevation-maxElevation, elevation+maxElevation)

	yaw := mgl32.QuatRotate(-motion.X()*o.RotateSensitivity, geom.AxisY)
	pitch := mgl32.QuatRotate(angle, basis.Right)
	o.camera.Orientation = yaw.Mul(pitch).Mul(o.camera.Orientation).Normalize()
	o.reposition()
}

// Fly moves the focus and camera together. move is in camera space:
// X right, Y up, Z forward.
func (o *Orbit) Fly(move mgl32.Vec3, dt float32) {
	if move.Len() == 0 || dt <= 0 {
		return
	}
	basis, err := o.camera.Basis()
	if err != nil {
		return
	}
	dir := basis.Right.Mul(move.X()).
		Add(basis.Up.Mul(move.Y())).
		Add(basis.Forward.Mul(move.Z()))
	if dir.Len() > 1 {
		dir = dir.Normalize()
	}
	o.Focus = o.Focus.Add(dir.Mul(o.FlySpeed * dt))
	o.reposition()
}

func (o *Orbit) SetViewport(vp geom.Viewport) {
	o.camera.Viewport = vp
}

func (o *Orbit) Camera() geom.Camera {
	return o.camera
}

func (o *Orbit) Forward() mgl32.Vec3 {
	basis, err := o.camera.Basis()
	if err != nil {
		return mgl32.Vec3{0, 0, -1}
	}
	return basis.Forward
}

func (o *Orbit) reposition() {
	o.camera.Position = geom.OrbitPosition(o.Focus, o.Forward(), o.Radius)
}

func (o *Orbit) clampRadius(r float32) float32 {
	if math32.IsNaN(r) {
		return o.MinRadius
	}
	return math32.Max(o.MinRadius, math32.Min(o.MaxRadius, r))
}
