package camera

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rigidedit/internal/geom"
	"rigidedit/internal/input"
)

var viewport = geom.Viewport{X: 280, Width: 1000, Height: 720}

func newOrbit(t *testing.T) *Orbit {
	t.Helper()
	o, err := NewOrbit(DefaultConfig(), viewport)
	require.NoError(t, err)
	return o
}

func assertOnSphere(t *testing.T, o *Orbit) {
	t.Helper()
	want := o.Focus.Sub(o.Forward().Mul(o.Radius))
	got := o.Camera().Position
	assert.True(t, got.ApproxEqualThreshold(want, 1e-5), "position %v want %v", got, want)
}

func TestNewOrbitStartPose(t *testing.T) {
	o := newOrbit(t)

	assert.True(t, o.Camera().Position.ApproxEqualThreshold(mgl32.Vec3{-5, 5, 5}, 1e-3), "got %v", o.Camera().Position)
	assert.True(t, o.Forward().ApproxEqualThreshold(mgl32.Vec3{5, -5, -5}.Normalize(), 1e-4))
	assert.Equal(t, viewport, o.Camera().Viewport)
	assertOnSphere(t, o)
}

func TestNewOrbitRejectsBadBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinRadius = 10
	cfg.MaxRadius = 5
	_, err := NewOrbit(cfg, viewport)
	assert.Error(t, err)
}

func TestZoomClampsRadius(t *testing.T) {
	o := newOrbit(t)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		scroll := (rng.Float32()*2 - 1) * 40
		o.Update(input.Frame{Scroll: scroll})

		require.GreaterOrEqual(t, o.Radius, float32(2))
		require.LessOrEqual(t, o.Radius, float32(20))
		assertOnSphere(t, o)
	}

	o.Update(input.Frame{Scroll: 1000})
	assert.Equal(t, float32(2), o.Radius)
	o.Update(input.Frame{Scroll: -1000})
	assert.Equal(t, float32(20), o.Radius)
}

func TestZoomScalesRadius(t *testing.T) {
	o := newOrbit(t)
	o.Radius = 10
	o.Update(input.Frame{Scroll: 1})
	assert.InDelta(t, 9, o.Radius, 1e-5)
	o.Update(input.Frame{Scroll: -2})
	assert.InDelta(t, 10.8, o.Radius, 1e-4)
}

func TestRotateNeedsSecondaryButton(t *testing.T) {
	o := newOrbit(t)
	before := o.Camera()

	o.Update(input.Frame{Motion: mgl32.Vec2{40, 10}})
	assert.Equal(t, before, o.Camera())

	o.Update(input.Frame{Secondary: input.ButtonState{Held: true}})
	assert.Equal(t, before, o.Camera(), "zero motion")
}

func TestRotateKeepsFocus(t *testing.T) {
	o := newOrbit(t)
	o.Focus = mgl32.Vec3{1, 2, 3}
	o.Update(input.Frame{Scroll: 0.5}) // re-seat on the new focus

	held := input.ButtonState{Held: true}
	for i := 0; i < 50; i++ {
		o.Update(input.Frame{Secondary: held, Motion: mgl32.Vec2{13, -4}, Scroll: 0.05})
		assertOnSphere(t, o)

		toFocus := o.Focus.Sub(o.Camera().Position).Normalize()
		assert.InDelta(t, 1, toFocus.Dot(o.Forward()), 1e-4)
		assert.InDelta(t, 1, o.Camera().Orientation.Len(), 1e-4)
	}
}

func TestRotateYawDirection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Yaw, cfg.Pitch = 0, 0
	o, err := NewOrbit(cfg, viewport)
	require.NoError(t, err)
	require.True(t, o.Camera().Position.ApproxEqualThreshold(mgl32.Vec3{0, 0, cfg.Radius}, 1e-4))

	// Dragging right swings the camera to the left around the focus
	o.Update(input.Frame{Secondary: input.ButtonState{Held: true}, Motion: mgl32.Vec2{100, 0}})
	assert.Less(t, o.Camera().Position.X(), float32(0))
	assert.InDelta(t, 0, o.Camera().Position.Y(), 1e-4, "pure yaw stays level")
}

func TestFlyMovesFocusAndCamera(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Yaw, cfg.Pitch = 0, 0
	o, err := NewOrbit(cfg, viewport)
	require.NoError(t, err)
	start := o.Camera().Position

	o.Fly(mgl32.Vec3{0, 0, 1}, 0.5)

	assert.True(t, o.Focus.ApproxEqualThreshold(mgl32.Vec3{0, 0, -4}, 1e-4), "focus %v", o.Focus)
	assert.True(t, o.Camera().Position.ApproxEqualThreshold(start.Add(mgl32.Vec3{0, 0, -4}), 1e-4))
	assertOnSphere(t, o)

	o.Fly(mgl32.Vec3{}, 1)
	assert.True(t, o.Focus.ApproxEqualThreshold(mgl32.Vec3{0, 0, -4}, 1e-4))
}

func TestPitchStopsShortOfThePoles(t *testing.T) {
	o := newOrbit(t)
	limit := math32.Sin(mgl32.DegToRad(89)) + 1e-4
	held := input.ButtonState{Held: true}

	// Dragging down raises the camera over the focus
	for i := 0; i < 2000; i++ {
		o.Update(input.Frame{Secondary: held, Motion: mgl32.Vec2{3, 40}})
		require.LessOrEqual(t, math32.Abs(o.Forward().Y()), limit)
		assertOnSphere(t, o)
	}
	assert.Greater(t, o.Camera().Position.Y(), o.Focus.Y())
	assert.Less(t, o.Forward().Y(), float32(0), "still looking down")

	for i := 0; i < 2000; i++ {
		o.Update(input.Frame{Secondary: held, Motion: mgl32.Vec2{-3, -40}})
		require.LessOrEqual(t, math32.Abs(o.Forward().Y()), limit)
	}
	assert.Less(t, o.Camera().Position.Y(), o.Focus.Y())
	assert.Greater(t, o.Forward().Y(), float32(0), "still looking up")

	// Yaw still works at the limit
	before := o.Camera().Position
	o.Update(input.Frame{Secondary: held, Motion: mgl32.Vec2{200, 0}})
	assert.False(t, o.Camera().Position.ApproxEqualThreshold(before, 1e-3))
	assertOnSphere(t, o)
}
