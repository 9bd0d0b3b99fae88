package geom

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

func testCamera() Camera {
	return Camera{
		Position:    mgl32.Vec3{0, 0, 10},
		Orientation: mgl32.QuatIdent(),
		Projection:  Projection{Kind: Perspective, FovY: 60, Near: 0.1, Far: 1000},
		Viewport:    Viewport{X: 0, Y: 0, Width: 800, Height: 600},
	}
}

func TestCameraRayCenterLooksForward(t *testing.T) {
	ray, err := CameraRay(testCamera(), mgl32.Vec2{400, 300})
	require.NoError(t, err)

	assert.True(t, ray.Direction.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, eps), "dir %v", ray.Direction)
	assert.InDelta(t, 9.9, ray.Origin.Z(), 1e-3)
	assert.InDelta(t, 1, ray.Direction.Len(), eps)
}

func TestCameraRayScreenAxes(t *testing.T) {
	cam := testCamera()

	right, err := CameraRay(cam, mgl32.Vec2{700, 300})
	require.NoError(t, err)
	assert.Greater(t, right.Direction.X(), float32(0))

	top, err := CameraRay(cam, mgl32.Vec2{400, 50})
	require.NoError(t, err)
	assert.Greater(t, top.Direction.Y(), float32(0), "window Y grows downward, world Y upward")
}

func TestCameraRayRespectsViewportOffset(t *testing.T) {
	cam := testCamera()
	cam.Viewport.X = 280
	cam.Viewport.Y = 40

	ray, err := CameraRay(cam, mgl32.Vec2{280 + 400, 40 + 300})
	require.NoError(t, err)
	assert.True(t, ray.Direction.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, eps), "dir %v", ray.Direction)
}

func TestCameraRayOrthographicParallel(t *testing.T) {
	cam := testCamera()
	cam.Projection = Projection{Kind: Orthographic, Near: 0.1, Far: 100, OrthoHeight: 10}

	a, err := CameraRay(cam, mgl32.Vec2{100, 100})
	require.NoError(t, err)
	b, err := CameraRay(cam, mgl32.Vec2{700, 500})
	require.NoError(t, err)

	assert.True(t, a.Direction.ApproxEqualThreshold(b.Direction, eps))
	assert.Less(t, a.Origin.X(), b.Origin.X())
	assert.Greater(t, a.Origin.Y(), b.Origin.Y())
}

func TestCameraRayDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Camera)
	}{
		{"zero width", func(c *Camera) { c.Viewport.Width = 0 }},
		{"zero height", func(c *Camera) { c.Viewport.Height = 0 }},
		{"zero orientation", func(c *Camera) { c.Orientation = mgl32.Quat{} }},
		{"zero fov", func(c *Camera) { c.Projection.FovY = 0 }},
		{"near at zero", func(c *Camera) { c.Projection.Near = 0 }},
		{"far before near", func(c *Camera) { c.Projection.Far = 0.05 }},
		{"ortho without height", func(c *Camera) { c.Projection.Kind = Orthographic }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := testCamera()
			tt.modify(&cam)

			_, err := CameraRay(cam, mgl32.Vec2{1, 1})
			require.Error(t, err)
			var gerr *GeometryError
			assert.True(t, errors.As(err, &gerr))
		})
	}
}

func TestBasisOrthonormal(t *testing.T) {
	quats := []mgl32.Quat{
		mgl32.QuatIdent(),
		mgl32.QuatRotate(0.7, mgl32.Vec3{0, 1, 0}),
		mgl32.QuatRotate(-1.3, mgl32.Vec3{1, 1, 0}.Normalize()),
		FromEulerDegrees(mgl32.Vec3{30, -45, 120}),
		{W: 2, V: mgl32.Vec3{0, 0, 0}}, // not unit length
	}

	for _, q := range quats {
		b, err := BasisOf(q)
		require.NoError(t, err)

		assert.InDelta(t, 1, b.Forward.Len(), eps)
		assert.InDelta(t, 1, b.Right.Len(), eps)
		assert.InDelta(t, 1, b.Up.Len(), eps)
		assert.InDelta(t, 0, b.Forward.Dot(b.Right), eps)
		assert.InDelta(t, 0, b.Forward.Dot(b.Up), eps)
		assert.InDelta(t, 0, b.Right.Dot(b.Up), eps)
	}
}

func TestBasisIdentity(t *testing.T) {
	b, err := BasisOf(mgl32.QuatIdent())
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, b.Forward)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, b.Right)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, b.Up)
}

func TestBasisZeroQuat(t *testing.T) {
	_, err := BasisOf(mgl32.Quat{})
	var gerr *GeometryError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, "basis", gerr.Op)
}

func TestLookRotation(t *testing.T) {
	targets := []mgl32.Vec3{
		{0, 0, -1},
		{1, 0, 0},
		{5, -5, -5},
		{0, 1, 0}, // parallel to up
	}

	for _, f := range targets {
		q, err := LookRotation(f, AxisY)
		require.NoError(t, err)

		b, err := BasisOf(q)
		require.NoError(t, err)
		assert.True(t, b.Forward.ApproxEqualThreshold(f.Normalize(), eps), "forward %v want %v", b.Forward, f)
	}

	_, err := LookRotation(mgl32.Vec3{}, AxisY)
	assert.Error(t, err)
}

func TestOrbitPositionAndSpherical(t *testing.T) {
	offset := Spherical(8.660254, mgl32.DegToRad(-45), mgl32.DegToRad(35.26439))
	assert.True(t, offset.ApproxEqualThreshold(mgl32.Vec3{-5, 5, 5}, 1e-3), "offset %v", offset)

	fwd := offset.Mul(-1).Normalize()
	pos := OrbitPosition(mgl32.Vec3{}, fwd, offset.Len())
	assert.True(t, pos.ApproxEqualThreshold(offset, 1e-3))
}

func TestEulerRoundTrip(t *testing.T) {
	angles := []mgl32.Vec3{
		{0, 0, 0},
		{10, 20, 30},
		{-80, 45, 170},
		{90, 0, 0},
	}

	for _, a := range angles {
		q := FromEulerDegrees(a)
		back := FromEulerDegrees(EulerDegrees(q))
		assert.True(t, q.OrientationEqualThreshold(back, eps), "angles %v -> %v", a, EulerDegrees(q))
	}
}

func TestViewport(t *testing.T) {
	vp := Viewport{X: 280, Y: 0, Width: 1000, Height: 720}

	assert.True(t, vp.Contains(mgl32.Vec2{280, 0}))
	assert.True(t, vp.Contains(mgl32.Vec2{1279, 719}))
	assert.False(t, vp.Contains(mgl32.Vec2{279, 10}))
	assert.False(t, vp.Contains(mgl32.Vec2{1280, 10}))
	assert.InDelta(t, 1000.0/720.0, vp.Aspect(), eps)
	assert.Zero(t, Viewport{}.Aspect())
}

func TestRayAt(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{1, 2, 3}, Direction: mgl32.Vec3{0, 0, -1}}
	assert.Equal(t, mgl32.Vec3{1, 2, 1}, r.At(2))
}
