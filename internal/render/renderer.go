package render

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"rigidedit/internal/engine"
	"rigidedit/internal/geom"
)

var (
	clearColor     = rl.NewColor(26, 26, 26, 255)
	selectionColor = rl.NewColor(255, 255, 255, 255)
	dragColor      = rl.NewColor(255, 220, 0, 255)
)

// Renderer draws the scene into an offscreen target sized to the viewport,
// then blits it to the viewport's screen position.
type Renderer struct {
	target   rl.RenderTexture2D
	viewport geom.Viewport
	loaded   bool
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Resize reallocates the target when the viewport size changes.
func (r *Renderer) Resize(vp geom.Viewport) {
	sameSize := vp.Width == r.viewport.Width && vp.Height == r.viewport.Height
	r.viewport = vp
	if r.loaded && sameSize {
		return
	}
	if r.loaded {
		rl.UnloadRenderTexture(r.target)
	}
	r.target = rl.LoadRenderTexture(int32(vp.Width), int32(vp.Height))
	r.loaded = true
}

// Frame describes what to highlight this frame.
type Frame struct {
	Selected engine.Handle
	Dragging bool
	Grid     int32
}

// Draw renders into the offscreen target. Call Blit inside BeginDrawing.
func (r *Renderer) Draw(cam geom.Camera, scene *engine.Scene, frame Frame) {
	if !r.loaded {
		r.Resize(cam.Viewport)
	}

	rl.BeginTextureMode(r.target)
	rl.ClearBackground(clearColor)

	rl.BeginMode3D(raylibCamera(cam))
	if frame.Grid > 0 {
		rl.DrawGrid(frame.Grid, 1)
	}

	scene.Each(func(obj *engine.Object) {
		drawObject(obj)
	})

	if obj, ok := scene.Resolve(frame.Selected); ok {
		c := selectionColor
		if frame.Dragging {
			c = dragColor
		}
		drawOutline(obj, c)
	}
	rl.EndMode3D()

	rl.EndTextureMode()
}

// Blit copies the target onto the screen at the viewport position.
func (r *Renderer) Blit() {
	if !r.loaded {
		return
	}
	src := rl.Rectangle{
		Width:  float32(r.target.Texture.Width),
		Height: -float32(r.target.Texture.Height), // render textures are stored upside down
	}
	rl.DrawTextureRec(r.target.Texture, src, rl.Vector2{X: r.viewport.X, Y: r.viewport.Y}, rl.White)
}

func (r *Renderer) Unload() {
	if r.loaded {
		rl.UnloadRenderTexture(r.target)
		r.loaded = false
	}
}

func raylibCamera(cam geom.Camera) rl.Camera3D {
	basis, err := cam.Basis()
	if err != nil {
		basis = geom.Basis{Forward: mgl32.Vec3{0, 0, -1}, Right: geom.AxisX, Up: geom.AxisY}
	}
	out := rl.Camera3D{
		Position: vec(cam.Position),
		Target:   vec(cam.Position.Add(basis.Forward)),
		Up:       vec(basis.Up),
		Fovy:     cam.Projection.FovY,
	}
	if cam.Projection.Kind == geom.Orthographic {
		out.Fovy = cam.Projection.OrthoHeight
		out.Projection = rl.CameraOrthographic
	} else {
		out.Projection = rl.CameraPerspective
	}
	return out
}

func drawObject(obj *engine.Object) {
	c := rl.NewColor(obj.Color.R, obj.Color.G, obj.Color.B, obj.Color.A)
	withTransform(obj.Transform, func() {
		switch obj.Shape.Kind {
		case engine.Sphere:
			rl.DrawSphere(rl.Vector3{}, obj.Shape.Radius, c)
		default:
			size := obj.Shape.HalfExtents.Mul(2)
			rl.DrawCube(rl.Vector3{}, size.X(), size.Y(), size.Z(), c)
			rl.DrawCubeWires(rl.Vector3{}, size.X(), size.Y(), size.Z(), shade(c, 0.6))
		}
	})
}

func drawOutline(obj *engine.Object, c rl.Color) {
	withTransform(obj.Transform, func() {
		switch obj.Shape.Kind {
		case engine.Sphere:
			rl.DrawSphereWires(rl.Vector3{}, obj.Shape.Radius*1.03, 12, 12, c)
		default:
			size := obj.Shape.HalfExtents.Mul(2).Add(mgl32.Vec3{0.04, 0.04, 0.04})
			rl.DrawCubeWires(rl.Vector3{}, size.X(), size.Y(), size.Z(), c)
		}
	})
}

// withTransform runs draw with the object's translate, rotate, scale on the matrix stack.
func withTransform(t engine.Transform, draw func()) {
	rl.PushMatrix()
	rl.Translatef(t.Position.X(), t.Position.Y(), t.Position.Z())
	if angle, axis, ok := axisAngle(t.Rotation); ok {
		rl.Rotatef(mgl32.RadToDeg(angle), axis.X(), axis.Y(), axis.Z())
	}
	rl.Scalef(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	draw()
	rl.PopMatrix()
}

func axisAngle(q mgl32.Quat) (float32, mgl32.Vec3, bool) {
	q = q.Normalize()
	s := math32.Sqrt(math32.Max(0, 1-q.W*q.W))
	if s < 1e-6 {
		return 0, mgl32.Vec3{}, false
	}
	return 2 * math32.Acos(mgl32.Clamp(q.W, -1, 1)), q.V.Mul(1 / s), true
}

func vec(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

func shade(c rl.Color, f float32) rl.Color {
	return rl.NewColor(uint8(float32(c.R)*f), uint8(float32(c.G)*f), uint8(float32(c.B)*f), c.A)
}
