package app

import (
	"fmt"
	"image/color"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"rigidedit/internal/camera"
	"rigidedit/internal/config"
	"rigidedit/internal/editor"
	"rigidedit/internal/engine"
	"rigidedit/internal/input"
	"rigidedit/internal/physics"
	"rigidedit/internal/render"
	"rigidedit/internal/ui"
)

var groundColor = color.RGBA{R: 51, G: 51, B: 51, A: 255}

// App owns the window loop and wires input, editor, physics and drawing together.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	scene    *engine.Scene
	world    *physics.World
	orbit    *camera.Orbit
	overlay  *ui.Overlay
	editor   *editor.Editor
	renderer *render.Renderer

	acc         input.Accumulator
	simulate    bool
	wasDragging bool
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	a := &App{
		cfg:      cfg,
		logger:   logger,
		scene:    engine.NewScene("main"),
		overlay:  ui.NewOverlay(int32(cfg.Window.Width), int32(cfg.Window.Height), int32(cfg.Window.PanelWidth)),
		renderer: render.NewRenderer(),
		simulate: cfg.Physics.Simulate,
	}

	orbit, err := camera.NewOrbit(cfg.CameraConfig(), a.overlay.Viewport())
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	a.orbit = orbit

	a.world = physics.NewWorld(a.scene, cfg.Physics.Gravity.Vec(), logger.With("component", "physics"))
	a.editor = editor.New(a.scene, physics.NewIndex(a.scene), a.overlay, a.orbit, cfg.EditorOptions(), logger.With("component", "editor"))

	a.editor.SelectionChanged.AddListener(func(h engine.Handle) {
		if obj, ok := a.scene.Resolve(h); ok {
			a.logger.Info("selected", "name", obj.Name, "handle", h)
			return
		}
		a.logger.Info("selection cleared")
	})
	a.world.ContactStarted.AddListener(func(c physics.Contact) {
		a.logger.Debug("contact", "a", c.A, "b", c.B)
	})

	a.seedScene()
	return a, nil
}

// seedScene adds the ground and one cube above it.
func (a *App) seedScene() {
	half := a.cfg.Physics.GroundSize / 2
	ground := engine.NewObject("Ground", engine.BoxShape(mgl32.Vec3{half, 0.1, half}), engine.DefaultBody(engine.Fixed))
	ground.Transform.Position = mgl32.Vec3{0, -0.1, 0}
	ground.Color = groundColor
	a.scene.Add(ground)

	a.editor.AddShape(engine.Cuboid)
}

// Run opens the window and blocks until it is closed.
func (a *App) Run() {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(a.cfg.Window.Width), int32(a.cfg.Window.Height), a.cfg.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(a.cfg.Window.TargetFPS))
	rl.SetExitKey(rl.KeyNull) // Escape cancels field edits instead
	ui.InitStyle()

	a.renderer.Resize(a.overlay.Viewport())
	defer a.renderer.Unload()

	a.logger.Info("editor started", "objects", a.scene.Len(), "viewport", a.overlay.Viewport())

	for !rl.WindowShouldClose() {
		a.update(rl.GetFrameTime())
		a.draw()
	}
}

func (a *App) update(dt float32) {
	if rl.IsWindowResized() {
		a.resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	}

	a.pollInput()
	frame := a.acc.Flush(dt)

	a.overlay.BeginFrame(frame)
	a.editor.Update(frame)

	a.orbit.Update(frame)
	a.orbit.Fly(frame.Move, dt)

	a.handleHotkeys(frame)

	dragging := a.editor.Dragging()
	if a.wasDragging && !dragging {
		// Dropped objects start from rest
		if obj := a.editor.SelectedObject(); obj != nil {
			obj.Body.Velocity = mgl32.Vec3{}
			obj.Body.AngularVelocity = mgl32.Vec3{}
		}
	}
	a.wasDragging = dragging

	if a.simulate {
		var held engine.Handle
		if dragging {
			held = a.editor.Context().Selection
		}
		a.world.Step(dt, held)
	}
}

func (a *App) draw() {
	selected, _ := a.editor.Selected()
	a.renderer.Draw(a.orbit.Camera(), a.scene, render.Frame{
		Selected: selected,
		Dragging: a.editor.Dragging(),
		Grid:     int32(a.cfg.Physics.GroundSize),
	})

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	a.renderer.Blit()

	actions := a.overlay.Draw(a.editor, ui.Status{
		Simulate: a.simulate,
		Objects:  a.scene.Len(),
		Contacts: a.world.ActiveContacts(),
		FPS:      rl.GetFPS(),
	})
	rl.EndDrawing()

	a.apply(actions)
}

func (a *App) apply(actions ui.Actions) {
	if actions.SetTool {
		a.editor.SetTool(actions.Tool)
	}
	if actions.SpawnShape {
		a.editor.AddShape(actions.Spawn)
	}
	if actions.Undo {
		a.editor.Undo()
	}
	if actions.Delete {
		a.deleteSelected()
	}
	if actions.Simulate != a.simulate {
		a.simulate = actions.Simulate
		a.logger.Info("simulation toggled", "on", a.simulate)
	}
}

// deleteSelected removes the selection through the editor so it can be undone.
func (a *App) deleteSelected() {
	a.editor.Delete()
}

func (a *App) resize(width, height int32) {
	a.overlay.Resize(width, height)
	vp := a.overlay.Viewport()
	a.orbit.SetViewport(vp)
	a.renderer.Resize(vp)
	a.logger.Debug("window resized", "width", width, "height", height)
}
