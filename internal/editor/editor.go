package editor

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"rigidedit/internal/engine"
	"rigidedit/internal/geom"
	"rigidedit/internal/input"
	"rigidedit/internal/physics"
)

// StalePolicy decides what happens when the selected object disappears.
type StalePolicy int

const (
	StaleClear StalePolicy = iota // drop the selection and any drag
	StaleKeep                     // keep the handle but never manipulate it
)

func (p StalePolicy) String() string {
	if p == StaleKeep {
		return "keep"
	}
	return "clear"
}

func ParseStalePolicy(s string) (StalePolicy, error) {
	switch strings.ToLower(s) {
	case "clear", "":
		return StaleClear, nil
	case "keep":
		return StaleKeep, nil
	default:
		return StaleClear, fmt.Errorf("unknown stale selection policy %q", s)
	}
}

var (
	objectColor = color.RGBA{R: 255, G: 102, B: 0, A: 255}
	sphereColor = color.RGBA{R: 242, G: 51, B: 153, A: 255}
)

// Store is the scene as the editor sees it.
type Store interface {
	Resolver
	Add(obj *engine.Object) engine.Handle
	Destroy(h engine.Handle) bool
}

// CameraSource supplies the camera used for picking and dragging.
type CameraSource interface {
	Camera() geom.Camera
}

type Options struct {
	Sensitivity   Sensitivity
	StalePolicy   StalePolicy
	PickFixed     bool // whether fixed bodies (the ground) can be selected
	UndoDepth     int
	SpawnPosition mgl32.Vec3
}

func DefaultOptions() Options {
	return Options{
		Sensitivity:   DefaultSensitivity(),
		StalePolicy:   StaleClear,
		PickFixed:     true,
		UndoDepth:     defaultUndoDepth,
		SpawnPosition: mgl32.Vec3{0, 3, 0},
	}
}

// Editor runs the per-frame interaction core: arbitration, stale-selection
// validation, picking and manipulation, in that order.
type Editor struct {
	scene   Store
	caster  RayCaster
	overlay input.Overlay
	camera  CameraSource
	opts    Options
	logger  *slog.Logger

	ctx    Context
	undo   *UndoStack
	warned engine.Handle // last stale handle reported
	spawns map[engine.ShapeKind]int

	SelectionChanged engine.EventWithArg[engine.Handle]
	ToolChanged      engine.EventWithArg[Tool]
}

func New(scene Store, caster RayCaster, overlay input.Overlay, camera CameraSource, opts Options, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Editor{
		scene:   scene,
		caster:  caster,
		overlay: overlay,
		camera:  camera,
		opts:    opts,
		logger:  logger,
		ctx:     NewContext(),
		undo:    NewUndoStack(opts.UndoDepth),
		spawns:  make(map[engine.ShapeKind]int),
	}
}

// Update runs one frame of interaction and returns the pointer arbitration
// so the caller can route the rest of the frame's input.
func (e *Editor) Update(frame input.Frame) input.Arbitration {
	cam := e.camera.Camera()
	arb := input.Arbitrate(e.overlay, frame, cam.Viewport)
	before := e.ctx.Selection

	ctx := e.validate(e.ctx)

	ctx, err := Pick(ctx, arb, frame, cam, e.caster, e.filter())
	if err != nil {
		e.logger.Debug("pick skipped", "error", err)
	}

	ctx, change, err := Manipulate(ctx, arb, frame, cam, e.scene, e.opts.Sensitivity)
	if err != nil {
		e.logger.Debug("drag skipped", "error", err)
	}
	if change.Started {
		e.undo.Push(UndoState{Handle: change.Handle, Transform: change.Before})
		e.logger.Debug("drag started", "tool", ctx.Tool, "handle", change.Handle)
	}

	e.ctx = ctx
	if ctx.Selection != before {
		e.logger.Debug("selection changed", "handle", ctx.Selection)
		e.SelectionChanged.Invoke(ctx.Selection)
	}
	return arb
}

// validate applies the stale policy when the selected handle no longer resolves.
func (e *Editor) validate(ctx Context) Context {
	if !ctx.HasSelection() {
		return ctx
	}
	if _, ok := e.scene.Resolve(ctx.Selection); ok {
		return ctx
	}

	if e.warned != ctx.Selection {
		e.warned = ctx.Selection
		e.logger.Warn("selected object no longer exists", "handle", ctx.Selection, "policy", e.opts.StalePolicy)
	}
	if e.opts.StalePolicy == StaleKeep {
		return ctx
	}
	return clearSelection(ctx)
}

func (e *Editor) filter() physics.QueryFilter {
	return physics.QueryFilter{SkipFixed: !e.opts.PickFixed}
}

func (e *Editor) SetTool(tool Tool) {
	if e.ctx.Tool == tool {
		return
	}
	e.ctx = SetTool(e.ctx, tool)
	e.logger.Debug("tool changed", "tool", tool)
	e.ToolChanged.Invoke(tool)
}

func (e *Editor) Tool() Tool {
	return e.ctx.Tool
}

func (e *Editor) Context() Context {
	return e.ctx
}

// Selected returns the selected handle if it still resolves.
func (e *Editor) Selected() (engine.Handle, bool) {
	if _, ok := e.scene.Resolve(e.ctx.Selection); !ok {
		return engine.Handle{}, false
	}
	return e.ctx.Selection, true
}

func (e *Editor) SelectedObject() *engine.Object {
	obj, ok := e.scene.Resolve(e.ctx.Selection)
	if !ok {
		return nil
	}
	return obj
}

func (e *Editor) Dragging() bool {
	return e.ctx.Drag.Active
}

// AddShape spawns a dynamic object at the spawn position. The selection is unchanged.
func (e *Editor) AddShape(kind engine.ShapeKind) engine.Handle {
	e.spawns[kind]++

	var obj *engine.Object
	switch kind {
	case engine.Sphere:
		name := fmt.Sprintf("Sphere %d", e.spawns[kind])
		obj = engine.NewObject(name, engine.SphereShape(0.5), engine.DefaultBody(engine.Dynamic))
		obj.Color = sphereColor
	default:
		name := fmt.Sprintf("Cube %d", e.spawns[kind])
		obj = engine.NewObject(name, engine.BoxShape(mgl32.Vec3{0.5, 0.5, 0.5}), engine.DefaultBody(engine.Dynamic))
		obj.Color = objectColor
	}
	obj.Transform.Position = e.opts.SpawnPosition

	h := e.scene.Add(obj)
	e.logger.Info("object spawned", "name", obj.Name, "handle", h, "position", obj.Transform.Position)
	return h
}

// RecordEdit snapshots the selected transform before a non-drag edit, such as
// typing into the inspector, so it can be undone.
func (e *Editor) RecordEdit() {
	obj, ok := e.scene.Resolve(e.ctx.Selection)
	if !ok {
		return
	}
	e.undo.Push(UndoState{Handle: e.ctx.Selection, Transform: obj.Transform})
}

// Delete destroys the selected object and records it so Undo can add it back.
// The selection goes stale and the stale policy applies on the next Update.
func (e *Editor) Delete() bool {
	h := e.ctx.Selection
	obj, ok := e.scene.Resolve(h)
	if !ok {
		return false
	}
	saved := *obj
	if !e.scene.Destroy(h) {
		return false
	}
	e.undo.Push(UndoState{Kind: UndoDelete, Handle: h, Transform: saved.Transform, Object: &saved})
	e.logger.Info("object deleted", "name", saved.Name, "handle", h)
	return true
}

// Undo reverts the most recent snapshot that can still be applied. Transform
// snapshots of destroyed objects are skipped. A deleted object comes back
// under a new handle, and older snapshots of it are remapped. The selection
// is never changed.
func (e *Editor) Undo() bool {
	for {
		state, ok := e.undo.Pop()
		if !ok {
			return false
		}

		if state.Kind == UndoDelete {
			obj := *state.Object
			obj.Transform = state.Transform
			obj.Body.Velocity = mgl32.Vec3{}
			obj.Body.AngularVelocity = mgl32.Vec3{}
			h := e.scene.Add(&obj)
			e.undo.Remap(state.Handle, h)
			e.logger.Debug("undo delete", "name", obj.Name, "handle", h)
			return true
		}

		obj, ok := e.scene.Resolve(state.Handle)
		if !ok {
			continue
		}
		obj.Transform = state.Transform
		e.logger.Debug("undo", "handle", state.Handle)
		return true
	}
}

func (e *Editor) UndoLen() int {
	return e.undo.Len()
}
