package ui

import (
	"github.com/go-gl/mathgl/mgl32"

	"rigidedit/internal/editor"
	"rigidedit/internal/engine"
	"rigidedit/internal/geom"
	"rigidedit/internal/input"
)

const topBarHeight = 36

// Status is what the top bar reports besides the tool state.
type Status struct {
	Simulate bool
	Objects  int
	Contacts int
	FPS      int32
}

// Actions are the requests a frame of UI interaction produced.
// The caller applies them after drawing.
type Actions struct {
	Tool       editor.Tool
	SetTool    bool
	Spawn      engine.ShapeKind
	SpawnShape bool
	Delete     bool
	Undo       bool
	Simulate   bool
}

// Overlay is the editor UI: a top bar across the window and an inspector
// panel on the left. The 3D viewport fills the rest, under the top bar.
type Overlay struct {
	width, height int32
	panelWidth    int32

	pointer    mgl32.Vec2
	pressOwned bool // the primary button went down over the overlay

	fields fieldState
	edit   bool // an inspector edit is open and already recorded for undo
}

func NewOverlay(width, height, panelWidth int32) *Overlay {
	return &Overlay{width: width, height: height, panelWidth: panelWidth}
}

func (o *Overlay) Resize(width, height int32) {
	o.width, o.height = width, height
}

// Viewport is the screen region the 3D view is drawn into.
func (o *Overlay) Viewport() geom.Viewport {
	return geom.Viewport{
		X:      float32(o.panelWidth),
		Y:      0,
		Width:  float32(o.width - o.panelWidth),
		Height: float32(o.height),
	}
}

// BeginFrame records the frame's pointer before the editor arbitrates.
func (o *Overlay) BeginFrame(frame input.Frame) {
	o.pointer = frame.Pointer
	switch {
	case frame.Primary.Pressed:
		o.pressOwned = o.PointerOverOverlay()
	case !frame.Primary.Held:
		o.pressOwned = false
	}
}

func (o *Overlay) PointerOverOverlay() bool {
	x, y := o.pointer.X(), o.pointer.Y()
	if y >= 0 && y < topBarHeight && x >= 0 && x < float32(o.width) {
		return true
	}
	return x >= 0 && x < float32(o.panelWidth) && y >= 0 && y < float32(o.height)
}

// ConsumedClickThisFrame is true while a press that began on the overlay is
// held, and while an inspector field owns the pointer.
func (o *Overlay) ConsumedClickThisFrame() bool {
	return o.pressOwned || o.fields.capturing()
}

// WantsKeyboard reports whether a text field is being edited, so hotkeys
// should be ignored.
func (o *Overlay) WantsKeyboard() bool {
	return o.fields.activeID != ""
}

// Draw renders the overlay and collects the requested actions.
func (o *Overlay) Draw(ed *editor.Editor, status Status) Actions {
	actions := Actions{Simulate: status.Simulate}
	o.fields.hoveredAny = false

	o.drawPanel(ed, &actions)
	o.drawTopBar(ed, status, &actions)
	o.updateCursor()
	return actions
}
