package editor

import (
	"github.com/go-gl/mathgl/mgl32"

	"rigidedit/internal/engine"
)

// DragSession tracks an in-progress pointer drag on the selected object.
type DragSession struct {
	Active bool
	Start  mgl32.Vec2
	Last   mgl32.Vec2
}

// Context is the editor's interaction state. Each per-frame step takes it by
// value and returns the updated copy.
type Context struct {
	Selection engine.Handle
	Tool      Tool
	Drag      DragSession
}

func NewContext() Context {
	return Context{Tool: Select}
}

func (c Context) HasSelection() bool {
	return !c.Selection.IsNil()
}

// SetTool switches tools and cancels any drag in progress.
func SetTool(ctx Context, tool Tool) Context {
	if ctx.Tool == tool {
		return ctx
	}
	ctx.Tool = tool
	ctx.Drag = DragSession{}
	return ctx
}

func clearSelection(ctx Context) Context {
	ctx.Selection = engine.Handle{}
	ctx.Drag = DragSession{}
	return ctx
}
