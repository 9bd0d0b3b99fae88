package editor

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"rigidedit/internal/engine"
	"rigidedit/internal/geom"
)

// Tool is the active manipulation mode.
type Tool int

const (
	Select Tool = iota
	Move
	Rotate
	Scale
)

var toolNames = [...]string{"select", "move", "rotate", "scale"}

func (t Tool) String() string {
	if t < 0 || int(t) >= len(toolNames) {
		return fmt.Sprintf("Tool(%d)", int(t))
	}
	return toolNames[t]
}

func ParseTool(s string) (Tool, error) {
	for i, name := range toolNames {
		if strings.EqualFold(s, name) {
			return Tool(i), nil
		}
	}
	return Select, fmt.Errorf("unknown tool %q", s)
}

// Tools lists every tool in toolbar order.
func Tools() []Tool {
	return []Tool{Select, Move, Rotate, Scale}
}

// Sensitivity converts pointer pixels into transform units.
type Sensitivity struct {
	Move   float32 // world units per pixel
	Rotate float32 // radians per pixel
	Scale  float32 // scale factor per pixel
}

func DefaultSensitivity() Sensitivity {
	return Sensitivity{Move: 0.01, Rotate: 0.01, Scale: 0.01}
}

// transformFunc applies one frame's pointer delta to a transform.
type transformFunc func(tr *engine.Transform, delta mgl32.Vec2, basis geom.Basis, sens Sensitivity)

var toolTransforms = map[Tool]transformFunc{
	Move:   moveTransform,
	Rotate: rotateTransform,
	Scale:  scaleTransform,
}

// moveTransform slides along the camera's right and forward axes.
// Dragging down (positive dy) pulls the object toward the camera.
func moveTransform(tr *engine.Transform, delta mgl32.Vec2, basis geom.Basis, sens Sensitivity) {
	offset := basis.Right.Mul(delta.X() * sens.Move).
		Add(basis.Forward.Mul(-delta.Y() * sens.Move))
	tr.Position = tr.Position.Add(offset)
}

// rotateTransform applies a local-space rotation: vertical drag about X, horizontal about Y.
func rotateTransform(tr *engine.Transform, delta mgl32.Vec2, _ geom.Basis, sens Sensitivity) {
	rx := mgl32.QuatRotate(delta.Y()*sens.Rotate, geom.AxisX)
	ry := mgl32.QuatRotate(delta.X()*sens.Rotate, geom.AxisY)
	tr.Rotation = tr.Rotation.Mul(rx.Mul(ry)).Normalize()
}

// scaleTransform scales uniformly; horizontal drag only, compounding per frame.
func scaleTransform(tr *engine.Transform, delta mgl32.Vec2, _ geom.Basis, sens Sensitivity) {
	tr.Scale = tr.Scale.Mul(1 + delta.X()*sens.Scale)
}
