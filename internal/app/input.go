package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"rigidedit/internal/editor"
	"rigidedit/internal/engine"
	"rigidedit/internal/input"
)

var toolHotkeys = map[int32]editor.Tool{
	rl.KeyQ: editor.Select,
	rl.KeyW: editor.Move,
	rl.KeyE: editor.Rotate,
	rl.KeyR: editor.Scale,
}

// pollInput feeds this frame's raylib input state into the accumulator.
func (a *App) pollInput() {
	pos := rl.GetMousePosition()
	a.acc.MoveTo(mgl32.Vec2{pos.X, pos.Y})
	a.acc.AddScroll(rl.GetMouseWheelMove())

	a.pollButton(input.Primary, rl.IsMouseButtonPressed(rl.MouseLeftButton),
		rl.IsMouseButtonReleased(rl.MouseLeftButton), rl.IsMouseButtonDown(rl.MouseLeftButton))
	a.pollButton(input.Secondary, rl.IsMouseButtonPressed(rl.MouseRightButton),
		rl.IsMouseButtonReleased(rl.MouseRightButton), rl.IsMouseButtonDown(rl.MouseRightButton))

	// WASD fly while orbiting, Q/E for down/up
	if rl.IsMouseButtonDown(rl.MouseRightButton) && !a.overlay.WantsKeyboard() {
		var move mgl32.Vec3
		if rl.IsKeyDown(rl.KeyW) {
			move[2]++
		}
		if rl.IsKeyDown(rl.KeyS) {
			move[2]--
		}
		if rl.IsKeyDown(rl.KeyD) {
			move[0]++
		}
		if rl.IsKeyDown(rl.KeyA) {
			move[0]--
		}
		if rl.IsKeyDown(rl.KeyE) {
			move[1]++
		}
		if rl.IsKeyDown(rl.KeyQ) {
			move[1]--
		}
		a.acc.SetMove(move)
	}
}

func (a *App) pollButton(b input.Button, pressed, released, down bool) {
	switch {
	case pressed:
		a.acc.Press(b)
	case released:
		a.acc.Release(b)
	default:
		a.acc.SetHeld(b, down)
	}
}

func (a *App) handleHotkeys(frame input.Frame) {
	if a.overlay.WantsKeyboard() || frame.Secondary.Held {
		return
	}

	for key, tool := range toolHotkeys {
		if rl.IsKeyPressed(key) {
			a.editor.SetTool(tool)
		}
	}

	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper)
	switch {
	case ctrl && rl.IsKeyPressed(rl.KeyZ):
		a.editor.Undo()
	case rl.IsKeyPressed(rl.KeySpace):
		a.editor.AddShape(engine.Cuboid)
	case rl.IsKeyPressed(rl.KeyDelete):
		a.deleteSelected()
	}
}
