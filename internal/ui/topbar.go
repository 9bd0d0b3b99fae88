package ui

import (
	"fmt"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"rigidedit/internal/editor"
	"rigidedit/internal/engine"
)

var toolKeys = map[editor.Tool]string{
	editor.Select: "Q",
	editor.Move:   "W",
	editor.Rotate: "E",
	editor.Scale:  "R",
}

func (o *Overlay) drawTopBar(ed *editor.Editor, status Status, actions *Actions) {
	rl.DrawRectangle(0, 0, o.width, topBarHeight, colorBgDark)
	rl.DrawRectangle(0, topBarHeight-1, o.width, 1, colorBorder)

	drawTextEx(uiFont, "RIGIDEDIT", 12, 9, 20, colorAccent)

	x := int32(130)
	for _, tool := range editor.Tools() {
		name := strings.ToUpper(tool.String()[:1]) + tool.String()[1:]
		label := fmt.Sprintf("[%s] %s", toolKeys[tool], name)
		if pillButton(rect(x, 6, 96, 24), label, ed.Tool() == tool) {
			actions.Tool = tool
			actions.SetTool = true
		}
		x += 100
	}

	x += 16
	if gui.Button(rect(x, 6, 90, 24), "Add Cube") {
		actions.Spawn = engine.Cuboid
		actions.SpawnShape = true
	}
	x += 96
	if gui.Button(rect(x, 6, 96, 24), "Add Sphere") {
		actions.Spawn = engine.Sphere
		actions.SpawnShape = true
	}
	x += 102
	if gui.Button(rect(x, 6, 60, 24), "Undo") {
		actions.Undo = true
	}
	x += 76
	actions.Simulate = gui.CheckBox(rect(x, 10, 16, 16), "Simulate", status.Simulate)

	info := fmt.Sprintf("%d objects  %d contacts  %d fps", status.Objects, status.Contacts, status.FPS)
	infoW := rl.MeasureText(info, 15)
	drawTextEx(uiFont, info, o.width-infoW-14, 11, 15, colorTextMuted)

	if ed.Dragging() {
		drawTextEx(uiFont, fmt.Sprintf("Dragging (%s)", ed.Tool()), o.panelWidth+12, topBarHeight+8, 15, colorAccent2)
	}
}

func (o *Overlay) updateCursor() {
	if o.fields.hoveredAny || o.fields.dragging {
		rl.SetMouseCursor(rl.MouseCursorResizeEW)
	} else {
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}
