package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"rigidedit/internal/editor"
	"rigidedit/internal/engine"
	"rigidedit/internal/geom"
)

var bodyKinds = [...]engine.BodyKind{engine.Dynamic, engine.Fixed, engine.Kinematic}

func (o *Overlay) drawPanel(ed *editor.Editor, actions *Actions) {
	panelW := o.panelWidth
	panelY := int32(topBarHeight)
	panelH := o.height - panelY

	rl.DrawRectangle(0, panelY, panelW, panelH, colorBgPanel)
	rl.DrawRectangle(panelW-1, panelY, 1, panelH, colorBorder)

	y := panelY + 10
	obj := ed.SelectedObject()
	if obj == nil {
		o.edit = false
		drawTextEx(uiFont, "Inspector", 12, y, 18, colorTextSecondary)
		y += 30
		drawTextEx(uiFont, "Click an object to select it", 12, y, 15, colorTextMuted)
		y += 20
		drawTextEx(uiFont, "Right drag to orbit, wheel to zoom", 12, y, 15, colorTextMuted)
		y += 20
		drawTextEx(uiFont, "Q W E R switch tools", 12, y, 15, colorTextMuted)
		return
	}

	drawTextEx(uiFont, obj.Name, 12, y, 20, colorTextPrimary)
	y += 24
	drawTextEx(uiFont, fmt.Sprintf("%s  %s", obj.Shape.Kind, obj.Handle), 12, y, 14, colorTextMuted)
	y += 22

	rl.DrawLine(12, y+2, panelW-12, y+2, colorSeparator)
	y += 10

	y = o.drawTransformSection(ed, obj, y)

	rl.DrawLine(12, y+2, panelW-12, y+2, colorSeparator)
	y += 10

	y = o.drawBodySection(obj, y)

	btnW := panelW - 40
	btnY := o.height - 40
	if y+10 > btnY {
		btnY = y + 10
	}
	if gui.Button(rect(20, btnY, btnW, 26), "Delete") {
		actions.Delete = true
	}
}

// drawTransformSection edits a copy of the transform and writes it back,
// recording one undo snapshot per scrub or typed edit.
func (o *Overlay) drawTransformSection(ed *editor.Editor, obj *engine.Object, y int32) int32 {
	drawTextEx(uiFont, "Transform", 12, y, 18, colorTextSecondary)
	y += 28

	labelW := int32(45)
	fieldW := (o.panelWidth - 38 - labelW) / 3
	fieldH := int32(24)
	startX := 12 + labelW

	t := obj.Transform
	changed := false

	row := func(label, id string, v mgl32.Vec3) mgl32.Vec3 {
		drawTextEx(uiFont, label, 14, y+4, 16, colorTextMuted)
		for i := 0; i < 3; i++ {
			x := startX + int32(i)*(fieldW+2)
			val, ok := o.fields.floatField(x, y, fieldW, fieldH, fmt.Sprintf("%s.%d", id, i), v[i])
			if ok {
				v[i] = val
				changed = true
			}
		}
		y += fieldH + 4
		return v
	}

	t.Position = row("Pos", "pos", t.Position)

	euler := geom.EulerDegrees(t.Rotation)
	if e := row("Rot", "rot", euler); e != euler {
		t.Rotation = geom.FromEulerDegrees(e)
	}

	t.Scale = row("Scale", "scale", t.Scale)
	y += 4

	if changed {
		if !o.edit {
			ed.RecordEdit()
			o.edit = true
		}
		obj.Transform = t
		obj.Body.Velocity = mgl32.Vec3{}
		obj.Body.AngularVelocity = mgl32.Vec3{}
	}
	if !o.fields.capturing() {
		o.edit = false
	}
	return y
}

func (o *Overlay) drawBodySection(obj *engine.Object, y int32) int32 {
	drawTextEx(uiFont, "Rigid Body", 12, y, 18, colorTextSecondary)
	y += 28

	segW := (o.panelWidth - 24 - 2*4) / int32(len(bodyKinds))
	for i, kind := range bodyKinds {
		r := rect(12+int32(i)*(segW+4), y, segW, 24)
		if pillButton(r, kind.String(), obj.Body.Kind == kind) && obj.Body.Kind != kind {
			obj.Body.Kind = kind
			obj.Body.Velocity = mgl32.Vec3{}
			obj.Body.AngularVelocity = mgl32.Vec3{}
		}
	}
	y += 34

	sliderX := int32(100)
	sliderW := o.panelWidth - sliderX - 50
	slider := func(label string, value, lo, hi float32) float32 {
		drawTextEx(uiFont, label, 14, y+3, 15, colorTextMuted)
		value = gui.Slider(rect(sliderX, y, sliderW, 20), "", fmt.Sprintf("%.2f", value), value, lo, hi)
		y += 26
		return value
	}

	rb := &obj.Body
	rb.Mass = slider("Mass", rb.Mass, 0.1, 10)
	rb.Friction = slider("Friction", rb.Friction, 0, 1)
	rb.Restitution = slider("Bounce", rb.Restitution, 0, 1)
	rb.LinearDamping = slider("Damping", rb.LinearDamping, 0, 1)
	rb.AngularDamping = slider("Spin damp", rb.AngularDamping, 0, 1)

	if rb.Kind == engine.Dynamic {
		v := rb.Velocity
		drawTextEx(uiFont, fmt.Sprintf("Velocity %.2f, %.2f, %.2f", v.X(), v.Y(), v.Z()), 14, y+2, 14, colorTextMuted)
		y += 20
	}
	return y + 6
}
