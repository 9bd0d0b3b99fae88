package ui

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fieldState tracks the one float field being typed into or scrubbed.
type fieldState struct {
	activeID string
	text     string

	dragging     bool
	dragID       string
	dragStartX   float32
	dragStartVal float32

	hoveredAny bool
}

func (f *fieldState) capturing() bool {
	return f.activeID != "" || f.dragging
}

// floatField draws an editable float with drag-to-scrub support and
// reports whether the value changed this frame.
func (f *fieldState) floatField(x, y, w, h int32, id string, value float32) (float32, bool) {
	r := rect(x, y, w, h)
	mousePos := rl.GetMousePosition()
	hover := rl.CheckCollisionPointRec(mousePos, r)

	editMode := f.activeID == id
	isDragging := f.dragging && f.dragID == id
	if hover && !editMode {
		f.hoveredAny = true
	}

	bgColor := colorBgElement
	if editMode {
		bgColor = colorBgActive
	} else if hover || isDragging {
		bgColor = colorBgHover
	}
	rl.DrawRectangleRounded(r, 0.2, 4, bgColor)
	if editMode {
		rl.DrawRectangleRoundedLinesEx(r, 0.2, 4, 1, colorAccent)
	}

	out := value
	if !editMode {
		if hover && !f.dragging && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			f.dragging = true
			f.dragID = id
			f.dragStartX = mousePos.X
			f.dragStartVal = value
			isDragging = true
		}

		if isDragging {
			if rl.IsMouseButtonDown(rl.MouseLeftButton) {
				// 100 px per unit, shift for fine control
				sensitivity := float32(0.01)
				if rl.IsKeyDown(rl.KeyLeftShift) {
					sensitivity = 0.001
				}
				out = f.dragStartVal + (mousePos.X-f.dragStartX)*sensitivity
			} else {
				dragDist := mousePos.X - f.dragStartX
				if dragDist > -2 && dragDist < 2 {
					// A click, not a drag
					f.activeID = id
					f.text = strconv.FormatFloat(float64(value), 'f', 2, 32)
				}
				f.dragging = false
				f.dragID = ""
			}
		}
	}

	if editMode {
		drawTextEx(uiFont, f.text+"_", x+6, y+5, 15, colorTextPrimary)

		for {
			key := rl.GetCharPressed()
			if key == 0 {
				break
			}
			ch := rune(key)
			if (ch >= '0' && ch <= '9') || ch == '-' || ch == '.' {
				f.text += string(ch)
			}
		}

		if rl.IsKeyPressed(rl.KeyBackspace) && len(f.text) > 0 {
			f.text = f.text[:len(f.text)-1]
		}

		clickedOutside := rl.IsMouseButtonPressed(rl.MouseLeftButton) && !hover
		switch {
		case rl.IsKeyPressed(rl.KeyEscape):
			f.activeID = ""
			f.text = ""
		case rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) || rl.IsKeyPressed(rl.KeyTab) || clickedOutside:
			if parsed, err := strconv.ParseFloat(f.text, 32); err == nil {
				out = float32(parsed)
			}
			f.activeID = ""
			f.text = ""
		}
	} else {
		text := strconv.FormatFloat(float64(out), 'f', 2, 32)
		drawTextEx(uiFont, text, x+6, y+5, 15, colorTextSecondary)
	}

	return out, out != value
}
