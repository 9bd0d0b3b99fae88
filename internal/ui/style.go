package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var uiFont rl.Font

// Theme colors, dark with an orange accent
var (
	colorBgDark    = rl.NewColor(20, 20, 20, 255)
	colorBgPanel   = rl.NewColor(31, 31, 31, 242)
	colorBgElement = rl.NewColor(44, 44, 48, 255)
	colorBgHover   = rl.NewColor(58, 58, 64, 255)
	colorBgActive  = rl.NewColor(70, 70, 78, 255)

	colorAccent  = rl.NewColor(255, 102, 0, 255)
	colorAccent2 = rl.NewColor(242, 51, 153, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(230, 230, 230, 255)
	colorTextMuted     = rl.NewColor(128, 128, 128, 255)

	colorBorder    = rl.NewColor(255, 255, 255, 13)
	colorSeparator = rl.NewColor(55, 55, 60, 255)
)

// InitStyle applies the theme to raygui. Call once after the window is open.
func InitStyle() {
	uiFont = rl.GetFontDefault()
	gui.SetFont(uiFont)

	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(64, 64, 70, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(colorSeparator))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// drawTextEx draws text using the specified font scaled to the requested size
func drawTextEx(font rl.Font, text string, x, y int32, size float32, color rl.Color) {
	if font.Texture.ID > 0 {
		rl.DrawTextEx(font, text, rl.Vector2{X: float32(x), Y: float32(y)}, size, 1, color)
	} else {
		rl.DrawText(text, x, y, int32(size), color)
	}
}

func rect(x, y, w, h int32) rl.Rectangle {
	return rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}
}

func hovered(r rl.Rectangle) bool {
	return rl.CheckCollisionPointRec(rl.GetMousePosition(), r)
}

// pillButton draws a rounded button and reports whether it was clicked.
func pillButton(r rl.Rectangle, label string, active bool) bool {
	hover := hovered(r)
	bg := colorBgElement
	fg := colorTextSecondary
	switch {
	case active:
		bg = colorAccent
		fg = colorTextPrimary
	case hover:
		bg = colorBgHover
		fg = colorTextPrimary
	}
	rl.DrawRectangleRounded(r, 0.5, 8, bg)
	textW := rl.MeasureText(label, 16)
	drawTextEx(uiFont, label, int32(r.X)+(int32(r.Width)-textW)/2, int32(r.Y)+4, 16, fg)
	return hover && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}
