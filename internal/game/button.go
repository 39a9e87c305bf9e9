package game

import (
	"image"
	"image/color"

	"github.com/Garsondee/dungeon-chase/internal/engine"
)

var (
	colBackground = color.RGBA{R: 12, G: 10, B: 16, A: 255}
	colPanel      = color.RGBA{R: 28, G: 24, B: 36, A: 230}
	colButton     = color.RGBA{R: 54, G: 46, B: 72, A: 255}
	colButtonHot  = color.RGBA{R: 92, G: 78, B: 128, A: 255}
	colText       = color.RGBA{R: 232, G: 228, B: 240, A: 255}
	colDimText    = color.RGBA{R: 150, G: 144, B: 170, A: 255}
	colAccent     = color.RGBA{R: 240, G: 200, B: 80, A: 255}
)

const (
	buttonW        = 320
	buttonH        = 56
	buttonGap      = 16
	buttonTextSize = 24
)

// button is a clickable screen region with a label.
type button struct {
	label string
	rect  image.Rectangle
}

// clicked reports whether the primary pointer went down inside the button.
func (b button) clicked(in engine.Input) bool {
	if !in.PointerPressed() {
		return false
	}
	x, y := in.CursorPosition()
	return engine.PointInRect(x, y, b.rect)
}

func (b button) hovered(in engine.Input) bool {
	x, y := in.CursorPosition()
	return engine.PointInRect(x, y, b.rect)
}

func (b button) draw(r engine.Renderer, hot bool) {
	bg := colButton
	if hot {
		bg = colButtonHot
	}
	r.FillRect(float32(b.rect.Min.X), float32(b.rect.Min.Y), float32(b.rect.Dx()), float32(b.rect.Dy()), bg)
	tx := b.rect.Min.X + 20
	ty := b.rect.Min.Y + (b.rect.Dy()-buttonTextSize)/2
	r.Text(b.label, tx, ty, buttonTextSize, colText)
}

// buttonColumn lays out one button per label, centred horizontally and
// starting at top.
func buttonColumn(labels []string, screenW, top int) []button {
	x := (screenW - buttonW) / 2
	out := make([]button, len(labels))
	for i, l := range labels {
		y := top + i*(buttonH+buttonGap)
		out[i] = button{label: l, rect: image.Rect(x, y, x+buttonW, y+buttonH)}
	}
	return out
}

// pauseRequested reports a press of any pause or resume control.
func pauseRequested(in engine.Input) bool {
	return in.KeyPressed(engine.KeyP) ||
		in.KeyPressed(engine.KeyEscape) ||
		in.GamepadButtonPressed(0, engine.ButtonStart)
}
