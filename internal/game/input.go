package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/dungeon-chase/internal/engine"
)

var keyMap = map[engine.Key]ebiten.Key{
	engine.KeyLeft:   ebiten.KeyArrowLeft,
	engine.KeyRight:  ebiten.KeyArrowRight,
	engine.KeyUp:     ebiten.KeyArrowUp,
	engine.KeyDown:   ebiten.KeyArrowDown,
	engine.KeyA:      ebiten.KeyA,
	engine.KeyD:      ebiten.KeyD,
	engine.KeyW:      ebiten.KeyW,
	engine.KeyS:      ebiten.KeyS,
	engine.KeyP:      ebiten.KeyP,
	engine.KeyEscape: ebiten.KeyEscape,
	engine.KeyEnter:  ebiten.KeyEnter,
	engine.KeySpace:  ebiten.KeySpace,
	engine.KeyF9:     ebiten.KeyF9,
}

var buttonMap = map[engine.GamepadButton]ebiten.StandardGamepadButton{
	engine.ButtonSouth: ebiten.StandardGamepadButtonRightBottom,
	engine.ButtonEast:  ebiten.StandardGamepadButtonRightRight,
	engine.ButtonStart: ebiten.StandardGamepadButtonCenterRight,
}

// rawButtonMap is used for pads without a standard layout mapping.
var rawButtonMap = map[engine.GamepadButton]ebiten.GamepadButton{
	engine.ButtonSouth: ebiten.GamepadButton0,
	engine.ButtonEast:  ebiten.GamepadButton1,
	engine.ButtonStart: ebiten.GamepadButton9,
}

// ebitenInput reads keyboard, mouse and gamepads through ebiten. refresh must
// be called once per Update so gamepad slots follow connects and disconnects.
type ebitenInput struct {
	pads []ebiten.GamepadID
}

func (in *ebitenInput) refresh() {
	in.pads = ebiten.AppendGamepadIDs(in.pads[:0])
}

func (in *ebitenInput) KeyHeld(k engine.Key) bool {
	ek, ok := keyMap[k]
	return ok && ebiten.IsKeyPressed(ek)
}

func (in *ebitenInput) KeyPressed(k engine.Key) bool {
	ek, ok := keyMap[k]
	return ok && inpututil.IsKeyJustPressed(ek)
}

func (in *ebitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (in *ebitenInput) PointerPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (in *ebitenInput) pad(slot int) (ebiten.GamepadID, bool) {
	if slot < 0 || slot >= len(in.pads) {
		return 0, false
	}
	return in.pads[slot], true
}

func (in *ebitenInput) GamepadPresent(slot int) bool {
	_, ok := in.pad(slot)
	return ok
}

func (in *ebitenInput) GamepadAxis(slot, axis int) float64 {
	id, ok := in.pad(slot)
	if !ok {
		return 0
	}
	if ebiten.IsStandardGamepadLayoutAvailable(id) {
		switch axis {
		case engine.AxisLeftX:
			return ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		case engine.AxisLeftY:
			return ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		}
	}
	return ebiten.GamepadAxisValue(id, ebiten.GamepadAxisType(axis))
}

func (in *ebitenInput) GamepadButtonPressed(slot int, b engine.GamepadButton) bool {
	id, ok := in.pad(slot)
	if !ok {
		return false
	}
	if ebiten.IsStandardGamepadLayoutAvailable(id) {
		sb, ok := buttonMap[b]
		return ok && inpututil.IsStandardGamepadButtonJustPressed(id, sb)
	}
	rb, ok := rawButtonMap[b]
	return ok && inpututil.IsGamepadButtonJustPressed(id, rb)
}
