// Package engine holds the scene stack that drives the game: the shared
// GameState, the Scene lifecycle, the transition signals and the narrow
// input and rendering contracts scenes are written against.
package engine

import (
	"image"
	"image/color"
)

// Scene is one screen or mode of the game. The manager calls OnEnter when
// the scene becomes active, HandleInput and Update once per frame while it
// is on top, Draw to render it, and OnExit when it leaves the stack.
type Scene interface {
	// OnEnter runs one-time setup. An error is fatal to the program.
	OnEnter(gs *GameState) error

	// HandleInput reads device state and requests a transition. Must not block.
	HandleInput(in Input, gs *GameState) Signal

	// Update advances the scene by dt seconds of wall-clock time.
	Update(dt float64, gs *GameState) Signal

	// Draw renders the current state. It must not change simulation state.
	Draw(r Renderer, gs *GameState)

	// OnExit releases what the scene owns.
	OnExit(gs *GameState)
}

// BaseScene provides no-op lifecycle methods. Embed it and implement Draw.
type BaseScene struct{}

func (BaseScene) OnEnter(*GameState) error             { return nil }
func (BaseScene) HandleInput(Input, *GameState) Signal { return None() }
func (BaseScene) Update(float64, *GameState) Signal    { return None() }
func (BaseScene) OnExit(*GameState)                    {}

// Key is a keyboard key the game reacts to.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyA
	KeyD
	KeyW
	KeyS
	KeyP
	KeyEscape
	KeyEnter
	KeySpace
	KeyF9
)

// GamepadButton is a standard-layout gamepad button.
type GamepadButton uint8

const (
	ButtonSouth GamepadButton = iota // A / Cross
	ButtonEast                       // B / Circle
	ButtonStart
)

// Standard gamepad axes.
const (
	AxisLeftX = 0
	AxisLeftY = 1
)

// Input is the read-only view of the devices for the current frame.
type Input interface {
	KeyHeld(k Key) bool
	KeyPressed(k Key) bool // went down this frame
	CursorPosition() (x, y int)
	PointerPressed() bool // primary button went down this frame
	GamepadPresent(slot int) bool
	GamepadAxis(slot, axis int) float64 // roughly [-1,1]
	GamepadButtonPressed(slot int, b GamepadButton) bool
}

// Texture is a loaded image the renderer can draw regions of.
type Texture interface {
	Size() (w, h int)
	Release()
}

// Camera maps world coordinates to the screen: a world point at Target is
// drawn at Offset.
type Camera struct {
	TargetX, TargetY float64 // world-space focal point
	OffsetX, OffsetY float64 // screen-space position of the focal point
}

// WorldToScreen maps a world point to screen pixels.
func (c Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx - c.TargetX + c.OffsetX, wy - c.TargetY + c.OffsetY
}

// ScreenToWorld is the inverse of WorldToScreen.
func (c Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx - c.OffsetX + c.TargetX, sy - c.OffsetY + c.TargetY
}

// Renderer is the drawing surface handed to Draw.
type Renderer interface {
	Clear(c color.Color)
	FillRect(x, y, w, h float32, c color.Color)
	Circle(cx, cy, r float32, c color.Color)
	Text(s string, x, y int, size float64, c color.Color)
	Sprite(tex Texture, src, dst image.Rectangle)

	// WithCamera applies cam to every draw made inside fn.
	WithCamera(cam Camera, fn func())
}

// PointInRect reports whether p lies inside r, edges included.
func PointInRect(x, y int, r image.Rectangle) bool {
	return x >= r.Min.X && x <= r.Max.X && y >= r.Min.Y && y <= r.Max.Y
}
