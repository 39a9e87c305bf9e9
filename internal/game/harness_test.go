package game

import (
	"errors"
	"image"
	"image/color"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Garsondee/dungeon-chase/internal/config"
	"github.com/Garsondee/dungeon-chase/internal/engine"
	"github.com/Garsondee/dungeon-chase/internal/maze"
)

const (
	testScreenW = 640
	testScreenH = 480
	testFloorID = 5
	testWallID  = 92
	frameDT     = 1.0 / 60
)

// fakeInput is a scripted engine.Input. Pressed keys, clicks and buttons
// last one frame; endFrame clears them.
type fakeInput struct {
	held    map[engine.Key]bool
	pressed map[engine.Key]bool
	buttons map[engine.GamepadButton]bool
	cx, cy  int
	click   bool
	pad     bool
	axes    [2]float64
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		held:    map[engine.Key]bool{},
		pressed: map[engine.Key]bool{},
		buttons: map[engine.GamepadButton]bool{},
	}
}

func (f *fakeInput) KeyHeld(k engine.Key) bool    { return f.held[k] }
func (f *fakeInput) KeyPressed(k engine.Key) bool { return f.pressed[k] }
func (f *fakeInput) CursorPosition() (int, int)   { return f.cx, f.cy }
func (f *fakeInput) PointerPressed() bool         { return f.click }
func (f *fakeInput) GamepadPresent(slot int) bool { return f.pad && slot == 0 }

func (f *fakeInput) GamepadAxis(slot, axis int) float64 {
	if !f.pad || slot != 0 || axis < 0 || axis > 1 {
		return 0
	}
	return f.axes[axis]
}

func (f *fakeInput) GamepadButtonPressed(slot int, b engine.GamepadButton) bool {
	return f.pad && slot == 0 && f.buttons[b]
}

func (f *fakeInput) press(k engine.Key) { f.pressed[k] = true }

func (f *fakeInput) clickAt(r image.Rectangle) {
	f.cx, f.cy = r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2
	f.click = true
}

func (f *fakeInput) endFrame() {
	f.pressed = map[engine.Key]bool{}
	f.buttons = map[engine.GamepadButton]bool{}
	f.click = false
}

// recordingRenderer counts draw calls, split by whether a camera was active.
type recordingRenderer struct {
	inCamera     bool
	cam          engine.Camera
	worldRects   int
	worldCircles int
	sprites      int
	hudRects     int
	texts        []string
}

func (r *recordingRenderer) Clear(color.Color) {}

func (r *recordingRenderer) FillRect(x, y, w, h float32, c color.Color) {
	if r.inCamera {
		r.worldRects++
		return
	}
	r.hudRects++
}

func (r *recordingRenderer) Circle(cx, cy, radius float32, c color.Color) {
	if r.inCamera {
		r.worldCircles++
	}
}

func (r *recordingRenderer) Text(s string, x, y int, size float64, c color.Color) {
	r.texts = append(r.texts, s)
}

func (r *recordingRenderer) Sprite(tex engine.Texture, src, dst image.Rectangle) { r.sprites++ }

func (r *recordingRenderer) WithCamera(cam engine.Camera, fn func()) {
	r.cam = cam
	r.inCamera = true
	fn()
	r.inCamera = false
}

type fakeTexture struct {
	w, h     int
	released bool
}

func (t *fakeTexture) Size() (int, int) { return t.w, t.h }
func (t *fakeTexture) Release()         { t.released = true }

// fakeAssets hands out a fixed map and texture and counts loads.
type fakeAssets struct {
	m        *maze.Map
	tex      *fakeTexture
	mapErr   error
	texErr   error
	mapLoads int
	texLoads int
}

func (a *fakeAssets) LoadTexture(string) (engine.Texture, error) {
	a.texLoads++
	if a.texErr != nil {
		return nil, a.texErr
	}
	if a.tex == nil {
		return nil, nil
	}
	return a.tex, nil
}

func (a *fakeAssets) LoadMap(config.Stage) (*maze.Map, error) {
	a.mapLoads++
	if a.mapErr != nil {
		return nil, a.mapErr
	}
	if a.m == nil {
		return nil, errors.New("no map")
	}
	return a.m, nil
}

// floorMap builds an all-floor grid with the given entities.
func floorMap(w, h int, ents ...maze.Entity) *maze.Map {
	tiles := make([][]int, h)
	for y := range tiles {
		tiles[y] = make([]int, w)
		for x := range tiles[y] {
			tiles[y][x] = testFloorID
		}
	}
	return &maze.Map{GridW: w, GridH: h, TileSizePx: 32, Tiles: tiles, Entities: ents}
}

type envOption func(*Env)

func withWinAction(a config.WinAction) envOption {
	return func(e *Env) { e.Cfg.WinAction = a }
}

func withClipboard(fn func(string) error) envOption {
	return func(e *Env) { e.Clipboard = fn }
}

func newTestEnv(assets AssetLoader, opts ...envOption) *Env {
	cfg := config.Default()
	cfg.Window.Width, cfg.Window.Height = testScreenW, testScreenH
	cfg.Stages = []config.Stage{
		{Name: "Test Hall", Map: "test.json"},
		{Name: "Second", Seed: 3},
		{Name: "Chase", Kind: config.KindChase, Points: 3, Seed: 11},
	}
	env := &Env{
		Cfg:       cfg,
		Log:       log.New(io.Discard),
		Assets:    assets,
		Clipboard: func(string) error { return nil },
	}
	for _, o := range opts {
		o(env)
	}
	return env
}

// testRig drives a Manager the way the ebiten loop does.
type testRig struct {
	t   *testing.T
	in  *fakeInput
	gs  *engine.GameState
	mgr *engine.Manager
}

func newTestRig(t *testing.T, initial engine.Scene) *testRig {
	t.Helper()
	in := newFakeInput()
	gs := engine.NewGameState(testScreenW, testScreenH)
	mgr, err := engine.NewManager(in, initial, gs)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return &testRig{t: t, in: in, gs: gs, mgr: mgr}
}

func (r *testRig) step() error {
	err := r.mgr.Step(frameDT, r.gs)
	r.in.endFrame()
	return err
}

func (r *testRig) mustStep() {
	r.t.Helper()
	if err := r.step(); err != nil {
		r.t.Fatalf("step: %v", err)
	}
}

// stepUntil steps until cond holds, failing after max frames.
func (r *testRig) stepUntil(limit int, cond func() bool) {
	r.t.Helper()
	for i := 0; i < limit; i++ {
		if cond() {
			return
		}
		r.mustStep()
	}
	if !cond() {
		r.t.Fatalf("condition not met after %d frames (top=%v)", limit, r.mgr.Top())
	}
}
