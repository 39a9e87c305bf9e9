package game

import "github.com/Garsondee/dungeon-chase/internal/engine"

// PauseScene sits over a suspended maze until a resume control is pressed.
type PauseScene struct {
	engine.BaseScene
	env *Env
}

// NewPauseScene creates the pause overlay.
func NewPauseScene(env *Env) *PauseScene {
	return &PauseScene{env: env}
}

func (s *PauseScene) String() string { return "pause" }

func (s *PauseScene) HandleInput(in engine.Input, gs *engine.GameState) engine.Signal {
	if pauseRequested(in) {
		return engine.Pop()
	}
	return engine.None()
}

func (s *PauseScene) Draw(r engine.Renderer, gs *engine.GameState) {
	r.Clear(colBackground)
	x := gs.ScreenWidth/2 - 80
	y := gs.ScreenHeight/2 - 40
	r.Text("PAUSED", x, y, 40, colAccent)
	r.Text("P / Esc / Start to resume", x-60, y+56, 18, colDimText)
}
