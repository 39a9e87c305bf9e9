package game

import (
	"github.com/Garsondee/dungeon-chase/internal/config"
	"github.com/Garsondee/dungeon-chase/internal/engine"
)

// MenuScene is stage select. Clicking a stage starts it; Escape goes back.
type MenuScene struct {
	engine.BaseScene
	env     *Env
	stages  []config.Stage
	buttons []button
	hot     int
}

// NewMenuScene lists the configured stages.
func NewMenuScene(env *Env) *MenuScene {
	labels := make([]string, len(env.Cfg.Stages))
	for i, st := range env.Cfg.Stages {
		labels[i] = st.Name
	}
	return &MenuScene{
		env:     env,
		stages:  env.Cfg.Stages,
		buttons: buttonColumn(labels, env.Cfg.Window.Width, env.Cfg.Window.Height/4),
		hot:     -1,
	}
}

func (s *MenuScene) String() string { return "menu" }

func (s *MenuScene) HandleInput(in engine.Input, gs *engine.GameState) engine.Signal {
	if in.KeyPressed(engine.KeyEscape) || in.GamepadButtonPressed(0, engine.ButtonEast) {
		return engine.Pop()
	}
	s.hot = -1
	for i, b := range s.buttons {
		if b.hovered(in) {
			s.hot = i
		}
		if b.clicked(in) {
			st := s.stages[i]
			s.env.Log.Info("stage selected", "stage", st.Name, "kind", st.Kind, "session", gs.SessionID)
			if st.Chase() {
				return engine.Push(NewChaseScene(s.env, st))
			}
			return engine.Push(NewMazeScene(s.env, st))
		}
	}
	return engine.None()
}

func (s *MenuScene) Draw(r engine.Renderer, gs *engine.GameState) {
	r.Clear(colBackground)
	x := (gs.ScreenWidth - buttonW) / 2
	r.Text("Select a stage", x, gs.ScreenHeight/4-64, 32, colAccent)
	for i, b := range s.buttons {
		b.draw(r, i == s.hot)
	}
	r.Text("Esc to go back", x, 24, 18, colDimText)
}
