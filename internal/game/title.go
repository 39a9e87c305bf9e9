package game

import (
	"github.com/Garsondee/dungeon-chase/internal/engine"
)

// TitleScene is the first screen. Start opens stage select; Escape quits.
type TitleScene struct {
	engine.BaseScene
	env   *Env
	start button
	hot   bool
}

// NewTitleScene creates the title screen.
func NewTitleScene(env *Env) *TitleScene {
	w, h := env.Cfg.Window.Width, env.Cfg.Window.Height
	return &TitleScene{
		env:   env,
		start: buttonColumn([]string{"Start"}, w, h/2)[0],
	}
}

func (s *TitleScene) String() string { return "title" }

func (s *TitleScene) HandleInput(in engine.Input, gs *engine.GameState) engine.Signal {
	s.hot = s.start.hovered(in)
	if in.KeyPressed(engine.KeyEscape) {
		return engine.Quit()
	}
	if s.start.clicked(in) || in.KeyPressed(engine.KeyEnter) || in.GamepadButtonPressed(0, engine.ButtonSouth) {
		return engine.Push(NewMenuScene(s.env))
	}
	return engine.None()
}

func (s *TitleScene) Draw(r engine.Renderer, gs *engine.GameState) {
	r.Clear(colBackground)
	title := s.env.Cfg.Window.Title
	r.Text(title, s.start.rect.Min.X, gs.ScreenHeight/4, 48, colAccent)
	s.start.draw(r, s.hot)
	r.Text("Esc to quit", s.start.rect.Min.X, s.start.rect.Max.Y+24, 18, colDimText)
	if gs.Points > 0 {
		r.Text(pointsLabel(gs), s.start.rect.Min.X, s.start.rect.Max.Y+52, 18, colDimText)
	}
}
