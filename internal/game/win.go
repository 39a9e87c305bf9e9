package game

import (
	"fmt"
	"time"

	"github.com/Garsondee/dungeon-chase/internal/config"
	"github.com/Garsondee/dungeon-chase/internal/engine"
)

// WinScene congratulates the player. Clicking continues according to the
// configured win action.
type WinScene struct {
	engine.BaseScene
	env     *Env
	stage   string
	elapsed time.Duration
	next    button
	hot     bool
}

// NewWinScene creates the win screen for stage, completed in elapsed.
func NewWinScene(env *Env, stage string, elapsed time.Duration) *WinScene {
	label := "Back to stages"
	if env.Cfg.WinAction == config.WinQuit {
		label = "Quit"
	}
	return &WinScene{
		env:     env,
		stage:   stage,
		elapsed: elapsed,
		next:    buttonColumn([]string{label}, env.Cfg.Window.Width, env.Cfg.Window.Height*2/3)[0],
	}
}

func (s *WinScene) String() string { return "win" }

func (s *WinScene) HandleInput(in engine.Input, gs *engine.GameState) engine.Signal {
	s.hot = s.next.hovered(in)
	if !s.next.clicked(in) && !in.KeyPressed(engine.KeyEnter) && !in.GamepadButtonPressed(0, engine.ButtonSouth) {
		return engine.None()
	}
	if s.env.Cfg.WinAction == config.WinQuit {
		return engine.Quit()
	}
	return engine.Pop()
}

func (s *WinScene) Draw(r engine.Renderer, gs *engine.GameState) {
	r.Clear(colBackground)
	x := s.next.rect.Min.X
	r.Text("Stage cleared!", x, gs.ScreenHeight/4, 44, colAccent)
	r.Text(s.stage, x, gs.ScreenHeight/4+64, 24, colText)
	r.Text(fmt.Sprintf("Time %s  %s", formatElapsed(s.elapsed), pointsLabel(gs)), x, gs.ScreenHeight/4+100, 20, colDimText)
	s.next.draw(r, s.hot)
}

// formatElapsed renders a duration as m:ss.t.
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(100 * time.Millisecond)
	m := int(d / time.Minute)
	sec := d % time.Minute
	return fmt.Sprintf("%d:%04.1f", m, sec.Seconds())
}

func pointsLabel(gs *engine.GameState) string {
	if gs.Points == 1 {
		return "1 point"
	}
	return fmt.Sprintf("%d points", gs.Points)
}
