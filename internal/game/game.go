package game

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/Garsondee/dungeon-chase/internal/engine"
)

// maxFrameDelta caps the wall-clock step handed to the scenes.
const maxFrameDelta = 250 * time.Millisecond

// Game adapts the scene stack to ebiten.Game.
type Game struct {
	env   *Env
	gs    *engine.GameState
	mgr   *engine.Manager
	in    *ebitenInput
	log   *log.Logger
	font  *text.GoTextFaceSource
	faces map[float64]*text.GoTextFace

	now  func() time.Time
	last time.Time
	done bool
}

// New builds the game with the title screen on the stack.
func New(env *Env) (*Game, error) {
	font, err := loadFontSource()
	if err != nil {
		return nil, err
	}
	w, h := env.Cfg.Window.Width, env.Cfg.Window.Height
	gs := engine.NewGameState(w, h)
	logger := env.Log.With("session", gs.SessionID)

	g := &Game{
		env:   env,
		gs:    gs,
		in:    &ebitenInput{},
		log:   logger,
		font:  font,
		faces: map[float64]*text.GoTextFace{},
		now:   time.Now,
	}
	g.mgr, err = engine.NewManager(g.in, NewTitleScene(env), gs, engine.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("start game: %w", err)
	}
	logger.Info("game started", "window", fmt.Sprintf("%dx%d", w, h), "stages", len(env.Cfg.Stages))
	return g, nil
}

// State returns the session state.
func (g *Game) State() *engine.GameState { return g.gs }

// Update runs one frame of the scene stack with the wall-clock time since the
// previous frame.
func (g *Game) Update() error {
	if g.done {
		return ebiten.Termination
	}
	now := g.now()
	dt := 0.0
	if !g.last.IsZero() {
		d := now.Sub(g.last)
		if d > maxFrameDelta {
			d = maxFrameDelta
		}
		dt = d.Seconds()
	}
	g.last = now

	g.in.refresh()
	if err := g.mgr.Step(dt, g.gs); err != nil {
		g.Close()
		return err
	}
	if g.mgr.ShouldTerminate() {
		g.Close()
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.mgr.Render(newScreenRenderer(screen, g.font, g.faces), g.gs)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.gs.ScreenWidth, g.gs.ScreenHeight
}

// Close exits every scene still on the stack. It is safe to call twice.
func (g *Game) Close() {
	if g.done {
		return
	}
	g.done = true
	g.mgr.Shutdown(g.gs)
	g.log.Info("game stopped", "points", g.gs.Points)
}
