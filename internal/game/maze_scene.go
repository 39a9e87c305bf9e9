package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/Garsondee/dungeon-chase/internal/config"
	"github.com/Garsondee/dungeon-chase/internal/engine"
	"github.com/Garsondee/dungeon-chase/internal/maze"
)

// feedLines is how many recent sim events the HUD shows.
const feedLines = 5

// Fallback colours when the tileset is missing a tile.
var (
	colFloor   = color.RGBA{R: 58, G: 52, B: 44, A: 255}
	colWall    = color.RGBA{R: 110, G: 96, B: 84, A: 255}
	colInert   = color.RGBA{R: 40, G: 60, B: 48, A: 255}
	colPlayer  = color.RGBA{R: 90, G: 200, B: 255, A: 255}
	colGoal    = color.RGBA{R: 250, G: 210, B: 60, A: 255}
	colEnemy   = color.RGBA{R: 230, G: 70, B: 60, A: 255}
	colHUDText = color.RGBA{R: 220, G: 230, B: 220, A: 255}
)

// MazeScene plays one stage: a tick-based maze run on a fixed grid with the
// view limited to a radius around the player.
type MazeScene struct {
	env   *Env
	stage config.Stage
	log   *log.Logger

	sim *maze.Sim
	tex engine.Texture
	tw  int
	th  int
}

// NewMazeScene creates the scene for stage. Nothing is loaded until OnEnter.
func NewMazeScene(env *Env, stage config.Stage) *MazeScene {
	return &MazeScene{
		env:   env,
		stage: stage,
		log:   env.Log.WithPrefix("maze"),
	}
}

func (s *MazeScene) String() string { return "maze:" + s.stage.Name }

// Sim exposes the running simulation, nil outside OnEnter..OnExit.
func (s *MazeScene) Sim() *maze.Sim { return s.sim }

func (s *MazeScene) OnEnter(gs *engine.GameState) error {
	m, err := s.env.Assets.LoadMap(s.stage)
	if err != nil {
		return fmt.Errorf("stage %q: %w", s.stage.Name, err)
	}
	tex, err := s.env.Assets.LoadTexture(s.env.Cfg.Assets.Tileset)
	if err != nil {
		return fmt.Errorf("stage %q: %w", s.stage.Name, err)
	}

	simCfg := s.env.Cfg.Sim
	opts := []maze.Option{
		maze.WithTickPeriod(simCfg.Tick),
		maze.WithDeadzone(simCfg.Deadzone),
		maze.WithViewport(gs.ScreenWidth, gs.ScreenHeight),
		maze.WithEventLog(maze.NewEventLog(64, s.env.Log.GetLevel() <= log.DebugLevel)),
	}
	if (m.Meta == nil || m.Meta.FOVRadiusTiles <= 0) && simCfg.FOVRadius > 0 {
		opts = append(opts, maze.WithFOVRadius(simCfg.FOVRadius))
	}
	sim, err := maze.NewSim(m, opts...)
	if err != nil {
		if tex != nil {
			tex.Release()
		}
		return fmt.Errorf("stage %q: %w", s.stage.Name, err)
	}

	s.sim = sim
	s.tex = tex
	if tex != nil {
		s.tw, s.th = tex.Size()
	}
	gs.StartLevel()
	s.log.Debug("stage loaded",
		"stage", s.stage.Name,
		"grid", fmt.Sprintf("%dx%d", m.GridW, m.GridH),
		"player", sim.Player(),
		"fov", sim.FOVRadius(),
		"session", gs.SessionID)
	return nil
}

func (s *MazeScene) OnExit(gs *engine.GameState) {
	if s.tex != nil {
		s.tex.Release()
		s.tex = nil
	}
	s.sim = nil
}

func (s *MazeScene) HandleInput(in engine.Input, gs *engine.GameState) engine.Signal {
	if pauseRequested(in) {
		return engine.Push(NewPauseScene(s.env))
	}
	if in.KeyPressed(engine.KeyF9) {
		s.copyDebugReport(gs)
	}
	s.sim.HandleControls(readControls(in))
	return engine.None()
}

// readControls samples direction keys and the first gamepad's left stick.
func readControls(in engine.Input) maze.Controls {
	c := maze.Controls{
		Left:  in.KeyHeld(engine.KeyLeft) || in.KeyHeld(engine.KeyA),
		Right: in.KeyHeld(engine.KeyRight) || in.KeyHeld(engine.KeyD),
		Up:    in.KeyHeld(engine.KeyUp) || in.KeyHeld(engine.KeyW),
		Down:  in.KeyHeld(engine.KeyDown) || in.KeyHeld(engine.KeyS),
	}
	if in.GamepadPresent(0) {
		c.HasStick = true
		c.StickX = in.GamepadAxis(0, engine.AxisLeftX)
		c.StickY = in.GamepadAxis(0, engine.AxisLeftY)
	}
	return c
}

func (s *MazeScene) Update(dt float64, gs *engine.GameState) engine.Signal {
	s.sim.Advance(dt)
	s.sim.FollowPlayer()
	if !s.sim.GoalReached() {
		return engine.None()
	}

	gs.Score()
	gs.CompleteLevel()
	elapsed, _ := gs.LevelElapsed()
	s.sim.Events().Add(s.sim.Ticks(), maze.CatGoal, "reached", s.sim.Player().String())
	s.log.Info("goal reached",
		"stage", s.stage.Name,
		"ticks", s.sim.Ticks(),
		"elapsed", elapsed,
		"points", gs.Points,
		"session", gs.SessionID)
	return engine.Replace(NewWinScene(s.env, s.stage.Name, elapsed))
}

func (s *MazeScene) Draw(r engine.Renderer, gs *engine.GameState) {
	r.Clear(colBackground)
	if s.sim == nil {
		return
	}
	r.WithCamera(s.sim.Camera(), func() {
		s.drawTiles(r)
		s.drawEntities(r)
	})
	s.drawHUD(r, gs)
}

// drawTiles draws floors first, then walls and inert tiles, so wall art can
// overhang the floor beneath.
func (s *MazeScene) drawTiles(r engine.Renderer) {
	m := s.sim.Map()
	s.sim.VisibleCells(func(x, y int) {
		if id := m.Tiles[y][x]; maze.ClassifyTile(id) == maze.TileFloor {
			s.drawTile(r, x, y, id)
		}
	})
	s.sim.VisibleCells(func(x, y int) {
		switch id := m.Tiles[y][x]; maze.ClassifyTile(id) {
		case maze.TileWall, maze.TileInert:
			s.drawTile(r, x, y, id)
		}
	})
}

func (s *MazeScene) drawTile(r engine.Renderer, x, y, id int) {
	ts := s.sim.Map().TileSizePx
	dst := image.Rect(x*ts, y*ts, (x+1)*ts, (y+1)*ts)
	if s.tex != nil {
		if src := tileSource(id, ts, s.tw, s.th); !src.Empty() {
			r.Sprite(s.tex, src, dst)
			return
		}
	}
	c := colFloor
	switch maze.ClassifyTile(id) {
	case maze.TileWall:
		c = colWall
	case maze.TileInert:
		c = colInert
	}
	r.FillRect(float32(dst.Min.X), float32(dst.Min.Y), float32(ts), float32(ts), c)
}

func (s *MazeScene) drawEntities(r engine.Renderer) {
	ts := float32(s.sim.Map().TileSizePx)
	for _, e := range s.sim.VisibleEntities() {
		c := colEnemy
		if e.Kind == maze.KindGoal {
			c = colGoal
		}
		r.Circle(float32(e.X)*ts+ts/2, float32(e.Y)*ts+ts/2, ts*0.35, c)
	}
	p := s.sim.Player()
	r.Circle(float32(p.X)*ts+ts/2, float32(p.Y)*ts+ts/2, ts*0.4, colPlayer)
}

func (s *MazeScene) drawHUD(r engine.Renderer, gs *engine.GameState) {
	r.FillRect(8, 8, 360, 84, colPanel)
	r.Text(s.stage.Name, 16, 14, 20, colAccent)
	status := fmt.Sprintf("%s  tick %d", pointsLabel(gs), s.sim.Ticks())
	if d, ok := gs.LevelRunning(); ok {
		status += fmt.Sprintf("  %s", formatElapsed(d))
	}
	r.Text(status, 16, 40, 16, colHUDText)
	hint := "P pause  F9 copy report"
	if dir := s.sim.LastStickDirection(); dir != maze.DirNone {
		hint += "  stick " + dir.String()
	}
	r.Text(hint, 16, 62, 14, colDimText)

	recent := s.sim.Events().Recent(feedLines)
	y := gs.ScreenHeight - 16 - len(recent)*18
	for _, e := range recent {
		r.Text(e.String(), 16, y, 14, colDimText)
		y += 18
	}
}
