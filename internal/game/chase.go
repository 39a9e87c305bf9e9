package game

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Garsondee/dungeon-chase/internal/config"
	"github.com/Garsondee/dungeon-chase/internal/engine"
	"github.com/Garsondee/dungeon-chase/internal/maze"
)

const (
	chaseSpeed        = 300.0 // px per second
	chasePickupRadius = 25.0
	chasePlayerRadius = 15
	chasePointRadius  = 20
)

type point struct {
	X, Y float64
}

// ChaseScene is free movement on an open screen. Points are collected one at
// a time, newest first; only the next one is shown. Clearing them all wins.
type ChaseScene struct {
	env   *Env
	stage config.Stage
	log   *log.Logger

	points []point
	px, py float64
	dx, dy float64 // unit heading, zero when idle
}

// NewChaseScene creates the scene for a chase stage. Points are placed in
// OnEnter.
func NewChaseScene(env *Env, stage config.Stage) *ChaseScene {
	return &ChaseScene{
		env:   env,
		stage: stage,
		log:   env.Log.WithPrefix("chase"),
	}
}

func (s *ChaseScene) String() string { return "chase:" + s.stage.Name }

// Remaining returns how many points are left.
func (s *ChaseScene) Remaining() int { return len(s.points) }

func (s *ChaseScene) OnEnter(gs *engine.GameState) error {
	seed := s.stage.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.px, s.py = float64(gs.ScreenWidth/2), float64(gs.ScreenHeight/2)
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- pickup layout only
	s.points = scatterPoints(rng, s.stage.Points, gs.ScreenWidth, gs.ScreenHeight, point{s.px, s.py})
	s.dx, s.dy = 0, 0
	gs.StartLevel()
	s.log.Debug("stage started", "stage", s.stage.Name, "points", len(s.points), "seed", seed)
	return nil
}

func (s *ChaseScene) OnExit(gs *engine.GameState) {
	s.points = nil
}

// scatterPoints places n points uniformly on a w x h screen, rerolling any
// that would be picked up from spawn without moving.
func scatterPoints(rng *rand.Rand, n, w, h int, spawn point) []point {
	pts := make([]point, n)
	for i := range pts {
		for try := 0; try < 16; try++ {
			pts[i] = point{X: float64(rng.Intn(max(w, 1))), Y: float64(rng.Intn(max(h, 1)))}
			if math.Hypot(pts[i].X-spawn.X, pts[i].Y-spawn.Y) >= 2*chasePickupRadius {
				break
			}
		}
	}
	return pts
}

func (s *ChaseScene) HandleInput(in engine.Input, gs *engine.GameState) engine.Signal {
	if pauseRequested(in) {
		return engine.Push(NewPauseScene(s.env))
	}
	c := readControls(in)
	d := maze.KeysDirection(c)
	if c.HasStick {
		d = maze.CombineDirections(d, maze.StickDirection(c.StickX, c.StickY, s.env.Cfg.Sim.Deadzone))
	}
	s.dx, s.dy = 0, 0
	if d != maze.DirNone {
		l := math.Hypot(float64(d.DX), float64(d.DY))
		s.dx, s.dy = float64(d.DX)/l, float64(d.DY)/l
	}
	return engine.None()
}

func (s *ChaseScene) Update(dt float64, gs *engine.GameState) engine.Signal {
	step := chaseSpeed * dt
	s.px = math.Max(0, math.Min(float64(gs.ScreenWidth), s.px+s.dx*step))
	s.py = math.Max(0, math.Min(float64(gs.ScreenHeight), s.py+s.dy*step))

	if n := len(s.points); n > 0 {
		next := s.points[n-1]
		if math.Hypot(next.X-s.px, next.Y-s.py) < chasePickupRadius {
			s.points = s.points[:n-1]
			gs.Score()
			s.log.Debug("point collected", "left", len(s.points), "points", gs.Points)
		}
	}
	if len(s.points) > 0 {
		return engine.None()
	}

	gs.CompleteLevel()
	elapsed, _ := gs.LevelElapsed()
	s.log.Info("all points collected",
		"stage", s.stage.Name,
		"elapsed", elapsed,
		"points", gs.Points,
		"session", gs.SessionID)
	return engine.Replace(NewWinScene(s.env, s.stage.Name, elapsed))
}

func (s *ChaseScene) Draw(r engine.Renderer, gs *engine.GameState) {
	r.Clear(colBackground)
	if n := len(s.points); n > 0 {
		next := s.points[n-1]
		r.Circle(float32(next.X), float32(next.Y), chasePointRadius, colGoal)
	}
	r.Circle(float32(s.px), float32(s.py), chasePlayerRadius, colPlayer)

	r.FillRect(8, 8, 300, 56, colPanel)
	r.Text(s.stage.Name, 16, 14, 20, colAccent)
	r.Text(fmt.Sprintf("%s  %d left", pointsLabel(gs), len(s.points)), 16, 38, 16, colHUDText)
}
