package maze

import (
	"fmt"
	"math"
	"time"

	"github.com/Garsondee/dungeon-chase/internal/engine"
)

// DefaultTickPeriod is the logical step length.
const DefaultTickPeriod = 150 * time.Millisecond

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// EnemyAdvancer is called once per logical tick after the player's move.
// Enemy behaviour is not part of the game yet; NoEnemies is the default.
type EnemyAdvancer interface {
	Advance(s *Sim)
}

// NoEnemies leaves enemy entities where the map placed them.
type NoEnemies struct{}

// Advance does nothing.
func (NoEnemies) Advance(*Sim) {}

// Sim is the runtime state of one maze level: the player's cell, the pending
// move, the tick clock, the field of view and the follow camera.
type Sim struct {
	m        *Map
	entities []Entity // everything except the player marker

	playerX, playerY int

	pending    Cell
	hasPending bool
	lastPadDir Direction

	tickPeriod time.Duration
	accum      time.Duration
	ticks      int

	applied  int // moves taken over the whole run
	rejected int // queued moves dropped at the tick

	fovRadius int
	deadzone  float64

	cam          engine.Camera
	viewW, viewH int

	enemies EnemyAdvancer
	events  *EventLog
}

// Option configures a Sim at construction.
type Option func(*Sim)

// WithTickPeriod sets the logical step length. Non-positive values are ignored.
func WithTickPeriod(d time.Duration) Option {
	return func(s *Sim) {
		if d > 0 {
			s.tickPeriod = d
		}
	}
}

// WithFOVRadius sets the sight radius in tiles. Negative values are ignored.
func WithFOVRadius(r int) Option {
	return func(s *Sim) {
		if r >= 0 {
			s.fovRadius = r
		}
	}
}

// WithDeadzone sets the stick deadzone.
func WithDeadzone(dz float64) Option {
	return func(s *Sim) {
		if dz >= 0 && dz < 1 {
			s.deadzone = dz
		}
	}
}

// WithViewport sets the screen size the camera centres on.
func WithViewport(w, h int) Option {
	return func(s *Sim) {
		s.viewW = w
		s.viewH = h
	}
}

// WithEnemyAdvancer installs the per-tick enemy hook.
func WithEnemyAdvancer(a EnemyAdvancer) Option {
	return func(s *Sim) {
		if a != nil {
			s.enemies = a
		}
	}
}

// WithEventLog records simulation events into el.
func WithEventLog(el *EventLog) Option {
	return func(s *Sim) {
		if el != nil {
			s.events = el
		}
	}
}

// NewSim places the player on the map's player marker, or on the first
// walkable cell when the map has none. The player marker is removed from the
// entity list.
func NewSim(m *Map, opts ...Option) (*Sim, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	s := &Sim{
		m:          m,
		tickPeriod: DefaultTickPeriod,
		fovRadius:  DefaultFOVRadius,
		deadzone:   DefaultDeadzone,
		enemies:    NoEnemies{},
		events:     NewEventLog(64, false),
	}
	if m.Meta != nil && m.Meta.FOVRadiusTiles > 0 {
		s.fovRadius = m.Meta.FOVRadiusTiles
	}
	for _, o := range opts {
		o(s)
	}

	if p, ok := m.Player(); ok {
		s.playerX, s.playerY = p.X, p.Y
	} else {
		x, y, err := m.FirstWalkable()
		if err != nil {
			return nil, err
		}
		s.playerX, s.playerY = x, y
	}
	for _, e := range m.Entities {
		if e.Kind != KindPlayer {
			s.entities = append(s.entities, e)
		}
	}
	s.FollowPlayer()
	return s, nil
}

// Map returns the level being simulated.
func (s *Sim) Map() *Map { return s.m }

// Player returns the player's cell.
func (s *Sim) Player() Cell { return Cell{X: s.playerX, Y: s.playerY} }

// Pending returns the queued move, if any.
func (s *Sim) Pending() (Cell, bool) { return s.pending, s.hasPending }

// Ticks returns how many logical ticks have fired.
func (s *Sim) Ticks() int { return s.ticks }

// Moves returns how many queued moves were applied and rejected so far.
func (s *Sim) Moves() (applied, rejected int) { return s.applied, s.rejected }

// TickPeriod returns the logical step length.
func (s *Sim) TickPeriod() time.Duration { return s.tickPeriod }

// FOVRadius returns the sight radius in tiles.
func (s *Sim) FOVRadius() int { return s.fovRadius }

// Entities returns the non-player entities.
func (s *Sim) Entities() []Entity { return s.entities }

// Events returns the simulation event log.
func (s *Sim) Events() *EventLog { return s.events }

// IsValidMove reports whether the player may stand on (x,y): on the grid,
// tile id >= 0 and not a wall.
func (s *Sim) IsValidMove(x, y int) bool {
	return s.m.Walkable(x, y)
}

// Advance adds dt seconds to the tick accumulator. When a full period has
// built up the accumulator resets and exactly one tick fires; Advance then
// returns true. Time is accumulated in whole nanoseconds so the same total
// fires the same number of ticks however it is split. A frame of a full
// period or more fires one tick, however long it was.
func (s *Sim) Advance(dt float64) bool {
	switch {
	case dt >= s.tickPeriod.Seconds():
		s.accum = s.tickPeriod
	case dt > 0:
		s.accum += time.Duration(math.Round(dt * float64(time.Second)))
	}
	if s.accum < s.tickPeriod {
		return false
	}
	s.accum = 0
	s.Tick()
	return true
}

// Tick fires one logical step: apply the pending move if it is still valid,
// consume it, then advance enemies.
func (s *Sim) Tick() {
	s.ticks++
	if s.hasPending {
		from := s.Player()
		to := s.pending
		s.hasPending = false
		if s.IsValidMove(to.X, to.Y) {
			s.playerX, s.playerY = to.X, to.Y
			s.applied++
			s.events.Add(s.ticks, CatMove, "applied", from.String()+" -> "+to.String())
		} else {
			s.rejected++
			s.events.AddVerbose(s.ticks, CatMove, "rejected", to.String())
		}
	}
	s.enemies.Advance(s)
}

// GoalReached reports whether a goal entity shares the player's cell.
func (s *Sim) GoalReached() bool {
	for _, e := range s.entities {
		if e.Kind == KindGoal && e.X == s.playerX && e.Y == s.playerY {
			return true
		}
	}
	return false
}
