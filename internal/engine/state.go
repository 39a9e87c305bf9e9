package engine

import (
	"time"

	"github.com/google/uuid"
)

// GameState is the session-wide data every scene reads and writes. It is only
// touched from the game loop goroutine.
type GameState struct {
	Points       uint32
	ScreenWidth  int
	ScreenHeight int
	SessionID    string // identifies this run in logs

	levelStart     time.Time
	levelCompleted time.Time
	now            func() time.Time
}

// NewGameState creates the state for a new session.
func NewGameState(width, height int) *GameState {
	return &GameState{
		ScreenWidth:  width,
		ScreenHeight: height,
		SessionID:    uuid.New().String(),
		now:          time.Now,
	}
}

// SetClock replaces the time source. Tests use it to control timestamps.
func (gs *GameState) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	gs.now = now
}

func (gs *GameState) clock() time.Time {
	if gs.now == nil {
		return time.Now()
	}
	return gs.now()
}

// Score adds one point.
func (gs *GameState) Score() {
	gs.Points++
}

// StartLevel stamps the level start and clears any previous completion.
func (gs *GameState) StartLevel() {
	gs.levelStart = gs.clock()
	gs.levelCompleted = time.Time{}
}

// CompleteLevel stamps the level completion. It does nothing and returns
// false when no level has been started.
func (gs *GameState) CompleteLevel() bool {
	if gs.levelStart.IsZero() {
		return false
	}
	t := gs.clock()
	if t.Before(gs.levelStart) {
		t = gs.levelStart
	}
	gs.levelCompleted = t
	return true
}

// LevelElapsed returns completion minus start once both are recorded.
func (gs *GameState) LevelElapsed() (time.Duration, bool) {
	if gs.levelStart.IsZero() || gs.levelCompleted.IsZero() {
		return 0, false
	}
	return gs.levelCompleted.Sub(gs.levelStart), true
}

// LevelRunning returns time since the level started while it is in progress.
func (gs *GameState) LevelRunning() (time.Duration, bool) {
	if gs.levelStart.IsZero() || !gs.levelCompleted.IsZero() {
		return 0, false
	}
	d := gs.clock().Sub(gs.levelStart)
	if d < 0 {
		d = 0
	}
	return d, true
}
