package game

import (
	"fmt"
	"strings"

	"github.com/Garsondee/dungeon-chase/internal/engine"
	"github.com/Garsondee/dungeon-chase/internal/maze"
)

// reportEvents is how many trailing events a report includes by default.
const reportEvents = 40

// DebugReport renders a plain-text snapshot of a maze run: position, queued
// move, view, route to the goal and the most recent sim events.
func DebugReport(stage string, gs *engine.GameState, sim *maze.Sim, lastEvents int) string {
	if sim == nil {
		return ""
	}
	if lastEvents <= 0 {
		lastEvents = reportEvents
	}
	m := sim.Map()
	p := sim.Player()

	var b strings.Builder
	fmt.Fprintf(&b, "--- dungeon-chase debug report ---\n")
	fmt.Fprintf(&b, "session=%s stage=%q grid=%dx%d tile=%dpx\n", gs.SessionID, stage, m.GridW, m.GridH, m.TileSizePx)
	fmt.Fprintf(&b, "tick=%d period=%s points=%d", sim.Ticks(), sim.TickPeriod(), gs.Points)
	if d, ok := gs.LevelRunning(); ok {
		fmt.Fprintf(&b, " running=%s", formatElapsed(d))
	} else if d, ok := gs.LevelElapsed(); ok {
		fmt.Fprintf(&b, " completed=%s", formatElapsed(d))
	}
	b.WriteByte('\n')

	pending := "none"
	if c, ok := sim.Pending(); ok {
		pending = c.String()
	}
	fmt.Fprintf(&b, "player=%s tile=%s pending=%s stick=%s\n",
		p, maze.ClassifyTile(m.Tiles[p.Y][p.X]), pending, sim.LastStickDirection())

	bounds := sim.VisibleBounds()
	cam := sim.Camera()
	fmt.Fprintf(&b, "fov=%d bounds=(%d,%d)-(%d,%d) camera target=(%.0f,%.0f) offset=(%.0f,%.0f)\n",
		sim.FOVRadius(), bounds.MinX, bounds.MinY, bounds.MaxX, bounds.MaxY,
		cam.TargetX, cam.TargetY, cam.OffsetX, cam.OffsetY)

	visible := len(sim.VisibleEntities())
	fmt.Fprintf(&b, "entities=%d visible=%d\n", len(sim.Entities()), visible)
	for _, e := range sim.Entities() {
		if e.Kind != maze.KindGoal {
			continue
		}
		route := m.FindPath(p, maze.Cell{X: e.X, Y: e.Y})
		if route == nil {
			fmt.Fprintf(&b, "goal (%d,%d): unreachable\n", e.X, e.Y)
			continue
		}
		fmt.Fprintf(&b, "goal (%d,%d): %d steps\n", e.X, e.Y, len(route)-1)
	}

	applied, rejected := sim.Moves()
	fmt.Fprintf(&b, "moves applied=%d rejected=%d\n", applied, rejected)
	recent := sim.Events().Recent(lastEvents)
	if len(recent) == 0 {
		b.WriteString("(no events recorded yet)\n")
		return b.String()
	}
	b.WriteString("events:\n")
	for _, e := range recent {
		b.WriteString("  ")
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (s *MazeScene) copyDebugReport(gs *engine.GameState) {
	report := DebugReport(s.stage.Name, gs, s.sim, reportEvents)
	if s.env.Clipboard == nil {
		s.log.Warn("clipboard unavailable, debug report not copied")
		return
	}
	if err := s.env.Clipboard(report); err != nil {
		s.log.Warn("could not copy debug report", "error", err)
		return
	}
	s.log.Info("debug report copied to clipboard", "bytes", len(report))
}
