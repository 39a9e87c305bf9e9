package main

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Garsondee/dungeon-chase/internal/maze"
)

func testOptions() reportOptions {
	return reportOptions{
		runs:      2,
		seedBase:  7,
		seedStep:  1,
		width:     30,
		height:    24,
		corridor:  2,
		maxTicks:  2000,
		tick:      maze.DefaultTickPeriod,
		fovRadius: maze.DefaultFOVRadius,
	}
}

func TestControlsToward(t *testing.T) {
	from := maze.Cell{X: 5, Y: 5}
	cases := []struct {
		to   maze.Cell
		want maze.Controls
	}{
		{maze.Cell{X: 6, Y: 5}, maze.Controls{Right: true}},
		{maze.Cell{X: 4, Y: 5}, maze.Controls{Left: true}},
		{maze.Cell{X: 5, Y: 4}, maze.Controls{Up: true}},
		{maze.Cell{X: 6, Y: 6}, maze.Controls{Right: true, Down: true}},
		{from, maze.Controls{}},
	}
	for _, c := range cases {
		if got := controlsToward(from, c.to); got != c.want {
			t.Errorf("controlsToward(%v) = %+v, want %+v", c.to, got, c.want)
		}
	}
}

// Autopilot queues a move every frame, so every tick applies one route step.
func TestRunAutopilot_OneStepPerTick(t *testing.T) {
	opts := testOptions()
	gen := maze.DefaultGenOptions(opts.seedBase)
	gen.Width, gen.Height, gen.CorridorWidth = opts.width, opts.height, opts.corridor
	m, err := maze.Generate(gen)
	if err != nil {
		t.Fatal(err)
	}
	rs, err := runAutopilot(1, opts.seedBase, m, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !rs.reached {
		t.Fatalf("autopilot should reach the goal: %+v", rs)
	}
	if rs.routeSteps <= 0 {
		t.Fatalf("route steps = %d", rs.routeSteps)
	}
	if rs.ticks != rs.routeSteps {
		t.Fatalf("ticks = %d, want one per route step (%d)", rs.ticks, rs.routeSteps)
	}
	if rs.applied != rs.routeSteps || rs.rejected != 0 {
		t.Fatalf("applied=%d rejected=%d, want %d/0", rs.applied, rs.rejected, rs.routeSteps)
	}
	if rs.simTime != time.Duration(rs.ticks)*opts.tick {
		t.Fatalf("sim time = %s", rs.simTime)
	}
	if efficiency(rs) != 1 {
		t.Fatalf("efficiency = %.2f, want 1", efficiency(rs))
	}
}

func TestRunAutopilot_NoGoalStopsAtBudget(t *testing.T) {
	m, err := maze.Generate(maze.DefaultGenOptions(3))
	if err != nil {
		t.Fatal(err)
	}
	var kept []maze.Entity
	for _, e := range m.Entities {
		if e.Kind != maze.KindGoal {
			kept = append(kept, e)
		}
	}
	m.Entities = kept

	opts := testOptions()
	opts.maxTicks = 5
	rs, err := runAutopilot(1, 3, m, opts)
	if err != nil {
		t.Fatal(err)
	}
	if rs.reached || rs.routeSteps != -1 || rs.ticks != 5 {
		t.Fatalf("unexpected stats without a goal: %+v", rs)
	}
	if efficiency(rs) != 0 {
		t.Fatal("efficiency of an unfinished run should be zero")
	}
}

func TestRunReport_PrintsRunsAndAggregate(t *testing.T) {
	var out bytes.Buffer
	opts := testOptions()
	opts.debug = true
	if err := runReport(&out, opts, log.New(io.Discard)); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	for _, want := range []string{"=== Headless Maze Report ===", "--- Run 1 (seed=7) ---", "--- Run 2 (seed=8) ---", "reached=2/2", "debug report"} {
		if !strings.Contains(s, want) {
			t.Fatalf("report missing %q:\n%s", want, s)
		}
	}
}

func TestRootCmd_RejectsBadFlags(t *testing.T) {
	cmd := newRootCmd(log.New(io.Discard))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--runs", "0"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for --runs 0")
	}
}
