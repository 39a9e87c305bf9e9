package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Garsondee/dungeon-chase/internal/engine"
	"github.com/Garsondee/dungeon-chase/internal/game"
	"github.com/Garsondee/dungeon-chase/internal/maze"
)

// frameDT is the simulated frame length fed to the maze.
const frameDT = 1.0 / 60

type reportOptions struct {
	runs      int
	seedBase  int64
	seedStep  int64
	width     int
	height    int
	corridor  int
	mapPath   string
	maxTicks  int
	tick      time.Duration
	fovRadius int
	debug     bool
}

type runStats struct {
	runIndex int
	seed     int64
	gridW    int
	gridH    int
	walkable int

	routeSteps int // optimal step count from spawn to goal, -1 when unreachable
	ticks      int
	reached    bool
	applied    int
	rejected   int
	simTime    time.Duration
	maxVisible int // most cells in view on any tick
	debug      string
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "headless-report",
	})
	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Fatal("report failed", "error", err)
	}
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	opts := reportOptions{}
	cmd := &cobra.Command{
		Use:   "headless-report",
		Short: "Run autopilot playthroughs of maze stages without a window",
		Long: `Generates (or loads) maze stages, drives the player along the shortest
route with simulated input and prints per-run and aggregate statistics.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			return runReport(cmd.OutOrStdout(), opts, logger)
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.runs, "runs", 5, "number of runs (ignored with --map)")
	f.Int64Var(&opts.seedBase, "seed-base", 42, "generator seed for run 1")
	f.Int64Var(&opts.seedStep, "seed-step", 1, "seed increment between runs")
	f.IntVar(&opts.width, "width", 60, "generated grid width in tiles")
	f.IntVar(&opts.height, "height", 45, "generated grid height in tiles")
	f.IntVar(&opts.corridor, "corridor", 3, "generated corridor width in tiles")
	f.StringVar(&opts.mapPath, "map", "", "play this map file instead of generating")
	f.IntVar(&opts.maxTicks, "max-ticks", 5000, "give up after this many ticks")
	f.DurationVar(&opts.tick, "tick", maze.DefaultTickPeriod, "movement tick period")
	f.IntVar(&opts.fovRadius, "fov", maze.DefaultFOVRadius, "field of view radius in tiles")
	f.BoolVar(&opts.debug, "debug", false, "print the debug report after each run")
	return cmd
}

func (o reportOptions) validate() error {
	if o.runs <= 0 {
		return errors.New("--runs must be > 0")
	}
	if o.maxTicks <= 0 {
		return errors.New("--max-ticks must be > 0")
	}
	if o.tick <= 0 {
		return errors.New("--tick must be > 0")
	}
	return nil
}

func runReport(w io.Writer, opts reportOptions, logger *log.Logger) error {
	fmt.Fprintf(w, "=== Headless Maze Report ===\n")
	if opts.mapPath != "" {
		fmt.Fprintf(w, "map=%s tick=%s fov=%d max_ticks=%d\n\n", opts.mapPath, opts.tick, opts.fovRadius, opts.maxTicks)
		m, err := maze.Load(opts.mapPath)
		if err != nil {
			return err
		}
		rs, err := runAutopilot(1, 0, m, opts)
		if err != nil {
			return err
		}
		printRun(w, rs)
		printAggregate(w, []runStats{rs})
		return nil
	}

	fmt.Fprintf(w, "runs=%d grid=%dx%d corridor=%d seed_base=%d seed_step=%d tick=%s fov=%d\n\n",
		opts.runs, opts.width, opts.height, opts.corridor, opts.seedBase, opts.seedStep, opts.tick, opts.fovRadius)
	all := make([]runStats, 0, opts.runs)
	for i := 0; i < opts.runs; i++ {
		seed := opts.seedBase + int64(i)*opts.seedStep
		gen := maze.DefaultGenOptions(seed)
		gen.Width, gen.Height, gen.CorridorWidth = opts.width, opts.height, opts.corridor
		m, err := maze.Generate(gen)
		if err != nil {
			return fmt.Errorf("run %d: %w", i+1, err)
		}
		rs, err := runAutopilot(i+1, seed, m, opts)
		if err != nil {
			return fmt.Errorf("run %d: %w", i+1, err)
		}
		if !rs.reached {
			logger.Warn("autopilot did not reach the goal", "run", rs.runIndex, "seed", seed, "ticks", rs.ticks)
		}
		all = append(all, rs)
		printRun(w, rs)
	}
	printAggregate(w, all)
	return nil
}

// runAutopilot plays m by following the shortest route to the nearest goal,
// feeding the route as held direction keys one frame at a time.
func runAutopilot(runIndex int, seed int64, m *maze.Map, opts reportOptions) (runStats, error) {
	events := maze.NewEventLog(0, true)
	sim, err := maze.NewSim(m,
		maze.WithTickPeriod(opts.tick),
		maze.WithFOVRadius(opts.fovRadius),
		maze.WithEventLog(events))
	if err != nil {
		return runStats{}, err
	}

	rs := runStats{
		runIndex:   runIndex,
		seed:       seed,
		gridW:      m.GridW,
		gridH:      m.GridH,
		walkable:   len(m.Reachable(sim.Player())),
		routeSteps: -1,
	}
	route := nearestGoalRoute(m, sim.Player(), sim.Entities())
	if route != nil {
		rs.routeSteps = len(route) - 1
	}

	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	gs := engine.NewGameState(0, 0)
	gs.SetClock(func() time.Time { return start.Add(time.Duration(sim.Ticks()) * sim.TickPeriod()) })
	gs.StartLevel()

	next := 1
	for sim.Ticks() < opts.maxTicks && !sim.GoalReached() {
		var c maze.Controls
		if route != nil && next < len(route) {
			c = controlsToward(sim.Player(), route[next])
		}
		sim.HandleControls(c)
		if sim.Advance(frameDT) {
			if route != nil && next < len(route) && sim.Player() == route[next] {
				next++
			}
			n := 0
			sim.VisibleCells(func(int, int) { n++ })
			if n > rs.maxVisible {
				rs.maxVisible = n
			}
		}
		sim.FollowPlayer()
	}

	rs.ticks = sim.Ticks()
	rs.reached = sim.GoalReached()
	if rs.reached {
		gs.Score()
		gs.CompleteLevel()
		events.Add(sim.Ticks(), maze.CatGoal, "reached", sim.Player().String())
	}
	rs.applied, rs.rejected = sim.Moves()
	rs.simTime = time.Duration(rs.ticks) * sim.TickPeriod()
	if opts.debug {
		rs.debug = game.DebugReport(fmt.Sprintf("run %d", runIndex), gs, sim, 10)
	}
	return rs, nil
}

// nearestGoalRoute returns the shortest route from start to any goal entity.
func nearestGoalRoute(m *maze.Map, start maze.Cell, entities []maze.Entity) []maze.Cell {
	var best []maze.Cell
	for _, e := range entities {
		if e.Kind != maze.KindGoal {
			continue
		}
		route := m.FindPath(start, maze.Cell{X: e.X, Y: e.Y})
		if route != nil && (best == nil || len(route) < len(best)) {
			best = route
		}
	}
	return best
}

// controlsToward holds the direction keys that step from one cell to an
// adjacent one.
func controlsToward(from, to maze.Cell) maze.Controls {
	return maze.Controls{
		Left:  to.X < from.X,
		Right: to.X > from.X,
		Up:    to.Y < from.Y,
		Down:  to.Y > from.Y,
	}
}

// efficiency is route steps over ticks spent: 1.0 means no tick was wasted.
func efficiency(rs runStats) float64 {
	if !rs.reached || rs.ticks == 0 || rs.routeSteps < 0 {
		return 0
	}
	return float64(rs.routeSteps) / float64(rs.ticks)
}

func printRun(w io.Writer, rs runStats) {
	fmt.Fprintf(w, "--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Fprintf(w, "grid=%dx%d reachable_cells=%d route_steps=%d max_visible=%d\n",
		rs.gridW, rs.gridH, rs.walkable, rs.routeSteps, rs.maxVisible)
	fmt.Fprintf(w, "outcome: reached=%t ticks=%d sim_time=%s efficiency=%.2f\n",
		rs.reached, rs.ticks, rs.simTime, efficiency(rs))
	fmt.Fprintf(w, "moves: applied=%d rejected=%d\n", rs.applied, rs.rejected)
	if rs.debug != "" {
		fmt.Fprint(w, rs.debug)
	}
	fmt.Fprintln(w)
}

func printAggregate(w io.Writer, all []runStats) {
	reached := 0
	totalTicks := 0
	totalSteps := 0
	totalRejected := 0
	ticks := make([]int, 0, len(all))
	for _, rs := range all {
		if rs.reached {
			reached++
			ticks = append(ticks, rs.ticks)
		}
		totalTicks += rs.ticks
		if rs.routeSteps > 0 {
			totalSteps += rs.routeSteps
		}
		totalRejected += rs.rejected
	}
	sort.Ints(ticks)

	fmt.Fprintf(w, "=== Aggregate (%d runs) ===\n", len(all))
	fmt.Fprintf(w, "reached=%d/%d rejected_moves=%d\n", reached, len(all), totalRejected)
	if len(ticks) > 0 {
		fmt.Fprintf(w, "ticks_to_goal: min=%d median=%d max=%d\n", ticks[0], ticks[len(ticks)/2], ticks[len(ticks)-1])
	}
	if totalTicks > 0 {
		fmt.Fprintf(w, "overall_efficiency=%.2f\n", float64(totalSteps)/float64(totalTicks))
	}
}
