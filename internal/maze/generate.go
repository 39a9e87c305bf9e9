package maze

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator defaults, matching the map maker's sheet layout.
const (
	DefaultGridW         = 80
	DefaultGridH         = 60
	DefaultTileSize      = 32
	DefaultWallTileID    = 92
	DefaultFloorTileID   = 5
	DefaultCorridorWidth = 3
)

// GenOptions controls procedural maze generation.
type GenOptions struct {
	Width, Height int
	CorridorWidth int // hallway width in tiles
	WallID        int
	FloorID       int
	TileSize      int
	Seed          int64
}

// DefaultGenOptions returns the map maker defaults with the given seed.
func DefaultGenOptions(seed int64) GenOptions {
	return GenOptions{
		Width:         DefaultGridW,
		Height:        DefaultGridH,
		CorridorWidth: DefaultCorridorWidth,
		WallID:        DefaultWallTileID,
		FloorID:       DefaultFloorTileID,
		TileSize:      DefaultTileSize,
		Seed:          seed,
	}
}

// Generate carves a maze with a depth-first search over a coarse cell grid,
// inflates the passages to CorridorWidth, adds a few loops and walls in the
// border. The player is placed near the centre and the goal on the reachable
// cell farthest from it. The same options always produce the same map.
func Generate(opts GenOptions) (*Map, error) {
	corridor := max(1, opts.CorridorWidth)
	if opts.Width < corridor+4 || opts.Height < corridor+4 {
		return nil, fmt.Errorf("%w: %dx%d too small for corridor width %d", ErrInvalidMap, opts.Width, opts.Height, corridor)
	}
	if IsWallTile(opts.FloorID) || opts.FloorID < 0 {
		return nil, fmt.Errorf("%w: floor tile %d is not walkable", ErrInvalidMap, opts.FloorID)
	}
	if opts.TileSize <= 0 {
		opts.TileSize = DefaultTileSize
	}
	rng := rand.New(rand.NewSource(opts.Seed)) // #nosec G404 -- level layout only

	w, h := opts.Width, opts.Height
	step := corridor + 1
	cw := max(2, (w-2-corridor)/step+1)
	ch := max(2, (h-2-corridor)/step+1)

	grid := make([][]int, h)
	for y := range grid {
		grid[y] = make([]int, w)
		for x := range grid[y] {
			grid[y][x] = opts.WallID
		}
	}

	cellToTile := func(c Cell) Cell {
		return Cell{X: 1 + c.X*step, Y: 1 + c.Y*step}
	}
	carve := func(t Cell) {
		half := corridor / 2
		for yy := t.Y - half; yy < t.Y-half+corridor; yy++ {
			for xx := t.X - half; xx < t.X-half+corridor; xx++ {
				if xx >= 0 && xx < w && yy >= 0 && yy < h {
					grid[yy][xx] = opts.FloorID
				}
			}
		}
	}
	carveLine := func(a, b Cell) {
		steps := max(absInt(b.X-a.X), absInt(b.Y-a.Y))
		if steps == 0 {
			carve(a)
			return
		}
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			carve(Cell{
				X: int(math.Round(float64(a.X) + float64(b.X-a.X)*t)),
				Y: int(math.Round(float64(a.Y) + float64(b.Y-a.Y)*t)),
			})
		}
	}

	dirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	visited := make([][]bool, ch)
	for y := range visited {
		visited[y] = make([]bool, cw)
	}
	start := Cell{X: rng.Intn(cw), Y: rng.Intn(ch)}
	visited[start.Y][start.X] = true
	carve(cellToTile(start))
	stack := []Cell{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		var neighbors []Cell
		for _, d := range dirs {
			n := Cell{X: cur.X + d[0], Y: cur.Y + d[1]}
			if n.X >= 0 && n.X < cw && n.Y >= 0 && n.Y < ch && !visited[n.Y][n.X] {
				neighbors = append(neighbors, n)
			}
		}
		if len(neighbors) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		next := neighbors[rng.Intn(len(neighbors))]
		visited[next.Y][next.X] = true
		carveLine(cellToTile(cur), cellToTile(next))
		carve(cellToTile(next))
		stack = append(stack, next)
	}

	// A few loops so the maze is not a perfect tree.
	for i := 0; i < (cw*ch)/12; i++ {
		c := Cell{X: rng.Intn(cw), Y: rng.Intn(ch)}
		d := dirs[rng.Intn(len(dirs))]
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if n.X >= 0 && n.X < cw && n.Y >= 0 && n.Y < ch {
			carveLine(cellToTile(c), cellToTile(n))
		}
	}

	for x := 0; x < w; x++ {
		grid[0][x] = opts.WallID
		grid[h-1][x] = opts.WallID
	}
	for y := 0; y < h; y++ {
		grid[y][0] = opts.WallID
		grid[y][w-1] = opts.WallID
	}

	m := &Map{
		Version:    1,
		GridW:      w,
		GridH:      h,
		TileSizePx: opts.TileSize,
		Tiles:      grid,
		Meta: &MapMeta{
			Notes:          fmt.Sprintf("generated seed=%d corridor=%d", opts.Seed, corridor),
			FOVRadiusTiles: DefaultFOVRadius,
		},
	}
	player, ok := m.nearestWalkable(Cell{X: w / 2, Y: h / 2})
	if !ok {
		return nil, ErrNoWalkableCell
	}
	goal := m.farthestReachable(player)
	m.Entities = []Entity{
		{Kind: KindPlayer, X: player.X, Y: player.Y},
		{Kind: KindGoal, X: goal.X, Y: goal.Y},
	}
	return m, nil
}

// nearestWalkable returns the walkable cell closest to c, ties broken row-major.
func (m *Map) nearestWalkable(c Cell) (Cell, bool) {
	best := Cell{}
	bestD := -1
	for y := 0; y < m.GridH; y++ {
		for x := 0; x < m.GridW; x++ {
			if !m.Walkable(x, y) {
				continue
			}
			d := (x-c.X)*(x-c.X) + (y-c.Y)*(y-c.Y)
			if bestD < 0 || d < bestD {
				best, bestD = Cell{X: x, Y: y}, d
			}
		}
	}
	return best, bestD >= 0
}

// farthestReachable returns the reachable cell with the largest step distance
// from start, ties broken row-major.
func (m *Map) farthestReachable(start Cell) Cell {
	dist := m.Reachable(start)
	best := start
	bestD := 0
	for y := 0; y < m.GridH; y++ {
		for x := 0; x < m.GridW; x++ {
			c := Cell{X: x, Y: y}
			if d, ok := dist[c]; ok && d > bestD {
				best, bestD = c, d
			}
		}
	}
	return best
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
