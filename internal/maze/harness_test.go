package maze

import "testing"

const (
	testFloor = 5
	testWall  = 92
)

// mapOption is a builder function applied to a test map.
type mapOption func(*Map)

// withTile overrides a single cell.
func withTile(x, y, id int) mapOption {
	return func(m *Map) { m.Tiles[y][x] = id }
}

// withWallColumn fills column x from y0 to y1 inclusive with walls.
func withWallColumn(x, y0, y1 int) mapOption {
	return func(m *Map) {
		for y := y0; y <= y1; y++ {
			m.Tiles[y][x] = testWall
		}
	}
}

// withEntity places a marker.
func withEntity(kind string, x, y int) mapOption {
	return func(m *Map) {
		m.Entities = append(m.Entities, Entity{Kind: kind, X: x, Y: y})
	}
}

// newTestMap builds an all-floor w×h map with 32px tiles.
func newTestMap(w, h int, opts ...mapOption) *Map {
	m := &Map{GridW: w, GridH: h, TileSizePx: 32}
	m.Tiles = make([][]int, h)
	for y := range m.Tiles {
		m.Tiles[y] = make([]int, w)
		for x := range m.Tiles[y] {
			m.Tiles[y][x] = testFloor
		}
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// newTestSim builds a Sim or fails the test.
func newTestSim(t *testing.T, m *Map, opts ...Option) *Sim {
	t.Helper()
	s, err := NewSim(m, opts...)
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	return s
}

// runTick queues c and fires exactly one tick.
func runTick(s *Sim, c Controls) {
	s.HandleControls(c)
	s.Tick()
}
