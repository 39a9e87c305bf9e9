package maze

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Entity kinds written by the map maker.
const (
	KindPlayer  = "player"
	KindGoal    = "goal"
	KindTank    = "tank"
	KindShooter = "shooter"
)

var (
	// ErrInvalidMap is wrapped by every map parse or validation failure.
	ErrInvalidMap = errors.New("maze: invalid map")
	// ErrNoWalkableCell is returned when no spawn cell can be found.
	ErrNoWalkableCell = errors.New("maze: no walkable cell")
)

// Entity is a spawn marker placed on the grid.
type Entity struct {
	Kind string `json:"kind"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// MapMeta carries optional editor hints.
type MapMeta struct {
	Notes          string `json:"notes,omitempty"`
	FOVRadiusTiles int    `json:"fov_radius_tiles,omitempty"`
}

// Map is a level grid. Tiles are indexed [row][col]; a map is not modified
// after it has been loaded.
type Map struct {
	Version    int      `json:"version,omitempty"`
	GridW      int      `json:"grid_w"`
	GridH      int      `json:"grid_h"`
	TileSizePx int      `json:"tile_size_px"`
	Tiles      [][]int  `json:"tiles"`
	Entities   []Entity `json:"entities"`
	Meta       *MapMeta `json:"meta,omitempty"`
}

// Load reads and validates a map file.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("maze: read map %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a map document and validates it.
func Parse(data []byte) (*Map, error) {
	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMap, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the structural invariants of the grid and its entities.
func (m *Map) Validate() error {
	if m.GridW <= 0 || m.GridH <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidMap, m.GridW, m.GridH)
	}
	if m.TileSizePx <= 0 {
		return fmt.Errorf("%w: tile_size_px %d", ErrInvalidMap, m.TileSizePx)
	}
	if len(m.Tiles) != m.GridH {
		return fmt.Errorf("%w: %d rows, grid_h is %d", ErrInvalidMap, len(m.Tiles), m.GridH)
	}
	for y, row := range m.Tiles {
		if len(row) != m.GridW {
			return fmt.Errorf("%w: row %d has %d columns, grid_w is %d", ErrInvalidMap, y, len(row), m.GridW)
		}
	}
	for i, e := range m.Entities {
		if !m.InBounds(e.X, e.Y) {
			return fmt.Errorf("%w: entity %d (%s) at (%d,%d) out of bounds", ErrInvalidMap, i, e.Kind, e.X, e.Y)
		}
	}
	return nil
}

// Save writes the map as indented JSON.
func (m *Map) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("maze: encode map: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("maze: write map %s: %w", path, err)
	}
	return nil
}

// InBounds reports whether (x,y) lies on the grid.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.GridW && y < m.GridH
}

// TileAt returns the tile id at (x,y); ok is false off the grid.
func (m *Map) TileAt(x, y int) (id int, ok bool) {
	if !m.InBounds(x, y) {
		return -1, false
	}
	return m.Tiles[y][x], true
}

// Walkable reports whether (x,y) is on the grid and not a wall or empty tile.
func (m *Map) Walkable(x, y int) bool {
	id, ok := m.TileAt(x, y)
	return ok && ClassifyTile(id).Walkable()
}

// Player returns the first player entity.
func (m *Map) Player() (Entity, bool) {
	for _, e := range m.Entities {
		if e.Kind == KindPlayer {
			return e, true
		}
	}
	return Entity{}, false
}

// FirstWalkable scans row-major for the first walkable cell.
func (m *Map) FirstWalkable() (x, y int, err error) {
	for y := 0; y < m.GridH; y++ {
		for x := 0; x < m.GridW; x++ {
			if m.Walkable(x, y) {
				return x, y, nil
			}
		}
	}
	return 0, 0, ErrNoWalkableCell
}

// CountKind returns how many entities of the given kind the map holds.
func (m *Map) CountKind(kind string) int {
	n := 0
	for _, e := range m.Entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
