package maze

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const smallMapJSON = `{
  "grid_w": 3,
  "grid_h": 2,
  "tile_size_px": 16,
  "tiles": [[5, 92, 5], [5, 5, -1]],
  "entities": [{"kind": "player", "x": 0, "y": 0}, {"kind": "goal", "x": 2, "y": 0}]
}`

func TestParse_ValidMap(t *testing.T) {
	m, err := Parse([]byte(smallMapJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.GridW != 3 || m.GridH != 2 || m.TileSizePx != 16 {
		t.Fatalf("unexpected header %dx%d ts=%d", m.GridW, m.GridH, m.TileSizePx)
	}
	if id, ok := m.TileAt(1, 0); !ok || id != 92 {
		t.Fatalf("TileAt(1,0)=%d,%v, want 92,true", id, ok)
	}
	if _, ok := m.TileAt(3, 0); ok {
		t.Fatal("TileAt off the grid should report ok=false")
	}
	p, ok := m.Player()
	if !ok || p.X != 0 || p.Y != 0 {
		t.Fatalf("Player()=%+v,%v", p, ok)
	}
	if m.CountKind(KindGoal) != 1 {
		t.Fatalf("expected one goal, got %d", m.CountKind(KindGoal))
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"malformed":     `{"grid_w": 3,`,
		"row count":     `{"grid_w":1,"grid_h":2,"tile_size_px":8,"tiles":[[5]],"entities":[]}`,
		"ragged row":    `{"grid_w":2,"grid_h":1,"tile_size_px":8,"tiles":[[5]],"entities":[]}`,
		"tile size":     `{"grid_w":1,"grid_h":1,"tile_size_px":0,"tiles":[[5]],"entities":[]}`,
		"entity bounds": `{"grid_w":1,"grid_h":1,"tile_size_px":8,"tiles":[[5]],"entities":[{"kind":"goal","x":1,"y":0}]}`,
		"negative pos":  `{"grid_w":1,"grid_h":1,"tile_size_px":8,"tiles":[[5]],"entities":[{"kind":"goal","x":0,"y":-1}]}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			if !errors.Is(err, ErrInvalidMap) {
				t.Fatalf("expected ErrInvalidMap, got %v", err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing map file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped ErrNotExist, got %v", err)
	}
}

func TestSave_WritesLoadableMap(t *testing.T) {
	m := newTestMap(4, 3, withEntity(KindPlayer, 1, 1))
	path := filepath.Join(t.TempDir(), "level.json")
	if err := m.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"tile_size_px": 32`) {
		t.Fatalf("saved document missing tile_size_px:\n%s", data)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.GridW != 4 || got.GridH != 3 || len(got.Entities) != 1 {
		t.Fatalf("loaded map differs: %+v", got)
	}
}

func TestFirstWalkable(t *testing.T) {
	m := newTestMap(3, 2,
		withTile(0, 0, -1), withTile(1, 0, testWall), withTile(2, 0, 300))
	x, y, err := m.FirstWalkable()
	if err != nil {
		t.Fatal(err)
	}
	// 300 is unclassified and therefore walkable.
	if x != 2 || y != 0 {
		t.Fatalf("FirstWalkable=(%d,%d), want (2,0)", x, y)
	}
}
