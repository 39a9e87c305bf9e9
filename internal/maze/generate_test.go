package maze

import (
	"errors"
	"reflect"
	"testing"
)

func TestGenerate_Deterministic(t *testing.T) {
	opts := DefaultGenOptions(42)
	opts.Width, opts.Height = 31, 23
	a, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !reflect.DeepEqual(a.Tiles, b.Tiles) || !reflect.DeepEqual(a.Entities, b.Entities) {
		t.Fatal("same seed produced different maps")
	}
}

func TestGenerate_ValidPlayableMap(t *testing.T) {
	for _, seed := range []int64{1, 7, 99, 2024} {
		opts := DefaultGenOptions(seed)
		opts.Width, opts.Height = 41, 29
		m, err := Generate(opts)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if err := m.Validate(); err != nil {
			t.Fatalf("seed %d: generated map invalid: %v", seed, err)
		}
		for x := 0; x < m.GridW; x++ {
			if !IsWallTile(m.Tiles[0][x]) || !IsWallTile(m.Tiles[m.GridH-1][x]) {
				t.Fatalf("seed %d: top/bottom border not walled at x=%d", seed, x)
			}
		}
		for y := 0; y < m.GridH; y++ {
			if !IsWallTile(m.Tiles[y][0]) || !IsWallTile(m.Tiles[y][m.GridW-1]) {
				t.Fatalf("seed %d: left/right border not walled at y=%d", seed, y)
			}
		}
		p, ok := m.Player()
		if !ok {
			t.Fatalf("seed %d: no player", seed)
		}
		var goal Entity
		for _, e := range m.Entities {
			if e.Kind == KindGoal {
				goal = e
			}
		}
		if goal == (Entity{}) {
			t.Fatalf("seed %d: no goal", seed)
		}
		if goal.X == p.X && goal.Y == p.Y {
			t.Fatalf("seed %d: goal placed on the player", seed)
		}
		if m.FindPath(Cell{p.X, p.Y}, Cell{goal.X, goal.Y}) == nil {
			t.Fatalf("seed %d: goal unreachable", seed)
		}
	}
}

func TestGenerate_TooSmall(t *testing.T) {
	opts := DefaultGenOptions(1)
	opts.Width, opts.Height = 5, 5
	if _, err := Generate(opts); !errors.Is(err, ErrInvalidMap) {
		t.Fatalf("expected ErrInvalidMap for tiny grid, got %v", err)
	}
}

func TestGenerate_WallFloorRejected(t *testing.T) {
	opts := DefaultGenOptions(1)
	opts.FloorID = DefaultWallTileID
	if _, err := Generate(opts); !errors.Is(err, ErrInvalidMap) {
		t.Fatalf("expected ErrInvalidMap for wall floor id, got %v", err)
	}
}
