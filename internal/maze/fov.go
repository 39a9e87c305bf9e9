package maze

// DefaultFOVRadius is the sight radius in tiles used by the map maker.
const DefaultFOVRadius = 7

// InRadius reports whether (x,y) lies within radius tiles of (ox,oy).
// Compares squared distances, so a cell at exactly radius is included.
func InRadius(ox, oy, x, y, radius int) bool {
	dx := x - ox
	dy := y - oy
	return dx*dx+dy*dy <= radius*radius
}

// Rect is an inclusive cell rectangle.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Empty reports whether the rectangle contains no cells.
func (r Rect) Empty() bool {
	return r.MaxX < r.MinX || r.MaxY < r.MinY
}

// Visible reports whether the cell is inside the player's field of view.
func (s *Sim) Visible(x, y int) bool {
	if !s.m.InBounds(x, y) {
		return false
	}
	return InRadius(s.playerX, s.playerY, x, y, s.fovRadius)
}

// VisibleBounds returns the square around the player that can contain visible
// cells, clamped to the grid.
func (s *Sim) VisibleBounds() Rect {
	r := s.fovRadius
	return Rect{
		MinX: max(0, s.playerX-r),
		MinY: max(0, s.playerY-r),
		MaxX: min(s.m.GridW-1, s.playerX+r),
		MaxY: min(s.m.GridH-1, s.playerY+r),
	}
}

// VisibleCells calls fn for every visible cell, row by row.
func (s *Sim) VisibleCells(fn func(x, y int)) {
	b := s.VisibleBounds()
	for y := b.MinY; y <= b.MaxY; y++ {
		for x := b.MinX; x <= b.MaxX; x++ {
			if InRadius(s.playerX, s.playerY, x, y, s.fovRadius) {
				fn(x, y)
			}
		}
	}
}

// VisibleEntities returns the non-player entities inside the field of view.
func (s *Sim) VisibleEntities() []Entity {
	var out []Entity
	for _, e := range s.entities {
		if s.Visible(e.X, e.Y) {
			out = append(out, e)
		}
	}
	return out
}
