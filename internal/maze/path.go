package maze

import (
	"container/heap"
	"math"
)

var stepDirs = [8]Direction{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// neighbours calls fn for every walkable cell one step from c. A diagonal step
// is only offered when both orthogonal cells beside it are walkable too.
func (m *Map) neighbours(c Cell, fn func(n Cell, cost float64)) {
	for _, d := range stepDirs {
		n := Cell{X: c.X + d.DX, Y: c.Y + d.DY}
		if !m.Walkable(n.X, n.Y) {
			continue
		}
		cost := 1.0
		if d.DX != 0 && d.DY != 0 {
			if !m.Walkable(n.X, c.Y) || !m.Walkable(c.X, n.Y) {
				continue
			}
			cost = math.Sqrt2
		}
		fn(n, cost)
	}
}

// octile is the exact 8-way distance on an open grid.
func octile(a, b Cell) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	return math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
}

// frontier is the A* open set ordered by estimated total cost.
type frontier []searchEntry

type searchEntry struct {
	cell Cell
	f    float64
}

func (q frontier) Len() int           { return len(q) }
func (q frontier) Less(i, j int) bool { return q[i].f < q[j].f }
func (q frontier) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *frontier) Push(x any)        { *q = append(*q, x.(searchEntry)) }
func (q *frontier) Pop() any {
	old := *q
	e := old[len(old)-1]
	*q = old[:len(old)-1]
	return e
}

// FindPath returns the cells from start to goal inclusive, or nil when the
// goal cannot be reached. Stale frontier entries are skipped on pop rather
// than updated in place.
func (m *Map) FindPath(start, goal Cell) []Cell {
	if !m.Walkable(start.X, start.Y) || !m.Walkable(goal.X, goal.Y) {
		return nil
	}
	cost := map[Cell]float64{start: 0}
	from := map[Cell]Cell{}
	done := map[Cell]bool{}
	q := &frontier{{cell: start, f: octile(start, goal)}}

	for q.Len() > 0 {
		cur := heap.Pop(q).(searchEntry).cell
		if cur == goal {
			return walkBack(from, start, goal)
		}
		if done[cur] {
			continue
		}
		done[cur] = true
		m.neighbours(cur, func(n Cell, step float64) {
			if done[n] {
				return
			}
			g := cost[cur] + step
			if old, seen := cost[n]; seen && g >= old {
				return
			}
			cost[n] = g
			from[n] = cur
			heap.Push(q, searchEntry{cell: n, f: g + octile(n, goal)})
		})
	}
	return nil
}

// walkBack follows the predecessor links from goal to start.
func walkBack(from map[Cell]Cell, start, goal Cell) []Cell {
	n := 1
	for c := goal; c != start; c = from[c] {
		n++
	}
	path := make([]Cell, n)
	for i, c := n-1, goal; i >= 0; i-- {
		path[i] = c
		c = from[c]
	}
	return path
}

// Reachable returns the breadth-first step distance from start to every
// walkable cell it can reach, using the same 8-way rule as FindPath.
func (m *Map) Reachable(start Cell) map[Cell]int {
	dist := map[Cell]int{}
	if !m.Walkable(start.X, start.Y) {
		return dist
	}
	dist[start] = 0
	queue := []Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		m.neighbours(cur, func(n Cell, _ float64) {
			if _, seen := dist[n]; seen {
				return
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		})
	}
	return dist
}
