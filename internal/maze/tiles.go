package maze

// TileClass identifies how the simulation treats a tile id.
type TileClass uint8

const (
	TileEmpty TileClass = iota // Negative id, nothing placed
	TileFloor                  // Walkable ground drawn in the background pass
	TileWall                   // Impassable structure drawn in the second pass
	TileInert                  // Any other id >= 0, walkable by default
)

// Tile id ranges in the tileset sheet.
const (
	floorLoMin = 4
	floorLoMax = 81
	floorHiMin = 191
	floorHiMax = 218
	wallMin    = 88
	wallMax    = 190
)

// IsFloorTile reports whether id is one of the floor sprites.
func IsFloorTile(id int) bool {
	return (id >= floorLoMin && id <= floorLoMax) || (id >= floorHiMin && id <= floorHiMax)
}

// IsWallTile reports whether id is one of the wall sprites.
func IsWallTile(id int) bool {
	return id >= wallMin && id <= wallMax
}

// ClassifyTile returns the class of a tile id.
func ClassifyTile(id int) TileClass {
	switch {
	case id < 0:
		return TileEmpty
	case IsWallTile(id):
		return TileWall
	case IsFloorTile(id):
		return TileFloor
	default:
		return TileInert
	}
}

// String returns a short label for debug output.
func (c TileClass) String() string {
	switch c {
	case TileEmpty:
		return "empty"
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileInert:
		return "inert"
	default:
		return "unknown"
	}
}

// Walkable reports whether a tile of this class may be entered.
// Only walls and empty cells block; unclassified ids are permissive.
func (c TileClass) Walkable() bool {
	return c == TileFloor || c == TileInert
}
