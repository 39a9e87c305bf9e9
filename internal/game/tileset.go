package game

import "image"

// tileSource returns the region of a tileset texture holding tile id. Tiles
// are square cells indexed row-major. An empty rectangle means the id is not
// in the texture.
func tileSource(id, tileSize, texW, texH int) image.Rectangle {
	if id < 0 || tileSize <= 0 {
		return image.Rectangle{}
	}
	cols := texW / tileSize
	if cols == 0 {
		return image.Rectangle{}
	}
	x := (id % cols) * tileSize
	y := (id / cols) * tileSize
	if y+tileSize > texH {
		return image.Rectangle{}
	}
	return image.Rect(x, y, x+tileSize, y+tileSize)
}
