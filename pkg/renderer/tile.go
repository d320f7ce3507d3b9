package renderer

import "image"

// Tile is a rectangular, non-overlapping region of the image. Tiles
// partition the framebuffer so that concurrent workers never write the
// same pixel, following the teacher's tile_renderer.go bounds model.
type Tile struct {
	Bounds image.Rectangle
	ID     int
}

// splitTiles partitions a width x height image into roughly tileSize x
// tileSize tiles, row-major, matching the teacher's tiling scheme.
func splitTiles(width, height, tileSize int) []Tile {
	var tiles []Tile
	id := 0
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			maxX := x + tileSize
			if maxX > width {
				maxX = width
			}
			maxY := y + tileSize
			if maxY > height {
				maxY = height
			}
			tiles = append(tiles, Tile{
				Bounds: image.Rect(x, y, maxX, maxY),
				ID:     id,
			})
			id++
		}
	}
	return tiles
}
