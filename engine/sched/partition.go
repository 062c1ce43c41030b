package sched

import (
	"sync/atomic"

	"voxen/engine/render"
)

// RowBands splits the target into one contiguous row band per core. Bands
// are equal height with the last core absorbing the remainder; cores beyond
// the row count get empty bands.
func RowBands(width, height, cores int) []render.Tile {
	if cores < 1 {
		cores = 1
	}
	bands := make([]render.Tile, cores)
	per := height / cores
	for i := range bands {
		minY := i * per
		maxY := minY + per
		if i == cores-1 {
			maxY = height
		}
		if minY > height {
			minY = height
		}
		bands[i] = render.Tile{MinX: 0, MinY: minY, MaxX: width, MaxY: maxY}
	}
	return bands
}

// Tiles cuts the target into tileSize squares, with partial tiles at the
// right and bottom edges.
func Tiles(width, height, tileSize int) []render.Tile {
	if tileSize < 1 {
		tileSize = 1
	}
	var tiles []render.Tile
	for y := 0; y < height; y += tileSize {
		maxY := y + tileSize
		if maxY > height {
			maxY = height
		}
		for x := 0; x < width; x += tileSize {
			maxX := x + tileSize
			if maxX > width {
				maxX = width
			}
			tiles = append(tiles, render.Tile{MinX: x, MinY: y, MaxX: maxX, MaxY: maxY})
		}
	}
	return tiles
}

// TileQueue hands out tiles to however many cores ask, one fetch-add at a
// time. The owner resets it once per frame before publishing.
type TileQueue struct {
	tiles []render.Tile
	next  atomic.Uint32
}

// NewTileQueue wraps a precomputed tile list.
func NewTileQueue(tiles []render.Tile) *TileQueue {
	return &TileQueue{tiles: tiles}
}

// Next claims the next unclaimed tile. ok is false once the frame's tiles
// are exhausted.
func (q *TileQueue) Next() (t render.Tile, ok bool) {
	i := q.next.Add(1) - 1
	if int(i) >= len(q.tiles) {
		return render.Tile{}, false
	}
	return q.tiles[i], true
}

// Reset rearms the queue for the next frame. Call only between frames.
func (q *TileQueue) Reset() { q.next.Store(0) }
