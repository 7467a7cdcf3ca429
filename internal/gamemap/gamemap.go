package gamemap

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned by tile writes outside the grid.
var ErrOutOfBounds = errors.New("gamemap: coordinate out of bounds")

// Rect is an axis-aligned rectangle used for rooms.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// GameMap holds the tile grid and room list for one level.
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
	Rooms         []Rect
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// Size returns the grid dimensions.
func (m *GameMap) Size() (int, int) { return m.Width, m.Height }

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Walkable
}

// BlocksLight reports whether the tile at (x, y) is opaque.
// Anything outside the grid counts as opaque.
func (m *GameMap) BlocksLight(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Tiles[y][x].BlockLight
}

// SetLight assigns the light level of the tile at (x, y).
func (m *GameMap) SetLight(x, y int, level float64) error {
	if !m.InBounds(x, y) {
		return fmt.Errorf("set light (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	m.Tiles[y][x].LightLevel = level
	return nil
}

// Explore marks the tile at (x, y) as seen.
func (m *GameMap) Explore(x, y int) error {
	if !m.InBounds(x, y) {
		return fmt.Errorf("explore (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	m.Tiles[y][x].Explored = true
	return nil
}

// LitCount returns how many tiles currently have a nonzero light level.
func (m *GameMap) LitCount() int {
	n := 0
	for y := range m.Height {
		for x := range m.Width {
			if m.Tiles[y][x].LightLevel > 0 {
				n++
			}
		}
	}
	return n
}

// ResetLight zeroes every tile's light level.
func (m *GameMap) ResetLight() {
	for y := range m.Height {
		for x := range m.Width {
			m.Tiles[y][x].LightLevel = 0
		}
	}
}

// ResetExplored forgets everything that has been seen, e.g. when the level
// is regenerated.
func (m *GameMap) ResetExplored() {
	for y := range m.Height {
		for x := range m.Width {
			m.Tiles[y][x].Explored = false
		}
	}
}
