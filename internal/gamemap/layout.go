package gamemap

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrEmptyLayout  = errors.New("gamemap: empty layout")
	ErrRaggedLayout = errors.New("gamemap: rows differ in length")
	ErrUnknownGlyph = errors.New("gamemap: unknown glyph")
)

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// Layout is a parsed or generated level: the grid plus where things go.
type Layout struct {
	Map     *GameMap
	Start   Point
	Torches []Point
}

// Parse builds a Layout from ASCII rows.
//
//	#  wall        .  floor      +  door
//	o  pillar      =  glass      *  torch (on floor)
//	@  start (on floor)
//
// Every row must have the same width. Without an '@' the start is the
// first floor tile in reading order.
func Parse(rows []string) (*Layout, error) {
	rows = slices.Clone(rows)
	for i := range rows {
		rows[i] = strings.TrimRight(rows[i], "\r")
	}
	// Tolerate a trailing blank line from file input.
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyLayout
	}
	width := len(rows[0])
	gmap := New(width, len(rows))
	l := &Layout{Map: gmap, Start: Point{-1, -1}}
	firstFloor := Point{-1, -1}

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has width %d, want %d: %w", y, len(row), width, ErrRaggedLayout)
		}
		for x := 0; x < width; x++ {
			c := row[x]
			switch c {
			case '#':
				gmap.Set(x, y, MakeWall())
			case '.':
				gmap.Set(x, y, MakeFloor())
			case '+':
				gmap.Set(x, y, MakeDoor())
			case 'o':
				gmap.Set(x, y, MakePillar())
			case '=':
				gmap.Set(x, y, MakeGlass())
			case '*':
				gmap.Set(x, y, MakeFloor())
				l.Torches = append(l.Torches, Point{x, y})
			case '@':
				gmap.Set(x, y, MakeFloor())
				l.Start = Point{x, y}
			default:
				return nil, fmt.Errorf("%q at (%d,%d): %w", c, x, y, ErrUnknownGlyph)
			}
			if firstFloor.X < 0 && gmap.At(x, y).Walkable {
				firstFloor = Point{x, y}
			}
		}
	}
	if l.Start.X < 0 {
		l.Start = firstFloor
	}
	if l.Start.X < 0 {
		l.Start = Point{}
	}
	return l, nil
}

// ParseString splits s on newlines and parses it.
func ParseString(s string) (*Layout, error) {
	return Parse(strings.Split(s, "\n"))
}
