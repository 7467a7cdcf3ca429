package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"lightcast/internal/gamemap"
)

// Palette holds the colours tiles are shaded between.
type Palette struct {
	Dark   colorful.Color // background of a lit tile at level ~0
	Light  colorful.Color // background of a tile at full level
	Memory tcell.Color    // foreground of explored but unlit tiles
}

// DefaultPalette is a warm lantern glow over cold stone.
var DefaultPalette = Palette{
	Dark:   colorful.Color{R: 0.04, G: 0.04, B: 0.08},
	Light:  colorful.Color{R: 0.95, G: 0.78, B: 0.45},
	Memory: tcell.NewRGBColor(70, 70, 90),
}

// Shade returns the background colour for a tile lit at level.
func (p Palette) Shade(level float64) tcell.Color {
	level = max(0, min(level, 1))
	return toTcell(p.Dark.BlendLab(p.Light, level).Clamped())
}

// Ink returns a foreground colour that stays legible on Shade(level).
func (p Palette) Ink(level float64) tcell.Color {
	level = max(0, min(level, 1))
	lo := colorful.Color{R: 0.75, G: 0.75, B: 0.8}
	hi := colorful.Color{R: 0.2, G: 0.12, B: 0.05}
	return toTcell(lo.BlendLab(hi, level).Clamped())
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// tileGlyph is the glyph drawn for a tile kind.
func tileGlyph(k gamemap.TileKind) string {
	switch k {
	case gamemap.TileWall:
		return "#"
	case gamemap.TileFloor:
		return "."
	case gamemap.TileDoor:
		return "+"
	case gamemap.TilePillar:
		return "o"
	case gamemap.TileGlass:
		return "="
	}
	return "?"
}
