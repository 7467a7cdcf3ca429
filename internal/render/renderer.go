// Package render draws a lit tile map onto a tcell screen.
package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"lightcast/internal/component"
	"lightcast/internal/ecs"
	"lightcast/internal/gamemap"
)

// HUDHeight is the number of rows reserved below the map.
const HUDHeight = 3

// Renderer draws the world onto a tcell screen.
type Renderer struct {
	screen  tcell.Screen
	camera  *Camera
	palette Palette
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen:  screen,
		camera:  NewCamera(0, 0, w, max(0, h-HUDHeight)),
		palette: DefaultPalette,
	}
}

// SetPalette replaces the shading palette.
func (r *Renderer) SetPalette(p Palette) { r.palette = p }

// Resize re-reads the screen size; call it after a resize event.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.Resize(w, max(0, h-HUDHeight))
}

// Follow recenters the camera on (x, y) within a map of the given size.
func (r *Renderer) Follow(x, y, mapW, mapH int) { r.camera.Follow(x, y, mapW, mapH) }

// WorldToScreen converts world coordinates to screen coordinates.
func (r *Renderer) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(wx, wy)
}

// DrawFrame renders tiles and entities. It does not call Show.
func (r *Renderer) DrawFrame(w *ecs.World, gmap *gamemap.GameMap) {
	r.screen.Clear()
	r.drawMap(gmap)
	r.drawEntities(w, gmap)
}

// drawMap paints explored tiles: lit ones on a shaded background, the
// rest in the memory colour. Unexplored tiles stay blank.
func (r *Renderer) drawMap(gmap *gamemap.GameMap) {
	for y := range gmap.Height {
		for x := range gmap.Width {
			tile := gmap.At(x, y)
			if !tile.Explored && tile.LightLevel == 0 {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			style := tcell.StyleDefault.Foreground(r.palette.Memory).Background(tcell.ColorBlack)
			if tile.LightLevel > 0 {
				style = tcell.StyleDefault.
					Foreground(r.palette.Ink(tile.LightLevel)).
					Background(r.palette.Shade(tile.LightLevel))
			}
			r.putCell(sx, sy, tileGlyph(tile.Kind), style)
		}
	}
}

type drawable struct {
	pos  component.Position
	rend component.Renderable
}

// drawEntities renders Renderable entities standing on lit tiles, plus
// every player wherever they are, lowest RenderOrder first.
func (r *Renderer) drawEntities(w *ecs.World, gmap *gamemap.GameMap) {
	ids := w.Query(component.CRenderable, component.CPosition)
	list := make([]drawable, 0, len(ids))
	for _, id := range ids {
		pos := w.Get(id, component.CPosition).(component.Position)
		rend := w.Get(id, component.CRenderable).(component.Renderable)
		if !gmap.InBounds(pos.X, pos.Y) {
			continue
		}
		if gmap.At(pos.X, pos.Y).LightLevel == 0 && !w.Has(id, component.CTagPlayer) {
			continue
		}
		list = append(list, drawable{pos: pos, rend: rend})
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].rend.RenderOrder < list[j].rend.RenderOrder
	})

	for _, d := range list {
		sx, sy, onScreen := r.camera.WorldToScreen(d.pos.X, d.pos.Y)
		if !onScreen {
			continue
		}
		level := gmap.At(d.pos.X, d.pos.Y).LightLevel
		bg := tcell.ColorBlack
		if level > 0 {
			bg = r.palette.Shade(level)
		}
		r.putCell(sx, sy, d.rend.Glyph, tcell.StyleDefault.Foreground(d.rend.FGColor).Background(bg))
	}
}

// DrawHUD writes up to HUDHeight status lines below the map and shows the
// frame.
func (r *Renderer) DrawHUD(lines []string) {
	sw, sh := r.screen.Size()
	top := sh - HUDHeight
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := range sw {
		r.screen.SetContent(x, top, '─', nil, style)
	}
	if len(lines) > HUDHeight-1 {
		lines = lines[len(lines)-(HUDHeight-1):]
	}
	for i, line := range lines {
		r.drawText(0, top+1+i, line, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}
	r.screen.Show()
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
}

// putCell draws glyph into the CellWidth columns at (x, y), padding
// narrow glyphs so the background covers the whole tile.
func (r *Renderer) putCell(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) < CellWidth {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
