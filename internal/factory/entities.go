// Package factory assembles the entities that live in a lit world.
package factory

import (
	"github.com/gdamore/tcell/v2"

	"lightcast/internal/component"
	"lightcast/internal/ecs"
)

// Render orders: torches sit under lantern bearers.
const (
	torchOrder  = 1
	playerOrder = 10
)

// NewLanternBearer creates a player entity at (x, y) carrying lantern.
func NewLanternBearer(w *ecs.World, x, y int, lantern component.LightSource, color tcell.Color) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, lantern)
	w.Add(id, component.Renderable{
		Glyph:       "@",
		FGColor:     color,
		RenderOrder: playerOrder,
	})
	w.Add(id, component.TagPlayer{})
	return id
}

// NewTorch creates a fixed light of the given radius at (x, y).
func NewTorch(w *ecs.World, x, y, radius int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.LightSource{Radius: radius, Gradient: true})
	w.Add(id, component.Renderable{
		Glyph:       "*",
		FGColor:     tcell.ColorOrange,
		RenderOrder: torchOrder,
	})
	w.Add(id, component.TagTorch{})
	return id
}
