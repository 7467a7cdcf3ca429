package system

import (
	"lightcast/internal/component"
	"lightcast/internal/ecs"
	"lightcast/internal/gamemap"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK       MoveResult = iota // position updated
	MoveBlocked                    // wall, pillar or out-of-bounds
	MoveOccupied                   // another lantern bearer stands there
)

// TryMove attempts to move entity id by (dx, dy) on gmap.
// Torches never block; other players do.
func TryMove(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, dx, dy int) MoveResult {
	pos, ok := w.Get(id, component.CPosition).(component.Position)
	if !ok {
		return MoveBlocked
	}
	nx, ny := pos.X+dx, pos.Y+dy

	if !gmap.IsWalkable(nx, ny) {
		return MoveBlocked
	}
	for _, other := range w.Query(component.CTagPlayer, component.CPosition) {
		if other == id {
			continue
		}
		op := w.Get(other, component.CPosition).(component.Position)
		if op.X == nx && op.Y == ny {
			return MoveOccupied
		}
	}

	w.Add(id, component.Position{X: nx, Y: ny})
	return MoveOK
}
