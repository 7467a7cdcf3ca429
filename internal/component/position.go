package component

import "lightcast/internal/ecs"

const CPosition ecs.ComponentType = 1

// Position is an entity's tile coordinate.
type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }
