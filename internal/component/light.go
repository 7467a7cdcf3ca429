package component

import "lightcast/internal/ecs"

const CLightSource ecs.ComponentType = 2

// LightSource makes an entity emit light every active tick.
// Radius is in tiles; with Gradient the intensity falls off with squared
// distance, otherwise every reachable tile is fully lit.
type LightSource struct {
	Radius   int
	Gradient bool
}

func (LightSource) Type() ecs.ComponentType { return CLightSource }
