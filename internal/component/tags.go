package component

import "lightcast/internal/ecs"

const (
	CTagPlayer ecs.ComponentType = 8
	CTagTorch  ecs.ComponentType = 9
)

// TagPlayer marks a lantern bearer controlled by a session.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagTorch marks a fixed light placed by the map layout.
type TagTorch struct{}

func (TagTorch) Type() ecs.ComponentType { return CTagTorch }
