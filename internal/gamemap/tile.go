package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileDoor
	TilePillar
	TileGlass
)

// Tile holds terrain and lighting state for one map cell.
//
// BlockLight is read by the lighting pass; LightLevel and Explored are the
// only fields it writes. Explored is never reset by lighting.
type Tile struct {
	Kind       TileKind
	Walkable   bool
	BlockLight bool
	Explored   bool
	LightLevel float64
}

// MakeWall returns a blocking, opaque wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall, Walkable: false, BlockLight: true}
}

// MakeFloor returns a passable, transparent floor tile.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor, Walkable: true, BlockLight: false}
}

// MakeDoor returns a closed door: passable, but opaque.
func MakeDoor() Tile {
	return Tile{Kind: TileDoor, Walkable: true, BlockLight: true}
}

// MakePillar returns a single-tile obstruction inside a room.
func MakePillar() Tile {
	return Tile{Kind: TilePillar, Walkable: false, BlockLight: true}
}

// MakeGlass returns a window: light passes, bodies don't.
func MakeGlass() Tile {
	return Tile{Kind: TileGlass, Walkable: false, BlockLight: false}
}
