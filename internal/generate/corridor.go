package generate

import (
	"math/rand"

	"lightcast/internal/gamemap"
)

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// corridorBends returns the waypoints of a tunnel from (x1,y1) to (x2,y2).
// Consecutive waypoints always share a row or a column.
func corridorBends(x1, y1, x2, y2 int, style CorridorStyle, rng *rand.Rand) []gamemap.Point {
	from, to := gamemap.Point{X: x1, Y: y1}, gamemap.Point{X: x2, Y: y2}
	switch style {
	case CorridorZShaped:
		midY := (y1 + y2) / 2
		return []gamemap.Point{from, {X: x1, Y: midY}, {X: x2, Y: midY}, to}
	case CorridorStraight:
		return []gamemap.Point{from, {X: x2, Y: y1}, to}
	}
	if rng.Intn(2) == 0 {
		return []gamemap.Point{from, {X: x2, Y: y1}, to}
	}
	return []gamemap.Point{from, {X: x1, Y: y2}, to}
}

// carveCorridor digs a tunnel between (x1,y1) and (x2,y2) in cfg's style.
func carveCorridor(gmap *gamemap.GameMap, x1, y1, x2, y2 int, cfg *Config) {
	bends := corridorBends(x1, y1, x2, y2, cfg.CorridorStyle, cfg.Rand)
	for i := 1; i < len(bends); i++ {
		carveSegment(gmap, bends[i-1], bends[i])
	}
}

// carveSegment floors every tile of an axis-aligned segment, endpoints included.
func carveSegment(gmap *gamemap.GameMap, a, b gamemap.Point) {
	dx, dy := sign(b.X-a.X), sign(b.Y-a.Y)
	for p := a; ; p.X, p.Y = p.X+dx, p.Y+dy {
		if gmap.InBounds(p.X, p.Y) {
			gmap.Set(p.X, p.Y, gamemap.MakeFloor())
		}
		if p == b {
			return
		}
	}
}

// hangDoors turns corridor mouths on the wall ring around each room into
// doors. Doors are walkable, so connectivity is unchanged; they only stop
// light from spilling between rooms.
func hangDoors(gmap *gamemap.GameMap, chance int, rng *rand.Rand) {
	for _, room := range gmap.Rooms {
		for x := room.X1; x <= room.X2; x++ {
			maybeDoor(gmap, x, room.Y1-1, chance, rng)
			maybeDoor(gmap, x, room.Y2+1, chance, rng)
		}
		for y := room.Y1; y <= room.Y2; y++ {
			maybeDoor(gmap, room.X1-1, y, chance, rng)
			maybeDoor(gmap, room.X2+1, y, chance, rng)
		}
	}
}

func maybeDoor(gmap *gamemap.GameMap, x, y, chance int, rng *rand.Rand) {
	if !gmap.InBounds(x, y) || gmap.At(x, y).Kind != gamemap.TileFloor {
		return
	}
	if insideAnyRoom(gmap, x, y) {
		return
	}
	if rng.Intn(100) < chance {
		gmap.Set(x, y, gamemap.MakeDoor())
	}
}

func insideAnyRoom(gmap *gamemap.GameMap, x, y int) bool {
	for _, r := range gmap.Rooms {
		if x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2 {
			return true
		}
	}
	return false
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
