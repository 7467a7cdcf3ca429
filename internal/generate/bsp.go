package generate

import (
	"math/rand"

	"lightcast/internal/gamemap"
)

// Config drives procedural generation for one level.
type Config struct {
	MapWidth, MapHeight int
	MinLeafSize         int
	MaxLeafSize         int
	MinRoomSize         int
	RoomPadding         int
	CorridorStyle       CorridorStyle
	DoorChance          int // 0–100, per corridor mouth
	TorchChance         int // 0–100, per room
	PillarChance        int // 0–100, per candidate tile in rooms of 5×5 or larger
	Rand                *rand.Rand
}

// DefaultConfig returns the settings the viewer uses for generated levels.
func DefaultConfig(rng *rand.Rand) *Config {
	return &Config{
		MapWidth:      60,
		MapHeight:     30,
		MinLeafSize:   8,
		MaxLeafSize:   20,
		MinRoomSize:   4,
		RoomPadding:   1,
		CorridorStyle: CorridorLShaped,
		DoorChance:    40,
		TorchChance:   70,
		PillarChance:  25,
		Rand:          rng,
	}
}

// partition is a node of the BSP tree; leaves own at most one room.
type partition struct {
	x, y, w, h  int
	front, back *partition
	room        *gamemap.Rect
}

func (p *partition) leaf() bool { return p.front == nil }

// subdivide splits p recursively until the pieces are small enough.
// Oversized pieces always split; others split three times in four.
func (p *partition) subdivide(cfg *Config) {
	oversized := p.w > cfg.MaxLeafSize || p.h > cfg.MaxLeafSize
	if !oversized && cfg.Rand.Float64() <= 0.25 {
		return
	}
	if !p.split(cfg) {
		return
	}
	p.front.subdivide(cfg)
	p.back.subdivide(cfg)
}

// split cuts p across its longer axis (or a random one when roughly square).
func (p *partition) split(cfg *Config) bool {
	horizontal := cfg.Rand.Intn(2) == 0
	switch {
	case p.w > p.h && float64(p.w)/float64(p.h) >= 1.25:
		horizontal = false
	case p.h > p.w && float64(p.h)/float64(p.w) >= 1.25:
		horizontal = true
	}

	span := p.w
	if horizontal {
		span = p.h
	}
	lo, hi := cfg.MinLeafSize, span-cfg.MinLeafSize
	if span <= 2*cfg.MinLeafSize || lo >= hi {
		return false
	}
	cut := lo + cfg.Rand.Intn(hi-lo+1)

	if horizontal {
		p.front = &partition{x: p.x, y: p.y, w: p.w, h: cut}
		p.back = &partition{x: p.x, y: p.y + cut, w: p.w, h: p.h - cut}
	} else {
		p.front = &partition{x: p.x, y: p.y, w: cut, h: p.h}
		p.back = &partition{x: p.x + cut, y: p.y, w: p.w - cut, h: p.h}
	}
	return true
}

// carveRooms places one room in every leaf, keeping a one-tile wall border
// around the map.
func (p *partition) carveRooms(gmap *gamemap.GameMap, cfg *Config) {
	if !p.leaf() {
		p.front.carveRooms(gmap, cfg)
		p.back.carveRooms(gmap, cfg)
		return
	}
	pad := cfg.RoomPadding
	maxW, maxH := p.w-2*pad, p.h-2*pad

	rw := cfg.MinRoomSize + cfg.Rand.Intn(max(1, maxW-cfg.MinRoomSize+1))
	rh := cfg.MinRoomSize + cfg.Rand.Intn(max(1, maxH-cfg.MinRoomSize+1))
	rw = max(min(rw, maxW), 3)
	rh = max(min(rh, maxH), 3)

	rx := max(p.x+pad+cfg.Rand.Intn(max(1, p.w-rw-2*pad+1)), 1)
	ry := max(p.y+pad+cfg.Rand.Intn(max(1, p.h-rh-2*pad+1)), 1)
	rw = min(rw, gmap.Width-rx-1)
	rh = min(rh, gmap.Height-ry-1)
	if rw < 3 || rh < 3 {
		return
	}

	room := gamemap.Rect{X1: rx, Y1: ry, X2: rx + rw - 1, Y2: ry + rh - 1}
	p.room = &room
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
	gmap.Rooms = append(gmap.Rooms, room)
}

// anyRoom returns some room below p, preferring the front subtree.
func (p *partition) anyRoom() *gamemap.Rect {
	if p.room != nil || p.leaf() {
		return p.room
	}
	if r := p.front.anyRoom(); r != nil {
		return r
	}
	return p.back.anyRoom()
}

// link tunnels between sibling subtrees, bottom-up, so the whole tree ends
// up connected.
func (p *partition) link(gmap *gamemap.GameMap, cfg *Config) {
	if p.leaf() {
		return
	}
	p.front.link(gmap, cfg)
	p.back.link(gmap, cfg)

	a, b := p.front.anyRoom(), p.back.anyRoom()
	if a == nil || b == nil {
		return
	}
	ax, ay := a.Center()
	bx, by := b.Center()
	carveCorridor(gmap, ax, ay, bx, by, cfg)
}

// Generate runs BSP generation and returns the level with its start point
// and torch positions. Every walkable tile is reachable from the start.
func Generate(cfg *Config) *gamemap.Layout {
	gmap := gamemap.New(cfg.MapWidth, cfg.MapHeight)

	root := &partition{w: cfg.MapWidth, h: cfg.MapHeight}
	root.subdivide(cfg)
	root.carveRooms(gmap, cfg)
	root.link(gmap, cfg)
	hangDoors(gmap, cfg.DoorChance, cfg.Rand)

	l := &gamemap.Layout{Map: gmap, Start: gamemap.Point{X: 1, Y: 1}}
	if len(gmap.Rooms) > 0 {
		l.Start.X, l.Start.Y = gmap.Rooms[0].Center()
	}
	for _, room := range gmap.Rooms {
		placePillars(gmap, room, l.Start, cfg)
	}
	for _, room := range gmap.Rooms {
		if cfg.Rand.Intn(100) >= cfg.TorchChance {
			continue
		}
		if p, ok := torchSpot(gmap, room, l.Start, cfg); ok {
			l.Torches = append(l.Torches, p)
		}
	}
	return l
}

// placePillars drops single-tile pillars on the odd interior lattice of a
// room. Lattice tiles never touch each other or the room edge, so every
// pillar is ringed by floor and connectivity survives.
func placePillars(gmap *gamemap.GameMap, room gamemap.Rect, start gamemap.Point, cfg *Config) {
	if room.X2-room.X1 < 4 || room.Y2-room.Y1 < 4 {
		return
	}
	cx, cy := room.Center()
	for y := room.Y1 + 1; y < room.Y2; y += 2 {
		for x := room.X1 + 1; x < room.X2; x += 2 {
			if (x == cx && y == cy) || (x == start.X && y == start.Y) {
				continue
			}
			if cfg.Rand.Intn(100) < cfg.PillarChance {
				gmap.Set(x, y, gamemap.MakePillar())
			}
		}
	}
}

// torchSpot picks a walkable tile in room other than the start.
func torchSpot(gmap *gamemap.GameMap, room gamemap.Rect, start gamemap.Point, cfg *Config) (gamemap.Point, bool) {
	w := room.X2 - room.X1 + 1
	h := room.Y2 - room.Y1 + 1
	for range 8 {
		p := gamemap.Point{X: room.X1 + cfg.Rand.Intn(w), Y: room.Y1 + cfg.Rand.Intn(h)}
		if p != start && gmap.IsWalkable(p.X, p.Y) {
			return p, true
		}
	}
	return gamemap.Point{}, false
}
