package generate

import (
	"math/rand"
	"testing"

	"lightcast/internal/gamemap"
)

func testConfig(seed int64) *Config {
	cfg := DefaultConfig(rand.New(rand.NewSource(seed)))
	cfg.PillarChance = 50
	return cfg
}

// reachable flood-fills walkable tiles from start.
func reachable(gmap *gamemap.GameMap, start gamemap.Point) [][]bool {
	seen := make([][]bool, gmap.Height)
	for y := range seen {
		seen[y] = make([]bool, gmap.Width)
	}
	queue := []gamemap.Point{start}
	seen[start.Y][start.X] = true
	dirs := []gamemap.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range dirs {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if !gmap.IsWalkable(nx, ny) || seen[ny][nx] {
				continue
			}
			seen[ny][nx] = true
			queue = append(queue, gamemap.Point{X: nx, Y: ny})
		}
	}
	return seen
}

func TestGenerateAllWalkableReachable(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		l := Generate(testConfig(seed))
		gmap := l.Map
		if !gmap.IsWalkable(l.Start.X, l.Start.Y) {
			t.Fatalf("seed=%d: start %v is not walkable", seed, l.Start)
		}
		seen := reachable(gmap, l.Start)
		for y := range gmap.Height {
			for x := range gmap.Width {
				if gmap.IsWalkable(x, y) && !seen[y][x] {
					t.Errorf("seed=%d: unreachable tile at (%d,%d)", seed, x, y)
				}
			}
		}
	}
}

func TestGenerateRoomsDoNotOverlap(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rooms := Generate(testConfig(seed)).Map.Rooms
		if len(rooms) < 2 {
			t.Fatalf("seed=%d: only %d rooms", seed, len(rooms))
		}
		for i := 0; i < len(rooms); i++ {
			for j := i + 1; j < len(rooms); j++ {
				if rooms[i].Intersects(rooms[j]) {
					t.Errorf("seed=%d: room %d %v overlaps room %d %v", seed, i, rooms[i], j, rooms[j])
				}
			}
		}
	}
}

func TestGenerateBorderIsWall(t *testing.T) {
	gmap := Generate(testConfig(3)).Map
	for x := range gmap.Width {
		if gmap.IsWalkable(x, 0) || gmap.IsWalkable(x, gmap.Height-1) {
			t.Fatalf("border column %d is walkable", x)
		}
	}
	for y := range gmap.Height {
		if gmap.IsWalkable(0, y) || gmap.IsWalkable(gmap.Width-1, y) {
			t.Fatalf("border row %d is walkable", y)
		}
	}
}

func TestGenerateTorchesOnFloor(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		l := Generate(testConfig(seed))
		for _, p := range l.Torches {
			if !l.Map.IsWalkable(p.X, p.Y) {
				t.Errorf("seed=%d: torch at %v on a non-walkable tile", seed, p)
			}
			if p == l.Start {
				t.Errorf("seed=%d: torch placed on the start tile", seed)
			}
		}
	}
}

func TestGeneratePillarsBlockLight(t *testing.T) {
	pillars := 0
	for seed := int64(0); seed < 10; seed++ {
		gmap := Generate(testConfig(seed)).Map
		for y := range gmap.Height {
			for x := range gmap.Width {
				tile := gmap.At(x, y)
				if tile.Kind != gamemap.TilePillar {
					continue
				}
				pillars++
				if !tile.BlockLight || tile.Walkable {
					t.Fatalf("seed=%d: pillar at (%d,%d) = %+v", seed, x, y, *tile)
				}
			}
		}
	}
	if pillars == 0 {
		t.Fatal("expected some pillars across ten seeds at 50% chance")
	}
}

func TestGenerateNoPillarsOrDoorsWhenDisabled(t *testing.T) {
	cfg := testConfig(7)
	cfg.PillarChance = 0
	cfg.DoorChance = 0
	gmap := Generate(cfg).Map
	for y := range gmap.Height {
		for x := range gmap.Width {
			if k := gmap.At(x, y).Kind; k == gamemap.TilePillar || k == gamemap.TileDoor {
				t.Fatalf("unexpected tile kind %v at (%d,%d)", k, x, y)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(testConfig(11))
	b := Generate(testConfig(11))
	if a.Start != b.Start || len(a.Torches) != len(b.Torches) {
		t.Fatal("same seed should produce the same layout")
	}
	for y := range a.Map.Height {
		for x := range a.Map.Width {
			if a.Map.At(x, y).Kind != b.Map.At(x, y).Kind {
				t.Fatalf("tile (%d,%d) differs between runs", x, y)
			}
		}
	}
}
