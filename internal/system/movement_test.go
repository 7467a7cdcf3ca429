package system

import (
	"testing"

	"lightcast/internal/component"
	"lightcast/internal/ecs"
	"lightcast/internal/gamemap"
)

func setupMoveWorld() (*ecs.World, *gamemap.GameMap, ecs.EntityID) {
	w := ecs.NewWorld()
	gmap := gamemap.New(10, 10)
	// Carve a small open area.
	for y := 1; y <= 8; y++ {
		for x := 1; x <= 8; x++ {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
	player := w.CreateEntity()
	w.Add(player, component.Position{X: 3, Y: 3})
	w.Add(player, component.TagPlayer{})
	return w, gmap, player
}

func TestTryMoveSucceeds(t *testing.T) {
	w, gmap, player := setupMoveWorld()
	if result := TryMove(w, gmap, player, 1, 0); result != MoveOK {
		t.Fatalf("expected MoveOK, got %v", result)
	}
	pos := w.Get(player, component.CPosition).(component.Position)
	if pos.X != 4 || pos.Y != 3 {
		t.Fatalf("expected position (4,3), got (%d,%d)", pos.X, pos.Y)
	}
}

func TestTryMoveBlockedByWall(t *testing.T) {
	w, gmap, player := setupMoveWorld()
	w.Add(player, component.Position{X: 3, Y: 1})
	if result := TryMove(w, gmap, player, 0, -1); result != MoveBlocked {
		t.Fatalf("expected MoveBlocked, got %v", result)
	}
	pos := w.Get(player, component.CPosition).(component.Position)
	if pos.Y != 1 {
		t.Fatalf("position should be unchanged, got (%d,%d)", pos.X, pos.Y)
	}
}

func TestTryMoveBlockedByPillar(t *testing.T) {
	w, gmap, player := setupMoveWorld()
	gmap.Set(4, 4, gamemap.MakePillar())
	if result := TryMove(w, gmap, player, 1, 1); result != MoveBlocked {
		t.Fatalf("expected MoveBlocked into pillar, got %v", result)
	}
}

func TestTryMoveIntoPlayerIsOccupied(t *testing.T) {
	w, gmap, player := setupMoveWorld()
	other := w.CreateEntity()
	w.Add(other, component.Position{X: 4, Y: 3})
	w.Add(other, component.TagPlayer{})

	if result := TryMove(w, gmap, player, 1, 0); result != MoveOccupied {
		t.Fatalf("expected MoveOccupied, got %v", result)
	}
	pos := w.Get(player, component.CPosition).(component.Position)
	if pos.X != 3 {
		t.Fatalf("player should not have moved, got (%d,%d)", pos.X, pos.Y)
	}
}

func TestTryMoveOverTorch(t *testing.T) {
	w, gmap, player := setupMoveWorld()
	torch := w.CreateEntity()
	w.Add(torch, component.Position{X: 4, Y: 3})
	w.Add(torch, component.TagTorch{})

	if result := TryMove(w, gmap, player, 1, 0); result != MoveOK {
		t.Fatalf("torches should not block movement, got %v", result)
	}
}

func TestTryMoveWithoutPosition(t *testing.T) {
	w, gmap, _ := setupMoveWorld()
	ghost := w.CreateEntity()
	if result := TryMove(w, gmap, ghost, 1, 0); result != MoveBlocked {
		t.Fatalf("expected MoveBlocked for entity without Position, got %v", result)
	}
}
