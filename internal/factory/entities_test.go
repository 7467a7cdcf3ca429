package factory

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"lightcast/internal/component"
	"lightcast/internal/ecs"
)

func TestNewLanternBearerComponents(t *testing.T) {
	w := ecs.NewWorld()
	lantern := component.LightSource{Radius: 4, Gradient: true}
	id := NewLanternBearer(w, 5, 3, lantern, tcell.ColorAqua)

	if !w.Alive(id) {
		t.Fatal("lantern bearer must be alive")
	}
	pos := w.Get(id, component.CPosition)
	if pos == nil {
		t.Fatal("lantern bearer must have CPosition")
	}
	if p := pos.(component.Position); p.X != 5 || p.Y != 3 {
		t.Errorf("position = (%d,%d); want (5,3)", p.X, p.Y)
	}
	if got := w.Get(id, component.CLightSource); got != lantern {
		t.Errorf("LightSource = %v; want %v", got, lantern)
	}
	rend := w.Get(id, component.CRenderable).(component.Renderable)
	if rend.FGColor != tcell.ColorAqua || rend.RenderOrder != playerOrder {
		t.Errorf("Renderable = %+v", rend)
	}
	if !w.Has(id, component.CTagPlayer) {
		t.Error("lantern bearer must carry TagPlayer")
	}
}

func TestNewTorchComponents(t *testing.T) {
	w := ecs.NewWorld()
	id := NewTorch(w, 2, 7, 5)

	ls, ok := w.Get(id, component.CLightSource).(component.LightSource)
	if !ok {
		t.Fatal("torch must have CLightSource")
	}
	if ls.Radius != 5 || !ls.Gradient {
		t.Errorf("LightSource = %+v; want radius 5 with gradient", ls)
	}
	if !w.Has(id, component.CTagTorch) {
		t.Error("torch must carry TagTorch")
	}
	if w.Has(id, component.CTagPlayer) {
		t.Error("torch must not carry TagPlayer")
	}
}

func TestTorchesAreLightQueryable(t *testing.T) {
	w := ecs.NewWorld()
	a := NewTorch(w, 1, 1, 3)
	b := NewLanternBearer(w, 2, 2, component.LightSource{Radius: 2}, tcell.ColorWhite)

	got := w.Query(component.CLightSource, component.CPosition)
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("Query = %v; want [%d %d]", got, a, b)
	}
}
