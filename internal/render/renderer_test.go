package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"lightcast/internal/component"
	"lightcast/internal/ecs"
	"lightcast/internal/gamemap"
)

func newSimScreen(t *testing.T) tcell.Screen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	ss.SetSize(40, 15)
	t.Cleanup(ss.Fini)
	return ss
}

func smallMap() *gamemap.GameMap {
	gmap := gamemap.New(6, 4)
	for y := 1; y < 3; y++ {
		for x := 1; x < 5; x++ {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
	return gmap
}

func cell(screen tcell.Screen, x, y int) (rune, tcell.Color) {
	mainc, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return mainc, bg
}

func TestDrawMapShadesLitTiles(t *testing.T) {
	screen := newSimScreen(t)
	gmap := smallMap()
	_ = gmap.SetLight(2, 1, 1)
	_ = gmap.Explore(2, 1)
	_ = gmap.Explore(3, 1) // remembered, unlit

	r := NewRenderer(screen)
	r.Follow(0, 0, gmap.Width, gmap.Height)
	r.DrawFrame(ecs.NewWorld(), gmap)

	ch, bg := cell(screen, 4, 1)
	if ch != '.' {
		t.Errorf("lit floor glyph = %q, want '.'", ch)
	}
	if bg != DefaultPalette.Shade(1) {
		t.Errorf("lit floor background = %v, want %v", bg, DefaultPalette.Shade(1))
	}

	ch, bg = cell(screen, 6, 1)
	if ch != '.' || bg != tcell.ColorBlack {
		t.Errorf("explored unlit floor = %q on %v, want '.' on black", ch, bg)
	}

	if ch, _ := cell(screen, 8, 1); ch != ' ' {
		t.Errorf("unexplored tile drew %q, want blank", ch)
	}
}

func TestDrawEntitiesOnlyWhenLit(t *testing.T) {
	screen := newSimScreen(t)
	gmap := smallMap()
	w := ecs.NewWorld()

	torch := w.CreateEntity()
	w.Add(torch, component.Position{X: 1, Y: 1})
	w.Add(torch, component.Renderable{Glyph: "*", FGColor: tcell.ColorOrange, RenderOrder: 1})

	player := w.CreateEntity()
	w.Add(player, component.Position{X: 4, Y: 2})
	w.Add(player, component.Renderable{Glyph: "@", FGColor: tcell.ColorYellow, RenderOrder: 10})
	w.Add(player, component.TagPlayer{})

	r := NewRenderer(screen)
	r.Follow(0, 0, gmap.Width, gmap.Height)
	r.DrawFrame(w, gmap)

	if ch, _ := cell(screen, 2, 1); ch == '*' {
		t.Error("torch on an unlit tile should not be drawn")
	}
	if ch, _ := cell(screen, 8, 2); ch != '@' {
		t.Errorf("player should always be drawn, got %q", ch)
	}

	_ = gmap.SetLight(1, 1, 0.5)
	r.DrawFrame(w, gmap)
	if ch, _ := cell(screen, 2, 1); ch != '*' {
		t.Errorf("torch on a lit tile should be drawn, got %q", ch)
	}
}

func TestDrawHUD(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen)
	r.DrawHUD([]string{"old", "line one", "line two"})

	_, h := screen.Size()
	if ch, _ := cell(screen, 0, h-HUDHeight); ch != '─' {
		t.Errorf("separator = %q, want '─'", ch)
	}
	if ch, _ := cell(screen, 5, h-HUDHeight+1); ch != 'o' {
		t.Errorf("first HUD line should be the second-to-last message, got %q", ch)
	}
}

func TestPaletteShadeMonotonic(t *testing.T) {
	p := DefaultPalette
	if p.Shade(-1) != p.Shade(0) || p.Shade(2) != p.Shade(1) {
		t.Error("Shade should clamp levels to [0,1]")
	}
	r0, g0, b0 := p.Shade(0).RGB()
	r1, g1, b1 := p.Shade(1).RGB()
	if r0+g0+b0 >= r1+g1+b1 {
		t.Errorf("full light (%d,%d,%d) should be brighter than none (%d,%d,%d)", r1, g1, b1, r0, g0, b0)
	}
}
