package assets

import (
	"testing"

	"lightcast/internal/gamemap"
)

func TestBuiltinMapsParse(t *testing.T) {
	for _, m := range Maps {
		t.Run(m.Name, func(t *testing.T) {
			layout, err := gamemap.Parse(m.Rows)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if !layout.Map.IsWalkable(layout.Start.X, layout.Start.Y) {
				t.Errorf("start %v is not walkable", layout.Start)
			}
		})
	}
}

func TestMapByName(t *testing.T) {
	if _, ok := MapByName("crypt"); !ok {
		t.Error("crypt not found")
	}
	if _, ok := MapByName("nowhere"); ok {
		t.Error("unexpected map nowhere")
	}
	if got := len(MapNames()); got != len(Maps) {
		t.Errorf("MapNames len = %d; want %d", got, len(Maps))
	}
}
