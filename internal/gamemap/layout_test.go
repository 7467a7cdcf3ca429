package gamemap

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	l, err := Parse([]string{
		"#####",
		"#.*o#",
		"#@=+#",
		"#####",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if l.Map.Width != 5 || l.Map.Height != 4 {
		t.Fatalf("size = %dx%d, want 5x4", l.Map.Width, l.Map.Height)
	}
	if l.Start != (Point{1, 2}) {
		t.Errorf("Start = %v, want (1,2)", l.Start)
	}
	if len(l.Torches) != 1 || l.Torches[0] != (Point{2, 1}) {
		t.Errorf("Torches = %v, want [(2,1)]", l.Torches)
	}
	kinds := map[Point]TileKind{
		{0, 0}: TileWall,
		{1, 1}: TileFloor,
		{2, 1}: TileFloor,
		{3, 1}: TilePillar,
		{2, 2}: TileGlass,
		{3, 2}: TileDoor,
	}
	for p, want := range kinds {
		if got := l.Map.At(p.X, p.Y).Kind; got != want {
			t.Errorf("kind at %v = %v, want %v", p, got, want)
		}
	}
}

func TestParseDefaultStart(t *testing.T) {
	l, err := ParseString("###\n#.#\n###\n")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if l.Start != (Point{1, 1}) {
		t.Errorf("Start = %v, want first floor tile (1,1)", l.Start)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want error
	}{
		{"empty", nil, ErrEmptyLayout},
		{"blank only", []string{"", ""}, ErrEmptyLayout},
		{"ragged", []string{"###", "##"}, ErrRaggedLayout},
		{"unknown glyph", []string{"#?#"}, ErrUnknownGlyph},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.rows)
			if !errors.Is(err, tc.want) {
				t.Errorf("Parse err = %v, want %v", err, tc.want)
			}
		})
	}
}
