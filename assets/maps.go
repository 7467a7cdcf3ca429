package assets

// MapDef is a hand-drawn layout shipped with the binary.
// Rows use the gamemap glyphs: # wall, . floor, + door, o pillar,
// = glass, * torch, @ start.
type MapDef struct {
	Name  string
	Blurb string
	Rows  []string
}

// Maps lists the built-in layouts in menu order.
var Maps = []MapDef{
	{
		Name:  "crypt",
		Blurb: "A burial hall ringed with pillars. Two torches gutter at the far end.",
		Rows: []string{
			"##############################",
			"#............#...............#",
			"#..o...o...o.#..*.........*..#",
			"#............#...............#",
			"#..o...o...o.+.....o...o.....#",
			"#............#...............#",
			"#..o...o...o.#...............#",
			"#............#######+#########",
			"#.@..........#.......#.......#",
			"#............+.......#...*...#",
			"#............#.......+.......#",
			"##############################",
		},
	},
	{
		Name:  "gallery",
		Blurb: "A long corridor behind glass. Light passes through, feet do not.",
		Rows: []string{
			"##########################",
			"#........................#",
			"#.@......................#",
			"#........................#",
			"#=====.======.=====.=====#",
			"#........................#",
			"#...*.....o.....o.....*..#",
			"#........................#",
			"##########################",
		},
	},
	{
		Name:  "cell",
		Blurb: "A five-by-five room with nothing in it.",
		Rows: []string{
			"#######",
			"#.....#",
			"#.....#",
			"#..@..#",
			"#.....#",
			"#.....#",
			"#######",
		},
	},
}

// MapByName returns the built-in layout called name.
func MapByName(name string) (MapDef, bool) {
	for _, m := range Maps {
		if m.Name == name {
			return m, true
		}
	}
	return MapDef{}, false
}

// MapNames lists the built-in layout names.
func MapNames() []string {
	names := make([]string, len(Maps))
	for i, m := range Maps {
		names[i] = m.Name
	}
	return names
}
