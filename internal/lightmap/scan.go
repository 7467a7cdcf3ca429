package lightmap

// Grid is the read side of a tile map as seen by the scanner.
type Grid interface {
	Size() (w, h int)
	BlocksLight(x, y int) bool
}

// Source describes one emitter.
type Source struct {
	Radius   int
	Gradient bool
}

// Result is the light level computed for one tile.
type Result struct {
	X, Y  int
	Level float64
}

// scanner carries everything one source's eight-octant pass shares.
type scanner struct {
	grid     Grid
	w, h     int
	ox, oy   int
	src      Source
	radiusSq float64
	out      []Result
	maxDepth int
}

// scan sweeps rows row..radius of one octant inside the slope wedge
// [end, start], recursing past each obstruction it meets.
func (s *scanner) scan(row int, start, end float64, oct Octant, depth int) {
	if start < end {
		return
	}
	if depth > s.maxDepth {
		s.maxDepth = depth
	}

	var newStart float64
	for i := row; i <= s.src.Radius; i++ {
		dy := -i
		blocked := false

		for dx := -i; dx <= 0; dx++ {
			x, y := oct.Apply(s.ox, s.oy, dx, dy)
			if x < 0 || y < 0 || x >= s.w || y >= s.h {
				continue
			}

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)
			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			s.record(x, y, float64(dx*dx+dy*dy))

			opaque := s.grid.BlocksLight(x, y)
			if blocked {
				if opaque {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if opaque && i < s.src.Radius {
				blocked = true
				s.scan(i+1, start, lSlope, oct, depth+1)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

// record appends a swept tile. Tiles outside the light circle are kept at
// level 0 so they still count as seen.
func (s *scanner) record(x, y int, distSq float64) {
	level := 0.0
	if distSq < s.radiusSq {
		level = 1
		if s.src.Gradient {
			level = 1 - distSq/s.radiusSq
		}
	}
	s.out = append(s.out, Result{X: x, Y: y, Level: level})
}
