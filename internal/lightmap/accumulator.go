package lightmap

import "slices"

// Stats summarises the work done since the accumulator was created.
type Stats struct {
	Sources  int // Calculate calls that scanned
	Results  int // entries produced
	MaxDepth int // deepest obstruction recursion seen
}

// Accumulator collects every tile written since the last Clear so the next
// pass can null them before relighting. It is not safe for concurrent use.
type Accumulator struct {
	grid  Grid
	buf   []Result
	stats Stats
}

// NewAccumulator returns an empty accumulator scanning g.
func NewAccumulator(g Grid) *Accumulator {
	return &Accumulator{grid: g}
}

// Clear zeroes every tracked entry, starts a fresh buffer and returns the
// old one. Writing the returned entries resets last pass's light.
func (a *Accumulator) Clear() []Result {
	old := a.buf
	for i := range old {
		old[i].Level = 0
	}
	a.buf = nil
	return old
}

// Len returns the number of entries tracked since the last Clear.
func (a *Accumulator) Len() int { return len(a.buf) }

// Stats returns the running totals.
func (a *Accumulator) Stats() Stats { return a.stats }

// Calculate casts light from src at (ox, oy) over all eight octants. The
// returned entries are in write order: a later entry for a coordinate
// supersedes an earlier one. The origin tile is always last, at level 1.
//
// An origin outside the grid yields nil.
func (a *Accumulator) Calculate(src Source, ox, oy int) []Result {
	w, h := a.grid.Size()
	if ox < 0 || oy < 0 || ox >= w || oy >= h {
		return nil
	}

	mark := len(a.buf)
	r := max(src.Radius, 0)
	s := &scanner{
		grid:     a.grid,
		w:        w,
		h:        h,
		ox:       ox,
		oy:       oy,
		src:      src,
		radiusSq: float64(r * r),
		out:      a.buf,
	}
	for _, oct := range Octants {
		s.out = append(s.out, Result{X: ox, Y: oy})
		s.scan(1, 1.0, 0.0, oct, 0)
	}
	s.out = append(s.out, Result{X: ox, Y: oy, Level: 1})
	a.buf = s.out

	a.stats.Sources++
	a.stats.Results += len(a.buf) - mark
	a.stats.MaxDepth = max(a.stats.MaxDepth, s.maxDepth)
	return slices.Clone(a.buf[mark:])
}

// Compute runs a single source scan without keeping any state.
func Compute(g Grid, src Source, ox, oy int) []Result {
	return NewAccumulator(g).Calculate(src, ox, oy)
}

// Levels folds results into a coordinate → level map, later entries
// overwriting earlier ones.
func Levels(results []Result) map[[2]int]float64 {
	m := make(map[[2]int]float64, len(results))
	for _, r := range results {
		m[[2]int{r.X, r.Y}] = r.Level
	}
	return m
}
