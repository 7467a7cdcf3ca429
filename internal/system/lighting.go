package system

import (
	"fmt"
	"log/slog"

	"lightcast/internal/component"
	"lightcast/internal/ecs"
	"lightcast/internal/gamemap"
	"lightcast/internal/lightmap"
)

// CombineRule decides how light from several sources meets on one tile.
type CombineRule uint8

const (
	// CombineMax keeps the brightest contribution of the tick.
	CombineMax CombineRule = iota
	// CombineOverwrite lets the last source processed win, including its
	// unlit (level 0) entries.
	CombineOverwrite
)

func (c CombineRule) String() string {
	switch c {
	case CombineMax:
		return "max"
	case CombineOverwrite:
		return "overwrite"
	}
	return fmt.Sprintf("CombineRule(%d)", uint8(c))
}

// ParseCombineRule maps "max" or "overwrite" to a CombineRule.
func ParseCombineRule(s string) (CombineRule, error) {
	switch s {
	case "max", "":
		return CombineMax, nil
	case "overwrite":
		return CombineOverwrite, nil
	}
	return 0, fmt.Errorf("unknown combine rule %q (want max or overwrite)", s)
}

// LightingConfig tunes a Lighting system.
type LightingConfig struct {
	Combine CombineRule
	// Strict panics on an out-of-bounds tile write instead of logging it.
	Strict bool
}

// Lighting relights the map once per tick from every entity carrying a
// LightSource and a Position. When the game goes idle it nulls whatever it
// lit last, once.
type Lighting struct {
	gmap   *gamemap.GameMap
	acc    *lightmap.Accumulator
	cfg    LightingConfig
	logger *slog.Logger
	wasLit bool
}

// NewLighting returns a Lighting system writing into gmap.
// A nil logger falls back to slog.Default().
func NewLighting(gmap *gamemap.GameMap, cfg LightingConfig, logger *slog.Logger) *Lighting {
	if logger == nil {
		logger = slog.Default()
	}
	return &Lighting{
		gmap:   gmap,
		acc:    lightmap.NewAccumulator(gmap),
		cfg:    cfg,
		logger: logger.With("system", "lighting"),
	}
}

// WasLit reports whether the last Update ran a relight pass.
func (l *Lighting) WasLit() bool { return l.wasLit }

// Stats returns the scanner totals.
func (l *Lighting) Stats() lightmap.Stats { return l.acc.Stats() }

// Update runs one tick. active is the game's "currently running" signal.
func (l *Lighting) Update(w *ecs.World, active bool) {
	if !active {
		if l.wasLit {
			stale := l.acc.Clear()
			l.write(stale, false)
			l.wasLit = false
			l.logger.Debug("lights cleared", "tiles", len(stale))
		}
		return
	}

	l.write(l.acc.Clear(), false)
	for _, id := range w.Query(component.CLightSource, component.CPosition) {
		src, pos := lightComponents(w, id)
		if !l.gmap.InBounds(pos.X, pos.Y) {
			l.fault(fmt.Errorf("entity %d light origin (%d,%d): %w", id, pos.X, pos.Y, gamemap.ErrOutOfBounds))
			continue
		}
		results := l.acc.Calculate(lightmap.Source{Radius: src.Radius, Gradient: src.Gradient}, pos.X, pos.Y)
		l.write(results, true)
	}
	l.wasLit = true
}

// write commits results to the map in order. explore marks each tile seen
// and applies the combine rule; a clearing pass assigns levels directly.
func (l *Lighting) write(results []lightmap.Result, explore bool) {
	for _, r := range results {
		level := r.Level
		if explore && l.cfg.Combine == CombineMax && l.gmap.InBounds(r.X, r.Y) {
			level = max(level, l.gmap.At(r.X, r.Y).LightLevel)
		}
		if err := l.gmap.SetLight(r.X, r.Y, level); err != nil {
			l.fault(err)
			continue
		}
		if explore {
			if err := l.gmap.Explore(r.X, r.Y); err != nil {
				l.fault(err)
			}
		}
	}
}

func (l *Lighting) fault(err error) {
	if l.cfg.Strict {
		panic(err)
	}
	l.logger.Error("tile write skipped", "error", err)
}

// lightComponents fetches the data the query guarantees. A miss means the
// world handed back an entity it should not have.
func lightComponents(w *ecs.World, id ecs.EntityID) (component.LightSource, component.Position) {
	src, ok := w.Get(id, component.CLightSource).(component.LightSource)
	if !ok {
		panic(fmt.Sprintf("lighting: entity %d has no LightSource component", id))
	}
	pos, ok := w.Get(id, component.CPosition).(component.Position)
	if !ok {
		panic(fmt.Sprintf("lighting: entity %d has no Position component", id))
	}
	return src, pos
}
