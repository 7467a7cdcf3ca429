// Package server runs the shared lit world. A single ticker goroutine
// applies one queued action per session, relights the map, then pokes every
// session to redraw from its own goroutine.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"lightcast/internal/component"
	"lightcast/internal/ecs"
	"lightcast/internal/factory"
	"lightcast/internal/gamemap"
	"lightcast/internal/system"
)

// MaxSessions caps concurrent viewers.
const MaxSessions = 32

// Server owns the world, the map, the lighting system and every session.
type Server struct {
	mu       sync.Mutex
	cfg      Config
	logger   *slog.Logger
	world    *ecs.World
	layout   *gamemap.Layout
	lighting *system.Lighting
	sessions []*Session
	nextID   int
	active   bool
	ticks    uint64
}

// NewServer builds a Server around layout and spawns its torches.
// The world starts active. A nil logger falls back to slog.Default().
func NewServer(layout *gamemap.Layout, cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.normalize()
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		world:    ecs.NewWorld(),
		layout:   layout,
		lighting: system.NewLighting(layout.Map, cfg.Lighting, logger),
		active:   true,
	}
	for _, p := range layout.Torches {
		factory.NewTorch(s.world, p.X, p.Y, TorchRadius)
	}
	logger.Info("world ready",
		"width", layout.Map.Width, "height", layout.Map.Height,
		"torches", len(layout.Torches), "combine", cfg.Lighting.Combine.String())
	return s
}

// NextSessionID returns a unique session ID. Safe to call concurrently.
func (s *Server) NextSessionID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	return id
}

// Run ticks the world every TickInterval until ctx is cancelled.
func (s *Server) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick advances the world once: pending actions, then lighting, then a
// render signal to every session.
func (s *Server) Tick() {
	s.mu.Lock()
	for _, sess := range s.sessions {
		s.applyLocked(sess, sess.TakeAction())
	}
	s.lighting.Update(s.world, s.active)
	s.ticks++
	sessions := slices.Clone(s.sessions)
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.poke()
	}
}

// Active reports whether lights are currently cast.
func (s *Server) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// SetActive switches the world between running and idle. The next tick
// relights or clears the map accordingly.
func (s *Server) SetActive(active bool) {
	s.mu.Lock()
	s.active = active
	s.mu.Unlock()
}

// AddSession registers sess and spawns its lantern bearer near the layout
// start. It returns false once MaxSessions viewers are connected.
func (s *Server) AddSession(sess *Session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sessions) >= MaxSessions {
		return false
	}
	x, y := s.findFreeSpawnLocked(s.layout.Start.X, s.layout.Start.Y)
	lantern := component.LightSource{Radius: s.cfg.LanternRadius, Gradient: s.cfg.Gradient}
	id := factory.NewLanternBearer(s.world, x, y, lantern, sess.Color)
	sess.PlayerID = id

	s.sessions = append(s.sessions, sess)
	s.broadcastLocked(fmt.Sprintf("%s lights a lantern.", sess.Name))
	s.logger.Info("session joined", "session", sess.ID, "name", sess.Name, "entity", id)
	return true
}

// RemoveSession deregisters sess and destroys its lantern bearer.
func (s *Server) RemoveSession(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.PlayerID != ecs.NilEntity {
		s.world.DestroyEntity(sess.PlayerID)
	}
	idx := slices.Index(s.sessions, sess)
	if idx < 0 {
		return
	}
	s.sessions = slices.Delete(s.sessions, idx, idx+1)
	s.broadcastLocked(fmt.Sprintf("%s's lantern goes out.", sess.Name))
	s.logger.Info("session left", "session", sess.ID, "name", sess.Name)
}

// applyLocked executes one action for sess. The caller must hold s.mu.
func (s *Server) applyLocked(sess *Session, a Action) {
	switch a {
	case ActionNone:
	case ActionToggleGradient:
		s.updateLanternLocked(sess, func(ls *component.LightSource) {
			ls.Gradient = !ls.Gradient
			if ls.Gradient {
				sess.AddMessage("Your lantern flickers softly.")
			} else {
				sess.AddMessage("Your lantern burns steady.")
			}
		})
	case ActionBrighter, ActionDimmer:
		s.updateLanternLocked(sess, func(ls *component.LightSource) {
			if a == ActionBrighter {
				ls.Radius = min(ls.Radius+1, MaxLanternRadius)
			} else {
				ls.Radius = max(ls.Radius-1, MinLanternRadius)
			}
			sess.AddMessage(fmt.Sprintf("Lantern radius %d.", ls.Radius))
		})
	case ActionPause:
		s.active = !s.active
		if s.active {
			s.broadcastLocked(fmt.Sprintf("%s rekindles every light.", sess.Name))
		} else {
			s.broadcastLocked(fmt.Sprintf("%s snuffs every light.", sess.Name))
		}
		s.logger.Debug("activity toggled", "session", sess.ID, "active", s.active)
	default:
		dx, dy := actionToDelta(a)
		if dx == 0 && dy == 0 {
			return
		}
		if system.TryMove(s.world, s.layout.Map, sess.PlayerID, dx, dy) == system.MoveOccupied {
			sess.AddMessage("Someone is standing there.")
		}
	}
}

func (s *Server) updateLanternLocked(sess *Session, fn func(*component.LightSource)) {
	c := s.world.Get(sess.PlayerID, component.CLightSource)
	if c == nil {
		return
	}
	ls := c.(component.LightSource)
	fn(&ls)
	s.world.Add(sess.PlayerID, ls)
}

func (s *Server) broadcastLocked(msg string) {
	for _, sess := range s.sessions {
		sess.AddMessage(msg)
	}
}

// findFreeSpawnLocked returns the nearest walkable cell to (x, y) that no
// lantern bearer occupies.
func (s *Server) findFreeSpawnLocked(x, y int) (int, int) {
	gmap := s.layout.Map
	occupied := func(tx, ty int) bool {
		if !gmap.IsWalkable(tx, ty) {
			return true
		}
		for _, id := range s.world.Query(component.CTagPlayer, component.CPosition) {
			p := s.world.Get(id, component.CPosition).(component.Position)
			if p.X == tx && p.Y == ty {
				return true
			}
		}
		return false
	}
	if !occupied(x, y) {
		return x, y
	}
	for r := 1; r <= 10; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if !occupied(x+dx, y+dy) {
					return x + dx, y + dy
				}
			}
		}
	}
	return x, y
}
