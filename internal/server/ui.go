package server

import (
	"fmt"

	"lightcast/internal/component"
)

// RenderSession draws the world from sess's point of view.
// The caller must hold s.mu.
func (s *Server) RenderSession(sess *Session) {
	gmap := s.layout.Map
	if c := s.world.Get(sess.PlayerID, component.CPosition); c != nil {
		p := c.(component.Position)
		sess.Renderer.Follow(p.X, p.Y, gmap.Width, gmap.Height)
	}
	sess.Renderer.DrawFrame(s.world, gmap)

	lines := []string{s.statusLineLocked(sess)}
	if n := len(sess.Messages); n > 0 {
		lines = append(lines, sess.Messages[n-1])
	}
	sess.Renderer.DrawHUD(lines)
}

// statusLineLocked summarises the lighting state for the HUD.
func (s *Server) statusLineLocked(sess *Session) string {
	state := "lit"
	if !s.active {
		state = "dark"
	}
	lantern := "no lantern"
	if c := s.world.Get(sess.PlayerID, component.CLightSource); c != nil {
		ls := c.(component.LightSource)
		mode := "steady"
		if ls.Gradient {
			mode = "fading"
		}
		lantern = fmt.Sprintf("lantern r%d %s", ls.Radius, mode)
	}
	st := s.lighting.Stats()
	return fmt.Sprintf("[%s] %s | lit tiles %d | viewers %d | tick %d | depth %d",
		state, lantern, s.layout.Map.LitCount(), len(s.sessions), s.ticks, st.MaxDepth)
}
