package server

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"lightcast/internal/ecs"
	"lightcast/internal/render"
)

// lanternColors is the round-robin palette for telling players apart.
var lanternColors = []tcell.Color{
	tcell.ColorYellow,
	tcell.ColorFuchsia,
	tcell.ColorAqua,
	tcell.ColorLime,
	tcell.ColorOrange,
	tcell.ColorSilver,
}

// maxMessages caps a session's message log.
const maxMessages = 50

// Session holds the per-viewer state of one connection.
type Session struct {
	ID    int
	Name  string
	Color tcell.Color

	PlayerID ecs.EntityID

	Screen   tcell.Screen
	Renderer *render.Renderer

	// Pending action (last key wins).
	actionMu sync.Mutex
	pending  Action

	// Guarded by the server mutex.
	Messages []string

	// RenderCh is poked after every tick; the session goroutine drains it.
	RenderCh chan struct{}
}

// NewSession allocates a Session drawing onto screen.
func NewSession(id int, name string, screen tcell.Screen) *Session {
	return &Session{
		ID:       id,
		Name:     name,
		Color:    lanternColors[id%len(lanternColors)],
		Screen:   screen,
		Renderer: render.NewRenderer(screen),
		RenderCh: make(chan struct{}, 1),
	}
}

// SetAction stores the most recent key action.
func (s *Session) SetAction(a Action) {
	s.actionMu.Lock()
	s.pending = a
	s.actionMu.Unlock()
}

// TakeAction retrieves and clears the pending action.
func (s *Session) TakeAction() Action {
	s.actionMu.Lock()
	a := s.pending
	s.pending = ActionNone
	s.actionMu.Unlock()
	return a
}

// AddMessage appends msg to the session's log.
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// poke requests a redraw without blocking.
func (s *Session) poke() {
	select {
	case s.RenderCh <- struct{}{}:
	default:
	}
}
