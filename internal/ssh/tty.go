// Package ssh turns gliderlabs SSH sessions into tcell screens.
package ssh

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// DefaultTerm is assumed when the client sends no TERM.
const DefaultTerm = "xterm-256color"

// SessionTty implements tcell.Tty over an SSH channel. Window changes
// arrive on winCh and are forwarded to the callback tcell registers.
type SessionTty struct {
	rw    io.ReadWriteCloser
	winCh <-chan gossh.Window

	mu       sync.Mutex
	size     tcell.WindowSize
	onResize func()
	watching bool
}

// NewSessionTty wraps rw, normally a gossh.Session. win is the size from
// the pty request.
func NewSessionTty(rw io.ReadWriteCloser, win gossh.Window, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		rw:    rw,
		winCh: winCh,
		size:  tcell.WindowSize{Width: win.Width, Height: win.Height},
	}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.rw.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.rw.Write(b) }
func (t *SessionTty) Close() error                { return t.rw.Close() }

// The channel is opened and closed by the SSH handler, not by tcell.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the latest size reported by the client.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size, nil
}

// NotifyResize registers cb for window changes. The first call starts the
// goroutine draining winCh; it exits when the channel closes.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	start := !t.watching && t.winCh != nil
	t.watching = true
	t.mu.Unlock()

	if start {
		go t.watch()
	}
}

func (t *SessionTty) watch() {
	for win := range t.winCh {
		t.mu.Lock()
		t.size = tcell.WindowSize{Width: win.Width, Height: win.Height}
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}

// AllowedTerms lists the TERM values handed to terminfo. Anything else is
// replaced by DefaultTerm so a client cannot point the lookup elsewhere.
var AllowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// TermType returns the first TERM entry of environ when it is allowed,
// otherwise DefaultTerm.
func TermType(environ []string) string {
	for _, env := range environ {
		if term, ok := strings.CutPrefix(env, "TERM="); ok {
			if AllowedTerms[term] {
				return term
			}
			break
		}
	}
	return DefaultTerm
}

// termMu serialises the TERM swap around terminfo lookup, which reads the
// process environment.
var termMu sync.Mutex

// NewScreen builds and initialises a tcell screen for an interactive SSH
// session. It fails when the client did not request a pty.
func NewScreen(s gossh.Session) (tcell.Screen, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, fmt.Errorf("ssh: session has no pty")
	}
	tty := NewSessionTty(s, pty.Window, winCh)

	termMu.Lock()
	_ = os.Setenv("TERM", TermType(s.Environ()))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal setup: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	return screen, nil
}
