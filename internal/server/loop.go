package server

import "github.com/gdamore/tcell/v2"

// RunLoop is the per-session goroutine. It forwards key actions to the
// session queue and redraws on every render signal. It blocks until the
// viewer quits or the screen closes.
func (s *Server) RunLoop(sess *Session) {
	eventCh := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := sess.Screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventCh:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				sess.Screen.Sync()
				sess.Renderer.Resize()
				sess.poke()
			case *tcell.EventKey:
				action := keyToAction(ev)
				if action == ActionQuit {
					return
				}
				sess.SetAction(action)
			}

		case <-sess.RenderCh:
			s.mu.Lock()
			s.RenderSession(sess)
			s.mu.Unlock()
		}
	}
}
