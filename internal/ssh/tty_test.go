package ssh

import (
	"io"
	"net"
	"testing"
	"time"

	gossh "github.com/gliderlabs/ssh"
)

func TestTermType(t *testing.T) {
	tests := []struct {
		name    string
		environ []string
		want    string
	}{
		{"absent", []string{"LANG=C"}, DefaultTerm},
		{"set", []string{"LANG=C", "TERM=screen"}, "screen"},
		{"empty", []string{"TERM="}, DefaultTerm},
		{"first wins", []string{"TERM=vt100", "TERM=xterm"}, "vt100"},
		{"unknown", []string{"TERM=evil-term"}, DefaultTerm},
		{"path traversal", []string{"TERM=../../../etc/passwd"}, DefaultTerm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TermType(tt.environ); got != tt.want {
				t.Errorf("TermType = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestSessionTtyReadWrite(t *testing.T) {
	local, remote := net.Pipe()
	defer remote.Close()
	tty := NewSessionTty(local, gossh.Window{Width: 80, Height: 24}, nil)

	go func() { _, _ = remote.Write([]byte("k")) }()
	buf := make([]byte, 1)
	if _, err := io.ReadFull(tty, buf); err != nil || buf[0] != 'k' {
		t.Fatalf("Read = %q, %v", buf, err)
	}

	go func() { _, _ = tty.Write([]byte("ok")) }()
	out := make([]byte, 2)
	if _, err := io.ReadFull(remote, out); err != nil || string(out) != "ok" {
		t.Fatalf("Write delivered %q, %v", out, err)
	}
	if err := tty.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestSessionTtyResize(t *testing.T) {
	local, remote := net.Pipe()
	defer local.Close()
	defer remote.Close()

	winCh := make(chan gossh.Window, 1)
	tty := NewSessionTty(local, gossh.Window{Width: 80, Height: 24}, winCh)

	size, _ := tty.WindowSize()
	if size.Width != 80 || size.Height != 24 {
		t.Fatalf("initial size = %+v", size)
	}

	fired := make(chan struct{}, 1)
	tty.NotifyResize(func() { fired <- struct{}{} })
	tty.NotifyResize(func() { fired <- struct{}{} })
	winCh <- gossh.Window{Width: 120, Height: 40}

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("resize callback not invoked")
	}
	size, _ = tty.WindowSize()
	if size.Width != 120 || size.Height != 40 {
		t.Errorf("size after resize = %+v; want 120x40", size)
	}
	close(winCh)
}
