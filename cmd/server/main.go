// lightcast-server serves one shared lit dungeon over SSH. Every connection
// carries its own lantern through the same world. Build:
//
//	go build -o lightcast-server ./cmd/server
//
// Usage:
//
//	./lightcast-server [-port 2222] [-key server_host_key] [-map crypt] [-combine max]
//
// Connect:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"

	"lightcast/assets"
	"lightcast/internal/server"
	internalssh "lightcast/internal/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	mapName := flag.String("map", "random", "Map: random, a file path, or one of "+strings.Join(assets.MapNames(), ", "))
	seed := flag.Int64("seed", 0, "Seed for random maps (0 picks one from the clock)")
	var level slog.Level
	flag.TextVar(&level, "log-level", slog.LevelInfo, "Log level: debug, info, warn or error")
	cfg := server.DefaultConfig()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	layout, err := server.LoadLayout(*mapName, *seed)
	if err != nil {
		logger.Error("load map", "map", *mapName, "error", err)
		os.Exit(1)
	}
	signer, err := loadOrCreateHostKey(*keyFile, logger)
	if err != nil {
		logger.Error("host key", "path", *keyFile, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(layout, cfg, logger)
	go srv.Run(ctx)

	sshSrv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: sessionHandler(srv, logger),
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: every visitor is welcome.
		HostSigners: []gossh.Signer{signer},
	}
	go func() {
		<-ctx.Done()
		_ = sshSrv.Close()
	}()

	logger.Info("lightcast SSH server listening", "port", *port, "map", *mapName, "seed", *seed)
	if err := sshSrv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		logger.Error("ssh server", "error", err)
		os.Exit(1)
	}
}

// sessionHandler is the gliderlabs handler for one connection. It blocks
// for the lifetime of the connection.
func sessionHandler(srv *server.Server, logger *slog.Logger) gossh.Handler {
	return func(s gossh.Session) {
		screen, err := internalssh.NewScreen(s)
		if err != nil {
			fmt.Fprintf(s, "%v\nThis viewer needs a terminal. Connect with: ssh -t <host>\n", err)
			return
		}
		defer screen.Fini()

		name := sanitizeName(s.User())
		if name == "" {
			name = "wanderer"
		}
		sess := server.NewSession(srv.NextSessionID(), name, screen)
		if !srv.AddSession(sess) {
			logger.Warn("session rejected: server full", "remote", s.RemoteAddr().String())
			showFull(screen)
			return
		}
		defer srv.RemoveSession(sess)
		srv.RunLoop(sess)
	}
}

// maxNameBytes bounds a display name sent by the client.
const maxNameBytes = 16

// sanitizeName drops control characters from an SSH user name and cuts it
// to maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			continue
		}
		if sb.Len()+len(string(r)) > maxNameBytes {
			break
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// showFull tells a rejected viewer to come back later and waits briefly.
func showFull(screen tcell.Screen) {
	screen.Clear()
	msg := "Every lantern is taken. Try again later."
	w, h := screen.Size()
	x := max(0, (w-len(msg))/2)
	for i, r := range msg {
		screen.SetContent(x+i, h/2, r, nil, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}
	screen.Show()
	time.Sleep(2 * time.Second)
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persisting is best-effort; the key still serves this run.
	pemBlock, err := xssh.MarshalPrivateKey(key, "lightcast server")
	if err != nil {
		logger.Warn("host key not saved", "error", err)
		return signer, nil
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
		logger.Warn("host key not saved", "path", path, "error", err)
	}
	return signer, nil
}
