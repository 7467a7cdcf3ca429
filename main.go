// lightcast is the local viewer: one terminal, one lantern, the same world
// the SSH server hosts.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"lightcast/assets"
	"lightcast/internal/server"
)

func main() {
	mapName := flag.String("map", "random", "Map: random, a file path, or one of "+strings.Join(assets.MapNames(), ", "))
	seed := flag.Int64("seed", 0, "Seed for random maps (0 picks one from the clock)")
	var level slog.Level
	flag.TextVar(&level, "log-level", slog.LevelInfo, "Log level: debug, info, warn or error")
	cfg := server.DefaultConfig()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	// The terminal belongs to tcell, so logs go to the data dir.
	var out io.Writer = io.Discard
	if f, err := server.OpenLogFile(); err == nil {
		defer f.Close()
		out = f
	} else {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	layout, err := server.LoadLayout(*mapName, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv := server.NewServer(layout, cfg, logger)
	go srv.Run(ctx)

	name := os.Getenv("USER")
	if name == "" {
		name = "you"
	}
	sess := server.NewSession(srv.NextSessionID(), name, screen)
	srv.AddSession(sess)
	defer srv.RemoveSession(sess)
	srv.RunLoop(sess)
}
