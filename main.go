package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"canvas-snake/game"
	"canvas-snake/game/manager"
	"canvas-snake/ui"
	"canvas-snake/ui/terminal"
	"canvas-snake/ui/window"
)

// Build with -tags ebiten to use ebiten instead of raylib for the window.
var frontends = map[string]ui.Frontend{
	"window":    window.Run,
	window.Name: window.Run,
	"terminal":  terminal.Run,
}

func main() {
	defaults := game.DefaultConfig()

	frontend := flag.String("frontend", "window", "Where to play: window ("+window.Name+") or terminal")
	width := flag.Int("width", defaults.Width, "Canvas width in pixels")
	height := flag.Int("height", defaults.Height, "Canvas height in pixels")
	cell := flag.Int("cell", defaults.CellSize, "Grid cell size in pixels (must divide width and height)")
	speed := flag.Int("speed", int(defaults.Interval/time.Millisecond), "Game speed in milliseconds (lower = faster)")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = time based)")
	collide := flag.String("collide", manager.CollideNone.String(), "Collisions that end the game: none, walls or all")
	logFile := flag.String("log", "", "Write logs to this file")
	flag.Parse()

	log.SetPrefix("snake: ")

	policy, err := manager.ParseCollisionPolicy(*collide)
	if err != nil {
		log.Fatalf("invalid -collide: %v", err)
	}

	cfg := game.Config{
		Width:    *width,
		Height:   *height,
		CellSize: *cell,
		Interval: time.Duration(*speed) * time.Millisecond,
		Seed:     *seed,
		Collide:  policy,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	run, ok := frontends[*frontend]
	if !ok {
		log.Fatalf("unknown frontend %q", *frontend)
	}

	switch {
	case *logFile != "":
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	case *frontend == "terminal":
		// The terminal frontend owns the screen
		log.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil && ctx.Err() == nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("%s frontend: %v", *frontend, err)
	}
}
