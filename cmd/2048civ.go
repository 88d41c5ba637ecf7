package main

import (
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/2048civ/2048civ/internal/config"
	"github.com/2048civ/2048civ/internal/core"
	game_log "github.com/2048civ/2048civ/internal/log"
	"github.com/2048civ/2048civ/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := game_log.New(os.Stderr, game_log.LevelFromString(cfg.LogLevel))
	for _, w := range cfg.Warnings {
		logger.Warnf("[CONFIG] %s", w)
	}

	grid, err := core.NewGrid(int(cfg.MapRows), int(cfg.MapCols))
	if err != nil {
		log.Fatalf("allocate terrain map: %v", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen, ok := core.GeneratorByName(cfg.Generator, seed)
	if !ok {
		logger.Warnf("[CONFIG] unknown generator %q, using gradient", cfg.Generator)
	}
	grid.Fill(gen)
	logger.Infof("[CONFIG] %dx%d map, generator %s, seed %d", cfg.MapRows, cfg.MapCols, cfg.Generator, seed)

	g := ui.New(grid, ui.Options{
		Radius:   int(cfg.Radius),
		Width:    int(cfg.WindowWidth),
		Height:   int(cfg.WindowHeight),
		FontPath: cfg.FontPath,
		FontSize: int(cfg.FontSize),
	}, logger)

	ebiten.SetWindowSize(int(cfg.WindowWidth), int(cfg.WindowHeight))
	ebiten.SetWindowTitle(ui.DefaultTitle)
	ebiten.SetTPS(60)

	// Escape or closing the window ends RunGame with a nil error.
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
