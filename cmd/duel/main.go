// Command duel opens a window with one controlled fighter against the
// decision engine.
package main

import (
	"flag"
	"log"

	"github.com/automoto/doomerang-duel/arena"
	"github.com/automoto/doomerang-duel/client"
	"github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/fonts"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "Match configuration YAML (empty = embedded default)")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	difficulty := flag.String("difficulty", "normal", "Bot difficulty: easy, normal, hard")
	flag.Parse()

	mc := config.DefaultMatchConfig()
	if *configPath != "" {
		loaded, err := config.LoadMatchConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load match config: %v", err)
		}
		mc = loaded
	}
	level, err := config.ParseBotDifficulty(*difficulty)
	if err != nil {
		log.Fatalf("Invalid difficulty: %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	opts := []arena.Option{arena.WithDifficulty(level)}
	if *seed != 0 {
		opts = append(opts, arena.WithSeed(*seed))
	}
	game, err := client.NewGame(mc, opts...)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Doomerang Duel")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
