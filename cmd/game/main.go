package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/glyphgrid/internal/config"
	"github.com/Garsondee/glyphgrid/internal/display"
)

func main() {
	var envFile string
	var stats bool
	flag.StringVar(&envFile, "env", ".env", "optional env file with GLYPHGRID_* settings")
	flag.BoolVar(&stats, "stats", false, "overlay per-frame draw counts")
	flag.Parse()

	cfg, err := config.Load(envFile)
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	if err := ebiten.RunGame(display.New(cfg, stats)); err != nil {
		log.Fatal(err)
	}
}
