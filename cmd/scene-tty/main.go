package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/glyphgrid/internal/app"
	"github.com/Garsondee/glyphgrid/internal/assets"
	"github.com/Garsondee/glyphgrid/internal/config"
	"github.com/Garsondee/glyphgrid/internal/glyph"
	"github.com/Garsondee/glyphgrid/internal/terminal"
)

func main() {
	var envFile string
	flag.StringVar(&envFile, "env", ".env", "optional env file with GLYPHGRID_* settings")
	flag.Parse()

	cfg, err := config.Load(envFile)
	if err != nil {
		log.Fatal(err)
	}

	// The atlas is still built from the font so glyph coverage matches the
	// graphical views; the terminal itself only receives runes.
	font, err := assets.LoadFont(cfg.FontPath)
	if err != nil {
		log.Fatal(err)
	}
	s, err := app.NewScene(cfg, glyph.NewRaster(font.Key(), font.SFNT, cfg.FontSize), nil)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	if err := loop(screen, s, cfg); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
}

// loop redraws on every resize and returns when q, Escape or Ctrl-C is
// pressed.
func loop(screen tcell.Screen, s *app.Scene, cfg config.Config) error {
	surface := terminal.NewSurface(screen, cfg.Cell())
	draw := func() {
		s.Draw(surface)
		surface.Flush()
	}
	draw()
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			draw()
		case *tcell.EventKey:
			if quitKey(ev) {
				return nil
			}
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
