package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/glyphgrid/internal/app"
	"github.com/Garsondee/glyphgrid/internal/assets"
	"github.com/Garsondee/glyphgrid/internal/config"
	"github.com/Garsondee/glyphgrid/internal/glyph"
	"github.com/Garsondee/glyphgrid/internal/raster"
	"github.com/Garsondee/glyphgrid/internal/render"
	"github.com/Garsondee/glyphgrid/internal/terminal"
)

type options struct {
	envFile   string
	out       string
	scale     int
	ascii     bool
	commands  bool
	clipboard bool
	mapWidth  int
	mapHeight int
	fontPath  string
}

func main() {
	var opts options
	flag.StringVar(&opts.envFile, "env", ".env", "optional env file with GLYPHGRID_* settings")
	flag.StringVar(&opts.out, "out", "", "write the rendered frame to this PNG file")
	flag.IntVar(&opts.scale, "scale", 1, "integer PNG upscale factor")
	flag.BoolVar(&opts.ascii, "ascii", false, "print the frame as a character grid")
	flag.BoolVar(&opts.commands, "commands", false, "print the draw-command log")
	flag.BoolVar(&opts.clipboard, "clipboard", false, "copy the character grid to the clipboard")
	flag.IntVar(&opts.mapWidth, "map-width", 0, "override map width in cells")
	flag.IntVar(&opts.mapHeight, "map-height", 0, "override map height in cells")
	flag.StringVar(&opts.fontPath, "font", "", "TTF/OTF font file (default: embedded Go Mono)")
	flag.Parse()

	if opts.scale <= 0 {
		fmt.Println("error: -scale must be > 0")
		return
	}
	if opts.out == "" && !opts.commands && !opts.clipboard {
		opts.ascii = true
	}

	cfg, err := config.Load(opts.envFile)
	if err != nil {
		log.Fatal(err)
	}
	applyOverrides(&cfg, opts)

	if err := run(cfg, opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// applyOverrides lets explicit flags win over env settings.
func applyOverrides(cfg *config.Config, opts options) {
	if opts.mapWidth != 0 {
		cfg.MapWidth = opts.mapWidth
	}
	if opts.mapHeight != 0 {
		cfg.MapHeight = opts.mapHeight
	}
	if opts.fontPath != "" {
		cfg.FontPath = opts.fontPath
	}
}

func run(cfg config.Config, opts options, w io.Writer) error {
	s, err := newScene(cfg)
	if err != nil {
		return err
	}

	if opts.out != "" {
		if err := writePNG(s, cfg, opts.out, opts.scale); err != nil {
			return err
		}
		log.Printf("scene-dump: wrote %s (%dx%d, scale %d)", opts.out, cfg.ScreenWidth, cfg.ScreenHeight, opts.scale)
	}
	if opts.commands {
		for _, line := range commandLog(s, cfg) {
			fmt.Fprintln(w, line)
		}
	}
	if opts.ascii || opts.clipboard {
		grid, err := asciiFrame(s, cfg)
		if err != nil {
			return err
		}
		if opts.ascii {
			fmt.Fprint(w, grid)
		}
		if opts.clipboard {
			if err := clipboard.WriteAll(grid); err != nil {
				return fmt.Errorf("scene-dump: copy to clipboard: %w", err)
			}
			log.Printf("scene-dump: copied %d rows to clipboard", strings.Count(grid, "\n"))
		}
	}
	return nil
}

func newScene(cfg config.Config) (*app.Scene, error) {
	font, err := assets.LoadFont(cfg.FontPath)
	if err != nil {
		return nil, err
	}
	return app.NewScene(cfg, glyph.NewRaster(font.Key(), font.SFNT, cfg.FontSize), nil)
}

func writePNG(s *app.Scene, cfg config.Config, path string, scale int) error {
	canvas := raster.NewCanvas(cfg.ScreenWidth, cfg.ScreenHeight)
	stats := s.Draw(canvas)
	if stats.Skipped > 0 {
		log.Printf("scene-dump: %d glyphs missing from atlas %q", stats.Skipped, s.Atlas.Alphabet())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("scene-dump: %w", err)
	}
	if err := raster.WritePNG(f, canvas.Image(), scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// commandLog renders one frame into a Recorder and returns one line per
// draw command, in draw order.
func commandLog(s *app.Scene, cfg config.Config) []string {
	rec := render.NewRecorder(cfg.ScreenWidth, cfg.ScreenHeight)
	s.Draw(rec)
	lines := make([]string, len(rec.Commands))
	for i, c := range rec.Commands {
		lines[i] = c.String()
	}
	return lines
}

// gridSize is the character grid that covers the screen, one character per
// scene cell.
func gridSize(cfg config.Config) (int, int) {
	cols := (cfg.ScreenWidth + cfg.CellWidth - 1) / cfg.CellWidth
	rows := (cfg.ScreenHeight + cfg.CellHeight - 1) / cfg.CellHeight
	return cols, rows
}

// asciiFrame draws the scene onto an offscreen terminal and returns its text.
func asciiFrame(s *app.Scene, cfg config.Config) (string, error) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return "", fmt.Errorf("scene-dump: init screen: %w", err)
	}
	defer screen.Fini()
	screen.SetSize(gridSize(cfg))

	surface := terminal.NewSurface(screen, cfg.Cell())
	s.Draw(surface)
	return surface.Text(), nil
}
