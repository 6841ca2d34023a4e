package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/Garsondee/glyphgrid/internal/glyph"
	"github.com/Garsondee/glyphgrid/internal/render"
)

const (
	ScreenWidth    = 800
	ScreenHeight   = 600
	MapWidth       = 20
	MapHeight      = 15
	CellWidth      = 24
	CellHeight     = 24
	OffsetX        = 50
	OffsetY        = 120
	FontSize       = 20.0 // atlas glyph size in points
	HealthBarWidth = 100.0
	Alphabet       = "#@g.%"

	Title   = "Roguelike game in Go"
	Caption = "Go Mono font by Bigelow & Holmes, terms: BSD-style license"

	EnvPrefix = "GLYPHGRID_"
)

var (
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	TextColor       = color.RGBA{0, 0, 0, 255}
	HealthBarColor  = color.RGBA{255, 0, 0, 255}
)

// Config is everything injected into the scene at setup.
type Config struct {
	ScreenWidth    int
	ScreenHeight   int
	MapWidth       int
	MapHeight      int
	CellWidth      int
	CellHeight     int
	OffsetX        int
	OffsetY        int
	Alphabet       string
	FontPath       string // empty selects the embedded font
	FontSize       float64
	HealthBarWidth float64
	Title          string
	Caption        string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ScreenWidth:    ScreenWidth,
		ScreenHeight:   ScreenHeight,
		MapWidth:       MapWidth,
		MapHeight:      MapHeight,
		CellWidth:      CellWidth,
		CellHeight:     CellHeight,
		OffsetX:        OffsetX,
		OffsetY:        OffsetY,
		Alphabet:       Alphabet,
		FontSize:       FontSize,
		HealthBarWidth: HealthBarWidth,
		Title:          Title,
		Caption:        Caption,
	}
}

// Load starts from Default, applies each env file that exists (later files
// win), then the process environment. Keys carry the GLYPHGRID_ prefix, e.g.
// GLYPHGRID_MAP_WIDTH=40. Missing files are skipped.
func Load(envFiles ...string) (Config, error) {
	c := Default()
	for _, path := range envFiles {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		vals, err := godotenv.Read(path)
		if err != nil {
			return c, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := c.apply(func(k string) (string, bool) {
			v, ok := vals[k]
			return v, ok
		}); err != nil {
			return c, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := c.apply(os.LookupEnv); err != nil {
		return c, fmt.Errorf("config: environment: %w", err)
	}
	return c, nil
}

func (c *Config) apply(get func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"SCREEN_WIDTH", &c.ScreenWidth},
		{"SCREEN_HEIGHT", &c.ScreenHeight},
		{"MAP_WIDTH", &c.MapWidth},
		{"MAP_HEIGHT", &c.MapHeight},
		{"CELL_WIDTH", &c.CellWidth},
		{"CELL_HEIGHT", &c.CellHeight},
		{"OFFSET_X", &c.OffsetX},
		{"OFFSET_Y", &c.OffsetY},
	}
	for _, f := range ints {
		v, ok := get(EnvPrefix + f.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, f.key, err)
		}
		*f.dst = n
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"FONT_SIZE", &c.FontSize},
		{"HEALTH_BAR_WIDTH", &c.HealthBarWidth},
	}
	for _, f := range floats {
		v, ok := get(EnvPrefix + f.key)
		if !ok {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, f.key, err)
		}
		*f.dst = x
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"ALPHABET", &c.Alphabet},
		{"FONT_PATH", &c.FontPath},
		{"TITLE", &c.Title},
		{"CAPTION", &c.Caption},
	}
	for _, f := range strs {
		if v, ok := get(EnvPrefix + f.key); ok {
			*f.dst = v
		}
	}
	return nil
}

// Validate rejects settings the scene cannot be drawn with. Non-positive map
// dimensions are allowed and produce an empty map.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("config: screen %dx%d must be positive", c.ScreenWidth, c.ScreenHeight)
	}
	if !c.Cell().Valid() {
		return fmt.Errorf("config: cell %s must be positive", c.Cell())
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("config: font size %g must be positive", c.FontSize)
	}
	if c.HealthBarWidth < 0 {
		return fmt.Errorf("config: health bar width %g must not be negative", c.HealthBarWidth)
	}
	if c.Alphabet == "" {
		return errors.New("config: alphabet is empty")
	}
	seen := make(map[rune]bool)
	for _, r := range c.Alphabet {
		if seen[r] {
			return fmt.Errorf("config: alphabet repeats %q", r)
		}
		seen[r] = true
	}
	return nil
}

// Cell returns the cell size.
func (c Config) Cell() glyph.Size {
	return glyph.Size{W: c.CellWidth, H: c.CellHeight}
}

// Layout returns the frame geometry.
func (c Config) Layout() render.Layout {
	return render.Layout{
		Cell:       c.Cell(),
		Offset:     render.Point{X: float64(c.OffsetX), Y: float64(c.OffsetY)},
		Background: BackgroundColor,
	}
}
