package app

import (
	"fmt"
	"log"

	"github.com/Garsondee/glyphgrid/internal/config"
	"github.com/Garsondee/glyphgrid/internal/glyph"
	"github.com/Garsondee/glyphgrid/internal/hud"
	"github.com/Garsondee/glyphgrid/internal/render"
	"github.com/Garsondee/glyphgrid/internal/scene"
)

// FontRenderer renders both the glyph strip and the header text.
type FontRenderer interface {
	glyph.Renderer
	glyph.TextRenderer
}

// Scene is the fully set-up state a frame is drawn from. Tiles, Atlas and
// Header are fixed at construction; Roster is mutated between frames.
type Scene struct {
	Tiles  []scene.Tile
	Roster *scene.Roster
	Player scene.Handle
	Atlas  *glyph.Atlas
	Header []render.Element
	// Missing lists map and roster glyphs the atlas cannot draw. Frames
	// still render; those cells are skipped.
	Missing []rune

	layout   render.Layout
	mapCols  int
	barWidth float64
}

// NewScene builds the atlas (through cache), the header labels, the map and
// the starting roster. An atlas failure is returned as *glyph.BuildError and
// means the scene cannot be shown.
func NewScene(cfg config.Config, fr FontRenderer, cache *glyph.Cache) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cache == nil {
		cache = glyph.NewCache()
	}
	atlas, err := cache.Atlas(fr, cfg.Alphabet, cfg.Cell())
	if err != nil {
		return nil, err
	}
	header, err := hud.Header(fr, hud.HeaderText{
		Title:   cfg.Title,
		Caption: cfg.Caption,
		Color:   config.TextColor,
	})
	if err != nil {
		return nil, fmt.Errorf("app: header: %w", err)
	}

	s := &Scene{
		Tiles:    scene.GenerateMap(cfg.MapWidth, cfg.MapHeight),
		Roster:   scene.NewRoster(),
		Atlas:    atlas,
		Header:   header,
		layout:   cfg.Layout(),
		barWidth: cfg.HealthBarWidth,
	}
	if len(s.Tiles) > 0 {
		s.mapCols = cfg.MapWidth
	}
	s.Player = scene.Populate(s.Roster)
	s.Missing = missingGlyphs(atlas, s.Tiles, s.Roster.Entities())
	if len(s.Missing) > 0 {
		log.Printf("app: atlas %q lacks glyphs %q", atlas.Alphabet(), string(s.Missing))
	}
	return s, nil
}

// missingGlyphs returns the glyphs used by tiles or entities that atlas
// has no sprite for, in first-seen order.
func missingGlyphs(atlas *glyph.Atlas, tiles []scene.Tile, entities []scene.Entity) []rune {
	used := scene.MapGlyphs(tiles)
	for _, e := range entities {
		used = append(used, e.Glyph)
	}
	seen := make(map[rune]bool)
	var missing []rune
	for _, g := range used {
		if seen[g] || atlas.Has(g) {
			continue
		}
		seen[g] = true
		missing = append(missing, g)
	}
	return missing
}

// Layout returns the frame geometry.
func (s *Scene) Layout() render.Layout {
	return s.layout
}

// Frame snapshots the scene for one refresh. The player's health bar is
// recomputed from the roster every call.
func (s *Scene) Frame() render.Frame {
	f := render.Frame{
		Header:   s.Header,
		Tiles:    s.Tiles,
		Entities: s.Roster.Entities(),
	}
	if p, ok := s.Roster.Get(s.Player); ok {
		bar := hud.ComputeHealthBar(*p, s.barWidth, hud.BarPlacement(s.mapCols, s.layout))
		f.UI = bar.Elements(config.HealthBarColor)
	}
	return f
}

// Draw renders one frame onto surface.
func (s *Scene) Draw(surface render.Surface) render.Stats {
	return render.RenderFrame(surface, s.Frame(), s.Atlas, s.layout)
}
