package render

import (
	"image/color"

	"github.com/Garsondee/glyphgrid/internal/glyph"
	"github.com/Garsondee/glyphgrid/internal/scene"
)

// Layer is one pass of the frame pipeline. Lower values draw first.
type Layer uint8

const (
	LayerClear    Layer = iota // Fill with the background colour
	LayerHeader                // Title and caption text
	LayerTiles                 // Map tiles, in map order
	LayerEntities              // Roster entities, in roster order
	LayerUI                    // Overlays such as the health bar
	layerCount                 // sentinel
)

var layerNames = [layerCount]string{
	LayerClear:    "clear",
	LayerHeader:   "header",
	LayerTiles:    "tiles",
	LayerEntities: "entities",
	LayerUI:       "ui",
}

func (l Layer) String() string {
	if l < layerCount {
		return layerNames[l]
	}
	return "unknown"
}

// LayerObserver is implemented by surfaces that want to know where each
// layer starts, e.g. for batching or for recording draw order.
type LayerObserver interface {
	BeginLayer(l Layer)
}

// Layout holds the fixed geometry shared by every frame.
type Layout struct {
	Cell       glyph.Size
	Offset     Point       // shift applied to the whole grid, leaving room for the header
	Background color.Color // nil clears to white
}

// CellOrigin converts a grid position to the screen position of the cell's
// top-left corner: (col*W, row*H) + Offset.
func (l Layout) CellOrigin(p scene.Pos) Point {
	return Point{
		X: float64(p.Col*l.Cell.W) + l.Offset.X,
		Y: float64(p.Row*l.Cell.H) + l.Offset.Y,
	}
}

// Frame is everything drawn in one refresh. RenderFrame only reads it.
type Frame struct {
	Header   []Element
	Tiles    []scene.Tile
	Entities []scene.Entity
	UI       []Element
}

// Stats counts what a frame drew.
type Stats struct {
	Tiles    int // tiles blitted
	Entities int // entities blitted
	Elements int // header and UI elements drawn
	Skipped  int // tiles and entities whose glyph is not in the atlas
}

type frameContext struct {
	surface Surface
	glyphs  GlyphSurface
	frame   *Frame
	atlas   *glyph.Atlas
	layout  Layout
	stats   Stats
}

type pass struct {
	layer Layer
	draw  func(fc *frameContext)
}

// pipeline is the frame's draw order. Each entry overpaints the ones before it.
var pipeline = [layerCount]pass{
	{LayerClear, clearPass},
	{LayerHeader, headerPass},
	{LayerTiles, tilePass},
	{LayerEntities, entityPass},
	{LayerUI, uiPass},
}

// RenderFrame draws f onto s: clear, header, tiles, entities, UI, in that
// order. Tiles and entities whose glyph is missing from atlas are skipped
// and counted; the rest of the frame still draws. A nil atlas skips every
// tile and entity.
func RenderFrame(s Surface, f Frame, atlas *glyph.Atlas, l Layout) Stats {
	fc := &frameContext{surface: s, frame: &f, atlas: atlas, layout: l}
	if gs, ok := s.(GlyphSurface); ok {
		fc.glyphs = gs
	}
	obs, _ := s.(LayerObserver)
	for _, p := range pipeline {
		if obs != nil {
			obs.BeginLayer(p.layer)
		}
		p.draw(fc)
	}
	return fc.stats
}

func clearPass(fc *frameContext) {
	bg := fc.layout.Background
	if bg == nil {
		bg = color.White
	}
	fc.surface.Clear(bg)
}

func headerPass(fc *frameContext) {
	fc.drawElements(fc.frame.Header)
}

func tilePass(fc *frameContext) {
	for _, t := range fc.frame.Tiles {
		if fc.drawGlyph(t.Glyph, t.Pos, t.Color) {
			fc.stats.Tiles++
		}
	}
}

func entityPass(fc *frameContext) {
	for _, e := range fc.frame.Entities {
		if fc.drawGlyph(e.Glyph, e.Pos, e.Color) {
			fc.stats.Entities++
		}
	}
}

func uiPass(fc *frameContext) {
	fc.drawElements(fc.frame.UI)
}

func (fc *frameContext) drawElements(els []Element) {
	for _, el := range els {
		if el == nil {
			continue
		}
		el.Draw(fc.surface)
		fc.stats.Elements++
	}
}

// drawGlyph blits g at grid position p, reporting false if the atlas has no
// sprite for it.
func (fc *frameContext) drawGlyph(g rune, p scene.Pos, tint color.RGBA) bool {
	if fc.atlas == nil {
		fc.stats.Skipped++
		return false
	}
	sprite, ok := fc.atlas.Sprite(g)
	if !ok {
		fc.stats.Skipped++
		return false
	}
	at := fc.layout.CellOrigin(p)
	if fc.glyphs != nil {
		fc.glyphs.DrawGlyph(g, sprite, at, tint)
		return true
	}
	fc.surface.DrawImage(sprite, at, tint)
	return true
}
