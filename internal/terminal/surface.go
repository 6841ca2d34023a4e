// Package terminal draws scene frames onto a character-cell screen.
//
// Pixel coordinates from the compositor are divided by the cell size, so one
// scene cell maps to one terminal cell. Glyphs are written as runes with the
// tint as foreground colour; filled rectangles become cell backgrounds.
package terminal

import (
	"image"
	"image/color"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/glyphgrid/internal/glyph"
	"github.com/Garsondee/glyphgrid/internal/render"
)

type cell struct {
	ch rune
	fg color.RGBA
	bg color.RGBA
}

// Surface buffers one frame of cells and writes them to a tcell.Screen on
// Flush. It implements render.Surface, render.GlyphSurface and
// render.TextSurface.
type Surface struct {
	screen tcell.Screen
	cell   glyph.Size
	cols   int
	rows   int
	cells  []cell
}

// NewSurface wraps screen. cellPx is the scene's cell size in pixels.
func NewSurface(screen tcell.Screen, cellPx glyph.Size) *Surface {
	s := &Surface{screen: screen, cell: cellPx}
	s.resize()
	return s
}

func (s *Surface) resize() {
	cols, rows := s.screen.Size()
	if cols != s.cols || rows != s.rows || s.cells == nil {
		s.cols, s.rows = cols, rows
		s.cells = make([]cell, cols*rows)
	}
}

func (s *Surface) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return nil
	}
	return &s.cells[y*s.cols+x]
}

func (s *Surface) toCell(p render.Point) (int, int) {
	return int(math.Floor(p.X / float64(s.cell.W))), int(math.Floor(p.Y / float64(s.cell.H)))
}

// Clear implements render.Surface. It also picks up a resized screen.
func (s *Surface) Clear(c color.Color) {
	s.resize()
	bg := toRGBA(c)
	for i := range s.cells {
		s.cells[i] = cell{ch: ' ', fg: bg, bg: bg}
	}
}

// FillRect implements render.Surface. A cell is covered when the rectangle
// spans at least half of it; translucent colours blend into the background.
func (s *Surface) FillRect(r render.Rect, c color.Color) {
	src := color.NRGBAModel.Convert(c).(color.NRGBA)
	x0 := int(math.Round(r.X / float64(s.cell.W)))
	y0 := int(math.Round(r.Y / float64(s.cell.H)))
	x1 := int(math.Round((r.X + r.W) / float64(s.cell.W)))
	y1 := int(math.Round((r.Y + r.H) / float64(s.cell.H)))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if cl := s.at(x, y); cl != nil {
				cl.bg = blend(cl.bg, src)
			}
		}
	}
}

// DrawImage implements render.Surface. Bitmaps have no cell form; only
// glyphs and text reach a terminal.
func (s *Surface) DrawImage(image.Image, render.Point, color.Color) {}

// DrawGlyph implements render.GlyphSurface.
func (s *Surface) DrawGlyph(g rune, _ image.Image, at render.Point, tint color.Color) {
	x, y := s.toCell(at)
	if cl := s.at(x, y); cl != nil {
		cl.ch = g
		cl.fg = toRGBA(tint)
	}
}

// DrawText implements render.TextSurface. Text is clamped onto the screen
// vertically and shifted left to fit when it would run past the right edge;
// only text wider than the screen is clipped.
func (s *Surface) DrawText(text string, at render.Point, c color.Color) {
	runes := []rune(text)
	x, y := s.toCell(at)
	if x+len(runes) > s.cols {
		x = s.cols - len(runes)
	}
	x = max(x, 0)
	y = min(max(y, 0), s.rows-1)
	fg := toRGBA(c)
	for i, ch := range runes {
		if cl := s.at(x+i, y); cl != nil {
			cl.ch = ch
			cl.fg = fg
		}
	}
}

// TextSize implements render.TextSurface: one cell per rune.
func (s *Surface) TextSize(text string) (float64, float64) {
	return float64(utf8.RuneCountInString(text) * s.cell.W), float64(s.cell.H)
}

// Size implements render.Surface, reporting the screen in scene pixels.
func (s *Surface) Size() (int, int) {
	return s.cols * s.cell.W, s.rows * s.cell.H
}

// Flush writes the buffered frame to the screen and shows it.
func (s *Surface) Flush() {
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			cl := s.cells[y*s.cols+x]
			style := tcell.StyleDefault.Foreground(toTcell(cl.fg)).Background(toTcell(cl.bg))
			s.screen.SetContent(x, y, cl.ch, nil, style)
		}
	}
	s.screen.Show()
}

// Text returns the buffered frame as plain text, one line per row with
// trailing spaces removed.
func (s *Surface) Text() string {
	var b strings.Builder
	for y := 0; y < s.rows; y++ {
		line := make([]rune, s.cols)
		for x := 0; x < s.cols; x++ {
			ch := s.cells[y*s.cols+x].ch
			if ch == 0 {
				ch = ' '
			}
			line[x] = ch
		}
		b.WriteString(strings.TrimRight(string(line), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{A: 255}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// blend composites src over an opaque dst.
func blend(dst color.RGBA, src color.NRGBA) color.RGBA {
	a := float64(src.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(s)*a + float64(d)*(1-a)))
	}
	return color.RGBA{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}
