package display

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/sfnt"

	"github.com/Garsondee/glyphgrid/internal/assets"
	"github.com/Garsondee/glyphgrid/internal/glyph"
)

// FontRenderer renders glyph strips and labels straight into GPU images with
// ebiten's text/v2.
type FontRenderer struct {
	font   assets.Font
	source *text.GoTextFaceSource
	size   float64
}

// NewFontRenderer prepares f for drawing at size points.
func NewFontRenderer(f assets.Font, size float64) (*FontRenderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(f.Data))
	if err != nil {
		return nil, fmt.Errorf("display: face source %s: %w", f.Name, err)
	}
	return &FontRenderer{font: f, source: src, size: size}, nil
}

// ID implements glyph.Renderer.
func (r *FontRenderer) ID() string {
	return fmt.Sprintf("ebiten:%s@%g", r.font.Key(), r.size)
}

// RenderStrip implements glyph.Renderer, placing glyph i centred in the
// cell starting at x = i*cell.W and clipped to it.
func (r *FontRenderer) RenderStrip(alphabet []rune, cell glyph.Size) (glyph.Texture, error) {
	if r.font.SFNT != nil {
		var buf sfnt.Buffer
		for _, g := range alphabet {
			idx, err := r.font.SFNT.GlyphIndex(&buf, g)
			if err != nil {
				return nil, fmt.Errorf("display: lookup %q: %w", g, err)
			}
			if idx == 0 {
				return nil, fmt.Errorf("%w: %q", glyph.ErrMissingGlyph, g)
			}
		}
	}

	face := &text.GoTextFace{Source: r.source, Size: r.size}
	m := face.Metrics()
	top := (float64(cell.H) - (m.HAscent + m.HDescent)) / 2

	strip := ebiten.NewImage(len(alphabet)*cell.W, cell.H)
	for i, g := range alphabet {
		s := string(g)
		adv := text.Advance(s, face)
		dst := strip.SubImage(image.Rect(i*cell.W, 0, (i+1)*cell.W, cell.H)).(*ebiten.Image)
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(i*cell.W)+(float64(cell.W)-adv)/2, top)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(dst, s, face, op)
	}
	return strip, nil
}

// RenderText implements glyph.TextRenderer.
func (r *FontRenderer) RenderText(s string, size float64, c color.Color) (glyph.Texture, error) {
	face := &text.GoTextFace{Source: r.source, Size: size}
	w, h := text.Measure(s, face, 0)
	img := ebiten.NewImage(max(1, int(math.Ceil(w))), max(1, int(math.Ceil(h))))
	op := &text.DrawOptions{}
	op.ColorScale.ScaleWithColor(c)
	text.Draw(img, s, face, op)
	return img, nil
}
