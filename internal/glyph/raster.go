package glyph

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// TextRenderer renders free text (titles, captions) into a texture.
type TextRenderer interface {
	RenderText(s string, size float64, c color.Color) (Texture, error)
}

// Raster renders glyphs on the CPU into *image.RGBA textures. It needs no
// graphics context, so it serves headless commands and tests.
type Raster struct {
	name string
	font *opentype.Font
	size float64
}

// NewRaster returns a renderer drawing f at size points (72 DPI, so points
// equal pixels). name identifies the font in atlas cache keys.
func NewRaster(name string, f *opentype.Font, size float64) *Raster {
	return &Raster{name: name, font: f, size: size}
}

// ID implements Renderer.
func (r *Raster) ID() string {
	return fmt.Sprintf("raster:%s@%g", r.name, r.size)
}

func (r *Raster) face(size float64) (font.Face, error) {
	if r.font == nil {
		return nil, fmt.Errorf("glyph: raster %s has no font", r.name)
	}
	return opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// RenderStrip implements Renderer. Each glyph is centred horizontally in its
// cell, vertically centred on the font's ascent+descent, and clipped to the
// cell so a wide glyph never bleeds into its neighbour. Glyphs are drawn in
// opaque white so they can be tinted at blit time.
func (r *Raster) RenderStrip(alphabet []rune, cell Size) (Texture, error) {
	face, err := r.face(r.size)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	var buf sfnt.Buffer
	for _, g := range alphabet {
		idx, err := r.font.GlyphIndex(&buf, g)
		if err != nil {
			return nil, fmt.Errorf("glyph: lookup %q: %w", g, err)
		}
		if idx == 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingGlyph, g)
		}
	}

	strip := image.NewRGBA(image.Rect(0, 0, len(alphabet)*cell.W, cell.H))
	m := face.Metrics()
	baseline := (fixed.I(cell.H)-(m.Ascent+m.Descent))/2 + m.Ascent
	for i, g := range alphabet {
		adv, _ := face.GlyphAdvance(g)
		dst := strip.SubImage(image.Rect(i*cell.W, 0, (i+1)*cell.W, cell.H)).(*image.RGBA)
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.White,
			Face: face,
			Dot: fixed.Point26_6{
				X: fixed.I(i*cell.W) + (fixed.I(cell.W)-adv)/2,
				Y: baseline,
			},
		}
		d.DrawString(string(g))
	}
	return strip, nil
}

// RenderText implements TextRenderer.
func (r *Raster) RenderText(s string, size float64, c color.Color) (Texture, error) {
	face, err := r.face(size)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	m := face.Metrics()
	w := font.MeasureString(face, s).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	if w < 1 {
		w = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: m.Ascent},
	}
	d.DrawString(s)
	return img, nil
}
