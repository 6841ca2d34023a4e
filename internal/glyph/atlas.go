// Package glyph slices a rendered font strip into per-character sprites.
//
// An Atlas is built once from an ordered alphabet and is read-only from then
// on, so a single Atlas can be shared by every frame without locking.
package glyph

import (
	"fmt"
	"image"
)

// Size is a pixel extent. The same Size is used to slice the atlas and to
// place cells on screen.
type Size struct {
	W int
	H int
}

// Valid reports whether both sides are positive.
func (s Size) Valid() bool {
	return s.W > 0 && s.H > 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// Texture is a rendered image that can hand out independent sub-images.
// *image.RGBA and *ebiten.Image both satisfy it.
type Texture interface {
	image.Image
	SubImage(r image.Rectangle) image.Image
}

// Renderer is the font capability an Atlas is built from.
//
// RenderStrip must draw the whole alphabet once as a single horizontal strip,
// cell.H pixels tall, with glyph i occupying exactly the columns
// [i*cell.W, (i+1)*cell.W). This is a fixed-pitch (monospace) layout and the
// atlas slices the strip on that assumption; a renderer that lays glyphs out
// at any other pitch produces misaligned sprites.
//
// ID identifies the font and point size; together with the alphabet and cell
// size it keys the atlas Cache.
type Renderer interface {
	ID() string
	RenderStrip(alphabet []rune, cell Size) (Texture, error)
}

// Atlas maps each glyph of an alphabet to its region of a rendered strip.
type Atlas struct {
	alphabet []rune
	cell     Size
	strip    Texture
	regions  map[rune]image.Rectangle
	sprites  map[rune]image.Image
}

// Build renders alphabet through r and slices the result into cell-sized
// regions, glyph i at origin (i*cell.W, 0). Every failure is returned as a
// *BuildError.
func Build(r Renderer, alphabet string, cell Size) (*Atlas, error) {
	fail := func(err error) (*Atlas, error) {
		id := ""
		if r != nil {
			id = r.ID()
		}
		return nil, &BuildError{Renderer: id, Alphabet: alphabet, Cell: cell, Err: err}
	}
	if r == nil {
		return fail(ErrNoRenderer)
	}
	runes := []rune(alphabet)
	if len(runes) == 0 {
		return fail(ErrEmptyAlphabet)
	}
	if !cell.Valid() {
		return fail(ErrBadCell)
	}
	seen := make(map[rune]bool, len(runes))
	for _, g := range runes {
		if seen[g] {
			return fail(fmt.Errorf("%w: %q", ErrDuplicateGlyph, g))
		}
		seen[g] = true
	}

	strip, err := r.RenderStrip(runes, cell)
	if err != nil {
		return fail(err)
	}
	if strip == nil {
		return fail(ErrNoTexture)
	}
	b := strip.Bounds()
	if b.Dx() < len(runes)*cell.W || b.Dy() < cell.H {
		return fail(fmt.Errorf("%w: got %dx%d, need %dx%d",
			ErrShortStrip, b.Dx(), b.Dy(), len(runes)*cell.W, cell.H))
	}

	a := &Atlas{
		alphabet: runes,
		cell:     cell,
		strip:    strip,
		regions:  make(map[rune]image.Rectangle, len(runes)),
		sprites:  make(map[rune]image.Image, len(runes)),
	}
	for i, g := range runes {
		region := image.Rect(i*cell.W, 0, (i+1)*cell.W, cell.H)
		a.regions[g] = region
		a.sprites[g] = strip.SubImage(region.Add(b.Min))
	}
	return a, nil
}

// Region returns the glyph's rectangle relative to the strip origin.
func (a *Atlas) Region(g rune) (image.Rectangle, bool) {
	r, ok := a.regions[g]
	return r, ok
}

// Sprite returns the glyph's sub-image.
func (a *Atlas) Sprite(g rune) (image.Image, bool) {
	s, ok := a.sprites[g]
	return s, ok
}

// Has reports whether g is in the atlas.
func (a *Atlas) Has(g rune) bool {
	_, ok := a.regions[g]
	return ok
}

// Len returns the number of glyphs.
func (a *Atlas) Len() int {
	return len(a.alphabet)
}

// Alphabet returns the glyphs in strip order.
func (a *Atlas) Alphabet() string {
	return string(a.alphabet)
}

// Cell returns the per-glyph size.
func (a *Atlas) Cell() Size {
	return a.cell
}

// Strip returns the full rendered texture.
func (a *Atlas) Strip() Texture {
	return a.strip
}
