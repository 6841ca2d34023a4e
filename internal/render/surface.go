// Package render composites a scene frame onto a drawing surface.
//
// A frame is drawn as a fixed sequence of layers (see Layer). Each layer
// paints over the previous ones, so entities always cover tiles and UI
// always covers entities.
package render

import (
	"image"
	"image/color"
)

// Point is a screen position in pixels.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned screen rectangle in pixels.
type Rect struct {
	X, Y float64
	W, H float64
}

// Surface is the display a frame is drawn onto.
type Surface interface {
	// Clear fills the whole surface with c.
	Clear(c color.Color)
	// FillRect fills r with c, blending by c's alpha.
	FillRect(r Rect, c color.Color)
	// DrawImage blits img with its top-left corner at at. A nil tint draws
	// img's own colours; otherwise img's alpha is used as a mask for tint.
	DrawImage(img image.Image, at Point, tint color.Color)
	// Size returns the viewport size in pixels.
	Size() (w, h int)
}

// GlyphSurface is implemented by character-cell devices that draw a rune
// rather than a bitmap. RenderFrame prefers DrawGlyph when available.
type GlyphSurface interface {
	DrawGlyph(g rune, sprite image.Image, at Point, tint color.Color)
}

// TextSurface is implemented by surfaces that draw label text natively.
// TextSize reports the pixel extent s occupies once drawn, which is what
// label anchors are resolved against on such surfaces.
type TextSurface interface {
	DrawText(s string, at Point, c color.Color)
	TextSize(s string) (w, h float64)
}
