// Package raster is a CPU-only render.Surface backed by *image.RGBA.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"

	"github.com/Garsondee/glyphgrid/internal/render"
)

// Canvas draws frames into an in-memory RGBA image.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas returns a transparent w x h canvas.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image returns the canvas pixels. The image is live: later draws change it.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear implements render.Surface.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillRect implements render.Surface.
func (c *Canvas) FillRect(r render.Rect, col color.Color) {
	draw.Draw(c.img, pixelRect(r), image.NewUniform(col), image.Point{}, draw.Over)
}

// DrawImage implements render.Surface. With a tint, src only contributes its
// alpha channel.
func (c *Canvas) DrawImage(src image.Image, at render.Point, tint color.Color) {
	b := src.Bounds()
	x, y := int(math.Round(at.X)), int(math.Round(at.Y))
	dr := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	if tint == nil {
		draw.Draw(c.img, dr, src, b.Min, draw.Over)
		return
	}
	draw.DrawMask(c.img, dr, image.NewUniform(tint), image.Point{}, src, b.Min, draw.Over)
}

// Size implements render.Surface.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// pixelRect rounds a float rectangle to whole pixels.
func pixelRect(r render.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.X)), int(math.Round(r.Y)),
		int(math.Round(r.X+r.W)), int(math.Round(r.Y+r.H)),
	)
}

// Scale returns img enlarged by an integer factor with nearest-neighbour
// sampling, keeping glyph edges crisp. factor <= 1 returns img unchanged.
func Scale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// WritePNG encodes img, scaled by factor, as PNG.
func WritePNG(w io.Writer, img image.Image, factor int) error {
	if err := png.Encode(w, Scale(img, factor)); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}
