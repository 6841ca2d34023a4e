// Package hud builds the overlay elements drawn above the scene.
package hud

import (
	"image/color"

	"github.com/Garsondee/glyphgrid/internal/render"
	"github.com/Garsondee/glyphgrid/internal/scene"
)

// emptyAlpha is the opacity of the unfilled part of a bar (50%).
const emptyAlpha = 0.5

// Placement locates a health bar on screen.
type Placement struct {
	Origin render.Point
	Height float64
}

// HealthBar is the geometry of one bar. Empty spans the full width; Filled
// shares its origin and height and is never wider than Empty.
type HealthBar struct {
	Empty  render.Rect
	Filled render.Rect
	Ratio  float64
}

// HealthRatio returns hp/maxHP clamped to [0, 1]. A maxHP of zero or less
// means the entity carries no health and yields 0.
func HealthRatio(hp, maxHP int) float64 {
	if maxHP <= 0 {
		return 0
	}
	r := float64(hp) / float64(maxHP)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// ComputeHealthBar sizes e's bar: the filled width is fullWidth scaled by
// the clamped health ratio.
func ComputeHealthBar(e scene.Entity, fullWidth float64, p Placement) HealthBar {
	ratio := HealthRatio(e.HP, e.MaxHP)
	return HealthBar{
		Empty:  render.Rect{X: p.Origin.X, Y: p.Origin.Y, W: fullWidth, H: p.Height},
		Filled: render.Rect{X: p.Origin.X, Y: p.Origin.Y, W: fullWidth * ratio, H: p.Height},
		Ratio:  ratio,
	}
}

// BarOrigin places a bar just right of a map mapCols cells wide, level with
// the top of the grid.
func BarOrigin(mapCols int, l render.Layout) render.Point {
	return render.Point{
		X: l.Offset.X + float64(mapCols*l.Cell.W),
		Y: l.Offset.Y,
	}
}

// BarPlacement is the standard placement for a map mapCols cells wide: at
// BarOrigin, one cell tall.
func BarPlacement(mapCols int, l render.Layout) Placement {
	return Placement{Origin: BarOrigin(mapCols, l), Height: float64(l.Cell.H)}
}

// Elements returns the bar's draw list: the translucent background first,
// then the opaque fill over it.
func (b HealthBar) Elements(c color.RGBA) []render.Element {
	c.A = 255
	empty := c
	empty.A = uint8(float64(c.A) * emptyAlpha)
	return []render.Element{
		render.FilledRect{Rect: b.Empty, Color: color.NRGBA(empty)},
		render.FilledRect{Rect: b.Filled, Color: color.NRGBA(c)},
	}
}
