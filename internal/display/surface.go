package display

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/glyphgrid/internal/render"
)

// Surface adapts an *ebiten.Image to render.Surface. Non-ebiten images
// handed to DrawImage are uploaded once and reused on later frames.
type Surface struct {
	dst      *ebiten.Image
	uploaded map[image.Image]*ebiten.Image
}

// NewSurface returns a surface with no target; call Target before drawing.
func NewSurface() *Surface {
	return &Surface{uploaded: make(map[image.Image]*ebiten.Image)}
}

// Target points the surface at dst for the next frame.
func (s *Surface) Target(dst *ebiten.Image) *Surface {
	s.dst = dst
	return s
}

// Clear implements render.Surface.
func (s *Surface) Clear(c color.Color) {
	s.dst.Fill(c)
}

// FillRect implements render.Surface.
func (s *Surface) FillRect(r render.Rect, c color.Color) {
	vector.FillRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// DrawImage implements render.Surface. The tint scales the image colours,
// so white glyph sprites come out in exactly the tint colour.
func (s *Surface) DrawImage(img image.Image, at render.Point, tint color.Color) {
	src := s.ebitenImage(img)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(at.X, at.Y)
	if tint != nil {
		op.ColorScale.ScaleWithColor(tint)
	}
	s.dst.DrawImage(src, op)
}

// Size implements render.Surface.
func (s *Surface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) ebitenImage(img image.Image) *ebiten.Image {
	if ei, ok := img.(*ebiten.Image); ok {
		return ei
	}
	if ei, ok := s.uploaded[img]; ok {
		return ei
	}
	ei := ebiten.NewImageFromImage(img)
	s.uploaded[img] = ei
	return ei
}
