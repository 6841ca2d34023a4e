package render

import (
	"image"
	"image/color"
)

// Element is a header or UI item drawn in its own layer.
type Element interface {
	Draw(s Surface)
}

// FilledRect is a solid rectangle.
type FilledRect struct {
	Rect  Rect
	Color color.Color
}

// Draw implements Element.
func (f FilledRect) Draw(s Surface) {
	s.FillRect(f.Rect, f.Color)
}

// Anchor selects the viewport reference point a Label's Offset is measured from.
type Anchor uint8

const (
	AnchorTopLeft    Anchor = iota // Offset from the top-left corner
	AnchorTopCenter                // Label centred on (w/2 + Offset.X, Offset.Y)
	AnchorBottomLeft               // Offset.Y measured upward from the bottom edge
)

// Label is pre-rendered text. Text is kept alongside the image so surfaces
// with native text output can use it directly.
type Label struct {
	Text   string
	Image  image.Image
	Color  color.Color
	Anchor Anchor
	Offset Point
}

// Position resolves the label's top-left corner inside a w x h viewport,
// sized by its pre-rendered image.
func (l Label) Position(w, h int) Point {
	var iw, ih float64
	if l.Image != nil {
		b := l.Image.Bounds()
		iw, ih = float64(b.Dx()), float64(b.Dy())
	}
	return l.place(iw, ih, w, h)
}

func (l Label) place(iw, ih float64, w, h int) Point {
	switch l.Anchor {
	case AnchorTopCenter:
		return Point{X: float64(w)/2 - iw/2 + l.Offset.X, Y: l.Offset.Y - ih/2}
	case AnchorBottomLeft:
		return Point{X: l.Offset.X, Y: float64(h) - l.Offset.Y}
	default:
		return l.Offset
	}
}

// Draw implements Element. On a TextSurface the anchor uses the surface's
// own text extent, since the bitmap size means nothing there.
func (l Label) Draw(s Surface) {
	w, h := s.Size()
	if ts, ok := s.(TextSurface); ok {
		tw, th := ts.TextSize(l.Text)
		ts.DrawText(l.Text, l.place(tw, th, w, h), l.Color)
		return
	}
	if l.Image == nil {
		return
	}
	s.DrawImage(l.Image, l.Position(w, h), nil)
}
