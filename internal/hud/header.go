package hud

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/glyphgrid/internal/glyph"
	"github.com/Garsondee/glyphgrid/internal/render"
)

const (
	TitleSize   = 72.0 // points
	CaptionSize = 20.0

	titleCentreY   = 40 // px from the top to the title's centre
	captionMarginX = 2
	captionRaiseY  = 60 // px from the bottom edge to the caption's top
)

// HeaderText is the text shown around the map.
type HeaderText struct {
	Title   string
	Caption string
	Color   color.Color
}

// Header renders the title and caption once. The returned labels are
// immutable and can be reused for every frame. Empty strings are left out.
func Header(tr glyph.TextRenderer, h HeaderText) ([]render.Element, error) {
	var out []render.Element
	if h.Title != "" {
		img, err := tr.RenderText(h.Title, TitleSize, h.Color)
		if err != nil {
			return nil, fmt.Errorf("hud: render title: %w", err)
		}
		out = append(out, render.Label{
			Text:   h.Title,
			Image:  img,
			Color:  h.Color,
			Anchor: render.AnchorTopCenter,
			Offset: render.Point{Y: titleCentreY},
		})
	}
	if h.Caption != "" {
		img, err := tr.RenderText(h.Caption, CaptionSize, h.Color)
		if err != nil {
			return nil, fmt.Errorf("hud: render caption: %w", err)
		}
		out = append(out, render.Label{
			Text:   h.Caption,
			Image:  img,
			Color:  h.Color,
			Anchor: render.AnchorBottomLeft,
			Offset: render.Point{X: captionMarginX, Y: captionRaiseY},
		})
	}
	return out, nil
}
