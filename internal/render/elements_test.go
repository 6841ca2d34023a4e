package render

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestLabel_PositionAnchors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 80))
	cases := []struct {
		anchor Anchor
		offset Point
		want   Point
	}{
		{AnchorTopLeft, Point{X: 5, Y: 6}, Point{X: 5, Y: 6}},
		{AnchorTopCenter, Point{X: 0, Y: 40}, Point{X: 300, Y: 0}},
		{AnchorBottomLeft, Point{X: 2, Y: 60}, Point{X: 2, Y: 540}},
	}
	for _, tc := range cases {
		l := Label{Image: img, Anchor: tc.anchor, Offset: tc.offset}
		if got := l.Position(800, 600); got != tc.want {
			t.Errorf("anchor %d: expected %v, got %v", tc.anchor, tc.want, got)
		}
	}
}

func TestLabel_DrawBlitsImageUntinted(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	rec := NewRecorder(100, 100)
	Label{Text: "hi", Image: img, Anchor: AnchorTopLeft, Offset: Point{X: 1, Y: 2}}.Draw(rec)
	if len(rec.Commands) != 1 || rec.Commands[0].Op != OpDrawImage {
		t.Fatalf("expected one blit, got %v", rec.Commands)
	}
	if rec.Commands[0].Color != nil {
		t.Fatalf("labels keep their own colours, got tint %v", rec.Commands[0].Color)
	}
}

func TestLabel_WithoutImageDrawsNothing(t *testing.T) {
	rec := NewRecorder(100, 100)
	Label{Text: "hi"}.Draw(rec)
	if len(rec.Commands) != 0 {
		t.Fatalf("expected no commands, got %v", rec.Commands)
	}
}

type textRecorder struct {
	*Recorder
	texts []string
	at    []Point
}

func (tr *textRecorder) DrawText(s string, at Point, _ color.Color) {
	tr.texts = append(tr.texts, s)
	tr.at = append(tr.at, at)
}

// TextSize treats every rune as 10x20 pixels.
func (tr *textRecorder) TextSize(s string) (float64, float64) {
	return float64(10 * len([]rune(s))), 20
}

func TestLabel_TextSurfaceGetsText(t *testing.T) {
	tr := &textRecorder{Recorder: NewRecorder(100, 100)}
	Label{Text: "Caption", Image: image.NewRGBA(image.Rect(0, 0, 4, 4))}.Draw(tr)
	if len(tr.texts) != 1 || tr.texts[0] != "Caption" {
		t.Fatalf("expected native text draw, got %v", tr.texts)
	}
	if len(tr.Commands) != 0 {
		t.Fatalf("expected no image blit, got %v", tr.Commands)
	}
}

func TestLabel_TextSurfaceCentresOnTextSize(t *testing.T) {
	tr := &textRecorder{Recorder: NewRecorder(800, 600)}
	// Bitmap wider than the viewport; only the text extent should count.
	Label{
		Text:   "Roguelike",
		Image:  image.NewRGBA(image.Rect(0, 0, 900, 90)),
		Anchor: AnchorTopCenter,
		Offset: Point{Y: 40},
	}.Draw(tr)
	if len(tr.at) != 1 || tr.at[0] != (Point{X: 355, Y: 30}) {
		t.Fatalf("expected text at (355,30), got %v", tr.at)
	}
}

func TestCommand_String(t *testing.T) {
	c := Command{Layer: LayerEntities, Op: OpDrawImage, At: Point{X: 36, Y: 168},
		Image: image.NewRGBA(image.Rect(0, 0, 12, 24)), Color: color.RGBA{B: 255, A: 255}}
	s := c.String()
	for _, want := range []string{"entities", "blit", "(36,168)", "12x24", "#0000ffff"} {
		if !strings.Contains(s, want) {
			t.Fatalf("expected %q in %q", want, s)
		}
	}
}
