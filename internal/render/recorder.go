package render

import (
	"fmt"
	"image"
	"image/color"
)

// Op is the kind of a recorded draw command.
type Op uint8

const (
	OpClear Op = iota
	OpFillRect
	OpDrawImage
)

func (o Op) String() string {
	switch o {
	case OpClear:
		return "clear"
	case OpFillRect:
		return "fill"
	case OpDrawImage:
		return "blit"
	default:
		return "?"
	}
}

// Command is one recorded surface call.
type Command struct {
	Layer Layer
	Op    Op
	At    Point       // blit position
	Rect  Rect        // fill rectangle
	Image image.Image // blitted image
	Color color.Color // clear/fill colour or blit tint
}

// String formats the command as a fixed-width log line.
//
//	[entities] blit  (36,168) 12x24 #0000ffff
func (c Command) String() string {
	switch c.Op {
	case OpFillRect:
		return fmt.Sprintf("[%-8s] %-5s (%g,%g) %gx%g %s",
			c.Layer, c.Op, c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H, hexColor(c.Color))
	case OpDrawImage:
		w, h := 0, 0
		if c.Image != nil {
			w, h = c.Image.Bounds().Dx(), c.Image.Bounds().Dy()
		}
		return fmt.Sprintf("[%-8s] %-5s (%g,%g) %dx%d %s",
			c.Layer, c.Op, c.At.X, c.At.Y, w, h, hexColor(c.Color))
	default:
		return fmt.Sprintf("[%-8s] %-5s %s", c.Layer, c.Op, hexColor(c.Color))
	}
}

func hexColor(c color.Color) string {
	if c == nil {
		return "-"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// Recorder is a Surface that keeps every call instead of drawing. It backs
// draw-order tests and the command dump of the headless tool.
type Recorder struct {
	W, H     int
	Commands []Command
	layer    Layer
}

// NewRecorder returns a recorder reporting a w x h viewport.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

// BeginLayer implements LayerObserver.
func (r *Recorder) BeginLayer(l Layer) {
	r.layer = l
}

// Clear implements Surface.
func (r *Recorder) Clear(c color.Color) {
	r.Commands = append(r.Commands, Command{Layer: r.layer, Op: OpClear, Color: c})
}

// FillRect implements Surface.
func (r *Recorder) FillRect(rect Rect, c color.Color) {
	r.Commands = append(r.Commands, Command{Layer: r.layer, Op: OpFillRect, Rect: rect, Color: c})
}

// DrawImage implements Surface.
func (r *Recorder) DrawImage(img image.Image, at Point, tint color.Color) {
	r.Commands = append(r.Commands, Command{Layer: r.layer, Op: OpDrawImage, At: at, Image: img, Color: tint})
}

// Size implements Surface.
func (r *Recorder) Size() (int, int) {
	return r.W, r.H
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
	r.layer = LayerClear
}

// InLayer returns the commands recorded during layer l.
func (r *Recorder) InLayer(l Layer) []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Layer == l {
			out = append(out, c)
		}
	}
	return out
}
