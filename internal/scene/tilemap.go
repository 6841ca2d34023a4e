package scene

import "image/color"

// Glyphs used by the map generator.
const (
	GlyphFloor = '.' // Open ground
	GlyphWall  = '#' // Boundary wall
)

// FloorColor is the tint applied to every generated map tile.
var FloorColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// Pos is a grid coordinate. Row grows downward, Col grows rightward.
type Pos struct {
	Row int
	Col int
}

// Tile is one cell of the static background. Tiles are never modified after
// GenerateMap returns them.
type Tile struct {
	Pos   Pos
	Glyph rune
	Color color.RGBA
}

// GenerateMap returns width*height tiles in row-major order (row 0 first,
// columns left to right within a row). Cells on the outer ring get the wall
// glyph; everything else is floor. A non-positive dimension yields no tiles.
func GenerateMap(width, height int) []Tile {
	if width <= 0 || height <= 0 {
		return nil
	}
	tiles := make([]Tile, 0, width*height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			t := Tile{
				Pos:   Pos{Row: row, Col: col},
				Glyph: GlyphFloor,
				Color: FloorColor,
			}
			if onBoundary(row, col, width, height) {
				t.Glyph = GlyphWall
			}
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// onBoundary reports whether (row, col) lies on the outer ring of a
// width x height grid.
func onBoundary(row, col, width, height int) bool {
	return row == 0 || row == height-1 || col == 0 || col == width-1
}

// MapGlyphs returns the distinct glyphs used by tiles, in first-seen order.
func MapGlyphs(tiles []Tile) []rune {
	seen := make(map[rune]bool)
	var out []rune
	for _, t := range tiles {
		if seen[t.Glyph] {
			continue
		}
		seen[t.Glyph] = true
		out = append(out, t.Glyph)
	}
	return out
}
