package scene

import "testing"

func TestGenerateMap_CountAndUniquePositions(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {2, 3}, {20, 15}, {7, 1}} {
		w, h := dims[0], dims[1]
		tiles := GenerateMap(w, h)
		if len(tiles) != w*h {
			t.Fatalf("%dx%d: expected %d tiles, got %d", w, h, w*h, len(tiles))
		}
		seen := make(map[Pos]bool, len(tiles))
		for _, tile := range tiles {
			if seen[tile.Pos] {
				t.Fatalf("%dx%d: duplicate position %+v", w, h, tile.Pos)
			}
			seen[tile.Pos] = true
			if tile.Pos.Row < 0 || tile.Pos.Row >= h || tile.Pos.Col < 0 || tile.Pos.Col >= w {
				t.Fatalf("%dx%d: tile outside grid at %+v", w, h, tile.Pos)
			}
		}
	}
}

func TestGenerateMap_WallsOnBoundaryOnly(t *testing.T) {
	w, h := 6, 4
	for _, tile := range GenerateMap(w, h) {
		r, c := tile.Pos.Row, tile.Pos.Col
		boundary := r == 0 || r == h-1 || c == 0 || c == w-1
		if boundary && tile.Glyph != GlyphWall {
			t.Fatalf("tile (%d,%d) on boundary has glyph %q, want %q", r, c, tile.Glyph, GlyphWall)
		}
		if !boundary && tile.Glyph != GlyphFloor {
			t.Fatalf("interior tile (%d,%d) has glyph %q, want %q", r, c, tile.Glyph, GlyphFloor)
		}
		if tile.Color != FloorColor {
			t.Fatalf("tile (%d,%d) color=%v, want %v", r, c, tile.Color, FloorColor)
		}
	}
}

func TestGenerateMap_NonSquareUsesOwnMaxPerAxis(t *testing.T) {
	// A wide map must not mark column height-1 as wall.
	w, h := 10, 3
	tiles := GenerateMap(w, h)
	tile := tiles[1*w+2] // row 1, col 2 (== height-1)
	if tile.Pos != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("expected row-major order, got %+v at index %d", tile.Pos, 1*w+2)
	}
	if tile.Glyph != GlyphFloor {
		t.Fatalf("tile (1,2) should be floor, got %q", tile.Glyph)
	}
}

func TestGenerateMap_RowMajorOrder(t *testing.T) {
	tiles := GenerateMap(3, 2)
	want := []Pos{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	for i, p := range want {
		if tiles[i].Pos != p {
			t.Fatalf("index %d: expected %+v, got %+v", i, p, tiles[i].Pos)
		}
	}
}

func TestGenerateMap_DegenerateDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 5}, {5, 0}, {-1, 4}, {3, -2}, {-3, -3}} {
		if tiles := GenerateMap(dims[0], dims[1]); len(tiles) != 0 {
			t.Fatalf("GenerateMap(%d,%d) returned %d tiles, want 0", dims[0], dims[1], len(tiles))
		}
	}
}

func TestMapGlyphs_FirstSeenOrder(t *testing.T) {
	got := MapGlyphs(GenerateMap(4, 4))
	if len(got) != 2 || got[0] != GlyphWall || got[1] != GlyphFloor {
		t.Fatalf("expected [# .], got %q", string(got))
	}
	if g := MapGlyphs(nil); len(g) != 0 {
		t.Fatalf("expected no glyphs for empty map, got %q", string(g))
	}
}
