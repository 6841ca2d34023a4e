package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Garsondee/glyphgrid/internal/config"
)

func TestGridSize_RoundsUp(t *testing.T) {
	cfg := config.Default()
	cols, rows := gridSize(cfg)
	if cols != 34 || rows != 25 {
		t.Fatalf("expected 34x25, got %dx%d", cols, rows)
	}
}

func TestApplyOverrides_OnlyNonZeroFlags(t *testing.T) {
	cfg := config.Default()
	applyOverrides(&cfg, options{mapWidth: 8})
	if cfg.MapWidth != 8 || cfg.MapHeight != config.MapHeight || cfg.FontPath != "" {
		t.Fatalf("unexpected config after overrides: %+v", cfg)
	}
}

func TestAsciiFrame_PlacesCast(t *testing.T) {
	cfg := config.Default()
	s, err := newScene(cfg)
	if err != nil {
		t.Fatalf("newScene: %v", err)
	}
	grid, err := asciiFrame(s, cfg)
	if err != nil {
		t.Fatalf("asciiFrame: %v", err)
	}
	lines := strings.Split(grid, "\n")
	// Map row 0 sits at y=120, screen row 5; col 0 at x=50, screen col 2.
	if got := lines[5]; got != "  "+strings.Repeat("#", cfg.MapWidth) {
		t.Fatalf("expected top wall on row 5, got %q", got)
	}
	if r := []rune(lines[8]); len(r) <= 7 || r[7] != '@' {
		t.Fatalf("expected player at row 8 col 7, got %q", lines[8])
	}
	if r := []rune(lines[11]); len(r) <= 11 || r[11] != 'g' {
		t.Fatalf("expected goblin at row 11 col 11, got %q", lines[11])
	}
}

func TestAsciiFrame_HeaderNotClipped(t *testing.T) {
	cfg := config.Default()
	s, err := newScene(cfg)
	if err != nil {
		t.Fatalf("newScene: %v", err)
	}
	grid, err := asciiFrame(s, cfg)
	if err != nil {
		t.Fatalf("asciiFrame: %v", err)
	}
	lines := strings.Split(grid, "\n")
	// 20 runes x 24px = 480px centred on 400 starts at x=160, column 6;
	// centred on y=40 it starts at y=28, row 1.
	if want := strings.Repeat(" ", 6) + cfg.Title; lines[1] != want {
		t.Fatalf("expected title row %q, got %q", want, lines[1])
	}
	// Caption sits 60px above the 600px bottom: y=540, row 22.
	if !strings.HasPrefix(lines[22], cfg.Caption[:20]) {
		t.Fatalf("expected caption on row 22, got %q", lines[22])
	}
}

func TestCommandLog_StartsWithClear(t *testing.T) {
	cfg := config.Default()
	s, err := newScene(cfg)
	if err != nil {
		t.Fatalf("newScene: %v", err)
	}
	lines := commandLog(s, cfg)
	if len(lines) == 0 || !strings.HasPrefix(lines[0], "[clear") || !strings.HasSuffix(lines[0], "#ffffffff") {
		t.Fatalf("expected white clear first, got %q", lines[:min(1, len(lines))])
	}
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "[ui") || !strings.Contains(last, "(530,120) 60x24") {
		t.Fatalf("expected filled health bar last, got %q", last)
	}
}

func TestRun_WritesScaledPNG(t *testing.T) {
	cfg := config.Default()
	path := filepath.Join(t.TempDir(), "frame.png")
	var out bytes.Buffer
	if err := run(cfg, options{out: path, scale: 2}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1600 || b.Dy() != 1200 {
		t.Fatalf("expected 1600x1200, got %v", b)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
}
