// Package display runs the scene in an ebiten window.
package display

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/Garsondee/glyphgrid/internal/app"
	"github.com/Garsondee/glyphgrid/internal/assets"
	"github.com/Garsondee/glyphgrid/internal/config"
	"github.com/Garsondee/glyphgrid/internal/glyph"
	"github.com/Garsondee/glyphgrid/internal/render"
)

// Game implements ebiten.Game. It starts with the font loading in the
// background, builds the scene on the first Update after the font is ready,
// and from then on draws one frame per refresh.
type Game struct {
	cfg     config.Config
	pending *assets.Pending
	cache   *glyph.Cache
	scene   *app.Scene
	surface *Surface

	showStats bool
	stats     render.Stats
}

// New returns a game for cfg. The font starts loading immediately.
func New(cfg config.Config, showStats bool) *Game {
	return &Game{
		cfg:       cfg,
		pending:   assets.LoadAsync(cfg.FontPath),
		cache:     glyph.NewCache(),
		surface:   NewSurface(),
		showStats: showStats,
	}
}

// Update implements ebiten.Game. A font or atlas failure is returned, which
// ends RunGame: nothing can be drawn without the atlas.
func (g *Game) Update() error {
	if g.scene != nil {
		return nil
	}
	font, state, err := g.pending.Poll()
	switch state {
	case assets.Loading:
		return nil
	case assets.Failed:
		return fmt.Errorf("display: %w", err)
	}

	fr, err := NewFontRenderer(font, g.cfg.FontSize)
	if err != nil {
		return err
	}
	s, err := app.NewScene(g.cfg, fr, g.cache)
	if err != nil {
		return fmt.Errorf("display: set up scene: %w", err)
	}
	log.Printf("display: atlas %q ready (%d glyphs, cell %s)", s.Atlas.Alphabet(), s.Atlas.Len(), s.Atlas.Cell())
	g.scene = s
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.scene == nil {
		screen.Fill(config.BackgroundColor)
		ebitenutil.DebugPrintAt(screen, "loading font...", 8, 8)
		return
	}
	g.stats = g.scene.Draw(g.surface.Target(screen))
	if g.showStats {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tiles=%d entities=%d ui=%d skipped=%d",
			g.stats.Tiles, g.stats.Entities, g.stats.Elements, g.stats.Skipped), 8, 8)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
