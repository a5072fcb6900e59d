package render

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/quill"
)

// UpdateFunc issues the draw calls for one frame. dt is the fixed tick
// length in seconds.
type UpdateFunc func(g *quill.Graphics, dt float64) error

// Game adapts a quill plugin to ebiten.Game. Each tick runs the user's
// UpdateFunc (populate) and then Plugin.Update (reconcile); Draw submits
// the visible entities.
type Game struct {
	plugin   *quill.Plugin
	renderer *Renderer
	update   UpdateFunc
	cfg      quill.Config
}

// NewGame wires a plugin, a renderer over its world, and an update function.
func NewGame(plugin *quill.Plugin, cfg quill.Config, update UpdateFunc) *Game {
	r := NewRenderer(plugin.World())
	r.ScreenshotDir = cfg.ScreenshotDir
	plugin.SetDebugMode(cfg.Debug)
	return &Game{plugin: plugin, renderer: r, update: update, cfg: cfg}
}

// Renderer returns the game's renderer.
func (g *Game) Renderer() *Renderer {
	return g.renderer
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.update != nil {
		dt := 1.0 / float64(ebiten.TPS())
		if err := g.update(g.plugin.Graphics(), dt); err != nil {
			return err
		}
	}
	g.plugin.Update()
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor)
	g.renderer.Draw(screen)
	if g.cfg.Debug {
		ebitenutil.DebugPrint(screen, debugText(g.plugin.LastFrame(), g.renderer.Stats()))
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func debugText(frame quill.FrameStats, stats Stats) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nvisible: %d\npool: %d\nverts: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), frame.Visible(), frame.PoolSize(), stats.Vertices)
}

// Run opens a window and drives plugin until the window closes or update
// returns an error.
func Run(plugin *quill.Plugin, cfg quill.Config, update UpdateFunc) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(int(float64(cfg.Width)*cfg.Scale), int(float64(cfg.Height)*cfg.Scale))
	ebiten.SetTPS(cfg.TPS)

	quill.Logger().Info("opening window",
		slog.String("title", cfg.Title),
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height),
	)
	if err := ebiten.RunGame(NewGame(plugin, cfg, update)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
