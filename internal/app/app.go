//go:build ebiten

package app

import (
	"errors"
	"image/color"

	"houndtooth/internal/core"
	"houndtooth/internal/render"
	"houndtooth/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a generated pattern to the ebiten.Game interface.
type Game struct {
	pattern core.Pattern
	painter *render.GridPainter
	caption *ui.Caption

	inkColor   color.Color
	blankColor color.Color

	scale int
}

// New constructs a Game showing pattern. params is displayed in the caption.
func New(pattern core.Pattern, params core.ParameterSnapshot, scale int) *Game {
	size := pattern.Size()
	return &Game{
		pattern:    pattern,
		painter:    render.NewGridPainter(size.W, size.H),
		caption:    ui.NewCaption(pattern.Name(), params),
		inkColor:   color.Black,
		blankColor: color.White,
		scale:      scale,
	}
}

// Update handles per-frame input. The pattern itself never changes.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.caption.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.inkColor, g.blankColor = g.blankColor, g.inkColor
	}
	return nil
}

// Draw renders the pattern and caption.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.pattern.Cells(), g.inkColor, g.blankColor, g.scale)
	g.caption.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.pattern.Size()
	return s.W * g.scale, s.H * g.scale
}

// Run opens a window and blocks until it is closed.
func Run(pattern core.Pattern, params core.ParameterSnapshot, cfg *Config) error {
	size := pattern.Size()
	ebiten.SetWindowTitle(cfg.WindowTitle(pattern.Name()))
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(New(pattern, params, cfg.Scale)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
