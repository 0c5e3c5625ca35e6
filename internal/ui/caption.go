//go:build ebiten

// Package ui draws text overlays for the pattern viewer.
package ui

import (
	"image/color"

	"houndtooth/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const captionHeight = 16

// Caption shows the parameters of the displayed pattern along the top edge
// of the window. It can be toggled off.
type Caption struct {
	text    string
	visible bool
	bg      color.RGBA
}

// NewCaption builds a caption from a pattern name and its parameters.
func NewCaption(name string, params core.ParameterSnapshot) *Caption {
	return &Caption{
		text:    name + "  " + params.String(),
		visible: true,
		bg:      color.RGBA{A: 0xb0},
	}
}

// Toggle shows or hides the caption.
func (c *Caption) Toggle() { c.visible = !c.visible }

// Draw renders the caption onto screen.
func (c *Caption) Draw(screen *ebiten.Image) {
	if c == nil || !c.visible {
		return
	}
	w := screen.Bounds().Dx()
	vector.DrawFilledRect(screen, 0, 0, float32(w), captionHeight, c.bg, false)
	ebitenutil.DebugPrintAt(screen, c.text, 4, 0)
}
