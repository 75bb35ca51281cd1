//go:build ebiten

package ui

import (
	"image/color"

	"boids/internal/loop"
	"boids/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	centerRadius = 3
	statsLine    = 16
)

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, d *loop.Driver) {
	if o.showCenters {
		var s render.Screen
		s.Bind(screen)
		for _, p := range o.centers() {
			s.FillCircle(p, centerRadius, render.Orange)
		}
	}
	if o.showStats {
		face := basicfont.Face7x13
		fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		for i, line := range o.StatLines(d) {
			text.Draw(screen, line, face, panelPadding, panelPadding+headerBaseline+i*statsLine, fg)
		}
	}
}
