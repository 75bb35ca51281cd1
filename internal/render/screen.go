//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screen adapts an ebiten image to Surface. Bind it to the screen image at
// the start of every Draw call.
type Screen struct {
	img *ebiten.Image
}

// Bind sets the target image for the current frame.
func (s *Screen) Bind(img *ebiten.Image) { s.img = img }

// Size returns the bound image's size, or zero when nothing is bound.
func (s *Screen) Size() (int, int) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the bound image with c.
func (s *Screen) Clear(c color.Color) { s.img.Fill(c) }

// StrokeRect draws a one-pixel outline of r.
func (s *Screen) StrokeRect(r image.Rectangle, c color.Color) {
	vector.StrokeRect(s.img, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, c, false)
}

// FillCircle draws an anti-aliased filled circle.
func (s *Screen) FillCircle(center image.Point, radius int, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(center.X), float32(center.Y), float32(radius), c, true)
}

// Present is a no-op: ebiten presents the screen after Draw returns.
func (s *Screen) Present() {}
