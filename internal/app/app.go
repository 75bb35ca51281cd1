//go:build ebiten

package app

import (
	"errors"
	"image"

	"boids/internal/core"
	"boids/internal/loop"
	"boids/internal/render"
	"boids/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts a loop driver to the ebiten.Game interface. ebiten calls Update
// once per tick; each call runs one driver frame (input, scene update,
// pacing). Drawing happens in Draw, which ebiten presents afterwards.
type Game struct {
	driver  *loop.Driver
	scene   core.Scene
	screen  render.Screen
	overlay *ui.Overlay
	hud     *ui.HUD

	viewW, viewH int
}

// New constructs a Game for the provided driver and scene. hudWidth pixels
// are added to the right of the viewport for the tunables panel.
func New(driver *loop.Driver, scene core.Scene, overlay *ui.Overlay, view core.Size, hudWidth int) *Game {
	return &Game{
		driver:  driver,
		scene:   scene,
		overlay: overlay,
		hud:     ui.NewHUD(scene, hudWidth),
		viewW:   view.W,
		viewH:   view.H,
	}
}

// Update runs one frame of the driver.
func (g *Game) Update() error {
	if g.driver.State() == loop.Inactive {
		g.driver.Activate()
	}
	if g.hud != nil {
		g.hud.Update(g.viewW)
	}
	if !g.driver.Frame() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the scene, then the overlay and HUD on top.
func (g *Game) Draw(screen *ebiten.Image) {
	view := screen.SubImage(image.Rect(0, 0, g.viewW, g.viewH)).(*ebiten.Image)
	g.screen.Bind(view)
	g.scene.Draw(&g.screen)
	if g.overlay != nil {
		g.overlay.Draw(view, g.driver)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.viewW)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewW + g.hud.Width(), g.viewH
}

// Run opens the window and blocks until the driver stops.
func (g *Game) Run() error {
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
