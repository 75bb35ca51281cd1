//go:build !ebiten

package ui

import "boids/internal/loop"

// Draw is a no-op placeholder in headless builds.
func (o *Overlay) Draw(any, *loop.Driver) {}
