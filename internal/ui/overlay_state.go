package ui

import (
	"fmt"
	"image"

	"boids/internal/core"
	"boids/internal/input"
	"boids/internal/loop"
)

type centerProvider interface {
	Centers() []image.Point
}

type entityCounter interface {
	Entities() []core.Entity
}

// Overlay draws optional debugging visuals on top of the scene. F3 toggles
// frame statistics and F2 toggles a dot on every entity centre.
type Overlay struct {
	input.NopListener

	scene       core.Scene
	showStats   bool
	showCenters bool
	sub         *input.Subscription
}

// NewOverlay constructs an overlay for scene and subscribes it to events.
func NewOverlay(scene core.Scene, events *input.Broadcaster) *Overlay {
	o := &Overlay{scene: scene}
	if events != nil {
		o.sub = events.Subscribe(o)
	}
	return o
}

// OnKeyDown toggles the overlay layers.
func (o *Overlay) OnKeyDown(k input.Key, _ input.Mod) {
	switch k {
	case input.KeyF2:
		o.showCenters = !o.showCenters
	case input.KeyF3:
		o.showStats = !o.showStats
	}
}

// ShowStats reports whether the statistics panel is visible.
func (o *Overlay) ShowStats() bool { return o.showStats }

// ShowCenters reports whether entity centres are marked.
func (o *Overlay) ShowCenters() bool { return o.showCenters }

// Close unsubscribes the overlay.
func (o *Overlay) Close() {
	o.sub.Unsubscribe()
	o.sub = nil
}

// StatLines formats the statistics panel.
func (o *Overlay) StatLines(d *loop.Driver) []string {
	c := d.Clock()
	lines := []string{
		fmt.Sprintf("scene  %s", o.scene.Name()),
		fmt.Sprintf("frame  %d", d.Frames()),
		fmt.Sprintf("target %.2fms", float64(c.Target().Microseconds())/1000),
		fmt.Sprintf("actual %.2fms", float64(c.Measured().Microseconds())/1000),
		fmt.Sprintf("dt     %.3f", d.Dt()),
	}
	if ec, ok := o.scene.(entityCounter); ok {
		lines = append(lines, fmt.Sprintf("boids  %d", len(ec.Entities())))
	}
	return lines
}

func (o *Overlay) centers() []image.Point {
	if cp, ok := o.scene.(centerProvider); ok {
		return cp.Centers()
	}
	return nil
}
