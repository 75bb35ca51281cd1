// Package loop drives a scene frame by frame: poll input, update, draw,
// then pace the frame and derive the normalized delta time.
package loop

import (
	"boids/internal/core"
	"boids/internal/input"
	"boids/internal/render"

	"github.com/charmbracelet/log"
)

// State is the driver's lifecycle state.
type State uint8

const (
	// Inactive is the state before Activate.
	Inactive State = iota
	// Running frames are being produced.
	Running
	// Stopped is terminal: a termination request ended the loop.
	Stopped
)

func (s State) String() string {
	switch s {
	case Inactive:
		return "inactive"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Driver owns the clock, the input broadcaster and the running flag for one
// scene. Independent drivers share nothing.
type Driver struct {
	clock   *core.Clock
	events  *input.Broadcaster
	scene   core.Scene
	surface render.Surface
	logger  *log.Logger

	state   State
	stopReq bool
	frame   core.Frame
}

// NewDriver returns an Inactive driver. surface may be nil when the caller
// draws the scene itself, as the ebiten adapter does. A nil logger falls back
// to log.Default.
func NewDriver(clock *core.Clock, events *input.Broadcaster, scene core.Scene, surface render.Surface, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.Default()
	}
	return &Driver{
		clock:   clock,
		events:  events,
		scene:   scene,
		surface: surface,
		logger:  logger,
		frame:   core.Frame{Dt: 1, Keys: events.Keys()},
	}
}

// State returns the current lifecycle state.
func (d *Driver) State() State { return d.state }

// Running reports whether the driver is producing frames.
func (d *Driver) Running() bool { return d.state == Running }

// Dt returns the normalized delta time handed to the next update.
func (d *Driver) Dt() float32 { return d.frame.Dt }

// Frames returns the number of completed frames.
func (d *Driver) Frames() uint64 { return d.frame.Index }

// Clock exposes the frame clock.
func (d *Driver) Clock() *core.Clock { return d.clock }

// Activate moves an Inactive driver to Running. It has no effect in any other
// state.
func (d *Driver) Activate() {
	if d.state != Inactive {
		return
	}
	d.state = Running
	d.logger.Info("loop activated", "scene", d.scene.Name(), "fps", d.clock.FPS())
}

// Stop requests termination after the current frame.
func (d *Driver) Stop() {
	d.stopReq = true
}

// Frame runs one iteration. It reports whether the driver is still running
// afterwards. Calling Frame on a driver that is not Running does nothing.
func (d *Driver) Frame() bool {
	if d.state != Running {
		return false
	}
	if d.events.Poll() {
		d.stopReq = true
	}
	d.scene.Update(&d.frame)
	if d.surface != nil {
		d.scene.Draw(d.surface)
		d.surface.Present()
	}
	d.clock.Tick()
	d.frame.Dt = d.clock.WorldDt()
	d.frame.Index++
	d.logger.Debug("frame", "index", d.frame.Index, "measured", d.clock.Measured(), "dt", d.frame.Dt)

	if d.stopReq {
		d.state = Stopped
		d.logger.Info("loop stopped", "frames", d.frame.Index)
	}
	return d.state == Running
}

// Run activates the driver and produces frames until termination is
// requested.
func (d *Driver) Run() {
	d.Activate()
	for d.Frame() {
	}
}
