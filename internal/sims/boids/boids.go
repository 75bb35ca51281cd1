package boids

import (
	"fmt"
	"image"

	"boids/internal/core"
	"boids/internal/input"
	"boids/internal/render"
	"boids/internal/space"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
)

// Scene is a field of squareboys steered together from the keyboard.
//
// Left click spawns a squareboy under the cursor, right click removes the
// newest one and R restores the starting grid.
type Scene struct {
	input.NopListener

	cfg      Config
	params   Params
	space    *space.Space
	entities []core.Entity
	sub      *input.Subscription
	logger   *log.Logger
}

// New builds the scene for the environment's viewport and subscribes it to
// the environment's broadcaster.
func New(env core.Env, cfg Config) (*Scene, error) {
	sp, err := space.New(env.Pixels.W, env.Pixels.H, env.WorldWidth, env.WorldHeight)
	if err != nil {
		return nil, fmt.Errorf("boids: %w", err)
	}
	logger := env.Logger
	if logger == nil {
		logger = log.Default()
	}
	s := &Scene{
		cfg:    cfg,
		params: cfg.Params,
		space:  sp,
		logger: logger.With("scene", "boids"),
	}
	s.Reset()
	if env.Events != nil {
		s.sub = env.Events.Subscribe(s)
	}
	ws := sp.WorldSize()
	s.logger.Info("scene ready",
		"pixels", fmt.Sprintf("%dx%d", env.Pixels.W, env.Pixels.H),
		"world", fmt.Sprintf("%gx%g", ws.X(), ws.Y()),
		"entities", len(s.entities),
	)
	return s, nil
}

// Name identifies the scene.
func (s *Scene) Name() string { return "boids" }

// Space returns the scene's coordinate space.
func (s *Scene) Space() *space.Space { return s.space }

// Entities exposes the entity collection in insertion order.
func (s *Scene) Entities() []core.Entity { return s.entities }

// Reset replaces every entity with the configured starting grid.
func (s *Scene) Reset() {
	grid := core.Grid{
		Cols:    s.cfg.Cols,
		Rows:    s.cfg.Rows,
		Origin:  mgl32.Vec2{s.cfg.OriginX, s.cfg.OriginY},
		Spacing: mgl32.Vec2{s.cfg.Spacing, s.cfg.Spacing},
	}
	s.entities = s.entities[:0]
	for _, p := range grid.Points() {
		s.entities = append(s.entities, NewSquareboy(s.space, p, s.cfg.Size, &s.params))
	}
}

// Update advances every entity in insertion order.
func (s *Scene) Update(f *core.Frame) {
	for _, e := range s.entities {
		e.Update(f)
	}
}

// Draw clears to black and draws every entity.
func (s *Scene) Draw(r render.Surface) {
	r.Clear(render.Black)
	for _, e := range s.entities {
		e.Draw(r)
	}
}

// Close unsubscribes from input and drops the entities.
func (s *Scene) Close() {
	s.sub.Unsubscribe()
	s.sub = nil
	s.entities = nil
}

// OnKeyDown restores the starting grid on R.
func (s *Scene) OnKeyDown(k input.Key, _ input.Mod) {
	if k == input.KeyR {
		s.Reset()
		s.logger.Debug("reset", "entities", len(s.entities))
	}
}

// OnMouseDown spawns on left click and removes the newest entity on right
// click. Clicks outside the viewport are ignored.
func (s *Scene) OnMouseDown(b input.MouseButton, x, y int) {
	size := s.space.PixelSize()
	if !image.Pt(x, y).In(image.Rectangle{Max: size}) {
		return
	}
	switch b {
	case input.MouseButtonLeft:
		s.entities = append(s.entities, NewSquareboyAtPixel(s.space, x, y, s.cfg.Size, &s.params))
		s.logger.Debug("spawn", "x", x, "y", y, "entities", len(s.entities))
	case input.MouseButtonRight:
		if n := len(s.entities); n > 0 {
			s.entities[n-1] = nil
			s.entities = s.entities[:n-1]
		}
	}
}

// Centers returns the pixel centre of every entity, for overlays.
func (s *Scene) Centers() []image.Point {
	pts := make([]image.Point, 0, len(s.entities))
	for _, e := range s.entities {
		if b, ok := e.(*Squareboy); ok {
			pts = append(pts, b.Pixel())
		}
	}
	return pts
}

// Parameters reports the live tunables.
func (s *Scene) Parameters() []core.Parameter {
	return []core.Parameter{
		{Key: "boost", Label: "Boost", Value: float64(s.params.Boost), Description: "acceleration multiplier while space is held"},
		{Key: "damping", Label: "Damping", Value: float64(s.params.Damping), Description: "velocity lost per unit of world time"},
	}
}

// ParameterControls lists the HUD controls for the tunables.
func (s *Scene) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "boost", Label: "Boost", Step: 0.5, Min: 1, Max: 20, HasMin: true, HasMax: true},
		{Key: "damping", Label: "Damping", Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetParameter updates a tunable. Every squareboy reads the shared params, so
// the change applies from the next frame.
func (s *Scene) SetParameter(key string, value float64) bool {
	switch key {
	case "boost":
		s.params.Boost = float32(value)
	case "damping":
		s.params.Damping = float32(value)
	default:
		return false
	}
	return true
}

func init() {
	core.Register("boids", func(env core.Env) (core.Scene, error) {
		return New(env, FromMap(env.Params))
	})
}
