package app

import (
	"fmt"
	"strings"

	"boids/internal/config"
	"boids/internal/core"
	"boids/internal/input"

	"github.com/charmbracelet/log"
)

// NewScene looks up cfg.Scene in the scene registry and constructs it for the
// configured viewport and world.
func NewScene(cfg *config.Config, events *input.Broadcaster, logger *log.Logger) (core.Scene, error) {
	factory, ok := core.Scenes()[cfg.Scene]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", cfg.Scene, strings.Join(core.SceneNames(), ", "))
	}
	scene, err := factory(core.Env{
		Pixels:      core.Size{W: cfg.Window.Width, H: cfg.Window.Height},
		WorldWidth:  cfg.World.Width,
		WorldHeight: cfg.World.Height,
		Events:      events,
		Logger:      logger,
		Params:      cfg.Params,
	})
	if err != nil {
		return nil, fmt.Errorf("creating scene %q: %w", cfg.Scene, err)
	}
	return scene, nil
}
