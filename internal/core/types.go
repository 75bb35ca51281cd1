package core

import (
	"sort"

	"boids/internal/input"
	"boids/internal/render"

	"github.com/charmbracelet/log"
)

// Size describes pixel dimensions.
type Size struct {
	W int
	H int
}

// Frame carries the per-frame inputs handed to scenes and entities.
type Frame struct {
	// Dt is the normalized world delta time: measured frame duration divided
	// by the target frame duration.
	Dt float32
	// Keys is the live held-key table.
	Keys input.KeyReader
	// Index counts frames since the driver was activated, starting at 0.
	Index uint64
}

// Entity is a single simulated object owned by a scene.
type Entity interface {
	Update(f *Frame)
	Draw(s render.Surface)
}

// Scene is the unit the loop driver runs: one Update and one Draw per frame.
type Scene interface {
	Name() string
	Update(f *Frame)
	Draw(s render.Surface)
	// Close releases listener subscriptions and owned entities.
	Close()
}

// Env is everything a scene factory may need at construction time.
type Env struct {
	// Pixels is the viewport size in pixels.
	Pixels Size
	// WorldWidth and WorldHeight size the world; one of them may be -1 to
	// derive it from the viewport aspect ratio.
	WorldWidth  float32
	WorldHeight float32

	Events *input.Broadcaster
	Logger *log.Logger

	// Params holds scene-specific key/value options.
	Params map[string]string
}

// Factory constructs a Scene.
type Factory func(env Env) (Scene, error)

var scenes = map[string]Factory{}

// Register adds a scene factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	scenes[name] = f
}

// Scenes exposes the registry of available scene factories.
func Scenes() map[string]Factory {
	return scenes
}

// SceneNames returns the registered scene names in sorted order.
func SceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
