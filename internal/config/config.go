// Package config loads the simulation settings from defaults, an optional
// YAML (or JSON) file, environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"boids/internal/space"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTargetFPS is returned by Validate for a missing or non-positive
// target frame rate.
var ErrInvalidTargetFPS = errors.New("targetFps must be a positive integer")

// Config holds every setting needed to start a scene.
type Config struct {
	// TargetFPS paces the frame loop. Required.
	TargetFPS int `json:"targetFps" yaml:"targetFps"`

	// Scene names a registered scene factory.
	Scene string `json:"scene" yaml:"scene"`

	Window WindowConfig `json:"window" yaml:"window"`
	World  WorldConfig  `json:"world" yaml:"world"`

	// HUDWidth is the pixel width of the tunables panel; 0 hides it.
	HUDWidth int `json:"hudWidth" yaml:"hudWidth"`

	// Seed drives randomized input in headless runs.
	Seed int64 `json:"seed" yaml:"seed"`

	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Params are passed through to the scene factory.
	Params map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
}

// WindowConfig sizes the window in pixels.
type WindowConfig struct {
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
	Title  string `json:"title" yaml:"title"`
}

// WorldConfig sizes the world in world units. -1 leaves an axis to be derived
// from the window aspect ratio.
type WorldConfig struct {
	Width  float32 `json:"width" yaml:"width"`
	Height float32 `json:"height" yaml:"height"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level"`
}

// Default returns the standard configuration.
func Default() *Config {
	return &Config{
		TargetFPS: 60,
		Scene:     "boids",
		Window:    WindowConfig{Width: 800, Height: 600, Title: "boids"},
		World:     WorldConfig{Width: 2000, Height: -1},
		HUDWidth:  0,
		Seed:      42,
		Logging:   LoggingConfig{Level: "info"},
	}
}

// LoadFromFile reads path over the defaults. Keys absent from the file keep
// their default values, except targetFps which every file must state.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML or JSON document over the defaults.
func Parse(data []byte) (*Config, error) {
	var required struct {
		TargetFPS *int `yaml:"targetFps"`
	}
	if err := yaml.Unmarshal(data, &required); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if required.TargetFPS == nil {
		return nil, fmt.Errorf("%w: missing from config file", ErrInvalidTargetFPS)
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return c, nil
}

// ApplyEnv applies BOIDS_* environment variable overrides.
func (c *Config) ApplyEnv() {
	c.applyEnv(os.Getenv)
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv("BOIDS_TARGET_FPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TargetFPS = n
		}
	}
	if v := getenv("BOIDS_SCENE"); v != "" {
		c.Scene = v
	}
	if v := getenv("BOIDS_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := getenv("BOIDS_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = n
		}
	}
}

// Bind attaches the configuration to the provided flag set. Flags parsed
// afterwards override whatever the struct held at bind time.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.TargetFPS, "fps", c.TargetFPS, "target frames per second")
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene to run")
	fs.IntVar(&c.Window.Width, "width", c.Window.Width, "window width in pixels")
	fs.IntVar(&c.Window.Height, "height", c.Window.Height, "window height in pixels")
	fs.Float32Var(&c.World.Width, "world-width", c.World.Width, "world width in world units (-1 to derive)")
	fs.Float32Var(&c.World.Height, "world-height", c.World.Height, "world height in world units (-1 to derive)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "tunables panel width in pixels (0 hides it)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomized input")
	fs.StringVar(&c.Logging.Level, "log-level", c.Logging.Level, "log level: debug, info, warn, error")
	fs.StringToStringVar(&c.Params, "param", c.Params, "scene parameter key=value (repeatable)")
}

// Resolve builds the effective configuration: defaults or the file at path,
// then environment overrides, then the flags set on fs. flags is the Config
// fs was bound to.
func Resolve(path string, fs *pflag.FlagSet, flags *Config) (*Config, error) {
	c := Default()
	if path != "" {
		var err error
		if c, err = LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	c.ApplyEnv()
	c.Overlay(fs, flags)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

// Overlay copies into c every field whose flag was set on fs. flags must be
// the Config fs was bound to. It lets command-line flags win over a config
// file loaded after the flags were parsed.
func (c *Config) Overlay(fs *pflag.FlagSet, flags *Config) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "fps":
			c.TargetFPS = flags.TargetFPS
		case "scene":
			c.Scene = flags.Scene
		case "width":
			c.Window.Width = flags.Window.Width
		case "height":
			c.Window.Height = flags.Window.Height
		case "world-width":
			c.World.Width = flags.World.Width
		case "world-height":
			c.World.Height = flags.World.Height
		case "hud":
			c.HUDWidth = flags.HUDWidth
		case "seed":
			c.Seed = flags.Seed
		case "log-level":
			c.Logging.Level = flags.Logging.Level
		case "param":
			if c.Params == nil {
				c.Params = map[string]string{}
			}
			for k, v := range flags.Params {
				c.Params[k] = v
			}
		}
	})
}

// Validate checks that the configuration can start a scene.
func (c *Config) Validate() error {
	if c.TargetFPS <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidTargetFPS, c.TargetFPS)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.World.Width == -1 && c.World.Height == -1 {
		return fmt.Errorf("world size: %w", space.ErrWorldSizeUnspecified)
	}
	if c.HUDWidth < 0 {
		return fmt.Errorf("hud width must be non-negative, got %d", c.HUDWidth)
	}
	if c.Scene == "" {
		return fmt.Errorf("scene must be set")
	}
	validLevels := map[string]bool{"": true, "debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.Logging.Level)
	}
	return nil
}
