package boids

import "strconv"

// Params holds the tunables of the squareboy motion model.
type Params struct {
	// Boost multiplies acceleration while space is held.
	Boost float32
	// Damping is the fraction of velocity shed per unit of world time.
	Damping float32
}

// Config controls the grid of squareboys spawned at reset.
type Config struct {
	Cols, Rows int
	// OriginX and OriginY place the first squareboy, in world units.
	OriginX, OriginY float32
	// Spacing separates neighbours, in world units.
	Spacing float32
	// Size is the side of each square, in pixels.
	Size int

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Cols:    5,
		Rows:    5,
		OriginX: 100,
		OriginY: 100,
		Spacing: 50,
		Size:    20,
		Params: Params{
			Boost:   5,
			Damping: 0.1,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparsable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["origin_x"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			c.OriginX = float32(parsed)
		}
	}
	if v, ok := cfg["origin_y"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			c.OriginY = float32(parsed)
		}
	}
	if v, ok := cfg["spacing"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed > 0 {
			c.Spacing = float32(parsed)
		}
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["boost"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= 1 {
			c.Params.Boost = float32(parsed)
		}
	}
	if v, ok := cfg["damping"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.Damping = float32(parsed)
		}
	}
	return c
}
