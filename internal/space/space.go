// Package space maps between world units, in which the simulation runs, and
// pixel units, in which it is drawn.
package space

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Unspecified marks a world axis whose length is derived from the other axis
// and the viewport aspect ratio.
const Unspecified float32 = -1

var (
	// ErrWorldSizeUnspecified is returned when neither world axis is given.
	ErrWorldSizeUnspecified = errors.New("world width and height cannot both be unspecified")
	// ErrInvalidWorldSize is returned for a world axis that is neither
	// positive nor Unspecified.
	ErrInvalidWorldSize = errors.New("world size must be positive")
	// ErrInvalidPixelSize is returned for a non-positive viewport.
	ErrInvalidPixelSize = errors.New("pixel size must be positive")
)

// Axis selects one coordinate of a 2D position.
type Axis int

const (
	X Axis = iota
	Y
)

// Space holds the viewport size in pixels and the world size in world units.
// Both are fixed once constructed.
type Space struct {
	pixels image.Point
	world  mgl32.Vec2
}

// New builds a Space for a pixelW x pixelH viewport. Exactly one of worldW and
// worldH may be Unspecified; it is derived so the world has the viewport's
// aspect ratio.
func New(pixelW, pixelH int, worldW, worldH float32) (*Space, error) {
	if pixelW <= 0 || pixelH <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidPixelSize, pixelW, pixelH)
	}
	if worldW == Unspecified && worldH == Unspecified {
		return nil, ErrWorldSizeUnspecified
	}
	switch {
	case worldH == Unspecified:
		if worldW <= 0 {
			return nil, fmt.Errorf("%w: width %g", ErrInvalidWorldSize, worldW)
		}
		unitsPerPixel := worldW / float32(pixelW)
		worldH = unitsPerPixel * float32(pixelH)
	case worldW == Unspecified:
		if worldH <= 0 {
			return nil, fmt.Errorf("%w: height %g", ErrInvalidWorldSize, worldH)
		}
		unitsPerPixel := worldH / float32(pixelH)
		worldW = unitsPerPixel * float32(pixelW)
	default:
		if worldW <= 0 || worldH <= 0 {
			return nil, fmt.Errorf("%w: %gx%g", ErrInvalidWorldSize, worldW, worldH)
		}
	}
	return &Space{
		pixels: image.Pt(pixelW, pixelH),
		world:  mgl32.Vec2{worldW, worldH},
	}, nil
}

// PixelSize returns the viewport size.
func (s *Space) PixelSize() image.Point { return s.pixels }

// WorldSize returns the world size.
func (s *Space) WorldSize() mgl32.Vec2 { return s.world }

// Pixels returns the viewport length along axis a.
func (s *Space) Pixels(a Axis) int {
	if a == X {
		return s.pixels.X
	}
	return s.pixels.Y
}

// WorldToPixel converts a world coordinate on axis a to pixels, truncating
// toward zero. A coordinate within float32 rounding of a pixel boundary counts
// as on it, so PixelToWorld followed by WorldToPixel returns the same pixel.
func (s *Space) WorldToPixel(unit float32, a Axis) int {
	p := float64(unit) / float64(s.world[a]) * float64(s.Pixels(a))
	slack := pixelSlack + 1e-6*math.Abs(p)
	if p < 0 {
		return -int(-p + slack)
	}
	return int(p + slack)
}

// pixelSlack absorbs float32 rounding in stored world coordinates.
const pixelSlack = 1e-3

// PixelToWorld converts a pixel coordinate on axis a to world units.
func (s *Space) PixelToWorld(pixel int, a Axis) float32 {
	return float32(float64(pixel) / float64(s.Pixels(a)) * float64(s.world[a]))
}

// ToPixel converts a world position to pixels.
func (s *Space) ToPixel(v mgl32.Vec2) image.Point {
	return image.Pt(s.WorldToPixel(v.X(), X), s.WorldToPixel(v.Y(), Y))
}

// ToWorld converts a pixel position to world units.
func (s *Space) ToWorld(p image.Point) mgl32.Vec2 {
	return mgl32.Vec2{s.PixelToWorld(p.X, X), s.PixelToWorld(p.Y, Y)}
}
