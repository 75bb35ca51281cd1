package boids

import (
	"boids/internal/core"
	"boids/internal/input"
	"boids/internal/render"
	"boids/internal/space"

	"github.com/go-gl/mathgl/mgl32"
)

// Squareboy is a square steered with WASD. It drifts with damped momentum and
// wraps around the edges of the viewport.
type Squareboy struct {
	*space.Object

	Velocity     mgl32.Vec2
	Acceleration mgl32.Vec2

	params *Params
}

// NewSquareboy places a size x size squareboy at world position pos.
func NewSquareboy(s *space.Space, pos mgl32.Vec2, size int, params *Params) *Squareboy {
	return &Squareboy{
		Object: space.NewObjectAtWorld(s, pos.X(), pos.Y(), size, size),
		params: params,
	}
}

// NewSquareboyAtPixel places a size x size squareboy at pixel position (x, y).
func NewSquareboyAtPixel(s *space.Space, x, y, size int, params *Params) *Squareboy {
	return &Squareboy{
		Object: space.NewObjectAtPixel(s, x, y, size, size),
		params: params,
	}
}

// Update steers, wraps and moves the squareboy.
func (b *Squareboy) Update(f *core.Frame) {
	b.InteractUser(f.Keys, f.Dt)
	b.Behave()
	b.Motion(f.Dt)
}

// InteractUser turns the held steering keys into acceleration and integrates
// it into velocity.
func (b *Squareboy) InteractUser(keys input.KeyReader, dt float32) {
	b.Acceleration = mgl32.Vec2{}
	if keys.Pressed(input.KeyA) {
		b.Acceleration[0] -= 1
	}
	if keys.Pressed(input.KeyD) {
		b.Acceleration[0] += 1
	}
	if keys.Pressed(input.KeyW) {
		b.Acceleration[1] -= 1
	}
	if keys.Pressed(input.KeyS) {
		b.Acceleration[1] += 1
	}
	if keys.Pressed(input.KeySpace) {
		b.Acceleration = b.Acceleration.Mul(b.params.Boost)
	}
	b.Velocity = b.Velocity.Add(b.Acceleration.Mul(dt))
}

// Behave wraps the squareboy to the opposite edge once it leaves the
// viewport. Only one axis is wrapped per call, x taking precedence; a
// squareboy outside on both axes has y wrapped on a later frame.
func (b *Squareboy) Behave() {
	p := b.Pixel()
	size := b.Space().PixelSize()
	if p.X < 0 || p.X > size.X {
		b.SetPixelX(core.Wrap(p.X, size.X))
	} else if p.Y < 0 || p.Y > size.Y {
		b.SetPixelY(core.Wrap(p.Y, size.Y))
	}
}

// Motion damps velocity, then integrates it into the world position.
func (b *Squareboy) Motion(dt float32) {
	b.Velocity = b.Velocity.Sub(b.Velocity.Mul(b.params.Damping * dt))
	b.SetWorld(b.World().Add(b.Velocity.Mul(dt)))
}

// Draw outlines the square.
func (b *Squareboy) Draw(s render.Surface) {
	b.DrawRect(s, render.Green)
}
