package core

import (
	"errors"
	"time"
)

// ErrInvalidFrameRate is returned when a clock is built with a non-positive
// target frame rate.
var ErrInvalidFrameRate = errors.New("target frame rate must be positive")

// Clock paces a frame loop to a target frame rate by sleeping away whatever
// is left of each frame's budget.
type Clock struct {
	fps      int
	target   time.Duration
	measured time.Duration
	last     time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewClock constructs a Clock targeting fps frames per second. The first
// frame is measured from the moment of construction.
func NewClock(fps int) (*Clock, error) {
	return newClock(fps, time.Now, time.Sleep)
}

func newClock(fps int, now func() time.Time, sleep func(time.Duration)) (*Clock, error) {
	if fps <= 0 {
		return nil, ErrInvalidFrameRate
	}
	target := time.Second / time.Duration(fps)
	return &Clock{
		fps:      fps,
		target:   target,
		measured: target,
		last:     now(),
		now:      now,
		sleep:    sleep,
	}, nil
}

// Tick blocks until at least one target frame duration has passed since the
// previous tick, then records how long the frame actually took.
func (c *Clock) Tick() {
	elapsed := c.now().Sub(c.last)
	if elapsed < c.target {
		c.sleep(c.target - elapsed)
	}
	now := c.now()
	c.measured = now.Sub(c.last)
	c.last = now
}

// FPS returns the configured target frame rate.
func (c *Clock) FPS() int { return c.fps }

// Target returns the frame budget.
func (c *Clock) Target() time.Duration { return c.target }

// Measured returns the duration of the last completed frame.
func (c *Clock) Measured() time.Duration { return c.measured }

// WorldDt returns the measured frame duration in units of the target frame
// duration. Motion scaled by it runs at the same speed regardless of the
// achieved frame rate.
func (c *Clock) WorldDt() float32 {
	if c.measured <= 0 {
		return 0
	}
	return float32(float64(c.measured) / float64(c.target))
}
