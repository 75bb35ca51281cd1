package core

import "github.com/go-gl/mathgl/mgl32"

// Grid lays out Cols*Rows spawn points starting at Origin, Spacing apart, in
// world units.
type Grid struct {
	Cols, Rows int
	Origin     mgl32.Vec2
	Spacing    mgl32.Vec2
}

// Points returns the spawn points column by column.
func (g Grid) Points() []mgl32.Vec2 {
	if g.Cols <= 0 || g.Rows <= 0 {
		return nil
	}
	pts := make([]mgl32.Vec2, 0, g.Cols*g.Rows)
	for i := 0; i < g.Cols; i++ {
		for j := 0; j < g.Rows; j++ {
			pts = append(pts, mgl32.Vec2{
				g.Origin.X() + float32(i)*g.Spacing.X(),
				g.Origin.Y() + float32(j)*g.Spacing.Y(),
			})
		}
	}
	return pts
}

// Wrap maps v onto [0, n) with floor semantics, so negative values wrap to
// the far edge. n must be positive.
func Wrap(v, n int) int {
	return (v%n + n) % n
}
