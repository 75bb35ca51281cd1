package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestWrap(t *testing.T) {
	cases := []struct{ v, n, want int }{
		{805, 800, 5},
		{800, 800, 0},
		{-1, 800, 799},
		{-805, 800, 795},
		{0, 600, 0},
		{599, 600, 599},
	}
	for _, tc := range cases {
		if got := Wrap(tc.v, tc.n); got != tc.want {
			t.Fatalf("Wrap(%d, %d) = %d, want %d", tc.v, tc.n, got, tc.want)
		}
	}
}

func TestGridPointsColumnMajor(t *testing.T) {
	g := Grid{Cols: 2, Rows: 3, Origin: mgl32.Vec2{100, 100}, Spacing: mgl32.Vec2{50, 50}}
	pts := g.Points()
	want := []mgl32.Vec2{
		{100, 100}, {100, 150}, {100, 200},
		{150, 100}, {150, 150}, {150, 200},
	}
	if len(pts) != len(want) {
		t.Fatalf("got %d points, want %d", len(pts), len(want))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Fatalf("point %d = %v, want %v", i, pts[i], want[i])
		}
	}
	if (Grid{Cols: 0, Rows: 5}).Points() != nil {
		t.Fatal("empty grid should yield no points")
	}
}
