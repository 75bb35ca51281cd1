package space

import (
	"errors"
	"image"
	"math"
	"testing"

	"boids/internal/render"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewRejectsBothAxesUnspecified(t *testing.T) {
	s, err := New(800, 600, Unspecified, Unspecified)
	if !errors.Is(err, ErrWorldSizeUnspecified) {
		t.Fatalf("error = %v, want ErrWorldSizeUnspecified", err)
	}
	if s != nil {
		t.Fatal("construction must not succeed")
	}
}

func TestNewDerivesMissingAxis(t *testing.T) {
	cases := []struct {
		name           string
		worldW, worldH float32
		wantW, wantH   float32
	}{
		{"height from width", 2000, Unspecified, 2000, 1500},
		{"width from height", Unspecified, 300, 400, 300},
		{"both given", 100, 100, 100, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := New(800, 600, tc.worldW, tc.worldH)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			got := s.WorldSize()
			if !approx(got.X(), tc.wantW) || !approx(got.Y(), tc.wantH) {
				t.Fatalf("world size = %v, want (%v, %v)", got, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestNewPreservesAspectRatio(t *testing.T) {
	s, err := New(1280, 720, 1000, Unspecified)
	if err != nil {
		t.Fatal(err)
	}
	ws := s.WorldSize()
	if got, want := ws.X()/ws.Y(), float32(1280)/720; math.Abs(float64(got-want)) > 1e-5 {
		t.Fatalf("world aspect %v, want %v", got, want)
	}
}

func TestNewRejectsBadSizes(t *testing.T) {
	if _, err := New(0, 600, 100, 100); !errors.Is(err, ErrInvalidPixelSize) {
		t.Fatalf("zero pixel width: error = %v", err)
	}
	if _, err := New(800, 600, 0, Unspecified); !errors.Is(err, ErrInvalidWorldSize) {
		t.Fatalf("zero world width: error = %v", err)
	}
	if _, err := New(800, 600, -5, 100); !errors.Is(err, ErrInvalidWorldSize) {
		t.Fatalf("negative world width: error = %v", err)
	}
}

func TestWorldPixelRoundTrip(t *testing.T) {
	s, err := New(800, 600, 2000, Unspecified)
	if err != nil {
		t.Fatal(err)
	}
	ws := s.WorldSize()
	// Pixels are integers, so a round trip is exact up to one pixel's span.
	tolX := float64(ws.X()) / 800
	tolY := float64(ws.Y()) / 600
	for x := float32(0); x < ws.X(); x += 37.3 {
		for y := float32(0); y < ws.Y(); y += 41.9 {
			back := s.ToWorld(s.ToPixel(mgl32.Vec2{x, y}))
			if d := math.Abs(float64(back.X() - x)); d > tolX {
				t.Fatalf("x %v round-tripped to %v", x, back.X())
			}
			if d := math.Abs(float64(back.Y() - y)); d > tolY {
				t.Fatalf("y %v round-tripped to %v", y, back.Y())
			}
		}
	}
}

func TestPixelWorldRoundTripExact(t *testing.T) {
	s, err := New(800, 600, 2000, Unspecified)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []image.Point{{0, 0}, {5, 7}, {400, 300}, {799, 599}, {-20, 650}} {
		if got := s.ToPixel(s.ToWorld(p)); got != p {
			t.Fatalf("pixel %v round-tripped to %v", p, got)
		}
	}
}

func TestPixelWorldRoundTripUnevenSizes(t *testing.T) {
	cases := []struct {
		pixelW, pixelH int
		worldW, worldH float32
	}{
		{777, 555, 333, Unspecified},
		{1280, 720, 1000, Unspecified},
		{1023, 767, Unspecified, 97.3},
		{640, 480, 3, Unspecified},
		{1920, 1080, 12345.6, Unspecified},
	}
	for _, tc := range cases {
		s, err := New(tc.pixelW, tc.pixelH, tc.worldW, tc.worldH)
		if err != nil {
			t.Fatal(err)
		}
		for _, a := range []Axis{X, Y} {
			n := s.Pixels(a)
			for p := -2 * n; p < 3*n; p++ {
				if got := s.WorldToPixel(s.PixelToWorld(p, a), a); got != p {
					t.Fatalf("%dx%d axis %d: pixel %d round-tripped to %d", tc.pixelW, tc.pixelH, a, p, got)
				}
			}
		}
	}
}

func TestObjectRepresentationsAgree(t *testing.T) {
	s, err := New(777, 555, 333, Unspecified)
	if err != nil {
		t.Fatal(err)
	}
	o := NewObjectAtPixel(s, 3, 3, 10, 10)
	if o.Pixel() != image.Pt(3, 3) {
		t.Fatalf("pixel = %v, want (3,3)", o.Pixel())
	}
	if got := s.ToPixel(o.World()); got != o.Pixel() {
		t.Fatalf("world %v maps to %v, stored pixel %v", o.World(), got, o.Pixel())
	}
	o.SetWorld(o.World())
	if o.Pixel() != image.Pt(3, 3) {
		t.Fatalf("re-setting the same world position moved the pixel to %v", o.Pixel())
	}
}

func TestWorldToPixelTruncatesTowardZero(t *testing.T) {
	s, _ := New(800, 600, 2000, Unspecified)
	cases := []struct {
		unit float32
		want int
	}{
		{0, 0},
		{2.4, 0},
		{2.5, 1},
		{6.2, 2},
		{-2.4, 0},
		{-2.5, -1},
		{-6.2, -2},
	}
	for _, tc := range cases {
		if got := s.WorldToPixel(tc.unit, X); got != tc.want {
			t.Fatalf("WorldToPixel(%v) = %d, want %d", tc.unit, got, tc.want)
		}
	}
}

func TestObjectConstructorsDeriveBothRepresentations(t *testing.T) {
	s, _ := New(800, 600, 2000, Unspecified)

	a := NewObjectAtWorld(s, 100, 250, 20, 20)
	if a.Pixel() != image.Pt(40, 100) {
		t.Fatalf("world-constructed pixel = %v, want (40,100)", a.Pixel())
	}

	b := NewObjectAtPixel(s, 40, 100, 20, 20)
	if w := b.World(); !approx(w.X(), 100) || !approx(w.Y(), 250) {
		t.Fatalf("pixel-constructed world = %v, want (100,250)", w)
	}

	c := NewObject(s)
	if c.World() != (mgl32.Vec2{}) || c.Pixel() != (image.Point{}) {
		t.Fatalf("default object at %v / %v, want origin", c.World(), c.Pixel())
	}
	if w, h := c.Extent(); w != 0 || h != 0 {
		t.Fatalf("default extent %dx%d, want 0x0", w, h)
	}
}

func TestObjectSettersKeepRepresentationsInStep(t *testing.T) {
	s, _ := New(800, 600, 2000, Unspecified)
	o := NewObjectAtWorld(s, 0, 0, 10, 10)

	o.SetWorldX(500)
	if o.Pixel() != image.Pt(200, 0) {
		t.Fatalf("after SetWorldX pixel = %v", o.Pixel())
	}
	o.SetWorldY(750)
	if o.Pixel() != image.Pt(200, 300) {
		t.Fatalf("after SetWorldY pixel = %v", o.Pixel())
	}
	o.SetPixelX(5)
	if w := o.World(); !approx(w.X(), 12.5) || !approx(w.Y(), 750) {
		t.Fatalf("after SetPixelX world = %v", w)
	}
	o.SetPixelY(-10)
	if w := o.World(); !approx(w.Y(), -25) {
		t.Fatalf("after SetPixelY world = %v", w)
	}
	o.SetWorld(mgl32.Vec2{2500, 1600})
	if o.Pixel() != image.Pt(1000, 640) {
		t.Fatalf("positions outside the world are not clamped, got %v", o.Pixel())
	}
}

func TestObjectDrawing(t *testing.T) {
	s, _ := New(800, 600, 2000, Unspecified)
	o := NewObjectAtPixel(s, 100, 50, 20, 10)
	rec := render.NewRecorder(800, 600)

	o.DrawRect(rec, render.Green)
	o.DrawCircle(rec, 4, render.Green)
	ops := rec.Pending()

	if len(ops) != 2 {
		t.Fatalf("recorded %d ops, want 2", len(ops))
	}
	if ops[0].Kind != render.OpStrokeRect || ops[0].Rect != image.Rect(90, 45, 110, 55) {
		t.Fatalf("rect op = %+v", ops[0])
	}
	if ops[1].Kind != render.OpFillCircle || ops[1].Center != image.Pt(100, 50) || ops[1].Radius != 4 {
		t.Fatalf("circle op = %+v", ops[1])
	}
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}
