package space

import (
	"image"
	"image/color"

	"boids/internal/render"

	"github.com/go-gl/mathgl/mgl32"
)

// Object is anything placed in a Space. It keeps its world position and the
// pixel position derived from it in step: every setter updates one and
// re-derives the other before returning.
type Object struct {
	space *Space
	world mgl32.Vec2
	pixel image.Point
	w, h  int
}

// NewObject places a zero-sized object at the world origin.
func NewObject(s *Space) *Object {
	o := &Object{space: s}
	o.SetWorld(mgl32.Vec2{})
	return o
}

// NewObjectAtWorld places a w x h pixel object at world position (x, y).
func NewObjectAtWorld(s *Space, x, y float32, w, h int) *Object {
	o := &Object{space: s, w: w, h: h}
	o.SetWorld(mgl32.Vec2{x, y})
	return o
}

// NewObjectAtPixel places a w x h pixel object at pixel position (x, y).
func NewObjectAtPixel(s *Space, x, y, w, h int) *Object {
	o := &Object{space: s, w: w, h: h}
	o.SetPixel(image.Pt(x, y))
	return o
}

// Space returns the space the object lives in.
func (o *Object) Space() *Space { return o.space }

// World returns the world position.
func (o *Object) World() mgl32.Vec2 { return o.world }

// Pixel returns the pixel position of the object's centre.
func (o *Object) Pixel() image.Point { return o.pixel }

// Extent returns the pixel width and height.
func (o *Object) Extent() (w, h int) { return o.w, o.h }

// Rect returns the pixel rectangle centred on the object.
func (o *Object) Rect() image.Rectangle {
	min := o.pixel.Sub(image.Pt(o.w/2, o.h/2))
	return image.Rectangle{Min: min, Max: min.Add(image.Pt(o.w, o.h))}
}

// SetWorld moves the object to world position v.
func (o *Object) SetWorld(v mgl32.Vec2) {
	o.world = v
	o.pixel = o.space.ToPixel(v)
}

// SetWorldX moves the object along the x axis in world units.
func (o *Object) SetWorldX(x float32) {
	o.SetWorld(mgl32.Vec2{x, o.world.Y()})
}

// SetWorldY moves the object along the y axis in world units.
func (o *Object) SetWorldY(y float32) {
	o.SetWorld(mgl32.Vec2{o.world.X(), y})
}

// SetPixel moves the object to pixel position p.
func (o *Object) SetPixel(p image.Point) {
	o.pixel = p
	o.world = o.space.ToWorld(p)
}

// SetPixelX moves the object along the x axis in pixels.
func (o *Object) SetPixelX(x int) {
	o.SetPixel(image.Pt(x, o.pixel.Y))
}

// SetPixelY moves the object along the y axis in pixels.
func (o *Object) SetPixelY(y int) {
	o.SetPixel(image.Pt(o.pixel.X, y))
}

// DrawRect outlines the object's rectangle.
func (o *Object) DrawRect(s render.Surface, c color.Color) {
	s.StrokeRect(o.Rect(), c)
}

// DrawCircle fills a circle of the given pixel radius at the object's centre.
func (o *Object) DrawCircle(s render.Surface, radius int, c color.Color) {
	s.FillCircle(o.pixel, radius, c)
}
