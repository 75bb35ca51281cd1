package render

import (
	"image"
	"image/color"
)

// Surface is the drawing target a scene renders into each frame.
type Surface interface {
	// Size returns the drawable area in pixels.
	Size() (w, h int)
	// Clear fills the whole surface with c.
	Clear(c color.Color)
	// StrokeRect outlines r.
	StrokeRect(r image.Rectangle, c color.Color)
	// FillCircle draws a filled circle of radius pixels around center.
	FillCircle(center image.Point, radius int, c color.Color)
	// Present shows the finished frame.
	Present()
}

// OpKind identifies a recorded drawing operation.
type OpKind uint8

const (
	OpClear OpKind = iota + 1
	OpStrokeRect
	OpFillCircle
)

// Op is one recorded drawing call.
type Op struct {
	Kind   OpKind
	Rect   image.Rectangle
	Center image.Point
	Radius int
	Color  color.RGBA
}

// Recorder is a headless Surface that records the current frame's drawing
// calls. Present closes the frame.
type Recorder struct {
	w, h int
	ops  []Op
	last []Op

	// Presents counts completed frames.
	Presents int
}

// NewRecorder returns a Recorder reporting the given size.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{w: w, h: h}
}

// Size returns the size given to NewRecorder.
func (r *Recorder) Size() (int, int) { return r.w, r.h }

// Clear starts the pending frame over with a clear operation.
func (r *Recorder) Clear(c color.Color) {
	r.ops = r.ops[:0]
	r.ops = append(r.ops, Op{Kind: OpClear, Color: toRGBA(c)})
}

// StrokeRect records a rectangle outline.
func (r *Recorder) StrokeRect(rect image.Rectangle, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpStrokeRect, Rect: rect, Color: toRGBA(c)})
}

// FillCircle records a filled circle.
func (r *Recorder) FillCircle(center image.Point, radius int, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpFillCircle, Center: center, Radius: radius, Color: toRGBA(c)})
}

// Present moves the pending operations into Frame.
func (r *Recorder) Present() {
	r.last = append(r.last[:0], r.ops...)
	r.ops = r.ops[:0]
	r.Presents++
}

// Pending returns the operations drawn since the last Present.
func (r *Recorder) Pending() []Op { return r.ops }

// Frame returns the operations of the most recently presented frame.
func (r *Recorder) Frame() []Op { return r.last }

// Count returns how many operations of kind k the last presented frame holds.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.last {
		if op.Kind == k {
			n++
		}
	}
	return n
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
