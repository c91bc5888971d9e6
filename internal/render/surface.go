// Package render defines the 2D drawing surface the card is composed on and an
// ebiten-backed implementation of it.
package render

import "image/color"

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Center is the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Align is the horizontal anchor of drawn text.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Font selects one of the embedded faces.
type Font struct {
	Size float64
	Bold bool
}

// Surface is an immediate-mode canvas. Coordinates pass through the current
// transform, which Save and Restore push and pop.
type Surface interface {
	Size() (w, h int)
	Clear()

	Save()
	Restore()
	Translate(dx, dy float64)
	Rotate(theta float64)

	FillCircle(cx, cy, r float64, c color.Color)
	StrokeCircle(cx, cy, r, width float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
	StrokePolyline(pts []Point, width float64, c color.Color)
	StrokePolygon(pts []Point, width float64, c color.Color)
	FillRect(r Rect, c color.Color)
	StrokeRect(r Rect, width float64, c color.Color)

	FillRoundedRectGradient(r Rect, radius float64, from, to color.Color)
	StrokeRoundedRect(r Rect, radius, width float64, c color.Color)

	// Glow paints a soft halo of the given size around a rounded rect.
	Glow(r Rect, radius, size float64, c color.Color)

	// BeginClip redirects drawing until EndClip; the result is composited
	// through the rounded rect r. Clips do not nest.
	BeginClip(r Rect, radius float64)
	EndClip()

	Text(s string, x, y float64, font Font, align Align, c color.Color)
}
