package engine

import (
	"image/color"

	"github.com/iburimskiy/magic-card/internal/render"
)

// call is one recorded drawing operation.
type call struct {
	op    string
	x, y  float64
	r     float64
	text  string
	color color.Color
}

// recorder is a render.Surface that remembers what was drawn.
type recorder struct {
	w, h     int
	calls    []call
	depth    int
	clipped  int
	clipOpen bool
}

var _ render.Surface = (*recorder)(nil)

func newRecorder(w, h int) *recorder { return &recorder{w: w, h: h} }

func (r *recorder) add(c call) {
	if r.clipOpen {
		r.clipped++
	}
	r.calls = append(r.calls, c)
}

func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func (r *recorder) index(op string) int {
	for i, c := range r.calls {
		if c.op == op {
			return i
		}
	}
	return -1
}

func (r *recorder) Size() (int, int) { return r.w, r.h }
func (r *recorder) Clear()            { r.add(call{op: "clear"}) }
func (r *recorder) Save()             { r.depth++ }
func (r *recorder) Restore()          { r.depth-- }
func (r *recorder) Translate(dx, dy float64) {
	r.add(call{op: "translate", x: dx, y: dy})
}
func (r *recorder) Rotate(theta float64) { r.add(call{op: "rotate", r: theta}) }

func (r *recorder) FillCircle(cx, cy, rad float64, c color.Color) {
	r.add(call{op: "fillCircle", x: cx, y: cy, r: rad, color: c})
}

func (r *recorder) StrokeCircle(cx, cy, rad, _ float64, c color.Color) {
	r.add(call{op: "strokeCircle", x: cx, y: cy, r: rad, color: c})
}

func (r *recorder) StrokeLine(x0, y0, _, _, _ float64, c color.Color) {
	r.add(call{op: "strokeLine", x: x0, y: y0, color: c})
}

func (r *recorder) StrokePolyline(pts []render.Point, _ float64, c color.Color) {
	r.add(call{op: "polyline", x: pts[0].X, y: pts[0].Y, color: c})
}

func (r *recorder) StrokePolygon(pts []render.Point, _ float64, c color.Color) {
	r.add(call{op: "polygon", x: pts[0].X, y: pts[0].Y, color: c})
}

func (r *recorder) FillRect(rect render.Rect, c color.Color) {
	r.add(call{op: "fillRect", x: rect.X, y: rect.Y, color: c})
}

func (r *recorder) StrokeRect(rect render.Rect, _ float64, c color.Color) {
	r.add(call{op: "strokeRect", x: rect.X, y: rect.Y, color: c})
}

func (r *recorder) FillRoundedRectGradient(rect render.Rect, _ float64, from, _ color.Color) {
	r.add(call{op: "gradient", x: rect.X, y: rect.Y, color: from})
}

func (r *recorder) StrokeRoundedRect(rect render.Rect, _, _ float64, c color.Color) {
	r.add(call{op: "border", x: rect.X, y: rect.Y, color: c})
}

func (r *recorder) Glow(rect render.Rect, _, size float64, c color.Color) {
	r.add(call{op: "glow", x: rect.X, y: rect.Y, r: size, color: c})
}

func (r *recorder) BeginClip(rect render.Rect, _ float64) {
	r.add(call{op: "beginClip", x: rect.X, y: rect.Y})
	r.clipOpen = true
}

func (r *recorder) EndClip() {
	r.clipOpen = false
	r.add(call{op: "endClip"})
}

func (r *recorder) Text(s string, x, y float64, _ render.Font, _ render.Align, c color.Color) {
	r.add(call{op: "text", x: x, y: y, text: s, color: c})
}
