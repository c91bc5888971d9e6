package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Screen draws onto an ebiten image. Bind it to the frame's target before
// drawing; vertex buffers are reused between frames.
type Screen struct {
	dst    *ebiten.Image
	target *ebiten.Image
	layer  *ebiten.Image

	geom  ebiten.GeoM
	stack []ebiten.GeoM

	clipRect   Rect
	clipRadius float64
	clipGeom   ebiten.GeoM
	clipping   bool

	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[Font]*text.GoTextFace

	white *ebiten.Image

	vs []ebiten.Vertex
	is []uint16
}

// NewScreen loads the embedded Go fonts.
func NewScreen() (*Screen, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &Screen{
		white:   white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		regular: regular,
		bold:    bold,
		faces:   map[Font]*text.GoTextFace{},
	}, nil
}

// Bind targets dst and resets the transform stack.
func (s *Screen) Bind(dst *ebiten.Image) {
	s.dst = dst
	s.target = dst
	s.geom.Reset()
	s.stack = s.stack[:0]
	s.clipping = false

	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	if s.layer == nil || s.layer.Bounds().Dx() != w || s.layer.Bounds().Dy() != h {
		if s.layer != nil {
			s.layer.Deallocate()
		}
		s.layer = ebiten.NewImage(w, h)
	}
}

func (s *Screen) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Screen) Clear() { s.target.Clear() }

func (s *Screen) Save() { s.stack = append(s.stack, s.geom) }

func (s *Screen) Restore() {
	n := len(s.stack)
	if n == 0 {
		return
	}
	s.geom = s.stack[n-1]
	s.stack = s.stack[:n-1]
}

func (s *Screen) Translate(dx, dy float64) {
	var t ebiten.GeoM
	t.Translate(dx, dy)
	t.Concat(s.geom)
	s.geom = t
}

func (s *Screen) Rotate(theta float64) {
	var t ebiten.GeoM
	t.Rotate(theta)
	t.Concat(s.geom)
	s.geom = t
}

func (s *Screen) FillCircle(cx, cy, r float64, c color.Color) {
	var p vector.Path
	s.circle(&p, cx, cy, r)
	s.fill(&p, c)
}

func (s *Screen) StrokeCircle(cx, cy, r, width float64, c color.Color) {
	var p vector.Path
	s.circle(&p, cx, cy, r)
	s.stroke(&p, width, c)
}

func (s *Screen) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	var p vector.Path
	s.moveTo(&p, x0, y0)
	s.lineTo(&p, x1, y1)
	s.stroke(&p, width, c)
}

func (s *Screen) StrokePolyline(pts []Point, width float64, c color.Color) {
	if len(pts) < 2 {
		return
	}
	var p vector.Path
	s.moveTo(&p, pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		s.lineTo(&p, pt.X, pt.Y)
	}
	s.stroke(&p, width, c)
}

func (s *Screen) StrokePolygon(pts []Point, width float64, c color.Color) {
	if len(pts) < 2 {
		return
	}
	var p vector.Path
	s.moveTo(&p, pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		s.lineTo(&p, pt.X, pt.Y)
	}
	p.Close()
	s.stroke(&p, width, c)
}

func (s *Screen) FillRect(r Rect, c color.Color) {
	var p vector.Path
	s.rect(&p, r)
	s.fill(&p, c)
}

func (s *Screen) StrokeRect(r Rect, width float64, c color.Color) {
	var p vector.Path
	s.rect(&p, r)
	s.stroke(&p, width, c)
}

// FillRoundedRectGradient fills along the top-left to bottom-right diagonal.
func (s *Screen) FillRoundedRectGradient(r Rect, radius float64, from, to color.Color) {
	var p vector.Path
	s.roundedRect(&p, r, radius)

	s.vs, s.is = p.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])

	x0, y0 := s.geom.Apply(r.X, r.Y)
	x1, y1 := s.geom.Apply(r.X+r.W, r.Y+r.H)
	dx, dy := x1-x0, y1-y0
	den := dx*dx + dy*dy
	c0, c1 := toNRGBA(from), toNRGBA(to)

	for i := range s.vs {
		v := &s.vs[i]
		t := 0.0
		if den > 0 {
			t = Clamp01(((float64(v.DstX)-x0)*dx + (float64(v.DstY)-y0)*dy) / den)
		}
		setVertexColor(v, lerpColor(c0, c1, t))
	}
	s.target.DrawTriangles(s.vs, s.is, s.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (s *Screen) StrokeRoundedRect(r Rect, radius, width float64, c color.Color) {
	var p vector.Path
	s.roundedRect(&p, r, radius)
	s.stroke(&p, width, c)
}

// Glow approximates a blurred shadow with concentric strokes fading outward.
func (s *Screen) Glow(r Rect, radius, size float64, c color.Color) {
	if size <= 0 {
		return
	}
	base := toNRGBA(c)
	steps := int(math.Max(1, math.Min(24, math.Ceil(size/2))))
	band := size / float64(steps)
	for i := steps; i >= 1; i-- {
		d := band * float64(i)
		k := 1 - float64(i-1)/float64(steps)
		ring := Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
		s.StrokeRoundedRect(ring, radius+d, band+1, WithAlpha(base, 0.35*k*k))
	}
}

func (s *Screen) BeginClip(r Rect, radius float64) {
	if s.clipping {
		return
	}
	s.clipping = true
	s.clipRect = r
	s.clipRadius = radius
	s.clipGeom = s.geom
	s.layer.Clear()
	s.target = s.layer
}

func (s *Screen) EndClip() {
	if !s.clipping {
		return
	}
	s.clipping = false
	s.target = s.dst

	saved := s.geom
	s.geom = s.clipGeom
	var p vector.Path
	s.roundedRect(&p, s.clipRect, s.clipRadius)
	s.geom = saved

	s.vs, s.is = p.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	for i := range s.vs {
		v := &s.vs[i]
		v.SrcX, v.SrcY = v.DstX, v.DstY
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = 1, 1, 1, 1
	}
	s.dst.DrawTriangles(s.vs, s.is, s.layer, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// Text anchors the baseline at (x, y) like a canvas fillText.
func (s *Screen) Text(str string, x, y float64, font Font, align Align, c color.Color) {
	face := s.face(font)
	tx, ty := s.geom.Apply(x, y)

	op := &text.DrawOptions{}
	op.GeoM.Translate(tx, ty-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(c)
	switch align {
	case AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case AlignEnd:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	text.Draw(s.target, str, face, op)
}

func (s *Screen) face(f Font) *text.GoTextFace {
	if face, ok := s.faces[f]; ok {
		return face
	}
	src := s.regular
	if f.Bold {
		src = s.bold
	}
	face := &text.GoTextFace{Source: src, Size: f.Size}
	s.faces[f] = face
	return face
}

func (s *Screen) moveTo(p *vector.Path, x, y float64) {
	tx, ty := s.geom.Apply(x, y)
	p.MoveTo(float32(tx), float32(ty))
}

func (s *Screen) lineTo(p *vector.Path, x, y float64) {
	tx, ty := s.geom.Apply(x, y)
	p.LineTo(float32(tx), float32(ty))
}

func (s *Screen) arcTo(p *vector.Path, x1, y1, x2, y2, radius float64) {
	ax, ay := s.geom.Apply(x1, y1)
	bx, by := s.geom.Apply(x2, y2)
	p.ArcTo(float32(ax), float32(ay), float32(bx), float32(by), float32(radius))
}

func (s *Screen) circle(p *vector.Path, cx, cy, r float64) {
	tx, ty := s.geom.Apply(cx, cy)
	p.Arc(float32(tx), float32(ty), float32(r), 0, 2*math.Pi, vector.Clockwise)
	p.Close()
}

func (s *Screen) rect(p *vector.Path, r Rect) {
	s.moveTo(p, r.X, r.Y)
	s.lineTo(p, r.X+r.W, r.Y)
	s.lineTo(p, r.X+r.W, r.Y+r.H)
	s.lineTo(p, r.X, r.Y+r.H)
	p.Close()
}

// roundedRect traces the outline with one arc segment per corner.
func (s *Screen) roundedRect(p *vector.Path, r Rect, radius float64) {
	radius = math.Max(0, math.Min(radius, math.Min(r.W, r.H)/2))
	x, y, w, h := r.X, r.Y, r.W, r.H

	s.moveTo(p, x+radius, y)
	s.lineTo(p, x+w-radius, y)
	s.arcTo(p, x+w, y, x+w, y+radius, radius)
	s.lineTo(p, x+w, y+h-radius)
	s.arcTo(p, x+w, y+h, x+w-radius, y+h, radius)
	s.lineTo(p, x+radius, y+h)
	s.arcTo(p, x, y+h, x, y+h-radius, radius)
	s.lineTo(p, x, y+radius)
	s.arcTo(p, x, y, x+radius, y, radius)
	p.Close()
}

func (s *Screen) fill(p *vector.Path, c color.Color) {
	s.vs, s.is = p.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.paint(c)
}

func (s *Screen) stroke(p *vector.Path, width float64, c color.Color) {
	op := &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
	s.vs, s.is = p.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], op)
	s.paint(c)
}

func (s *Screen) paint(c color.Color) {
	nc := toNRGBA(c)
	if nc.A == 0 {
		return
	}
	for i := range s.vs {
		setVertexColor(&s.vs[i], nc)
	}
	s.target.DrawTriangles(s.vs, s.is, s.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func setVertexColor(v *ebiten.Vertex, c color.NRGBA) {
	v.SrcX, v.SrcY = 1, 1
	v.ColorR = float32(c.R) / 0xff
	v.ColorG = float32(c.G) / 0xff
	v.ColorB = float32(c.B) / 0xff
	v.ColorA = float32(c.A) / 0xff
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
