package engine

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/magic-card/internal/config"
	"github.com/iburimskiy/magic-card/internal/render"
	"github.com/iburimskiy/magic-card/internal/settings"
)

// LinePoint is one vertex of a background line. X and OriginalY are fixed at
// creation; Y follows the wave.
type LinePoint struct {
	X, Y      float64
	OriginalY float64
}

// Line is an open polyline that undulates around its baseline.
type Line struct {
	Points  []LinePoint
	Width   float64
	Speed   float64
	Offset  float64
	Opacity float64
	Hue     float64
}

// LineField owns the background lines.
type LineField struct {
	lines   []Line
	rng     *rand.Rand
	scratch []render.Point
}

func NewLineField(rng *rand.Rand) *LineField {
	return &LineField{rng: rng}
}

// Regenerate replaces every line with s.Count fresh ones spanning b.
//
// Y and OriginalY take independent jitter around the shared baseline, so the
// first frame before any Tick is slightly off the wave.
func (f *LineField) Regenerate(s settings.Lines, b Bounds, hue float64) {
	f.lines = f.lines[:0]
	for i := 0; i < s.Count; i++ {
		baseline := f.rng.Float64() * b.H

		points := make([]LinePoint, s.NumPoints)
		for j := range points {
			x := 0.0
			if s.NumPoints > 1 {
				x = float64(j) * (b.W / float64(s.NumPoints-1))
			}
			points[j] = LinePoint{
				X:         x,
				Y:         baseline + uniform(f.rng, -config.LineJitter, config.LineJitter),
				OriginalY: baseline + uniform(f.rng, -config.LineJitter, config.LineJitter),
			}
		}

		f.lines = append(f.lines, Line{
			Points:  points,
			Width:   uniform(f.rng, s.MinWidth, s.MaxWidth),
			Speed:   uniform(f.rng, s.MinSpeed, s.MaxSpeed),
			Offset:  f.rng.Float64() * 2 * math.Pi,
			Opacity: uniform(f.rng, s.MinOpacity, s.MaxOpacity),
			Hue:     hue,
		})
	}
}

// Tick sets every point from the wave at time t. The result depends only on
// t and each point's static parameters.
func (f *LineField) Tick(t, waveHeight float64) {
	for i := range f.lines {
		l := &f.lines[i]
		for j := range l.Points {
			p := &l.Points[j]
			p.Y = p.OriginalY + math.Sin(t*l.Speed+l.Offset+float64(j)*config.LinePhaseStep)*waveHeight
		}
	}
}

// SetColor recolours every line at once.
func (f *LineField) SetColor(hue float64) {
	for i := range f.lines {
		f.lines[i].Hue = hue
	}
}

// Render strokes each line offset by origin.
func (f *LineField) Render(dst render.Surface, origin render.Point) {
	for _, l := range f.lines {
		f.scratch = f.scratch[:0]
		for _, p := range l.Points {
			f.scratch = append(f.scratch, render.Point{X: origin.X + p.X, Y: origin.Y + p.Y})
		}
		dst.StrokePolyline(f.scratch, l.Width, render.HSLA(l.Hue, 1, 0.6, l.Opacity))
	}
}

func (f *LineField) Len() int { return len(f.lines) }
