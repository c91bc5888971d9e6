package panel

import (
	"fmt"

	"github.com/iburimskiy/magic-card/internal/render"
	"github.com/iburimskiy/magic-card/internal/settings"
)

var (
	bodyColor    = render.RGBA(0, 0, 0, 0.8)
	buttonColor  = render.Hex("#2a2a2a")
	buttonHover  = render.Hex("#3d3d3d")
	outlineColor = render.Hex("#444444")
	headerColor  = render.Hex("#00ff88")
	labelColor   = render.Hex("#dddddd")
	valueColor   = render.Hex("#aaaaaa")
	trackColor   = render.Hex("#555555")
	knobColor    = render.Hex("#ffffff")

	headerFont = render.Font{Size: 15, Bold: true}
	labelFont  = render.Font{Size: 13}
	buttonFont = render.Font{Size: 14, Bold: true}
)

// Draw paints the toggle and, when visible, the body.
func (p *Panel) Draw(dst render.Surface) {
	label := "Show Controls"
	if p.visible {
		label = "Hide Controls"
	}
	p.drawButton(dst, p.toggleRect(), label)

	if !p.visible {
		return
	}

	body := p.bodyRect()
	if body.H <= 0 {
		return
	}
	dst.FillRoundedRectGradient(body, 8, bodyColor, bodyColor)
	dst.StrokeRoundedRect(body, 8, 1, outlineColor)

	dst.BeginClip(body, 8)
	for _, it := range p.items {
		r := p.itemRect(body, it)
		if r.Y+r.H < body.Y || r.Y > body.Y+body.H {
			continue
		}
		switch it.kind {
		case itemHeader:
			p.drawHeader(dst, r, it.label)
		case itemSlider:
			p.drawSlider(dst, r, it.control)
		case itemButton:
			p.drawButton(dst, r, it.label)
		}
	}
	if p.status != "" {
		last := p.itemRect(body, p.items[len(p.items)-1])
		dst.Text(p.status, last.X+last.W/2, last.Y+last.H+20, labelFont, render.AlignCenter, valueColor)
	}
	dst.EndClip()
}

func (p *Panel) drawHeader(dst render.Surface, r render.Rect, label string) {
	baseline := r.Y + r.H - 8
	dst.Text(label, r.X, baseline, headerFont, render.AlignStart, headerColor)

	if label != settings.SectionSound || p.level == nil {
		return
	}
	bar := render.Rect{X: r.X + r.W - 80, Y: baseline - 9, W: 80, H: 6}
	dst.FillRect(bar, trackColor)
	bar.W *= render.Clamp01(p.level.Level())
	dst.FillRect(bar, headerColor)
}

func (p *Panel) drawSlider(dst render.Surface, r render.Rect, c settings.Control) {
	v, _ := p.store.Value(c.ID)
	dst.Text(c.Label+":", r.X, r.Y+14, labelFont, render.AlignStart, labelColor)
	dst.Text(fmt.Sprintf("%.2f", v), r.X+r.W, r.Y+14, labelFont, render.AlignEnd, valueColor)

	trackY := r.Y + 24
	dst.StrokeLine(r.X, trackY, r.X+r.W, trackY, 4, trackColor)

	frac := 0.0
	if c.Max > c.Min {
		frac = render.Clamp01((v - c.Min) / (c.Max - c.Min))
	}
	dst.StrokeLine(r.X, trackY, r.X+frac*r.W, trackY, 4, headerColor)
	dst.FillCircle(r.X+frac*r.W, trackY, 6, knobColor)
}

func (p *Panel) drawButton(dst render.Surface, r render.Rect, label string) {
	fill := buttonColor
	if r.Contains(p.cursor.X, p.cursor.Y) {
		fill = buttonHover
	}
	dst.FillRoundedRectGradient(r, 6, fill, fill)
	dst.StrokeRoundedRect(r, 6, 1, outlineColor)
	dst.Text(label, r.X+r.W/2, r.Y+r.H/2+5, buttonFont, render.AlignCenter, labelColor)
}
