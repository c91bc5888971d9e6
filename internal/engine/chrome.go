package engine

import (
	"math"

	"github.com/iburimskiy/magic-card/internal/config"
	"github.com/iburimskiy/magic-card/internal/render"
)

var (
	gradientTop    = render.Hex("#1a1a1a")
	gradientBottom = render.Hex("#0c0c0c")
	borderColor    = render.Hex("#333333")
	titleColor     = render.Hex("#ffffff")
	captionColor   = render.Hex("#cccccc")
	footerColor    = render.Hex("#888888")
	emblemFill     = render.RGBA(0, 255, 136, 0.2)

	titleFont   = render.Font{Size: 24, Bold: true}
	captionFont = render.Font{Size: 16}
	footerFont  = render.Font{Size: 12}

	captions = [...]string{
		"Move your cursor to",
		"control the glow effect",
		"Click to activate magic!",
	}
)

// drawBackground paints the gradient, lines, particles and a speckle of
// noise, all clipped to the card.
func (a *Animator) drawBackground(dst render.Surface, bounds render.Rect) {
	origin := render.Point{X: bounds.X, Y: bounds.Y}

	dst.BeginClip(bounds, a.card.Radius)
	dst.FillRoundedRectGradient(bounds, a.card.Radius, gradientTop, gradientBottom)
	a.lines.Render(dst, origin)
	a.particles.Render(dst, origin)

	for i := 0; i < config.NoiseSpecks; i++ {
		x := bounds.X + a.noise.Float64()*bounds.W
		y := bounds.Y + a.noise.Float64()*bounds.H
		size := a.noise.Float64() * config.NoiseMaxSize
		dst.FillCircle(x, y, size, render.RGBA(255, 255, 255, a.noise.Float64()*config.NoiseMaxAlpha))
	}
	dst.EndClip()
}

// drawChrome paints the border, title, spinning emblem and captions.
func (a *Animator) drawChrome(dst render.Surface, bounds render.Rect) {
	hue := render.HSL(a.frame.Hue, 1, 0.6)
	center := bounds.Center()

	dst.StrokeRoundedRect(bounds, a.card.Radius, config.BorderWidth, borderColor)
	dst.Text("MAGIC CARD", center.X, bounds.Y+config.TitleOffset, titleFont, render.AlignCenter, titleColor)

	dst.Save()
	dst.Translate(center.X, center.Y)
	dst.Rotate(a.frame.Time * config.EmblemSpin)
	for i := range a.emblem {
		angle := float64(i)*2*math.Pi/float64(len(a.emblem)) - math.Pi/2
		a.emblem[i] = render.Point{
			X: config.EmblemRadius * math.Cos(angle),
			Y: config.EmblemRadius * math.Sin(angle),
		}
	}
	dst.StrokePolygon(a.emblem[:], 3, hue)
	dst.FillCircle(0, 0, config.EmblemCore, emblemFill)
	dst.StrokeCircle(0, 0, config.EmblemCore, 2, hue)
	dst.Restore()

	for i, line := range captions {
		y := center.Y + config.CaptionOffset + float64(i)*config.CaptionSpacing
		dst.Text(line, center.X, y, captionFont, render.AlignCenter, captionColor)
	}
	dst.Text("Card Glow Challenge", center.X, bounds.Y+bounds.H-config.FooterOffset, footerFont, render.AlignCenter, footerColor)
}
