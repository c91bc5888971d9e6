package engine

import (
	"math"

	"github.com/iburimskiy/magic-card/internal/config"
	"github.com/iburimskiy/magic-card/internal/render"
	"github.com/iburimskiy/magic-card/internal/settings"
)

// Card is the centred card. Its origin is derived from the viewport on every
// Place call and never set on its own.
type Card struct {
	Width  float64
	Height float64
	Radius float64
	X, Y   float64

	Shake Shake
}

func newCard(s settings.Card) Card {
	return Card{Width: s.Width, Height: s.Height, Radius: s.CornerRadius}
}

// Place centres the card in vp.
func (c *Card) Place(vp Bounds) {
	c.X = vp.W/2 - c.Width/2
	c.Y = vp.H/2 - c.Height/2
}

// Bounds is the unshaken card rectangle in surface pixels.
func (c *Card) Bounds() render.Rect {
	return render.Rect{X: c.X, Y: c.Y, W: c.Width, H: c.Height}
}

// Drawn is Bounds moved by the current shake offset.
func (c *Card) Drawn() render.Rect {
	return c.Bounds().Offset(c.Shake.OffsetX, c.Shake.OffsetY)
}

// Size is the card-local coordinate box.
func (c *Card) Size() Bounds {
	return Bounds{W: c.Width, H: c.Height}
}

// Shake jolts the card after a click and settles on its own.
type Shake struct {
	Active  bool
	Clock   float64
	Amount  float64
	OffsetX float64
	OffsetY float64
}

// Start (re)arms the shake at full amplitude.
func (s *Shake) Start() {
	s.Active = true
	s.Clock = 0
	s.Amount = config.ShakeAmplitude
}

// Advance steps the shake clock and recomputes the offset. The shake clears
// itself once the clock runs out or the amplitude fades.
func (s *Shake) Advance() {
	if !s.Active {
		s.OffsetX, s.OffsetY = 0, 0
		return
	}

	s.Clock += config.ShakeClockStep
	s.Amount *= config.ShakeDecay
	if s.Clock > config.ShakeClockMax || s.Amount < config.ShakeFloor {
		s.Active = false
		s.Amount = 0
	}
	s.OffsetX = math.Sin(s.Clock*config.ShakeFreqX) * s.Amount
	s.OffsetY = math.Cos(s.Clock*config.ShakeFreqY) * s.Amount
}
