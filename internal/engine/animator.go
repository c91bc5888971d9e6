package engine

import (
	"math"
	"math/rand"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/magic-card/internal/config"
	"github.com/iburimskiy/magic-card/internal/render"
	"github.com/iburimskiy/magic-card/internal/settings"
)

// CuePlayer plays a random short sound when the card is clicked.
type CuePlayer interface {
	PlayRandom()
}

// Animator drives the card one tick at a time. Input arrives through Post and
// is applied at the start of the next Update; Draw only reads state.
// Everything here runs on the game loop goroutine.
type Animator struct {
	store *settings.Store
	cues  CuePlayer

	card      Card
	frame     FrameState
	particles *ParticleField
	lines     *LineField
	effects   *ClickEffects

	queue  []Command
	noise  *rand.Rand
	emblem [5]render.Point
	logger zerolog.Logger
}

// NewAnimator builds the fields from the store's current settings and keeps
// them in sync with later changes. cues may be nil.
func NewAnimator(store *settings.Store, cues CuePlayer, rng *rand.Rand) *Animator {
	s := store.Current()
	a := &Animator{
		store:     store,
		cues:      cues,
		card:      newCard(s.Card),
		frame:     FrameState{Hue: config.IdleHue},
		particles: NewParticleField(rng),
		lines:     NewLineField(rng),
		effects:   NewClickEffects(rng),
		noise:     rand.New(rand.NewSource(rng.Int63())),
		logger:    log.With().Str("module", "engine").Logger(),
	}

	a.particles.Regenerate(s.Particles, a.card.Size())
	a.lines.Regenerate(s.Lines, a.card.Size(), a.frame.Hue)
	store.OnChange(a.applySettings)
	return a
}

// Post queues an input notification for the next tick.
func (a *Animator) Post(cmd Command) {
	a.queue = append(a.queue, cmd)
}

// Resize records the viewport size the card is centred in.
func (a *Animator) Resize(w, h int) {
	a.frame.Viewport = Bounds{W: float64(w), H: float64(h)}
	a.card.Place(a.frame.Viewport)
}

// Update runs one tick: place the card, apply queued input, advance the
// clock, resolve glow and hue, then step the shake, background and effects.
func (a *Animator) Update() {
	a.card.Place(a.frame.Viewport)
	a.drain()

	a.frame.Time += config.PhaseStep
	a.resolveGlow()
	a.card.Shake.Advance()

	s := a.store.Current()
	a.particles.Tick(a.card.Size())
	a.lines.Tick(a.frame.Time, s.Lines.WaveHeight)
	a.effects.Tick()
}

// Draw composes the frame: halo, clipped background, chrome, then the click
// effects on top.
func (a *Animator) Draw(dst render.Surface) {
	dst.Clear()

	bounds := a.card.Drawn()
	glow := a.frame.Glow
	if a.card.Shake.Active {
		glow *= config.ShakeGlowGain
	}
	dst.Glow(bounds, a.card.Radius, glow, render.HSL(a.frame.Hue, 1, 0.5))

	a.drawBackground(dst, bounds)
	a.drawChrome(dst, bounds)
	a.effects.Render(dst)
}

// Frame returns a copy of the current frame state.
func (a *Animator) Frame() FrameState { return a.frame }

// Card returns a copy of the card.
func (a *Animator) Card() Card { return a.card }

func (a *Animator) drain() {
	for _, cmd := range a.queue {
		switch c := cmd.(type) {
		case PointerMove:
			a.frame.Hovering = true
			a.frame.Pointer = render.Point{X: c.X, Y: c.Y}
		case PointerLeave:
			a.frame.Hovering = false
		case Click:
			a.click(c.X, c.Y)
		}
	}
	clear(a.queue)
	a.queue = a.queue[:0]
}

func (a *Animator) click(x, y float64) {
	if !a.effects.Spawn(a.card.Bounds(), x, y, a.frame.Hue) {
		return
	}
	a.card.Shake.Start()
	a.lines.SetColor(a.frame.Hue)
	if a.cues != nil {
		a.cues.PlayRandom()
	}
	a.logger.Debug().
		Float64("x", x).
		Float64("y", y).
		Int("live", a.effects.Live()).
		Msg("Card clicked")
}

// resolveGlow maps the pointer angle around the card centre to a hue and its
// distance to the halo size. Without a pointer the halo pulses on the idle hue.
func (a *Animator) resolveGlow() {
	c := a.store.Current().Card

	if !a.frame.Hovering {
		a.frame.Hue = config.IdleHue
		a.frame.Glow = c.GlowIntensity + math.Sin(a.frame.Time)*config.IdlePulse
		return
	}

	center := a.card.Bounds().Center()
	dx := a.frame.Pointer.X - center.X
	dy := a.frame.Pointer.Y - center.Y
	distance := math.Hypot(dx, dy)

	a.frame.Glow = c.GlowIntensity + math.Max(0, c.GlowMax-distance/config.HoverFalloff)
	a.frame.Hue = math.Mod((math.Atan2(dy, dx)+math.Pi)/(2*math.Pi)*360, 360)
	a.lines.SetColor(a.frame.Hue)
}

func (a *Animator) applySettings(c settings.Change) {
	s := a.store.Current()

	if c.Has(settings.ChangeCardSize) {
		a.card.Width = s.Card.Width
		a.card.Height = s.Card.Height
		a.card.Radius = s.Card.CornerRadius
		a.card.Place(a.frame.Viewport)
	}
	if c.Has(settings.ChangeParticles | settings.ChangeCardSize) {
		a.particles.Regenerate(s.Particles, a.card.Size())
		a.logger.Debug().Int("count", a.particles.Len()).Msg("Particles regenerated")
	}
	if c.Has(settings.ChangeLines | settings.ChangeCardSize) {
		a.lines.Regenerate(s.Lines, a.card.Size(), a.frame.Hue)
		a.logger.Debug().Int("count", a.lines.Len()).Msg("Lines regenerated")
	}
}
