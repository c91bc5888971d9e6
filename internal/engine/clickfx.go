package engine

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/magic-card/internal/config"
	"github.com/iburimskiy/magic-card/internal/pool"
	"github.com/iburimskiy/magic-card/internal/render"
)

// EffectKind tags which variant of Effect is in use.
type EffectKind uint8

const (
	EffectRing EffectKind = iota
	EffectParticle
	EffectBurstLine
)

func (k EffectKind) String() string {
	switch k {
	case EffectRing:
		return "ring"
	case EffectParticle:
		return "particle"
	case EffectBurstLine:
		return "burstLine"
	default:
		return "unknown"
	}
}

// RingState grows an outline from the click point.
type RingState struct {
	Radius    float64
	MaxRadius float64
}

// SparkState is a dot flung out from the click point.
type SparkState struct {
	SpeedX, SpeedY float64
	Size           float64
	Decay          float64
}

// BurstState is a ray that extends to MaxLength, then fades.
type BurstState struct {
	Angle     float64
	Length    float64
	MaxLength float64
	Speed     float64
	Decay     float64
	Width     float64
}

// Effect is one pooled click effect. Only the state matching Kind is
// meaningful; the others hold stale values from earlier use.
type Effect struct {
	Kind    EffectKind
	X, Y    float64
	Opacity float64
	Color   color.NRGBA

	Ring  RingState
	Spark SparkState
	Burst BurstState
}

// advance steps the effect and reports whether it is still alive.
func (e *Effect) advance() bool {
	switch e.Kind {
	case EffectRing:
		e.Ring.Radius += config.RingGrowth
		e.Opacity -= config.RingFade
		return e.Ring.Radius < e.Ring.MaxRadius && e.Opacity > 0
	case EffectParticle:
		e.X += e.Spark.SpeedX
		e.Spark.SpeedX *= config.BurstDrag
		e.Y += e.Spark.SpeedY
		e.Spark.SpeedY *= config.BurstDrag
		e.Opacity -= e.Spark.Decay
		return e.Opacity > 0
	case EffectBurstLine:
		if e.Burst.Length < e.Burst.MaxLength {
			e.Burst.Length += e.Burst.Speed
		} else {
			e.Opacity -= e.Burst.Decay
		}
		return e.Opacity > 0
	default:
		return false
	}
}

func (e *Effect) render(dst render.Surface) {
	c := render.WithAlpha(e.Color, e.Opacity)
	switch e.Kind {
	case EffectRing:
		dst.StrokeCircle(e.X, e.Y, e.Ring.Radius, config.RingWidth, c)
	case EffectParticle:
		dst.FillCircle(e.X, e.Y, e.Spark.Size, c)
	case EffectBurstLine:
		endX := e.X + math.Cos(e.Burst.Angle)*e.Burst.Length
		endY := e.Y + math.Sin(e.Burst.Angle)*e.Burst.Length
		dst.StrokeLine(e.X, e.Y, endX, endY, e.Burst.Width, c)
	}
}

// ClickEffects spawns and retires the bursts that follow a click. An effect is
// either in the live list or in the pool, never both.
type ClickEffects struct {
	live []*Effect
	pool *pool.Pool[*Effect]
	rng  *rand.Rand
}

func NewClickEffects(rng *rand.Rand) *ClickEffects {
	return &ClickEffects{
		live: make([]*Effect, 0, config.MaxClickEffects),
		pool: pool.NewFilled(config.MaxClickEffects, func() *Effect { return &Effect{} }),
		rng:  rng,
	}
}

// Spawn emits a ring, the burst particles and the burst lines at (x, y) when
// the point lies inside bounds. It reports whether anything was spawned.
func (m *ClickEffects) Spawn(bounds render.Rect, x, y, hue float64) bool {
	if !bounds.Contains(x, y) {
		return false
	}

	ring := m.acquire(EffectRing, x, y)
	ring.Ring = RingState{Radius: 0, MaxRadius: config.RingMaxRadius}
	ring.Color = render.HSL(hue, 1, 0.5)

	for i := 0; i < config.BurstParticles; i++ {
		e := m.acquire(EffectParticle, x, y)
		angle := m.rng.Float64() * 2 * math.Pi
		speed := uniform(m.rng, config.BurstMinSpeed, config.BurstMaxSpeed)
		e.Spark = SparkState{
			SpeedX: math.Cos(angle) * speed,
			SpeedY: math.Sin(angle) * speed,
			Size:   uniform(m.rng, config.BurstMinSize, config.BurstMaxSize),
			Decay:  uniform(m.rng, config.BurstMinDecay, config.BurstMaxDecay),
		}
		e.Color = m.jittered(hue)
	}

	for i := 0; i < config.BurstLines; i++ {
		e := m.acquire(EffectBurstLine, x, y)
		e.Burst = BurstState{
			Angle:     float64(i) / config.BurstLines * 2 * math.Pi,
			MaxLength: uniform(m.rng, config.BurstMinLength, config.BurstMaxLength),
			Width:     uniform(m.rng, config.BurstLineMinWidth, config.BurstLineMaxWidth),
			Speed:     uniform(m.rng, config.BurstLineMinSpeed, config.BurstLineMaxSpeed),
			Decay:     uniform(m.rng, config.BurstLineMinDecay, config.BurstLineMaxDecay),
		}
		e.Color = m.jittered(hue)
	}

	return true
}

// Tick advances every live effect, newest first, and returns expired ones to
// the pool.
func (m *ClickEffects) Tick() {
	for i := len(m.live) - 1; i >= 0; i-- {
		e := m.live[i]
		if e.advance() {
			continue
		}
		m.live = append(m.live[:i], m.live[i+1:]...)
		m.pool.Release(e)
	}
	clear(m.live[len(m.live):cap(m.live)])
}

// Render draws every live effect. Effects are not clipped to the card.
func (m *ClickEffects) Render(dst render.Surface) {
	for _, e := range m.live {
		e.render(dst)
	}
}

// Live is the number of effects being animated.
func (m *ClickEffects) Live() int { return len(m.live) }

// Pooled is the number of idle effects waiting for reuse.
func (m *ClickEffects) Pooled() int { return m.pool.Len() }

// Count returns how many live effects are of kind k.
func (m *ClickEffects) Count(k EffectKind) int {
	n := 0
	for _, e := range m.live {
		if e.Kind == k {
			n++
		}
	}
	return n
}

func (m *ClickEffects) acquire(kind EffectKind, x, y float64) *Effect {
	e := m.pool.Acquire()
	e.Kind = kind
	e.X, e.Y = x, y
	e.Opacity = 1
	m.live = append(m.live, e)
	return e
}

func (m *ClickEffects) jittered(hue float64) color.NRGBA {
	return render.HSL(hue+uniform(m.rng, -config.HueJitter, config.HueJitter), 1, 0.6)
}
