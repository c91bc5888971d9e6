package settings

import (
	"math"
	"math/rand"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Change is a bit set describing which group of settings was written.
type Change uint8

const (
	ChangeCardSize Change = 1 << iota
	ChangeGlow
	ChangeSound
	ChangeParticles
	ChangeLines
	ChangeWave

	ChangeAll = ChangeCardSize | ChangeGlow | ChangeSound | ChangeParticles | ChangeLines | ChangeWave
)

// Has reports whether any bit of other is set in c.
func (c Change) Has(other Change) bool { return c&other != 0 }

// Control binds one ranged slider to one settings field.
type Control struct {
	ID      string
	Label   string
	Section string
	Min     float64
	Max     float64
	Change  Change

	get func(*Settings) float64
	set func(*Settings, float64)
}

// Step is the slider granularity, a hundredth of the range.
func (c Control) Step() float64 { return (c.Max - c.Min) / 100 }

// Section names in panel order.
const (
	SectionCard      = "Card Size"
	SectionSound     = "Sound SFX"
	SectionGlow      = "Glow Controls"
	SectionParticles = "Particle Controls"
	SectionLines     = "Line Controls"
)

var controls = []Control{
	{ID: "card-width", Label: "Width", Section: SectionCard, Min: 200, Max: 800, Change: ChangeCardSize,
		get: func(s *Settings) float64 { return s.Card.Width },
		set: func(s *Settings, v float64) { s.Card.Width = v }},
	{ID: "card-height", Label: "Height", Section: SectionCard, Min: 400, Max: 800, Change: ChangeCardSize,
		get: func(s *Settings) float64 { return s.Card.Height },
		set: func(s *Settings, v float64) { s.Card.Height = v }},

	{ID: "sound-volume", Label: "Volume", Section: SectionSound, Min: 0, Max: 1, Change: ChangeSound,
		get: func(s *Settings) float64 { return s.Card.SoundVolume },
		set: func(s *Settings, v float64) { s.Card.SoundVolume = v }},

	{ID: "glow-intensity", Label: "Intensity", Section: SectionGlow, Min: 0, Max: 30, Change: ChangeGlow,
		get: func(s *Settings) float64 { return s.Card.GlowIntensity },
		set: func(s *Settings, v float64) { s.Card.GlowIntensity = v }},
	{ID: "glow-max", Label: "Max", Section: SectionGlow, Min: 10, Max: 50, Change: ChangeGlow,
		get: func(s *Settings) float64 { return s.Card.GlowMax },
		set: func(s *Settings, v float64) { s.Card.GlowMax = v }},

	{ID: "particle-count", Label: "Count", Section: SectionParticles, Min: 0, Max: 500, Change: ChangeParticles,
		get: func(s *Settings) float64 { return float64(s.Particles.Count) },
		set: func(s *Settings, v float64) { s.Particles.Count = int(math.Round(v)) }},
	{ID: "particle-min-size", Label: "Min Size", Section: SectionParticles, Min: 0.1, Max: 5, Change: ChangeParticles,
		get: func(s *Settings) float64 { return s.Particles.MinSize },
		set: func(s *Settings, v float64) { s.Particles.MinSize = v }},
	{ID: "particle-max-size", Label: "Max Size", Section: SectionParticles, Min: 0.1, Max: 5, Change: ChangeParticles,
		get: func(s *Settings) float64 { return s.Particles.MaxSize },
		set: func(s *Settings, v float64) { s.Particles.MaxSize = v }},
	{ID: "particle-min-speed", Label: "Min Speed", Section: SectionParticles, Min: 0, Max: 1, Change: ChangeParticles,
		get: func(s *Settings) float64 { return s.Particles.MinSpeed },
		set: func(s *Settings, v float64) { s.Particles.MinSpeed = v }},
	{ID: "particle-max-speed", Label: "Max Speed", Section: SectionParticles, Min: 0, Max: 1, Change: ChangeParticles,
		get: func(s *Settings) float64 { return s.Particles.MaxSpeed },
		set: func(s *Settings, v float64) { s.Particles.MaxSpeed = v }},
	{ID: "particle-min-opacity", Label: "Min Opacity", Section: SectionParticles, Min: 0, Max: 1, Change: ChangeParticles,
		get: func(s *Settings) float64 { return s.Particles.MinOpacity },
		set: func(s *Settings, v float64) { s.Particles.MinOpacity = v }},
	{ID: "particle-max-opacity", Label: "Max Opacity", Section: SectionParticles, Min: 0, Max: 1, Change: ChangeParticles,
		get: func(s *Settings) float64 { return s.Particles.MaxOpacity },
		set: func(s *Settings, v float64) { s.Particles.MaxOpacity = v }},

	{ID: "line-count", Label: "Count", Section: SectionLines, Min: 0, Max: 50, Change: ChangeLines,
		get: func(s *Settings) float64 { return float64(s.Lines.Count) },
		set: func(s *Settings, v float64) { s.Lines.Count = int(math.Round(v)) }},
	{ID: "line-min-width", Label: "Min Width", Section: SectionLines, Min: 0.1, Max: 5, Change: ChangeLines,
		get: func(s *Settings) float64 { return s.Lines.MinWidth },
		set: func(s *Settings, v float64) { s.Lines.MinWidth = v }},
	{ID: "line-max-width", Label: "Max Width", Section: SectionLines, Min: 0.1, Max: 3, Change: ChangeLines,
		get: func(s *Settings) float64 { return s.Lines.MaxWidth },
		set: func(s *Settings, v float64) { s.Lines.MaxWidth = v }},
	{ID: "line-min-speed", Label: "Min Speed", Section: SectionLines, Min: 0, Max: 0.1, Change: ChangeLines,
		get: func(s *Settings) float64 { return s.Lines.MinSpeed },
		set: func(s *Settings, v float64) { s.Lines.MinSpeed = v }},
	{ID: "line-max-speed", Label: "Max Speed", Section: SectionLines, Min: 0, Max: 0.1, Change: ChangeLines,
		get: func(s *Settings) float64 { return s.Lines.MaxSpeed },
		set: func(s *Settings, v float64) { s.Lines.MaxSpeed = v }},
	{ID: "line-min-opacity", Label: "Min Opacity", Section: SectionLines, Min: 0, Max: 0.5, Change: ChangeLines,
		get: func(s *Settings) float64 { return s.Lines.MinOpacity },
		set: func(s *Settings, v float64) { s.Lines.MinOpacity = v }},
	{ID: "line-max-opacity", Label: "Max Opacity", Section: SectionLines, Min: 0, Max: 0.5, Change: ChangeLines,
		get: func(s *Settings) float64 { return s.Lines.MaxOpacity },
		set: func(s *Settings, v float64) { s.Lines.MaxOpacity = v }},
	{ID: "line-wave-height", Label: "Wave Height", Section: SectionLines, Min: 1, Max: 30, Change: ChangeWave,
		get: func(s *Settings) float64 { return s.Lines.WaveHeight },
		set: func(s *Settings, v float64) { s.Lines.WaveHeight = v }},
}

// Store owns the live settings and tells subscribers which group changed.
// Like the rest of the frame loop it is confined to one goroutine.
type Store struct {
	current   Settings
	rng       *rand.Rand
	listeners []func(Change)
	log       zerolog.Logger
}

// NewStore wraps initial settings. rng drives Randomize.
func NewStore(initial Settings, rng *rand.Rand) *Store {
	return &Store{
		current: initial,
		rng:     rng,
		log:     log.With().Str("module", "settings").Logger(),
	}
}

// Current returns a copy of the live settings.
func (st *Store) Current() Settings { return st.current }

// Controls lists every slider binding in panel order.
func (st *Store) Controls() []Control { return controls }

// OnChange registers fn to run synchronously after each write.
func (st *Store) OnChange(fn func(Change)) {
	st.listeners = append(st.listeners, fn)
}

// Value reads the field bound to control id.
func (st *Store) Value(id string) (float64, bool) {
	c, ok := lookup(id)
	if !ok {
		return 0, false
	}
	return c.get(&st.current), true
}

// Set writes v, clamped to the control's range, into the field bound to id.
// Unknown ids are ignored.
func (st *Store) Set(id string, v float64) bool {
	c, ok := lookup(id)
	if !ok {
		return false
	}
	v = math.Max(c.Min, math.Min(c.Max, v))
	if c.get(&st.current) == v {
		return true
	}
	c.set(&st.current, v)
	st.notify(c.Change)
	return true
}

// Replace swaps in a whole preset.
func (st *Store) Replace(s Settings) {
	st.current = s
	st.log.Info().
		Int("particles", s.Particles.Count).
		Int("lines", s.Lines.Count).
		Msg("Settings replaced")
	st.notify(ChangeAll)
}

// Randomize resamples every tunable except the card size. Each max is pulled
// up to its min when the draw lands below it.
func (st *Store) Randomize() {
	s := &st.current
	r := st.rng

	s.Card.GlowIntensity = r.Float64() * 30
	s.Card.GlowMax = r.Float64()*40 + 10

	p := &s.Particles
	p.Count = int(math.Floor(r.Float64() * 250))
	p.MinSize = r.Float64()*4.9 + 0.1
	p.MaxSize = atLeast(r.Float64()*4.9+0.1, p.MinSize)
	p.MinSpeed = r.Float64()
	p.MaxSpeed = atLeast(r.Float64(), p.MinSpeed)
	p.MinOpacity = r.Float64() * 0.5
	p.MaxOpacity = atLeast(r.Float64()*0.5+0.5, p.MinOpacity)

	l := &s.Lines
	l.Count = int(math.Floor(r.Float64() * 25))
	l.MinWidth = r.Float64()*2.9 + 0.1
	l.MaxWidth = atLeast(r.Float64()*2.9+0.1, l.MinWidth)
	l.MinSpeed = r.Float64() * 0.1
	l.MaxSpeed = atLeast(r.Float64()*0.1, l.MinSpeed)
	l.MinOpacity = r.Float64() * 0.3
	l.MaxOpacity = atLeast(r.Float64()*0.2+0.3, l.MinOpacity)
	l.WaveHeight = r.Float64()*29 + 1

	st.log.Debug().
		Int("particles", p.Count).
		Int("lines", l.Count).
		Msg("Settings randomized")
	st.notify(ChangeGlow | ChangeParticles | ChangeLines | ChangeWave)
}

func (st *Store) notify(c Change) {
	for _, fn := range st.listeners {
		fn(c)
	}
}

func lookup(id string) (Control, bool) {
	for _, c := range controls {
		if c.ID == id {
			return c, true
		}
	}
	return Control{}, false
}

func atLeast(v, floor float64) float64 {
	if v < floor {
		return floor
	}
	return v
}
