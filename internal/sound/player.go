// Package sound synthesizes the short cues played when the card is clicked.
package sound

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/magic-card/internal/config"
)

// Cue names one of the built-in sounds.
type Cue string

const (
	CueBubbles Cue = "bubbles"
	CueCrystal Cue = "crystal"
	CuePortal  Cue = "portal"
)

// Cues lists every cue PlayRandom picks from.
var Cues = []Cue{CueBubbles, CueCrystal, CuePortal}

// ErrUnknownCue is returned by Build for names outside Cues.
var ErrUnknownCue = errors.New("unknown cue")

// Rate is the sample rate every cue is rendered at.
const Rate = beep.SampleRate(config.SampleRate)

// Build returns a fresh stream of the named cue at unit volume.
func Build(name Cue, rng *rand.Rand) (beep.Streamer, error) {
	switch name {
	case CuePortal:
		return Portal(Rate), nil
	case CueCrystal:
		return Crystal(Rate), nil
	case CueBubbles:
		return Bubbles(Rate, rng), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCue, name)
	}
}

// Sink takes finished cue streams and plays them without blocking.
type Sink interface {
	Play(s beep.Streamer)
}

// SpeakerSink mixes cues onto the system audio device.
type SpeakerSink struct {
	mixer *beep.Mixer
	meter *Meter
}

// NewSpeakerSink opens the audio device. Call it once per process.
func NewSpeakerSink() (*SpeakerSink, error) {
	if err := speaker.Init(Rate, Rate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}

	mixer := &beep.Mixer{}
	meter := NewMeter(mixer, config.MeterRingSize)
	speaker.Play(meter)
	return &SpeakerSink{mixer: mixer, meter: meter}, nil
}

func (s *SpeakerSink) Play(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Level reports how loud the device output has been recently.
func (s *SpeakerSink) Level() float64 { return s.meter.Level() }

// SilentSink drops every cue. It stands in when audio is muted or no device
// is available.
type SilentSink struct{}

func (SilentSink) Play(beep.Streamer) {}

func (SilentSink) Level() float64 { return 0 }

// Player builds cues and hands them to a sink at the configured volume.
// It is used from the game loop goroutine only.
type Player struct {
	sink   Sink
	volume func() float64
	rng    *rand.Rand
	log    zerolog.Logger
}

// NewPlayer plays through sink. volume is read on every cue so slider changes
// apply to the next click.
func NewPlayer(sink Sink, volume func() float64, rng *rand.Rand) *Player {
	return &Player{
		sink:   sink,
		volume: volume,
		rng:    rng,
		log:    log.With().Str("module", "sound").Logger(),
	}
}

// Play starts the named cue.
func (p *Player) Play(name Cue) error {
	s, err := Build(name, p.rng)
	if err != nil {
		return err
	}
	vol := p.volume()
	p.sink.Play(newVolume(s, vol))
	p.log.Debug().Str("cue", string(name)).Float64("volume", vol).Msg("Cue played")
	return nil
}

// PlayRandom starts a cue picked uniformly from Cues.
func (p *Player) PlayRandom() {
	name := Cues[p.rng.Intn(len(Cues))]
	if err := p.Play(name); err != nil {
		p.log.Warn().Err(err).Msg("Cue failed")
	}
}
