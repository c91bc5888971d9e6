package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
)

// Wave selects the oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSaw
)

func (w Wave) at(phase float64) float64 {
	switch w {
	case WaveSaw:
		p := phase + 0.5
		return 2*(p-math.Floor(p)) - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Curve gives a value at t seconds from the start of a tone.
type Curve func(t float64) float64

// Constant holds v forever.
func Constant(v float64) Curve {
	return func(float64) float64 { return v }
}

// ExpRamp moves geometrically from v0 to v1 over d seconds, then holds v1.
// Both ends must be non-zero and share a sign.
func ExpRamp(v0, v1, d float64) Curve {
	return func(t float64) float64 {
		if t >= d {
			return v1
		}
		return v0 * math.Pow(v1/v0, t/d)
	}
}

// tone is a single oscillator whose pitch and gain follow curves.
type tone struct {
	wave  Wave
	freq  Curve
	gain  Curve
	rate  beep.SampleRate
	phase float64
	pos   int
	total int
}

// NewTone streams d worth of one oscillator and then drains.
func NewTone(wave Wave, d time.Duration, rate beep.SampleRate, freq, gain Curve) beep.Streamer {
	return &tone{
		wave:  wave,
		freq:  freq,
		gain:  gain,
		rate:  rate,
		total: rate.N(d),
	}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if o.pos >= o.total {
		return 0, false
	}
	for i := range samples {
		if o.pos >= o.total {
			break
		}
		t := float64(o.pos) / float64(o.rate)
		v := o.wave.at(o.phase) * o.gain(t)
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq(t) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
		n++
	}
	return n, true
}

func (o *tone) Err() error { return nil }

// delayed prefixes s with d of silence.
func delayed(d time.Duration, rate beep.SampleRate, s beep.Streamer) beep.Streamer {
	return beep.Seq(beep.Silence(rate.N(d)), s)
}

// newVolume scales s linearly. Zero or less is silent since log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

const (
	portalDuration = 1200 * time.Millisecond
	portalBase     = 400.0
	portalLFO      = 10.0
	portalDepth    = 100.0
	portalGain     = 0.1

	crystalDuration = 800 * time.Millisecond
	crystalSpacing  = 100 * time.Millisecond
	crystalGain     = 0.1

	bubbleCount    = 5
	bubbleDuration = 120 * time.Millisecond
	bubbleSpacing  = 80 * time.Millisecond
	bubbleJitter   = 40 * time.Millisecond
	bubbleMinFreq  = 300.0
	bubbleFreqSpan = 500.0
	bubbleRise     = 2.2
	bubbleRiseTime = 0.06
	bubbleAttack   = 0.01
	bubblePeak     = 0.15

	silenceFloor = 0.0001
)

var crystalNotes = [...]float64{1200, 1400, 1600, 1800, 2000}

// Portal is a wobbling sawtooth that fades over a little over a second.
func Portal(rate beep.SampleRate) beep.Streamer {
	wobble := func(t float64) float64 {
		return portalBase + portalDepth*math.Sin(2*math.Pi*portalLFO*t)
	}
	fade := ExpRamp(portalGain, silenceFloor, portalDuration.Seconds())
	return NewTone(WaveSaw, portalDuration, rate, wobble, fade)
}

// Crystal is a rising run of five bell-like sine tones.
func Crystal(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(crystalNotes))
	for i, f := range crystalNotes {
		fade := ExpRamp(crystalGain, silenceFloor, crystalDuration.Seconds())
		t := NewTone(WaveSine, crystalDuration, rate, Constant(f), fade)
		notes = append(notes, delayed(time.Duration(i)*crystalSpacing, rate, t))
	}
	return beep.Mix(notes...)
}

// Bubbles is five short upward chirps at slightly irregular intervals.
func Bubbles(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	pops := make([]beep.Streamer, 0, bubbleCount)
	for i := 0; i < bubbleCount; i++ {
		start := time.Duration(i)*bubbleSpacing + time.Duration(rng.Float64()*float64(bubbleJitter))
		base := bubbleMinFreq + rng.Float64()*bubbleFreqSpan

		chirp := ExpRamp(base, base*bubbleRise, bubbleRiseTime)
		t := NewTone(WaveSine, bubbleDuration, rate, chirp, bubbleGain)
		pops = append(pops, delayed(start, rate, t))
	}
	return beep.Mix(pops...)
}

// bubbleGain rises linearly to the peak, then falls away geometrically.
func bubbleGain(t float64) float64 {
	if t < bubbleAttack {
		return bubblePeak * t / bubbleAttack
	}
	span := bubbleDuration.Seconds() - bubbleAttack
	return ExpRamp(bubblePeak, silenceFloor, span)(t - bubbleAttack)
}
