package sound

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/faiface/beep"
)

// drain streams s to exhaustion and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream never drained")
	return nil
}

func peak(samples [][2]float64) float64 {
	p := 0.0
	for _, s := range samples {
		p = math.Max(p, math.Max(math.Abs(s[0]), math.Abs(s[1])))
	}
	return p
}

func TestToneLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, w := range []Wave{WaveSine, WaveSaw} {
		s := NewTone(w, 100*time.Millisecond, rate, Constant(440), Constant(1))
		samples := drain(t, s)

		if len(samples) != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: got %d samples, want %d", w, len(samples), rate.N(100*time.Millisecond))
		}
		if p := peak(samples); p > 1 {
			t.Errorf("wave %d: peak %f out of range", w, p)
		}
		if s.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", w, s.Err())
		}
	}
}

func TestToneStaysDrained(t *testing.T) {
	s := NewTone(WaveSine, time.Millisecond, Rate, Constant(440), Constant(1))
	drain(t, s)

	n, ok := s.Stream(make([][2]float64, 16))
	if n != 0 || ok {
		t.Errorf("drained tone streamed n=%d ok=%v", n, ok)
	}
}

func TestExpRampEndpoints(t *testing.T) {
	c := ExpRamp(0.1, 0.0001, 1.2)

	if got := c(0); math.Abs(got-0.1) > 1e-12 {
		t.Errorf("start: got %v, want 0.1", got)
	}
	if got := c(0.6); math.Abs(got-math.Sqrt(0.1*0.0001)) > 1e-12 {
		t.Errorf("midpoint: got %v, want geometric mean", got)
	}
	if got := c(5); got != 0.0001 {
		t.Errorf("after end: got %v, want 0.0001", got)
	}
}

func TestPortalFadesFromTenthGain(t *testing.T) {
	samples := drain(t, Portal(Rate))

	if len(samples) != Rate.N(portalDuration) {
		t.Fatalf("got %d samples, want %d", len(samples), Rate.N(portalDuration))
	}
	if p := peak(samples); p > portalGain+1e-9 {
		t.Errorf("peak %f above gain %f", p, portalGain)
	}

	tail := samples[len(samples)-Rate.N(50*time.Millisecond):]
	if p := peak(tail); p > 0.001 {
		t.Errorf("tail peak %f, want a near-silent fade", p)
	}
}

func TestCrystalSpansAllNotes(t *testing.T) {
	samples := drain(t, Crystal(Rate))

	want := Rate.N(4*crystalSpacing) + Rate.N(crystalDuration)
	if len(samples) != want {
		t.Errorf("got %d samples, want %d", len(samples), want)
	}
	if p := peak(samples); p > float64(len(crystalNotes))*crystalGain {
		t.Errorf("peak %f above summed gain", p)
	}

	head := samples[:Rate.N(crystalSpacing)-1]
	if p := peak(head); p == 0 {
		t.Error("first note silent")
	}
}

func TestBubblesTiming(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	samples := drain(t, Bubbles(Rate, rng))

	last := time.Duration(bubbleCount-1) * bubbleSpacing
	lo := Rate.N(last) + Rate.N(bubbleDuration)
	hi := Rate.N(last+bubbleJitter) + Rate.N(bubbleDuration)
	if len(samples) < lo || len(samples) > hi {
		t.Errorf("got %d samples, want between %d and %d", len(samples), lo, hi)
	}
	if p := peak(samples); p > bubbleCount*bubblePeak {
		t.Errorf("peak %f too loud", p)
	}
}

func TestBubbleGainShape(t *testing.T) {
	if bubbleGain(0) != 0 {
		t.Errorf("start: got %v, want 0", bubbleGain(0))
	}
	if got := bubbleGain(bubbleAttack); math.Abs(got-bubblePeak) > 1e-12 {
		t.Errorf("peak: got %v, want %v", got, bubblePeak)
	}
	if got := bubbleGain(bubbleDuration.Seconds()); math.Abs(got-silenceFloor) > 1e-12 {
		t.Errorf("end: got %v, want %v", got, silenceFloor)
	}
}

func TestNewVolumeScales(t *testing.T) {
	tests := []struct {
		vol  float64
		want float64
	}{
		{1, 0.5},
		{0.5, 0.25},
		{0, 0},
		{-1, 0},
	}

	for _, tt := range tests {
		src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
			for i := range samples {
				samples[i] = [2]float64{0.5, 0.5}
			}
			return len(samples), true
		})
		buf := make([][2]float64, 8)
		newVolume(src, tt.vol).Stream(buf)
		if math.Abs(buf[0][0]-tt.want) > 1e-12 {
			t.Errorf("volume %v: got %v, want %v", tt.vol, buf[0][0], tt.want)
		}
	}
}
