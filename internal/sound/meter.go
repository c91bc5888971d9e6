package sound

import (
	"math"
	"sync"

	"github.com/faiface/beep"

	"github.com/iburimskiy/magic-card/internal/config"
)

// Meter wraps a beep.Streamer and keeps the last samples it played in a ring
// buffer so the UI can show how loud the cues are. Stream runs on the speaker
// goroutine; Level runs on the game loop.
type Meter struct {
	Source beep.Streamer

	mu     sync.RWMutex
	buffer [][2]float64
	next   int

	level float64
}

func NewMeter(src beep.Streamer, ringSize int) *Meter {
	return &Meter{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (m *Meter) Stream(samples [][2]float64) (int, bool) {
	n, ok := m.Source.Stream(samples)
	if n > 0 {
		m.mu.Lock()
		for i := 0; i < n; i++ {
			m.buffer[m.next] = samples[i]
			m.next++
			if m.next >= len(m.buffer) {
				m.next = 0
			}
		}
		m.mu.Unlock()
	}
	return n, ok
}

func (m *Meter) Err() error { return m.Source.Err() }

// Snapshot returns up to the last n samples, oldest first.
func (m *Meter) Snapshot(n int) [][2]float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if n > len(m.buffer) {
		n = len(m.buffer)
	}
	out := make([][2]float64, n)
	idx := m.next - n
	if idx < 0 {
		idx += len(m.buffer)
	}
	for i := range out {
		out[i] = m.buffer[idx]
		idx++
		if idx >= len(m.buffer) {
			idx = 0
		}
	}
	return out
}

// Level is the compressed RMS of the recent window, smoothed against the
// previous call. It stays in [0, 1] for samples in [-1, 1].
func (m *Meter) Level() float64 {
	samples := m.Snapshot(config.MeterWindow)
	if len(samples) == 0 {
		return m.level
	}

	var sumSquares float64
	for _, s := range samples {
		mono := (s[0] + s[1]) * 0.5
		sumSquares += mono * mono
	}
	rms := math.Sqrt(sumSquares / float64(len(samples)))
	mag := math.Min(1, math.Pow(rms, 0.3))

	m.level = config.MeterSmoothing*m.level + (1-config.MeterSmoothing)*mag
	return m.level
}
