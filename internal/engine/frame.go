// Package engine advances and draws the animated card: background particles and
// lines, click bursts, hover glow and the click shake.
package engine

import (
	"math/rand"

	"github.com/iburimskiy/magic-card/internal/render"
)

// Bounds is a width and height in card-local space.
type Bounds struct {
	W, H float64
}

// FrameState is the per-tick animation state shared by every component.
type FrameState struct {
	// Time is the phase clock; it advances a fixed step per tick.
	Time float64
	// Hue is the active hue in degrees, resolved from hover each tick.
	Hue float64
	// Glow is the halo size before the shake boost.
	Glow float64

	Hovering bool
	Pointer  render.Point
	Viewport Bounds
}

// Command is an input notification queued between ticks and applied at the
// start of the next one.
type Command interface {
	isCommand()
}

// PointerMove reports the cursor position in surface pixels.
type PointerMove struct {
	X, Y float64
}

// PointerLeave reports that the cursor left the surface.
type PointerLeave struct{}

// Click reports a primary button click in surface pixels.
type Click struct {
	X, Y float64
}

func (PointerMove) isCommand()  {}
func (PointerLeave) isCommand() {}
func (Click) isCommand()        {}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
