package engine

import (
	"math/rand"

	"github.com/iburimskiy/magic-card/internal/render"
	"github.com/iburimskiy/magic-card/internal/settings"
)

// Particle is a drifting dot in card-local space. Size and opacity are fixed
// for its lifetime.
type Particle struct {
	X, Y           float64
	SpeedX, SpeedY float64
	Size           float64
	Opacity        float64
}

// ParticleField owns the background dots.
type ParticleField struct {
	particles []Particle
	rng       *rand.Rand
}

func NewParticleField(rng *rand.Rand) *ParticleField {
	return &ParticleField{rng: rng}
}

// Regenerate replaces every particle with s.Count fresh ones scattered over b.
// Velocity is drawn from [-MaxSpeed, MaxSpeed] per axis; MinSpeed plays no part.
func (f *ParticleField) Regenerate(s settings.Particles, b Bounds) {
	f.particles = f.particles[:0]
	for i := 0; i < s.Count; i++ {
		f.particles = append(f.particles, Particle{
			X:       f.rng.Float64() * b.W,
			Y:       f.rng.Float64() * b.H,
			Size:    uniform(f.rng, s.MinSize, s.MaxSize),
			SpeedX:  uniform(f.rng, -s.MaxSpeed, s.MaxSpeed),
			SpeedY:  uniform(f.rng, -s.MaxSpeed, s.MaxSpeed),
			Opacity: uniform(f.rng, s.MinOpacity, s.MaxOpacity),
		})
	}
}

// Tick moves every particle and teleports any that left b to the opposite
// edge. Leaving past the far edge lands exactly on 0.
func (f *ParticleField) Tick(b Bounds) {
	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.SpeedX
		p.Y += p.SpeedY

		if p.X < 0 {
			p.X = b.W
		}
		if p.X > b.W {
			p.X = 0
		}
		if p.Y < 0 {
			p.Y = b.H
		}
		if p.Y > b.H {
			p.Y = 0
		}
	}
}

// Render draws the particles offset by origin.
func (f *ParticleField) Render(dst render.Surface, origin render.Point) {
	for _, p := range f.particles {
		dst.FillCircle(origin.X+p.X, origin.Y+p.Y, p.Size, render.RGBA(255, 255, 255, p.Opacity))
	}
}

func (f *ParticleField) Len() int { return len(f.particles) }
