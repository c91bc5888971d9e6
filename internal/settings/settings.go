package settings

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Card holds the card geometry and the glow and sound tunables.
type Card struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	CornerRadius  float64 `yaml:"cornerRadius"`
	GlowIntensity float64 `yaml:"glowIntensity"`
	GlowMax       float64 `yaml:"glowMax"`
	SoundVolume   float64 `yaml:"soundVolume"`
}

// Particles configures the drifting background dots.
type Particles struct {
	Count      int     `yaml:"count"`
	MinSize    float64 `yaml:"minSize"`
	MaxSize    float64 `yaml:"maxSize"`
	MinSpeed   float64 `yaml:"minSpeed"`
	MaxSpeed   float64 `yaml:"maxSpeed"`
	MinOpacity float64 `yaml:"minOpacity"`
	MaxOpacity float64 `yaml:"maxOpacity"`
}

// Lines configures the undulating background polylines.
type Lines struct {
	Count      int     `yaml:"count"`
	MinWidth   float64 `yaml:"minWidth"`
	MaxWidth   float64 `yaml:"maxWidth"`
	MinSpeed   float64 `yaml:"minSpeed"`
	MaxSpeed   float64 `yaml:"maxSpeed"`
	MinOpacity float64 `yaml:"minOpacity"`
	MaxOpacity float64 `yaml:"maxOpacity"`
	WaveHeight float64 `yaml:"waveHeight"`
	NumPoints  int     `yaml:"numPoints"`
}

// Settings is the full set of tunables. The zero value is not usable; start
// from Default.
type Settings struct {
	Card      Card      `yaml:"card"`
	Particles Particles `yaml:"particles"`
	Lines     Lines     `yaml:"lines"`
}

// Default returns the stock look of the card.
func Default() Settings {
	return Settings{
		Card: Card{
			Width:         280,
			Height:        410,
			CornerRadius:  15,
			GlowIntensity: 15,
			GlowMax:       25,
			SoundVolume:   1,
		},
		Particles: Particles{
			Count:      100,
			MinSize:    1,
			MaxSize:    4,
			MinSpeed:   0.25,
			MaxSpeed:   0.5,
			MinOpacity: 0.1,
			MaxOpacity: 0.6,
		},
		Lines: Lines{
			Count:      15,
			MinWidth:   0.5,
			MaxWidth:   2,
			MinSpeed:   0.01,
			MaxSpeed:   0.03,
			MinOpacity: 0.05,
			MaxOpacity: 0.2,
			WaveHeight: 10,
			NumPoints:  5,
		},
	}
}

// Load reads a YAML file and overlays it onto Default. Keys missing from the
// file keep their default values.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML settings onto Default and validates the result.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// Validate checks settings that come from a file. Values set through the panel
// are not validated.
func (s Settings) Validate() error {
	var errs []error

	if s.Card.Width <= 0 || s.Card.Height <= 0 {
		errs = append(errs, fmt.Errorf("card size must be positive, got %gx%g", s.Card.Width, s.Card.Height))
	}
	if s.Card.CornerRadius < 0 || s.Card.CornerRadius*2 > min(s.Card.Width, s.Card.Height) {
		errs = append(errs, fmt.Errorf("corner radius %g does not fit the card", s.Card.CornerRadius))
	}
	if s.Card.SoundVolume < 0 || s.Card.SoundVolume > 1 {
		errs = append(errs, fmt.Errorf("sound volume %g outside [0,1]", s.Card.SoundVolume))
	}
	if s.Particles.Count < 0 {
		errs = append(errs, fmt.Errorf("particle count %d is negative", s.Particles.Count))
	}
	if s.Lines.Count < 0 {
		errs = append(errs, fmt.Errorf("line count %d is negative", s.Lines.Count))
	}
	if s.Lines.NumPoints < 2 {
		errs = append(errs, fmt.Errorf("lines need at least 2 points, got %d", s.Lines.NumPoints))
	}

	ranges := []struct {
		name     string
		min, max float64
	}{
		{"particles.size", s.Particles.MinSize, s.Particles.MaxSize},
		{"particles.speed", s.Particles.MinSpeed, s.Particles.MaxSpeed},
		{"particles.opacity", s.Particles.MinOpacity, s.Particles.MaxOpacity},
		{"lines.width", s.Lines.MinWidth, s.Lines.MaxWidth},
		{"lines.speed", s.Lines.MinSpeed, s.Lines.MaxSpeed},
		{"lines.opacity", s.Lines.MinOpacity, s.Lines.MaxOpacity},
	}
	for _, r := range ranges {
		if r.min > r.max {
			errs = append(errs, fmt.Errorf("%s: min %g > max %g", r.name, r.min, r.max))
		}
	}

	return errors.Join(errs...)
}
