package config

const (
	WindowWidth  = 1280
	WindowHeight = 800
	WindowTitle  = "Magic Card - move to steer the glow, click the card, Esc/Q: Quit"

	// Click effect pool
	MaxClickEffects = 50

	// Frame timing (per tick, not per second)
	PhaseStep     = 0.02
	EmblemSpin    = 0.4
	IdleHue       = 140.0
	IdlePulse     = 5.0
	HoverFalloff  = 10.0
	ShakeGlowGain = 1.5

	// Card shake
	ShakeAmplitude = 5.0
	ShakeClockStep = 0.1
	ShakeDecay     = 0.9
	ShakeClockMax  = 2.0
	ShakeFloor     = 0.1
	ShakeFreqX     = 10.0
	ShakeFreqY     = 8.0

	// Background lines
	LinePhaseStep = 0.5
	LineJitter    = 15.0

	// Ring effect
	RingMaxRadius = 80.0
	RingGrowth    = 2.0
	RingFade      = 0.02
	RingWidth     = 2.0

	// Burst particles
	BurstParticles = 20
	BurstMinSpeed  = 2.0
	BurstMaxSpeed  = 6.0
	BurstMinSize   = 2.0
	BurstMaxSize   = 8.0
	BurstMinDecay  = 0.02
	BurstMaxDecay  = 0.06
	BurstDrag      = 0.95
	HueJitter      = 15.0

	// Burst lines
	BurstLines        = 8
	BurstMinLength    = 30.0
	BurstMaxLength    = 80.0
	BurstLineMinSpeed = 3.0
	BurstLineMaxSpeed = 8.0
	BurstLineMinDecay = 0.02
	BurstLineMaxDecay = 0.07
	BurstLineMinWidth = 1.0
	BurstLineMaxWidth = 3.0

	// Card chrome
	NoiseSpecks    = 100
	NoiseMaxSize   = 0.8
	NoiseMaxAlpha  = 0.04
	EmblemRadius   = 70.0
	EmblemCore     = 40.0
	BorderWidth    = 2.0
	TitleOffset    = 50.0
	FooterOffset   = 20.0
	CaptionOffset  = 100.0
	CaptionSpacing = 25.0

	// Settings panel
	PanelWidth        = 260
	PanelMargin       = 16
	PanelPadding      = 14
	PanelGap          = 8
	PanelRowHeight    = 34
	PanelHeaderHeight = 28
	PanelScrollStep   = 24
	ToggleWidth       = 130
	ToggleHeight      = 32
	ButtonHeight      = 30

	// Audio
	SampleRate     = 44100
	MeterRingSize  = 8192
	MeterWindow    = 2048
	MeterSmoothing = 0.6
)
