package main

import (
	"errors"
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/magic-card/internal/config"
	"github.com/iburimskiy/magic-card/internal/engine"
	"github.com/iburimskiy/magic-card/internal/game"
	"github.com/iburimskiy/magic-card/internal/panel"
	"github.com/iburimskiy/magic-card/internal/render"
	"github.com/iburimskiy/magic-card/internal/settings"
	"github.com/iburimskiy/magic-card/internal/sound"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML settings file to start from")
		seed       = flag.Int64("seed", 0, "random seed, 0 for time based")
		logLevel   = flag.String("log-level", "info", "trace, debug, info, warn or error")
		mute       = flag.Bool("mute", false, "disable sound cues")
		width      = flag.Int("width", config.WindowWidth, "initial window width")
		height     = flag.Int("height", config.WindowHeight, "initial window height")
		exportDir  = flag.String("export-cues", "", "write every cue as WAV into this directory and exit")
	)
	flag.Parse()

	initLogger(*logLevel)

	s := settings.Default()
	if *configPath != "" {
		loaded, err := settings.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load settings")
		}
		s = loaded
		log.Info().Str("path", *configPath).Msg("Settings loaded")
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	log.Debug().Int64("seed", *seed).Msg("Random source ready")

	if *exportDir != "" {
		paths, err := sound.Export(*exportDir, s.Card.SoundVolume, rng)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to export cues")
		}
		log.Info().Strs("files", paths).Msg("Cues exported")
		return
	}

	store := settings.NewStore(s, rng)

	sink, level := openAudio(*mute)
	cues := sound.NewPlayer(sink, func() float64 { return store.Current().Card.SoundVolume }, rng)

	screen, err := render.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare screen")
	}

	animator := engine.NewAnimator(store, cues, rng)
	controls := panel.New(store, panel.WithLevel(level))
	g := game.New(animator, controls, screen, game.EbitenInput)

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("Game loop failed")
	}
	log.Info().Msg("Bye")
}

func initLogger(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Str("level", level).Msg("Unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// openAudio picks the speaker when it is available and not muted.
func openAudio(mute bool) (sound.Sink, panel.Level) {
	if mute {
		log.Info().Msg("Sound muted")
		return sound.SilentSink{}, sound.SilentSink{}
	}
	sink, err := sound.NewSpeakerSink()
	if err != nil {
		log.Warn().Err(err).Msg("Audio unavailable, cues are silent")
		return sound.SilentSink{}, sound.SilentSink{}
	}
	return sink, sink
}
