package panel

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/magic-card/internal/settings"
)

// Picker asks the user for a preset file. It blocks until they answer and
// returns zenity.ErrCanceled when they back out.
type Picker func() (string, error)

// ZenityPicker opens the native file chooser filtered to YAML presets.
func ZenityPicker() (string, error) {
	return zenity.SelectFile(
		zenity.Title("Load Preset"),
		zenity.FileFilters{{
			Name:     "Presets",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
}

type presetResult struct {
	path     string
	settings settings.Settings
	err      error
	canceled bool
}

// loadPreset runs the picker and the file load off the game loop. The result
// comes back through p.results and is applied by collectPreset.
func (p *Panel) loadPreset() {
	if p.loading {
		return
	}
	p.loading = true
	p.status = "Choosing preset..."

	go func() {
		path, err := p.pick()
		if err != nil {
			if errors.Is(err, zenity.ErrCanceled) {
				p.results <- presetResult{canceled: true}
				return
			}
			p.results <- presetResult{err: fmt.Errorf("failed to choose preset: %w", err)}
			return
		}

		s, err := settings.Load(path)
		p.results <- presetResult{path: path, settings: s, err: err}
	}()
}

// collectPreset applies a finished load, if any, without blocking.
func (p *Panel) collectPreset() {
	select {
	case r := <-p.results:
		p.loading = false
		switch {
		case r.canceled:
			p.status = ""
		case r.err != nil:
			p.status = "Preset rejected"
			p.log.Warn().Err(r.err).Msg("Failed to load preset")
		default:
			p.store.Replace(r.settings)
			p.status = "Loaded " + filepath.Base(r.path)
			p.log.Info().Str("path", r.path).Msg("Preset loaded")
		}
	default:
	}
}
