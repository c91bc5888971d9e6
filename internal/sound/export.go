package sound

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

// Export renders every cue at volume into dir as 16-bit stereo WAV files and
// returns the paths written.
func Export(dir string, volume float64, rng *rand.Rand) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	format := beep.Format{SampleRate: Rate, NumChannels: 2, Precision: 2}
	paths := make([]string, 0, len(Cues))
	for _, name := range Cues {
		s, err := Build(name, rng)
		if err != nil {
			return paths, err
		}

		path := filepath.Join(dir, string(name)+".wav")
		if err := writeWAV(path, newVolume(s, volume), format); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeWAV(path string, s beep.Streamer, format beep.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := wav.Encode(f, s, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
