package config

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings are the editor-wide knobs. Zero values are replaced by the
// defaults below when loading.
type Settings struct {
	// MinScale is the per-axis scale magnitude floor for relative scaling.
	MinScale float64 `yaml:"min_scale"`
	// SnapPrecision is the number of decimal places snap scaling rounds to.
	SnapPrecision int `yaml:"snap_precision"`
	// HistoryLimit caps the undo stack depth.
	HistoryLimit int `yaml:"history_limit"`
	// Listen is the web server bind address.
	Listen string `yaml:"listen"`
}

func Default() Settings {
	return Settings{
		MinScale:      0.01,
		SnapPrecision: 2,
		HistoryLimit:  100,
		Listen:        ":8000",
	}
}

var current = Default()

func Get() Settings { return current }

func Set(s Settings) { current = s }

// Load reads a YAML settings file on top of the defaults.
func Load(path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "Cannot read settings file %q", path)
	}

	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return errors.Wrapf(err, "Failed to parse settings file %q", path)
	}
	if s.MinScale <= 0 {
		return errors.Errorf("min_scale must be positive, got %v", s.MinScale)
	}

	current = s
	return nil
}
