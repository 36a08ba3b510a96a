package coaching

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// Thresholds define when a metric counts as weak (surfaced for feedback) and
// when it counts as a strength. Defaults can be overridden per deployment
// via a YAML file.
type Thresholds struct {
	// Weak boundaries
	MinEyeContact float64 `yaml:"min_eye_contact"`
	MaxFillers    int     `yaml:"max_fillers"`
	MinWPM        float64 `yaml:"min_wpm"`
	MaxWPM        float64 `yaml:"max_wpm"`
	MinEnergy     float64 `yaml:"min_energy"`
	MinGrammar    float64 `yaml:"min_grammar"`
	MinConfidence float64 `yaml:"min_confidence"`
	MinSmileRatio float64 `yaml:"min_smile_ratio"`

	// Strength boundaries (comfortably inside the ideal band)
	StrongEyeContact float64 `yaml:"strong_eye_contact"`
	StrongMaxFillers int     `yaml:"strong_max_fillers"`
	StrongEnergy     float64 `yaml:"strong_energy"`
	StrongGrammar    float64 `yaml:"strong_grammar"`
	StrongConfidence float64 `yaml:"strong_confidence"`
}

// DefaultThresholds returns the documented default coaching thresholds.
func DefaultThresholds() *Thresholds {
	return &Thresholds{
		MinEyeContact: 0.5,
		MaxFillers:    10,
		MinWPM:        120,
		MaxWPM:        160,
		MinEnergy:     0.04,
		MinGrammar:    0.7,
		MinConfidence: 0.6,
		MinSmileRatio: 0.2,

		StrongEyeContact: 0.7,
		StrongMaxFillers: 3,
		StrongEnergy:     0.06,
		StrongGrammar:    0.85,
		StrongConfidence: 0.75,
	}
}

// LoadThresholds reads a YAML thresholds file. Fields absent from the file
// keep their default values.
func LoadThresholds(path string) (*Thresholds, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read thresholds file", goerr.V("path", path))
	}

	th := DefaultThresholds()
	if err := yaml.Unmarshal(data, th); err != nil {
		return nil, goerr.Wrap(err, "failed to parse thresholds file", goerr.V("path", path))
	}

	return th, nil
}
