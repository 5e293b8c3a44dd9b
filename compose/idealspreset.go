package compose

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// idealsPresetFile is the shape of config/ideals.yaml: a named table of
// ideal-count presets an operator can pick between instead of hand-tuning
// DefaultIdeals for every run.
type idealsPresetFile struct {
	Presets map[string]struct {
		Ramp          int `yaml:"ramp"`
		Lands         int `yaml:"lands"`
		BasicLands    int `yaml:"basicLands"`
		Creatures     int `yaml:"creatures"`
		Removal       int `yaml:"removal"`
		Wipes         int `yaml:"wipes"`
		CardAdvantage int `yaml:"cardAdvantage"`
		Protection    int `yaml:"protection"`
		FreeSlots     int `yaml:"freeSlots"`
	} `yaml:"presets"`
}

// LoadIdealsPreset reads name's ideal-count preset from the YAML file at
// path. Price ceilings aren't part of the preset file; set them on the
// returned Ideals directly.
func LoadIdealsPreset(path, name string) (Ideals, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Ideals{}, fmt.Errorf("compose: read ideals preset file: %w", err)
	}

	var file idealsPresetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Ideals{}, fmt.Errorf("compose: parse ideals preset file: %w", err)
	}

	preset, ok := file.Presets[name]
	if !ok {
		return Ideals{}, fmt.Errorf("compose: no ideals preset named %q in %s", name, path)
	}

	return Ideals{
		Ramp:          preset.Ramp,
		Lands:         preset.Lands,
		BasicLands:    preset.BasicLands,
		Creatures:     preset.Creatures,
		Removal:       preset.Removal,
		Wipes:         preset.Wipes,
		CardAdvantage: preset.CardAdvantage,
		Protection:    preset.Protection,
		FreeSlots:     preset.FreeSlots,
	}, nil
}
