package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings carry the tunables of the prediction engine. The correction
// thresholds and decay rate are part of the contract with the presentation
// layer and should only be changed in lockstep with it.
type Settings struct {
	BufferCapacity int `yaml:"buffer_capacity"`

	NoiseFloor    float32 `yaml:"noise_floor"`
	SnapThreshold float32 `yaml:"snap_threshold"`
	OffsetDecay   float32 `yaml:"offset_decay"`

	AllowFlight bool    `yaml:"allow_flight"`
	FlySpeed    float32 `yaml:"fly_speed"`
}

// Default returns the reference configuration.
func Default() Settings {
	return Settings{
		BufferCapacity: 512,
		NoiseFloor:     0.001,
		SnapThreshold:  3.0,
		OffsetDecay:    0.15,
		FlySpeed:       0.05,
	}
}

// Load reads settings from a YAML file, with unset fields keeping their
// defaults.
func Load(path string) (Settings, error) {
	s := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("settings: %w", err)
	}
	return s, nil
}
