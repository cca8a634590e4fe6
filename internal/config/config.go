// Package config provides YAML-based configuration loading for the
// snake platform.
package config

import "fmt"

// SnakeConfig contains all tunable parameters for the game.
type SnakeConfig struct {
	Field  FieldConfig  `yaml:"field"`
	Timing TimingConfig `yaml:"timing"`
}

// FieldConfig defines the playing field geometry.
type FieldConfig struct {
	Size int `yaml:"size"` // Side length of the square field, in cells
}

// TimingConfig defines simulation pacing.
type TimingConfig struct {
	TicksPerSecond int `yaml:"ticks_per_second"`
}

// Validate checks that the configuration is usable.
func (c SnakeConfig) Validate() error {
	if c.Field.Size < 4 {
		return fmt.Errorf("config: field size %d too small (minimum 4)", c.Field.Size)
	}
	if c.Timing.TicksPerSecond < 1 {
		return fmt.Errorf("config: ticks_per_second %d must be at least 1", c.Timing.TicksPerSecond)
	}
	return nil
}
