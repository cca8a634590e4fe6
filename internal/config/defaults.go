package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hardcoded default configuration:
// the classic 20x20 field at 10 ticks per second.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Field: FieldConfig{
			Size: 20,
		},
		Timing: TimingConfig{
			TicksPerSecond: 10,
		},
	}
}
