package config

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"gameobjects-sim/internal/world"
)

// Config holds the game configuration.
type Config struct {
	Population string     // built-in scene, ignored when ScenePath is set
	Scale      float64    // movement values are drawn from [0, Scale)
	Seed       uint64     // random seed (0 = random)
	ScenePath  string     // optional YAML scene file
	MoveAll    bool       // move every movable, not only the enrolled ones
	LogLevel   slog.Level // minimum level written to stderr
}

// DefaultConfig returns a Config that reproduces the classic run.
func DefaultConfig() *Config {
	return &Config{
		Population: world.PopulationReference,
		Scale:      100,
		LogLevel:   slog.LevelWarn,
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.ScenePath == "" && !slices.Contains(world.Populations, c.Population) {
		return fmt.Errorf("unknown population %q, want one of %v", c.Population, world.Populations)
	}
	if math.IsNaN(c.Scale) || math.IsInf(c.Scale, 0) || c.Scale <= 0 {
		return fmt.Errorf("scale must be a positive finite number, got %v", c.Scale)
	}
	return nil
}
