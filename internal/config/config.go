// Package config provides YAML-based gameplay configuration loading for
// typebomb: play-field geometry, lives, difficulty tiers.
package config

import "fmt"

// MaxLives is the hard ceiling on starting lives.
const MaxLives = 10

// Game contains all gameplay configuration for a typebomb session.
type Game struct {
	Field    Field    `yaml:"field"`
	Gameplay Gameplay `yaml:"gameplay"`
	Tiers    []Tier   `yaml:"tiers"`
}

// Field defines the play-field geometry in abstract field units.
// The renderer scales field units to terminal cells.
type Field struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	BombRadius float64 `yaml:"bomb_radius"`
}

// Gameplay defines session-level tunables.
type Gameplay struct {
	Lives          int `yaml:"lives"`           // starting lives, 1..10
	LevelThreshold int `yaml:"level_threshold"` // cleared bombs per tier advance
	PopupMs        int `yaml:"popup_ms"`        // score popup lifetime
}

// Tier defines one difficulty level.
type Tier struct {
	Name            string `yaml:"name"`
	FallIntervalMs  int    `yaml:"fall_interval_ms"`
	SpawnIntervalMs int    `yaml:"spawn_interval_ms"`
	BombsPerWave    int    `yaml:"bombs_per_wave"`
}

// Validate checks the configuration preconditions. A session must never be
// started with an invalid config.
func (c Game) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("config: field dimensions must be positive, got %gx%g", c.Field.Width, c.Field.Height)
	}
	if c.Field.BombRadius <= 0 {
		return fmt.Errorf("config: bomb_radius must be positive, got %g", c.Field.BombRadius)
	}
	if c.Field.Width < 2*c.Field.BombRadius {
		return fmt.Errorf("config: field width %g cannot fit a bomb of radius %g", c.Field.Width, c.Field.BombRadius)
	}
	if c.Gameplay.Lives < 1 || c.Gameplay.Lives > MaxLives {
		return fmt.Errorf("config: lives must be in [1,%d], got %d", MaxLives, c.Gameplay.Lives)
	}
	if c.Gameplay.LevelThreshold < 1 {
		return fmt.Errorf("config: level_threshold must be positive, got %d", c.Gameplay.LevelThreshold)
	}
	if c.Gameplay.PopupMs < 1 {
		return fmt.Errorf("config: popup_ms must be positive, got %d", c.Gameplay.PopupMs)
	}
	if len(c.Tiers) == 0 {
		return fmt.Errorf("config: at least one difficulty tier is required")
	}
	for i, tier := range c.Tiers {
		if tier.Name == "" {
			return fmt.Errorf("config: tier %d has no name", i)
		}
		if tier.FallIntervalMs < 10 {
			return fmt.Errorf("config: tier %q fall_interval_ms must be >= 10, got %d", tier.Name, tier.FallIntervalMs)
		}
		if tier.SpawnIntervalMs < 1 {
			return fmt.Errorf("config: tier %q spawn_interval_ms must be positive, got %d", tier.Name, tier.SpawnIntervalMs)
		}
		if tier.BombsPerWave < 1 {
			return fmt.Errorf("config: tier %q bombs_per_wave must be positive, got %d", tier.Name, tier.BombsPerWave)
		}
	}
	return nil
}
