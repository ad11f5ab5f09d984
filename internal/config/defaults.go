package config

import (
	_ "embed"
)

//go:embed defaults/typebomb.yaml
var defaultGameYAML []byte

// DefaultGame returns the built-in gameplay configuration, used when no
// config file is found and the embedded YAML cannot be parsed.
func DefaultGame() Game {
	return Game{
		Field: Field{
			Width:      480,
			Height:     360,
			BombRadius: 16,
		},
		Gameplay: Gameplay{
			Lives:          10,
			LevelThreshold: 50,
			PopupMs:        800,
		},
		Tiers: []Tier{
			{Name: "drizzle", FallIntervalMs: 9000, SpawnIntervalMs: 3200, BombsPerWave: 1},
			{Name: "shower", FallIntervalMs: 7500, SpawnIntervalMs: 2800, BombsPerWave: 1},
			{Name: "downpour", FallIntervalMs: 6000, SpawnIntervalMs: 2500, BombsPerWave: 2},
			{Name: "storm", FallIntervalMs: 5000, SpawnIntervalMs: 2200, BombsPerWave: 2},
			{Name: "tempest", FallIntervalMs: 4000, SpawnIntervalMs: 2000, BombsPerWave: 3},
			{Name: "cataclysm", FallIntervalMs: 3000, SpawnIntervalMs: 1800, BombsPerWave: 3},
		},
	}
}
