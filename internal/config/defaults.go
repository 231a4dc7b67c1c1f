package config

import (
	_ "embed"
)

//go:embed defaults/duel.yaml
var defaultDuelYAML []byte

// DefaultDuelConfig returns the default duel configuration.
func DefaultDuelConfig() DuelConfig {
	return DuelConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Agents: AgentsConfig{
			Agent1: AgentConfig{
				FireRate:   1000,
				MoveSpeed:  2,
				SpellColor: "red",
				BodyColor:  "green",
			},
			Agent2: AgentConfig{
				FireRate:   1000,
				MoveSpeed:  2,
				SpellColor: "blue",
				BodyColor:  "purple",
			},
		},
		Gameplay: GameplayConfig{
			WinScore: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultDuelYAML
}
