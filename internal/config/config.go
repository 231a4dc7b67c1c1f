// Package config provides YAML-based duel configuration loading and the
// clamping that keeps agent parameters inside their documented ranges.
package config

import (
	"time"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/games/duel/sim"
)

// Parameter ranges exposed to the presentation layer.
const (
	MinFireRateMs = 100
	MaxFireRateMs = 2000
	FireRateStep  = 100 // Slider step in milliseconds

	MinMoveSpeed  = sim.MinMoveSpeed
	MaxMoveSpeed  = sim.MaxMoveSpeed
	MoveSpeedStep = 1

	minArenaWidth  = 160.0
	minArenaHeight = 120.0
)

// DuelConfig contains all configuration for a duel.
type DuelConfig struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Agents   AgentsConfig   `yaml:"agents"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// ArenaConfig defines the arena size in simulation units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AgentsConfig holds both agents' parameters, keyed by identity.
type AgentsConfig struct {
	Agent1 AgentConfig `yaml:"agent1"`
	Agent2 AgentConfig `yaml:"agent2"`
}

// AgentConfig defines the tunable parameters of one agent.
type AgentConfig struct {
	FireRate   int    `yaml:"fire_rate"`   // Milliseconds between casts
	MoveSpeed  int    `yaml:"move_speed"`  // Units per frame
	SpellColor string `yaml:"spell_color"` // Palette name or #rrggbb
	BodyColor  string `yaml:"body_color"`
}

// GameplayConfig defines match rules.
type GameplayConfig struct {
	WinScore int `yaml:"win_score"` // 0 = endless
}

// Agent returns the parameters for one side.
func (c DuelConfig) Agent(id sim.AgentID) AgentConfig {
	if id == sim.Agent2 {
		return c.Agents.Agent2
	}
	return c.Agents.Agent1
}

// SetAgent replaces the parameters for one side.
func (c *DuelConfig) SetAgent(id sim.AgentID, a AgentConfig) {
	if id == sim.Agent2 {
		c.Agents.Agent2 = a
		return
	}
	c.Agents.Agent1 = a
}

// Clamp forces every value into its documented range. Unknown colors fall
// back to the side's default color.
func (c *DuelConfig) Clamp() {
	def := DefaultDuelConfig()

	if c.Arena.Width <= 0 {
		c.Arena.Width = def.Arena.Width
	}
	if c.Arena.Height <= 0 {
		c.Arena.Height = def.Arena.Height
	}
	c.Arena.Width = max(c.Arena.Width, minArenaWidth)
	c.Arena.Height = max(c.Arena.Height, minArenaHeight)

	c.Agents.Agent1 = c.Agents.Agent1.clamped(def.Agents.Agent1)
	c.Agents.Agent2 = c.Agents.Agent2.clamped(def.Agents.Agent2)

	c.Gameplay.WinScore = max(c.Gameplay.WinScore, 0)
}

func (a AgentConfig) clamped(def AgentConfig) AgentConfig {
	a.FireRate = core.Clamp(a.FireRate, MinFireRateMs, MaxFireRateMs)
	a.MoveSpeed = core.Clamp(a.MoveSpeed, MinMoveSpeed, MaxMoveSpeed)
	if _, err := core.ParseColor(a.SpellColor); err != nil {
		a.SpellColor = def.SpellColor
	}
	if _, err := core.ParseColor(a.BodyColor); err != nil {
		a.BodyColor = def.BodyColor
	}
	return a
}

// SimAgent converts the parameters for the simulation. Colors that fail to
// parse become the default color; call Clamp first to avoid that.
func (a AgentConfig) SimAgent() sim.AgentConfig {
	spell, _ := core.ParseColor(a.SpellColor)
	body, _ := core.ParseColor(a.BodyColor)
	return sim.AgentConfig{
		FireRate:        time.Duration(a.FireRate) * time.Millisecond,
		MoveSpeed:       a.MoveSpeed,
		BodyColor:       body,
		ProjectileColor: spell,
	}
}

// SimConfig converts the duel configuration for the simulation.
func (c DuelConfig) SimConfig() sim.Config {
	return sim.Config{
		Arena:  sim.Arena{Width: c.Arena.Width, Height: c.Arena.Height},
		Agent1: c.Agents.Agent1.SimAgent(),
		Agent2: c.Agents.Agent2.SimAgent(),
	}
}
