package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/games/duel/sim"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if cfg != DefaultDuelConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultDuelConfig())
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	data := []byte(`
agents:
  agent2:
    fire_rate: 300
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if cfg.Agents.Agent2.FireRate != 300 {
		t.Errorf("agent2 fire_rate = %d, expected 300", cfg.Agents.Agent2.FireRate)
	}
	if cfg.Agents.Agent2.SpellColor != "blue" {
		t.Errorf("agent2 spell_color = %q, expected blue", cfg.Agents.Agent2.SpellColor)
	}
	if cfg.Agents.Agent1 != DefaultDuelConfig().Agents.Agent1 {
		t.Errorf("agent1 = %+v, expected defaults", cfg.Agents.Agent1)
	}
	if cfg.Gameplay.WinScore != 10 {
		t.Errorf("win_score = %d, expected 10", cfg.Gameplay.WinScore)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("agents: [unclosed"))
	if err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		in        AgentConfig
		fireRate  int
		moveSpeed int
		spell     string
		body      string
	}{
		{"in range", AgentConfig{500, 5, "cyan", "white"}, 500, 5, "cyan", "white"},
		{"too fast", AgentConfig{10, 5, "red", "green"}, MinFireRateMs, 5, "red", "green"},
		{"too slow", AgentConfig{9000, 5, "red", "green"}, MaxFireRateMs, 5, "red", "green"},
		{"speed zero", AgentConfig{1000, 0, "red", "green"}, 1000, MinMoveSpeed, "red", "green"},
		{"speed high", AgentConfig{1000, 42, "red", "green"}, 1000, MaxMoveSpeed, "red", "green"},
		{"bad colors", AgentConfig{1000, 2, "chartreuse-ish", ""}, 1000, 2, "red", "green"},
		{"hex color", AgentConfig{1000, 2, "#ff8800", "green"}, 1000, 2, "#ff8800", "green"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultDuelConfig()
			cfg.Agents.Agent1 = tt.in
			cfg.Clamp()
			got := cfg.Agents.Agent1
			if got.FireRate != tt.fireRate {
				t.Errorf("FireRate = %d, expected %d", got.FireRate, tt.fireRate)
			}
			if got.MoveSpeed != tt.moveSpeed {
				t.Errorf("MoveSpeed = %d, expected %d", got.MoveSpeed, tt.moveSpeed)
			}
			if got.SpellColor != tt.spell {
				t.Errorf("SpellColor = %q, expected %q", got.SpellColor, tt.spell)
			}
			if got.BodyColor != tt.body {
				t.Errorf("BodyColor = %q, expected %q", got.BodyColor, tt.body)
			}
		})
	}
}

func TestClampArenaAndWinScore(t *testing.T) {
	cfg := DefaultDuelConfig()
	cfg.Arena = ArenaConfig{Width: 0, Height: 50}
	cfg.Gameplay.WinScore = -3
	cfg.Clamp()

	if cfg.Arena.Width != 800 {
		t.Errorf("Width = %v, expected 800", cfg.Arena.Width)
	}
	if cfg.Arena.Height != minArenaHeight {
		t.Errorf("Height = %v, expected %v", cfg.Arena.Height, minArenaHeight)
	}
	if cfg.Gameplay.WinScore != 0 {
		t.Errorf("WinScore = %d, expected 0", cfg.Gameplay.WinScore)
	}
}

func TestAgentAccessors(t *testing.T) {
	cfg := DefaultDuelConfig()
	a := cfg.Agent(sim.Agent2)
	a.MoveSpeed = 7
	cfg.SetAgent(sim.Agent2, a)

	if cfg.Agents.Agent2.MoveSpeed != 7 {
		t.Errorf("agent2 MoveSpeed = %d, expected 7", cfg.Agents.Agent2.MoveSpeed)
	}
	if cfg.Agents.Agent1.MoveSpeed != 2 {
		t.Errorf("agent1 MoveSpeed = %d, expected 2", cfg.Agents.Agent1.MoveSpeed)
	}
}

func TestSimConfig(t *testing.T) {
	sc := DefaultDuelConfig().SimConfig()

	if sc.Arena.Width != 800 || sc.Arena.Height != 600 {
		t.Errorf("Arena = %+v, expected 800x600", sc.Arena)
	}
	if sc.Agent1.FireRate != time.Second {
		t.Errorf("Agent1.FireRate = %v, expected 1s", sc.Agent1.FireRate)
	}
	if sc.Agent1.ProjectileColor != core.ColorRed || sc.Agent1.BodyColor != core.ColorGreen {
		t.Errorf("Agent1 colors = %v/%v, expected red/green", sc.Agent1.ProjectileColor, sc.Agent1.BodyColor)
	}
	if sc.Agent2.ProjectileColor != core.ColorBlue || sc.Agent2.BodyColor != core.ColorPurple {
		t.Errorf("Agent2 colors = %v/%v, expected blue/purple", sc.Agent2.ProjectileColor, sc.Agent2.BodyColor)
	}
}

func TestLoadDuelCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "duel.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  win_score: 3\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadDuel(path)
	if err != nil {
		t.Fatalf("LoadDuel error: %v", err)
	}
	if cfg.Gameplay.WinScore != 3 {
		t.Errorf("WinScore = %d, expected 3", cfg.Gameplay.WinScore)
	}
}

func TestLoadDuelMissingCustomPath(t *testing.T) {
	cfg, err := LoadDuel(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing custom config")
	}
	if cfg != DefaultDuelConfig() {
		t.Errorf("fallback config = %+v, expected defaults", cfg)
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := DefaultDuelConfig()
	cfg.Agents.Agent1.SpellColor = "orange"

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if back != cfg {
		t.Errorf("Parse(Marshal(cfg)) = %+v, expected %+v", back, cfg)
	}
}
