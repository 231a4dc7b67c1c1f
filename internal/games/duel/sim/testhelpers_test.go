package sim

import (
	"time"

	"github.com/vovakirdan/tui-duel/internal/core"
)

func testConfig() Config {
	return Config{
		Arena: DefaultArena(),
		Agent1: AgentConfig{
			FireRate:        time.Second,
			MoveSpeed:       2,
			BodyColor:       core.ColorGreen,
			ProjectileColor: core.ColorRed,
		},
		Agent2: AgentConfig{
			FireRate:        time.Second,
			MoveSpeed:       2,
			BodyColor:       core.ColorPurple,
			ProjectileColor: core.ColorBlue,
		},
	}
}

func testAgent(id AgentID, x, y, dy float64) *Agent {
	a := NewAgent(id, testConfig().Agent(id), DefaultArena(), 0)
	a.Pos = core.V(x, y)
	a.Vel = core.V(0, dy)
	return a
}
