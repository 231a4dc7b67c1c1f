// Package duel adapts the duel simulation to the platform's Game interface:
// it drives simulated time from the tick counter, handles pause, restart and
// win conditions, and maps terminal cells to arena space.
package duel

import (
	"time"

	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/games/duel/sim"
	"github.com/vovakirdan/tui-duel/internal/registry"
)

// Mode selects the match rules.
type Mode int

const (
	ModeMatch   Mode = iota // First to win_score hits
	ModeEndless             // No win condition
)

// Registry IDs.
const (
	IDMatch   = "duel"
	IDEndless = "duel_endless"
)

const (
	titleMatch   = "Spell Duel"
	titleEndless = "Spell Duel (Endless)"
)

// Game implements registry.Game for a two-agent duel.
type Game struct {
	mode    Mode
	cfg     config.DuelConfig
	runtime core.RuntimeConfig

	sim      *sim.Simulation
	tick     uint64
	last     sim.FrameResult
	paused   bool
	gameOver bool
	winner   sim.AgentID

	onHit   func(sim.Hit)
	onScore func(sim.Score)
}

// NewMode creates a duel with an explicit configuration.
func NewMode(mode Mode, cfg config.DuelConfig) *Game {
	cfg.Clamp()
	return &Game{
		mode:    mode,
		cfg:     cfg,
		runtime: core.DefaultConfig(),
	}
}

func init() {
	registry.Register(IDMatch, titleMatch, func(cfg config.DuelConfig) registry.Game {
		return NewMode(ModeMatch, cfg)
	})
	registry.Register(IDEndless, titleEndless, func(cfg config.DuelConfig) registry.Game {
		return NewMode(ModeEndless, cfg)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDMatch
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return titleEndless
	}
	return titleMatch
}

// OnHit registers a callback invoked for every hit during Step.
func (g *Game) OnHit(fn func(sim.Hit)) {
	g.onHit = fn
}

// OnScore registers a callback invoked after every score change, once the
// win condition has been applied.
func (g *Game) OnScore(fn func(sim.Score)) {
	g.onScore = fn
}

// Reset starts a fresh match: new agents, empty projectile lists, zero score.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.sim = sim.New(g.cfg.SimConfig())
	g.sim.Scoreboard().Subscribe(g.scored)
	g.tick = 0
	g.last = sim.FrameResult{}
	g.paused = false
	g.gameOver = false
	g.winner = 0
}

// Step advances the duel by one tick. Simulated time is tick * frame duration.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		g.Reset(g.runtime)
	}

	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.last = g.sim.Step(g.Now())

	for _, h := range g.last.Hits {
		if g.onHit != nil {
			g.onHit(h)
		}
	}

	return core.StepResult{State: g.State(), Hits: len(g.last.Hits)}
}

// scored receives every increment of the current match's scoreboard.
// The first agent to reach the win score wins; later hits in the same frame
// do not change the winner.
func (g *Game) scored(score sim.Score) {
	if target := g.WinScore(); target > 0 && !g.gameOver {
		for _, id := range sim.AgentIDs {
			if score.Of(id) >= int64(target) {
				g.gameOver = true
				g.winner = id
				break
			}
		}
	}
	if g.onScore != nil {
		g.onScore(score)
	}
}

// WinScore returns the hits needed to win, or 0 in endless mode.
func (g *Game) WinScore() int {
	if g.mode == ModeEndless {
		return 0
	}
	return g.cfg.Gameplay.WinScore
}

// Now returns the simulated time of the current tick.
func (g *Game) Now() time.Duration {
	return time.Duration(g.tick) * g.runtime.FrameDuration()
}

// Tick returns the number of simulated frames.
func (g *Game) Tick() uint64 {
	return g.tick
}

// LastFrame returns what happened during the most recent simulated frame.
func (g *Game) LastFrame() sim.FrameResult {
	return g.last
}

// Pointer applies a pointer position given in arena units.
func (g *Game) Pointer(x, y float64) {
	if g.sim == nil || g.gameOver {
		return
	}
	g.sim.Pointer(x, y)
}

// PointerAt applies a pointer position given as a terminal cell.
// Cells outside the arena are ignored.
func (g *Game) PointerAt(col, row int) bool {
	if g.sim == nil {
		return false
	}
	x, y, ok := CellToArena(col, row, g.runtime.ScreenW, g.runtime.ScreenH, g.sim.Arena())
	if !ok {
		return false
	}
	g.Pointer(x, y)
	return true
}

// Snapshot returns a copy of the simulation state for rendering.
func (g *Game) Snapshot() sim.Snapshot {
	if g.sim == nil {
		g.Reset(g.runtime)
	}
	return g.sim.Snapshot()
}

// Render draws the current state into dst.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.Snapshot(), g.State())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.gameOver,
		Paused:   g.paused,
		Winner:   int(g.winner),
		WinScore: g.WinScore(),
	}
	if g.sim != nil {
		score := g.sim.Scoreboard().Score()
		st.Score1 = int(score.Agent1)
		st.Score2 = int(score.Agent2)
	}
	return st
}
