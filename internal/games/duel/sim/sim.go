package sim

import (
	"time"

	"github.com/vovakirdan/tui-duel/internal/core"
)

// Config describes a match: the arena and both agents' parameters.
type Config struct {
	Arena  Arena
	Agent1 AgentConfig
	Agent2 AgentConfig
}

// Agent returns the parameters for one side.
func (c Config) Agent(id AgentID) AgentConfig {
	if id == Agent2 {
		return c.Agent2
	}
	return c.Agent1
}

// Simulation owns both agents, the arena and the scoreboard for one match.
// It is the single state object shared by the frame loop and the pointer
// handler; the driver must not call them concurrently.
type Simulation struct {
	arena  Arena
	agents [2]*Agent
	board  *Scoreboard
	frame  uint64
	now    time.Duration
}

// FrameResult summarizes what happened during one Step.
type FrameResult struct {
	Frame   uint64
	Spawned []AgentID
	Pruned  int
	Hits    []Hit
}

// New creates a simulation whose clock starts at zero.
func New(cfg Config) *Simulation {
	return NewAt(cfg, 0)
}

// NewAt creates a simulation whose cadence reference is start, so the first
// casts happen once each agent's FireRate has elapsed after start.
func NewAt(cfg Config, start time.Duration) *Simulation {
	s := &Simulation{
		arena: cfg.Arena,
		board: NewScoreboard(),
		now:   start,
	}
	for _, id := range AgentIDs {
		s.agents[id.index()] = NewAgent(id, cfg.Agent(id), cfg.Arena, start)
	}
	return s
}

// Arena returns the arena dimensions.
func (s *Simulation) Arena() Arena {
	return s.arena
}

// Agent returns the agent with the given id.
func (s *Simulation) Agent(id AgentID) *Agent {
	return s.agents[id.index()]
}

// Scoreboard returns the match scoreboard.
func (s *Simulation) Scoreboard() *Scoreboard {
	return s.board
}

// Frame returns the number of completed steps.
func (s *Simulation) Frame() uint64 {
	return s.frame
}

// Now returns the simulated time of the last step.
func (s *Simulation) Now() time.Duration {
	return s.now
}

// Step runs one frame at simulated time now:
// motion for both agents, then spawning, then projectile advancement with
// out-of-bounds pruning, then collision checks against the opponent.
func (s *Simulation) Step(now time.Duration) FrameResult {
	s.frame++
	s.now = now
	res := FrameResult{Frame: s.frame}

	for _, a := range s.agents {
		StepMotion(a, s.arena.Height)
	}

	for _, a := range s.agents {
		if a.TrySpawn(now) {
			res.Spawned = append(res.Spawned, a.ID)
		}
	}

	for _, a := range s.agents {
		res.Pruned += AdvanceProjectiles(a, s.arena)
		opponent := s.Agent(a.ID.Opponent())
		res.Hits = append(res.Hits, ResolveHits(a, opponent, s.board)...)
	}

	return res
}

// Pointer applies a pointer position in arena space: every agent whose body
// is within reach of the pointer reverses its vertical direction.
func (s *Simulation) Pointer(x, y float64) {
	p := core.V(x, y)
	for _, a := range s.agents {
		BounceOffPointer(a, p)
	}
}

// AgentView is the render-facing state of an agent.
type AgentView struct {
	ID         AgentID
	Pos        core.Vec2
	Radius     float64
	Color      core.Color
	SpellColor core.Color
	Ascending  bool
	InFlight   int
	FireRate   time.Duration
	MoveSpeed  int
}

// ProjectileView is the render-facing state of a projectile.
type ProjectileView struct {
	Owner  AgentID
	Pos    core.Vec2
	Radius float64
	Color  core.Color
}

// Snapshot is an immutable copy of everything the presentation layer draws.
type Snapshot struct {
	Frame       uint64
	Now         time.Duration
	Arena       Arena
	Agents      [2]AgentView
	Projectiles []ProjectileView
	Score       Score
}

// Agent returns the view of one agent.
func (s Snapshot) Agent(id AgentID) AgentView {
	return s.Agents[id.index()]
}

// Snapshot copies the current state for rendering.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Frame: s.frame,
		Now:   s.now,
		Arena: s.arena,
		Score: s.board.Score(),
	}

	total := 0
	for _, a := range s.agents {
		total += len(a.Projectiles)
	}
	snap.Projectiles = make([]ProjectileView, 0, total)

	for i, a := range s.agents {
		snap.Agents[i] = AgentView{
			ID:         a.ID,
			Pos:        a.Pos,
			Radius:     a.Radius,
			Color:      a.BodyColor,
			SpellColor: a.ProjectileColor,
			Ascending:  a.Ascending(),
			InFlight:   len(a.Projectiles),
			FireRate:   a.FireRate,
			MoveSpeed:  a.MoveSpeed,
		}
		for _, p := range a.Projectiles {
			snap.Projectiles = append(snap.Projectiles, ProjectileView{
				Owner:  p.Owner,
				Pos:    p.Pos,
				Radius: p.Radius,
				Color:  p.Color,
			})
		}
	}
	return snap
}
