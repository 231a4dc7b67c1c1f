// Package sim implements the per-frame duel simulation: agent motion, timed
// projectile spawning, projectile advancement and pruning, collision detection
// and score accrual. It has no UI or I/O dependencies.
//
// A Simulation is not safe for concurrent use. It is owned by a single driver
// that calls Step once per frame and Pointer between frames.
package sim

import (
	"time"

	"github.com/vovakirdan/tui-duel/internal/core"
)

// Agent and arena constants.
const (
	DefaultAgentRadius = 20.0
	DefaultEdgeOffset  = 50.0 // Horizontal distance of each agent from its wall

	MinFireRate  = 100 * time.Millisecond
	MaxFireRate  = 2000 * time.Millisecond
	MinMoveSpeed = 1
	MaxMoveSpeed = 10
)

// AgentID identifies one of the two duelists.
type AgentID int

const (
	Agent1 AgentID = iota + 1 // Left side
	Agent2                    // Right side
)

// AgentIDs lists both agents in processing order.
var AgentIDs = [2]AgentID{Agent1, Agent2}

// String returns the stable identity tag ("agent1" / "agent2").
func (id AgentID) String() string {
	switch id {
	case Agent1:
		return "agent1"
	case Agent2:
		return "agent2"
	default:
		return "unknown"
	}
}

// Opponent returns the other agent.
func (id AgentID) Opponent() AgentID {
	if id == Agent1 {
		return Agent2
	}
	return Agent1
}

// index maps the id onto a two-element array slot.
func (id AgentID) index() int {
	if id == Agent2 {
		return 1
	}
	return 0
}

// Valid reports whether id names one of the two agents.
func (id AgentID) Valid() bool {
	return id == Agent1 || id == Agent2
}

// Direction returns the horizontal sign projectiles travel in: +1 for the
// left agent, -1 for the right one.
func (id AgentID) Direction() float64 {
	if id == Agent2 {
		return -1
	}
	return 1
}

// AgentConfig holds the tunable parameters of one agent.
// Values are expected to be clamped before they reach the simulation.
type AgentConfig struct {
	FireRate        time.Duration
	MoveSpeed       int
	BodyColor       core.Color
	ProjectileColor core.Color
}

// Agent is one duelist: position, velocity, parameters, in-flight projectiles
// and the timestamp of its last cast.
type Agent struct {
	ID              AgentID
	Pos             core.Vec2
	Vel             core.Vec2
	Radius          float64
	BodyColor       core.Color
	ProjectileColor core.Color
	FireRate        time.Duration
	MoveSpeed       int

	// Projectiles is the ordered set of projectiles this agent has cast that
	// are still in flight. Only this agent's pipeline mutates it.
	Projectiles []Projectile

	// lastFire is the simulated time of the last successful spawn.
	lastFire time.Duration
}

// NewAgent places an agent at its starting position for the given arena.
// Agent1 starts a quarter of the way down moving down; Agent2 starts three
// quarters down moving up. start is the match-start time used as the first
// cadence reference.
func NewAgent(id AgentID, cfg AgentConfig, arena Arena, start time.Duration) *Agent {
	a := &Agent{
		ID:              id,
		Radius:          DefaultAgentRadius,
		BodyColor:       cfg.BodyColor,
		ProjectileColor: cfg.ProjectileColor,
		FireRate:        cfg.FireRate,
		MoveSpeed:       cfg.MoveSpeed,
		lastFire:        start,
	}

	speed := float64(cfg.MoveSpeed)
	switch id {
	case Agent2:
		a.Pos = core.V(arena.Width-DefaultEdgeOffset, 3*arena.Height/4)
		a.Vel = core.V(0, -speed)
	default:
		a.Pos = core.V(DefaultEdgeOffset, arena.Height/4)
		a.Vel = core.V(0, speed)
	}
	return a
}

// LastFire returns the simulated time of the agent's last spawn.
func (a *Agent) LastFire() time.Duration {
	return a.lastFire
}

// Ascending reports whether the agent is currently moving up the screen.
func (a *Agent) Ascending() bool {
	return a.Vel.Y < 0
}

// flip inverts the vertical direction of travel.
func (a *Agent) flip() {
	a.Vel.Y = -a.Vel.Y
}
