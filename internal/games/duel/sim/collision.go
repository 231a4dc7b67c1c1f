package sim

import "github.com/vovakirdan/tui-duel/internal/core"

// Hit records a projectile striking the opposing agent.
type Hit struct {
	Shooter AgentID
	Target  AgentID
	At      core.Vec2
	Score   Score // Score after the hit was counted
}

// Strikes reports whether the projectile's center lies inside the target's
// body circle.
func Strikes(p Projectile, target *Agent) bool {
	return p.Pos.Dist(target.Pos) < target.Radius
}

// ResolveHits removes every projectile of shooter that strikes target and
// credits the shooter once per removed projectile. Run it after
// AdvanceProjectiles so out-of-bounds projectiles never score.
func ResolveHits(shooter, target *Agent, board *Scoreboard) []Hit {
	var hits []Hit
	kept := shooter.Projectiles[:0]
	for _, p := range shooter.Projectiles {
		if !Strikes(p, target) {
			kept = append(kept, p)
			continue
		}
		score := board.Increment(shooter.ID)
		hits = append(hits, Hit{
			Shooter: shooter.ID,
			Target:  target.ID,
			At:      p.Pos,
			Score:   score,
		})
	}
	clearTail(shooter.Projectiles, len(kept))
	shooter.Projectiles = kept
	return hits
}
