package sim

import (
	"time"

	"github.com/vovakirdan/tui-duel/internal/core"
)

// TrySpawn casts a new projectile if more than FireRate has elapsed since the
// agent's last cast. The cadence reference is stored on the agent, so the
// interval holds across frames. Reports whether a projectile was spawned.
func (a *Agent) TrySpawn(now time.Duration) bool {
	if now-a.lastFire <= a.FireRate {
		return false
	}

	a.Projectiles = append(a.Projectiles, Projectile{
		Pos:    a.Pos,
		Vel:    core.V(ProjectileSpeed*a.ID.Direction(), 0),
		Radius: ProjectileRadius,
		Color:  a.ProjectileColor,
		Owner:  a.ID,
	})
	a.lastFire = now
	return true
}
