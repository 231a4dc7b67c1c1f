package sim

import "github.com/vovakirdan/tui-duel/internal/core"

// Projectile constants.
const (
	ProjectileRadius = 5.0
	ProjectileSpeed  = 5.0
)

// Projectile is a spell in flight. It belongs to exactly one owner's
// Projectiles slice.
type Projectile struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Color  core.Color
	Owner  AgentID
}

// AdvanceProjectiles moves every projectile owned by a and drops those that
// left the arena horizontally. Survivors keep their relative order. Returns the
// number of projectiles pruned.
func AdvanceProjectiles(a *Agent, arena Arena) int {
	pruned := 0
	kept := a.Projectiles[:0]
	for _, p := range a.Projectiles {
		p.Pos = p.Pos.Add(p.Vel)
		if arena.OutsideX(p.Pos.X) {
			pruned++
			continue
		}
		kept = append(kept, p)
	}
	clearTail(a.Projectiles, len(kept))
	a.Projectiles = kept
	return pruned
}

// clearTail zeroes the slots past n so removed projectiles do not linger in
// the backing array.
func clearTail(ps []Projectile, n int) {
	for i := n; i < len(ps); i++ {
		ps[i] = Projectile{}
	}
}
