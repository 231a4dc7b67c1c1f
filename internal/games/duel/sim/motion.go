package sim

// StepMotion advances the agent vertically by its velocity and reflects the
// velocity when the agent touches the top or bottom wall. Horizontal position
// is never changed.
//
// Reflection only turns an agent that is heading into the wall it touches, so
// an agent that overshot a wall and was already turned around (by a previous
// reflection or a pointer bounce) is not flipped back into it. This
// intentionally narrows the plain rule of inverting dy on any wall contact.
func StepMotion(a *Agent, arenaHeight float64) {
	a.Pos.Y += a.Vel.Y

	top := a.Pos.Y-a.Radius <= 0
	bottom := a.Pos.Y+a.Radius >= arenaHeight
	if (top && a.Vel.Y < 0) || (bottom && a.Vel.Y > 0) {
		a.flip()
	}
}
