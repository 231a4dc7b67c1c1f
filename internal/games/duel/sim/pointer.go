package sim

import "github.com/vovakirdan/tui-duel/internal/core"

// PointerMargin is how far outside an agent's body the pointer still bounces it.
const PointerMargin = 10.0

// BounceOffPointer inverts the agent's vertical direction when the pointer is
// within its radius plus PointerMargin.
func BounceOffPointer(a *Agent, pointer core.Vec2) {
	if a.Pos.Dist(pointer) < a.Radius+PointerMargin {
		a.flip()
	}
}
