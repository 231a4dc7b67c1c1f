package sim

// Default arena dimensions in simulation units.
const (
	DefaultArenaWidth  = 800.0
	DefaultArenaHeight = 600.0
)

// Arena is the bounded rectangle agents and projectiles live in.
// The origin is the top-left corner; y grows downward.
type Arena struct {
	Width  float64
	Height float64
}

// DefaultArena returns the standard 800x600 arena.
func DefaultArena() Arena {
	return Arena{Width: DefaultArenaWidth, Height: DefaultArenaHeight}
}

// OutsideX reports whether x has left the arena horizontally.
func (a Arena) OutsideX(x float64) bool {
	return x < 0 || x > a.Width
}
