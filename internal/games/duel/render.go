package duel

import (
	"fmt"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/games/duel/sim"
)

// Visual characters for rendering
const (
	BodyChar       = '█'
	CoreChar       = '◆'
	ProjectileChar = '●'
)

// hudRows is the number of screen rows above the arena box.
const hudRows = 1

// ArenaRect returns the screen cells the arena is drawn into, excluding the
// HUD row and the box border.
func ArenaRect(screenW, screenH int) core.Rect {
	box := core.NewRect(0, hudRows, screenW, screenH-hudRows)
	return box.Inset(1)
}

// CellToArena maps the center of a terminal cell to arena units.
// ok is false when the cell lies outside the arena area.
func CellToArena(col, row, screenW, screenH int, arena sim.Arena) (x, y float64, ok bool) {
	r := ArenaRect(screenW, screenH)
	if r.W <= 0 || r.H <= 0 || !r.Contains(col, row) {
		return 0, 0, false
	}
	x = (float64(col-r.X) + 0.5) * arena.Width / float64(r.W)
	y = (float64(row-r.Y) + 0.5) * arena.Height / float64(r.H)
	return x, y, true
}

// ArenaToCell maps an arena position to the terminal cell containing it.
// ok is false when the position falls outside the arena area.
func ArenaToCell(pos core.Vec2, screenW, screenH int, arena sim.Arena) (col, row int, ok bool) {
	r := ArenaRect(screenW, screenH)
	if r.W <= 0 || r.H <= 0 || pos.X < 0 || pos.Y < 0 || pos.X >= arena.Width || pos.Y >= arena.Height {
		return 0, 0, false
	}
	col = r.X + int(pos.X*float64(r.W)/arena.Width)
	row = r.Y + int(pos.Y*float64(r.H)/arena.Height)
	return col, row, r.Contains(col, row)
}

// Render draws a snapshot: HUD, arena border, projectiles, agents and any
// pause or game-over banner.
func Render(dst *core.Screen, snap sim.Snapshot, st core.GameState) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < 20 || h < 6 {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	drawHUD(dst, snap, st)
	dst.DrawBox(core.NewRect(0, hudRows, w, h-hudRows))

	for _, p := range snap.Projectiles {
		if col, row, ok := ArenaToCell(p.Pos, w, h, snap.Arena); ok {
			dst.SetColored(col, row, ProjectileChar, p.Color)
		}
	}

	for _, a := range snap.Agents {
		drawAgent(dst, a, snap.Arena)
	}

	switch {
	case st.GameOver:
		title := fmt.Sprintf("%s WINS!", agentLabel(sim.AgentID(st.Winner)))
		drawCenteredMessage(dst, title, fmt.Sprintf("%d - %d  |  Press R to restart", st.Score1, st.Score2))
	case st.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func drawHUD(dst *core.Screen, snap sim.Snapshot, st core.GameState) {
	a1 := snap.Agent(sim.Agent1)
	a2 := snap.Agent(sim.Agent2)

	left := fmt.Sprintf("%s %d", agentLabel(sim.Agent1), st.Score1)
	dst.DrawTextColored(1, 0, left, a1.Color)

	right := fmt.Sprintf("%d %s", st.Score2, agentLabel(sim.Agent2))
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, a2.Color)

	goal := "endless"
	if st.WinScore > 0 {
		goal = fmt.Sprintf("first to %d", st.WinScore)
	}
	dst.DrawTextCentered(0, fmt.Sprintf("%s  %5.1fs", goal, snap.Now.Seconds()))
}

// drawAgent fills every cell whose center lies within the agent's body and
// always marks the cell containing the agent's center.
func drawAgent(dst *core.Screen, a sim.AgentView, arena sim.Arena) {
	w, h := dst.Width(), dst.Height()
	r := ArenaRect(w, h)

	for row := r.Y; row < r.Bottom(); row++ {
		for col := r.X; col < r.Right(); col++ {
			x, y, ok := CellToArena(col, row, w, h, arena)
			if ok && a.Pos.Dist(core.V(x, y)) <= a.Radius {
				dst.SetColored(col, row, BodyChar, a.Color)
			}
		}
	}

	if col, row, ok := ArenaToCell(a.Pos, w, h, arena); ok {
		dst.SetColored(col, row, CoreChar, a.SpellColor)
	}
}

func agentLabel(id sim.AgentID) string {
	switch id {
	case sim.Agent1:
		return "Agent 1"
	case sim.Agent2:
		return "Agent 2"
	default:
		return "Nobody"
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := min(max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
