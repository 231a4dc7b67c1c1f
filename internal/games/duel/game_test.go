package duel

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/games/duel/sim"
	"github.com/vovakirdan/tui-duel/internal/registry"
)

// testRuntime gives 1ms frames and an 80x20 arena area.
func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 82, ScreenH: 23, TickRate: 1000}
}

func newTestGame(mode Mode) *Game {
	g := NewMode(mode, config.DefaultDuelConfig())
	g.Reset(testRuntime())
	return g
}

func stepN(g *Game, n int) {
	for range n {
		g.Step(core.NewInputFrame())
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDMatch, IDEndless} {
		if !registry.Exists(id) {
			t.Errorf("%s not registered", id)
		}
	}
}

func TestRegistryCreateCarriesConfig(t *testing.T) {
	cfg := config.DefaultDuelConfig()
	cfg.Gameplay.WinScore = 4
	cfg.Agents.Agent2.FireRate = 5000

	tests := []struct {
		id       string
		winScore int
	}{
		{IDMatch, 4},
		{IDEndless, 0},
	}
	for _, tt := range tests {
		rg, err := registry.Create(tt.id, cfg)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", tt.id, err)
		}
		g, ok := rg.(*Game)
		if !ok {
			t.Fatalf("Create(%q) returned %T, expected *Game", tt.id, rg)
		}
		if g.ID() != tt.id {
			t.Errorf("ID() = %q, expected %q", g.ID(), tt.id)
		}
		if g.WinScore() != tt.winScore {
			t.Errorf("%s WinScore() = %d, expected %d", tt.id, g.WinScore(), tt.winScore)
		}

		g.Reset(testRuntime())
		if got := g.Snapshot().Agent(sim.Agent2).FireRate; got != config.MaxFireRateMs*time.Millisecond {
			t.Errorf("%s agent2 FireRate = %v, expected clamped %v", tt.id, got, config.MaxFireRateMs*time.Millisecond)
		}
	}
}

func TestIDAndTitle(t *testing.T) {
	tests := []struct {
		mode  Mode
		id    string
		title string
	}{
		{ModeMatch, "duel", "Spell Duel"},
		{ModeEndless, "duel_endless", "Spell Duel (Endless)"},
	}
	for _, tt := range tests {
		g := NewMode(tt.mode, config.DefaultDuelConfig())
		if g.ID() != tt.id {
			t.Errorf("ID() = %q, expected %q", g.ID(), tt.id)
		}
		if g.Title() != tt.title {
			t.Errorf("Title() = %q, expected %q", g.Title(), tt.title)
		}
	}
}

func TestStepAdvancesSimulatedTime(t *testing.T) {
	g := newTestGame(ModeMatch)
	stepN(g, 5)

	if g.Tick() != 5 {
		t.Errorf("Tick() = %d, expected 5", g.Tick())
	}
	if g.Now() != 5*time.Millisecond {
		t.Errorf("Now() = %v, expected 5ms", g.Now())
	}
	if g.Snapshot().Frame != 5 {
		t.Errorf("Snapshot().Frame = %d, expected 5", g.Snapshot().Frame)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(ModeMatch)
	stepN(g, 3)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}

	before := g.Snapshot()
	stepN(g, 10)
	after := g.Snapshot()

	if after.Frame != before.Frame {
		t.Errorf("Frame advanced while paused: %d -> %d", before.Frame, after.Frame)
	}
	if after.Agent(sim.Agent1).Pos != before.Agent(sim.Agent1).Pos {
		t.Error("agent moved while paused")
	}

	res = g.Step(pause)
	if res.State.Paused {
		t.Error("expected second pause to resume")
	}
	if g.Tick() != 4 {
		t.Errorf("Tick() = %d, expected 4", g.Tick())
	}
}

func TestRestartResetsMatch(t *testing.T) {
	g := newTestGame(ModeMatch)
	stepN(g, 50)
	g.sim.Scoreboard().Increment(sim.Agent1)

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	res := g.Step(restart)

	if res.State.Score1 != 0 || res.State.Score2 != 0 {
		t.Errorf("score after restart = %d-%d, expected 0-0", res.State.Score1, res.State.Score2)
	}
	if g.Tick() != 0 {
		t.Errorf("Tick() = %d, expected 0", g.Tick())
	}
	if got := g.Snapshot().Agent(sim.Agent1).Pos; got != core.V(50, 150) {
		t.Errorf("agent1 Pos = %v, expected (50, 150)", got)
	}
}

func TestWinScoreEndsMatch(t *testing.T) {
	cfg := config.DefaultDuelConfig()
	cfg.Gameplay.WinScore = 2
	g := NewMode(ModeMatch, cfg)
	g.Reset(testRuntime())

	g.sim.Scoreboard().Increment(sim.Agent2)
	if res := g.Step(core.NewInputFrame()); res.State.GameOver {
		t.Fatal("game over after one hit, expected two")
	}

	g.sim.Scoreboard().Increment(sim.Agent2)
	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("expected game over")
	}
	if res.State.Winner != 2 {
		t.Errorf("Winner = %d, expected 2", res.State.Winner)
	}

	tick := g.Tick()
	stepN(g, 10)
	if g.Tick() != tick {
		t.Error("simulation advanced after game over")
	}
}

func TestEndlessNeverEnds(t *testing.T) {
	g := newTestGame(ModeEndless)
	for range 50 {
		g.sim.Scoreboard().Increment(sim.Agent1)
	}
	res := g.Step(core.NewInputFrame())

	if res.State.GameOver {
		t.Error("endless mode ended")
	}
	if res.State.WinScore != 0 {
		t.Errorf("WinScore = %d, expected 0", res.State.WinScore)
	}
}

func TestOnHitReportsEveryHit(t *testing.T) {
	cfg := config.DefaultDuelConfig()
	cfg.Agents.Agent1.FireRate = config.MinFireRateMs
	cfg.Agents.Agent2.FireRate = config.MinFireRateMs
	g := NewMode(ModeEndless, cfg)
	g.Reset(testRuntime())

	// Park both agents on the same row, 40 units apart.
	a1, a2 := g.sim.Agent(sim.Agent1), g.sim.Agent(sim.Agent2)
	a1.Pos, a1.Vel = core.V(50, 300), core.V(0, 0)
	a2.Pos, a2.Vel = core.V(90, 300), core.V(0, 0)

	var hits []sim.Hit
	g.OnHit(func(h sim.Hit) { hits = append(hits, h) })

	total := 0
	for range 200 {
		total += g.Step(core.NewInputFrame()).Hits
	}

	if len(hits) != 2 || total != 2 {
		t.Fatalf("hits = %d (StepResult total %d), expected 2", len(hits), total)
	}
	st := g.State()
	if st.Score1 != 1 || st.Score2 != 1 {
		t.Errorf("score = %d-%d, expected 1-1", st.Score1, st.Score2)
	}
	for _, h := range hits {
		if h.Target != h.Shooter.Opponent() {
			t.Errorf("hit %+v targets the shooter's own side", h)
		}
	}
}

func TestOnScoreFollowsScoreboard(t *testing.T) {
	cfg := config.DefaultDuelConfig()
	cfg.Gameplay.WinScore = 2
	g := NewMode(ModeMatch, cfg)

	var scores []sim.Score
	g.OnScore(func(s sim.Score) { scores = append(scores, s) })
	g.Reset(testRuntime())

	board := g.sim.Scoreboard()
	board.Increment(sim.Agent1)
	if g.State().GameOver {
		t.Fatal("game over after one hit, expected two")
	}
	board.Increment(sim.Agent2)
	board.Increment(sim.Agent2)
	board.Increment(sim.Agent1)

	if len(scores) != 4 {
		t.Fatalf("OnScore calls = %d, expected 4", len(scores))
	}
	if last := scores[3]; last.Agent1 != 2 || last.Agent2 != 2 {
		t.Errorf("last score = %+v, expected 2-2", last)
	}
	st := g.State()
	if !st.GameOver || st.Winner != 2 {
		t.Errorf("GameOver = %v, Winner = %d, expected agent 2 to keep the win", st.GameOver, st.Winner)
	}

	// A restart subscribes to the new scoreboard only.
	g.Reset(testRuntime())
	g.sim.Scoreboard().Increment(sim.Agent1)
	if len(scores) != 5 || scores[4].Agent1 != 1 {
		t.Errorf("after reset scores = %+v, expected a fresh 1-0", scores[4:])
	}
}

func TestPointerAtBouncesAgent(t *testing.T) {
	g := newTestGame(ModeMatch)

	if g.PointerAt(0, 0) {
		t.Error("PointerAt on the HUD should be ignored")
	}

	col, row, ok := ArenaToCell(core.V(50, 150), 82, 23, g.sim.Arena())
	if !ok {
		t.Fatal("agent1 start position not on screen")
	}
	if !g.PointerAt(col, row) {
		t.Fatal("PointerAt inside arena returned false")
	}
	if !g.Snapshot().Agent(sim.Agent1).Ascending {
		t.Error("agent1 should reverse after pointer contact")
	}
	if !g.Snapshot().Agent(sim.Agent2).Ascending {
		t.Error("agent2 should be unaffected by a distant pointer")
	}
}

func TestCellToArena(t *testing.T) {
	arena := sim.DefaultArena()
	tests := []struct {
		col, row int
		x, y     float64
		ok       bool
	}{
		{1, 2, 5, 15, true},
		{80, 21, 795, 585, true},
		{0, 2, 0, 0, false},
		{5, 1, 0, 0, false},
		{81, 10, 0, 0, false},
	}
	for _, tt := range tests {
		x, y, ok := CellToArena(tt.col, tt.row, 82, 23, arena)
		if ok != tt.ok || x != tt.x || y != tt.y {
			t.Errorf("CellToArena(%d, %d) = (%v, %v, %v), expected (%v, %v, %v)",
				tt.col, tt.row, x, y, ok, tt.x, tt.y, tt.ok)
		}
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(ModeMatch)
	screen := core.NewScreen(82, 23)
	g.Render(screen)

	hud := screen.Row(0)
	for _, want := range []string{"Agent 1 0", "0 Agent 2", "first to 10"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}

	col, row, _ := ArenaToCell(core.V(50, 150), 82, 23, g.sim.Arena())
	cell := screen.GetCell(col, row)
	if cell.Rune != CoreChar || cell.Color != core.ColorRed {
		t.Errorf("agent1 center = %q/%v, expected %q/red", cell.Rune, cell.Color, CoreChar)
	}
	if screen.GetCell(col-1, row).Rune != BodyChar {
		t.Errorf("agent1 body cell = %q, expected %q", screen.GetCell(col-1, row).Rune, BodyChar)
	}
	if screen.Get(0, 1) != '┌' {
		t.Errorf("arena corner = %q, expected '┌'", screen.Get(0, 1))
	}
}

func TestRenderBanners(t *testing.T) {
	g := newTestGame(ModeMatch)
	screen := core.NewScreen(82, 23)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused screen missing banner")
	}

	Render(screen, g.Snapshot(), core.GameState{GameOver: true, Winner: 1, Score1: 10, Score2: 4})
	if !strings.Contains(screen.String(), "Agent 1 WINS!") {
		t.Error("game over screen missing winner")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(ModeMatch)
	screen := core.NewScreen(10, 3)
	g.Render(screen)
	if !strings.HasPrefix(screen.Row(0), "Terminal") {
		t.Errorf("Row(0) = %q, expected size warning", screen.Row(0))
	}
}
