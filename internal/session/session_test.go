package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/games/duel"
	"github.com/vovakirdan/tui-duel/internal/games/duel/sim"
)

// fakeGame records what the loop does to it. Fields are only read by tests
// after the owning run has exited, or through published frames.
type fakeGame struct {
	resets   int
	steps    int
	pointers [][2]int
	paused   bool
	onScore  func(sim.Score)
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(*core.Screen) {}
func (g *fakeGame) Snapshot() sim.Snapshot { return sim.Snapshot{Frame: uint64(g.steps)} }
func (g *fakeGame) OnScore(fn func(sim.Score)) { g.onScore = fn }
func (g *fakeGame) PointerAt(col, row int) bool {
	g.pointers = append(g.pointers, [2]int{col, row})
	return true
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	g.steps++
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score1: len(g.pointers), Paused: g.paused}
}

func fastRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 82, ScreenH: 23, TickRate: 500}
}

func waitFrame(t *testing.T, s *Session, match func(Frame) bool) Frame {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case f, ok := <-s.Frames():
			if !ok {
				t.Fatal("frames channel closed")
			}
			if match(f) {
				return f
			}
		case <-timeout:
			t.Fatal("timed out waiting for frame")
		}
	}
}

func TestStartPublishesFrames(t *testing.T) {
	s := New(nil)
	defer s.Stop()

	if err := s.Start(context.Background(), &fakeGame{}, fastRuntime()); err != nil {
		t.Fatalf("Start error: %v", err)
	}

	f := waitFrame(t, s, func(f Frame) bool { return f.Tick >= 3 })
	if f.RunID == "" || f.RunID != s.RunID() {
		t.Errorf("frame RunID = %q, expected %q", f.RunID, s.RunID())
	}
}

func TestStartTwice(t *testing.T) {
	s := New(nil)
	defer s.Stop()

	if err := s.Start(context.Background(), &fakeGame{}, fastRuntime()); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	if err := s.Start(context.Background(), &fakeGame{}, fastRuntime()); !errors.Is(err, ErrRunning) {
		t.Errorf("second Start error = %v, expected %v", err, ErrRunning)
	}
}

func TestRestartBeforeStart(t *testing.T) {
	s := New(nil)
	defer s.Stop()

	if err := s.Restart(&fakeGame{}, fastRuntime()); err == nil {
		t.Error("expected error restarting an idle session")
	}
}

func TestSendAction(t *testing.T) {
	s := New(nil)
	defer s.Stop()
	_ = s.Start(context.Background(), &fakeGame{}, fastRuntime())

	s.Send(core.ActionPause)
	waitFrame(t, s, func(f Frame) bool { return f.State.Paused })
}

func TestPointerAppliedBetweenFrames(t *testing.T) {
	g := &fakeGame{}
	s := New(nil)
	_ = s.Start(context.Background(), g, fastRuntime())

	s.Pointer(3, 4)
	waitFrame(t, s, func(f Frame) bool { return f.State.Score1 == 1 })
	s.Stop()

	if len(g.pointers) != 1 || g.pointers[0] != [2]int{3, 4} {
		t.Errorf("pointers = %v, expected [[3 4]]", g.pointers)
	}
}

func TestRestartReplacesRun(t *testing.T) {
	first, second := &fakeGame{}, &fakeGame{}
	s := New(nil)
	defer s.Stop()

	_ = s.Start(context.Background(), first, fastRuntime())
	waitFrame(t, s, func(f Frame) bool { return f.Tick >= 2 })
	firstID := s.RunID()

	if err := s.Restart(second, fastRuntime()); err != nil {
		t.Fatalf("Restart error: %v", err)
	}
	secondID := s.RunID()
	if secondID == firstID {
		t.Fatal("Restart kept the old run id")
	}

	// The first run has exited, so its game is safe to inspect.
	steps := first.steps
	if first.resets != 1 {
		t.Errorf("first resets = %d, expected 1", first.resets)
	}

	f := waitFrame(t, s, func(f Frame) bool { return f.Tick >= 5 })
	if f.RunID != secondID {
		t.Errorf("frame RunID = %q, expected %q", f.RunID, secondID)
	}
	if first.steps != steps {
		t.Errorf("first game stepped after restart: %d -> %d", steps, first.steps)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	g := &fakeGame{}
	s := New(nil)
	_ = s.Start(context.Background(), g, fastRuntime())

	s.Stop()
	s.Stop()

	for range s.Frames() {
	}
	if s.RunID() != "" {
		t.Errorf("RunID() = %q after Stop, expected empty", s.RunID())
	}
	if err := s.Start(context.Background(), g, fastRuntime()); !errors.Is(err, ErrStopped) {
		t.Errorf("Start after Stop error = %v, expected %v", err, ErrStopped)
	}
	if err := s.Restart(g, fastRuntime()); !errors.Is(err, ErrStopped) {
		t.Errorf("Restart after Stop error = %v, expected %v", err, ErrStopped)
	}

	// Input after Stop is dropped.
	s.Pointer(1, 1)
	s.Send(core.ActionPause)
}

func TestParentCancelEndsLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := &fakeGame{}
	s := New(nil)
	_ = s.Start(ctx, g, fastRuntime())
	waitFrame(t, s, func(f Frame) bool { return f.Tick >= 1 })

	cancel()
	s.Stop()
	steps := g.steps
	time.Sleep(20 * time.Millisecond)
	if g.steps != steps {
		t.Error("game stepped after cancel")
	}
}

func TestDuelGameRuns(t *testing.T) {
	cfg := config.DefaultDuelConfig()
	cfg.Agents.Agent1.MoveSpeed = 5
	g := duel.NewMode(duel.ModeEndless, cfg)

	s := New(nil)
	defer s.Stop()
	_ = s.Start(context.Background(), g, fastRuntime())

	f := waitFrame(t, s, func(f Frame) bool { return f.Snapshot.Frame >= 10 })
	a1 := f.Snapshot.Agent(sim.Agent1)
	if a1.Pos.Y <= 150 {
		t.Errorf("agent1 Y = %v, expected movement below 150", a1.Pos.Y)
	}
	if f.State.GameOver {
		t.Error("endless duel reported game over")
	}
}

func TestStartSubscribesToScore(t *testing.T) {
	g := &fakeGame{}
	s := New(nil)
	_ = s.Start(context.Background(), g, fastRuntime())
	s.Stop()

	if g.onScore == nil {
		t.Fatal("Start did not register a score callback")
	}
	g.onScore(sim.Score{Agent1: 1}) // must not panic with the discard logger
}
