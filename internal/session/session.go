// Package session drives one duel game on its own goroutine: it ticks the
// game at the configured rate, applies pointer and key input between frames,
// and publishes rendered-state frames for the presentation layer.
//
// Reconfiguration is a reset: Restart tears down the running loop, waits for
// it to exit and starts a fresh one with the new game.
package session

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/games/duel/sim"
	"github.com/vovakirdan/tui-duel/internal/registry"
)

// Game is a registry game that also accepts pointer input, exposes
// snapshots and reports score changes. *duel.Game implements it.
type Game interface {
	registry.Game
	PointerAt(col, row int) bool
	Snapshot() sim.Snapshot
	OnScore(fn func(sim.Score))
}

// Frame is published after every tick.
type Frame struct {
	RunID    string
	Tick     uint64
	Snapshot sim.Snapshot
	State    core.GameState
}

var (
	ErrRunning = errors.New("session: already running")
	ErrStopped = errors.New("session: stopped")
)

const inputBuffer = 32

type pointerEvent struct {
	col, row int
}

// run is one lifetime of the frame loop. Its channels belong to it alone, so
// a torn-down run never sees input meant for its successor.
type run struct {
	id      string
	game    Game
	cancel  context.CancelFunc
	done    chan struct{}
	pointer chan pointerEvent
	input   chan core.Action
}

// Session owns the frame loop for a single viewer.
type Session struct {
	logger *log.Logger
	frames chan Frame

	mu      sync.Mutex
	parent  context.Context
	current *run
	stopped bool
}

// New creates an idle session. A nil logger discards output.
func New(logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		logger: logger.WithPrefix("duel-session"),
		frames: make(chan Frame, 1),
	}
}

// Frames returns the channel frames are published on. It is closed by Stop.
func (s *Session) Frames() <-chan Frame {
	return s.frames
}

// Start resets game for runtime and begins ticking it.
func (s *Session) Start(ctx context.Context, game Game, runtime core.RuntimeConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return ErrStopped
	}
	if s.current != nil {
		return ErrRunning
	}
	s.parent = ctx
	s.startLocked(game, runtime)
	return nil
}

// Restart stops the running loop, waits for it to exit and starts game.
// Score, positions and cadence are not carried over.
func (s *Session) Restart(game Game, runtime core.RuntimeConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return ErrStopped
	}
	if s.parent == nil {
		return errors.New("session: not started")
	}
	s.stopLocked()
	s.drainFrames()
	s.startLocked(game, runtime)
	return nil
}

// Stop ends the running loop and closes the frames channel. Safe to call
// more than once.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.stopLocked()
	s.stopped = true
	close(s.frames)
}

// RunID returns the identifier of the current run, or "" when idle.
func (s *Session) RunID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	return s.current.id
}

// Pointer queues a pointer position in terminal cells for the next frame.
// Non-blocking; events are dropped when the buffer is full.
func (s *Session) Pointer(col, row int) {
	s.mu.Lock()
	r := s.current
	s.mu.Unlock()
	if r == nil {
		return
	}

	select {
	case r.pointer <- pointerEvent{col: col, row: row}:
	default:
	}
}

// Send queues an action for the next tick. Non-blocking.
func (s *Session) Send(a core.Action) {
	s.mu.Lock()
	r := s.current
	s.mu.Unlock()
	if r == nil {
		return
	}

	select {
	case r.input <- a:
	default:
	}
}

func (s *Session) startLocked(game Game, runtime core.RuntimeConfig) {
	ctx, cancel := context.WithCancel(s.parent)
	r := &run{
		id:      uuid.NewString(),
		game:    game,
		cancel:  cancel,
		done:    make(chan struct{}),
		pointer: make(chan pointerEvent, inputBuffer),
		input:   make(chan core.Action, inputBuffer),
	}

	logger := s.logger.With("run", r.id[:8])
	game.OnScore(func(sc sim.Score) {
		logger.Debug("score", "score1", sc.Agent1, "score2", sc.Agent2, "leader", sc.Leader())
	})
	game.Reset(runtime)

	s.current = r
	logger.Info("run started", "game", game.ID(), "fps", runtime.TickRate,
		"screen", [2]int{runtime.ScreenW, runtime.ScreenH})

	go s.loop(ctx, r, runtime.FrameDuration(), logger)
}

func (s *Session) stopLocked() {
	if s.current == nil {
		return
	}
	s.current.cancel()
	<-s.current.done
	s.current = nil
}

func (s *Session) drainFrames() {
	for {
		select {
		case <-s.frames:
		default:
			return
		}
	}
}

func (s *Session) loop(ctx context.Context, r *run, tick time.Duration, logger *log.Logger) {
	defer close(r.done)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	in := core.NewInputFrame()
	var ticks uint64
	over := false

	s.publish(Frame{RunID: r.id, Snapshot: r.game.Snapshot(), State: r.game.State()})

	for {
		select {
		case <-ctx.Done():
			logger.Debug("run stopped", "ticks", ticks)
			return

		case p := <-r.pointer:
			r.game.PointerAt(p.col, p.row)

		case a := <-r.input:
			in.Set(a)

		case <-ticker.C:
			res := r.game.Step(in)
			in.Clear()
			ticks++

			if res.State.GameOver && !over {
				logger.Info("match over", "winner", res.State.Winner,
					"score1", res.State.Score1, "score2", res.State.Score2)
			}
			over = res.State.GameOver

			s.publish(Frame{
				RunID:    r.id,
				Tick:     ticks,
				Snapshot: r.game.Snapshot(),
				State:    res.State,
			})
		}
	}
}

// publish sends a frame, replacing any frame the consumer has not read yet.
func (s *Session) publish(f Frame) {
	select {
	case s.frames <- f:
		return
	default:
	}

	select {
	case <-s.frames:
	default:
	}

	select {
	case s.frames <- f:
	default:
	}
}
