package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/games/duel"
	"github.com/vovakirdan/tui-duel/internal/games/duel/sim"
	"github.com/vovakirdan/tui-duel/internal/registry"
)

var (
	flagDuration time.Duration
	flagSimMode  string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a duel headless and print the outcome",
	Long: `Run a duel without a terminal UI, stepping simulated time as fast as
possible. No pointer input is applied, so agents only reverse at walls.

The run stops when the duration of simulated time has elapsed or, in match
mode, when an agent reaches the win score.

Examples:
  duel simulate
  duel simulate --duration 5m --mode duel_endless
  duel simulate --agent1-preset rapid --agent2-preset tank --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().DurationVar(&flagDuration, "duration", 30*time.Second, "Simulated time to run")
	simulateCmd.Flags().StringVar(&flagSimMode, "mode", duel.IDMatch, "Mode to simulate: duel or duel_endless")
	addPresetFlags(simulateCmd)
}

func runSimulate(_ *cobra.Command, _ []string) {
	if !registry.Exists(flagSimMode) {
		fail("unknown mode %q\nRun 'duel list' to see available modes.", flagSimMode)
	}
	if flagDuration <= 0 {
		fail("--duration must be positive, got %s", flagDuration)
	}

	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	cfg, err := loadDuelConfig(logger)
	if err != nil {
		fail("%v", err)
	}

	created, err := registry.Create(flagSimMode, cfg)
	if err != nil {
		fail("%v", err)
	}
	game, ok := created.(*duel.Game)
	if !ok {
		fail("mode %q cannot run headless", flagSimMode)
	}
	game.OnHit(func(h sim.Hit) {
		logger.Debug("hit",
			"shooter", h.Shooter,
			"target", h.Target,
			"score", fmt.Sprintf("%d:%d", h.Score.Agent1, h.Score.Agent2))
	})
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS})

	var spawned, pruned, hits int
	in := core.NewInputFrame()
	for game.Now() < flagDuration {
		res := game.Step(in)
		frame := game.LastFrame()
		spawned += len(frame.Spawned)
		pruned += frame.Pruned
		hits += res.Hits
		if res.State.GameOver {
			break
		}
	}

	snap := game.Snapshot()
	st := game.State()
	logger.Info("simulation finished", "frames", game.Tick(), "elapsed", game.Now())

	fmt.Printf("Mode:        %s\n", game.Title())
	fmt.Printf("Simulated:   %s (%d frames at %d fps)\n", game.Now(), game.Tick(), flagFPS)
	fmt.Printf("Score:       Agent 1 %d - %d Agent 2\n", st.Score1, st.Score2)
	fmt.Printf("Cast:        %d\n", spawned)
	fmt.Printf("Hits:        %d\n", hits)
	fmt.Printf("Left arena:  %d\n", pruned)
	fmt.Printf("In flight:   %d / %d\n", snap.Agent(sim.Agent1).InFlight, snap.Agent(sim.Agent2).InFlight)

	switch {
	case st.Winner != 0:
		fmt.Printf("Winner:      %s\n", sim.AgentID(st.Winner))
	case snap.Score.Leader() != 0:
		fmt.Printf("Leader:      %s\n", snap.Score.Leader())
	default:
		fmt.Println("Result:      draw")
	}
}
