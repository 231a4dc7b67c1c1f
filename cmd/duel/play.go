package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/platform/tui"
	"github.com/vovakirdan/tui-duel/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a duel",
	Long: `Start an interactive duel. Without a mode, a menu lets you pick one.

Controls:
  Mouse        - Touch an agent to reverse it
  Tab / 1 / 2  - Select which agent the sliders edit
  Left/Right   - Fire rate -/+ 100ms (100..2000)
  Up/Down      - Move speed +/- 1 (1..10)
  C            - Cycle spell color
  P/Space      - Pause
  R            - Restart
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Every settings change restarts the duel with fresh scores.

Examples:
  duel play
  duel play duel_endless
  duel play --agent1-preset rapid --agent2-preset tank
  duel play --config ./my-duel.yaml --log-file duel.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addPresetFlags(playCmd)
}

func runPlay(_ *cobra.Command, args []string) {
	if len(args) == 1 && !registry.Exists(args[0]) {
		fail("unknown mode %q\nRun 'duel list' to see available modes.", args[0])
	}

	// The alt screen owns stdout, so logs go to --log-file or nowhere.
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	cfg, err := loadDuelConfig(logger)
	if err != nil {
		fail("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		Logger: logger,
	}

	ctx := context.Background()
	if len(args) == 0 {
		err = tui.RunApp(ctx, opts)
	} else {
		opts.GameID = args[0]
		err = tui.Run(ctx, opts)
	}
	if err != nil {
		fail("%v", err)
	}
}
