package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/games/duel/sim"
	"github.com/vovakirdan/tui-duel/internal/storage"
)

var (
	flagAgent1Preset string
	flagAgent2Preset string
)

// addPresetFlags registers the per-agent preset flags on cmd.
func addPresetFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagAgent1Preset, "agent1-preset", "", "Saved preset for agent 1")
	cmd.Flags().StringVar(&flagAgent2Preset, "agent2-preset", "", "Saved preset for agent 2")
}

// newLogger builds a logger that writes to --log-file when set and to
// fallback otherwise. The returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return logger, closer, nil
}

// loadDuelConfig loads the YAML config and applies any preset flags.
func loadDuelConfig(logger *log.Logger) (config.DuelConfig, error) {
	cfg, err := config.LoadDuel(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagAgent1Preset == "" && flagAgent2Preset == "" {
		return cfg, nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return cfg, err
	}
	defer store.Close()

	for id, name := range map[sim.AgentID]string{sim.Agent1: flagAgent1Preset, sim.Agent2: flagAgent2Preset} {
		if name == "" {
			continue
		}
		p, err := store.Preset(name)
		if err != nil {
			if errors.Is(err, storage.ErrPresetNotFound) {
				return cfg, fmt.Errorf("%s: no preset named %q (see 'duel presets list')", id, name)
			}
			return cfg, err
		}
		cfg.SetAgent(id, p.AgentConfig())
		logger.Debug("applied preset", "agent", id, "preset", name)
	}
	cfg.Clamp()
	return cfg, nil
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
