// duel is a terminal spell duel: two agents glide along opposite walls and
// cast projectiles at each other while the pointer bounces them around.
//
// Usage:
//
//	duel list                 - List available modes
//	duel play [mode]          - Play a mode (menu when omitted)
//	duel simulate             - Run a headless duel and print the result
//	duel serve                - Start SSH server for remote play
//	duel presets <command>    - Manage saved agent presets
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--db <path>         - Set preset database path (default: ~/.duel/presets.db)
//	--config <path>     - Use a custom duel YAML
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/tui-duel/internal/games/duel"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

// Environment variables that supply flag defaults.
const (
	envDB       = "DUEL_DB"
	envConfig   = "DUEL_CONFIG"
	envLogLevel = "DUEL_LOG_LEVEL"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duel",
	Short: "Spell Duel - two agents, one arena, your cursor in the way",
	Long: `Spell Duel is a terminal simulation of two agents that move along
opposite walls and cast projectiles at each other. Every hit scores a point.
Moving the mouse over an agent reverses its direction.

Available commands:
  list      - Show available modes
  play      - Play a mode interactively
  simulate  - Run a duel headless and print the outcome
  serve     - Start SSH server for remote play
  presets   - Manage saved agent presets

Examples:
  duel play
  duel play duel_endless --agent1-preset rapid
  duel simulate --duration 2m
  duel serve --ssh :2222
  duel presets save rapid --fire-rate 200 --move-speed 6`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnv,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.duel/presets.db", "Path to presets database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom duel config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(presetsCmd)
}

// loadEnv reads .env from the working directory and applies environment
// defaults to flags the user did not set explicitly.
func loadEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading .env: %w", err)
	}

	flags := cmd.Flags()
	for name, env := range map[string]string{
		"db":        envDB,
		"config":    envConfig,
		"log-level": envLogLevel,
	} {
		v, ok := os.LookupEnv(env)
		if !ok || flags.Changed(name) {
			continue
		}
		if err := flags.Set(name, v); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return nil
}
