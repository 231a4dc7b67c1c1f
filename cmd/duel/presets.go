package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/games/duel/sim"
	"github.com/vovakirdan/tui-duel/internal/platform/tui"
	"github.com/vovakirdan/tui-duel/internal/storage"
)

var (
	flagPresetFrom       string
	flagPresetFireRate   int
	flagPresetMoveSpeed  int
	flagPresetSpellColor string
	flagPresetBodyColor  string
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage saved agent presets",
	Long: `Presets store an agent's fire rate, move speed and colors under a name.
Apply them with --agent1-preset / --agent2-preset on play, simulate and serve.`,
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all saved presets",
	Args:  cobra.NoArgs,
	Run:   runPresetsList,
}

var presetsSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Create or update a preset",
	Long: `Save a preset. Values start from the configured agent (--from) and are
overridden by any explicit flag. Out-of-range values are clamped.

Examples:
  duel presets save rapid --fire-rate 200 --move-speed 6
  duel presets save mirror --from agent2
  duel presets save neon --spell-color "#00ffff" --body-color magenta`,
	Args: cobra.ExactArgs(1),
	Run:  runPresetsSave,
}

var presetsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a preset",
	Args:  cobra.ExactArgs(1),
	Run:   runPresetsDelete,
}

var presetsBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse presets in an interactive table",
	Args:  cobra.NoArgs,
	Run:   runPresetsBrowse,
}

func init() {
	f := presetsSaveCmd.Flags()
	f.StringVar(&flagPresetFrom, "from", "agent1", "Start from this configured agent: agent1 or agent2")
	f.IntVar(&flagPresetFireRate, "fire-rate", 0, "Milliseconds between casts")
	f.IntVar(&flagPresetMoveSpeed, "move-speed", 0, "Vertical units per frame")
	f.StringVar(&flagPresetSpellColor, "spell-color", "", "Projectile color (name or #hex)")
	f.StringVar(&flagPresetBodyColor, "body-color", "", "Body color (name or #hex)")

	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsSaveCmd)
	presetsCmd.AddCommand(presetsDeleteCmd)
	presetsCmd.AddCommand(presetsBrowseCmd)
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening presets: %v", err)
	}
	return store
}

func runPresetsList(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	presets, err := store.Presets()
	if err != nil {
		fail("%v", err)
	}
	if len(presets) == 0 {
		fmt.Println("No presets saved yet.")
		fmt.Println("Run 'duel presets save <name>' to create one.")
		return
	}

	maxNameLen := 4 // "Name" header
	for _, p := range presets {
		maxNameLen = max(maxNameLen, len(p.Name))
	}

	fmt.Printf("  %-*s  %6s  %5s  %-14s  %-14s\n", maxNameLen, "Name", "Fire", "Speed", "Spell", "Body")
	fmt.Printf("  %-*s  %6s  %5s  %-14s  %-14s\n", maxNameLen, "----", "----", "-----", "-----", "----")
	for _, p := range presets {
		fmt.Printf("  %-*s  %4dms  %5d  %-14s  %-14s\n",
			maxNameLen, p.Name, p.FireRate, p.MoveSpeed, p.SpellColor, p.BodyColor)
	}
}

func runPresetsSave(cmd *cobra.Command, args []string) {
	var from sim.AgentID
	switch flagPresetFrom {
	case sim.Agent1.String():
		from = sim.Agent1
	case sim.Agent2.String():
		from = sim.Agent2
	default:
		fail("--from must be agent1 or agent2, got %q", flagPresetFrom)
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

	agent := cfg.Agent(from)
	flags := cmd.Flags()
	if flags.Changed("fire-rate") {
		agent.FireRate = flagPresetFireRate
	}
	if flags.Changed("move-speed") {
		agent.MoveSpeed = flagPresetMoveSpeed
	}
	if flags.Changed("spell-color") {
		if _, err := core.ParseColor(flagPresetSpellColor); err != nil {
			fail("--spell-color: %v", err)
		}
		agent.SpellColor = flagPresetSpellColor
	}
	if flags.Changed("body-color") {
		if _, err := core.ParseColor(flagPresetBodyColor); err != nil {
			fail("--body-color: %v", err)
		}
		agent.BodyColor = flagPresetBodyColor
	}

	cfg.SetAgent(from, agent)
	cfg.Clamp()
	agent = cfg.Agent(from)

	store := openStore()
	defer store.Close()

	if err := store.SavePreset(storage.PresetFrom(args[0], agent)); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Saved preset %q: fire rate %dms, move speed %d, spell %s, body %s\n",
		args[0], agent.FireRate, agent.MoveSpeed, agent.SpellColor, agent.BodyColor)
}

func runPresetsDelete(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	if err := store.DeletePreset(args[0]); err != nil {
		if errors.Is(err, storage.ErrPresetNotFound) {
			fail("no preset named %q", args[0])
		}
		fail("%v", err)
	}
	fmt.Printf("Deleted preset %q\n", args[0])
}

func runPresetsBrowse(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	if err := tui.RunPresets(store, width, height); err != nil {
		fail("%v", err)
	}
}
