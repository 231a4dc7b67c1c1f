package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/games/duel"
	"github.com/vovakirdan/tui-duel/internal/games/duel/sim"
	"github.com/vovakirdan/tui-duel/internal/registry"
	"github.com/vovakirdan/tui-duel/internal/session"
)

// panelRows is the number of rows below the arena: settings table and help.
const panelRows = settingsTableHeight + 2

// Options configures a duel model.
type Options struct {
	GameID  string // Registry id; empty means duel.IDMatch
	Config  config.DuelConfig
	Runtime core.RuntimeConfig // ScreenW/ScreenH are the full terminal size
	Logger  *log.Logger

	// AllowBack lets esc/b end the model without quitting the program.
	AllowBack bool
}

// Model is the Bubble Tea model for an interactive duel. The simulation runs
// on the session goroutine; the model only renders published frames and
// forwards input.
type Model struct {
	ctx      context.Context
	opts     Options
	cfg      config.DuelConfig
	selected sim.AgentID
	runtime  core.RuntimeConfig
	session  *session.Session
	screen   *core.Screen
	frame    session.Frame
	hasFrame bool
	keys     DuelKeyMap
	help     help.Model
	table    table.Model
	logger   *log.Logger
	err      error
	quitting bool
	back     bool
}

// NewModel creates a duel model. The session starts in Init.
func NewModel(ctx context.Context, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	opts.Config.Clamp()

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Runtime.ScreenW

	m := Model{
		ctx:      ctx,
		opts:     opts,
		cfg:      opts.Config,
		selected: sim.Agent1,
		runtime:  arenaRuntime(opts.Runtime),
		session:  session.New(logger),
		keys:     DefaultDuelKeyMap(),
		help:     h,
		table:    newSettingsTable(),
		logger:   logger,
	}
	m.screen = core.NewScreen(m.runtime.ScreenW, m.runtime.ScreenH)
	m.refreshTable()
	return m
}

// arenaRuntime reserves the bottom rows of the terminal for the panel.
func arenaRuntime(rt core.RuntimeConfig) core.RuntimeConfig {
	rt.ScreenH = max(0, rt.ScreenH-panelRows)
	return rt
}

// newGame builds the selected mode from the registry with the current
// settings.
func (m Model) newGame() (session.Game, error) {
	id := m.opts.GameID
	if id == "" {
		id = duel.IDMatch
	}
	g, err := registry.Create(id, m.cfg)
	if err != nil {
		return nil, err
	}
	sg, ok := g.(session.Game)
	if !ok {
		return nil, fmt.Errorf("mode %q does not support interactive play", id)
	}
	return sg, nil
}

// Init starts the session loop and waits for its first frame.
func (m Model) Init() tea.Cmd {
	game, err := m.newGame()
	if err == nil {
		err = m.session.Start(m.ctx, game, m.runtime)
	}
	if err != nil {
		m.logger.Error("could not start session", "error", err)
		return tea.Quit
	}
	return waitForFrame(m.session.Frames())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.source != m.session.Frames() {
			return m, nil // From a session this model no longer owns
		}
		m.frame = msg.Frame
		m.hasFrame = true
		m.refreshTable()
		return m, waitForFrame(m.session.Frames())

	case framesClosedMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.opts.AllowBack && key.Matches(msg, m.keys.Back) {
		m.session.Stop()
		m.back = true
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionQuit:
		m.session.Stop()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case action == core.ActionPause, action == core.ActionRestart:
		m.session.Send(action)

	case action == core.ActionSelectNext, action == core.ActionSelectAgent1, action == core.ActionSelectAgent2:
		m.selected = SelectAgent(m.selected, action)
		m.refreshTable()

	case action.IsSetting():
		cfg, changed := ApplySetting(m.cfg, m.selected, action)
		if changed {
			m.cfg = cfg
			m.restart("setting changed", "agent", m.selected, "action", action)
		}
	}

	return m, nil
}

// handleMouse forwards pointer positions above the settings panel to the
// session and reports whether it did.
func (m Model) handleMouse(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionMotion && msg.Action != tea.MouseActionPress {
		return false
	}
	if msg.Y >= m.runtime.ScreenH {
		return false
	}
	m.session.Pointer(msg.X, msg.Y)
	return true
}

// handleResize processes window resize events. Resizing restarts the duel.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.runtime = arenaRuntime(m.opts.Runtime)
	m.screen.Resize(m.runtime.ScreenW, m.runtime.ScreenH)
	m.help.Width = msg.Width
	m.restart("resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// restart replaces the running duel with a fresh one using the current
// settings. Scores and positions are reset.
func (m *Model) restart(reason string, keyvals ...any) {
	m.hasFrame = false
	game, err := m.newGame()
	if err == nil {
		err = m.session.Restart(game, m.runtime)
	}
	if err != nil {
		m.err = err
		m.logger.Error("restart failed", "error", err)
		return
	}
	m.logger.Debug("restarted: "+reason, keyvals...)
	m.refreshTable()
}

func (m *Model) refreshTable() {
	m.table.SetRows(settingsRows(m.cfg, m.frame.Snapshot))
	m.table.SetCursor(int(m.selected) - 1)
}

// saveScreenshot saves the current arena to a text file.
func (m Model) saveScreenshot() {
	if !m.hasFrame {
		return
	}
	duel.Render(m.screen, m.frame.Snapshot, m.frame.State)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".duel", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("duel_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	if m.hasFrame {
		duel.Render(m.screen, m.frame.Snapshot, m.frame.State)
		b.WriteString(RenderScreen(m.screen))
	} else {
		b.WriteString("Starting duel...")
	}
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("error: %v", m.err))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

// Config returns the current (possibly edited) duel configuration.
func (m Model) Config() config.DuelConfig {
	return m.cfg
}

// Selected returns the agent whose settings the keys edit.
func (m Model) Selected() sim.AgentID {
	return m.selected
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program for an interactive duel.
func Run(ctx context.Context, opts Options) error {
	model := NewModel(ctx, opts)
	defer model.session.Stop()

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Pointer motion drives agent bounces
	)

	_, err := p.Run()
	return err
}
