package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// AppModel manages the full flow: mode menu -> duel -> menu.
// This is the top-level model for SSH sessions and for `play` without a mode.
type AppModel struct {
	ctx      context.Context
	opts     Options
	menu     MenuModel
	duel     *Model
	inDuel   bool
	quitting bool
}

// NewAppModel creates the menu-driven model. opts.GameID is chosen in the menu.
func NewAppModel(ctx context.Context, opts Options) AppModel {
	opts.AllowBack = true
	return AppModel{
		ctx:  ctx,
		opts: opts,
		menu: NewMenuModel(opts.Runtime),
	}
}

// Init initializes the menu.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	if m.inDuel && m.duel != nil {
		return m.updateDuel(msg)
	}
	return m.updateMenu(msg)
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		m.opts.GameID = selected.GameID
		d := NewModel(m.ctx, m.opts)
		m.duel = &d
		m.inDuel = true
		return m, d.Init()
	}

	return m, cmd
}

func (m AppModel) updateDuel(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.duel.Update(msg)
	if d, ok := next.(Model); ok {
		m.duel = &d
	}

	if m.duel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.duel.BackToMenu() {
		m.opts.Config = m.duel.Config() // Keep slider edits for the next duel
		m.duel = nil
		m.inDuel = false
		m.menu = NewMenuModel(m.opts.Runtime)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inDuel && m.duel != nil {
		return m.duel.View()
	}
	return m.menu.View()
}

// Stop ends any running duel session.
func (m AppModel) Stop() {
	if m.duel != nil {
		m.duel.session.Stop()
	}
}

// RunApp starts the menu-driven program.
func RunApp(ctx context.Context, opts Options) error {
	p := tea.NewProgram(
		NewAppModel(ctx, opts),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	final, err := p.Run()
	if m, ok := final.(AppModel); ok {
		m.Stop()
	}
	return err
}
