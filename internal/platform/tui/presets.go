package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-duel/internal/storage"
)

// PresetStore is the subset of storage.Store the browser needs.
type PresetStore interface {
	Presets() ([]storage.Preset, error)
	DeletePreset(name string) error
}

// PresetsKeyMap defines the key bindings for the preset browser.
type PresetsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to show in the mini help view.
func (k PresetsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Delete, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k PresetsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultPresetsKeyMap returns the default key bindings.
func DefaultPresetsKeyMap() PresetsKeyMap {
	return PresetsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PresetsModel is the Bubble Tea model for browsing saved presets.
type PresetsModel struct {
	store    PresetStore
	presets  []storage.Preset
	table    table.Model
	help     help.Model
	keys     PresetsKeyMap
	width    int
	height   int
	status   string
	quitting bool
}

// NewPresetsModel creates a preset browser and loads the presets.
func NewPresetsModel(store PresetStore, width, height int) PresetsModel {
	m := PresetsModel{
		store:  store,
		help:   help.New(),
		keys:   DefaultPresetsKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *PresetsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 16},
		{Title: "Fire rate", Width: 10},
		{Title: "Speed", Width: 6},
		{Title: "Spell", Width: 12},
		{Title: "Body", Width: 12},
		{Title: "Updated", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-6)), // Leave room for title, status and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load refreshes the preset list from the store.
func (m *PresetsModel) load() {
	if m.store == nil {
		m.presets = nil
		m.status = "preset store unavailable"
		m.updateTableRows()
		return
	}

	presets, err := m.store.Presets()
	if err != nil {
		m.presets = nil
		m.status = err.Error()
	} else {
		m.presets = presets
	}
	m.updateTableRows()
}

func (m *PresetsModel) updateTableRows() {
	rows := make([]table.Row, len(m.presets))
	for i, p := range m.presets {
		rows[i] = table.Row{
			p.Name,
			fmt.Sprintf("%dms", p.FireRate),
			fmt.Sprintf("%d", p.MoveSpeed),
			p.SpellColor,
			p.BodyColor,
			p.UpdatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(0, len(rows)-1))
	}
}

// Init initializes the browser.
func (m PresetsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m PresetsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Delete):
			m.deleteSelected()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *PresetsModel) deleteSelected() {
	if m.store == nil || len(m.presets) == 0 {
		return
	}
	name := m.presets[m.table.Cursor()].Name
	if err := m.store.DeletePreset(name); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("deleted %q", name)
	m.load()
}

// View renders the browser.
func (m PresetsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("AGENT PRESETS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.status != "" {
		b.WriteString(dimStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m PresetsModel) renderTableContent() string {
	if len(m.presets) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return emptyStyle.Render("No presets saved yet.\nUse `duel presets save` to add one.")
	}
	return m.table.View()
}

// RunPresets runs the preset browser.
func RunPresets(store PresetStore, width, height int) error {
	p := tea.NewProgram(
		NewPresetsModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
