package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-duel/internal/core"
)

// DuelKeyMap defines key bindings for the duel screen.
type DuelKeyMap struct {
	Pause      key.Binding
	Restart    key.Binding
	NextAgent  key.Binding
	Agent1     key.Binding
	Agent2     key.Binding
	FireFaster key.Binding
	FireSlower key.Binding
	SpeedUp    key.Binding
	SpeedDown  key.Binding
	CycleColor key.Binding
	Back       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to show in the mini help view.
func (k DuelKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextAgent, k.FireFaster, k.SpeedUp, k.CycleColor, k.Pause, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k DuelKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextAgent, k.Agent1, k.Agent2},
		{k.FireFaster, k.FireSlower, k.SpeedUp, k.SpeedDown, k.CycleColor},
		{k.Pause, k.Restart, k.Back, k.Help, k.Quit},
	}
}

// DefaultDuelKeyMap returns the default key bindings.
func DefaultDuelKeyMap() DuelKeyMap {
	return DuelKeyMap{
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		NextAgent: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch agent"),
		),
		Agent1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "agent 1"),
		),
		Agent2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "agent 2"),
		),
		FireFaster: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/→", "fire rate"),
		),
		FireSlower: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "fire slower"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓", "speed"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "slower"),
		),
		CycleColor: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "spell color"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a duel action.
// Back has no core action and maps to ActionNone.
func (k DuelKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.NextAgent):
		return core.ActionSelectNext
	case key.Matches(msg, k.Agent1):
		return core.ActionSelectAgent1
	case key.Matches(msg, k.Agent2):
		return core.ActionSelectAgent2
	case key.Matches(msg, k.FireFaster):
		return core.ActionFireRateDown
	case key.Matches(msg, k.FireSlower):
		return core.ActionFireRateUp
	case key.Matches(msg, k.SpeedUp):
		return core.ActionSpeedUp
	case key.Matches(msg, k.SpeedDown):
		return core.ActionSpeedDown
	case key.Matches(msg, k.CycleColor):
		return core.ActionCycleColor
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}
	return MenuActionNone
}
