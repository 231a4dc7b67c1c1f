package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/games/duel/sim"
)

// settingsTableHeight covers the header, its border and one row per agent.
const settingsTableHeight = 4

// ApplySetting applies a setting action to the selected agent and clamps the
// result. changed is false when the action is not a setting or the value was
// already at its limit.
func ApplySetting(cfg config.DuelConfig, id sim.AgentID, action core.Action) (out config.DuelConfig, changed bool) {
	before := cfg.Agent(id)
	a := before

	switch action {
	case core.ActionFireRateDown:
		a.FireRate -= config.FireRateStep
	case core.ActionFireRateUp:
		a.FireRate += config.FireRateStep
	case core.ActionSpeedUp:
		a.MoveSpeed += config.MoveSpeedStep
	case core.ActionSpeedDown:
		a.MoveSpeed -= config.MoveSpeedStep
	case core.ActionCycleColor:
		c, err := core.ParseColor(a.SpellColor)
		if err != nil {
			c = core.ColorDefault
		}
		a.SpellColor = c.Next().String()
	default:
		return cfg, false
	}

	cfg.SetAgent(id, a)
	cfg.Clamp()
	return cfg, cfg.Agent(id) != before
}

// SelectAgent returns the agent selected after a selection action.
func SelectAgent(current sim.AgentID, action core.Action) sim.AgentID {
	switch action {
	case core.ActionSelectNext:
		return current.Opponent()
	case core.ActionSelectAgent1:
		return sim.Agent1
	case core.ActionSelectAgent2:
		return sim.Agent2
	}
	return current
}

// newSettingsTable creates the per-agent settings panel.
func newSettingsTable() table.Model {
	columns := []table.Column{
		{Title: "Agent", Width: 8},
		{Title: "Fire rate", Width: 10},
		{Title: "Speed", Width: 6},
		{Title: "Spell", Width: 14},
		{Title: "Body", Width: 14},
		{Title: "In flight", Width: 9},
		{Title: "Hits", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(settingsTableHeight),
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

// settingsRows builds one table row per agent from the configured values and
// the live snapshot.
func settingsRows(cfg config.DuelConfig, snap sim.Snapshot) []table.Row {
	rows := make([]table.Row, 0, len(sim.AgentIDs))
	for _, id := range sim.AgentIDs {
		a := cfg.Agent(id)
		rows = append(rows, table.Row{
			fmt.Sprintf("Agent %d", id),
			fmt.Sprintf("%dms", a.FireRate),
			fmt.Sprintf("%d", a.MoveSpeed),
			a.SpellColor,
			a.BodyColor,
			fmt.Sprintf("%d", snap.Agent(id).InFlight),
			fmt.Sprintf("%d", snap.Score.Of(id)),
		})
	}
	return rows
}
