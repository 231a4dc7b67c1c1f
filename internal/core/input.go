package core

// Action represents a semantic action, abstracted from physical key presses.
// This allows the game and the settings panel to work with high-level intents
// rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionPause               // P - pause/unpause the duel
	ActionRestart             // R - restart the duel
	ActionQuit                // Q, Ctrl+C - exit
	ActionSelectNext          // Tab - select the other agent's settings
	ActionSelectAgent1        // 1
	ActionSelectAgent2        // 2
	ActionFireRateDown        // Left - cast faster
	ActionFireRateUp          // Right - cast slower
	ActionSpeedUp             // Up - move faster
	ActionSpeedDown           // Down - move slower
	ActionCycleColor          // C - next spell color
	ActionHelp                // ? - toggle full help
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionSelectNext:
		return "SelectNext"
	case ActionSelectAgent1:
		return "SelectAgent1"
	case ActionSelectAgent2:
		return "SelectAgent2"
	case ActionFireRateDown:
		return "FireRateDown"
	case ActionFireRateUp:
		return "FireRateUp"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSpeedDown:
		return "SpeedDown"
	case ActionCycleColor:
		return "CycleColor"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// IsSetting reports whether the action edits agent parameters.
// Setting actions are handled by the presentation layer and cause a restart.
func (a Action) IsSetting() bool {
	switch a {
	case ActionFireRateDown, ActionFireRateUp, ActionSpeedUp, ActionSpeedDown, ActionCycleColor:
		return true
	}
	return false
}

// InputFrame represents the actions triggered during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
