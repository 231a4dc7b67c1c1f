// Package tui provides the Bubble Tea integration for the duel: the
// interactive model, key bindings, settings panel, renderer and SSH server.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-duel/internal/session"
)

// FrameMsg carries a frame published by the session loop.
type FrameMsg struct {
	Frame  session.Frame
	source <-chan session.Frame
}

// framesClosedMsg is sent once the session's frame channel is closed.
type framesClosedMsg struct {
	source <-chan session.Frame
}

// waitForFrame returns a command that blocks until the next frame.
func waitForFrame(frames <-chan session.Frame) tea.Cmd {
	return func() tea.Msg {
		f, ok := <-frames
		if !ok {
			return framesClosedMsg{source: frames}
		}
		return FrameMsg{Frame: f, source: frames}
	}
}
