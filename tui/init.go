package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init starts the first load and, for remote search, the result listener.
func (b *statefulBubble) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, b.startLoading(), b.load()}

	if b.remote != nil {
		cmds = append(cmds, b.waitForSearch())
	}

	return tea.Batch(cmds...)
}
