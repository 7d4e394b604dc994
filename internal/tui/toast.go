package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type toast struct {
	title       string
	description string
	destructive bool
	seq         int
}

// toastExpiredMsg clears the toast with the matching sequence number.
type toastExpiredMsg struct {
	seq int
}

func expireToastCmd(seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (t toast) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(t.title), t.description)
	if t.destructive {
		return toastDestructiveStyle.Render(body)
	}
	return toastStyle.Render(body)
}
