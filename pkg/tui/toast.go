package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Toast is a transient message that clears itself after a delay. Showing a
// new message supersedes the pending clear of the previous one.
type Toast struct {
	text     string
	id       int
	duration time.Duration
}

func NewToast(duration time.Duration) Toast {
	return Toast{duration: duration}
}

// Show displays text and schedules its removal
func (t *Toast) Show(text string) tea.Cmd {
	t.id++
	t.text = text
	id := t.id
	return tea.Tick(t.duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// Expire clears the toast if id belongs to the message on screen
func (t *Toast) Expire(id int) bool {
	if id != t.id || t.text == "" {
		return false
	}
	t.text = ""
	return true
}

func (t Toast) Text() string {
	return t.text
}
