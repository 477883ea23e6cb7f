package tui

import tea "github.com/charmbracelet/bubbletea"

// FocusableComponent represents a panel that can receive focus
type FocusableComponent interface {
	Focus() tea.Cmd
	Blur() tea.Cmd
	Focused() bool
}

// FocusManager cycles focus over the panels
type FocusManager struct {
	components []FocusableComponent
	current    int
}

// NewFocusManager focuses the first component
func NewFocusManager(components ...FocusableComponent) *FocusManager {
	fm := &FocusManager{components: components}
	if len(components) > 0 {
		components[0].Focus()
	}
	return fm
}

// Next moves focus to the next component
func (fm *FocusManager) Next() tea.Cmd {
	return fm.SetFocus((fm.current + 1) % max(len(fm.components), 1))
}

// Previous moves focus to the previous component
func (fm *FocusManager) Previous() tea.Cmd {
	n := len(fm.components)
	return fm.SetFocus((fm.current - 1 + n) % max(n, 1))
}

// SetFocus focuses the component at index
func (fm *FocusManager) SetFocus(index int) tea.Cmd {
	if index < 0 || index >= len(fm.components) {
		return nil
	}
	fm.components[fm.current].Blur()
	fm.current = index
	return fm.components[fm.current].Focus()
}

// Current returns the focused component index
func (fm *FocusManager) Current() int {
	return fm.current
}

// Focused returns the focused component
func (fm *FocusManager) Focused() FocusableComponent {
	if len(fm.components) == 0 {
		return nil
	}
	return fm.components[fm.current]
}
