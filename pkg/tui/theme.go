package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent   = lipgloss.Color("#1A237E")
	colorBorder   = lipgloss.Color("240")
	colorFocused  = lipgloss.Color("62")
	colorDim      = lipgloss.Color("241")
	colorPhraseFg = lipgloss.Color("#007BFF")
	colorPhraseBg = lipgloss.Color("#FFF3CD")
	colorFound    = lipgloss.Color("#FFFF00")
	colorError    = lipgloss.Color("#C80000")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorAccent).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFocused)

	focusedPanel = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorFocused).
			Padding(0, 1)

	unfocusedPanel = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	// clickable summary phrase
	phraseStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(colorPhraseFg).
			Background(colorPhraseBg)

	selectedPhraseStyle = phraseStyle.Reverse(true)

	// located phrase in the notes
	foundStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(colorFound)

	errorPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorError).
			Padding(0, 1)

	toastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#333333")).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().Reverse(true)
	dimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	helpStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

func panelStyle(focused bool) lipgloss.Style {
	if focused {
		return focusedPanel
	}
	return unfocusedPanel
}
