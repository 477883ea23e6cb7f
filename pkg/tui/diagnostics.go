package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Level is the severity of a diagnostic message
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Diagnostic is one entry of the diagnostics panel
type Diagnostic struct {
	Timestamp time.Time
	Kind      string // MESH_NOT_FOUND, MODEL_LOAD, PHRASE_NOT_FOUND, ...
	Content   string
	Level     Level
}

// Diagnostics keeps the recent non-fatal problems of a session
type Diagnostics struct {
	messages    []Diagnostic
	maxMessages int
	visible     bool

	infoStyle    lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
}

func NewDiagnostics() *Diagnostics {
	return &Diagnostics{
		maxMessages:  50,
		infoStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		warningStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		errorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Add records a message, dropping the oldest beyond the limit
func (d *Diagnostics) Add(kind, content string, level Level) {
	d.messages = append(d.messages, Diagnostic{
		Timestamp: time.Now(),
		Kind:      kind,
		Content:   content,
		Level:     level,
	})
	if len(d.messages) > d.maxMessages {
		d.messages = d.messages[len(d.messages)-d.maxMessages:]
	}
}

func (d *Diagnostics) Messages() []Diagnostic {
	return d.messages
}

// Count returns the number of messages at or above warning level
func (d *Diagnostics) Count() int {
	n := 0
	for _, m := range d.messages {
		if m.Level != LevelInfo {
			n++
		}
	}
	return n
}

func (d *Diagnostics) Toggle() {
	d.visible = !d.visible
}

func (d *Diagnostics) Visible() bool {
	return d.visible
}

// View renders the last messages that fit in height lines
func (d *Diagnostics) View(width, height int) string {
	if !d.visible {
		return ""
	}

	rows := height - 3
	if rows < 1 {
		rows = 1
	}
	start := 0
	if len(d.messages) > rows {
		start = len(d.messages) - rows
	}

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Diagnostics"))
	if len(d.messages) == 0 {
		b.WriteString("\n" + dimStyle.Render("Nothing to report."))
	}
	for _, msg := range d.messages[start:] {
		b.WriteString("\n" + d.render(msg))
	}

	return unfocusedPanel.
		Width(max(width-4, 1)).
		Height(rows + 1).
		Render(b.String())
}

func (d *Diagnostics) render(msg Diagnostic) string {
	style := d.infoStyle
	switch msg.Level {
	case LevelWarning:
		style = d.warningStyle
	case LevelError:
		style = d.errorStyle
	}
	return fmt.Sprintf("[%s] %s: %s",
		msg.Timestamp.Format("15:04:05"),
		style.Render(msg.Kind),
		msg.Content)
}
