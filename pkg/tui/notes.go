package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/evanschultz/medcase-visualizer/pkg/annotate"
)

// NotesView shows the clinical notes and emphasises the current target.
// A new Target (by phrase or sequence) scrolls the match into the middle
// of the panel.
type NotesView struct {
	notes    string
	viewport viewport.Model
	focused  bool

	target  Target
	located annotate.Located
	reveals int
}

func NewNotesView(notes string) *NotesView {
	nv := &NotesView{
		notes:    notes,
		viewport: viewport.New(0, 0),
		located:  annotate.Locate(notes, ""),
	}
	return nv
}

// SetTarget locates phrase in the notes and reveals it when the target changed
func (nv *NotesView) SetTarget(t Target) bool {
	if t == nv.target {
		return false
	}
	nv.target = t
	nv.located = annotate.Locate(nv.notes, t.Phrase)
	nv.render()
	if nv.located.Found {
		nv.reveal()
	}
	return nv.located.Found
}

// Located returns the current split of the notes around the target
func (nv *NotesView) Located() annotate.Located {
	return nv.located
}

// Reveals counts how many times the view scrolled to a match
func (nv *NotesView) Reveals() int {
	return nv.reveals
}

func (nv *NotesView) YOffset() int {
	return nv.viewport.YOffset
}

func (nv *NotesView) SetSize(width, height int) {
	nv.viewport.Width = width
	nv.viewport.Height = height
	nv.render()
	if nv.located.Found {
		nv.center()
	}
}

func (nv *NotesView) Focus() tea.Cmd {
	nv.focused = true
	return nil
}

func (nv *NotesView) Blur() tea.Cmd {
	nv.focused = false
	return nil
}

func (nv *NotesView) Focused() bool {
	return nv.focused
}

func (nv *NotesView) Update(msg tea.Msg) tea.Cmd {
	if !nv.focused {
		return nil
	}
	var cmd tea.Cmd
	nv.viewport, cmd = nv.viewport.Update(msg)
	return cmd
}

func (nv *NotesView) View() string {
	return nv.viewport.View()
}

func (nv *NotesView) render() {
	l := nv.located
	content := l.Before
	if l.Found {
		content += foundStyle.Render(l.Match) + l.After
	}
	nv.viewport.SetContent(nv.wrap(content))
}

func (nv *NotesView) reveal() {
	nv.center()
	nv.reveals++
}

func (nv *NotesView) center() {
	line := strings.Count(nv.wrap(nv.located.Before), "\n")
	nv.viewport.SetYOffset(max(line-nv.viewport.Height/2, 0))
}

func (nv *NotesView) wrap(s string) string {
	if nv.viewport.Width <= 0 {
		return s
	}
	return wordwrap.String(s, nv.viewport.Width)
}
