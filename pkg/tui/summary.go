package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/evanschultz/medcase-visualizer/pkg/annotate"
)

// SummaryView lists the discharge summary points with their clickable
// phrases marked. The cursor walks the clickable segments in reading order.
type SummaryView struct {
	points  [][]annotate.Segment
	targets []string // clickable segment text, reading order
	cursor  int
	width   int
	focused bool
}

func NewSummaryView(points []string, phrases []string) *SummaryView {
	sv := &SummaryView{}
	for _, p := range points {
		segments := annotate.Annotate(p, phrases)
		sv.points = append(sv.points, segments)
		sv.targets = append(sv.targets, annotate.Clickable(segments)...)
	}
	return sv
}

// Targets returns the clickable runs in reading order
func (sv *SummaryView) Targets() []string {
	return sv.targets
}

// Selected returns the phrase under the cursor, or "" if there is none
func (sv *SummaryView) Selected() string {
	if len(sv.targets) == 0 {
		return ""
	}
	return sv.targets[sv.cursor]
}

func (sv *SummaryView) SetWidth(width int) {
	sv.width = width
}

func (sv *SummaryView) Focus() tea.Cmd {
	sv.focused = true
	return nil
}

func (sv *SummaryView) Blur() tea.Cmd {
	sv.focused = false
	return nil
}

func (sv *SummaryView) Focused() bool {
	return sv.focused
}

func (sv *SummaryView) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !sv.focused || len(sv.targets) == 0 {
		return nil
	}

	switch {
	case key.Matches(km, keys.Next, keys.Down):
		sv.cursor = (sv.cursor + 1) % len(sv.targets)
	case key.Matches(km, keys.Prev, keys.Up):
		sv.cursor = (sv.cursor - 1 + len(sv.targets)) % len(sv.targets)
	case key.Matches(km, keys.Select):
		phrase := sv.Selected()
		return func() tea.Msg {
			return PhraseSelectedMsg{Phrase: phrase}
		}
	}
	return nil
}

func (sv *SummaryView) View() string {
	var b strings.Builder
	n := 0
	for i, segments := range sv.points {
		if i > 0 {
			b.WriteString("\n")
		}
		var line strings.Builder
		line.WriteString("• ")
		for _, seg := range segments {
			if !seg.Clickable {
				line.WriteString(seg.Text)
				continue
			}
			style := phraseStyle
			if sv.focused && n == sv.cursor {
				style = selectedPhraseStyle
			}
			line.WriteString(style.Render(seg.Text))
			n++
		}
		if sv.width > 0 {
			b.WriteString(wordwrap.String(line.String(), sv.width))
		} else {
			b.WriteString(line.String())
		}
	}
	return b.String()
}
