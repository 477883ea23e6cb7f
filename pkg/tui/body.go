package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/evanschultz/medcase-visualizer/pkg/models"
	"github.com/evanschultz/medcase-visualizer/pkg/scene"
)

type bodyRow struct {
	name       string
	highlights []models.OrganHighlight
}

// BodyView lists the meshes of the scene with the color each one was
// painted. Selecting a row stands in for clicking the mesh.
type BodyView struct {
	source  string
	rows    []bodyRow
	err     error
	cursor  int
	focused bool
}

// NewBodyView builds the list from a scene after highlights were applied.
// A non-nil err replaces the list with an error panel.
func NewBodyView(source string, s scene.Scene, result scene.Result, err error) *BodyView {
	bv := &BodyView{source: source, err: err}
	if err != nil || s == nil {
		return bv
	}
	for _, m := range scene.Meshes(s) {
		bv.rows = append(bv.rows, bodyRow{
			name:       m.Name(),
			highlights: result.ForMesh(m.Key()),
		})
	}
	return bv
}

func (bv *BodyView) Err() error {
	return bv.err
}

// Selected returns the mesh name under the cursor
func (bv *BodyView) Selected() string {
	if len(bv.rows) == 0 {
		return ""
	}
	return bv.rows[bv.cursor].name
}

func (bv *BodyView) Focus() tea.Cmd {
	bv.focused = true
	return nil
}

func (bv *BodyView) Blur() tea.Cmd {
	bv.focused = false
	return nil
}

func (bv *BodyView) Focused() bool {
	return bv.focused
}

func (bv *BodyView) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !bv.focused || len(bv.rows) == 0 {
		return nil
	}

	switch {
	case key.Matches(km, keys.Down):
		bv.cursor = min(bv.cursor+1, len(bv.rows)-1)
	case key.Matches(km, keys.Up):
		bv.cursor = max(bv.cursor-1, 0)
	case key.Matches(km, keys.Select):
		name := bv.Selected()
		return func() tea.Msg {
			return MeshClickedMsg{Name: name}
		}
	}
	return nil
}

func (bv *BodyView) View(width int) string {
	if bv.err != nil {
		return errorPanelStyle.Width(max(width-4, 10)).Render(
			lipgloss.NewStyle().Bold(true).Render("Error Loading 3D Model") + "\n" +
				bv.err.Error() + "\n" +
				"Model path: " + bv.source)
	}

	var b strings.Builder
	b.WriteString(dimStyle.Render(bv.source))
	if len(bv.rows) == 0 {
		b.WriteString("\n" + dimStyle.Render("No meshes in scene."))
	}
	for i, row := range bv.rows {
		line := fmt.Sprintf("%s %s", swatch(row.highlights), row.name)
		if bv.focused && i == bv.cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString("\n" + line)
	}
	return b.String()
}

func swatch(highlights []models.OrganHighlight) string {
	if len(highlights) == 0 {
		return dimStyle.Render("··")
	}
	// the last painted color is the one left on the mesh
	color := highlights[len(highlights)-1].Color
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}
