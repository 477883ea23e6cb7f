package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/evanschultz/medcase-visualizer/pkg/mapping"
	"github.com/evanschultz/medcase-visualizer/pkg/models"
	"github.com/evanschultz/medcase-visualizer/pkg/scene"
)

const DefaultToastDuration = 5 * time.Second

const (
	panelNotes = iota
	panelSummary
	panelBody
)

// Options configures a Model
type Options struct {
	Case  models.Case
	Table *mapping.Table

	// Scene is painted with the highlights found in the notes. When SceneErr
	// is set the body panel shows the error instead.
	Scene     scene.Scene
	SceneErr  error
	ModelPath string

	EmissiveIntensity float64
	ToastDuration     time.Duration
	Logger            *zap.Logger
}

// Model is the application shell: notes, summary and body panels sharing
// one highlight list and one target.
type Model struct {
	log *zap.Logger

	title       string
	highlights  []models.OrganHighlight
	phrases     []string
	highlighter *scene.Highlighter
	result      scene.Result

	target Target

	notes   *NotesView
	summary *SummaryView
	body    *BodyView
	focus   *FocusManager

	toast       Toast
	diagnostics *Diagnostics
	help        help.Model

	width  int
	height int
}

// NewModel derives highlights and clickable phrases once and paints the scene
func NewModel(opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	table := opts.Table
	if table == nil {
		table = mapping.DefaultTable()
	}
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = DefaultToastDuration
	}
	source := opts.ModelPath
	if source == "" {
		source = "virtual body"
	}

	m := &Model{
		log:         log,
		title:       opts.Case.Title,
		highlights:  table.Extract(opts.Case.Notes),
		phrases:     table.ClickablePhrases(opts.Case.Summary),
		highlighter: scene.NewHighlighter(log, opts.EmissiveIntensity),
		toast:       NewToast(opts.ToastDuration),
		diagnostics: NewDiagnostics(),
		help:        help.New(),
	}

	if opts.SceneErr != nil {
		log.Error("loading model", zap.String("path", opts.ModelPath), zap.Error(opts.SceneErr))
		m.diagnostics.Add("MODEL_LOAD", opts.SceneErr.Error(), LevelError)
	} else if opts.Scene != nil {
		m.result = m.highlighter.Apply(opts.Scene, m.highlights)
		for _, hl := range m.result.Missing {
			m.diagnostics.Add("MESH_NOT_FOUND", hl.OrganName, LevelWarning)
		}
		for _, hl := range m.result.Invalid {
			m.diagnostics.Add("BAD_COLOR", fmt.Sprintf("%s %s", hl.OrganName, hl.Color), LevelWarning)
		}
	}

	m.notes = NewNotesView(opts.Case.Notes)
	m.summary = NewSummaryView(opts.Case.Summary, m.phrases)
	m.body = NewBodyView(source, opts.Scene, m.result, opts.SceneErr)
	m.focus = NewFocusManager(m.notes, m.summary, m.body)
	m.focus.SetFocus(panelSummary)

	log.Info("case loaded",
		zap.String("title", m.title),
		zap.Int("highlights", len(m.highlights)),
		zap.Int("phrases", len(m.phrases)),
		zap.Int("applied", len(m.result.Applied)))

	return m
}

func (m *Model) Target() Target                      { return m.target }
func (m *Model) Highlights() []models.OrganHighlight { return m.highlights }
func (m *Model) Phrases() []string                   { return m.phrases }
func (m *Model) Result() scene.Result                { return m.result }
func (m *Model) Toast() string                       { return m.toast.Text() }
func (m *Model) Notes() *NotesView                   { return m.notes }
func (m *Model) Summary() *SummaryView               { return m.summary }
func (m *Model) Body() *BodyView                     { return m.body }
func (m *Model) Diagnostics() *Diagnostics           { return m.diagnostics }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.NextPanel):
			return m, m.focus.Next()
		case key.Matches(msg, keys.PrevPanel):
			return m, m.focus.Previous()
		case key.Matches(msg, keys.Diagnostics):
			m.diagnostics.Toggle()
			m.layout()
			return m, nil
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.layout()
			return m, nil
		}
		return m, m.updateFocused(msg)

	case PhraseSelectedMsg:
		m.selectPhrase(msg.Phrase)
		return m, nil

	case MeshClickedMsg:
		id := m.highlighter.Identify(msg.Name)
		m.log.Debug("mesh clicked", zap.String("mesh", msg.Name), zap.Bool("matched", id.Matched))
		return m, m.toast.Show(id.Message())

	case toastExpiredMsg:
		m.toast.Expire(msg.id)
		return m, nil
	}

	return m, m.updateFocused(msg)
}

// selectPhrase makes phrase the notes target. Every call is a new target.
func (m *Model) selectPhrase(phrase string) {
	m.target = Target{Phrase: phrase, Seq: m.target.Seq + 1}
	if !m.notes.SetTarget(m.target) {
		m.log.Warn("phrase not found in notes", zap.String("phrase", phrase))
		m.diagnostics.Add("PHRASE_NOT_FOUND", phrase, LevelWarning)
	}
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	switch m.focus.Current() {
	case panelNotes:
		return m.notes.Update(msg)
	case panelSummary:
		return m.summary.Update(msg)
	case panelBody:
		return m.body.Update(msg)
	}
	return nil
}

func (m *Model) widths() (notes, summary, body int) {
	notes = m.width * 2 / 5
	summary = m.width * 7 / 20
	body = m.width - notes - summary
	return notes, summary, body
}

func (m *Model) panelHeight() int {
	h := m.height - 4 // title, toast, help, borders
	if m.help.ShowAll {
		h -= 4
	}
	if m.diagnostics.Visible() {
		h -= m.height / 3
	}
	return max(h-2, 3)
}

func (m *Model) layout() {
	notes, summary, _ := m.widths()
	m.help.Width = m.width
	// border and padding take four columns, the panel title one row
	m.notes.SetSize(max(notes-4, 1), m.panelHeight()-1)
	m.summary.SetWidth(max(summary-4, 1))
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	notesW, summaryW, bodyW := m.widths()
	height := m.panelHeight()

	panel := func(title, content string, width int, focused bool) string {
		return panelStyle(focused).
			Width(max(width-2, 1)).
			Height(height).
			MaxHeight(height + 2).
			Render(panelTitleStyle.Render(title) + "\n" + content)
	}

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		panel("Clinical Notes", m.notes.View(), notesW, m.notes.Focused()),
		panel("Discharge Summary", m.summary.View(), summaryW, m.summary.Focused()),
		panel("Body Regions", m.body.View(bodyW), bodyW, m.body.Focused()),
	)

	title := m.title
	if n := m.diagnostics.Count(); n > 0 {
		title = fmt.Sprintf("%s  [%d diagnostics]", title, n)
	}

	sections := []string{titleStyle.Width(m.width).Render(title), panels}
	if text := m.toast.Text(); text != "" {
		sections = append(sections, toastStyle.Render(text))
	} else {
		sections = append(sections, "")
	}
	if m.diagnostics.Visible() {
		sections = append(sections, m.diagnostics.View(m.width, m.height/3))
	}
	sections = append(sections, helpStyle.Render(m.help.View(keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
