package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/evanschultz/medcase-visualizer/pkg/casefile"
	"github.com/evanschultz/medcase-visualizer/pkg/mapping"
	"github.com/evanschultz/medcase-visualizer/pkg/scene"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	table := mapping.DefaultTable()
	m := NewModel(Options{
		Case:  casefile.Default(),
		Table: table,
		Scene: scene.NewVirtualBody(table.OrganNames()),
	})
	m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
	return m
}

func TestNewModelPaintsVirtualBody(t *testing.T) {
	m := newTestModel(t)

	if len(m.Highlights()) == 0 {
		t.Fatal("expected highlights from the default notes")
	}
	result := m.Result()
	if len(result.Applied) != len(m.Highlights()) {
		t.Errorf("applied %d of %d highlights", len(result.Applied), len(m.Highlights()))
	}
	if len(result.Missing) != 0 {
		t.Errorf("unexpected missing meshes: %v", result.Missing)
	}
	if m.Diagnostics().Count() != 0 {
		t.Errorf("expected no diagnostics, got %d", m.Diagnostics().Count())
	}
}

func TestSelectingSamePhraseTwiceRevealsTwice(t *testing.T) {
	m := newTestModel(t)

	m.Update(PhraseSelectedMsg{Phrase: "necrotic gut"})
	m.Update(PhraseSelectedMsg{Phrase: "necrotic gut"})

	if got := m.Target(); got.Phrase != "necrotic gut" || got.Seq != 2 {
		t.Errorf("target = %+v, want necrotic gut/2", got)
	}
	if got := m.Notes().Reveals(); got != 2 {
		t.Errorf("reveals = %d, want 2", got)
	}
	if !m.Notes().Located().Found {
		t.Error("expected phrase to be found in notes")
	}
}

func TestPhraseNotInNotesIsDiagnosed(t *testing.T) {
	m := newTestModel(t)

	m.Update(PhraseSelectedMsg{Phrase: "colectomy"})

	if m.Notes().Located().Found {
		t.Fatal("colectomy is not in the notes")
	}
	if m.Notes().Reveals() != 0 {
		t.Errorf("reveals = %d, want 0", m.Notes().Reveals())
	}
	msgs := m.Diagnostics().Messages()
	if len(msgs) != 1 || msgs[0].Kind != "PHRASE_NOT_FOUND" {
		t.Errorf("diagnostics = %+v", msgs)
	}
}

func TestSummaryEnterSelectsPhrase(t *testing.T) {
	m := newTestModel(t)

	if !m.Summary().Focused() {
		t.Fatal("summary should start focused")
	}
	first := m.Summary().Selected()
	if first == "" {
		t.Fatal("expected clickable phrases in summary")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	msg, ok := cmd().(PhraseSelectedMsg)
	if !ok {
		t.Fatalf("expected PhraseSelectedMsg, got %T", cmd())
	}
	if msg.Phrase != first {
		t.Errorf("phrase = %q, want %q", msg.Phrase, first)
	}

	m.Update(msg)
	if m.Target().Phrase != first {
		t.Errorf("target = %q, want %q", m.Target().Phrase, first)
	}
}

func TestSummaryCursorWraps(t *testing.T) {
	m := newTestModel(t)
	targets := m.Summary().Targets()

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Summary().Selected(); got != targets[len(targets)-1] {
		t.Errorf("selected = %q, want last target %q", got, targets[len(targets)-1])
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Summary().Selected(); got != targets[0] {
		t.Errorf("selected = %q, want %q", got, targets[0])
	}
}

func TestMeshClickShowsToast(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !m.Body().Focused() {
		t.Fatal("tab from summary should focus body")
	}

	_, cmd := m.Update(MeshClickedMsg{Name: "06_Abdomen"})
	if cmd == nil {
		t.Fatal("expected toast timer")
	}
	if m.Toast() != "Abdominal Pain (Abdomen)" {
		t.Errorf("toast = %q, want abdomen description", m.Toast())
	}

	m.Update(MeshClickedMsg{Name: "Skeleton"})
	if m.Toast() != "Clicked: Skeleton" {
		t.Errorf("toast = %q", m.Toast())
	}
}

func TestStaleToastExpiryIsIgnored(t *testing.T) {
	m := newTestModel(t)

	m.Update(MeshClickedMsg{Name: "first"})
	m.Update(MeshClickedMsg{Name: "second"})

	m.Update(toastExpiredMsg{id: 1})
	if m.Toast() != "Clicked: second" {
		t.Errorf("stale expiry cleared toast: %q", m.Toast())
	}

	m.Update(toastExpiredMsg{id: 2})
	if m.Toast() != "" {
		t.Errorf("toast = %q, want cleared", m.Toast())
	}
}

func TestSceneErrorRendersInline(t *testing.T) {
	m := NewModel(Options{
		Case:      casefile.Default(),
		SceneErr:  errors.New("open body.glb: no such file or directory"),
		ModelPath: "body.glb",
	})
	m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})

	view := m.View()
	if !strings.Contains(view, "Error Loading 3D Model") {
		t.Error("expected inline error panel")
	}
	if !strings.Contains(view, "Discharge Summary") {
		t.Error("rest of the UI should still render")
	}
	if len(m.Result().Applied) != 0 {
		t.Error("nothing should be applied without a scene")
	}
	if m.Diagnostics().Count() != 1 {
		t.Errorf("diagnostics = %d, want 1", m.Diagnostics().Count())
	}
}

func TestDiagnosticsToggle(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	if !m.Diagnostics().Visible() {
		t.Fatal("ctrl+l should show diagnostics")
	}
	if !strings.Contains(m.View(), "Diagnostics") {
		t.Error("expected diagnostics panel in view")
	}
}

func TestNotesRevealCentersMatch(t *testing.T) {
	var lines []string
	for i := 0; i < 100; i++ {
		line := fmt.Sprintf("line %d", i)
		if i == 80 {
			line += " target"
		}
		lines = append(lines, line)
	}

	nv := NewNotesView(strings.Join(lines, "\n"))
	nv.SetSize(60, 10)
	nv.SetTarget(Target{Phrase: "TARGET", Seq: 1})

	if got := nv.YOffset(); got != 75 {
		t.Errorf("YOffset = %d, want 75", got)
	}
	if got := nv.Located().Match; got != "target" {
		t.Errorf("match = %q, want original casing", got)
	}

	// same target again is not a change
	if nv.SetTarget(Target{Phrase: "TARGET", Seq: 1}); nv.Reveals() != 1 {
		t.Errorf("reveals = %d, want 1", nv.Reveals())
	}
}

func TestToastDuration(t *testing.T) {
	toast := NewToast(10 * time.Millisecond)
	cmd := toast.Show("hello")
	msg, ok := cmd().(toastExpiredMsg)
	if !ok {
		t.Fatalf("expected toastExpiredMsg")
	}
	if !toast.Expire(msg.id) {
		t.Error("expected current toast to expire")
	}
	if toast.Expire(msg.id) {
		t.Error("second expiry should be a no-op")
	}
}
