package mapping

import (
	"reflect"
	"strings"
	"testing"

	"github.com/evanschultz/medcase-visualizer/pkg/models"
)

func TestExtractNecroticGut(t *testing.T) {
	table := DefaultTable()

	got := table.Extract("He also had a history of necrotic gut requiring intervention.")
	want := []models.OrganHighlight{
		{OrganName: "06_Abdomen", Color: "#8B0000", Description: "Necrotic Gut (Abdomen Area)"},
		{OrganName: "07_Lower_abdomen", Color: "#8B0000", Description: "Necrotic Gut (Lower Abdomen Area)"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract() = %+v, want %+v", got, want)
	}
}

func TestExtract(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		name      string
		text      string
		wantKeys  []string
		wantEmpty bool
	}{
		{
			name:      "no clinical terms",
			text:      "Patient ate breakfast and went for a walk.",
			wantEmpty: true,
		},
		{
			name:     "case insensitive",
			text:     "Complains of HEADACHE since Monday",
			wantKeys: []string{"01_Scalp-#FFEB3B", "SA_01_FOREHEAD-#FFEB3B", "SA_02_TEMPLES-#FFEB3B"},
		},
		{
			name:     "alternation second branch",
			text:     "findings consistent with cecal volvulus",
			wantKeys: []string{"06_Abdomen-#FFA500", "07_Lower_abdomen-#FFA500"},
		},
		{
			name: "table order across mappings",
			text: "back pain after right nephrectomy",
			wantKeys: []string{
				"21_Lower_back-#A9A9A9",
				"20_Back-#4CAF50",
				"21_Lower_back-#4CAF50",
			},
		},
		{
			name:     "repeated term contributes once",
			text:     "leg pain, then more leg pain and a leg injury",
			wantKeys: []string{"15_Thighs-#00BCD4", "17_Legs-#00BCD4", "16_Knees-#00BCD4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Extract(tt.text)
			if tt.wantEmpty {
				if len(got) != 0 {
					t.Fatalf("expected no highlights, got %+v", got)
				}
				return
			}
			var keys []string
			for _, h := range got {
				keys = append(keys, h.Key().String())
			}
			if !reflect.DeepEqual(keys, tt.wantKeys) {
				t.Errorf("keys = %v, want %v", keys, tt.wantKeys)
			}
		})
	}
}

func TestExtractNoDuplicatePairs(t *testing.T) {
	table := &Table{}
	shared := models.OrganHighlight{OrganName: "06_Abdomen", Color: "#FF0000"}
	table.MustRegister(`pain`, shared)
	table.MustRegister(`ache`, shared, models.OrganHighlight{OrganName: "06_Abdomen", Color: "#00FF00"})

	got := table.Extract("pain and ache")
	if len(got) != 2 {
		t.Fatalf("expected 2 highlights, got %d: %+v", len(got), got)
	}

	seen := make(map[models.HighlightKey]bool)
	for _, h := range got {
		if seen[h.Key()] {
			t.Errorf("duplicate highlight %s", h.Key())
		}
		seen[h.Key()] = true
	}
}

func TestExtractKeepsPairsThatOnlyLookAlike(t *testing.T) {
	table := &Table{}
	table.MustRegister(`pain`,
		models.OrganHighlight{OrganName: "left-arm", Color: "#FF0000"},
		models.OrganHighlight{OrganName: "left", Color: "arm-#FF0000"},
	)

	got := table.Extract("pain")
	if len(got) != 2 {
		t.Fatalf("expected both highlights, got %+v", got)
	}
	if got[0].Key().String() != got[1].Key().String() {
		t.Fatalf("pairs should render the same, got %s and %s", got[0].Key(), got[1].Key())
	}
}

func TestExtractMatchImpliesHighlight(t *testing.T) {
	table := DefaultTable()
	text := strings.Join([]string{
		"abdominal pain", "large bowel obstruction", "necrotic gut", "respiratory distress",
		"right nephrectomy", "headache", "face trauma", "arm injury", "leg injury", "back pain",
	}, "; ")

	got := make(map[models.HighlightKey]bool)
	for _, h := range table.Extract(text) {
		got[h.Key()] = true
	}

	for _, m := range table.Mappings() {
		if !m.Pattern.MatchString(text) {
			t.Fatalf("pattern %q should match the probe text", m.Source)
		}
		for _, h := range m.Highlights {
			if !got[h.Key()] {
				t.Errorf("highlight %s missing for pattern %q", h.Key(), m.Source)
			}
		}
	}
}

func TestClickablePhrases(t *testing.T) {
	table := DefaultTable()
	points := []string{
		"Patient, a Age over 90 year old man, presented with sharp and worsening abdominal pain and no bowel movement for 2-3 days.",
		"CT scan showed large bowel obstruction/cecal volvulus.",
		"Underwent exploratory laparotomy, right colectomy, and revision of ileal conduit on 2122-2-13.",
		"Intraoperatively, patient was found to have necrotic gut and underwent right colectomy.",
		"Postoperatively, patient had several complications, including coagulopathy, hypoglycemia, and respiratory distress, requiring intubation and readmission to the SICU.",
		"Discharge medications included pain medications, anticoagulants.",
	}

	got := table.ClickablePhrases(points)
	want := []string{
		"abdominal pain",
		"large bowel obstruction",
		"cecal volvulus",
		"necrotic gut",
		"respiratory distress",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ClickablePhrases() = %q, want %q", got, want)
	}
}

func TestClickablePhrasesPreservesCasingAndDedupes(t *testing.T) {
	table := DefaultTable()
	got := table.ClickablePhrases([]string{
		"Abdominal Pain on admission.",
		"Abdominal Pain resolved.",
		"abdominal pain recurred.",
	})
	want := []string{"Abdominal Pain", "abdominal pain"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ClickablePhrases() = %q, want %q", got, want)
	}
}

func TestClickablePhrasesOrganNamesWholeWord(t *testing.T) {
	table := &Table{}
	table.MustRegister(`wheezing`, models.OrganHighlight{OrganName: "Chest", Color: "#1E90FF"})

	got := table.ClickablePhrases([]string{
		"The chest was clear on auscultation.",
		"Chestnut allergy noted.",
	})
	want := []string{"chest"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ClickablePhrases() = %q, want %q", got, want)
	}
}

func TestNewTableRejectsBadPattern(t *testing.T) {
	_, err := NewTable([]models.TermMapping{
		{Pattern: "ok"},
		{Pattern: "broken("},
	})
	if err == nil {
		t.Fatal("expected an error for an invalid pattern")
	}
	if !strings.Contains(err.Error(), "mapping 1") {
		t.Errorf("error should name the failing mapping, got %v", err)
	}
}

func TestDefinitionsRoundTrip(t *testing.T) {
	table := DefaultTable()
	rebuilt, err := NewTable(table.Definitions())
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	if rebuilt.Len() != 10 {
		t.Fatalf("expected 10 mappings, got %d", rebuilt.Len())
	}
	if !reflect.DeepEqual(rebuilt.OrganNames(), table.OrganNames()) {
		t.Errorf("organ names differ after rebuild")
	}
}
