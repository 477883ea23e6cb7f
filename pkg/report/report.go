// Package report renders a case, its highlights and its clickable phrases
// as Markdown for the terminal or as a standalone HTML page.
package report

import (
	"fmt"
	"strings"

	"github.com/evanschultz/medcase-visualizer/pkg/mapping"
	"github.com/evanschultz/medcase-visualizer/pkg/models"
	"github.com/evanschultz/medcase-visualizer/pkg/scene"
)

// Report is the derived view of one case
type Report struct {
	Case       models.Case
	Highlights []models.OrganHighlight
	Phrases    []string

	// Scene is optional; when set the report lists where each highlight landed
	Scene *scene.Result
}

// New derives highlights from the notes and phrases from the summary
func New(c models.Case, table *mapping.Table) Report {
	return Report{
		Case:       c,
		Highlights: table.Extract(c.Notes),
		Phrases:    table.ClickablePhrases(c.Summary),
	}
}

// Markdown builds the report document
func (r Report) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.Case.Title)

	b.WriteString("## Highlighted Regions\n\n")
	if len(r.Highlights) == 0 {
		b.WriteString("_No mapped terms found in the notes._\n\n")
	} else {
		b.WriteString("| Region | Color | Finding |\n")
		b.WriteString("|---|---|---|\n")
		for _, hl := range r.Highlights {
			fmt.Fprintf(&b, "| %s | `%s` | %s |\n",
				escape(hl.OrganName), hl.Color, escape(hl.Description))
		}
		b.WriteString("\n")
	}

	if r.Scene != nil {
		b.WriteString("## Scene\n\n")
		for _, a := range r.Scene.Applied {
			fmt.Fprintf(&b, "- %s → mesh `%s`\n", a.Highlight.Label(), a.MeshName)
		}
		for _, hl := range r.Scene.Missing {
			fmt.Fprintf(&b, "- %s → **no mesh named like `%s`**\n", hl.Label(), hl.OrganName)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Discharge Summary\n\n")
	for _, point := range r.Case.Summary {
		fmt.Fprintf(&b, "- %s\n", emphasise(point, r.Phrases))
	}
	b.WriteString("\n")

	if len(r.Phrases) > 0 {
		b.WriteString("## Key Phrases\n\n")
		for _, p := range r.Phrases {
			fmt.Fprintf(&b, "- %s\n", p)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Clinical Notes\n\n```text\n")
	b.WriteString(strings.TrimRight(r.Case.Notes, "\n"))
	b.WriteString("\n```\n")

	return b.String()
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
