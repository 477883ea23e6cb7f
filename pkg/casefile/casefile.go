// Package casefile loads the clinical case shown by the visualizer.
package casefile

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/evanschultz/medcase-visualizer/pkg/models"
)

const DefaultTitle = "Medical Case Visualizer"

//go:embed notes.txt
var defaultNotes string

//go:embed summary.txt
var defaultSummary string

// Default returns the bundled example case
func Default() models.Case {
	return models.Case{
		Title:   DefaultTitle,
		Notes:   defaultNotes,
		Summary: ParseSummary(defaultSummary),
	}
}

// Load builds a case from the default one, replacing the notes and/or the
// summary with file contents when a path is given.
func Load(title, notesPath, summaryPath string) (models.Case, error) {
	c := Default()
	if title != "" {
		c.Title = title
	}

	if notesPath != "" {
		data, err := os.ReadFile(notesPath)
		if err != nil {
			return models.Case{}, fmt.Errorf("reading notes %s: %w", notesPath, err)
		}
		c.Notes = string(data)
	}

	if summaryPath != "" {
		data, err := os.ReadFile(summaryPath)
		if err != nil {
			return models.Case{}, fmt.Errorf("reading summary %s: %w", summaryPath, err)
		}
		c.Summary = ParseSummary(string(data))
		if len(c.Summary) == 0 {
			return models.Case{}, fmt.Errorf("summary %s has no points", summaryPath)
		}
	}

	return c, nil
}

// ParseSummary splits a summary into points: one per non-blank line, with
// a leading "-", "*" or "•" bullet removed.
func ParseSummary(content string) []string {
	var points []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		for _, bullet := range []string{"-", "*", "•"} {
			if strings.HasPrefix(line, bullet) {
				line = strings.TrimSpace(strings.TrimPrefix(line, bullet))
				break
			}
		}
		if line != "" {
			points = append(points, line)
		}
	}
	return points
}
