package mapping

import "github.com/evanschultz/medcase-visualizer/pkg/models"

// Extract returns the highlights of every mapping whose pattern occurs in
// text, in table order. A region never appears twice with the same color.
func (t *Table) Extract(text string) []models.OrganHighlight {
	var highlights []models.OrganHighlight
	added := make(map[models.HighlightKey]bool)

	for _, m := range t.mappings {
		if !m.Pattern.MatchString(text) {
			continue
		}
		for _, h := range m.Highlights {
			if added[h.Key()] {
				continue
			}
			added[h.Key()] = true
			highlights = append(highlights, h)
		}
	}

	return highlights
}
