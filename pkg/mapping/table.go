package mapping

import (
	"fmt"
	"regexp"

	"github.com/evanschultz/medcase-visualizer/pkg/models"
)

// Mapping is a compiled term pattern and the highlights it produces
type Mapping struct {
	Source     string
	Pattern    *regexp.Regexp
	Highlights []models.OrganHighlight
}

// Table is an ordered list of term mappings. Order is authoring order and
// only matters as a stable iteration order.
type Table struct {
	mappings []Mapping
}

// NewTable compiles mappings loaded from configuration
func NewTable(defs []models.TermMapping) (*Table, error) {
	t := &Table{}
	for i, def := range defs {
		if err := t.Register(def.Pattern, def.Highlights...); err != nil {
			return nil, fmt.Errorf("mapping %d: %w", i, err)
		}
	}
	return t, nil
}

// Register compiles pattern case-insensitively and appends it to the table
func (t *Table) Register(pattern string, highlights ...models.OrganHighlight) error {
	if pattern == "" {
		return fmt.Errorf("empty term pattern")
	}
	compiled, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return fmt.Errorf("compiling term pattern %q: %w", pattern, err)
	}
	t.mappings = append(t.mappings, Mapping{
		Source:     pattern,
		Pattern:    compiled,
		Highlights: append([]models.OrganHighlight(nil), highlights...),
	})
	return nil
}

// MustRegister is Register for static tables; it panics on a bad pattern
func (t *Table) MustRegister(pattern string, highlights ...models.OrganHighlight) {
	if err := t.Register(pattern, highlights...); err != nil {
		panic(err)
	}
}

// Mappings returns the table entries in order
func (t *Table) Mappings() []Mapping {
	return t.mappings
}

// Len returns the number of mappings
func (t *Table) Len() int {
	return len(t.mappings)
}

// OrganNames returns every organ name referenced by the table, first-seen order
func (t *Table) OrganNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range t.mappings {
		for _, h := range m.Highlights {
			if !seen[h.OrganName] {
				seen[h.OrganName] = true
				names = append(names, h.OrganName)
			}
		}
	}
	return names
}

// Definitions converts the table back to its serializable form
func (t *Table) Definitions() []models.TermMapping {
	defs := make([]models.TermMapping, len(t.mappings))
	for i, m := range t.mappings {
		defs[i] = models.TermMapping{
			Pattern:    m.Source,
			Highlights: append([]models.OrganHighlight(nil), m.Highlights...),
		}
	}
	return defs
}
