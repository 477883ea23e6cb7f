package mapping

import "regexp"

// ClickablePhrases collects the literal substrings of points worth making
// interactive: every term pattern match, then every whole-word occurrence
// of an organ name the table references. Casing is preserved from the
// text; repeats collapse to the first occurrence.
func (t *Table) ClickablePhrases(points []string) []string {
	var phrases []string
	seen := make(map[string]bool)
	add := func(re *regexp.Regexp, text string) {
		for _, match := range re.FindAllString(text, -1) {
			if match == "" || seen[match] {
				continue
			}
			seen[match] = true
			phrases = append(phrases, match)
		}
	}

	for _, point := range points {
		for _, m := range t.mappings {
			add(m.Pattern, point)
		}
	}

	organPatterns := make([]*regexp.Regexp, 0)
	for _, name := range t.OrganNames() {
		organPatterns = append(organPatterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(name)+`\b`))
	}
	for _, point := range points {
		for _, re := range organPatterns {
			add(re, point)
		}
	}

	return phrases
}
