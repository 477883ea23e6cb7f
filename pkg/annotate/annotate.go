// Package annotate splits display text into plain and interactive runs.
package annotate

import (
	"regexp"
	"sort"
	"strings"
)

// Segment is one run of text. Clickable runs carry the exact matched text.
type Segment struct {
	Text      string
	Clickable bool
}

// Annotate splits text into plain and clickable segments, one clickable
// segment per case-insensitive match of any phrase. Longer phrases win
// when several match at the same position. Join(Annotate(text, p)) == text.
func Annotate(text string, phrases []string) []Segment {
	re := phrasePattern(phrases)
	if re == nil {
		return []Segment{{Text: text}}
	}

	var segments []Segment
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			segments = append(segments, Segment{Text: text[last:loc[0]]})
		}
		segments = append(segments, Segment{Text: text[loc[0]:loc[1]], Clickable: true})
		last = loc[1]
	}
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:]})
	}

	if len(segments) == 0 {
		return []Segment{{Text: text}}
	}
	return segments
}

// Join concatenates segment text
func Join(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Clickable returns the text of the clickable segments in order
func Clickable(segments []Segment) []string {
	var out []string
	for _, s := range segments {
		if s.Clickable {
			out = append(out, s.Text)
		}
	}
	return out
}

// phrasePattern builds the longest-first alternation, or nil when there is
// nothing to match.
func phrasePattern(phrases []string) *regexp.Regexp {
	sorted := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if p != "" {
			sorted = append(sorted, p)
		}
	}
	if len(sorted) == 0 {
		return nil
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	quoted := make([]string, len(sorted))
	for i, p := range sorted {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile("(?i)" + strings.Join(quoted, "|"))
}
