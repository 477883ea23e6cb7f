package annotate

import "regexp"

// Located is text split around the first occurrence of a target phrase
type Located struct {
	Before string
	Match  string
	After  string
	Found  bool
}

// Locate finds the first case-insensitive occurrence of phrase in text.
// Match keeps the casing of text. An empty or absent phrase leaves the whole
// text in Before.
func Locate(text, phrase string) Located {
	if phrase == "" {
		return Located{Before: text}
	}

	loc := regexp.MustCompile("(?i)" + regexp.QuoteMeta(phrase)).FindStringIndex(text)
	if loc == nil {
		return Located{Before: text}
	}

	return Located{
		Before: text[:loc[0]],
		Match:  text[loc[0]:loc[1]],
		After:  text[loc[1]:],
		Found:  true,
	}
}

// Text reassembles the located parts
func (l Located) Text() string {
	return l.Before + l.Match + l.After
}
