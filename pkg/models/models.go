package models

// OrganHighlight describes how one body-region mesh should be marked.
type OrganHighlight struct {
	OrganName   string `json:"organ_name" yaml:"organ_name" mapstructure:"organ_name"` // must match a mesh name
	Color       string `json:"color" yaml:"color" mapstructure:"color"`                // hex, e.g. "#FF6347"
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
}

// HighlightKey is the identity used to deduplicate highlights.
type HighlightKey struct {
	OrganName string
	Color     string
}

func (k HighlightKey) String() string {
	return k.OrganName + "-" + k.Color
}

func (h OrganHighlight) Key() HighlightKey {
	return HighlightKey{OrganName: h.OrganName, Color: h.Color}
}

// Label returns the description, falling back to the organ name.
func (h OrganHighlight) Label() string {
	if h.Description != "" {
		return h.Description
	}
	return h.OrganName
}

// TermMapping associates a case-insensitive pattern with the regions it marks.
type TermMapping struct {
	Pattern    string           `json:"pattern" yaml:"pattern" mapstructure:"pattern"`
	Highlights []OrganHighlight `json:"highlights" yaml:"highlights" mapstructure:"highlights"`
}

// Case is one clinical case: free-text notes and a discharge summary.
type Case struct {
	Title   string   `json:"title" yaml:"title"`
	Notes   string   `json:"notes" yaml:"notes"`
	Summary []string `json:"summary" yaml:"summary"`
}
