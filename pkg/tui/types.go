package tui

// Target is the phrase the notes view should locate. Seq changes on every
// selection, so picking the same phrase twice is still a new target.
type Target struct {
	Phrase string
	Seq    uint64
}

// Messages

// PhraseSelectedMsg is sent when a clickable summary phrase is activated
type PhraseSelectedMsg struct {
	Phrase string
}

// MeshClickedMsg is sent when a body region is activated
type MeshClickedMsg struct {
	Name string
}

type toastExpiredMsg struct {
	id int
}
