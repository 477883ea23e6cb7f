package report

import (
	"strings"

	"github.com/evanschultz/medcase-visualizer/pkg/annotate"
)

// emphasise bolds the clickable runs of a summary point
func emphasise(point string, phrases []string) string {
	var b strings.Builder
	for _, seg := range annotate.Annotate(point, phrases) {
		if seg.Clickable {
			b.WriteString("**" + seg.Text + "**")
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}
