package changelog

import (
	"fmt"
	"strings"
)

// Render serializes a document back to text. The body (preamble plus
// sections) ends with exactly one trailing newline before the link block;
// link references are emitted one per line, in slice order, at the very end.
//
// Render is deterministic: the same document always produces identical bytes.
func Render(d *Document) string {
	var b strings.Builder

	b.WriteString(strings.TrimRight(d.Preamble, " \t\n"))
	b.WriteString("\n")

	for _, s := range d.Sections {
		b.WriteString("\n")
		b.WriteString(s.Header())
		b.WriteString("\n")
		if s.Body != "" {
			b.WriteString("\n")
			b.WriteString(s.Body)
			b.WriteString("\n")
		}
	}

	out := strings.TrimRight(b.String(), "\n") + "\n"

	if len(d.Links) > 0 {
		var links strings.Builder
		for _, l := range d.Links {
			links.WriteString(fmt.Sprintf("[%s]: %s\n", l.Version, l.URL))
		}
		out += links.String()
	}

	return out
}
