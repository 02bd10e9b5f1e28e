package changelog

import (
	"regexp"
	"strings"

	"github.com/tkhquang/relkit/internal/semver"
)

var (
	sectionHeaderPattern = regexp.MustCompile(`^## \[(\d+\.\d+\.\d+)\](?: - (.*\S))?\s*$`)
	linkRefPattern       = regexp.MustCompile(`^\[(\d+\.\d+\.\d+)\]:\s*(\S+)\s*$`)
)

// Parse splits a changelog document into its three regions. Link-reference
// lines are extracted wherever they appear; the first reference wins when a
// version is listed twice. Lines before the first section header form the
// preamble. Content that belongs to no recognizable region stays attached to
// the preamble or enclosing section body, so nothing is lost on malformed
// input.
func Parse(text string) *Document {
	doc := &Document{}

	var preamble []string
	var current *Section
	var body []string

	flush := func() {
		if current != nil {
			current.Body = NormalizeBody(strings.Join(body, "\n"))
			doc.Sections = append(doc.Sections, *current)
		}
		current = nil
		body = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if m := linkRefPattern.FindStringSubmatch(line); m != nil {
			v, err := semver.Parse(m[1])
			if err == nil {
				if !doc.HasLink(v) {
					doc.Links = append(doc.Links, LinkRef{Version: v, URL: m[2]})
				}
				continue
			}
		}

		if m := sectionHeaderPattern.FindStringSubmatch(line); m != nil {
			if v, err := semver.Parse(m[1]); err == nil {
				flush()
				current = &Section{Version: v, Title: m[2]}
				continue
			}
		}

		if current != nil {
			body = append(body, line)
		} else {
			preamble = append(preamble, line)
		}
	}
	flush()

	doc.Preamble = strings.TrimRight(strings.Join(preamble, "\n"), " \t\n")
	return doc
}

// NormalizeBody trims trailing whitespace per line, collapses runs of blank
// lines to a single separator, and strips leading and trailing blank lines.
// The result carries no trailing newline.
func NormalizeBody(body string) string {
	var out []string
	blank := true // swallow leading blanks
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, line)
		blank = false
	}
	// Drop a trailing blank separator left by the collapse.
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
