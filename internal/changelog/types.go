// Package changelog implements the self-repairing changelog editor. The
// document is modeled as three distinct regions - preamble, version sections,
// and link references - so malformed input is handled by a structural parse
// and normalization rather than positional string surgery.
package changelog

import (
	"fmt"
	"sort"

	"github.com/tkhquang/relkit/internal/semver"
)

// Document is the structured form of a changelog file.
type Document struct {
	// Preamble is everything before the first version section: the title
	// line and the fixed description sentence.
	Preamble string
	// Sections are the version sections in document order. Insertion always
	// places the newest section first; reverse-chronological ordering of the
	// rest is an operator convention, not enforced here.
	Sections []Section
	// Links are the trailing link references. They are serialized sorted
	// descending by numeric version triple, at most one per version.
	Links []LinkRef
}

// Section is a changelog block headed by "## [version]" with a free-text body.
type Section struct {
	Version semver.Version
	// Title is the optional " - Title" suffix of the section header.
	Title string
	// Body is the normalized body text, without trailing newline.
	Body string
}

// Header renders the section header line.
func (s Section) Header() string {
	if s.Title != "" {
		return fmt.Sprintf("## [%s] - %s", s.Version, s.Title)
	}
	return fmt.Sprintf("## [%s]", s.Version)
}

// LinkRef resolves a version to its release location.
type LinkRef struct {
	Version semver.Version
	URL     string
}

// HasVersion reports whether a section for the exact version exists.
func (d *Document) HasVersion(v semver.Version) bool {
	for _, s := range d.Sections {
		if s.Version == v {
			return true
		}
	}
	return false
}

// HasLink reports whether a link reference for the version exists.
func (d *Document) HasLink(v semver.Version) bool {
	for _, l := range d.Links {
		if l.Version == v {
			return true
		}
	}
	return false
}

// SortLinks orders link references strictly descending by numeric
// (major, minor, patch).
func (d *Document) SortLinks() {
	sort.SliceStable(d.Links, func(i, j int) bool {
		return d.Links[i].Version.Compare(d.Links[j].Version) > 0
	})
}
