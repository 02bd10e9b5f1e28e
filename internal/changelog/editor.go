package changelog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/tkhquang/relkit/internal/semver"
)

// TitleLine is the fixed first line of every changelog document.
const TitleLine = "# Changelog"

// DuplicateVersionError reports that a section for the target version already
// exists. The update is skipped; the file is left untouched.
type DuplicateVersionError struct {
	Version semver.Version
}

func (e *DuplicateVersionError) Error() string {
	return fmt.Sprintf("version %s already exists in changelog, skipping update", e.Version)
}

// EmptyEntryError reports that no changelog text was supplied. A header with
// no body is never written.
type EmptyEntryError struct {
	Version semver.Version
}

func (e *EmptyEntryError) Error() string {
	return fmt.Sprintf("no changelog entry provided for version %s, skipping update", e.Version)
}

// Editor applies version updates to a single changelog file. It repairs
// malformed documents on the way: the fixed title and description preamble is
// always enforced, and existing sections and link references are preserved.
type Editor struct {
	path      string
	project   string
	repoURL   string
	tagPrefix string
}

// NewEditor returns an editor for the changelog at path. project names the
// subject of the description sentence; repoURL and tagPrefix control how
// release-tag links are synthesized.
func NewEditor(path, project, repoURL, tagPrefix string) *Editor {
	return &Editor{path: path, project: project, repoURL: repoURL, tagPrefix: tagPrefix}
}

// Path returns the changelog file path the editor operates on.
func (e *Editor) Path() string {
	return e.path
}

// DescriptionLine returns the fixed description sentence of the preamble.
func (e *Editor) DescriptionLine() string {
	return fmt.Sprintf("All notable changes to %s will be documented in this file.", e.project)
}

// Update inserts a new section for the version ahead of all existing
// sections, guarantees a link reference for it, and rewrites the whole file
// with link references sorted descending.
//
// A *DuplicateVersionError or *EmptyEntryError return means the operation was
// skipped and the file was not written; callers treat these as warnings.
func (e *Editor) Update(v semver.Version, title, entry string) error {
	entry = NormalizeBody(entry)
	if entry == "" {
		return &EmptyEntryError{Version: v}
	}

	doc, err := e.load()
	if err != nil {
		return err
	}

	if doc.HasVersion(v) {
		return &DuplicateVersionError{Version: v}
	}

	doc.Sections = append([]Section{{Version: v, Title: title, Body: entry}}, doc.Sections...)

	if !doc.HasLink(v) {
		doc.Links = append(doc.Links, LinkRef{Version: v, URL: e.releaseURL(v)})
	}
	doc.SortLinks()

	if err := os.WriteFile(e.path, []byte(Render(doc)), 0644); err != nil {
		return fmt.Errorf("writing changelog: %w", err)
	}
	return nil
}

// load reads and parses the changelog, synthesizing a fresh document when the
// file is missing and normalizing the preamble when it is malformed.
func (e *Editor) load() (*Document, error) {
	data, err := os.ReadFile(e.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Document{Preamble: e.canonicalPreamble()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading changelog: %w", err)
	}

	doc := Parse(string(data))
	e.ensureStructure(doc)
	return doc, nil
}

// ensureStructure enforces the fixed title and description preamble. Sections
// and links parsed from the document are always preserved; only a preamble
// missing either the title marker or the description sentence is replaced.
func (e *Editor) ensureStructure(doc *Document) {
	if strings.Contains(doc.Preamble, TitleLine) && strings.Contains(doc.Preamble, e.DescriptionLine()) {
		return
	}
	doc.Preamble = e.canonicalPreamble()
}

func (e *Editor) canonicalPreamble() string {
	return TitleLine + "\n\n" + e.DescriptionLine()
}

// releaseURL synthesizes the release-tag URL for a version.
func (e *Editor) releaseURL(v semver.Version) string {
	return fmt.Sprintf("%s/releases/tag/%s%s", strings.TrimSuffix(e.repoURL, "/"), e.tagPrefix, v)
}
