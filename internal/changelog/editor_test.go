package changelog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkhquang/relkit/internal/semver"
)

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	path := filepath.Join(t.TempDir(), "CHANGELOG.md")
	return NewEditor(path, "this project", "https://github.com/acme/widget", "v")
}

func seedChangelog(t *testing.T, e *Editor, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(e.Path(), []byte(content), 0644))
}

func readChangelog(t *testing.T, e *Editor) string {
	t.Helper()
	data, err := os.ReadFile(e.Path())
	require.NoError(t, err)
	return string(data)
}

func TestUpdate_CreatesDocumentFromScratch(t *testing.T) {
	t.Parallel()

	e := newTestEditor(t)

	require.NoError(t, e.Update(semver.MustParse("2.0.0"), "", "- Fixed X"))

	expected := `# Changelog

All notable changes to this project will be documented in this file.

## [2.0.0]

- Fixed X
[2.0.0]: https://github.com/acme/widget/releases/tag/v2.0.0
`
	assert.Equal(t, expected, readChangelog(t, e))
}

func TestUpdate_NewSectionAlwaysFirst(t *testing.T) {
	t.Parallel()

	e := newTestEditor(t)
	require.NoError(t, e.Update(semver.MustParse("1.0.0"), "", "- Initial release"))
	require.NoError(t, e.Update(semver.MustParse("1.1.0"), "Feature Update", "- Added things"))

	content := readChangelog(t, e)
	first := Parse(content)
	require.Len(t, first.Sections, 2)
	assert.Equal(t, semver.MustParse("1.1.0"), first.Sections[0].Version)
	assert.Equal(t, "Feature Update", first.Sections[0].Title)
	assert.Equal(t, semver.MustParse("1.0.0"), first.Sections[1].Version)

	assert.Contains(t, content, "## [1.1.0] - Feature Update")
}

func TestUpdate_DuplicateVersionSkipsAndLeavesFileByteIdentical(t *testing.T) {
	t.Parallel()

	e := newTestEditor(t)
	require.NoError(t, e.Update(semver.MustParse("2.0.0"), "", "- Fixed X"))
	before := readChangelog(t, e)

	err := e.Update(semver.MustParse("2.0.0"), "Another Title", "- Different entry")
	require.Error(t, err)

	var dup *DuplicateVersionError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, semver.MustParse("2.0.0"), dup.Version)

	assert.Equal(t, before, readChangelog(t, e))
}

func TestUpdate_EmptyEntrySkipsWithoutWriting(t *testing.T) {
	t.Parallel()

	e := newTestEditor(t)

	err := e.Update(semver.MustParse("1.0.0"), "Title", "   \n\t\n")
	require.Error(t, err)

	var empty *EmptyEntryError
	require.True(t, errors.As(err, &empty))

	_, statErr := os.Stat(e.Path())
	assert.True(t, os.IsNotExist(statErr), "no file may be created for an empty entry")
}

func TestUpdate_LinksSortedNumericallyDescending(t *testing.T) {
	t.Parallel()

	e := newTestEditor(t)
	// Insert out of order, including versions where lexicographic and
	// numeric ordering disagree.
	for _, v := range []string{"9.0.0", "1.2.0", "10.0.0", "1.10.0"} {
		require.NoError(t, e.Update(semver.MustParse(v), "", "- Entry for "+v))
	}

	doc := Parse(readChangelog(t, e))
	require.Len(t, doc.Links, 4)

	got := make([]string, len(doc.Links))
	for i, l := range doc.Links {
		got[i] = l.Version.String()
	}
	assert.Equal(t, []string{"10.0.0", "9.0.0", "1.10.0", "1.2.0"}, got)
}

func TestUpdate_ExistingLinkPreserved(t *testing.T) {
	t.Parallel()

	e := newTestEditor(t)
	seedChangelog(t, e, `# Changelog

All notable changes to this project will be documented in this file.

## [1.0.0]

- Start
[2.0.0]: https://example.com/custom/2.0.0
[1.0.0]: https://example.com/custom/1.0.0
`)

	require.NoError(t, e.Update(semver.MustParse("2.0.0"), "", "- Big rewrite"))

	doc := Parse(readChangelog(t, e))
	require.Len(t, doc.Links, 2)
	// The pre-existing reference wins; no URL is synthesized for it.
	assert.Equal(t, "https://example.com/custom/2.0.0", doc.Links[0].URL)
}

func TestUpdate_NormalizesMalformedPreamble(t *testing.T) {
	t.Parallel()

	e := newTestEditor(t)
	seedChangelog(t, e, `Some scribbled notes instead of a proper header.

## [0.2.0] - Old Release

- Old entry
[0.2.0]: https://example.com/v0.2.0
`)

	require.NoError(t, e.Update(semver.MustParse("0.3.0"), "", "- New entry"))

	content := readChangelog(t, e)
	assert.Contains(t, content, "# Changelog\n\nAll notable changes to this project will be documented in this file.\n")
	assert.NotContains(t, content, "Some scribbled notes")

	doc := Parse(content)
	require.Len(t, doc.Sections, 2)
	assert.Equal(t, semver.MustParse("0.3.0"), doc.Sections[0].Version)
	// The old section and its link reference survive the repair.
	assert.Equal(t, semver.MustParse("0.2.0"), doc.Sections[1].Version)
	assert.Equal(t, "- Old entry", doc.Sections[1].Body)
	assert.True(t, doc.HasLink(semver.MustParse("0.2.0")))
}

func TestUpdate_KeepsWellFormedPreambleVerbatim(t *testing.T) {
	t.Parallel()

	e := newTestEditor(t)
	preamble := `# Changelog

All notable changes to this project will be documented in this file.

Extra preamble prose the operator added by hand.`
	seedChangelog(t, e, preamble+"\n")

	require.NoError(t, e.Update(semver.MustParse("1.0.0"), "", "- Entry"))

	assert.Contains(t, readChangelog(t, e), "Extra preamble prose the operator added by hand.")
}

func TestUpdate_BodyNormalization(t *testing.T) {
	t.Parallel()

	e := newTestEditor(t)

	require.NoError(t, e.Update(semver.MustParse("1.0.0"), "",
		"\n- First entry   \n\n\n\n- Second entry\t\n\n"))

	doc := Parse(readChangelog(t, e))
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "- First entry\n\n- Second entry", doc.Sections[0].Body)
}

func TestUpdate_TagPrefixInSynthesizedURL(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "CHANGELOG.md")
	e := NewEditor(path, "TPVToggle", "https://github.com/tkhquang/KDC2Tools", "TPVToggle-")

	require.NoError(t, e.Update(semver.MustParse("0.2.1"), "", "- Entry"))

	assert.Contains(t, readChangelog(t, e),
		"[0.2.1]: https://github.com/tkhquang/KDC2Tools/releases/tag/TPVToggle-0.2.1")
}
