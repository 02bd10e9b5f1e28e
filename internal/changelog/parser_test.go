package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkhquang/relkit/internal/semver"
)

func TestParse_WellFormedDocument(t *testing.T) {
	t.Parallel()

	text := `# Changelog

All notable changes to this project will be documented in this file.

## [1.1.0] - Camera Update

- Added smooth transitions
- Fixed hotkey handling

## [1.0.0]

- Initial release
[1.1.0]: https://example.com/releases/tag/v1.1.0
[1.0.0]: https://example.com/releases/tag/v1.0.0
`

	doc := Parse(text)

	assert.Equal(t, "# Changelog\n\nAll notable changes to this project will be documented in this file.", doc.Preamble)

	require.Len(t, doc.Sections, 2)
	assert.Equal(t, semver.MustParse("1.1.0"), doc.Sections[0].Version)
	assert.Equal(t, "Camera Update", doc.Sections[0].Title)
	assert.Equal(t, "- Added smooth transitions\n- Fixed hotkey handling", doc.Sections[0].Body)
	assert.Equal(t, semver.MustParse("1.0.0"), doc.Sections[1].Version)
	assert.Equal(t, "", doc.Sections[1].Title)
	assert.Equal(t, "- Initial release", doc.Sections[1].Body)

	require.Len(t, doc.Links, 2)
	assert.Equal(t, "https://example.com/releases/tag/v1.1.0", doc.Links[0].URL)
}

func TestParse_LinkReferencesAnywhere(t *testing.T) {
	t.Parallel()

	// Links scattered through the document are extracted from wherever they
	// appear; they never end up in section bodies.
	text := `# Changelog
[0.2.0]: https://example.com/v0.2.0

All notable changes to this project will be documented in this file.

## [0.2.0]
[0.1.0]: https://example.com/v0.1.0

- Things changed

## [0.1.0]

- Start
`

	doc := Parse(text)

	require.Len(t, doc.Links, 2)
	assert.True(t, doc.HasLink(semver.MustParse("0.2.0")))
	assert.True(t, doc.HasLink(semver.MustParse("0.1.0")))

	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "- Things changed", doc.Sections[0].Body)
	assert.NotContains(t, doc.Sections[0].Body, "[0.1.0]:")
}

func TestParse_DuplicateLinkFirstWins(t *testing.T) {
	t.Parallel()

	text := "[1.0.0]: https://first.example\n[1.0.0]: https://second.example\n"

	doc := Parse(text)
	require.Len(t, doc.Links, 1)
	assert.Equal(t, "https://first.example", doc.Links[0].URL)
}

func TestParse_UnrecognizedHeadingsStayInBody(t *testing.T) {
	t.Parallel()

	text := `# Changelog

All notable changes to this project will be documented in this file.

## [1.0.0]

### Fixed

- A bug

## Not a version section

- Stray content
`

	doc := Parse(text)

	require.Len(t, doc.Sections, 1)
	// Sub-headings and malformed section headers are preserved as body text.
	assert.Contains(t, doc.Sections[0].Body, "### Fixed")
	assert.Contains(t, doc.Sections[0].Body, "## Not a version section")
	assert.Contains(t, doc.Sections[0].Body, "- Stray content")
}

func TestParse_EmptyDocument(t *testing.T) {
	t.Parallel()

	doc := Parse("")
	assert.Equal(t, "", doc.Preamble)
	assert.Empty(t, doc.Sections)
	assert.Empty(t, doc.Links)
}

func TestNormalizeBody(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input    string
		expected string
	}{
		"trailing whitespace per line": {
			input:    "- one   \n- two\t",
			expected: "- one\n- two",
		},
		"blank runs collapse to single": {
			input:    "- one\n\n\n\n- two",
			expected: "- one\n\n- two",
		},
		"leading and trailing blanks stripped": {
			input:    "\n\n- entry\n\n\n",
			expected: "- entry",
		},
		"whitespace-only is empty": {
			input:    "  \n\t\n   ",
			expected: "",
		},
		"already normalized unchanged": {
			input:    "- one\n\n- two",
			expected: "- one\n\n- two",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, NormalizeBody(tt.input))
		})
	}
}
