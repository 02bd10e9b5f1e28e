package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tkhquang/relkit/internal/semver"
)

func TestRender_SingleSectionWithLink(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Preamble: "# Changelog\n\nAll notable changes to this project will be documented in this file.",
		Sections: []Section{
			{Version: semver.MustParse("2.0.0"), Body: "- Fixed X"},
		},
		Links: []LinkRef{
			{Version: semver.MustParse("2.0.0"), URL: "https://example.com/releases/tag/v2.0.0"},
		},
	}

	expected := `# Changelog

All notable changes to this project will be documented in this file.

## [2.0.0]

- Fixed X
[2.0.0]: https://example.com/releases/tag/v2.0.0
`
	assert.Equal(t, expected, Render(doc))
}

func TestRender_TitleSuffix(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Preamble: "# Changelog",
		Sections: []Section{
			{Version: semver.MustParse("1.5.0"), Title: "Feature Update", Body: "- New things"},
		},
	}

	assert.Contains(t, Render(doc), "## [1.5.0] - Feature Update\n")
}

func TestRender_BodylessSectionHasNoBlankBlock(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Preamble: "# Changelog",
		Sections: []Section{
			{Version: semver.MustParse("1.0.1")},
			{Version: semver.MustParse("1.0.0"), Body: "- Start"},
		},
	}

	expected := "# Changelog\n\n## [1.0.1]\n\n## [1.0.0]\n\n- Start\n"
	assert.Equal(t, expected, Render(doc))
}

func TestRender_ExactlyOneNewlineBeforeLinkBlock(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Preamble: "# Changelog",
		Sections: []Section{
			{Version: semver.MustParse("1.0.0"), Body: "- Entry"},
		},
		Links: []LinkRef{
			{Version: semver.MustParse("1.0.0"), URL: "https://example.com/v1.0.0"},
		},
	}

	out := Render(doc)
	assert.Contains(t, out, "- Entry\n[1.0.0]:")
	assert.NotContains(t, out, "- Entry\n\n[1.0.0]:")
}

func TestRender_ParseRoundTripIsStable(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Preamble: "# Changelog\n\nAll notable changes to this project will be documented in this file.",
		Sections: []Section{
			{Version: semver.MustParse("1.1.0"), Title: "Fixes", Body: "- A\n\n- B"},
			{Version: semver.MustParse("1.0.0"), Body: "- Start"},
		},
		Links: []LinkRef{
			{Version: semver.MustParse("1.1.0"), URL: "https://example.com/v1.1.0"},
			{Version: semver.MustParse("1.0.0"), URL: "https://example.com/v1.0.0"},
		},
	}

	once := Render(doc)
	again := Render(Parse(once))
	assert.Equal(t, once, again)
}
