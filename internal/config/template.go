package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# relkit configuration
# Values here override the built-in defaults; RELKIT_* environment
# variables override values here.

# Bookkeeping files
version_header: version.h        # Header with VERSION_MAJOR/MINOR/PATCH defines
readme: README.txt               # Plain-text readme with a "Version X.Y.Z" line
changelog: CHANGELOG.md          # Markdown changelog document

# Changelog preamble and release links
project_name: this project       # Appears in the changelog description line
repo_url: ""                     # Repository https URL (empty = detect from git origin)
tag_prefix: v                    # Release tag prefix (tag = <prefix><version>)
`
}
