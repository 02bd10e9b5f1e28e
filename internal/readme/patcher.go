// Package readme implements the readme patcher: it rewrites the single
// "Version X.Y.Z" line of a plain-text readme to match a new release version.
package readme

import (
	"fmt"
	"os"
	"strings"

	"github.com/tkhquang/relkit/internal/semver"
)

// VersionPrefix is the literal prefix that marks the version line.
const VersionPrefix = "Version "

// Patcher rewrites the version line of a single readme file.
type Patcher struct {
	path string
}

// NewPatcher returns a patcher bound to the given readme path.
func NewPatcher(path string) *Patcher {
	return &Patcher{path: path}
}

// Path returns the readme file path the patcher operates on.
func (p *Patcher) Path() string {
	return p.path
}

// Update replaces the first line beginning with "Version " by the prefix
// followed by the new version. Later lines are never touched even if they
// also match. When no line matches, the file is rewritten unchanged.
//
// Errors from Update are advisory: callers log them and continue, the
// readme is never allowed to fail a release.
func (p *Patcher) Update(v semver.Version) error {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return fmt.Errorf("reading readme: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, VersionPrefix) {
			lines[i] = VersionPrefix + v.String()
			break
		}
	}

	if err := os.WriteFile(p.path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return fmt.Errorf("writing readme: %w", err)
	}
	return nil
}
