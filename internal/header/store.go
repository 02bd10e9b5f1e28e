// Package header implements the version store: a C-style header file whose
// VERSION_MAJOR, VERSION_MINOR and VERSION_PATCH defines are the single
// source of truth for the project version.
package header

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/tkhquang/relkit/internal/semver"
)

var (
	majorPattern = regexp.MustCompile(`#define\s+VERSION_MAJOR\s+(\d+)`)
	minorPattern = regexp.MustCompile(`#define\s+VERSION_MINOR\s+(\d+)`)
	patchPattern = regexp.MustCompile(`#define\s+VERSION_PATCH\s+(\d+)`)
)

// ParseError reports a version declaration that is missing or unreadable.
type ParseError struct {
	Path string
	Key  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: could not extract %s declaration", e.Path, e.Key)
}

// Store reads and writes the version declarations of a single header file.
// Reads and writes are whole-file; concurrent invocations race (single-operator
// tool, documented limitation).
type Store struct {
	path string
}

// NewStore returns a store bound to the given header file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the header file path the store operates on.
func (s *Store) Path() string {
	return s.path
}

// Read extracts the version triple from the header file. The file may contain
// arbitrary surrounding content; only the three defines matter.
func (s *Store) Read() (semver.Version, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return semver.Version{}, fmt.Errorf("reading version header: %w", err)
	}
	return parseVersion(s.path, string(data))
}

// Write replaces the three version defines in place, preserving all
// surrounding content and declaration order, then overwrites the file.
func (s *Store) Write(v semver.Version) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("reading version header: %w", err)
	}
	text := string(data)

	// Refuse to write a file we cannot read back.
	if _, err := parseVersion(s.path, text); err != nil {
		return err
	}

	text = majorPattern.ReplaceAllString(text, fmt.Sprintf("#define VERSION_MAJOR %d", v.Major))
	text = minorPattern.ReplaceAllString(text, fmt.Sprintf("#define VERSION_MINOR %d", v.Minor))
	text = patchPattern.ReplaceAllString(text, fmt.Sprintf("#define VERSION_PATCH %d", v.Patch))

	if err := os.WriteFile(s.path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing version header: %w", err)
	}
	return nil
}

// Bump reads the current version, increments the given part, writes the
// result back, and returns the new version.
func (s *Store) Bump(part semver.Part) (semver.Version, error) {
	current, err := s.Read()
	if err != nil {
		return semver.Version{}, err
	}

	next, err := current.Bump(part)
	if err != nil {
		return semver.Version{}, err
	}

	if err := s.Write(next); err != nil {
		return semver.Version{}, err
	}
	return next, nil
}

func parseVersion(path, text string) (semver.Version, error) {
	major, err := extractComponent(path, text, "VERSION_MAJOR", majorPattern)
	if err != nil {
		return semver.Version{}, err
	}
	minor, err := extractComponent(path, text, "VERSION_MINOR", minorPattern)
	if err != nil {
		return semver.Version{}, err
	}
	patch, err := extractComponent(path, text, "VERSION_PATCH", patchPattern)
	if err != nil {
		return semver.Version{}, err
	}
	return semver.Version{Major: major, Minor: minor, Patch: patch}, nil
}

func extractComponent(path, text, key string, pattern *regexp.Regexp) (int, error) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return 0, &ParseError{Path: path, Key: key}
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, &ParseError{Path: path, Key: key}
	}
	return n, nil
}
