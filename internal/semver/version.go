// Package semver implements the three-component version triple that relkit
// treats as the single source of truth for a project's release version.
package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Part identifies which component of a version triple to bump.
type Part string

const (
	PartMajor Part = "major"
	PartMinor Part = "minor"
	PartPatch Part = "patch"
)

// ErrInvalidPart is returned when a bump part is not major, minor, or patch.
var ErrInvalidPart = errors.New("invalid version part")

// versionPattern matches a bare X.Y.Z triple with no prefix or suffix.
var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// Version is an ordered (major, minor, patch) triple. Components are
// non-negative integers.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse converts a bare "X.Y.Z" string into a Version.
func Parse(s string) (Version, error) {
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("invalid version %q (expected X.Y.Z)", s)
	}

	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Version{}, fmt.Errorf("parsing major component of %q: %w", s, err)
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Version{}, fmt.Errorf("parsing minor component of %q: %w", s, err)
	}
	patch, err := strconv.Atoi(m[3])
	if err != nil {
		return Version{}, fmt.Errorf("parsing patch component of %q: %w", s, err)
	}

	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// compile-time constants.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the bare "X.Y.Z" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare orders versions numerically by (major, minor, patch).
// Returns -1 if v < o, 0 if equal, 1 if v > o.
func (v Version) Compare(o Version) int {
	if c := compareInt(v.Major, o.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, o.Minor); c != 0 {
		return c
	}
	return compareInt(v.Patch, o.Patch)
}

// Bump returns a new version with the given part incremented. Bumping major
// zeroes minor and patch; bumping minor zeroes patch.
func (v Version) Bump(part Part) (Version, error) {
	switch part {
	case PartMajor:
		return Version{Major: v.Major + 1}, nil
	case PartMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}, nil
	case PartPatch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	default:
		return Version{}, fmt.Errorf("%w %q (use major, minor, or patch)", ErrInvalidPart, string(part))
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
