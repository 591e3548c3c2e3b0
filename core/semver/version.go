// Package semver holds the semantic version value type and the bump
// directive parser used by the version resolution engine.
package semver

import (
	"fmt"
	"strconv"
	"strings"

	modsemver "golang.org/x/mod/semver"
)

// Bootstrap is the version assigned to a project that has no changelog
// entries and no tags yet.
const Bootstrap = "0.0.1"

// Version is an immutable semantic version. Bumps produce new values;
// a Version is never mutated in place.
type Version struct {
	Major      uint64
	Minor      uint64
	Patch      uint64
	Prerelease string
}

// Parse parses a version string in the form "X.Y.Z" or "X.Y.Z-pre",
// with an optional leading "v".
func Parse(s string) (Version, error) {
	trimmed := strings.TrimPrefix(s, "v")
	if !modsemver.IsValid("v" + trimmed) {
		return Version{}, fmt.Errorf("invalid semantic version: %q", s)
	}

	base, prerelease, _ := strings.Cut(trimmed, "-")
	// Build metadata is not carried; the resolver never emits it.
	prerelease, _, _ = strings.Cut(prerelease, "+")
	base, _, _ = strings.Cut(base, "+")

	parts := strings.Split(base, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid semantic version: %q (expected X.Y.Z)", s)
	}

	var nums [3]uint64
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return Version{}, fmt.Errorf("invalid semantic version component %q in %q", p, s)
		}
		nums[i] = n
	}

	return Version{
		Major:      nums[0],
		Minor:      nums[1],
		Patch:      nums[2],
		Prerelease: prerelease,
	}, nil
}

// String renders the version without a "v" prefix, e.g. "1.2.3" or
// "1.2.3-alpha0007".
func (v Version) String() string {
	base := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		return base + "-" + v.Prerelease
	}
	return base
}

// canonical renders the version with the "v" prefix expected by
// golang.org/x/mod/semver.
func (v Version) canonical() string {
	return "v" + v.String()
}

// Compare returns -1, 0, or +1 ordering a before, equal to, or after b.
// At an equal (major, minor, patch) triple a version without a
// prerelease orders after one with a prerelease.
func Compare(a, b Version) int {
	return modsemver.Compare(a.canonical(), b.canonical())
}

// Bumped returns a new version with the bump applied. Lower-significance
// components reset to zero and any prerelease is dropped; BumpNone
// returns the receiver unchanged.
func (v Version) Bumped(b Bump) Version {
	switch b {
	case BumpMajor:
		return Version{Major: v.Major + 1}
	case BumpMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}
	case BumpPatch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	default:
		return v
	}
}
