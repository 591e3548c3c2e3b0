package semver

import (
	"regexp"
	"strings"
)

// Bump is the kind of version increment selected for the next release.
type Bump int

const (
	BumpNone Bump = iota
	BumpPatch
	BumpMinor
	BumpMajor
)

// String returns the canonical directive token for the bump.
func (b Bump) String() string {
	switch b {
	case BumpMajor:
		return "major"
	case BumpMinor:
		return "minor"
	case BumpPatch:
		return "patch"
	default:
		return "none"
	}
}

// ParseBump maps a directive token to a Bump. Legacy synonyms are
// accepted: breaking, feature, and fix map to major, minor, and patch.
// Unrecognized tokens return (BumpPatch, false) so callers can warn
// without blocking a build.
func ParseBump(token string) (Bump, bool) {
	switch strings.ToLower(token) {
	case "major", "breaking":
		return BumpMajor, true
	case "minor", "feature":
		return BumpMinor, true
	case "patch", "fix":
		return BumpPatch, true
	case "none", "skip":
		return BumpNone, true
	default:
		return BumpPatch, false
	}
}

// A directive line occupies a whole line of the unreleased notes, e.g.
// "+semver: minor". At most one space may follow the colon.
var directivePattern = regexp.MustCompile(`(?i)^\+semver:\s?(\S+)$`)

// DirectiveBump scans unreleased-section notes for the first directive
// line and returns the bump it selects. When no directive is present
// the bump defaults to BumpPatch with known=true. When a directive is
// present but its token is unrecognized, the bump is BumpPatch with
// known=false and token carries the raw value for the caller's warning.
func DirectiveBump(notes string) (bump Bump, token string, known bool) {
	for _, line := range splitLines(notes) {
		m := directivePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		token = m[1]
		bump, known = ParseBump(token)
		return bump, token, known
	}
	return BumpPatch, "", true
}

// StripDirectives returns a copy of the notes with every directive line
// removed. Used only when promoting a changelog, never when computing a
// version.
func StripDirectives(notes string) string {
	lines := splitLines(notes)
	kept := lines[:0]
	for _, line := range lines {
		if directivePattern.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimRight(strings.Join(kept, "\n"), "\n")
}

// splitLines normalizes line breaks to "\n" so the directive pattern
// matches regardless of the file's line-ending convention.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}
