package semver

import "testing"

func TestParseBump(t *testing.T) {
	tests := []struct {
		token string
		want  Bump
		known bool
	}{
		{"major", BumpMajor, true},
		{"minor", BumpMinor, true},
		{"patch", BumpPatch, true},
		{"none", BumpNone, true},
		{"skip", BumpNone, true},
		{"breaking", BumpMajor, true},
		{"feature", BumpMinor, true},
		{"fix", BumpPatch, true},
		{"MAJOR", BumpMajor, true},
		{"Skip", BumpNone, true},
		{"huge", BumpPatch, false},
		{"", BumpPatch, false},
	}

	for _, tt := range tests {
		got, known := ParseBump(tt.token)
		if got != tt.want || known != tt.known {
			t.Errorf("ParseBump(%q) = (%v, %v), want (%v, %v)", tt.token, got, known, tt.want, tt.known)
		}
	}
}

func TestDirectiveBump(t *testing.T) {
	tests := []struct {
		name      string
		notes     string
		want      Bump
		wantToken string
		wantKnown bool
	}{
		{"empty notes", "", BumpPatch, "", true},
		{"no directive", "some notes\nmore notes", BumpPatch, "", true},
		{"plain minor", "+semver: minor", BumpMinor, "minor", true},
		{"after notes", "some notes\n+semver: minor", BumpMinor, "minor", true},
		{"no space after colon", "+semver:major", BumpMajor, "major", true},
		{"case insensitive", "+SemVer: BREAKING", BumpMajor, "BREAKING", true},
		{"crlf line endings", "notes\r\n+semver: fix\r\n", BumpPatch, "fix", true},
		{"first directive wins", "+semver: none\n+semver: major", BumpNone, "none", true},
		{"unknown token", "+semver: huge", BumpPatch, "huge", false},
		{"two spaces is not a directive", "+semver:  minor", BumpPatch, "", true},
		{"directive must own the line", "note +semver: minor", BumpPatch, "", true},
		{"skip", "+semver: skip", BumpNone, "skip", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bump, token, known := DirectiveBump(tt.notes)
			if bump != tt.want || token != tt.wantToken || known != tt.wantKnown {
				t.Errorf("DirectiveBump(%q) = (%v, %q, %v), want (%v, %q, %v)",
					tt.notes, bump, token, known, tt.want, tt.wantToken, tt.wantKnown)
			}
		})
	}
}

func TestStripDirectives(t *testing.T) {
	tests := []struct {
		name  string
		notes string
		want  string
	}{
		{"no directives", "line one\nline two", "line one\nline two"},
		{"single directive", "notes\n+semver: minor", "notes"},
		{"directive only", "+semver: patch", ""},
		{"multiple directives", "+semver: minor\nnotes\n+semver: major", "notes"},
		{"inline mention kept", "see +semver: minor for details", "see +semver: minor for details"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripDirectives(tt.notes); got != tt.want {
				t.Errorf("StripDirectives(%q) = %q, want %q", tt.notes, got, tt.want)
			}
		})
	}
}
