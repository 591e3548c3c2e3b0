package semver

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr bool
	}{
		{"1.2.3", Version{Major: 1, Minor: 2, Patch: 3}, false},
		{"v1.2.3", Version{Major: 1, Minor: 2, Patch: 3}, false},
		{"0.0.1", Version{Patch: 1}, false},
		{"2.1.3-alpha0007", Version{Major: 2, Minor: 1, Patch: 3, Prerelease: "alpha0007"}, false},
		{"10.20.30", Version{Major: 10, Minor: 20, Patch: 30}, false},
		{"1.2", Version{}, true},
		{"1.2.3.4", Version{}, true},
		{"latest", Version{}, true},
		{"", Version{}, true},
		{"1.-2.3", Version{}, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		v    Version
		want string
	}{
		{Version{Major: 1, Minor: 2, Patch: 3}, "1.2.3"},
		{Version{Patch: 1}, "0.0.1"},
		{Version{Major: 3, Prerelease: "alpha0042"}, "3.0.0-alpha0042"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestBumped(t *testing.T) {
	base := Version{Major: 2, Minor: 1, Patch: 3}

	tests := []struct {
		bump Bump
		want Version
	}{
		{BumpMajor, Version{Major: 3}},
		{BumpMinor, Version{Major: 2, Minor: 2}},
		{BumpPatch, Version{Major: 2, Minor: 1, Patch: 4}},
		{BumpNone, base},
	}

	for _, tt := range tests {
		got := base.Bumped(tt.bump)
		if got != tt.want {
			t.Errorf("Bumped(%v) = %v, want %v", tt.bump, got, tt.want)
		}
	}

	// base must not be mutated by any bump.
	if base != (Version{Major: 2, Minor: 1, Patch: 3}) {
		t.Errorf("base mutated to %v", base)
	}
}

func TestBumpedStrictlyIncreases(t *testing.T) {
	bases := []Version{
		{},
		{Patch: 1},
		{Major: 1, Minor: 2, Patch: 3},
		{Major: 9, Minor: 9, Patch: 9},
	}

	for _, base := range bases {
		for _, bump := range []Bump{BumpMajor, BumpMinor, BumpPatch} {
			got := base.Bumped(bump)
			if Compare(got, base) <= 0 {
				t.Errorf("Bumped(%v, %v) = %v, not greater than base", base, bump, got)
			}
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "1.0.1", -1},
		{"1.1.0", "1.0.9", 1},
		{"2.0.0", "1.9.9", 1},
		// A release orders after its own prerelease.
		{"1.2.3-alpha0007", "1.2.3", -1},
		{"1.2.3", "1.2.3-alpha9999", 1},
	}

	for _, tt := range tests {
		a, err := Parse(tt.a)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.a, err)
		}
		b, err := Parse(tt.b)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.b, err)
		}
		if got := Compare(a, b); got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
